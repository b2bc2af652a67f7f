package component

// Velocity is a constant per-tick displacement. When Script is set the
// movement system asks the script for the displacement instead.
type Velocity struct {
	X      float64
	Y      float64
	Script string
}

var VelocityComponent = NewComponent[Velocity]()
