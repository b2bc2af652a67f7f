package component

import "github.com/jakecoffman/cp"

// Transform holds the visual center of an entity.
type Transform struct {
	Position cp.Vector
	Scale    float64
}

var TransformComponent = NewComponent[Transform]()
