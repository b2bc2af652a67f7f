package component

// InputState is one tick's snapshot of the controls.
type InputState struct {
	MoveX float64
	MoveY float64
	Fire  bool
	Exit  bool
	Pause bool
}

// Input stores the current and previous snapshots for an entity.
type Input struct {
	Current  InputState
	Previous InputState
}

// Pressed reports whether the button selected by get went down this tick.
func (i *Input) Pressed(get func(InputState) bool) bool {
	return get(i.Current) && !get(i.Previous)
}

var InputComponent = NewComponent[Input]()
