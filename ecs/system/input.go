package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

// InputSource returns one snapshot of the controls per tick.
type InputSource interface {
	Poll() component.InputState
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func() component.InputState

func (f InputSourceFunc) Poll() component.InputState {
	return f()
}

// DeviceInput reads the keyboard and the first standard gamepad.
type DeviceInput struct {
	Deadzone float64
}

func NewDeviceInput() *DeviceInput {
	return &DeviceInput{Deadzone: 0.2}
}

func (d *DeviceInput) Poll() component.InputState {
	var state component.InputState

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		state.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		state.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		state.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		state.MoveY += 1
	}
	state.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	state.Exit = ebiten.IsKeyPressed(ebiten.KeyEscape)
	state.Pause = ebiten.IsKeyPressed(ebiten.KeyP)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			return state
		}
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > d.Deadzone {
			state.MoveX = lx
			state.MoveY = ly
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			state.MoveX = -1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			state.MoveX = 1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) {
			state.MoveY = -1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			state.MoveY = 1
		}
		state.Fire = state.Fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		state.Exit = state.Exit || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterLeft)
		state.Pause = state.Pause || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	return state
}

// InputSystem copies one snapshot into every Input component, keeping the
// previous tick's snapshot for edge detection.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = NewDeviceInput()
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	state := i.source.Poll()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Previous = input.Current
		input.Current = state
	})
}
