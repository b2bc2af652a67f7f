package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

// PlayerControllerSystem moves the player by its input displacement and keeps
// the ship fully inside the viewport.
type PlayerControllerSystem struct {
	viewport Viewport
}

func NewPlayerControllerSystem(viewport Viewport) *PlayerControllerSystem {
	return &PlayerControllerSystem{viewport: viewport}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok || !body.Active {
		return
	}

	t.Position.X += input.Current.MoveX * player.MoveSpeed
	t.Position.Y += input.Current.MoveY * player.MoveSpeed
	t.Position = ClampToViewport(t.Position, body.Width, body.Height, p.viewport)
}

// ClampToViewport keeps a box of size width x height centered on pos inside
// the viewport.
func ClampToViewport(pos cp.Vector, width, height float64, v Viewport) cp.Vector {
	hw, hh := width/2, height/2
	maxX, maxY := v.Width-hw, v.Height-hh
	if maxX < hw {
		maxX = hw
	}
	if maxY < hh {
		maxY = hh
	}
	return cp.Vector{
		X: cp.Clamp(pos.X, hw, maxX),
		Y: cp.Clamp(pos.Y, hh, maxY),
	}
}
