package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
	"github.com/milk9111/starfighter/prefabs"
)

// MovementSystem applies each active body's per-tick velocity and deactivates
// bodies that leave the viewport on the side they are travelling toward.
type MovementSystem struct {
	viewport Viewport
	scripts  map[string]*tengo.Compiled
}

func NewMovementSystem(viewport Viewport) *MovementSystem {
	return &MovementSystem{viewport: viewport, scripts: make(map[string]*tengo.Compiled)}
}

// Invalidate drops the compiled script cache so edited scripts are reloaded.
func (m *MovementSystem) Invalidate() {
	m.scripts = make(map[string]*tengo.Compiled)
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.VelocityComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, vel *component.Velocity, t *component.Transform) {
		body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
		if !ok || !body.Active {
			return
		}

		d := cp.Vector{X: vel.X, Y: vel.Y}
		if vel.Script != "" {
			if v, ok := m.scripted(vel, t.Position); ok {
				d = v
			}
		}
		t.Position = t.Position.Add(d)

		if m.offscreen(t.Position, body, d.X) {
			body.Active = false
		}
	})
}

func (m *MovementSystem) offscreen(pos cp.Vector, body *component.Body, dx float64) bool {
	hw := body.Width / 2
	switch {
	case dx < 0:
		return pos.X < -hw
	case dx > 0:
		return pos.X-hw > m.viewport.Width
	}
	return false
}

// scripted runs the movement script for vel and returns its displacement.
func (m *MovementSystem) scripted(vel *component.Velocity, pos cp.Vector) (cp.Vector, bool) {
	compiled, ok := m.scripts[vel.Script]
	if !ok {
		var err error
		compiled, err = compileMovementScript(vel.Script)
		if err != nil {
			log.Printf("movement: script %s: %v", vel.Script, err)
		}
		// a failed compile is cached as nil so it is reported once
		m.scripts[vel.Script] = compiled
	}
	if compiled == nil {
		return cp.Vector{}, false
	}

	inputs := map[string]float64{"x": pos.X, "y": pos.Y, "speed_x": vel.X, "speed_y": vel.Y}
	for name, v := range inputs {
		if err := compiled.Set(name, v); err != nil {
			log.Printf("movement: script %s: set %s: %v", vel.Script, name, err)
			return cp.Vector{}, false
		}
	}
	if err := compiled.Run(); err != nil {
		log.Printf("movement: script %s: %v", vel.Script, err)
		m.scripts[vel.Script] = nil
		return cp.Vector{}, false
	}

	vx, vy := compiled.Get("vx"), compiled.Get("vy")
	if vx.IsUndefined() || vy.IsUndefined() {
		return cp.Vector{}, false
	}
	return cp.Vector{X: vx.Float(), Y: vy.Float()}, true
}

func compileMovementScript(name string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("speed_x", 0.0)
	_ = script.Add("speed_y", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
