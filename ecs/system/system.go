package system

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfighter/ecs"
)

// Factory creates entities from prefab names. The entity package provides
// the production implementation.
type Factory interface {
	Spawn(w *ecs.World, prefab string, at cp.Vector) (ecs.Entity, error)
}

// Viewport is the visible play area in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Deps collects the collaborators the tick systems need.
type Deps struct {
	Input    InputSource
	Factory  Factory
	Rand     *rand.Rand
	Viewport Viewport
}

// Install appends the systems to w in tick order. Render and HUD are added
// last so World.Draw paints them in that order.
func Install(w *ecs.World, deps Deps) {
	if w == nil {
		return
	}
	w.AddSystem(NewInputSystem(deps.Input))
	w.AddSystem(NewPlayerControllerSystem(deps.Viewport))
	w.AddSystem(NewParallaxSystem())
	w.AddSystem(NewSpawnSystem(deps.Rand, deps.Factory, deps.Viewport))
	w.AddSystem(NewWeaponSystem(deps.Factory))
	w.AddSystem(NewMovementSystem(deps.Viewport))
	w.AddSystem(NewAnimationSystem())
	w.AddSystem(NewCollisionSystem())
	w.AddSystem(NewPruneSystem(deps.Factory))
	w.AddSystem(NewAudioSystem())
	w.AddSystem(NewMusicSystem())
	w.AddSystem(NewRenderSystem())
	w.AddSystem(NewHUDSystem())
}
