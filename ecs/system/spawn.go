package system

import (
	"log"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

// SpawnSystem advances every Spawner by the tick delta and creates one entity
// from the right edge whenever the accumulated time exceeds the interval.
type SpawnSystem struct {
	rng      *rand.Rand
	factory  Factory
	viewport Viewport
}

func NewSpawnSystem(rng *rand.Rand, factory Factory, viewport Viewport) *SpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &SpawnSystem{rng: rng, factory: factory, viewport: viewport}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || s.factory == nil {
		return
	}

	dt := w.Delta()
	ecs.ForEach(w, component.SpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.Spawner) {
		sp.Elapsed += dt
		if sp.Elapsed <= sp.Interval {
			return
		}
		sp.Elapsed = 0

		y := s.spawnY(sp.MarginY)
		e, err := s.factory.Spawn(w, sp.Prefab, cp.Vector{X: s.viewport.Width, Y: y})
		if err != nil {
			log.Printf("spawn: %s: %v", sp.Prefab, err)
			return
		}
		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				t.Position.X = s.viewport.Width + body.Width/2
			}
		}
	})
}

// spawnY draws a y position uniformly from [margin, height-margin].
func (s *SpawnSystem) spawnY(margin float64) float64 {
	span := s.viewport.Height - 2*margin
	if span <= 0 {
		return s.viewport.Height / 2
	}
	return margin + s.rng.Float64()*span
}
