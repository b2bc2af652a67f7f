package system

import (
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

// ParallaxSystem scrolls each background layer and recycles tiles that leave
// the screen.
type ParallaxSystem struct{}

func NewParallaxSystem() *ParallaxSystem {
	return &ParallaxSystem{}
}

func (p *ParallaxSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.ParallaxComponent.Kind(), func(_ ecs.Entity, layer *component.Parallax) {
		if layer.Width <= 0 || len(layer.Offsets) == 0 {
			return
		}
		span := layer.Width * float64(len(layer.Offsets))
		for i := range layer.Offsets {
			layer.Offsets[i] += layer.Speed
			if layer.Speed <= 0 {
				if layer.Offsets[i] <= -layer.Width {
					layer.Offsets[i] += span
				}
			} else if layer.Offsets[i] >= span-layer.Width {
				layer.Offsets[i] -= span
			}
		}
	})
}
