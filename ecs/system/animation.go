package system

import (
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

// AnimationSystem advances sprite strips on elapsed time and lays out their
// source and destination rectangles around the entity position.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	elapsed := int(w.Delta().Milliseconds())
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, anim *component.Animation, t *component.Transform) {
		body, hasBody := ecs.Get(w, e, component.BodyComponent.Kind())
		if hasBody && !body.Active {
			return
		}

		Advance(anim, elapsed)
		if !anim.Active {
			if hasBody {
				body.Active = false
			}
			return
		}
		anim.Layout(t.Position)
	})
}

// Advance accumulates elapsedMs and steps to the next frame once the frame
// time is exceeded. Wrapping past the last frame clears Active unless the
// animation loops. It is a no-op on an inactive animation.
func Advance(anim *component.Animation, elapsedMs int) {
	if anim == nil || !anim.Active || anim.FrameCount <= 0 {
		return
	}

	anim.Elapsed += elapsedMs
	if anim.Elapsed <= anim.FrameTime {
		return
	}
	anim.Current++
	if anim.Current >= anim.FrameCount {
		anim.Current = 0
		if !anim.Looping {
			anim.Active = false
		}
	}
	anim.Elapsed = 0
}
