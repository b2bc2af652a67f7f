package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

// WeaponSystem fires the player's weapons. Button weapons fire while the fire
// input is held and the cooldown has elapsed; auto weapons fire on their
// interval alone.
type WeaponSystem struct {
	factory Factory
}

func NewWeaponSystem(factory Factory) *WeaponSystem {
	return &WeaponSystem{factory: factory}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	if w == nil || s.factory == nil {
		return
	}

	dt := w.Delta()
	ecs.ForEach2(w, component.WeaponsComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, weapons *component.Weapons, t *component.Transform) {
		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok && !body.Active {
			return
		}
		fire := false
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			fire = input.Current.Fire
		}
		origin := t.Position

		for i := range *weapons {
			weapon := &(*weapons)[i]
			weapon.Elapsed += dt
			if weapon.Elapsed <= weapon.Interval {
				continue
			}
			if weapon.Trigger == component.TriggerButton && !fire {
				continue
			}
			weapon.Elapsed = 0

			at := cp.Vector{X: origin.X + weapon.OffsetX, Y: origin.Y}
			if _, err := s.factory.Spawn(w, weapon.Prefab, at); err != nil {
				log.Printf("weapon: %s: %v", weapon.Prefab, err)
				continue
			}
			w.Events().Push(ecs.Event{Type: ecs.EventShotFired, Data: ecs.ShotFired{Prefab: weapon.Prefab}})
		}
	})
}
