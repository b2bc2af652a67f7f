package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

// collider is one active body with its box for the current tick.
type collider struct {
	entity ecs.Entity
	body   *component.Body
	bounds cp.BB
}

// CollisionSystem resolves damage between the player, enemies, hearts and
// shots. It runs after movement and before pruning, so health changed here is
// visible to the prune pass of the same tick.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (c *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	groups := collectColliders(w)
	enemies := groups[component.KindEnemy]

	if pe, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		c.resolvePlayer(w, pe, enemies, groups[component.KindHeart])
	}

	for _, shot := range groups[component.KindProjectile] {
		for _, enemy := range enemies {
			if !enemy.body.Active || !shot.bounds.Intersects(enemy.bounds) {
				continue
			}
			enemy.body.Health -= shot.body.Damage
			shot.body.Active = false
			break
		}
	}

	for _, bolt := range groups[component.KindPlasma] {
		for _, enemy := range enemies {
			if !enemy.body.Active || !bolt.bounds.Intersects(enemy.bounds) {
				continue
			}
			enemy.body.Health -= bolt.body.Damage
		}
	}
}

func (c *CollisionSystem) resolvePlayer(w *ecs.World, pe ecs.Entity, enemies, hearts []collider) {
	body, ok := ecs.Get(w, pe, component.BodyComponent.Kind())
	if !ok || !body.Active {
		return
	}
	t, ok := ecs.Get(w, pe, component.TransformComponent.Kind())
	if !ok {
		return
	}
	bounds := body.Bounds(t.Position)

	for _, enemy := range enemies {
		if !body.Active {
			return
		}
		if !enemy.body.Active || !bounds.Intersects(enemy.bounds) {
			continue
		}
		body.Health -= enemy.body.Damage
		enemy.body.Health = 0
		if body.Health <= 0 {
			killPlayer(w, pe, body)
		}
	}

	for _, heart := range hearts {
		if !body.Active {
			return
		}
		if !heart.body.Active || !bounds.Intersects(heart.bounds) {
			continue
		}
		// heart damage is negative, so this heals
		body.Health -= heart.body.Damage
		heart.body.Health = 0
	}
}

// killPlayer applies the player's death policy.
func killPlayer(w *ecs.World, pe ecs.Entity, body *component.Body) {
	player, ok := ecs.Get(w, pe, component.PlayerComponent.Kind())
	if !ok {
		body.Active = false
		return
	}
	player.Deaths++

	policy := player.DeathPolicy
	switch policy {
	case component.DeathDeactivate:
		body.Active = false
	default:
		policy = component.DeathReset
		body.Health = player.StartHealth
		player.Score = 0
	}
	log.Printf("collision: player died (%s), deaths=%d", policy, player.Deaths)
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Data: ecs.PlayerDied{Entity: pe, Policy: string(policy)}})
}

// collectColliders groups the active non-player bodies by kind in insertion
// order.
func collectColliders(w *ecs.World) map[component.Kind][]collider {
	groups := make(map[component.Kind][]collider)
	ecs.ForEach2(w, component.BodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.Body, t *component.Transform) {
		if !body.Active || body.Kind == component.KindPlayer {
			return
		}
		groups[body.Kind] = append(groups[body.Kind], collider{entity: e, body: body, bounds: body.Bounds(t.Position)})
	})
	return groups
}
