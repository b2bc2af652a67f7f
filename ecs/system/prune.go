package system

import (
	"log"

	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

const defaultExplosionPrefab = "explosion.yaml"

// pruneOrder is the category order of the prune pass. The player is never
// pruned.
var pruneOrder = []component.Kind{
	component.KindEnemy,
	component.KindHeart,
	component.KindProjectile,
	component.KindPlasma,
	component.KindExplosion,
}

// PruneSystem removes inactive bodies. Enemies and hearts that lost their
// health are credited to the player's score first, and destroyed enemies
// leave an explosion behind. Bodies that expired offscreen are removed
// silently.
type PruneSystem struct {
	factory         Factory
	ExplosionPrefab string
}

func NewPruneSystem(factory Factory) *PruneSystem {
	return &PruneSystem{factory: factory, ExplosionPrefab: defaultExplosionPrefab}
}

func (p *PruneSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var player *component.Player
	if pe, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		player, _ = ecs.Get(w, pe, component.PlayerComponent.Kind())
	}

	groups := make(map[component.Kind][]ecs.Entity)
	ecs.ForEach(w, component.BodyComponent.Kind(), func(e ecs.Entity, body *component.Body) {
		groups[body.Kind] = append(groups[body.Kind], e)
	})

	for _, kind := range pruneOrder {
		ents := groups[kind]
		for i := len(ents) - 1; i >= 0; i-- {
			p.prune(w, ents[i], player)
		}
	}
}

func (p *PruneSystem) prune(w *ecs.World, e ecs.Entity, player *component.Player) {
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return
	}
	scored := body.Kind == component.KindEnemy || body.Kind == component.KindHeart
	if scored && body.Destroyed() {
		body.Active = false
	}
	if body.Active {
		return
	}

	if scored && body.Destroyed() {
		if player != nil {
			player.Score += body.Value
		}
		p.destroyed(w, e, body)
	}
	ecs.DestroyEntity(w, e)
}

func (p *PruneSystem) destroyed(w *ecs.World, e ecs.Entity, body *component.Body) {
	if body.Kind == component.KindHeart {
		w.Events().Push(ecs.Event{Type: ecs.EventHeartCollected, Data: ecs.HeartCollected{Entity: e, Value: body.Value}})
		return
	}

	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	at := t.Position
	w.Events().Push(ecs.Event{Type: ecs.EventEnemyDestroyed, Data: ecs.EnemyDestroyed{Entity: e, X: at.X, Y: at.Y, Value: body.Value}})

	if p.factory == nil || p.ExplosionPrefab == "" {
		return
	}
	if _, err := p.factory.Spawn(w, p.ExplosionPrefab, at); err != nil {
		log.Printf("prune: explosion: %v", err)
	}
}
