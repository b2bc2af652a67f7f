package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
	"github.com/milk9111/starfighter/prefabs"
)

// Populate builds the scene prefabs listed in cfg and then the player, which
// starts at the left edge halfway down the viewport. policy overrides the
// player's death policy when set.
func Populate(w *ecs.World, f *Factory, cfg *prefabs.GameSpec, policy component.DeathPolicy) (ecs.Entity, error) {
	if cfg == nil {
		return 0, fmt.Errorf("populate: game spec is nil")
	}
	if policy == "" {
		policy = component.DeathPolicy(cfg.DeathPolicy)
	}
	if policy != "" && !policy.Valid() {
		return 0, fmt.Errorf("populate: unknown death policy %q", policy)
	}

	for _, name := range cfg.Scene {
		if _, err := f.Build(w, name); err != nil {
			return 0, fmt.Errorf("populate: %w", err)
		}
	}

	player, err := f.Build(w, cfg.Player)
	if err != nil {
		return 0, fmt.Errorf("populate: %w", err)
	}
	if !ecs.Has(w, player, component.PlayerTagComponent.Kind()) {
		return 0, fmt.Errorf("populate: %q has no player_tag", cfg.Player)
	}

	start := cp.Vector{X: 0, Y: float64(cfg.Viewport.Height) / 2}
	if body, ok := ecs.Get(w, player, component.BodyComponent.Kind()); ok {
		start.X = body.Width / 2
	}
	if err := SetPosition(w, player, start); err != nil {
		return 0, fmt.Errorf("populate: place player: %w", err)
	}

	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok && policy != "" {
		p.DeathPolicy = policy
	}
	return player, nil
}
