package entity

import (
	"image/color"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
	"github.com/milk9111/starfighter/prefabs"
)

func TestBuildPrefabs(t *testing.T) {
	tests := []struct {
		prefab string
		check  func(t *testing.T, w *ecs.World, e ecs.Entity)
	}{
		{"player.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) || !ecs.Has(w, e, component.InputComponent.Kind()) {
				t.Fatalf("expected player tag and input")
			}
			player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
			if player.MoveSpeed != 8 || player.StartHealth != 100 || player.DeathPolicy != component.DeathReset {
				t.Fatalf("unexpected player %+v", player)
			}
			body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
			if body.Kind != component.KindPlayer || body.Width != 115 || body.Height != 69 || !body.Active {
				t.Fatalf("unexpected player body %+v", body)
			}
			weapons, _ := ecs.Get(w, e, component.WeaponsComponent.Kind())
			if len(*weapons) != 2 {
				t.Fatalf("expected 2 weapons, got %d", len(*weapons))
			}
			gun, plasma := (*weapons)[0], (*weapons)[1]
			if gun.Interval != 150*time.Millisecond || gun.Trigger != component.TriggerButton {
				t.Fatalf("unexpected gun %+v", gun)
			}
			if plasma.Interval != 5*time.Second || plasma.Trigger != component.TriggerAuto {
				t.Fatalf("unexpected plasma weapon %+v", plasma)
			}
		}},
		{"enemy.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
			if body.Health != 10 || body.Damage != 10 || body.Value != 100 || body.Width != 47 || body.Height != 61 {
				t.Fatalf("unexpected enemy body %+v", body)
			}
			vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
			if vel.X != -6 || vel.Script != "drift.tengo" {
				t.Fatalf("unexpected enemy velocity %+v", vel)
			}
			anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
			if anim.FrameCount != 8 || anim.FrameTime != 30 || !anim.Looping {
				t.Fatalf("unexpected enemy animation %+v", anim)
			}
		}},
		{"heart.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
			if body.Damage != -30 || body.Value != 500 || body.Width != 32 || body.Height != 28 {
				t.Fatalf("unexpected heart body %+v", body)
			}
		}},
		{"explosion.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
			if anim.FrameCount != 12 || anim.FrameTime != 45 || anim.Looping {
				t.Fatalf("unexpected explosion animation %+v", anim)
			}
		}},
		{"enemy_spawner.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			sp, _ := ecs.Get(w, e, component.SpawnerComponent.Kind())
			if sp.Prefab != "enemy.yaml" || sp.Interval != time.Second || sp.MarginY != 100 {
				t.Fatalf("unexpected spawner %+v", sp)
			}
		}},
		{"heart_spawner.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			sp, _ := ecs.Get(w, e, component.SpawnerComponent.Kind())
			if sp.Interval != 30*time.Second || sp.MarginY != 0 {
				t.Fatalf("unexpected spawner %+v", sp)
			}
		}},
		{"parallax_near.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			layer, _ := ecs.Get(w, e, component.ParallaxComponent.Kind())
			if layer.Speed != -2 || layer.Width != 800 || len(layer.Offsets) != 2 || layer.Offsets[1] != 800 {
				t.Fatalf("unexpected parallax %+v", layer)
			}
		}},
		{"sound_bank.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			a, _ := ecs.Get(w, e, component.AudioComponent.Kind())
			if a.Index("laser") != 0 || a.Index("explosion") != 1 || len(a.Play) != 2 {
				t.Fatalf("unexpected sound bank %+v", a)
			}
		}},
		{"music_player.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			m, _ := ecs.Get(w, e, component.MusicPlayerComponent.Kind())
			if m.Track != "gameMusic.wav" || !m.Loop || m.Volume != 0.4 {
				t.Fatalf("unexpected music player %+v", m)
			}
		}},
		{"hud.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			h, _ := ecs.Get(w, e, component.HUDComponent.Kind())
			if h.Face == nil || h.LineHeight != 20 {
				t.Fatalf("unexpected hud %+v", h)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.prefab, func(t *testing.T) {
			w := ecs.NewWorld()
			f := NewFactory(nil, 800)
			e, err := f.Build(w, tc.prefab)
			if err != nil {
				t.Fatalf("build %s: %v", tc.prefab, err)
			}
			tc.check(t, w, e)
		})
	}
}

func TestBuildRejectsBadPrefab(t *testing.T) {
	tests := []struct {
		name       string
		components map[string]any
	}{
		{"unknown_component", map[string]any{"transform": map[string]any{}, "bogus": map[string]any{}}},
		{"unknown_kind", map[string]any{"body": map[string]any{"kind": "asteroid"}}},
		{"bad_death_policy", map[string]any{"player": map[string]any{"death_policy": "respawn"}}},
		{"bad_trigger", map[string]any{"weapons": []any{map[string]any{"prefab": "x.yaml", "trigger": "laser"}}}},
		{"bad_color", map[string]any{"sprite": map[string]any{"color": "notacolor"}}},
		{"empty", map[string]any{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			spec := prefabs.EntityBuildSpec{Name: tc.name, Components: tc.components}
			if _, err := buildEntity(w, spec, &buildContext{PrefabPath: tc.name, Library: nopLibrary{}}); err == nil {
				t.Fatalf("expected an error")
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Fatalf("failed build leaked %d entities", n)
			}
		})
	}
}

func TestSpawnPlacesEntity(t *testing.T) {
	w := ecs.NewWorld()
	f := NewFactory(nil, 800)
	at := cp.Vector{X: 823.5, Y: 150}

	e, err := f.Spawn(w, "enemy.yaml", at)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.Position != at {
		t.Fatalf("expected position %v, got %v", at, tr.Position)
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if anim.Destination.Dx() != 47 || anim.Destination.Min.X != 800 {
		t.Fatalf("expected animation laid out at the spawn point, got %v", anim.Destination)
	}

	if _, err := f.Spawn(w, "nope.yaml", at); err == nil {
		t.Fatalf("expected an error for a missing prefab")
	}
}

func TestFactoryCache(t *testing.T) {
	f := NewFactory(nil, 800)
	w := ecs.NewWorld()
	if _, err := f.Build(w, "heart.yaml"); err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, ok := f.specs["heart.yaml"]; !ok {
		t.Fatalf("expected heart.yaml to be cached")
	}
	f.Invalidate("heart.yaml")
	if _, ok := f.specs["heart.yaml"]; ok {
		t.Fatalf("expected heart.yaml to be dropped")
	}
	if _, err := f.Build(w, "enemy.yaml"); err != nil {
		t.Fatalf("build: %v", err)
	}
	f.Invalidate()
	if len(f.specs) != 0 {
		t.Fatalf("expected empty cache, got %d", len(f.specs))
	}
}

func TestPopulate(t *testing.T) {
	cfg, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("load game spec: %v", err)
	}

	t.Run("default_policy", func(t *testing.T) {
		w := ecs.NewWorld()
		player, err := Populate(w, NewFactory(nil, 800), cfg, "")
		if err != nil {
			t.Fatalf("populate: %v", err)
		}
		if n := len(ecs.Entities(w)); n != len(cfg.Scene)+1 {
			t.Fatalf("expected %d entities, got %d", len(cfg.Scene)+1, n)
		}
		tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
		if want := (cp.Vector{X: 57.5, Y: 240}); tr.Position != want {
			t.Fatalf("expected player at %v, got %v", want, tr.Position)
		}
		p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
		if p.DeathPolicy != component.DeathReset {
			t.Fatalf("expected reset policy, got %q", p.DeathPolicy)
		}
	})

	t.Run("policy_override", func(t *testing.T) {
		w := ecs.NewWorld()
		player, err := Populate(w, NewFactory(nil, 800), cfg, component.DeathDeactivate)
		if err != nil {
			t.Fatalf("populate: %v", err)
		}
		p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
		if p.DeathPolicy != component.DeathDeactivate {
			t.Fatalf("expected deactivate policy, got %q", p.DeathPolicy)
		}
	})

	t.Run("bad_policy", func(t *testing.T) {
		if _, err := Populate(ecs.NewWorld(), NewFactory(nil, 800), cfg, "explode"); err == nil {
			t.Fatalf("expected an error for an unknown policy")
		}
	})
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{"", color.White, false},
		{"white", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"  SteelBlue ", color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}, false},
		{"#ff000080", color.NRGBA{R: 0xff, A: 0x80}, false},
		{"#12345", nil, true},
		{"nope", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseColor(tc.in, color.White)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
