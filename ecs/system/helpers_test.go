package system

import (
	"fmt"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

const tick = 16 * time.Millisecond

var testViewport = Viewport{Width: 800, Height: 480}

type spawnCall struct {
	prefab string
	at     cp.Vector
}

// stubFactory builds bare bodies for a fixed set of prefab names.
type stubFactory struct {
	bodies map[string]component.Body
	calls  []spawnCall
}

func newStubFactory() *stubFactory {
	return &stubFactory{bodies: map[string]component.Body{
		"enemy.yaml":      {Kind: component.KindEnemy, Health: 10, Damage: 10, Value: 100, Width: 47, Height: 61},
		"heart.yaml":      {Kind: component.KindHeart, Health: 2, Damage: -30, Value: 500, Width: 32, Height: 28},
		"projectile.yaml": {Kind: component.KindProjectile, Health: 1, Damage: 2, Width: 46, Height: 16},
		"plasma.yaml":     {Kind: component.KindPlasma, Health: 1, Damage: 50, Width: 40, Height: 40},
		"explosion.yaml":  {Kind: component.KindExplosion, Health: 1, Width: 134, Height: 134},
	}}
}

func (f *stubFactory) Spawn(w *ecs.World, prefab string, at cp.Vector) (ecs.Entity, error) {
	body, ok := f.bodies[prefab]
	if !ok {
		return 0, fmt.Errorf("unknown prefab %q", prefab)
	}
	f.calls = append(f.calls, spawnCall{prefab: prefab, at: at})
	body.Active = true
	return addBody(w, body, at), nil
}

func (f *stubFactory) count(prefab string) int {
	n := 0
	for _, c := range f.calls {
		if c.prefab == prefab {
			n++
		}
	}
	return n
}

func addBody(w *ecs.World, body component.Body, at cp.Vector) ecs.Entity {
	e := ecs.CreateEntity(w)
	b := body
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &b)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: at, Scale: 1})
	return e
}

func addEnemy(w *ecs.World, at cp.Vector, health int) (ecs.Entity, *component.Body) {
	e := addBody(w, component.Body{Kind: component.KindEnemy, Active: true, Health: health, Damage: 10, Value: 100, Width: 47, Height: 61}, at)
	b, _ := ecs.Get(w, e, component.BodyComponent.Kind())
	return e, b
}

func addShot(w *ecs.World, kind component.Kind, at cp.Vector, damage int) (ecs.Entity, *component.Body) {
	e := addBody(w, component.Body{Kind: kind, Active: true, Health: 1, Damage: damage, Width: 46, Height: 16}, at)
	b, _ := ecs.Get(w, e, component.BodyComponent.Kind())
	return e, b
}

func addTestPlayer(w *ecs.World, at cp.Vector, policy component.DeathPolicy) (ecs.Entity, *component.Player, *component.Body) {
	e := addBody(w, component.Body{Kind: component.KindPlayer, Active: true, Health: 100, Width: 115, Height: 69}, at)
	player := &component.Player{MoveSpeed: 8, StartHealth: 100, DeathPolicy: policy}
	_ = ecs.Add(w, e, component.PlayerComponent.Kind(), player)
	_ = ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
	b, _ := ecs.Get(w, e, component.BodyComponent.Kind())
	return e, player, b
}

func countKind(w *ecs.World, kind component.Kind) int {
	n := 0
	ecs.ForEach(w, component.BodyComponent.Kind(), func(_ ecs.Entity, b *component.Body) {
		if b.Kind == kind {
			n++
		}
	})
	return n
}

type fakeSound struct {
	plays   int
	rewinds int
	pauses  int
	playing bool
	volume  float64
}

func (s *fakeSound) Play() { s.plays++; s.playing = true }
func (s *fakeSound) Pause() { s.pauses++; s.playing = false }
func (s *fakeSound) IsPlaying() bool { return s.playing }
func (s *fakeSound) Rewind() error { s.rewinds++; return nil }
func (s *fakeSound) SetVolume(v float64) { s.volume = v }
