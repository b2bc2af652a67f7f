package system

import (
	"testing"

	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

type pushEvents struct {
	events []ecs.Event
}

func (p *pushEvents) Update(w *ecs.World) {
	for _, evt := range p.events {
		w.Events().Push(evt)
	}
	p.events = nil
}

func TestAudioCues(t *testing.T) {
	laser, boom := &fakeSound{}, &fakeSound{}
	w := ecs.NewWorld()
	src := &pushEvents{}
	w.AddSystem(src)
	w.AddSystem(NewAudioSystem())

	bank := ecs.CreateEntity(w)
	_ = ecs.Add(w, bank, component.SoundBankTagComponent.Kind(), &component.SoundBankTag{})
	_ = ecs.Add(w, bank, component.AudioComponent.Kind(), &component.Audio{
		Names:   []string{"laser", "explosion", "missing"},
		Players: []component.Sound{laser, boom, nil},
		Volume:  []float64{0.5, 0.7, 1},
		Play:    make([]bool, 3),
		Stop:    make([]bool, 3),
	})

	src.events = []ecs.Event{
		{Type: ecs.EventShotFired, Data: ecs.ShotFired{Prefab: "projectile.yaml"}},
		{Type: ecs.EventEnemyDestroyed, Data: ecs.EnemyDestroyed{Value: 100}},
	}
	w.Step(tick)

	if laser.plays != 1 || laser.volume != 0.5 {
		t.Fatalf("expected laser played once at 0.5, got plays=%d volume=%.1f", laser.plays, laser.volume)
	}
	if boom.plays != 1 || boom.volume != 0.7 {
		t.Fatalf("expected explosion played once at 0.7, got plays=%d volume=%.1f", boom.plays, boom.volume)
	}

	w.Step(tick)
	if laser.plays != 1 || boom.plays != 1 {
		t.Fatalf("cues replayed without events")
	}

	audioComp, _ := ecs.Get(w, bank, component.AudioComponent.Kind())
	audioComp.Play[2] = true
	audioComp.Stop[0] = true
	w.Step(tick)
	if laser.pauses != 1 {
		t.Fatalf("expected stop flag to pause the laser")
	}
	if audioComp.Play[2] || audioComp.Stop[0] {
		t.Fatalf("expected flags to be cleared")
	}
}

func TestMusicLoops(t *testing.T) {
	track := &fakeSound{}
	w := ecs.NewWorld()
	w.AddSystem(NewMusicSystem())
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{Player: track, Track: "gameMusic.wav", Volume: 0.4, Loop: true})

	w.Step(tick)
	if track.plays != 1 || track.volume != 0.4 {
		t.Fatalf("expected music to start at 0.4, got plays=%d volume=%.1f", track.plays, track.volume)
	}

	w.Step(tick)
	if track.plays != 1 {
		t.Fatalf("music restarted while playing")
	}

	// track ran out
	track.playing = false
	w.Step(tick)
	if track.plays != 2 || track.rewinds != 1 {
		t.Fatalf("expected a rewind and replay, got plays=%d rewinds=%d", track.plays, track.rewinds)
	}

	SetMusicPaused(w, true)
	if track.playing {
		t.Fatalf("expected music to pause")
	}
	SetMusicPaused(w, false)
	if !track.playing {
		t.Fatalf("expected music to resume")
	}
}

func TestMusicWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewMusicSystem())
	e := ecs.CreateEntity(w)
	music := &component.MusicPlayer{Track: "gameMusic.wav", Loop: true}
	_ = ecs.Add(w, e, component.MusicPlayerComponent.Kind(), music)

	w.Step(tick)
	if music.Started {
		t.Fatalf("music without a player should stay silent")
	}
}
