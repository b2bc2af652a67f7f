package system

import (
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

// MusicSystem starts the background track once and restarts it whenever a
// looping track runs out. A music entity without a player stays silent.
type MusicSystem struct{}

func NewMusicSystem() *MusicSystem {
	return &MusicSystem{}
}

func (m *MusicSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	music, ok := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	if !ok || music.Player == nil {
		return
	}

	if !music.Started {
		music.Player.SetVolume(music.Volume)
		music.Player.Play()
		music.Started = true
		return
	}

	if music.Loop && !music.Player.IsPlaying() {
		if err := music.Player.Rewind(); err != nil {
			return
		}
		music.Player.SetVolume(music.Volume)
		music.Player.Play()
	}
}

// SetMusicPaused pauses or resumes the background track.
func SetMusicPaused(w *ecs.World, paused bool) {
	ent, ok := ecs.First(w, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	music, ok := ecs.Get(w, ent, component.MusicPlayerComponent.Kind())
	if !ok || music.Player == nil || !music.Started {
		return
	}
	if paused {
		music.Player.Pause()
		return
	}
	music.Player.Play()
}
