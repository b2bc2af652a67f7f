package system

import (
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

const (
	cueExplosion = "explosion"
	cueLaser     = "laser"
)

// AudioSystem turns gameplay events into sound cues on the sound bank and
// then services every Audio component's play and stop flags. Missing players
// are skipped; playback never affects gameplay.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if bank, ok := ecs.First(w, component.SoundBankTagComponent.Kind()); ok {
		if audioComp, ok := ecs.Get(w, bank, component.AudioComponent.Kind()); ok {
			for _, evt := range w.Events().Pending() {
				switch evt.Type {
				case ecs.EventEnemyDestroyed:
					cue(audioComp, cueExplosion)
				case ecs.EventShotFired:
					cue(audioComp, cueLaser)
				}
			}
		}
	}

	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := len(audioComp.Players)
		for _, n := range []int{len(audioComp.Play), len(audioComp.Stop), len(audioComp.Volume)} {
			if n < count {
				count = n
			}
		}

		for i := 0; i < count; i++ {
			player := audioComp.Players[i]
			if audioComp.Play[i] && player != nil {
				player.SetVolume(audioComp.Volume[i])
				_ = player.Rewind()
				player.Play()
			}
			audioComp.Play[i] = false

			if audioComp.Stop[i] && player != nil && player.IsPlaying() {
				player.Pause()
			}
			audioComp.Stop[i] = false
		}
	})
}

func cue(a *component.Audio, name string) {
	if i := a.Index(name); i >= 0 && i < len(a.Play) {
		a.Play[i] = true
	}
}
