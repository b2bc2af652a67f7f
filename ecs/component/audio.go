package component

// Sound is the playback surface the audio systems need. *audio.Player
// satisfies it.
type Sound interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
	SetVolume(volume float64)
}

type Audio struct {
	Names   []string
	Players []Sound
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// Index returns the clip index for name, or -1.
func (a *Audio) Index(name string) int {
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

var AudioComponent = NewComponent[Audio]()
