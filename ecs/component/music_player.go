package component

// MusicPlayer stores background music state on a dedicated ECS entity.
type MusicPlayer struct {
	Player  Sound
	Track   string
	Volume  float64
	Loop    bool
	Started bool
}

var MusicPlayerComponent = NewComponent[MusicPlayer]()
