package common

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Base resolution of the play area. game.yaml may override it.
const (
	BaseWidth  = 800
	BaseHeight = 480
)

// TickDuration is the elapsed time of one fixed update.
func TickDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
