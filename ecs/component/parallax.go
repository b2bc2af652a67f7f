package component

import "github.com/hajimehoshi/ebiten/v2"

// Parallax tiles Image horizontally and scrolls it by Speed pixels per tick.
type Parallax struct {
	Image   *ebiten.Image
	Speed   float64
	Width   float64
	Offsets []float64
}

var ParallaxComponent = NewComponent[Parallax]()
