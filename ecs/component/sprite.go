package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a static image drawn centered on the transform.
type Sprite struct {
	Image *ebiten.Image
	Tint  color.Color
	// TopLeft draws the image with its top-left corner at the transform,
	// used for full-screen backgrounds.
	TopLeft bool
}

var SpriteComponent = NewComponent[Sprite]()

// RenderLayer orders drawables back to front. Ties keep creation order.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
