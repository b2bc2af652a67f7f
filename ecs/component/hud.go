package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HUD draws the player's score and health.
type HUD struct {
	Face       text.Face
	Tint       color.Color
	X, Y       float64
	LineHeight float64
}

var HUDComponent = NewComponent[HUD]()
