package component

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Animation plays a horizontal sprite strip. FrameTime and Elapsed are in
// milliseconds; Current always stays in [0, FrameCount).
type Animation struct {
	Sheet       *ebiten.Image
	FrameWidth  int
	FrameHeight int
	FrameCount  int
	FrameTime   int
	Elapsed     int
	Current     int
	Tint        color.Color
	Scale       float64
	Looping     bool
	Active      bool
	Source      image.Rectangle
	Destination image.Rectangle
}

// NewAnimation returns an active animation at frame zero.
func NewAnimation(sheet *ebiten.Image, frameWidth, frameHeight, frameCount, frameTime int, tint color.Color, scale float64, looping bool) *Animation {
	if scale == 0 {
		scale = 1
	}
	if tint == nil {
		tint = color.White
	}
	return &Animation{
		Sheet:       sheet,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		FrameCount:  frameCount,
		FrameTime:   frameTime,
		Tint:        tint,
		Scale:       scale,
		Looping:     looping,
		Active:      true,
	}
}

// Layout recomputes the source cell and the destination rectangle centered
// on center.
func (a *Animation) Layout(center cp.Vector) {
	a.Source = image.Rect(a.Current*a.FrameWidth, 0, a.Current*a.FrameWidth+a.FrameWidth, a.FrameHeight)

	w := int(float64(a.FrameWidth) * a.Scale)
	h := int(float64(a.FrameHeight) * a.Scale)
	x := int(center.X) - w/2
	y := int(center.Y) - h/2
	a.Destination = image.Rect(x, y, x+w, y+h)
}

// ScaledSize returns the on-screen frame size.
func (a *Animation) ScaledSize() (float64, float64) {
	return float64(a.FrameWidth) * a.Scale, float64(a.FrameHeight) * a.Scale
}

var AnimationComponent = NewComponent[Animation]()
