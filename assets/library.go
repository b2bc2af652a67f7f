package assets

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/starfighter/ecs/component"
)

// Pattern selects how a missing image is synthesized.
type Pattern int

const (
	PatternShape Pattern = iota
	PatternFill
	PatternStrip
	PatternStars
)

// Placeholder describes the image to synthesize when an asset is missing.
type Placeholder struct {
	Width   int
	Height  int
	Frames  int
	Color   color.Color
	Pattern Pattern
}

// Library is the asset-handle table shared by everything that builds
// entities. Images are cached by path; each Sound call returns a new player
// so entities never share playback state.
type Library struct {
	images map[string]*ebiten.Image
	ctx    *audio.Context
}

// NewLibrary creates a library. ctx may be nil, in which case every sound
// lookup returns nil.
func NewLibrary(ctx *audio.Context) *Library {
	return &Library{
		images: make(map[string]*ebiten.Image),
		ctx:    ctx,
	}
}

// NewAudioContext creates the process-wide audio context.
func NewAudioContext() *audio.Context {
	return audio.NewContext(sampleRate)
}

// Image returns the embedded image at path, or a synthesized placeholder when
// it cannot be loaded.
func (l *Library) Image(path string, p Placeholder) *ebiten.Image {
	if l == nil {
		return nil
	}
	if img, ok := l.images[path]; ok {
		return img
	}

	var img *ebiten.Image
	if path != "" {
		loaded, err := LoadImage(path)
		if err != nil {
			log.Printf("assets: %s: %v, using placeholder", path, err)
		} else {
			img = loaded
		}
	}
	if img == nil {
		rgba := PlaceholderImage(p)
		if rgba == nil {
			return nil
		}
		img = ebiten.NewImageFromImage(rgba)
	}
	l.images[path] = img
	return img
}

// Sound returns a player for the embedded clip at path. Failures are logged
// and yield nil; callers treat a nil Sound as silence.
func (l *Library) Sound(path string) component.Sound {
	if l == nil || l.ctx == nil || path == "" {
		return nil
	}
	p, err := LoadAudioPlayer(l.ctx, path)
	if err != nil || p == nil {
		log.Printf("assets: sound %s: %v", path, err)
		return nil
	}
	return p
}

// PlaceholderImage draws a stand-in for a missing asset.
func PlaceholderImage(p Placeholder) *image.RGBA {
	if p.Width <= 0 || p.Height <= 0 {
		return nil
	}
	clr := p.Color
	if clr == nil {
		clr = color.White
	}
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))

	switch p.Pattern {
	case PatternStars:
		// sparse dots on a transparent layer
		for i := 0; i < p.Width*p.Height/900+1; i++ {
			x := (i*7919 + 13) % p.Width
			y := (i*104729 + 7) % p.Height
			img.Set(x, y, clr)
			if x+1 < p.Width {
				img.Set(x+1, y, clr)
			}
		}
	case PatternStrip:
		frames := p.Frames
		if frames <= 0 {
			frames = 1
		}
		cell := p.Width / frames
		r, g, b, _ := clr.RGBA()
		for f := 0; f < frames; f++ {
			// brightness ramps across frames so playback is visible
			shade := 0.5 + 0.5*float64(f)/float64(frames)
			c := color.RGBA{
				R: uint8(float64(r>>8) * shade),
				G: uint8(float64(g>>8) * shade),
				B: uint8(float64(b>>8) * shade),
				A: 0xff,
			}
			fillEllipse(img, image.Rect(f*cell, 0, f*cell+cell, p.Height), c)
		}
	case PatternFill:
		for y := 0; y < p.Height; y++ {
			for x := 0; x < p.Width; x++ {
				img.Set(x, y, clr)
			}
		}
	default:
		fillEllipse(img, img.Bounds(), clr)
	}
	return img
}

func fillEllipse(img *image.RGBA, r image.Rectangle, clr color.Color) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, clr)
			}
		}
	}
}
