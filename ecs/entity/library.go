package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfighter/assets"
	"github.com/milk9111/starfighter/ecs/component"
)

// nopLibrary yields no images and no sounds.
type nopLibrary struct{}

func (nopLibrary) Image(string, assets.Placeholder) *ebiten.Image { return nil }

func (nopLibrary) Sound(string) component.Sound { return nil }
