package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

// RenderSystem draws backgrounds, sprites and animations back to front by
// render layer, then by creation order. Inactive bodies are not drawn.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(_ *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	for _, e := range DrawOrder(w) {
		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok && !body.Active {
			continue
		}
		if layer, ok := ecs.Get(w, e, component.ParallaxComponent.Kind()); ok {
			drawParallax(screen, layer)
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			drawSprite(screen, s, t)
		}
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			drawAnimation(screen, anim)
		}
	}
}

// DrawOrder returns the drawable entities sorted by render layer. Entities on
// the same layer keep their creation order.
func DrawOrder(w *ecs.World) []ecs.Entity {
	var entities []ecs.Entity
	for _, e := range ecs.Entities(w) {
		if ecs.Has(w, e, component.SpriteComponent.Kind()) ||
			ecs.Has(w, e, component.AnimationComponent.Kind()) ||
			ecs.Has(w, e, component.ParallaxComponent.Kind()) {
			entities = append(entities, e)
		}
	}

	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return layerOf(entities[i]) < layerOf(entities[j])
	})
	return entities
}

func drawParallax(screen *ebiten.Image, layer *component.Parallax) {
	if layer.Image == nil {
		return
	}
	for _, x := range layer.Offsets {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, 0)
		screen.DrawImage(layer.Image, op)
	}
}

func drawSprite(screen *ebiten.Image, s *component.Sprite, t *component.Transform) {
	if s.Image == nil {
		return
	}
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	if s.TopLeft {
		op.GeoM.Translate(t.Position.X, t.Position.Y)
	} else {
		b := s.Image.Bounds()
		op.GeoM.Translate(t.Position.X-float64(b.Dx())*scale/2, t.Position.Y-float64(b.Dy())*scale/2)
	}
	tint(op, s.Tint)
	screen.DrawImage(s.Image, op)
}

func drawAnimation(screen *ebiten.Image, anim *component.Animation) {
	if !anim.Active || anim.Sheet == nil || anim.Source.Empty() || anim.Destination.Empty() {
		return
	}
	frame, ok := anim.Sheet.SubImage(anim.Source).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(anim.Destination.Dx())/float64(anim.Source.Dx()),
		float64(anim.Destination.Dy())/float64(anim.Source.Dy()),
	)
	op.GeoM.Translate(float64(anim.Destination.Min.X), float64(anim.Destination.Min.Y))
	tint(op, anim.Tint)
	screen.DrawImage(frame, op)
}

func tint(op *ebiten.DrawImageOptions, clr color.Color) {
	if clr == nil {
		return
	}
	op.ColorScale.ScaleWithColor(clr)
}
