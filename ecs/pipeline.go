package ecs

import "github.com/hajimehoshi/ebiten/v2"

// System advances the world by one tick.
type System interface {
	Update(w *World)
}

// RenderSystem is a System that also draws. Draw runs once per frame, in the
// same order the systems update.
type RenderSystem interface {
	System
	Draw(w *World, screen *ebiten.Image)
}

// pipeline is the ordered list of systems a world runs.
type pipeline struct {
	systems  []System
	renderer []RenderSystem
}

func (p *pipeline) add(s System) {
	if s == nil {
		return
	}
	p.systems = append(p.systems, s)
	if rs, ok := s.(RenderSystem); ok {
		p.renderer = append(p.renderer, rs)
	}
}

func (p *pipeline) update(w *World) {
	for _, s := range p.systems {
		s.Update(w)
	}
}

func (p *pipeline) draw(w *World, screen *ebiten.Image) {
	for _, rs := range p.renderer {
		rs.Draw(w, screen)
	}
}

func (p *pipeline) snapshot() []System {
	return append([]System(nil), p.systems...)
}

// Draw runs every render system against screen.
func (w *World) Draw(screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	w.pipeline.draw(w, screen)
}
