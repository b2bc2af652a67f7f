package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
)

const gameOverText = "GAME OVER"

// HUDSystem draws the score and health of the player, and a game over banner
// once the player has been removed from play.
type HUDSystem struct{}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{}
}

func (h *HUDSystem) Update(_ *ecs.World) {}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ent, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		return
	}
	hud, ok := ecs.Get(w, ent, component.HUDComponent.Kind())
	if !ok || hud.Face == nil {
		return
	}

	lines, over := HUDLines(w)
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hud.X, hud.Y+float64(i)*hud.LineHeight)
		if hud.Tint != nil {
			op.ColorScale.ScaleWithColor(hud.Tint)
		}
		text.Draw(screen, line, hud.Face, op)
	}

	if over {
		b := screen.Bounds()
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(b.Dx())/2, float64(b.Dy())/2)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		if hud.Tint != nil {
			op.ColorScale.ScaleWithColor(hud.Tint)
		}
		text.Draw(screen, gameOverText, hud.Face, op)
	}
}

// HUDLines returns the status lines for the player and whether the game is
// over.
func HUDLines(w *ecs.World) ([]string, bool) {
	pe, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return nil, false
	}
	score, health := 0, 0
	if player, ok := ecs.Get(w, pe, component.PlayerComponent.Kind()); ok {
		score = player.Score
	}
	over := false
	if body, ok := ecs.Get(w, pe, component.BodyComponent.Kind()); ok {
		health = body.Health
		over = !body.Active
	}
	return []string{
		fmt.Sprintf("Score: %d", score),
		fmt.Sprintf("Health: %d", health),
	}, over
}
