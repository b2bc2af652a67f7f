package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/starfighter/assets"
	"github.com/milk9111/starfighter/common"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
	"github.com/milk9111/starfighter/ecs/entity"
	"github.com/milk9111/starfighter/ecs/system"
	"github.com/milk9111/starfighter/prefabs"
)

// Options are the command line overrides for game.yaml.
type Options struct {
	Debug  bool
	Watch  bool
	Policy string
	Seed   int64
}

type Game struct {
	world   *ecs.World
	factory *entity.Factory
	player  ecs.Entity
	cfg     *prefabs.GameSpec

	device    system.InputSource
	state     component.InputState
	prevState component.InputState

	ui     *ebitenui.UI
	paused bool
	quit   bool

	debug   bool
	watcher *prefabs.Watcher
	frames  int
}

func NewGame(opts Options) (*Game, error) {
	cfg, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	policy := component.DeathPolicy(strings.TrimSpace(opts.Policy))
	if policy != "" && !policy.Valid() {
		return nil, fmt.Errorf("game: unknown death policy %q", opts.Policy)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		world:  ecs.NewWorld(),
		cfg:    cfg,
		device: system.NewDeviceInput(),
		debug:  opts.Debug,
	}

	lib := assets.NewLibrary(assets.NewAudioContext())
	viewport := system.Viewport{Width: float64(cfg.Viewport.Width), Height: float64(cfg.Viewport.Height)}
	g.factory = entity.NewFactory(lib, viewport.Width)

	system.Install(g.world, system.Deps{
		Input:    system.InputSourceFunc(func() component.InputState { return g.state }),
		Factory:  g.factory,
		Rand:     rand.New(rand.NewSource(seed)),
		Viewport: viewport,
	})

	g.player, err = entity.Populate(g.world, g.factory, cfg, policy)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g.ui = NewPauseUI(g)

	if opts.Watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: prefab watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	log.Printf("game: started seed=%d policy=%s viewport=%dx%d", seed, g.deathPolicy(), cfg.Viewport.Width, cfg.Viewport.Height)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.prevState = g.state
	g.state = g.device.Poll()

	if g.quit || g.state.Exit {
		return ebiten.Termination
	}
	if g.state.Pause && !g.prevState.Pause {
		g.setPaused(!g.paused)
	}

	g.reloadPrefabs()

	if g.paused {
		g.ui.Update()
		return nil
	}

	g.world.Step(common.TickDuration())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)

	if g.debug {
		g.drawDebug(screen)
	}
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}

// Size returns the logical screen size.
func (g *Game) Size() (int, int) {
	return g.cfg.Viewport.Width, g.cfg.Viewport.Height
}

func (g *Game) Title() string {
	if g.cfg.Title == "" {
		return "starfighter"
	}
	return g.cfg.Title
}

// Close stops the prefab watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	system.SetMusicPaused(g.world, paused)
}

// reloadPrefabs drains pending file changes and drops the cached copies so
// the next spawn reads the edited prefab or script.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.factory.Invalidate(name)
			if strings.HasPrefix(name, "scripts/") {
				for _, s := range g.world.Systems() {
					if inv, ok := s.(interface{ Invalidate() }); ok {
						inv.Invalidate()
					}
				}
			}
			log.Printf("game: reloaded %s", name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: prefab watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) deathPolicy() component.DeathPolicy {
	if p, ok := ecs.Get(g.world, g.player, component.PlayerComponent.Kind()); ok {
		return p.DeathPolicy
	}
	return ""
}

var debugBoxColor = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}

func (g *Game) drawDebug(screen *ebiten.Image) {
	ecs.ForEach2(g.world, component.BodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.Body, t *component.Transform) {
		if !body.Active || body.Width <= 0 || body.Height <= 0 {
			return
		}
		bb := body.Bounds(t.Position)
		vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, debugBoxColor, false)
	})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f  entities: %d", ebiten.ActualFPS(), ebiten.ActualTPS(), len(ecs.Entities(g.world))), 8, g.cfg.Viewport.Height-20)
}
