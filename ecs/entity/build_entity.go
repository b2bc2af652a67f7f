package entity

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/starfighter/assets"
	"github.com/milk9111/starfighter/ecs"
	"github.com/milk9111/starfighter/ecs/component"
	"github.com/milk9111/starfighter/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Library is the asset-handle table entity builders draw from.
type Library interface {
	Image(path string, p assets.Placeholder) *ebiten.Image
	Sound(path string) component.Sound
}

type buildContext struct {
	PrefabPath string
	Library    Library
	ViewWidth  float64

	// size of the last sprite added, used when a body has no explicit size
	spriteW, spriteH float64
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":     addPlayerTag,
	"sound_bank_tag": addSoundBankTag,
	"input":          addInput,
	"player":         addPlayer,
	"transform":      addTransform,
	"sprite":         addSprite,
	"animation":      addAnimation,
	"body":           addBody,
	"velocity":       addVelocity,
	"weapons":        addWeapons,
	"spawner":        addSpawner,
	"parallax":       addParallax,
	"audio":          addAudio,
	"music":          addMusic,
	"hud":            addHUD,
	"render_layer":   addRenderLayer,
}

// body sizes default from sprite and animation, so those come first
var componentBuildOrder = []string{
	"player_tag",
	"sound_bank_tag",
	"input",
	"player",
	"transform",
	"sprite",
	"animation",
	"body",
	"velocity",
	"weapons",
	"spawner",
	"parallax",
	"audio",
	"music",
	"hud",
	"render_layer",
}

func buildEntity(w *ecs.World, spec prefabs.EntityBuildSpec, ctx *buildContext) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", ctx.PrefabPath)
	}

	e := ecs.CreateEntity(w)

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	order := append([]string(nil), componentBuildOrder...)
	var extra []string
	for name := range remaining {
		if !containsString(componentBuildOrder, name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	for _, name := range order {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", ctx.PrefabPath, name)
		}
		if err := builder(w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", ctx.PrefabPath, name, err)
		}
	}

	return e, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addSoundBankTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.SoundBankTagComponent.Kind(), &component.SoundBankTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type playerSpec = prefabs.PlayerComponentSpec

const defaultStartHealth = 100

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	policy := component.DeathReset
	if spec.DeathPolicy != "" {
		policy = component.DeathPolicy(spec.DeathPolicy)
		if !policy.Valid() {
			return fmt.Errorf("unknown death policy %q", spec.DeathPolicy)
		}
	}
	if spec.StartHealth <= 0 {
		spec.StartHealth = defaultStartHealth
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:   spec.MoveSpeed,
		StartHealth: spec.StartHealth,
		DeathPolicy: policy,
	})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.Scale == 0 {
		spec.Scale = 1
	}
	t := &component.Transform{Scale: spec.Scale}
	t.Position.X = spec.X
	t.Position.Y = spec.Y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	base, err := parseColor(spec.Color, color.White)
	if err != nil {
		return fmt.Errorf("sprite color: %w", err)
	}
	tint, err := parseColor(spec.Tint, color.White)
	if err != nil {
		return fmt.Errorf("sprite tint: %w", err)
	}

	pattern := assets.PatternShape
	if spec.TopLeft {
		pattern = assets.PatternFill
	}
	img := ctx.Library.Image(spec.Image, assets.Placeholder{
		Width:   spec.Width,
		Height:  spec.Height,
		Color:   base,
		Pattern: pattern,
	})

	ctx.spriteW, ctx.spriteH = float64(spec.Width), float64(spec.Height)
	if img != nil {
		b := img.Bounds()
		ctx.spriteW, ctx.spriteH = float64(b.Dx()), float64(b.Dy())
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok && t.Scale > 0 {
		ctx.spriteW *= t.Scale
		ctx.spriteH *= t.Scale
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   img,
		Tint:    tint,
		TopLeft: spec.TopLeft,
	})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	if spec.FrameWidth <= 0 || spec.FrameHeight <= 0 || spec.FrameCount <= 0 {
		return fmt.Errorf("animation needs positive frame size and count, got %dx%d x%d", spec.FrameWidth, spec.FrameHeight, spec.FrameCount)
	}
	base, err := parseColor(spec.Color, color.White)
	if err != nil {
		return fmt.Errorf("animation color: %w", err)
	}
	tint, err := parseColor(spec.Tint, color.White)
	if err != nil {
		return fmt.Errorf("animation tint: %w", err)
	}

	sheet := ctx.Library.Image(spec.Sheet, assets.Placeholder{
		Width:   spec.FrameWidth * spec.FrameCount,
		Height:  spec.FrameHeight,
		Frames:  spec.FrameCount,
		Color:   base,
		Pattern: assets.PatternStrip,
	})

	anim := component.NewAnimation(sheet, spec.FrameWidth, spec.FrameHeight, spec.FrameCount, spec.FrameTimeMs, tint, spec.Scale, spec.Looping)
	return ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
}

type bodySpec = prefabs.BodyComponentSpec

func addBody(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[bodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode body spec: %w", err)
	}
	kind, ok := component.ParseKind(spec.Kind)
	if !ok {
		return fmt.Errorf("unknown body kind %q", spec.Kind)
	}

	width, height := spec.Width, spec.Height
	if width == 0 || height == 0 {
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			width, height = anim.ScaledSize()
		} else {
			width, height = ctx.spriteW, ctx.spriteH
		}
	}

	return ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Kind:   kind,
		Active: true,
		Health: spec.Health,
		Damage: spec.Damage,
		Value:  spec.Value,
		Width:  width,
		Height: height,
	})
}

type velocitySpec = prefabs.VelocityComponentSpec

func addVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[velocitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode velocity spec: %w", err)
	}
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{
		X:      spec.X,
		Y:      spec.Y,
		Script: strings.TrimSpace(spec.Script),
	})
}

type weaponSpec = prefabs.WeaponComponentSpec

func addWeapons(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	specs, err := prefabs.DecodeComponentSpec[[]weaponSpec](raw)
	if err != nil {
		return fmt.Errorf("decode weapons spec: %w", err)
	}

	weapons := make(component.Weapons, 0, len(specs))
	for i, spec := range specs {
		if spec.Prefab == "" {
			return fmt.Errorf("weapon %d: prefab is required", i)
		}
		trigger := component.TriggerButton
		switch component.Trigger(spec.Trigger) {
		case "", component.TriggerButton:
		case component.TriggerAuto:
			trigger = component.TriggerAuto
		default:
			return fmt.Errorf("weapon %d: unknown trigger %q", i, spec.Trigger)
		}
		weapons = append(weapons, component.Weapon{
			Prefab:   spec.Prefab,
			Interval: time.Duration(spec.IntervalMs) * time.Millisecond,
			Trigger:  trigger,
			OffsetX:  spec.OffsetX,
		})
	}
	return ecs.Add(w, e, component.WeaponsComponent.Kind(), &weapons)
}

type spawnerSpec = prefabs.SpawnerComponentSpec

func addSpawner(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spawnerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode spawner spec: %w", err)
	}
	if spec.Prefab == "" {
		return fmt.Errorf("spawner prefab is required")
	}
	if spec.IntervalMs <= 0 {
		return fmt.Errorf("spawner interval must be positive, got %d", spec.IntervalMs)
	}
	return ecs.Add(w, e, component.SpawnerComponent.Kind(), &component.Spawner{
		Prefab:   spec.Prefab,
		Interval: time.Duration(spec.IntervalMs) * time.Millisecond,
		MarginY:  spec.MarginY,
	})
}

type parallaxSpec = prefabs.ParallaxComponentSpec

func addParallax(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[parallaxSpec](raw)
	if err != nil {
		return fmt.Errorf("decode parallax spec: %w", err)
	}
	base, err := parseColor(spec.Color, color.White)
	if err != nil {
		return fmt.Errorf("parallax color: %w", err)
	}

	img := ctx.Library.Image(spec.Image, assets.Placeholder{
		Width:   spec.Width,
		Height:  spec.Height,
		Color:   base,
		Pattern: assets.PatternStars,
	})
	width := float64(spec.Width)
	if img != nil {
		width = float64(img.Bounds().Dx())
	}
	if width <= 0 {
		return fmt.Errorf("parallax width must be positive")
	}

	// enough tiles to cover the viewport while one is wrapping
	tiles := int(ctx.ViewWidth/width) + 1
	if tiles < 2 {
		tiles = 2
	}
	offsets := make([]float64, tiles)
	for i := range offsets {
		offsets[i] = float64(i) * width
	}

	return ecs.Add(w, e, component.ParallaxComponent.Kind(), &component.Parallax{
		Image:   img,
		Speed:   spec.Speed,
		Width:   width,
		Offsets: offsets,
	})
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}

	n := len(spec.Clips)
	comp := &component.Audio{
		Names:   make([]string, 0, n),
		Players: make([]component.Sound, 0, n),
		Volume:  make([]float64, 0, n),
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}
	for i, clip := range spec.Clips {
		if clip.Name == "" {
			return fmt.Errorf("audio clip %d: name is required", i)
		}
		volume := clip.Volume
		if volume <= 0 {
			volume = 1
		}
		comp.Names = append(comp.Names, clip.Name)
		comp.Players = append(comp.Players, ctx.Library.Sound(clip.File))
		comp.Volume = append(comp.Volume, volume)
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

type musicSpec = prefabs.MusicPlayerComponentSpec

func addMusic(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[musicSpec](raw)
	if err != nil {
		return fmt.Errorf("decode music spec: %w", err)
	}
	loop := true
	if spec.Loop != nil {
		loop = *spec.Loop
	}
	volume := spec.Volume
	if volume <= 0 || volume > 1 {
		volume = 1
	}
	return ecs.Add(w, e, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{
		Player: ctx.Library.Sound(spec.Track),
		Track:  spec.Track,
		Volume: volume,
		Loop:   loop,
	})
}

type hudSpec = prefabs.HUDComponentSpec

func addHUD(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[hudSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hud spec: %w", err)
	}
	tint, err := parseColor(spec.Color, color.White)
	if err != nil {
		return fmt.Errorf("hud color: %w", err)
	}
	lineHeight := spec.LineHeight
	if lineHeight <= 0 {
		lineHeight = 16
	}
	return ecs.Add(w, e, component.HUDComponent.Kind(), &component.HUD{
		Face:       text.NewGoXFace(basicfont.Face7x13),
		Tint:       tint,
		X:          spec.X,
		Y:          spec.Y,
		LineHeight: lineHeight,
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

// parseColor accepts an SVG color name or #rrggbb[aa]. An empty value yields
// def.
func parseColor(v string, def color.Color) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return def, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", v)
}

func parseHexColor(v string) (color.Color, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %q", v)
	}
	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}
	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		c, err := parse(i * 2)
		if err != nil {
			return nil, fmt.Errorf("parse color %q: %w", v, err)
		}
		rgba[i] = c
	}
	return color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}
