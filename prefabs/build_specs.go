package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

type BodyComponentSpec struct {
	Kind   string  `yaml:"kind"`
	Health int     `yaml:"health"`
	Damage int     `yaml:"damage"`
	Value  int     `yaml:"value"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpriteComponentSpec struct {
	Image   string `yaml:"image"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Color   string `yaml:"color"`
	Tint    string `yaml:"tint"`
	TopLeft bool   `yaml:"top_left"`
}

type AnimationComponentSpec struct {
	Sheet       string  `yaml:"sheet"`
	FrameWidth  int     `yaml:"frame_width"`
	FrameHeight int     `yaml:"frame_height"`
	FrameCount  int     `yaml:"frame_count"`
	FrameTimeMs int     `yaml:"frame_time_ms"`
	Color       string  `yaml:"color"`
	Tint        string  `yaml:"tint"`
	Scale       float64 `yaml:"scale"`
	Looping     bool    `yaml:"looping"`
}

type VelocityComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Script string  `yaml:"script"`
}

type PlayerComponentSpec struct {
	MoveSpeed   float64 `yaml:"move_speed"`
	StartHealth int     `yaml:"start_health"`
	DeathPolicy string  `yaml:"death_policy"`
}

type SpawnerComponentSpec struct {
	Prefab     string  `yaml:"prefab"`
	IntervalMs int     `yaml:"interval_ms"`
	MarginY    float64 `yaml:"margin_y"`
}

type WeaponComponentSpec struct {
	Prefab     string  `yaml:"prefab"`
	IntervalMs int     `yaml:"interval_ms"`
	Trigger    string  `yaml:"trigger"`
	OffsetX    float64 `yaml:"offset_x"`
}

type ParallaxComponentSpec struct {
	Image  string  `yaml:"image"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Color  string  `yaml:"color"`
	Speed  float64 `yaml:"speed"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips []AudioClipSpec `yaml:"clips"`
}

type MusicPlayerComponentSpec struct {
	Track  string  `yaml:"track"`
	Volume float64 `yaml:"volume"`
	Loop   *bool   `yaml:"loop"`
}

type HUDComponentSpec struct {
	Color      string  `yaml:"color"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	LineHeight float64 `yaml:"line_height"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}
