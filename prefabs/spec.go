package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ViewportSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameSpec is the top-level game configuration read from game.yaml.
type GameSpec struct {
	Title       string       `yaml:"title"`
	Viewport    ViewportSpec `yaml:"viewport"`
	DeathPolicy string       `yaml:"death_policy"`
	Seed        int64        `yaml:"seed"`
	Scene       []string     `yaml:"scene"`
	Player      string       `yaml:"player"`
}

const (
	defaultViewportWidth  = 800
	defaultViewportHeight = 480
)

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Viewport.Width <= 0 {
		spec.Viewport.Width = defaultViewportWidth
	}
	if spec.Viewport.Height <= 0 {
		spec.Viewport.Height = defaultViewportHeight
	}
	if spec.DeathPolicy == "" {
		spec.DeathPolicy = "reset"
	}
	if spec.Player == "" {
		spec.Player = "player.yaml"
	}
	return &spec, nil
}
