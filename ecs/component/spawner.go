package component

import "time"

// Spawner creates one Prefab entity each time Elapsed exceeds Interval. The
// new entity enters from the right edge with y drawn from
// [MarginY, viewportHeight-MarginY].
type Spawner struct {
	Prefab   string
	Interval time.Duration
	Elapsed  time.Duration
	MarginY  float64
}

var SpawnerComponent = NewComponent[Spawner]()
