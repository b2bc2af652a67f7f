package component

import "time"

// Trigger selects when a weapon fires.
type Trigger string

const (
	TriggerButton Trigger = "button"
	TriggerAuto   Trigger = "auto"
)

// Weapon fires Prefab shots from the owner's position plus OffsetX. Elapsed
// accumulates every tick and resets when a shot is fired.
type Weapon struct {
	Prefab   string
	Interval time.Duration
	Elapsed  time.Duration
	Trigger  Trigger
	OffsetX  float64
}

// Weapons is the list of weapons mounted on an entity.
type Weapons []Weapon

var WeaponsComponent = NewComponent[Weapons]()
