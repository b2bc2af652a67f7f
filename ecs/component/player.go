package component

// DeathPolicy selects what happens when the player's health reaches zero.
type DeathPolicy string

const (
	// DeathReset restores starting health and clears the score.
	DeathReset DeathPolicy = "reset"
	// DeathDeactivate removes the player from play until restart.
	DeathDeactivate DeathPolicy = "deactivate"
)

// Valid reports whether p is a known policy.
func (p DeathPolicy) Valid() bool {
	return p == DeathReset || p == DeathDeactivate
}

type Player struct {
	MoveSpeed   float64
	Score       int
	StartHealth int
	DeathPolicy DeathPolicy
	Deaths      int
}

var PlayerComponent = NewComponent[Player]()
