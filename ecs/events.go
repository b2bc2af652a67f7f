package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventEnemyDestroyed = "enemy_destroyed"
	EventHeartCollected = "heart_collected"
	EventShotFired      = "shot_fired"
	EventPlayerDied     = "player_died"
)

// EnemyDestroyed is emitted when an enemy is pruned after losing its health.
type EnemyDestroyed struct {
	Entity Entity
	X, Y   float64
	Value  int
}

// HeartCollected is emitted when a heart is pruned after losing its health.
type HeartCollected struct {
	Entity Entity
	Value  int
}

// ShotFired is emitted when a weapon spawns a shot.
type ShotFired struct {
	Prefab string
}

// PlayerDied is emitted when the player's health drops to zero.
type PlayerDied struct {
	Entity Entity
	Policy string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns the queued events without clearing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
