package ecs

import (
	"time"

	"github.com/milk9111/starfighter/ecs/component"
)

// World owns entities, components, and system order.
type World struct {
	entities  entityStore
	pipeline  pipeline
	events    EventQueue
	stores    map[component.ComponentID]*SparseSet
	delta     time.Duration
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. It returns false
// if the handle was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities in creation order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return append([]Entity(nil), w.entities.order...)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.pipeline.add(s)
}

// Systems returns the systems in update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.pipeline.snapshot()
}

// SetDelta sets the elapsed time of the tick about to run.
func (w *World) SetDelta(d time.Duration) {
	if w == nil {
		return
	}
	w.delta = d
}

// Delta returns the elapsed time of the current tick.
func (w *World) Delta() time.Duration {
	if w == nil {
		return 0
	}
	return w.delta
}

// Update runs all systems once and then drops the tick's events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.pipeline.update(w)
	w.events.flush()
}

// Step sets the tick delta and runs one update.
func (w *World) Step(d time.Duration) {
	w.SetDelta(d)
	w.Update()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
