package ecs

import "fmt"

// Entity is a generational handle: the low 32 bits hold the slot, the high
// 32 bits the generation of that slot when the handle was issued. Slot 0 is
// never allocated, so the zero Entity is always invalid.
type Entity uint64

// NoEntity is the zero handle.
const NoEntity Entity = 0

type slot uint32
type generation uint32

func packEntity(s slot, g generation) Entity {
	return Entity(g)<<32 | Entity(s)
}

func (e Entity) slot() slot { return slot(e & 0xffffffff) }

func (e Entity) generation() generation { return generation(e >> 32) }

func (e Entity) String() string {
	if e == NoEntity {
		return "entity(none)"
	}
	return fmt.Sprintf("entity(%d#%d)", e.slot(), e.generation())
}

// Valid reports whether e refers to an allocated slot. It says nothing about
// whether the entity is still alive; use IsAlive for that.
func (e Entity) Valid() bool {
	return e.slot() != 0
}
