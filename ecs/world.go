package ecs

import "github.com/milk9111/portalgun/ecs/component"

// DestroyHook is called right before an entity's components are removed.
type DestroyHook func(w *World, e Entity)

// World owns entities, component stores, the contact event queue, and the
// deferred timer queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	timers   TimerQueue

	destroyHooks []DestroyHook

	dt  float64
	now float64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity runs destroy hooks, cancels timers targeting e, and drops all
// of its components. It reports false when e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, hook := range w.destroyHooks {
		hook(w, e)
	}
	w.timers.CancelTarget(e)
	for _, store := range w.stores {
		store.Remove(e.id())
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

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// OnDestroy registers a hook that runs for every destroyed entity.
func (w *World) OnDestroy(hook DestroyHook) {
	if w == nil || hook == nil {
		return
	}
	w.destroyHooks = append(w.destroyHooks, hook)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Timers returns the world timer queue.
func (w *World) Timers() *TimerQueue {
	if w == nil {
		return nil
	}
	return &w.timers
}

// After schedules fn to run once, delay seconds from now, unless target is
// destroyed first.
func (w *World) After(target Entity, delay float64, fn TimerFunc) TimerID {
	return w.timers.Schedule(target, w.now+delay, fn)
}

// DeltaTime is the length of the current tick in seconds.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Time is the simulated time at the end of the current tick.
func (w *World) Time() float64 {
	if w == nil {
		return 0
	}
	return w.now
}

func (w *World) beginTick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	w.dt = dt
	w.now += dt
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
