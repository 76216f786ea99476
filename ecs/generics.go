package ecs

import "github.com/milk9111/portalgun/ecs/component"

// Add stores value as e's component of the given kind, replacing any previous
// value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

// Get returns a pointer to e's component. Mutations through it are visible to
// every later reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	return v, ok
}

// First returns any live entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, id := range w.store(kind.ID(), false).ids() {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every live entity carrying kind. The callback may add,
// remove, or destroy entities.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil {
		return
	}
	store := w.store(kind.ID(), false)
	for _, id := range store.ids() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, ok := store.Get(id).(*T)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		c, ok := Get(w, e, kc)
		if !ok {
			return
		}
		fn(e, a, b, c)
	})
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		d, ok := Get(w, e, kd)
		if !ok {
			return
		}
		fn(e, a, b, c, d)
	})
}
