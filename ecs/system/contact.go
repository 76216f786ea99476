package system

import (
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// ContactListener reacts to contact changes from the point of view of self.
// Each event is offered to a listener once per orientation.
type ContactListener interface {
	ContactBegin(w *ecs.World, self, other ecs.Entity)
	ContactEnd(w *ecs.World, self, other ecs.Entity)
}

// ContactSystem drains the world's collision events in the order the physics
// step produced them and dispatches them to listeners.
type ContactSystem struct {
	listeners []ContactListener
}

func NewContactSystem(listeners ...ContactListener) *ContactSystem {
	return &ContactSystem{listeners: listeners}
}

func (s *ContactSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		for _, l := range s.listeners {
			dispatchContact(w, l, evt.Kind, evt.A, evt.B)
			dispatchContact(w, l, evt.Kind, evt.B, evt.A)
		}
	}
}

func dispatchContact(w *ecs.World, l ContactListener, kind ecs.CollisionEventKind, self, other ecs.Entity) {
	if !ecs.IsAlive(w, self) {
		return
	}
	switch kind {
	case ecs.CollisionBegin:
		// An earlier handler may have consumed either side.
		if !ecs.IsAlive(w, other) {
			return
		}
		l.ContactBegin(w, self, other)
	case ecs.CollisionSeparate:
		l.ContactEnd(w, self, other)
	}
}

// categoryOf returns the entity's declared category. Bodies without a
// CollisionLayer count as obstacles.
func categoryOf(w *ecs.World, e ecs.Entity) component.Category {
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok && layer.Category != 0 {
		return layer.Category
	}
	if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
		return component.CategoryObstacle
	}
	return component.CategoryNone
}

// isTrigger reports whether e's collider is a sensor.
func isTrigger(w *ecs.World, e ecs.Entity) bool {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	return ok && body.Sensor
}
