package system

import (
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// AttachmentSystem moves attached entities to their parent plus offset.
// Parents are resolved before children so chains settle in one tick.
type AttachmentSystem struct {
	bodies BodyController
}

func NewAttachmentSystem(bodies BodyController) *AttachmentSystem {
	return &AttachmentSystem{bodies: bodies}
}

func (s *AttachmentSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	done := make(map[ecs.Entity]bool)
	ecs.ForEach(w, component.AttachmentComponent.Kind(), func(e ecs.Entity, _ *component.Attachment) {
		s.place(w, e, done, 0)
	})
}

const maxAttachmentDepth = 8

func (s *AttachmentSystem) place(w *ecs.World, e ecs.Entity, done map[ecs.Entity]bool, depth int) {
	if done[e] || depth > maxAttachmentDepth {
		return
	}
	done[e] = true
	att, ok := ecs.Get(w, e, component.AttachmentComponent.Kind())
	if !ok {
		return
	}
	parent := ecs.Entity(att.Parent)
	if !ecs.IsAlive(w, parent) {
		ecs.Remove(w, e, component.AttachmentComponent.Kind())
		return
	}
	if ecs.Has(w, parent, component.AttachmentComponent.Kind()) {
		s.place(w, parent, done, depth+1)
	}
	pt, ok := ecs.Get(w, parent, component.TransformComponent.Kind())
	if !ok {
		return
	}
	x, y := pt.X+att.OffsetX, pt.Y+att.OffsetY
	if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) && s.bodies != nil {
		s.bodies.SetPosition(w, e, x, y)
		return
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
	}
}
