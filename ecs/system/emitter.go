package system

import (
	"log"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// ProjectileSpawn describes a projectile to create.
type ProjectileSpawn struct {
	Owner       ecs.Entity
	X, Y        float64
	DirX, DirY  float64
	Speed       float64
	MaxDistance float64
}

// ProjectileSpawner creates a projectile entity in w.
type ProjectileSpawner func(w *ecs.World, spawn ProjectileSpawn) (ecs.Entity, error)

// EmitterSystem runs the capture and release state machine. An emitter is
// Idle while Captured is zero and Captured otherwise; OnCaptureTarget is the
// only path into Captured and Release the only path out.
type EmitterSystem struct {
	bodies BodyController
	query  SpatialQuery
	spawn  ProjectileSpawner
}

func NewEmitterSystem(bodies BodyController, query SpatialQuery, spawn ProjectileSpawner) *EmitterSystem {
	return &EmitterSystem{bodies: bodies, query: query, spawn: spawn}
}

func (s *EmitterSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.EmitterComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, em *component.Emitter, _ *component.Transform) {
		input, ok := inputFor(w, e)
		if !ok {
			return
		}
		if input.ToggleCaptureMode {
			em.CaptureMode = em.CaptureMode.Other()
		}
		if input.TogglePreviewMode {
			em.PreviewMode = em.PreviewMode.Other()
		}
		if em.RequireAimHeld && !input.AimHeld {
			return
		}
		switch {
		case input.PrimaryPressed:
			s.Trigger(w, e, em.CaptureMode)
		case input.SecondaryPressed:
			s.Trigger(w, e, em.CaptureMode.Other())
		}
	})
}

// Trigger is the primary action: release when holding, otherwise attempt a
// capture with mode.
func (s *EmitterSystem) Trigger(w *ecs.World, e ecs.Entity, mode component.CaptureMode) {
	em, ok := ecs.Get(w, e, component.EmitterComponent.Kind())
	if !ok {
		return
	}
	if em.Captured != 0 {
		if ecs.IsAlive(w, ecs.Entity(em.Captured)) {
			s.Release(w, e)
			return
		}
		em.Captured = 0
	}
	switch mode {
	case component.CaptureProjectile:
		s.Fire(w, e)
	default:
		s.TryDirectCapture(w, e)
	}
}

// TryDirectCapture casts from just ahead of the emitter and captures the
// first solid non-player hit if it is capturable. With
// CaptureThroughObstacles it captures the first capturable hit instead.
func (s *EmitterSystem) TryDirectCapture(w *ecs.World, e ecs.Entity) bool {
	em, ok := ecs.Get(w, e, component.EmitterComponent.Kind())
	if !ok || em.Captured != 0 {
		return false
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	ox := transform.X + em.AimX*em.CaptureOffset
	oy := transform.Y + em.AimY*em.CaptureOffset
	skip := SkipPlayerAndSensors
	if em.CaptureThroughObstacles {
		skip = skipNonCapturable
	}
	hit, ok := s.query.CastRayFirst(w, ox, oy, em.AimX, em.AimY, em.CaptureRange, skip)
	if !ok || !hit.Category.Has(component.CategoryCapturable) {
		return false
	}
	return s.OnCaptureTarget(w, e, hit.Entity)
}

// Fire spawns a projectile that reports back through OnCaptureTarget.
func (s *EmitterSystem) Fire(w *ecs.World, e ecs.Entity) (ecs.Entity, bool) {
	em, ok := ecs.Get(w, e, component.EmitterComponent.Kind())
	if !ok || em.Captured != 0 || s.spawn == nil {
		return 0, false
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}
	p, err := s.spawn(w, ProjectileSpawn{
		Owner:       e,
		X:           transform.X + em.AimX*em.ProjectileOffset,
		Y:           transform.Y + em.AimY*em.ProjectileOffset,
		DirX:        em.AimX,
		DirY:        em.AimY,
		Speed:       em.ProjectileSpeed,
		MaxDistance: em.ProjectileRange,
	})
	if err != nil {
		log.Printf("emitter system: spawn projectile: %v", err)
		return 0, false
	}
	return p, true
}

// OnCaptureTarget seizes target for emitter. It is a no-op while the emitter
// already holds something or when target is dead, not capturable, or held by
// another emitter.
func (s *EmitterSystem) OnCaptureTarget(w *ecs.World, emitter, target ecs.Entity) bool {
	em, ok := ecs.Get(w, emitter, component.EmitterComponent.Kind())
	if !ok || em.Captured != 0 {
		return false
	}
	capt, ok := ecs.Get(w, target, component.CapturableComponent.Kind())
	if !ok || capt.CapturedBy != 0 {
		return false
	}

	s.bodies.ZeroVelocity(w, target)
	s.bodies.Suspend(w, target)
	s.bodies.SetCollidable(w, target, false)
	capt.PhysicsSuspended = true
	capt.Collidable = false
	capt.Visible = false
	capt.CapturedBy = uint64(emitter)
	if r, ok := ecs.Get(w, target, component.RenderRectComponent.Kind()); ok {
		r.Hidden = true
	}
	// Carried along with the emitter until released.
	if err := ecs.Add(w, target, component.AttachmentComponent.Kind(), &component.Attachment{Parent: uint64(emitter)}); err != nil {
		panic("emitter system: attach captured: " + err.Error())
	}

	em.Captured = uint64(target)
	return true
}

// Release drops the held object ahead of the emitter and pushes it along the
// aim direction. It is a no-op while idle.
func (s *EmitterSystem) Release(w *ecs.World, e ecs.Entity) bool {
	em, ok := ecs.Get(w, e, component.EmitterComponent.Kind())
	if !ok || em.Captured == 0 {
		return false
	}
	target := ecs.Entity(em.Captured)
	em.Captured = 0

	capt, ok := ecs.Get(w, target, component.CapturableComponent.Kind())
	if !ok {
		return false
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}

	capt.Visible = true
	capt.Collidable = true
	capt.PhysicsSuspended = false
	capt.CapturedBy = 0
	if r, ok := ecs.Get(w, target, component.RenderRectComponent.Kind()); ok {
		r.Hidden = false
	}
	ecs.Remove(w, target, component.AttachmentComponent.Kind())

	x := transform.X + em.AimX*em.ReleaseOffset
	y := transform.Y + em.AimY*em.ReleaseOffset
	s.bodies.SetCollidable(w, target, true)
	s.bodies.Resume(w, target, x, y)
	s.bodies.ZeroVelocity(w, target)
	impulse := em.ReleaseImpulse()
	s.bodies.ApplyImpulse(w, target, em.AimX*impulse, em.AimY*impulse)
	return true
}

// inputFor reads the entity's own input, falling back to its attachment
// parent so an emitter carried by the player uses the player's input.
func inputFor(w *ecs.World, e ecs.Entity) (*component.Input, bool) {
	if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		return in, true
	}
	att, ok := ecs.Get(w, e, component.AttachmentComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, ecs.Entity(att.Parent), component.InputComponent.Kind())
}
