package system

import (
	"math"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// CaptureSink receives capture requests from projectiles. It reports whether
// the target was taken.
type CaptureSink interface {
	OnCaptureTarget(w *ecs.World, emitter, target ecs.Entity) bool
}

// ProjectileSystem moves projectiles in straight lines and resolves their
// contacts.
type ProjectileSystem struct {
	bodies BodyController
	sink   CaptureSink
}

func NewProjectileSystem(bodies BodyController, sink CaptureSink) *ProjectileSystem {
	return &ProjectileSystem{bodies: bodies, sink: sink}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaTime()
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, proj *component.Projectile, transform *component.Transform) {
		s.advance(w, e, proj, transform, dt)
	})
}

// advance moves the projectile one tick. Distance is measured from the
// current origin and clamped so it never passes MaxDistance.
func (s *ProjectileSystem) advance(w *ecs.World, e ecs.Entity, proj *component.Projectile, transform *component.Transform, dt float64) {
	x := transform.X + proj.DirX*proj.Speed*dt
	y := transform.Y + proj.DirY*proj.Speed*dt
	traveled := math.Hypot(x-proj.OriginX, y-proj.OriginY)

	if proj.MaxDistance > 0 && traveled >= proj.MaxDistance {
		proj.Traveled = proj.MaxDistance
		ecs.DestroyEntity(w, e)
		return
	}
	proj.Traveled = traveled
	s.bodies.SetPosition(w, e, x, y)
	s.bodies.ZeroVelocity(w, e)
}

func (s *ProjectileSystem) ContactBegin(w *ecs.World, self, other ecs.Entity) {
	proj, ok := ecs.Get(w, self, component.ProjectileComponent.Kind())
	if !ok || proj.ColliderDisabled {
		return
	}

	switch cat := categoryOf(w, other); {
	case cat.Has(component.CategoryPortalEndpoint):
		// Relocation belongs to the portal.
	case isTrigger(w, other):
		// Other sensors, such as win zones, are transparent.
	case cat.Has(component.CategoryCapturable):
		if s.sink != nil && proj.Owner != 0 {
			s.sink.OnCaptureTarget(w, ecs.Entity(proj.Owner), other)
		}
		ecs.DestroyEntity(w, self)
	case cat.Has(component.CategoryPlayer), cat.Has(component.CategoryProjectile):
	case cat.Has(component.CategoryObstacle):
		ecs.DestroyEntity(w, self)
	case cat == component.CategoryNone:
		// Shapeless entities only show up through stale events.
	default:
		ecs.DestroyEntity(w, self)
	}
}

func (s *ProjectileSystem) ContactEnd(*ecs.World, ecs.Entity, ecs.Entity) {}
