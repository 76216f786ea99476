package system

import (
	"log"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// DefaultProjectileCooldown is how long a projectile's collider stays off
// after a portal transit when the endpoint does not configure one.
const DefaultProjectileCooldown = 0.2

// PortalSystem links endpoint pairs and relocates entities that enter them.
// Non-projectiles are guarded by the destination's occupancy set until they
// are seen leaving it; projectiles instead lose their collider for a short
// cancellable window.
type PortalSystem struct {
	bodies BodyController
	hooked *ecs.World
}

func NewPortalSystem(bodies BodyController) *PortalSystem {
	return &PortalSystem{bodies: bodies}
}

// Update resolves partner handles from level ids. It runs every tick so
// endpoints spawned later still pair up.
func (s *PortalSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.ensureHook(w)

	ecs.ForEach(w, component.PortalEndpointComponent.Kind(), func(e ecs.Entity, portal *component.PortalEndpoint) {
		if portal.Partner != 0 && ecs.IsAlive(w, ecs.Entity(portal.Partner)) {
			return
		}
		portal.Partner = 0
		if portal.PartnerID == "" {
			return
		}
		ecs.ForEach(w, component.PortalEndpointComponent.Kind(), func(other ecs.Entity, candidate *component.PortalEndpoint) {
			if portal.Partner != 0 || other == e || candidate.ID != portal.PartnerID {
				return
			}
			portal.Partner = uint64(other)
		})
		if portal.Partner == 0 {
			log.Printf("portal system: endpoint %q has no partner %q", portal.ID, portal.PartnerID)
			portal.PartnerID = ""
		}
	})
}

// Link pairs two endpoints directly.
func Link(w *ecs.World, a, b ecs.Entity) bool {
	pa, okA := ecs.Get(w, a, component.PortalEndpointComponent.Kind())
	pb, okB := ecs.Get(w, b, component.PortalEndpointComponent.Kind())
	if !okA || !okB || a == b {
		return false
	}
	pa.Partner, pa.PartnerID = uint64(b), pb.ID
	pb.Partner, pb.PartnerID = uint64(a), pa.ID
	return true
}

func (s *PortalSystem) ensureHook(w *ecs.World) {
	if s.hooked == w {
		return
	}
	s.hooked = w
	w.OnDestroy(func(w *ecs.World, dead ecs.Entity) {
		deadPortal, isPortal := ecs.Get(w, dead, component.PortalEndpointComponent.Kind())
		ecs.ForEach(w, component.PortalEndpointComponent.Kind(), func(e ecs.Entity, portal *component.PortalEndpoint) {
			portal.Vacate(uint64(dead))
			if isPortal && e != dead && portal.Partner == uint64(dead) {
				portal.Partner = 0
				if portal.PartnerID == deadPortal.ID {
					portal.PartnerID = ""
				}
			}
		})
	})
}

// partner returns the live partner endpoint of e.
func (s *PortalSystem) partner(w *ecs.World, portal *component.PortalEndpoint) (ecs.Entity, *component.PortalEndpoint, bool) {
	if portal.Partner == 0 {
		return 0, nil, false
	}
	pe := ecs.Entity(portal.Partner)
	p, ok := ecs.Get(w, pe, component.PortalEndpointComponent.Kind())
	if !ok {
		portal.Partner = 0
		return 0, nil, false
	}
	return pe, p, true
}

func (s *PortalSystem) ContactBegin(w *ecs.World, self, other ecs.Entity) {
	portal, ok := ecs.Get(w, self, component.PortalEndpointComponent.Kind())
	if !ok {
		return
	}
	if ecs.Has(w, other, component.PortalEndpointComponent.Kind()) {
		return
	}
	s.Enter(w, self, portal, other)
}

func (s *PortalSystem) ContactEnd(w *ecs.World, self, other ecs.Entity) {
	portal, ok := ecs.Get(w, self, component.PortalEndpointComponent.Kind())
	if !ok {
		return
	}
	portal.Vacate(uint64(other))
}

// Enter handles x touching endpoint self. It reports whether x was moved.
func (s *PortalSystem) Enter(w *ecs.World, self ecs.Entity, portal *component.PortalEndpoint, x ecs.Entity) bool {
	if portal.Occupied(uint64(x)) {
		return false
	}
	exit, dest, ok := s.partner(w, portal)
	if !ok {
		return false
	}
	destTransform, ok := ecs.Get(w, exit, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	px, py := destTransform.X, destTransform.Y

	if proj, ok := ecs.Get(w, x, component.ProjectileComponent.Kind()); ok {
		if proj.ColliderDisabled {
			return false
		}
		s.bodies.SetPosition(w, x, px, py)
		proj.OriginX, proj.OriginY = px, py
		proj.Traveled = 0
		proj.DirX, proj.DirY = ExitDirection(dest)
		s.bodies.ZeroVelocity(w, x)
		s.bodies.DisableGravity(w, x)

		cooldown := portal.ProjectileCooldown
		if cooldown <= 0 {
			cooldown = DefaultProjectileCooldown
		}
		DisableProjectileCollider(w, s.bodies, x, proj, cooldown)
		return true
	}

	dest.Occupy(uint64(x))
	s.bodies.SetPosition(w, x, px, py)
	if ecs.Has(w, x, component.PhysicsBodyComponent.Kind()) {
		s.bodies.ZeroVelocity(w, x)
	}
	return true
}

// ExitDirection is the travel direction of a projectile leaving endpoint p:
// p's facing, negated when p reverses exits.
func ExitDirection(p *component.PortalEndpoint) (float64, float64) {
	x, y, ok := normalize(p.FacingX, p.FacingY)
	if !ok {
		x, y = 1, 0
	}
	if p.ReverseExitDirection {
		return -x, -y
	}
	return x, y
}

// DisableProjectileCollider turns off e's collider and schedules it back on
// after d seconds. A pending re-enable is replaced, and destroying e cancels
// it.
func DisableProjectileCollider(w *ecs.World, bodies BodyController, e ecs.Entity, proj *component.Projectile, d float64) {
	if proj.ReenableTimer != 0 {
		w.Timers().Cancel(ecs.TimerID(proj.ReenableTimer))
	}
	proj.ColliderDisabled = true
	bodies.SetCollidable(w, e, false)
	proj.ReenableTimer = uint64(w.After(e, d, func(w *ecs.World, target ecs.Entity) {
		p, ok := ecs.Get(w, target, component.ProjectileComponent.Kind())
		if !ok {
			return
		}
		p.ColliderDisabled = false
		p.ReenableTimer = 0
		bodies.SetCollidable(w, target, true)
	}))
}

// DestroyPair destroys e and its partner together.
func DestroyPair(w *ecs.World, e ecs.Entity) {
	portal, ok := ecs.Get(w, e, component.PortalEndpointComponent.Kind())
	if !ok {
		return
	}
	partner := ecs.Entity(portal.Partner)
	ecs.DestroyEntity(w, e)
	if partner != 0 {
		ecs.DestroyEntity(w, partner)
	}
}
