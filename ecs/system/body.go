package system

import "github.com/milk9111/portalgun/ecs"

// BodyController is the set of physics commands the gameplay systems issue.
// PhysicsSystem implements it.
type BodyController interface {
	SetPosition(w *ecs.World, e ecs.Entity, x, y float64)
	Velocity(w *ecs.World, e ecs.Entity) (float64, float64)
	SetVelocity(w *ecs.World, e ecs.Entity, vx, vy float64)
	ZeroVelocity(w *ecs.World, e ecs.Entity)
	ApplyImpulse(w *ecs.World, e ecs.Entity, ix, iy float64)
	DisableGravity(w *ecs.World, e ecs.Entity)
	SetCollidable(w *ecs.World, e ecs.Entity, collidable bool)
	Suspend(w *ecs.World, e ecs.Entity)
	Resume(w *ecs.World, e ecs.Entity, x, y float64)
}

var (
	_ BodyController = (*PhysicsSystem)(nil)
	_ SpatialQuery   = (*PhysicsSystem)(nil)
)
