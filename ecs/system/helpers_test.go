package system

import (
	"math"
	"testing"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

const eps = 1e-6

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func addBody(t *testing.T, w *ecs.World, x, y, width, height float64, cat component.Category, static bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Mass: 1, Static: static})
	mustAdd(t, w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: cat})
	return e
}

func addBox(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := addBody(t, w, x, y, 1, 1, component.CategoryCapturable, false)
	mustAdd(t, w, e, component.CapturableComponent.Kind(), &component.Capturable{Visible: true, Collidable: true})
	mustAdd(t, w, e, component.RenderRectComponent.Kind(), &component.RenderRect{Width: 1, Height: 1})
	return e
}

func addWall(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	return addBody(t, w, x, y, width, height, component.CategoryObstacle, true)
}

func addPortal(t *testing.T, w *ecs.World, id string, x, y, fx, fy float64, reverse bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 4, Height: 40, Static: true, Sensor: true})
	mustAdd(t, w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.CategoryPortalEndpoint})
	mustAdd(t, w, e, component.PortalEndpointComponent.Kind(), &component.PortalEndpoint{ID: id, FacingX: fx, FacingY: fy, ReverseExitDirection: reverse})
	return e
}

// addEmitter places an emitter facing +x with the numbers from the
// original tuning. It reads its own Input.
func addEmitter(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.EmitterComponent.Kind(), &component.Emitter{
		AimX:                 1,
		CaptureRange:         100,
		CaptureOffset:        0.5,
		AimArrowLength:       1,
		FullTrajectoryLength: 100,
		ProjectileSpeed:      10,
		ProjectileRange:      100,
		ProjectileOffset:     0.5,
		ReleaseOffset:        0.5,
		ReleaseForce:         5,
	})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{PointerX: x + 10, PointerY: y})
	mustAdd(t, w, e, component.TrajectoryPreviewComponent.Kind(), &component.TrajectoryPreview{})
	return e
}

func spawnTestProjectile(w *ecs.World, s ProjectileSpawn) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	components := []func() error{
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: s.X, Y: s.Y})
		},
		func() error {
			return ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
				OriginX: s.X, OriginY: s.Y,
				DirX: s.DirX, DirY: s.DirY,
				Speed: s.Speed, MaxDistance: s.MaxDistance,
				Owner: uint64(s.Owner),
			})
		},
		func() error {
			return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: 0.1, Mass: 1, Sensor: true})
		},
		func() error {
			return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: component.CategoryProjectile})
		},
		func() error {
			return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 0})
		},
	}
	for _, add := range components {
		if err := add(); err != nil {
			return 0, err
		}
	}
	return e, nil
}

func newTestSimulation() (*ecs.World, *Simulation) {
	w := ecs.NewWorld()
	return w, NewSimulation(w, 0, spawnTestProjectile, nil)
}
