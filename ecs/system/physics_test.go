package system

import (
	"testing"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

func TestCastRayOrdersHits(t *testing.T) {
	w := ecs.NewWorld()
	physics := NewPhysicsSystemWithGravity(0)
	far := addWall(t, w, 10, 0, 1, 4)
	near1 := addWall(t, w, 5, 0, 1, 4)
	addWall(t, w, -5, 0, 1, 4)

	hits := physics.CastRay(w, 0, 0, 2, 0, 20)

	if len(hits) != 2 {
		t.Fatalf("expected 2 hits ahead of the origin, got %d", len(hits))
	}
	if hits[0].Entity != near1 || hits[1].Entity != far {
		t.Fatalf("hits out of order: %+v", hits)
	}
	if !near(hits[0].Distance, 4.5) || !near(hits[1].Distance, 9.5) {
		t.Fatalf("unexpected distances %v, %v", hits[0].Distance, hits[1].Distance)
	}
	if hits[0].Category != component.CategoryObstacle {
		t.Fatalf("expected obstacle category, got %v", hits[0].Category)
	}
}

func TestCastRayDegenerate(t *testing.T) {
	w := ecs.NewWorld()
	physics := NewPhysicsSystemWithGravity(0)
	addWall(t, w, 5, 0, 1, 4)

	if hits := physics.CastRay(w, 0, 0, 0, 0, 20); hits != nil {
		t.Fatalf("zero direction should not hit, got %+v", hits)
	}
	if hits := physics.CastRay(w, 0, 0, 1, 0, 0); hits != nil {
		t.Fatalf("zero range should not hit, got %+v", hits)
	}
	if _, ok := physics.CastRayFirst(w, 0, 0, 1, 0, 3, nil); ok {
		t.Fatalf("wall is beyond the range")
	}
}

func TestOverlapCircle(t *testing.T) {
	// The floor spans x in [-5, 5] and y in [4, 6].
	tests := []struct {
		name   string
		x, y   float64
		radius float64
		mask   component.Category
		ignore bool
		want   bool
	}{
		{"touching", 0, 3.5, 1, component.CategoryAll, false, true},
		{"too_small", 0, 3.5, 0.2, component.CategoryAll, false, false},
		{"masked_out", 0, 3.5, 1, component.CategoryCapturable, false, false},
		{"ignored", 0, 3.5, 1, component.CategoryAll, true, false},
		{"inside_shape", 0, 5, 0.1, component.CategoryAll, false, true},
		{"bounds_overlap_only", 5.8, 3.2, 1, component.CategoryAll, false, false},
		{"corner_within_radius", 5.5, 3.5, 1, component.CategoryAll, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			physics := NewPhysicsSystemWithGravity(0)
			floor := addWall(t, w, 0, 5, 10, 2)
			var ignore ecs.Entity
			if tc.ignore {
				ignore = floor
			}
			if got := physics.OverlapCircle(w, tc.x, tc.y, tc.radius, tc.mask, ignore); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSuspendAndResume(t *testing.T) {
	w := ecs.NewWorld()
	physics := NewPhysicsSystemWithGravity(0)
	box := addBox(t, w, 5, 0)
	physics.Sync(w)

	physics.Suspend(w, box)
	if !physics.Suspended(box) {
		t.Fatalf("expected box suspended")
	}
	if _, ok := physics.CastRayFirst(w, 0, 0, 1, 0, 20, nil); ok {
		t.Fatalf("suspended bodies should not be queryable")
	}

	physics.Resume(w, box, 10, 0)
	if physics.Suspended(box) {
		t.Fatalf("expected box back in the space")
	}
	tr, _ := ecs.Get(w, box, component.TransformComponent.Kind())
	if tr.X != 10 || tr.Y != 0 {
		t.Fatalf("resume should move the transform, got (%v, %v)", tr.X, tr.Y)
	}
	hit, ok := physics.CastRayFirst(w, 0, 0, 1, 0, 20, nil)
	if !ok || hit.Entity != box || !near(hit.Distance, 9.5) {
		t.Fatalf("expected box hit at 9.5, got %+v ok=%v", hit, ok)
	}
}

func TestGravityScale(t *testing.T) {
	w := ecs.NewWorld()
	physics := NewPhysicsSystemWithGravity(100)
	falling := addBox(t, w, 0, 0)
	floating := addBox(t, w, 10, 0)
	mustAdd(t, w, floating, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 0})

	// Chipmunk integrates position before velocity, so the first step only
	// accelerates the body and the second one moves it.
	scheduler := ecs.NewScheduler(physics)
	scheduler.Update(w, 0.1)
	tr, _ := ecs.Get(w, falling, component.TransformComponent.Kind())
	if tr.Y != 0 {
		t.Fatalf("first step should not move the body yet, y=%v", tr.Y)
	}
	scheduler.Update(w, 0.1)

	if _, vy := physics.Velocity(w, falling); vy <= 0 {
		t.Fatalf("expected box to fall, vy=%v", vy)
	}
	if vx, vy := physics.Velocity(w, floating); vx != 0 || vy != 0 {
		t.Fatalf("gravity-free box should stay at rest, got (%v, %v)", vx, vy)
	}
	if tr.Y <= 0 {
		t.Fatalf("transform should follow the body, y=%v", tr.Y)
	}
}

func TestDestroyedEntityLeavesSpace(t *testing.T) {
	w := ecs.NewWorld()
	physics := NewPhysicsSystemWithGravity(0)
	wall := addWall(t, w, 5, 0, 1, 4)
	physics.Sync(w)

	ecs.DestroyEntity(w, wall)

	if hits := physics.CastRay(w, 0, 0, 1, 0, 20); len(hits) != 0 {
		t.Fatalf("destroyed wall still hit: %+v", hits)
	}
}

func TestSetCollidableHidesFromQueries(t *testing.T) {
	w := ecs.NewWorld()
	physics := NewPhysicsSystemWithGravity(0)
	box := addBox(t, w, 5, 0)

	physics.SetCollidable(w, box, false)
	if hits := physics.CastRay(w, 0, 0, 1, 0, 20); len(hits) != 0 {
		t.Fatalf("non-collidable box still hit: %+v", hits)
	}

	physics.SetCollidable(w, box, true)
	if hits := physics.CastRay(w, 0, 0, 1, 0, 20); len(hits) != 1 {
		t.Fatalf("expected box hit again, got %+v", hits)
	}
}
