package system

import (
	"testing"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

func TestProjectileExpiresAtMaxDistance(t *testing.T) {
	w, sim := newTestSimulation()
	emitter := addEmitter(t, w, -0.5, 0)

	p, ok := sim.Emitters.Fire(w, emitter)
	if !ok {
		t.Fatalf("fire failed")
	}

	// speed 10, dt 0.5: 5 units per step, 100 units after 20 steps.
	for step := 1; step < 20; step++ {
		sim.Step(0.5)
		proj, ok := ecs.Get(w, p, component.ProjectileComponent.Kind())
		if !ok {
			t.Fatalf("projectile destroyed early at step %d", step)
		}
		if proj.Traveled > proj.MaxDistance {
			t.Fatalf("traveled %v beyond max %v", proj.Traveled, proj.MaxDistance)
		}
		if want := float64(step) * 5; !near(proj.Traveled, want) {
			t.Fatalf("step %d: expected traveled %v, got %v", step, want, proj.Traveled)
		}
	}

	sim.Step(0.5)
	if ecs.IsAlive(w, p) {
		t.Fatalf("projectile should be destroyed after traveling its full range")
	}
	em, _ := ecs.Get(w, emitter, component.EmitterComponent.Kind())
	if em.Captured != 0 {
		t.Fatalf("expiry must not capture anything")
	}
}

func TestProjectileCapturesBoxInOneStep(t *testing.T) {
	w, sim := newTestSimulation()
	emitter := addEmitter(t, w, 2.5, 0)
	box := addBox(t, w, 5, 0)

	// Spawns at x=3; 1 unit per 0.1s step reaches the box on the second step.
	p, ok := sim.Emitters.Fire(w, emitter)
	if !ok {
		t.Fatalf("fire failed")
	}

	for step := 0; step < 5 && ecs.IsAlive(w, p); step++ {
		sim.Step(0.1)
		em, _ := ecs.Get(w, emitter, component.EmitterComponent.Kind())
		alive := ecs.IsAlive(w, p)
		held := ecs.Entity(em.Captured) == box
		if alive == held {
			t.Fatalf("step %d: projectile alive=%v but box held=%v", step, alive, held)
		}
	}

	if ecs.IsAlive(w, p) {
		t.Fatalf("projectile never reached the box")
	}
	capt, _ := ecs.Get(w, box, component.CapturableComponent.Kind())
	if capt.Visible || ecs.Entity(capt.CapturedBy) != emitter {
		t.Fatalf("box should be captured by the emitter: %+v", capt)
	}
}

func TestProjectileContactRules(t *testing.T) {
	tests := []struct {
		name        string
		other       func(t *testing.T, w *ecs.World) ecs.Entity
		wantAlive   bool
		wantCapture bool
	}{
		{
			name:      "obstacle_consumes",
			other:     func(t *testing.T, w *ecs.World) ecs.Entity { return addWall(t, w, 5, 0, 1, 1) },
			wantAlive: false,
		},
		{
			name:        "box_captures",
			other:       func(t *testing.T, w *ecs.World) ecs.Entity { return addBox(t, w, 5, 0) },
			wantAlive:   false,
			wantCapture: true,
		},
		{
			name: "player_passes",
			other: func(t *testing.T, w *ecs.World) ecs.Entity {
				return addBody(t, w, 5, 0, 1, 1, component.CategoryPlayer, false)
			},
			wantAlive: true,
		},
		{
			name: "trigger_passes",
			other: func(t *testing.T, w *ecs.World) ecs.Entity {
				e := ecs.CreateEntity(w)
				mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: 5})
				mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 4, Height: 4, Static: true, Sensor: true})
				mustAdd(t, w, e, component.WinZoneComponent.Kind(), &component.WinZone{})
				return e
			},
			wantAlive: true,
		},
		{
			name: "portal_does_not_consume",
			other: func(t *testing.T, w *ecs.World) ecs.Entity {
				return addPortal(t, w, "a", 5, 0, 1, 0, false)
			},
			wantAlive: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, sim := newTestSimulation()
			emitter := addEmitter(t, w, 0, 0)
			other := tc.other(t, w)
			p, _ := sim.Emitters.Fire(w, emitter)

			sim.Projectiles.ContactBegin(w, p, other)

			if got := ecs.IsAlive(w, p); got != tc.wantAlive {
				t.Fatalf("expected alive=%v, got %v", tc.wantAlive, got)
			}
			em, _ := ecs.Get(w, emitter, component.EmitterComponent.Kind())
			if got := em.Captured != 0; got != tc.wantCapture {
				t.Fatalf("expected capture=%v, got %v", tc.wantCapture, got)
			}
		})
	}
}

func TestDisabledProjectileIgnoresContacts(t *testing.T) {
	w, sim := newTestSimulation()
	emitter := addEmitter(t, w, 0, 0)
	box := addBox(t, w, 5, 0)
	p, _ := sim.Emitters.Fire(w, emitter)
	proj, _ := ecs.Get(w, p, component.ProjectileComponent.Kind())
	proj.ColliderDisabled = true

	sim.Projectiles.ContactBegin(w, p, box)

	if !ecs.IsAlive(w, p) {
		t.Fatalf("inert projectile should survive contacts")
	}
	em, _ := ecs.Get(w, emitter, component.EmitterComponent.Kind())
	if em.Captured != 0 {
		t.Fatalf("inert projectile should not capture")
	}
}
