package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
	"github.com/milk9111/portalgun/ecs/system"
	"github.com/milk9111/portalgun/levels"
)

func TestBuildEntityPrefabs(t *testing.T) {
	tests := []struct {
		prefab string
		check  func(t *testing.T, w *ecs.World, e ecs.Entity)
	}{
		{"player.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) || !ecs.Has(w, e, component.InputComponent.Kind()) {
				t.Fatalf("player should carry a tag and input")
			}
			layer, _ := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
			if layer.Category != component.CategoryPlayer || layer.Mask != component.CategoryAll {
				t.Fatalf("unexpected player layer %+v", layer)
			}
		}},
		{"emitter.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			em, ok := ecs.Get(w, e, component.EmitterComponent.Kind())
			if !ok {
				t.Fatalf("missing emitter")
			}
			if em.CaptureMode != component.CaptureDirect || em.ReleaseForce != 600 || em.ReleaseOffset != 24 || em.AimX != 1 {
				t.Fatalf("unexpected emitter tuning %+v", em)
			}
			if !ecs.Has(w, e, component.TrajectoryPreviewComponent.Kind()) || !ecs.Has(w, e, component.AttachmentComponent.Kind()) {
				t.Fatalf("emitter should have a preview and an attachment")
			}
		}},
		{"box.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			capt, ok := ecs.Get(w, e, component.CapturableComponent.Kind())
			if !ok || !capt.Visible || !capt.Collidable {
				t.Fatalf("box should start visible and collidable: %+v", capt)
			}
		}},
		{"portal.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if !body.Sensor || !body.Static {
				t.Fatalf("portal should be a static sensor: %+v", body)
			}
		}},
		{"projectile.yaml", func(t *testing.T, w *ecs.World, e ecs.Entity) {
			scale, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind())
			if !ok || scale.Scale != 0 {
				t.Fatalf("projectile should ignore gravity")
			}
		}},
		{"wall.yaml", nil},
		{"win_zone.yaml", nil},
		{"camera.yaml", nil},
	}

	for _, tc := range tests {
		t.Run(tc.prefab, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := BuildEntity(w, tc.prefab)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if !ecs.IsAlive(w, e) {
				t.Fatalf("built entity is not alive")
			}
			if tc.check != nil {
				tc.check(t, w, e)
			}
		})
	}
}

func TestBuildEntityMissingPrefab(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := BuildEntity(w, "nope.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
	if len(ecs.Entities(w)) != 0 {
		t.Fatalf("failed build should not leave entities behind")
	}
}

func TestNewProjectileAt(t *testing.T) {
	w := ecs.NewWorld()
	owner := ecs.CreateEntity(w)
	p, err := NewProjectileAt(w, system.ProjectileSpawn{Owner: owner, X: 3, Y: 4, DirX: 0, DirY: 1, Speed: 480, MaxDistance: 3200})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	proj, ok := ecs.Get(w, p, component.ProjectileComponent.Kind())
	if !ok {
		t.Fatalf("missing projectile component")
	}
	if proj.OriginX != 3 || proj.OriginY != 4 || proj.DirY != 1 || ecs.Entity(proj.Owner) != owner {
		t.Fatalf("unexpected projectile %+v", proj)
	}
	tr, _ := ecs.Get(w, p, component.TransformComponent.Kind())
	if tr.X != 3 || tr.Y != 4 {
		t.Fatalf("transform at (%v, %v)", tr.X, tr.Y)
	}
}

func TestLoadLevelToWorld(t *testing.T) {
	lvl, err := levels.Load("puzzle_01")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	w := ecs.NewWorld()
	if err := LoadLevelToWorld(w, lvl); err != nil {
		t.Fatalf("spawn level: %v", err)
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		t.Fatalf("no player spawned")
	}
	emitter, ok := ecs.First(w, component.EmitterComponent.Kind())
	if !ok {
		t.Fatalf("no emitter spawned")
	}
	att, ok := ecs.Get(w, emitter, component.AttachmentComponent.Kind())
	if !ok || ecs.Entity(att.Parent) != player {
		t.Fatalf("emitter should be attached to the player")
	}

	sim := system.NewSimulation(w, 0, NewProjectileAt, nil)
	sim.Step(1.0 / 60)
	paired := 0
	ecs.ForEach(w, component.PortalEndpointComponent.Kind(), func(e ecs.Entity, p *component.PortalEndpoint) {
		if p.Partner != 0 {
			paired++
		}
	})
	if paired != 2 {
		t.Fatalf("expected both portals paired, got %d", paired)
	}

	wallCount := 0
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody) {
		if body.Width == 2560 {
			wallCount++
		}
	})
	if wallCount != 1 {
		t.Fatalf("floor size from props not applied")
	}
}

func TestLoadLevelUnknownType(t *testing.T) {
	w := ecs.NewWorld()
	lvl := &levels.Level{Name: "bad", Entities: []levels.Entity{{Type: "dragon"}}}
	if err := LoadLevelToWorld(w, lvl); !errors.Is(err, ErrUnknownEntityType) {
		t.Fatalf("expected ErrUnknownEntityType, got %v", err)
	}
}

func TestReloadEmitterTuning(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildEntity(w, "emitter.yaml")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	em, _ := ecs.Get(w, e, component.EmitterComponent.Kind())
	em.ReleaseForce = 1
	em.CaptureThroughObstacles = true
	em.CaptureMode = component.CaptureProjectile
	em.Captured = 42

	n, err := ReloadEmitterTuning(w)
	if err != nil || n != 1 {
		t.Fatalf("reload: n=%d err=%v", n, err)
	}
	if em.ReleaseForce != 600 || em.CaptureThroughObstacles {
		t.Fatalf("tuning not reapplied: force=%v through=%v", em.ReleaseForce, em.CaptureThroughObstacles)
	}
	if em.CaptureMode != component.CaptureProjectile || em.Captured != 42 {
		t.Fatalf("reload must keep runtime state: %+v", em)
	}

	SetModes(w, component.CaptureDirect, component.PreviewFull)
	if em.CaptureMode != component.CaptureDirect || em.PreviewMode != component.PreviewFull {
		t.Fatalf("modes not applied: %+v", em)
	}
}
