package entity

import (
	"fmt"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
	"github.com/milk9111/portalgun/ecs/system"
)

// NewProjectileAt builds a projectile from projectile.yaml and aims it. It
// satisfies system.ProjectileSpawner.
func NewProjectileAt(w *ecs.World, spawn system.ProjectileSpawn) (ecs.Entity, error) {
	e, err := BuildEntity(w, "projectile.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, spawn.X, spawn.Y, 0); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("projectile: override transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		OriginX:     spawn.X,
		OriginY:     spawn.Y,
		DirX:        spawn.DirX,
		DirY:        spawn.DirY,
		Speed:       spawn.Speed,
		MaxDistance: spawn.MaxDistance,
		Owner:       uint64(spawn.Owner),
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}
	return e, nil
}

var _ system.ProjectileSpawner = NewProjectileAt
