package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
	"github.com/milk9111/portalgun/levels"
)

var levelPrefabs = map[string]string{
	"player":       "player.yaml",
	"emitter":      "emitter.yaml",
	"box":          "box.yaml",
	"wall":         "wall.yaml",
	"portal":       "portal.yaml",
	"win_zone":     "win_zone.yaml",
	"camera":       "camera.yaml",
	"instructions": "instructions.yaml",
}

// LoadLevelToWorld spawns every entity of lvl plus a LevelBounds entity.
// Emitters are attached to the level's player when there is one.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("load level: nil world or level")
	}

	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  lvl.Width,
		Height: lvl.Height,
	}); err != nil {
		return err
	}

	var player ecs.Entity
	var emitters []ecs.Entity
	for i, spec := range lvl.Entities {
		e, err := spawnLevelEntity(w, spec)
		if err != nil {
			return fmt.Errorf("load level %q: entity %d: %w", lvl.Name, i, err)
		}
		switch spec.Type {
		case "player":
			player = e
		case "emitter":
			emitters = append(emitters, e)
		}
	}

	for _, e := range emitters {
		att, ok := ecs.Get(w, e, component.AttachmentComponent.Kind())
		if !ok {
			continue
		}
		if player == 0 {
			log.Printf("level: %q has an emitter but no player; emitter left free", lvl.Name)
			ecs.Remove(w, e, component.AttachmentComponent.Kind())
			continue
		}
		att.Parent = uint64(player)
	}
	return nil
}

func spawnLevelEntity(w *ecs.World, spec levels.Entity) (ecs.Entity, error) {
	prefab, ok := levelPrefabs[spec.Type]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEntityType, spec.Type)
	}
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, spec.X, spec.Y, 0); err != nil {
		return 0, fmt.Errorf("%s: override transform: %w", spec.Type, err)
	}

	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Width = spec.Float("width", body.Width)
		body.Height = spec.Float("height", body.Height)
	}
	if r, ok := ecs.Get(w, e, component.RenderRectComponent.Kind()); ok {
		r.Width = spec.Float("width", r.Width)
		r.Height = spec.Float("height", r.Height)
	}
	if p, ok := ecs.Get(w, e, component.PortalEndpointComponent.Kind()); ok {
		p.ID = spec.String("id")
		p.PartnerID = spec.String("partner")
		p.FacingX = spec.Float("facing_x", p.FacingX)
		p.FacingY = spec.Float("facing_y", p.FacingY)
		p.ReverseExitDirection = spec.Bool("reverse")
		p.ProjectileCooldown = spec.Float("cooldown", p.ProjectileCooldown)
	}
	if c, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
		c.FixedY = spec.Float("fixed_y", spec.Y)
	}
	return e, nil
}
