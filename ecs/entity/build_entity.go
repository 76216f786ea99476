package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
	"github.com/milk9111/portalgun/prefabs"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":         addPlayerTag,
	"camera_tag":         addCameraTag,
	"instructions_tag":   addInstructionsTag,
	"transform":          addTransform,
	"player":             addPlayer,
	"input":              addInput,
	"camera":             addCamera,
	"emitter":            addEmitter,
	"capturable":         addCapturable,
	"portal":             addPortal,
	"win_zone":           addWinZone,
	"trajectory_preview": addTrajectoryPreview,
	"render_rect":        addRenderRect,
	"attachment":         addAttachment,
	"collision_layer":    addCollisionLayer,
	"gravity_scale":      addGravityScale,
	"physics_body":       addPhysicsBody,
}

// Transform comes before anything that reads it; physics_body goes last so the
// collider configuration is complete when the body is first synced.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"instructions_tag",
	"transform",
	"player",
	"input",
	"camera",
	"emitter",
	"capturable",
	"portal",
	"win_zone",
	"trajectory_preview",
	"render_rect",
	"attachment",
	"collision_layer",
	"gravity_scale",
	"physics_body",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: %w: %v", prefabPath, ErrUnknownComponent, names)
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addInstructionsTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.InstructionsTagComponent.Kind(), &component.InstructionsTag{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Rotation: spec.Rotation,
	})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:   spec.MoveSpeed,
		JumpImpulse: spec.JumpImpulse,
		GroundProbe: spec.GroundProbe,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom == 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		FollowSpeed: spec.FollowSpeed,
		FixedY:      spec.FixedY,
		Zoom:        spec.Zoom,
		ViewWidth:   spec.ViewWidth,
		ViewHeight:  spec.ViewHeight,
	})
}

type emitterSpec = prefabs.EmitterComponentSpec

func addEmitter(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[emitterSpec](raw)
	if err != nil {
		return fmt.Errorf("decode emitter spec: %w", err)
	}
	em := &component.Emitter{AimX: 1}
	if em.CaptureMode, err = component.ParseCaptureMode(spec.CaptureMode); err != nil {
		return err
	}
	if em.PreviewMode, err = component.ParsePreviewMode(spec.PreviewMode); err != nil {
		return err
	}
	em.RequireAimHeld = spec.RequireAimHeld
	ApplyEmitterTuning(em, spec)
	return ecs.Add(w, e, component.EmitterComponent.Kind(), em)
}

// ApplyEmitterTuning copies the tuning of spec onto em. Modes and
// runtime state are left alone so it is safe on a live emitter.
func ApplyEmitterTuning(em *component.Emitter, spec prefabs.EmitterComponentSpec) {
	em.CaptureRange = spec.CaptureRange
	em.CaptureOffset = spec.CaptureOffset
	em.CaptureThroughObstacles = spec.CaptureThroughWalls
	em.AimArrowLength = spec.AimArrowLength
	em.FullTrajectoryLength = spec.FullTrajectoryLength
	em.PreviewPortalHops = spec.PreviewPortalHops
	em.ProjectileSpeed = spec.ProjectileSpeed
	em.ProjectileRange = spec.ProjectileRange
	em.ProjectileOffset = spec.ProjectileOffset
	em.ReleaseOffset = spec.ReleaseOffset
	em.ReleaseForce = spec.ReleaseForce
	em.ReleaseForceScale = spec.ReleaseForceScale
}

func addCapturable(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.CapturableComponent.Kind(), &component.Capturable{Visible: true, Collidable: true})
}

type portalSpec = prefabs.PortalComponentSpec

func addPortal(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[portalSpec](raw)
	if err != nil {
		return fmt.Errorf("decode portal spec: %w", err)
	}
	return ecs.Add(w, e, component.PortalEndpointComponent.Kind(), &component.PortalEndpoint{
		ID:                   spec.ID,
		PartnerID:            spec.PartnerID,
		FacingX:              spec.FacingX,
		FacingY:              spec.FacingY,
		ReverseExitDirection: spec.ReverseExitDirection,
		ProjectileCooldown:   spec.ProjectileCooldown,
	})
}

func addWinZone(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.WinZoneComponent.Kind(), &component.WinZone{})
}

type trajectoryPreviewSpec = prefabs.TrajectoryPreviewComponentSpec

func addTrajectoryPreview(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[trajectoryPreviewSpec](raw)
	if err != nil {
		return fmt.Errorf("decode trajectory preview spec: %w", err)
	}
	if spec.Width <= 0 {
		spec.Width = 1
	}
	return ecs.Add(w, e, component.TrajectoryPreviewComponent.Kind(), &component.TrajectoryPreview{
		Width: spec.Width,
		Color: colorOr(spec.Color, color.NRGBA{R: 255, G: 255, B: 255, A: 200}),
	})
}

type renderRectSpec = prefabs.RenderRectComponentSpec

func addRenderRect(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[renderRectSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render rect spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderRectComponent.Kind(), &component.RenderRect{
		Width:  spec.Width,
		Height: spec.Height,
		Radius: spec.Radius,
		Color:  colorOr(spec.Color, color.NRGBA{R: 255, G: 0, B: 255, A: 255}),
		Layer:  spec.Layer,
	})
}

type attachmentSpec = prefabs.AttachmentComponentSpec

func addAttachment(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[attachmentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode attachment spec: %w", err)
	}
	return ecs.Add(w, e, component.AttachmentComponent.Kind(), &component.Attachment{
		OffsetX: spec.OffsetX,
		OffsetY: spec.OffsetY,
	})
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	cat := component.CategoryObstacle
	if spec.Category != "" {
		parsed, ok := component.ParseCategory(spec.Category)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, spec.Category)
		}
		cat = parsed
	}
	var mask component.Category
	for _, name := range spec.Mask {
		parsed, ok := component.ParseCategory(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}
		mask |= parsed
	}
	if mask == 0 {
		mask = component.CategoryAll
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Category: cat, Mask: mask})
}

type gravityScaleSpec = prefabs.GravityScaleComponentSpec

func addGravityScale(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[gravityScaleSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity scale spec: %w", err)
	}
	return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.Scale})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.DefaultWidth <= 0 {
		spec.DefaultWidth = 32
	}
	if spec.DefaultHeight <= 0 {
		spec.DefaultHeight = 32
	}

	width := spec.Width
	height := spec.Height
	if spec.Radius <= 0 {
		if width == 0 {
			width = spec.DefaultWidth
		}
		if height == 0 {
			height = spec.DefaultHeight
		}
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:         width,
		Height:        height,
		Radius:        spec.Radius,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		Elasticity:    spec.Elasticity,
		Static:        spec.Static,
		Sensor:        spec.Sensor,
		FixedRotation: spec.FixedRotation,
	})
}

func colorOr(c *prefabs.YAMLColor, def color.Color) color.Color {
	if c == nil || c.Color == nil {
		return def
	}
	return c.Color
}
