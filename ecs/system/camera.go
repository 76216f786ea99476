package system

import (
	"math"

	"github.com/milk9111/portalgun/common"
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// CameraSystem eases the camera toward the player on X, holds Y fixed, and
// keeps the view inside the level.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !ecs.IsAlive(w, cs.camEntity) {
		cs.camEntity, _ = ecs.First(w, component.CameraComponent.Kind())
	}
	if !ecs.IsAlive(w, cs.targetEntity) {
		cs.targetEntity, _ = ecs.First(w, component.PlayerTagComponent.Kind())
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	t := 1.0
	if cam.FollowSpeed > 0 {
		t = math.Min(1, cam.FollowSpeed*w.DeltaTime())
	}
	x := common.Lerp(camTransform.X, target.X, t)

	if bounds, ok := firstBounds(w); ok && cam.ViewWidth > 0 {
		zoom := cam.Zoom
		if zoom <= 0 {
			zoom = 1
		}
		half := cam.ViewWidth / zoom / 2
		minX, maxX := half, bounds.Width-half
		if minX > maxX {
			minX, maxX = bounds.Width/2, bounds.Width/2
		}
		x = common.Clamp(x, minX, maxX)
	}

	camTransform.X = x
	camTransform.Y = cam.FixedY
}

func firstBounds(w *ecs.World) (*component.LevelBounds, bool) {
	e, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.LevelBoundsComponent.Kind())
}
