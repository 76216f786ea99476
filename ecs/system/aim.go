package system

import (
	"log"
	"math"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// AimSystem points each emitter at the pointer and writes its trajectory
// preview. It never changes simulation state beyond the emitter's own aim.
type AimSystem struct {
	query SpatialQuery
}

func NewAimSystem(query SpatialQuery) *AimSystem {
	return &AimSystem{query: query}
}

func (a *AimSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.EmitterComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, em *component.Emitter, transform *component.Transform) {
		input, ok := inputFor(w, e)
		if !ok {
			input = &component.Input{PointerX: transform.X + em.AimX, PointerY: transform.Y + em.AimY}
		}

		if dx, dy, ok := normalize(input.PointerX-transform.X, input.PointerY-transform.Y); ok {
			em.AimX, em.AimY = dx, dy
		} else if em.AimX == 0 && em.AimY == 0 {
			em.AimX = 1
		}
		transform.Rotation = math.Atan2(em.AimY, em.AimX)

		if em.PreviewDisabled {
			return
		}
		preview, ok := ecs.Get(w, e, component.TrajectoryPreviewComponent.Kind())
		if !ok {
			log.Printf("aim system: emitter %s has no trajectory preview; preview disabled", e)
			em.PreviewDisabled = true
			return
		}

		if em.RequireAimHeld && !input.AimHeld {
			preview.Visible = false
			preview.Points = preview.Points[:0]
			preview.Hit = false
			return
		}

		length := em.AimArrowLength
		hops := 0
		if em.PreviewMode == component.PreviewFull {
			length = em.FullTrajectoryLength
			hops = em.PreviewPortalHops
		}
		preview.Points, preview.Hit = a.trace(w, transform.X, transform.Y, em.AimX, em.AimY, length, hops, preview.Points[:0])
		preview.Visible = true
	})
}

// trace appends preview segments starting at (x, y). Each segment stops at
// the first solid obstruction or the remaining length; with hops left, a
// segment that reaches a linked portal continues from its partner.
func (a *AimSystem) trace(w *ecs.World, x, y, dx, dy, length float64, hops int, points []float64) ([]float64, bool) {
	var skipPortal ecs.Entity
	for length > 0 {
		endX, endY := x+dx*length, y+dy*length
		hitDist := length
		hit := false
		if h, ok := a.query.CastRayFirst(w, x, y, dx, dy, length, SkipPlayerAndSensors); ok {
			hitDist = h.Distance
			endX, endY = h.X, h.Y
			hit = true
		}

		if hops > 0 {
			if portal, t, ok := firstPortalCrossing(w, skipPortal, x, y, endX, endY); ok {
				if exit, ex, ey, edx, edy, ok := portalExit(w, portal); ok {
					crossed := t * hitDist
					points = append(points, x, y, x+dx*crossed, y+dy*crossed)
					length -= crossed
					x, y, dx, dy = ex, ey, edx, edy
					skipPortal = exit
					hops--
					continue
				}
			}
		}

		points = append(points, x, y, endX, endY)
		return points, hit
	}
	return points, false
}

// portalExit returns the partner of portal with its position and exit
// direction.
func portalExit(w *ecs.World, portal ecs.Entity) (ecs.Entity, float64, float64, float64, float64, bool) {
	p, ok := ecs.Get(w, portal, component.PortalEndpointComponent.Kind())
	if !ok || p.Partner == 0 {
		return 0, 0, 0, 0, 0, false
	}
	exit := ecs.Entity(p.Partner)
	dest, ok := ecs.Get(w, exit, component.PortalEndpointComponent.Kind())
	if !ok {
		return 0, 0, 0, 0, 0, false
	}
	t, ok := ecs.Get(w, exit, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, 0, 0, 0, false
	}
	dx, dy := ExitDirection(dest)
	return exit, t.X, t.Y, dx, dy, true
}
