package system

import (
	"math"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// firstPortalCrossing finds the nearest portal endpoint volume the segment
// enters, ignoring exclude. It works on component data alone so the preview
// can follow portals regardless of how the engine treats sensors in queries.
func firstPortalCrossing(w *ecs.World, exclude ecs.Entity, x0, y0, x1, y1 float64) (ecs.Entity, float64, bool) {
	dx := x1 - x0
	dy := y1 - y0
	if dx == 0 && dy == 0 {
		return 0, 0, false
	}

	closestT := math.Inf(1)
	var closest ecs.Entity

	ecs.ForEach3(w, component.PortalEndpointComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PortalEndpoint, body *component.PhysicsBody, transform *component.Transform) {
		if e == exclude {
			return
		}
		var t float64
		var ok bool
		if body.Radius > 0 {
			t, ok = segmentCircleHit(x0, y0, x1, y1, transform.X, transform.Y, body.Radius)
		} else {
			minX, minY, maxX, maxY := bodyAABB(transform, body)
			ok, t = segmentAABBHit(x0, y0, dx, dy, minX, minY, maxX, maxY)
		}
		if ok && t < closestT {
			closestT = t
			closest = e
		}
	})

	if math.IsInf(closestT, 1) {
		return 0, 0, false
	}
	return closest, closestT, true
}

func bodyAABB(transform *component.Transform, body *component.PhysicsBody) (minX, minY, maxX, maxY float64) {
	width := body.Width
	height := body.Height
	if width <= 0 {
		width = 32
	}
	if height <= 0 {
		height = 32
	}
	minX = transform.X - width/2
	minY = transform.Y - height/2
	return minX, minY, minX + width, minY + height
}

// segmentAABBHit is a slab test; t is the entry parameter along (dx, dy).
func segmentAABBHit(x0, y0, dx, dy, minX, minY, maxX, maxY float64) (bool, float64) {
	tmin := 0.0
	tmax := 1.0

	if dx != 0 {
		invD := 1.0 / dx
		t1 := (minX - x0) * invD
		t2 := (maxX - x0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if x0 < minX || x0 > maxX {
		return false, 0
	}

	if dy != 0 {
		invD := 1.0 / dy
		t1 := (minY - y0) * invD
		t2 := (maxY - y0) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	} else if y0 < minY || y0 > maxY {
		return false, 0
	}

	if tmax >= tmin {
		return true, tmin
	}
	return false, 0
}

func segmentCircleHit(x0, y0, x1, y1, cx, cy, r float64) (float64, bool) {
	dx := x1 - x0
	dy := y1 - y0
	fx := x0 - cx
	fy := y0 - cy

	a := dx*dx + dy*dy
	b := 2 * (fx*dx + fy*dy)
	c := fx*fx + fy*fy - r*r

	if c <= 0 {
		return 0, true
	}
	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return 0, false
	}

	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t >= 0 && t <= 1 {
		return t, true
	}
	return 0, false
}
