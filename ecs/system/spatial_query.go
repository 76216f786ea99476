package system

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// RayHit is one shape crossed by a ray.
type RayHit struct {
	Entity   ecs.Entity
	Category component.Category
	Sensor   bool
	Distance float64
	X, Y     float64
	NormalX  float64
	NormalY  float64
}

// SpatialQuery is the ray and overlap surface the gameplay systems consume.
type SpatialQuery interface {
	CastRay(w *ecs.World, originX, originY, dirX, dirY, maxDist float64) []RayHit
	CastRayFirst(w *ecs.World, originX, originY, dirX, dirY, maxDist float64, skip func(RayHit) bool) (RayHit, bool)
	OverlapCircle(w *ecs.World, x, y, radius float64, mask component.Category, ignore ecs.Entity) bool
}

// CastRay returns every shape the segment from origin along dir crosses
// within maxDist, nearest first. dir need not be normalized.
func (ps *PhysicsSystem) CastRay(w *ecs.World, originX, originY, dirX, dirY, maxDist float64) []RayHit {
	if ps == nil || maxDist <= 0 {
		return nil
	}
	dx, dy, ok := normalize(dirX, dirY)
	if !ok {
		return nil
	}
	ps.Sync(w)

	start := cp.Vector{X: originX, Y: originY}
	end := cp.Vector{X: originX + dx*maxDist, Y: originY + dy*maxDist}

	var hits []RayHit
	ps.space.SegmentQuery(start, end, 0, filterAll, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
		e, ok := ps.shapes[shape]
		if !ok || !ecs.IsAlive(w, e) {
			return
		}
		info := ps.entities[e]
		if info == nil || info.suspended {
			return
		}
		hits = append(hits, RayHit{
			Entity:   e,
			Category: info.category,
			Sensor:   info.sensor,
			Distance: alpha * maxDist,
			X:        point.X,
			Y:        point.Y,
			NormalX:  normal.X,
			NormalY:  normal.Y,
		})
	}, nil)

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// CastRayFirst returns the nearest hit that skip does not reject.
func (ps *PhysicsSystem) CastRayFirst(w *ecs.World, originX, originY, dirX, dirY, maxDist float64, skip func(RayHit) bool) (RayHit, bool) {
	for _, hit := range ps.CastRay(w, originX, originY, dirX, dirY, maxDist) {
		if skip != nil && skip(hit) {
			continue
		}
		return hit, true
	}
	return RayHit{}, false
}

// OverlapCircle reports whether any solid shape in mask, other than ignore,
// lies within radius of (x, y).
func (ps *PhysicsSystem) OverlapCircle(w *ecs.World, x, y, radius float64, mask component.Category, ignore ecs.Entity) bool {
	if ps == nil || radius <= 0 {
		return false
	}
	ps.Sync(w)

	p := cp.Vector{X: x, Y: y}
	found := false
	// BBQuery is coarse; the shape point query confirms the circle overlap.
	ps.space.BBQuery(cp.NewBBForCircle(p, radius), filterAll, func(shape *cp.Shape, data interface{}) {
		if found {
			return
		}
		e, ok := ps.shapes[shape]
		if !ok || e == ignore || !ecs.IsAlive(w, e) {
			return
		}
		info := ps.entities[e]
		if info == nil || info.sensor || info.suspended || info.category&mask == 0 {
			return
		}
		if shape.PointQuery(p).Distance <= radius {
			found = true
		}
	}, nil)
	return found
}

// SkipPlayerAndSensors is the CastRayFirst filter for solid line of sight.
func SkipPlayerAndSensors(hit RayHit) bool {
	return hit.Sensor || hit.Category.Has(component.CategoryPlayer)
}

func skipNonCapturable(hit RayHit) bool {
	return hit.Sensor || !hit.Category.Has(component.CategoryCapturable)
}

func normalize(x, y float64) (float64, float64, bool) {
	l := math.Hypot(x, y)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return 0, 0, false
	}
	return x / l, y / l, true
}
