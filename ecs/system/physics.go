package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeProjectile
	collisionTypeTrigger
)

// DefaultGravity is in pixels per second squared, +Y down.
const DefaultGravity = 1400.0

var (
	filterAll  = cp.NewShapeFilter(0, ^uint(0), ^uint(0))
	filterNone = cp.NewShapeFilter(0, 0, 0)
)

// PhysicsSystem owns the Chipmunk2D space. It creates bodies lazily for
// entities with PhysicsBody and Transform, steps the space, reports sensor
// contacts to the world event queue, and answers spatial queries.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity

	// world is the last world synced; contact callbacks, including the
	// separate callbacks RemoveShape fires, push onto its event queue.
	world *ecs.World
}

type bodyInfo struct {
	body      *cp.Body
	shape     *cp.Shape
	static    bool
	sensor    bool
	category  component.Category
	filter    cp.ShapeFilter
	suspended bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return NewPhysicsSystemWithGravity(DefaultGravity)
}

func NewPhysicsSystemWithGravity(gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.Sync(w)

	dt := w.DeltaTime()
	if dt <= 0 {
		return
	}
	ps.space.Step(dt)

	ps.syncTransforms(w)
}

// Sync removes bodies of dead entities and creates bodies for new ones. It
// runs at the start of every Update and may be called directly after level
// construction so queries work before the first step.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.world = w
	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		ps.ensureBody(w, e, body, transform)
	})
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	pairs := [][2]cp.CollisionType{
		{collisionTypeTrigger, collisionTypePlayer},
		{collisionTypeTrigger, collisionTypeSolid},
		{collisionTypeTrigger, collisionTypeProjectile},
		{collisionTypeProjectile, collisionTypeSolid},
		{collisionTypeProjectile, collisionTypePlayer},
	}
	for _, pair := range pairs {
		handler := ps.space.NewCollisionHandler(pair[0], pair[1])
		handler.UserData = ps
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			if sys, ok := userData.(*PhysicsSystem); ok {
				sys.pushContact(arb, ecs.CollisionBegin)
			}
			return true
		}
		handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
			if sys, ok := userData.(*PhysicsSystem); ok {
				sys.pushContact(arb, ecs.CollisionSeparate)
			}
		}
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) pushContact(arb *cp.Arbiter, kind ecs.CollisionEventKind) {
	if ps.world == nil {
		return
	}
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapes[shapeA]
	b, okB := ps.shapes[shapeB]
	if !okA || !okB || a == b {
		return
	}
	ps.world.Events().Push(ecs.CollisionEvent{Kind: kind, A: a, B: b})
}

func (ps *PhysicsSystem) ensureBody(w *ecs.World, e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) *bodyInfo {
	if info := ps.entities[e]; info != nil {
		return info
	}

	category := component.CategoryObstacle
	mask := component.CategoryAll
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		if layer.Category != 0 {
			category = layer.Category
		}
		if layer.Mask != 0 {
			mask = layer.Mask
		}
	}

	info := ps.createBodyInfo(transform, bodyComp, category)
	info.filter = cp.NewShapeFilter(0, uint(category), uint(mask))
	info.shape.SetFilter(info.filter)

	if scale, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok && scale.Scale == 0 && !info.static {
		disableGravity(info.body)
	}

	ps.entities[e] = info
	ps.shapes[info.shape] = e
	bodyComp.Body = info.body
	bodyComp.Shape = info.shape
	return info
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, category component.Category) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width = 32
		height = 32
	}

	info := &bodyInfo{static: bodyComp.Static, sensor: bodyComp.Sensor, category: category}

	var shape *cp.Shape
	if bodyComp.Static {
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: transform.X, Y: transform.Y})
		} else {
			bb := cp.BB{L: transform.X - width/2, B: transform.Y - height/2, R: transform.X + width/2, T: transform.Y + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		info.body = ps.space.StaticBody
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		var moment float64
		switch {
		case bodyComp.FixedRotation:
			moment = math.Inf(1)
		case radius > 0:
			moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
		default:
			moment = cp.MomentForBox(mass, width, height)
		}

		body := cp.NewBody(mass, moment)
		body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		body.SetAngle(transform.Rotation)
		if radius > 0 {
			shape = cp.NewCircle(body, radius, cp.Vector{})
		} else {
			shape = cp.NewBox(body, width, height, 0)
		}
		ps.space.AddBody(body)
		info.body = body
	}

	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetCollisionType(collisionTypeFor(category, bodyComp.Sensor))
	ps.space.AddShape(shape)
	info.shape = shape
	return info
}

func collisionTypeFor(category component.Category, sensor bool) cp.CollisionType {
	switch {
	case category.Has(component.CategoryProjectile):
		return collisionTypeProjectile
	case category.Has(component.CategoryPlayer):
		return collisionTypePlayer
	case sensor:
		return collisionTypeTrigger
	default:
		return collisionTypeSolid
	}
}

func disableGravity(body *cp.Body) {
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || info.suspended {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeFromSpace(info)
		delete(ps.shapes, info.shape)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) removeFromSpace(info *bodyInfo) {
	if info.suspended {
		return
	}
	ps.space.RemoveShape(info.shape)
	if !info.static {
		ps.space.RemoveBody(info.body)
	}
}

func (ps *PhysicsSystem) lookup(w *ecs.World, e ecs.Entity) *bodyInfo {
	if info := ps.entities[e]; info != nil {
		return info
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return nil
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return nil
	}
	ps.world = w
	ps.ensureHandlers()
	return ps.ensureBody(w, e, body, transform)
}

// SetPosition moves e to (x, y) and keeps its Transform in step.
func (ps *PhysicsSystem) SetPosition(w *ecs.World, e ecs.Entity, x, y float64) {
	if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		transform.X = x
		transform.Y = y
	}
	info := ps.lookup(w, e)
	if info == nil || info.static {
		return
	}
	info.body.SetPosition(cp.Vector{X: x, Y: y})
}

// Velocity returns e's linear velocity.
func (ps *PhysicsSystem) Velocity(w *ecs.World, e ecs.Entity) (float64, float64) {
	info := ps.lookup(w, e)
	if info == nil || info.static {
		return 0, 0
	}
	v := info.body.Velocity()
	return v.X, v.Y
}

// SetVelocity overwrites e's linear velocity.
func (ps *PhysicsSystem) SetVelocity(w *ecs.World, e ecs.Entity, vx, vy float64) {
	info := ps.lookup(w, e)
	if info == nil || info.static {
		return
	}
	info.body.SetVelocityVector(cp.Vector{X: vx, Y: vy})
}

// ZeroVelocity clears linear and angular velocity.
func (ps *PhysicsSystem) ZeroVelocity(w *ecs.World, e ecs.Entity) {
	info := ps.lookup(w, e)
	if info == nil || info.static {
		return
	}
	info.body.SetVelocityVector(cp.Vector{})
	info.body.SetAngularVelocity(0)
}

// ApplyImpulse applies (ix, iy) at e's center of mass.
func (ps *PhysicsSystem) ApplyImpulse(w *ecs.World, e ecs.Entity, ix, iy float64) {
	info := ps.lookup(w, e)
	if info == nil || info.static || info.suspended {
		return
	}
	info.body.ApplyImpulseAtWorldPoint(cp.Vector{X: ix, Y: iy}, info.body.Position())
}

// DisableGravity stops world gravity from acting on e.
func (ps *PhysicsSystem) DisableGravity(w *ecs.World, e ecs.Entity) {
	info := ps.lookup(w, e)
	if info == nil || info.static {
		return
	}
	disableGravity(info.body)
}

// SetCollidable switches e's shape between its configured filter and one
// that rejects every contact and query.
func (ps *PhysicsSystem) SetCollidable(w *ecs.World, e ecs.Entity, collidable bool) {
	info := ps.lookup(w, e)
	if info == nil {
		return
	}
	if collidable {
		info.shape.SetFilter(info.filter)
		return
	}
	info.shape.SetFilter(filterNone)
}

// Suspend takes e's body out of the space so it is neither simulated nor
// queried. Velocity is cleared first.
func (ps *PhysicsSystem) Suspend(w *ecs.World, e ecs.Entity) {
	info := ps.lookup(w, e)
	if info == nil || info.static || info.suspended {
		return
	}
	info.body.SetVelocityVector(cp.Vector{})
	info.body.SetAngularVelocity(0)
	ps.space.RemoveShape(info.shape)
	ps.space.RemoveBody(info.body)
	info.suspended = true
}

// Resume puts a suspended body back into the space at (x, y) at rest.
func (ps *PhysicsSystem) Resume(w *ecs.World, e ecs.Entity, x, y float64) {
	info := ps.lookup(w, e)
	if info == nil || info.static || !info.suspended {
		return
	}
	info.body.SetPosition(cp.Vector{X: x, Y: y})
	info.body.SetVelocityVector(cp.Vector{})
	info.body.SetAngularVelocity(0)
	ps.space.AddBody(info.body)
	ps.space.AddShape(info.shape)
	info.suspended = false
	if transform, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		transform.X = x
		transform.Y = y
	}
}

// Suspended reports whether e's body is currently out of the space.
func (ps *PhysicsSystem) Suspended(e ecs.Entity) bool {
	info := ps.entities[e]
	return info != nil && info.suspended
}
