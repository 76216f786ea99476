package system

import (
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

const (
	defaultMoveSpeed   = 260.0
	defaultJumpImpulse = 600.0
	defaultGroundProbe = 4.0
)

// PlayerControllerSystem drives horizontal movement and grounded jumps.
type PlayerControllerSystem struct {
	bodies BodyController
	query  SpatialQuery
}

func NewPlayerControllerSystem(bodies BodyController, query SpatialQuery) *PlayerControllerSystem {
	return &PlayerControllerSystem{bodies: bodies, query: query}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	ecs.ForEach4(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, player *component.Player, input *component.Input, body *component.PhysicsBody, transform *component.Transform) {
			speed := player.MoveSpeed
			if speed == 0 {
				speed = defaultMoveSpeed
			}
			jump := player.JumpImpulse
			if jump == 0 {
				jump = defaultJumpImpulse
			}
			probe := player.GroundProbe
			if probe == 0 {
				probe = defaultGroundProbe
			}

			feetY := transform.Y + body.Height/2
			player.Grounded = p.query.OverlapCircle(w, transform.X, feetY+probe/2, probe, component.CategoryObstacle|component.CategoryCapturable, e)

			_, vy := p.bodies.Velocity(w, e)
			vx := input.MoveX * speed
			if input.JumpPressed && player.Grounded {
				vy = -jump
			}
			p.bodies.SetVelocity(w, e, vx, vy)

			if input.MoveX < 0 {
				player.FacingLeft = true
			} else if input.MoveX > 0 {
				player.FacingLeft = false
			}
		})
}
