package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Radius > 0 selects a circle collider, otherwise a Width x Height box.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
	Sensor     bool
	// FixedRotation keeps the body upright (infinite moment).
	FixedRotation bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
