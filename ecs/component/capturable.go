package component

// Capturable marks a physics object the emitter can seize. CapturedBy holds
// the packed handle of the emitter while captured.
type Capturable struct {
	Visible          bool
	Collidable       bool
	PhysicsSuspended bool
	CapturedBy       uint64
}

var CapturableComponent = NewComponent[Capturable]()
