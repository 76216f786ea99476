package component

type Player struct {
	MoveSpeed   float64
	JumpImpulse float64
	// GroundProbe is the radius of the circle checked under the feet.
	GroundProbe float64
	FacingLeft  bool
	Grounded    bool
}

var PlayerComponent = NewComponent[Player]()
