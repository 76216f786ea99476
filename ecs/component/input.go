package component

// Input stores per-frame input state for an entity. Pressed fields are
// edge-triggered and only true on the frame the button went down.
type Input struct {
	PointerX float64
	PointerY float64

	PrimaryPressed   bool
	SecondaryPressed bool
	AimHeld          bool

	ToggleCaptureMode bool
	TogglePreviewMode bool

	MoveX       float64
	JumpPressed bool
}

var InputComponent = NewComponent[Input]()
