package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type InstructionsTag struct {
	Dismissed bool
}

var InstructionsTagComponent = NewComponent[InstructionsTag]()
