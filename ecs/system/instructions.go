package system

import (
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// InstructionsSystem hides the instructions overlay on the first primary
// press. That press is consumed so it does not also fire the emitter.
type InstructionsSystem struct{}

func NewInstructionsSystem() *InstructionsSystem {
	return &InstructionsSystem{}
}

func (s *InstructionsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	open := false
	ecs.ForEach(w, component.InstructionsTagComponent.Kind(), func(_ ecs.Entity, tag *component.InstructionsTag) {
		open = open || !tag.Dismissed
	})
	if !open {
		return
	}

	pressed := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		if input.PrimaryPressed {
			pressed = true
			input.PrimaryPressed = false
		}
	})
	if !pressed {
		return
	}
	ecs.ForEach(w, component.InstructionsTagComponent.Kind(), func(_ ecs.Entity, tag *component.InstructionsTag) {
		tag.Dismissed = true
	})
}

// InstructionsVisible reports whether an undismissed instructions overlay exists.
func InstructionsVisible(w *ecs.World) bool {
	visible := false
	ecs.ForEach(w, component.InstructionsTagComponent.Kind(), func(_ ecs.Entity, tag *component.InstructionsTag) {
		visible = visible || !tag.Dismissed
	})
	return visible
}
