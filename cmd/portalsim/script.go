package main

import (
	"fmt"
	"os"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
	"gopkg.in/yaml.v3"
)

// Script is a list of timed input steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step sets input at Tick. Edge inputs fire on Tick only; MoveX, AimHeld and
// the pointer are held for Hold ticks (at least one).
type Step struct {
	Tick int `yaml:"tick"`
	Hold int `yaml:"hold,omitempty"`

	MoveX   float64 `yaml:"move_x,omitempty"`
	AimHeld bool    `yaml:"aim_held,omitempty"`

	PointerX *float64 `yaml:"pointer_x,omitempty"`
	PointerY *float64 `yaml:"pointer_y,omitempty"`

	Jump          bool `yaml:"jump,omitempty"`
	Primary       bool `yaml:"primary,omitempty"`
	Secondary     bool `yaml:"secondary,omitempty"`
	ToggleCapture bool `yaml:"toggle_capture,omitempty"`
	TogglePreview bool `yaml:"toggle_preview,omitempty"`
}

func LoadScript(path string) (*Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	return ParseScript(b)
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("script: parse: %w", err)
	}
	for i, step := range s.Steps {
		if step.Tick < 0 {
			return nil, fmt.Errorf("script: step %d: negative tick %d", i, step.Tick)
		}
	}
	return &s, nil
}

// scriptInput plays a Script into every Input component, one tick per Update.
type scriptInput struct {
	script *Script
	tick   int

	pointerX, pointerY float64
	pointerSet         bool
}

func newScriptInput(s *Script) *scriptInput {
	if s == nil {
		s = &Script{}
	}
	return &scriptInput{script: s}
}

func (si *scriptInput) Update(w *ecs.World) {
	var frame component.Input
	for _, step := range si.script.Steps {
		hold := step.Hold
		if hold < 1 {
			hold = 1
		}
		if si.tick < step.Tick || si.tick >= step.Tick+hold {
			continue
		}
		if step.PointerX != nil && step.PointerY != nil {
			si.pointerX, si.pointerY = *step.PointerX, *step.PointerY
			si.pointerSet = true
		}
		if step.MoveX != 0 {
			frame.MoveX = step.MoveX
		}
		frame.AimHeld = frame.AimHeld || step.AimHeld
		if si.tick == step.Tick {
			frame.JumpPressed = frame.JumpPressed || step.Jump
			frame.PrimaryPressed = frame.PrimaryPressed || step.Primary
			frame.SecondaryPressed = frame.SecondaryPressed || step.Secondary
			frame.ToggleCaptureMode = frame.ToggleCaptureMode || step.ToggleCapture
			frame.TogglePreviewMode = frame.TogglePreviewMode || step.TogglePreview
		}
	}
	si.tick++

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		px, py := input.PointerX, input.PointerY
		if si.pointerSet {
			px, py = si.pointerX, si.pointerY
		}
		*input = frame
		input.PointerX, input.PointerY = px, py
	})
}
