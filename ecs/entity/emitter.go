package entity

import (
	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
	"github.com/milk9111/portalgun/prefabs"
)

// ReloadEmitterTuning re-reads emitter.yaml and applies its numbers to every
// live emitter. It returns how many emitters were updated.
func ReloadEmitterTuning(w *ecs.World) (int, error) {
	spec, err := prefabs.LoadEmitterTuning()
	if err != nil {
		return 0, err
	}
	n := 0
	ecs.ForEach(w, component.EmitterComponent.Kind(), func(_ ecs.Entity, em *component.Emitter) {
		ApplyEmitterTuning(em, spec)
		n++
	})
	return n, nil
}

// SetModes overrides the capture and preview modes of every emitter.
func SetModes(w *ecs.World, capture component.CaptureMode, preview component.PreviewMode) {
	ecs.ForEach(w, component.EmitterComponent.Kind(), func(_ ecs.Entity, em *component.Emitter) {
		em.CaptureMode = capture
		em.PreviewMode = preview
	})
}
