package system

import (
	"log"

	"github.com/milk9111/portalgun/ecs"
	"github.com/milk9111/portalgun/ecs/component"
)

// WinSystem is a contact listener that marks a win zone reached the first
// time the player touches it.
type WinSystem struct{}

func NewWinSystem() *WinSystem {
	return &WinSystem{}
}

func (s *WinSystem) ContactBegin(w *ecs.World, self, other ecs.Entity) {
	zone, ok := ecs.Get(w, self, component.WinZoneComponent.Kind())
	if !ok || zone.Reached {
		return
	}
	if !categoryOf(w, other).Has(component.CategoryPlayer) {
		return
	}
	zone.Reached = true
	log.Printf("win system: player reached win zone %s", self)
}

func (s *WinSystem) ContactEnd(*ecs.World, ecs.Entity, ecs.Entity) {}

// Won reports whether any win zone has been reached.
func Won(w *ecs.World) bool {
	won := false
	ecs.ForEach(w, component.WinZoneComponent.Kind(), func(_ ecs.Entity, zone *component.WinZone) {
		won = won || zone.Reached
	})
	return won
}
