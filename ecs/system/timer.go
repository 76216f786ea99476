package system

import "github.com/milk9111/portalgun/ecs"

// TimerSystem fires deferred actions that have come due this tick.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

func (s *TimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Timers().Advance(w)
}
