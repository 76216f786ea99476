package ecs

// System updates a world each tick.
type System interface {
	Update(w *World)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update advances world time by dt and runs every system once in order.
// Contact events not consumed during the tick are dropped.
func (s *Scheduler) Update(w *World, dt float64) {
	if w == nil {
		return
	}
	w.beginTick(dt)
	for _, system := range s.systems {
		system.Update(w)
	}
	w.events.flush()
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
