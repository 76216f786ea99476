package ecs

// CollisionEventKind identifies collision event types.
type CollisionEventKind int

const (
	// CollisionBegin is pushed the first step two shapes touch.
	CollisionBegin CollisionEventKind = iota + 1
	// CollisionSeparate is pushed the step they stop touching.
	CollisionSeparate
)

func (k CollisionEventKind) String() string {
	switch k {
	case CollisionBegin:
		return "begin"
	case CollisionSeparate:
		return "separate"
	default:
		return "unknown"
	}
}

// CollisionEvent is emitted when the touching state of a pair changes. A is
// the sensor side of the pair when there is one.
type CollisionEvent struct {
	Kind CollisionEventKind
	A    Entity
	B    Entity
}

// EventQueue is a FIFO of collision events in the order the physics step
// reported them.
type EventQueue struct {
	items []CollisionEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []CollisionEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
