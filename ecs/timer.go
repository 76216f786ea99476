package ecs

import "sort"

// TimerID identifies a scheduled timer. Zero is never issued.
type TimerID uint64

// TimerFunc runs when a timer fires. target is guaranteed alive.
type TimerFunc func(w *World, target Entity)

type timer struct {
	id     TimerID
	target Entity
	at     float64
	fn     TimerFunc
}

// TimerQueue holds deferred one-shot actions keyed by the entity they act on.
type TimerQueue struct {
	nextID  TimerID
	pending []timer
}

// Schedule registers fn to fire at absolute world time at.
func (q *TimerQueue) Schedule(target Entity, at float64, fn TimerFunc) TimerID {
	if q == nil || fn == nil {
		return 0
	}
	q.nextID++
	q.pending = append(q.pending, timer{id: q.nextID, target: target, at: at, fn: fn})
	return q.nextID
}

// Cancel drops a pending timer. It reports false when the timer already fired
// or was cancelled.
func (q *TimerQueue) Cancel(id TimerID) bool {
	if q == nil || id == 0 {
		return false
	}
	for i := range q.pending {
		if q.pending[i].id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelTarget drops every pending timer aimed at e and returns how many.
func (q *TimerQueue) CancelTarget(e Entity) int {
	if q == nil {
		return 0
	}
	kept := q.pending[:0]
	removed := 0
	for _, t := range q.pending {
		if t.target == e {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	q.pending = kept
	return removed
}

// Pending returns the number of timers waiting to fire.
func (q *TimerQueue) Pending() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

// Advance fires every timer due at or before the world's current time, in
// fire-time order with ties broken by schedule order. Timers whose target is
// no longer alive are discarded.
func (q *TimerQueue) Advance(w *World) int {
	if q == nil || w == nil || len(q.pending) == 0 {
		return 0
	}
	now := w.Time()
	var due []timer
	kept := q.pending[:0]
	for _, t := range q.pending {
		if t.at <= now {
			due = append(due, t)
			continue
		}
		kept = append(kept, t)
	}
	q.pending = kept
	if len(due) == 0 {
		return 0
	}
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].id < due[j].id
	})
	fired := 0
	for _, t := range due {
		if !IsAlive(w, t.target) {
			continue
		}
		t.fn(w, t.target)
		fired++
	}
	return fired
}
