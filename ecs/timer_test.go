package ecs

import "testing"

type nopSystem struct{}

func (nopSystem) Update(*World) {}

func TestTimerQueue(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "fires_once_when_due",
			run: func(t *testing.T) {
				w := NewWorld()
				s := NewScheduler(nopSystem{})
				e := CreateEntity(w)
				calls := 0
				w.After(e, 0.2, func(*World, Entity) { calls++ })

				s.Update(w, 0.1)
				if n := w.Timers().Advance(w); n != 0 || calls != 0 {
					t.Fatalf("fired early: n=%d calls=%d", n, calls)
				}
				s.Update(w, 0.1)
				w.Timers().Advance(w)
				s.Update(w, 0.1)
				w.Timers().Advance(w)
				if calls != 1 {
					t.Fatalf("expected exactly one call, got %d", calls)
				}
				if w.Timers().Pending() != 0 {
					t.Fatalf("expected empty queue")
				}
			},
		},
		{
			name: "ordered_by_fire_time",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				var order []int
				w.Timers().Schedule(e, 0.3, func(*World, Entity) { order = append(order, 3) })
				w.Timers().Schedule(e, 0.1, func(*World, Entity) { order = append(order, 1) })
				w.Timers().Schedule(e, 0.1, func(*World, Entity) { order = append(order, 2) })
				NewScheduler().Update(w, 1)
				w.Timers().Advance(w)
				if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
					t.Fatalf("unexpected order %v", order)
				}
			},
		},
		{
			name: "destroy_cancels_pending",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				calls := 0
				w.After(e, 0.2, func(*World, Entity) { calls++ })
				DestroyEntity(w, e)
				if w.Timers().Pending() != 0 {
					t.Fatalf("destroy should cancel timers for the target")
				}
				// The recycled slot must not pick up the old action either.
				CreateEntity(w)
				NewScheduler().Update(w, 1)
				w.Timers().Advance(w)
				if calls != 0 {
					t.Fatalf("stale timer fired")
				}
			},
		},
		{
			name: "dead_target_discarded",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				calls := 0
				w.Timers().Schedule(e, 0, func(*World, Entity) { calls++ })
				// Bypass DestroyEntity so only the liveness check guards the call.
				w.entities.destroy(e)
				if n := w.Timers().Advance(w); n != 0 || calls != 0 {
					t.Fatalf("fired for dead target: n=%d calls=%d", n, calls)
				}
			},
		},
		{
			name: "cancel_by_id",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				id := w.After(e, 0, func(*World, Entity) { t.Fatal("cancelled timer fired") })
				if !w.Timers().Cancel(id) {
					t.Fatal("cancel should report true")
				}
				if w.Timers().Cancel(id) {
					t.Fatal("second cancel should report false")
				}
				w.Timers().Advance(w)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}
