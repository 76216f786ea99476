package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/portalgun/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{"single", 1, 0, 0},
		{"three_destroy_middle", 3, 1, 2},
		{"none_destroyed", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
			if got := len(Entities(w)); got != c.wantAlive {
				t.Fatalf("expected %d live entities, got %d", c.wantAlive, got)
			}
		})
	}
}

func TestRecycledSlotRejectsStaleHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got ids %d and %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled handle must differ by generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity inherited a component")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil_value", Add(w, e, component.NewComponentKind[int](), nil), component.ErrNilComponent},
		{"zero_kind", Add(w, e, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind},
		{"dead_entity", Add(w, Entity(0), component.NewComponentKind[int](), intPtr(1)), component.ErrEntityNotAlive},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, tc.err)
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get[int](w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove[int](w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has[string](w, e1, h2.Kind()) || !Has[string](w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove[string](w, e1, h2.Kind()) },
		},
		{
			name:  "mutation_through_pointer",
			setup: func() error { return Add(w, e2, h1.Kind(), intPtr(1)) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, h1.Kind())
				*v = 7
				again, _ := Get(w, e2, h1.Kind())
				if *again != 7 {
					t.Fatalf("expected in-place mutation, got %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		e3 := CreateEntity(w)

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})

	t.Run("destroy_during_iteration", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()
		a := CreateEntity(w)
		b := CreateEntity(w)
		_ = Add(w, a, h.Kind(), intPtr(1))
		_ = Add(w, b, h.Kind(), intPtr(2))

		visited := 0
		ForEach(w, h.Kind(), func(e Entity, _ *int) {
			visited++
			DestroyEntity(w, a)
			DestroyEntity(w, b)
		})
		if visited != 1 {
			t.Fatalf("expected destroyed entities to be skipped, visited %d", visited)
		}
	})
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				_ = Add(w, e1, ka, intPtr(1))
				_ = Add(w, e2, ka, intPtr(2))
				_ = Add(w, e2, kb, intPtr(3))
				_ = Add(w, e2, kc, intPtr(5))
				_ = Add(w, e3, kb, intPtr(4))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				_ = Add(w, e, ka, intPtr(1))
				_ = Add(w, e, kb, intPtr(2))
				_ = Add(w, e, kc, intPtr(3))

				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				_ = Add(w, e, ka, intPtr(1))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestDestroyHooksRunBeforeComponentsDrop(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	_ = Add(w, e, h.Kind(), intPtr(42))

	var seen int
	w.OnDestroy(func(w *World, dead Entity) {
		if v, ok := Get(w, dead, h.Kind()); ok {
			seen = *v
		}
	})
	DestroyEntity(w, e)
	if seen != 42 {
		t.Fatalf("hook should observe components, got %d", seen)
	}
}
