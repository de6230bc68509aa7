package system

import (
	"testing"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

type collectFixture struct {
	*testWorld
	player  ecs.Entity
	counter *component.Counter
}

func newCollectWorld(t *testing.T) *collectFixture {
	t.Helper()
	tw := newTestWorld(t, 1.0/60)
	p := tw.player(0, 0)
	tw.add(p, func(e ecs.Entity) error {
		return ecs.Add(tw.w, e, component.RectComponent.Kind(), &component.Rect{Width: 10, Height: 10})
	})
	tw.add(p, func(e ecs.Entity) error {
		return ecs.Add(tw.w, e, component.CollectorComponent.Kind(), &component.Collector{Kind: "diamond", Epsilon: 5})
	})
	counter := &component.Counter{Kind: "diamond"}
	c := ecs.CreateEntity(tw.w)
	tw.add(c, func(e ecs.Entity) error {
		return ecs.Add(tw.w, e, component.CounterComponent.Kind(), counter)
	})
	return &collectFixture{testWorld: tw, player: p, counter: counter}
}

func (f *collectFixture) diamond(x, y float64) ecs.Entity {
	e := ecs.CreateEntity(f.w)
	f.add(e, func(e ecs.Entity) error {
		return ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	})
	f.add(e, func(e ecs.Entity) error {
		return ecs.Add(f.w, e, component.CollectibleComponent.Kind(), &component.Collectible{Kind: "diamond", Width: 8, Height: 8})
	})
	return e
}

func (f *collectFixture) cover(x, y float64) ecs.Entity {
	e := ecs.CreateEntity(f.w)
	f.add(e, func(e ecs.Entity) error {
		return ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	})
	f.add(e, func(e ecs.Entity) error {
		return ecs.Add(f.w, e, component.CoverComponent.Kind(), &component.Cover{})
	})
	return e
}

func TestCollectUncovered(t *testing.T) {
	f := newCollectWorld(t)
	d := f.diamond(20, 0)
	sys := NewCollectSystem()

	f.tick(sys)
	if f.counter.Count != 0 || !ecs.IsAlive(f.w, d) {
		t.Fatalf("expected nothing collected while apart")
	}

	f.transform(f.player).X = 18
	f.tick(sys)
	if f.counter.Count != 1 {
		t.Fatalf("expected count 1, got %d", f.counter.Count)
	}
	if ecs.IsAlive(f.w, d) {
		t.Fatalf("expected collected diamond destroyed")
	}
}

func TestCollectCovered(t *testing.T) {
	tests := []struct {
		name    string
		coverX  float64
		coverY  float64
		collect bool
	}{
		{name: "same_position", coverX: 20, coverY: 0, collect: false},
		{name: "within_epsilon", coverX: 24, coverY: -4, collect: false},
		{name: "x_at_epsilon", coverX: 25, coverY: 0, collect: true},
		{name: "moved_away", coverX: 20, coverY: -40, collect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCollectWorld(t)
			d := f.diamond(20, 0)
			f.cover(tt.coverX, tt.coverY)

			f.transform(f.player).X = 20
			f.tick(NewCollectSystem())

			if got := f.counter.Count == 1; got != tt.collect {
				t.Fatalf("expected collected=%v, got count %d", tt.collect, f.counter.Count)
			}
			if ecs.IsAlive(f.w, d) == tt.collect {
				t.Fatalf("expected diamond alive=%v", !tt.collect)
			}
		})
	}
}

func TestCollectOnlyOnEnter(t *testing.T) {
	f := newCollectWorld(t)
	d := f.diamond(20, 0)
	cover := f.cover(20, 0)
	sys := NewCollectSystem()

	f.transform(f.player).X = 20
	f.tick(sys)

	// cover leaves while the player is still overlapping
	f.transform(cover).Y = -100
	f.tick(sys)
	if f.counter.Count != 0 {
		t.Fatalf("expected no pickup without a new overlap")
	}

	f.transform(f.player).X = 60
	f.tick(sys)
	f.transform(f.player).X = 20
	f.tick(sys)
	if f.counter.Count != 1 || ecs.IsAlive(f.w, d) {
		t.Fatalf("expected pickup on re-entry, count %d", f.counter.Count)
	}
}

func TestCollectIgnoresOtherKinds(t *testing.T) {
	f := newCollectWorld(t)
	e := ecs.CreateEntity(f.w)
	f.add(e, func(e ecs.Entity) error {
		return ecs.Add(f.w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 0})
	})
	f.add(e, func(e ecs.Entity) error {
		return ecs.Add(f.w, e, component.CollectibleComponent.Kind(), &component.Collectible{Kind: "coin", Width: 8, Height: 8})
	})

	f.tick(NewCollectSystem())
	if f.counter.Count != 0 || !ecs.IsAlive(f.w, e) {
		t.Fatalf("expected other kinds ignored")
	}
}
