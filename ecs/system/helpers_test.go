package system

import (
	"testing"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
	"github.com/milk9111/balloonbridge/zone"
)

// testWorld wraps a world with a fixed-step clock.
type testWorld struct {
	t     *testing.T
	w     *ecs.World
	clock *ClockSystem
}

func newTestWorld(t *testing.T, dt float64) *testWorld {
	t.Helper()
	return &testWorld{t: t, w: ecs.NewWorld(), clock: NewClockSystem(dt)}
}

// tick advances the clock once and runs systems in order.
func (tw *testWorld) tick(systems ...ecs.System) {
	tw.clock.Update(tw.w)
	for _, s := range systems {
		s.Update(tw.w)
	}
}

func (tw *testWorld) add(e ecs.Entity, add func(ecs.Entity) error) {
	tw.t.Helper()
	if err := add(e); err != nil {
		tw.t.Fatalf("add component: %v", err)
	}
}

func (tw *testWorld) marker(category string, kind zone.Kind, x float64) ecs.Entity {
	tw.t.Helper()
	e := ecs.CreateEntity(tw.w)
	tw.add(e, func(e ecs.Entity) error {
		return ecs.Add(tw.w, e, component.TransformComponent.Kind(), &component.Transform{X: x})
	})
	tw.add(e, func(e ecs.Entity) error {
		return ecs.Add(tw.w, e, component.ZoneMarkerComponent.Kind(), &component.ZoneMarker{Category: category, Kind: kind})
	})
	return e
}

// player adds a tagged entity with a transform and input.
func (tw *testWorld) player(x, y float64) ecs.Entity {
	tw.t.Helper()
	e := ecs.CreateEntity(tw.w)
	tw.add(e, func(e ecs.Entity) error {
		return ecs.Add(tw.w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	})
	tw.add(e, func(e ecs.Entity) error {
		return ecs.Add(tw.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	})
	tw.add(e, func(e ecs.Entity) error {
		return ecs.Add(tw.w, e, component.InputComponent.Kind(), &component.Input{})
	})
	return e
}

func (tw *testWorld) transform(e ecs.Entity) *component.Transform {
	tw.t.Helper()
	t, ok := ecs.Get(tw.w, e, component.TransformComponent.Kind())
	if !ok {
		tw.t.Fatalf("entity %v has no transform", e)
	}
	return t
}

func (tw *testWorld) input(e ecs.Entity) *component.Input {
	tw.t.Helper()
	in, ok := ecs.Get(tw.w, e, component.InputComponent.Kind())
	if !ok {
		tw.t.Fatalf("entity %v has no input", e)
	}
	return in
}

// press sets one button held or released for the coming tick.
func press(b *component.Button, down bool) {
	b.Set(down)
}

func piecePositions(w *ecs.World) []float64 {
	var xs []float64
	ecs.ForEach2(w, component.BridgePieceComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.BridgePiece, t *component.Transform) {
		xs = append(xs, t.X)
	})
	return xs
}
