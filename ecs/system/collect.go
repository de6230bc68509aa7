package system

import (
	"github.com/milk9111/balloonbridge/common"
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// CollectSystem picks up collectibles the player starts overlapping, unless
// a cover sits on top of them.
type CollectSystem struct {
	overlapping map[ecs.Entity]bool
}

func NewCollectSystem() *CollectSystem {
	return &CollectSystem{overlapping: make(map[ecs.Entity]bool)}
}

// Reset forgets overlap state. Call it when the world is replaced.
func (s *CollectSystem) Reset() {
	if s == nil {
		return
	}
	s.overlapping = make(map[ecs.Entity]bool)
}

func (s *CollectSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if s.overlapping == nil {
		s.overlapping = make(map[ecs.Entity]bool)
	}

	player, px, py, pw, ph, ok := playerBox(w)
	if !ok {
		return
	}
	collector, ok := ecs.Get(w, player, component.CollectorComponent.Kind())
	if !ok {
		return
	}

	for e := range s.overlapping {
		if !ecs.Has(w, e, component.CollectibleComponent.Kind()) {
			delete(s.overlapping, e)
		}
	}

	ecs.ForEach2(w, component.CollectibleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Collectible, t *component.Transform) {
		if collector.Kind != "" && c.Kind != collector.Kind {
			return
		}

		cx, cy, cw, ch := boxOf(w, e, t, c.Width, c.Height)
		if cw <= 0 || ch <= 0 {
			cx, cy, cw, ch = t.X-12, t.Y-12, 24, 24
		}
		inside := common.Intersects(px, py, pw, ph, cx, cy, cw, ch)
		entered := inside && !s.overlapping[e]
		s.overlapping[e] = inside
		if !entered {
			return
		}

		if coveredAt(w, t.X, t.Y, collector.Epsilon) {
			return
		}

		if counter := counterFor(w, c.Kind); counter != nil {
			counter.Add(1)
		}
		delete(s.overlapping, e)
		ecs.DestroyEntity(w, e)
	})
}

func coveredAt(w *ecs.World, x, y, epsilon float64) bool {
	covered := false
	ecs.ForEach2(w, component.CoverComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Cover, t *component.Transform) {
		if common.SameXY(t.X, t.Y, x, y, epsilon) {
			covered = true
		}
	})
	return covered
}

// counterFor returns the counter for kind, falling back to an unkinded one.
func counterFor(w *ecs.World, kind string) *component.Counter {
	var fallback *component.Counter
	var match *component.Counter
	ecs.ForEach(w, component.CounterComponent.Kind(), func(_ ecs.Entity, c *component.Counter) {
		switch {
		case match != nil:
		case c.Kind == kind:
			match = c
		case c.Kind == "" && fallback == nil:
			fallback = c
		}
	})
	if match != nil {
		return match
	}
	return fallback
}
