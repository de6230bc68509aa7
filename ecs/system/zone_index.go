package system

import (
	"log"
	"sort"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
	"github.com/milk9111/balloonbridge/zone"
)

// ZoneIndexSystem collects the zone markers of the level once, grouped by
// the categories that gates and bridge builders ask for.
type ZoneIndexSystem struct{}

func NewZoneIndexSystem() *ZoneIndexSystem { return &ZoneIndexSystem{} }

func (s *ZoneIndexSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	idx := zoneIndex(w)
	if idx == nil {
		ent := ecs.CreateEntity(w)
		idx = &component.ZoneIndex{}
		_ = ecs.Add(w, ent, component.ZoneIndexComponent.Kind(), idx)
	}
	if idx.Loaded {
		return
	}

	var markers []zone.Marker
	ecs.ForEach(w, component.ZoneMarkerComponent.Kind(), func(e ecs.Entity, m *component.ZoneMarker) {
		markers = append(markers, zone.Marker{Ref: zone.Ref(e), Kind: m.Kind, Category: m.Category})
	})

	wanted := map[string]struct{}{}
	ecs.ForEach(w, component.JumpComponent.Kind(), func(_ ecs.Entity, j *component.Jump) {
		wanted[j.Gate.Category] = struct{}{}
	})
	ecs.ForEach(w, component.BlowUpComponent.Kind(), func(_ ecs.Entity, b *component.BlowUp) {
		wanted[b.Gate.Category] = struct{}{}
	})
	ecs.ForEach(w, component.BridgeBuilderComponent.Kind(), func(_ ecs.Entity, b *component.BridgeBuilder) {
		wanted[b.Category] = struct{}{}
	})

	categories := make([]string, 0, len(wanted))
	for c := range wanted {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	idx.Sets = make(map[string]zone.Set, len(categories))
	for _, c := range categories {
		set := zone.NewSet(c, markers)
		if len(set.Starts) == 0 {
			log.Printf("zone: no %q start markers in level", c)
		}
		if len(set.Ends) == 0 {
			log.Printf("zone: no %q end markers in level", c)
		}
		idx.Sets[c] = set
	}
	idx.Loaded = true
}

func zoneIndex(w *ecs.World) *component.ZoneIndex {
	e, ok := ecs.First(w, component.ZoneIndexComponent.Kind())
	if !ok {
		return nil
	}
	idx, _ := ecs.Get(w, e, component.ZoneIndexComponent.Kind())
	return idx
}

// markerResolver resolves marker refs to the x of their live entity.
func markerResolver(w *ecs.World) zone.Resolver {
	return zone.ResolverFunc(func(ref zone.Ref) (float64, bool) {
		t, ok := ecs.Get(w, ecs.Entity(ref), component.TransformComponent.Kind())
		if !ok {
			return 0, false
		}
		return t.X, true
	})
}

// zonePositions returns the live start and end positions of category.
func zonePositions(w *ecs.World, category string) (starts, ends []float64) {
	idx := zoneIndex(w)
	if idx == nil {
		return nil, nil
	}
	return idx.Set(category).Positions(markerResolver(w))
}
