package component

import "github.com/milk9111/balloonbridge/zone"

// ZoneMarker is a start or end boundary of one zone category.
type ZoneMarker struct {
	Category string
	Kind     zone.Kind
}

var ZoneMarkerComponent = NewComponent[ZoneMarker]()

// ZoneIndex caches the marker sets collected at level load. Positions are
// never cached; markers are resolved through the world on every query.
type ZoneIndex struct {
	Sets   map[string]zone.Set
	Loaded bool
}

func (z *ZoneIndex) Set(category string) zone.Set {
	if z == nil || z.Sets == nil {
		return zone.Set{Category: category}
	}
	return z.Sets[category]
}

var ZoneIndexComponent = NewComponent[ZoneIndex]()

// ZoneGate latches an ability to a zone category. Ability components embed
// one each.
type ZoneGate struct {
	Category string
	Policy   zone.Policy
	Gate     zone.Gate
	// Active is true on ticks where the gated effect applied.
	Active bool
}
