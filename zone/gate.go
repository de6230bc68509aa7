package zone

// Gate latches an ability while its trigger is held inside a zone.
//
// The gate opens only when the trigger activates inside the zone. Leaving
// the zone closes it, and it stays closed until the trigger is released and
// pressed again.
type Gate struct {
	open bool
}

// Activate handles the trigger's press edge.
func (g *Gate) Activate(inside bool) bool {
	g.open = inside
	return g.open
}

// Release handles the trigger's release edge or the behavior being disabled.
func (g *Gate) Release() {
	g.open = false
}

// Tick re-validates the gate and reports whether the effect applies this tick.
func (g *Gate) Tick(inside bool) bool {
	if !inside {
		g.open = false
	}
	return g.open
}

func (g *Gate) Open() bool {
	return g.open
}
