package component

// Collectible can be picked up by a Collector unless a Cover sits on it.
type Collectible struct {
	Kind   string
	Width  float64
	Height float64
}

var CollectibleComponent = NewComponent[Collectible]()

// Cover hides collectibles at the same position.
type Cover struct{}

var CoverComponent = NewComponent[Cover]()

// Collector picks up collectibles of Kind it overlaps.
type Collector struct {
	Kind string
	// Epsilon is the per-axis distance under which a cover counts as on top.
	Epsilon float64
}

var CollectorComponent = NewComponent[Collector]()

// Counter is the UI number field collectibles add to.
type Counter struct {
	Kind  string
	Label string
	Count int
}

func (c *Counter) Add(n int) {
	if c == nil {
		return
	}
	c.Count += n
}

var CounterComponent = NewComponent[Counter]()
