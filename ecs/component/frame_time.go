package component

// FrameTime is the simulated time of the current tick in seconds.
type FrameTime struct {
	Delta   float64
	Elapsed float64
	Tick    int
}

var FrameTimeComponent = NewComponent[FrameTime]()
