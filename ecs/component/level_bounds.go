package component

// LevelBounds stores the world-space bounds of the current level. Falling
// below Height restarts the scene.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
