package component

// Button is the edge-detected state of one action.
type Button struct {
	Down     bool
	Pressed  bool
	Released bool
}

// Set records this tick's raw state and derives the edges.
func (b *Button) Set(down bool) {
	b.Pressed = down && !b.Down
	b.Released = !down && b.Down
	b.Down = down
}

// Input stores per-tick action state for an entity.
type Input struct {
	Move    Button
	Jump    Button
	Blow    Button
	Build   Button
	Confirm Button
	Restart Button
}

var InputComponent = NewComponent[Input]()
