package component

// Camera follows Target with a critically damped spring.
type Camera struct {
	OffsetX    float64
	OffsetY    float64
	SmoothTime float64
	VelX       float64
	VelY       float64
	Zoom       float64
}

var CameraComponent = NewComponent[Camera]()
