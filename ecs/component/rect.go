package component

import "image/color"

// Rect is a solid box drawn centered on the entity's transform.
type Rect struct {
	Width  float64
	Height float64
	Color  color.Color
}

var RectComponent = NewComponent[Rect]()
