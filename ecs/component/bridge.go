package component

import (
	"image/color"

	"github.com/milk9111/balloonbridge/zone"
)

// BridgeBuilder builds a bridge under its entity while the build action is
// held inside a bridge zone.
type BridgeBuilder struct {
	Category         string
	Policy           zone.Policy
	PieceWidth       float64
	PieceHeight      float64
	PieceFriction    float64
	PieceColor       color.Color
	BuildSpeed       float64
	YOffsetBelowFeet float64
	// Builder is created by the bridge system on first use.
	Builder *zone.Builder
}

var BridgeBuilderComponent = NewComponent[BridgeBuilder]()
