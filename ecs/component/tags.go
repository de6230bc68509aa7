package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// GroundTag marks static level geometry.
type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()

// BridgePiece marks a piece spawned by a bridge builder.
type BridgePiece struct {
	Owner uint64
}

var BridgePieceComponent = NewComponent[BridgePiece]()
