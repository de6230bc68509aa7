package entity

import (
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// ApplyPlayerTuning pushes reloaded prefab values into the live player
// without resetting latches, gates or a running bridge session.
func ApplyPlayerTuning(w *ecs.World, tuning PlayerTuning) {
	spec, piece := tuning.Player, tuning.Piece
	if w == nil || spec == nil || piece == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.MoveComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, m *component.Move) {
		m.Speed = spec.MoveSpeed
	})
	ecs.ForEach(w, component.JumpComponent.Kind(), func(_ ecs.Entity, j *component.Jump) {
		j.RiseSpeed = spec.RiseSpeed
	})
	ecs.ForEach(w, component.BridgeBuilderComponent.Kind(), func(_ ecs.Entity, bb *component.BridgeBuilder) {
		bb.BuildSpeed = spec.Bridge.BuildSpeed
		bb.YOffsetBelowFeet = spec.Bridge.YOffsetBelowFeet
		bb.PieceWidth = piece.Width
		bb.PieceHeight = piece.Height
		bb.PieceFriction = piece.Friction
		bb.PieceColor = piece.Color.Color
	})
	ecs.ForEach(w, component.CollectorComponent.Kind(), func(_ ecs.Entity, c *component.Collector) {
		c.Epsilon = spec.Collect.Epsilon
	})
}
