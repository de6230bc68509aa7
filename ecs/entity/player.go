package entity

import (
	"fmt"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
	"github.com/milk9111/balloonbridge/prefabs"
	"github.com/milk9111/balloonbridge/zone"
	"golang.org/x/image/colornames"
)

// PlayerTuning is the prefab data the player is built from.
type PlayerTuning struct {
	Player *prefabs.PlayerSpec
	Piece  *prefabs.BridgePieceSpec
}

func LoadPlayerTuning() (PlayerTuning, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return PlayerTuning{}, fmt.Errorf("player: load spec: %w", err)
	}
	piece, err := prefabs.LoadBridgePieceSpec()
	if err != nil {
		return PlayerTuning{}, fmt.Errorf("player: load bridge piece spec: %w", err)
	}
	return PlayerTuning{Player: player, Piece: piece}, nil
}

func NewPlayerAt(w *ecs.World, x, y float64, tuning PlayerTuning, abilities component.Abilities) (ecs.Entity, error) {
	spec := tuning.Player
	if spec == nil || tuning.Piece == nil {
		return 0, fmt.Errorf("player: missing tuning")
	}

	jumpPolicy, err := zone.ParsePolicy(spec.Jump.Policy)
	if err != nil {
		return 0, fmt.Errorf("player: jump: %w", err)
	}
	blowPolicy, err := zone.ParsePolicy(spec.BlowUp.Policy)
	if err != nil {
		return 0, fmt.Errorf("player: blow_up: %w", err)
	}
	bridgePolicy, err := zone.ParsePolicy(spec.Bridge.Policy)
	if err != nil {
		return 0, fmt.Errorf("player: bridge: %w", err)
	}

	width, height := spec.Collider.Width, spec.Collider.Height
	if width <= 0 || height <= 0 {
		width, height = 24, 40
	}

	player := ecs.CreateEntity(w)
	adds := []struct {
		name string
		add  func() error
	}{
		{"player tag", func() error {
			return ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
		}},
		{"transform", func() error {
			return ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
		}},
		{"input", func() error {
			return ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{})
		}},
		{"abilities", func() error {
			return ecs.Add(w, player, component.AbilitiesComponent.Kind(), &abilities)
		}},
		{"animation flags", func() error {
			return ecs.Add(w, player, component.AnimationFlagsComponent.Kind(), &component.AnimationFlags{})
		}},
		{"rect", func() error {
			return ecs.Add(w, player, component.RectComponent.Kind(), &component.Rect{Width: width, Height: height, Color: spec.Color.Or(colornames.Royalblue)})
		}},
		{"render layer", func() error {
			return ecs.Add(w, player, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 10})
		}},
		{"physics body", func() error {
			return ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Mass: spec.Mass, Friction: spec.Friction})
		}},
		{"move", func() error {
			return ecs.Add(w, player, component.MoveComponent.Kind(), &component.Move{Speed: spec.MoveSpeed, DirX: 1, UseAnimator: true})
		}},
		{"jump", func() error {
			return ecs.Add(w, player, component.JumpComponent.Kind(), &component.Jump{
				RiseSpeed: spec.RiseSpeed,
				Gate:      component.ZoneGate{Category: spec.Jump.Category, Policy: jumpPolicy},
			})
		}},
		{"blow up", func() error {
			return ecs.Add(w, player, component.BlowUpComponent.Kind(), &component.BlowUp{
				Group: spec.BlowUp.Group,
				Gate:  component.ZoneGate{Category: spec.BlowUp.Category, Policy: blowPolicy},
			})
		}},
		{"bridge builder", func() error {
			return ecs.Add(w, player, component.BridgeBuilderComponent.Kind(), &component.BridgeBuilder{
				Category:         spec.Bridge.Category,
				Policy:           bridgePolicy,
				PieceWidth:       tuning.Piece.Width,
				PieceHeight:      tuning.Piece.Height,
				PieceFriction:    tuning.Piece.Friction,
				PieceColor:       tuning.Piece.Color.Color,
				BuildSpeed:       spec.Bridge.BuildSpeed,
				YOffsetBelowFeet: spec.Bridge.YOffsetBelowFeet,
			})
		}},
		{"collector", func() error {
			return ecs.Add(w, player, component.CollectorComponent.Kind(), &component.Collector{Kind: spec.Collect.Kind, Epsilon: spec.Collect.Epsilon})
		}},
	}
	for _, a := range adds {
		if err := a.add(); err != nil {
			return 0, fmt.Errorf("player: add %s: %w", a.name, err)
		}
	}

	return player, nil
}
