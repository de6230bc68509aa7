package system

import (
	"image/color"
	"log"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
	"github.com/milk9111/balloonbridge/zone"
	"golang.org/x/image/colornames"
)

// BridgeSystem builds bridge pieces under its entities while the build
// action is held inside a bridge zone.
type BridgeSystem struct {
	Debug bool
}

func NewBridgeSystem(debug bool) *BridgeSystem { return &BridgeSystem{Debug: debug} }

func (s *BridgeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := deltaSeconds(w)

	ecs.ForEach3(w, component.BridgeBuilderComponent.Kind(), component.TransformComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, bb *component.BridgeBuilder, t *component.Transform, input *component.Input) {
		cfg := zone.BuilderConfig{UnitWidth: bb.PieceWidth, BuildRate: bb.BuildSpeed}
		if bb.Builder == nil {
			bb.Builder = zone.NewBuilder(cfg, &piecePlacer{w: w, owner: e, spec: bb})
		} else if bb.Builder.Config() != cfg {
			bb.Builder.SetConfig(cfg)
		}

		if !abilityEnabled(w, e, component.AbilityBridge) {
			bb.Builder.Release()
			return
		}

		if input.Build.Pressed {
			s.arm(w, e, bb, t)
		}
		if input.Build.Released && bb.Builder.Building() {
			bb.Builder.Release()
			s.logf("bridge: stopped building")
		}

		if n := bb.Builder.Step(dt); n > 0 {
			s.logf("bridge: placed %d piece(s), %d total", n, bb.Builder.Emitted())
		}
	})
}

func (s *BridgeSystem) arm(w *ecs.World, e ecs.Entity, bb *component.BridgeBuilder, t *component.Transform) {
	starts, ends := zonePositions(w, bb.Category)
	if _, ok := zone.LastPassed(t.X, starts); !ok {
		s.logf("bridge: no %s start passed yet", bb.Category)
		return
	}
	if !bb.Policy.Permits(t.X, starts, ends) {
		s.logf("bridge: already passed the last %s end, cannot build here", bb.Category)
		return
	}

	feetY := t.Y
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		feetY += body.Height / 2
	}
	originX := t.X
	originY := feetY + bb.YOffsetBelowFeet

	bb.Builder.Arm(originX, originY, zone.Cap(originX, ends))
	s.logf("bridge: started building at (%.1f, %.1f), cap %.1f", originX, originY, bb.Builder.Cap())
}

func (s *BridgeSystem) logf(format string, args ...any) {
	if s.Debug {
		log.Printf(format, args...)
	}
}

var bridgePieceColor color.Color = colornames.Sienna

// piecePlacer spawns bridge pieces as static world entities.
type piecePlacer struct {
	w     *ecs.World
	owner ecs.Entity
	spec  *component.BridgeBuilder
}

func (p *piecePlacer) Place(x, y float64) (zone.Handle, error) {
	width, height := p.spec.PieceWidth, p.spec.PieceHeight
	if height <= 0 {
		height = 8
	}
	clr := p.spec.PieceColor
	if clr == nil {
		clr = bridgePieceColor
	}

	e := ecs.CreateEntity(p.w)
	if err := ecs.Add(p.w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	if err := ecs.Add(p.w, e, component.BridgePieceComponent.Kind(), &component.BridgePiece{Owner: uint64(p.owner)}); err != nil {
		return 0, err
	}
	if err := ecs.Add(p.w, e, component.RectComponent.Kind(), &component.Rect{Width: width, Height: height, Color: clr}); err != nil {
		return 0, err
	}
	if err := ecs.Add(p.w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Friction: p.spec.PieceFriction, Static: true}); err != nil {
		return 0, err
	}
	return zone.Handle(e), nil
}

func (p *piecePlacer) Remove(h zone.Handle) {
	ecs.DestroyEntity(p.w, ecs.Entity(h))
}
