package system

import (
	"math"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// MoveSystem walks entities along their direction once the move action has
// been pressed or the tutorial has released them.
type MoveSystem struct{}

func NewMoveSystem() *MoveSystem { return &MoveSystem{} }

func (s *MoveSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := deltaSeconds(w)

	ecs.ForEach3(w, component.MoveComponent.Kind(), component.TransformComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, m *component.Move, t *component.Transform, input *component.Input) {
		if !abilityEnabled(w, e, component.AbilityMove) {
			m.Pressed = false
			m.PressedUI = false
			if m.UseAnimator {
				setAnimationFlag(w, e, "isWalking", false)
			}
			if body := bodyOf(w, e); body != nil {
				v := body.Body.Velocity()
				body.Body.SetVelocity(0, v.Y)
			}
			return
		}

		if input.Move.Pressed {
			m.Pressed = true
		}

		walking := m.Pressed || m.PressedUI
		if m.UseAnimator {
			setAnimationFlag(w, e, "isWalking", walking)
		}

		dx, dy := normalize(m.DirX, m.DirY)
		body := bodyOf(w, e)
		switch {
		case body != nil:
			v := body.Body.Velocity()
			vx := 0.0
			if walking {
				vx = dx * m.Speed
			}
			body.Body.SetVelocity(vx, v.Y)
		case walking:
			t.X += dx * m.Speed * dt
			t.Y += dy * m.Speed * dt
		}
	})
}

// SimpleMoveSystem translates enabled movers at a constant speed.
type SimpleMoveSystem struct{}

func NewSimpleMoveSystem() *SimpleMoveSystem { return &SimpleMoveSystem{} }

func (s *SimpleMoveSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := deltaSeconds(w)

	ecs.ForEach2(w, component.SimpleMoveComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, m *component.SimpleMove, t *component.Transform) {
		if !m.Enabled {
			return
		}
		dx, dy := normalize(m.DirX, m.DirY)
		t.X += dx * m.Speed * dt
		t.Y += dy * m.Speed * dt
	})
}

func normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}
