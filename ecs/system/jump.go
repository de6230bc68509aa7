package system

import (
	"log"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// JumpSystem raises entities while the jump action is held inside a jump
// zone.
type JumpSystem struct {
	Debug bool
}

func NewJumpSystem(debug bool) *JumpSystem { return &JumpSystem{Debug: debug} }

func (s *JumpSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.JumpComponent.Kind(), component.TransformComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, jump *component.Jump, t *component.Transform, input *component.Input) {
		gate := &jump.Gate
		if !abilityEnabled(w, e, component.AbilityJump) {
			gate.Gate.Release()
			gate.Active = false
			setAnimationFlag(w, e, "isJumping", false)
			return
		}

		starts, ends := zonePositions(w, gate.Category)
		inside := gate.Policy.Permits(t.X, starts, ends)

		if input.Jump.Pressed {
			if gate.Gate.Activate(inside) {
				s.logf("jump: started inside %s zone", gate.Category)
			} else {
				s.logf("jump: not inside a %s zone, ignored", gate.Category)
			}
		}
		if input.Jump.Released {
			gate.Gate.Release()
		}

		gate.Active = gate.Gate.Tick(inside)
		if gate.Active {
			if body := bodyOf(w, e); body != nil {
				v := body.Body.Velocity()
				body.Body.SetVelocity(v.X, -jump.RiseSpeed)
			}
		}
		setAnimationFlag(w, e, "isJumping", gate.Active)
	})
}

func (s *JumpSystem) logf(format string, args ...any) {
	if s.Debug {
		log.Printf(format, args...)
	}
}
