package system

import (
	"log"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// BlowUpSystem lets the SimpleMove entities of a group move only while the
// blow action is held inside a blow zone.
type BlowUpSystem struct {
	Debug bool
}

func NewBlowUpSystem(debug bool) *BlowUpSystem { return &BlowUpSystem{Debug: debug} }

func (s *BlowUpSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.BlowUpComponent.Kind(), component.TransformComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, blow *component.BlowUp, t *component.Transform, input *component.Input) {
		gate := &blow.Gate
		if !abilityEnabled(w, e, component.AbilityBlowUp) {
			gate.Gate.Release()
			gate.Active = false
			setGroupMovers(w, blow.Group, false)
			return
		}

		starts, ends := zonePositions(w, gate.Category)
		inside := gate.Policy.Permits(t.X, starts, ends)

		if input.Blow.Pressed {
			if gate.Gate.Activate(inside) {
				s.logf("blow: started inside %s zone", gate.Category)
			} else {
				s.logf("blow: not inside a %s zone, ignored", gate.Category)
			}
		}
		if input.Blow.Released {
			gate.Gate.Release()
		}

		gate.Active = gate.Gate.Tick(inside)
		setGroupMovers(w, blow.Group, gate.Active)
	})
}

func (s *BlowUpSystem) logf(format string, args ...any) {
	if s.Debug {
		log.Printf(format, args...)
	}
}

func setGroupMovers(w *ecs.World, group string, enabled bool) {
	ecs.ForEach(w, component.SimpleMoveComponent.Kind(), func(_ ecs.Entity, m *component.SimpleMove) {
		if m.Group != group {
			return
		}
		m.Enabled = enabled
	})
}
