package system

import (
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// ClockSystem advances the FrameTime resource by a fixed step each tick.
type ClockSystem struct {
	step float64
}

func NewClockSystem(step float64) *ClockSystem {
	return &ClockSystem{step: step}
}

func (s *ClockSystem) SetStep(step float64) {
	if s == nil || step <= 0 {
		return
	}
	s.step = step
}

func (s *ClockSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ft := frameTime(w)
	if ft == nil {
		ent := ecs.CreateEntity(w)
		ft = &component.FrameTime{}
		_ = ecs.Add(w, ent, component.FrameTimeComponent.Kind(), ft)
	}
	ft.Delta = s.step
	ft.Elapsed += s.step
	ft.Tick++
}

func frameTime(w *ecs.World) *component.FrameTime {
	e, ok := ecs.First(w, component.FrameTimeComponent.Kind())
	if !ok {
		return nil
	}
	ft, _ := ecs.Get(w, e, component.FrameTimeComponent.Kind())
	return ft
}

// deltaSeconds is the current tick length, or zero before the clock runs.
func deltaSeconds(w *ecs.World) float64 {
	if ft := frameTime(w); ft != nil {
		return ft.Delta
	}
	return 0
}
