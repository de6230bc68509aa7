package system

import (
	"github.com/milk9111/balloonbridge/common"
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// CameraSystem eases the camera toward the player plus its offset. The
// camera transform is the world point drawn at the screen center.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	dt := deltaSeconds(w)
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, cam *component.Camera, t *component.Transform) {
		tx := target.X + cam.OffsetX
		ty := target.Y + cam.OffsetY
		t.X = common.SmoothDamp(t.X, tx, &cam.VelX, cam.SmoothTime, dt)
		t.Y = common.SmoothDamp(t.Y, ty, &cam.VelY, cam.SmoothTime, dt)
	})
}

// CameraOrigin returns the world point drawn at the screen's top-left.
func CameraOrigin(w *ecs.World) (float64, float64) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return 0, 0
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0
	}
	return t.X - common.BaseWidth/2, t.Y - common.BaseHeight/2
}
