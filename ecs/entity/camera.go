package entity

import (
	"fmt"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
	"github.com/milk9111/balloonbridge/prefabs"
)

// NewCameraAt builds the camera centered on (x, y) plus its offset.
func NewCameraAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	smooth := spec.SmoothTime
	if smooth <= 0 {
		smooth = 0.2
	}
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:      x + spec.OffsetX,
		Y:      y + spec.OffsetY,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		OffsetX:    spec.OffsetX,
		OffsetY:    spec.OffsetY,
		SmoothTime: smooth,
		Zoom:       zoom,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
