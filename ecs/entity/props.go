package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
	"github.com/milk9111/balloonbridge/prefabs"
	"github.com/milk9111/balloonbridge/zone"
	"golang.org/x/image/colornames"
)

func NewZoneMarker(w *ecs.World, x, y float64, props prefabs.ZoneMarkerProps) (ecs.Entity, error) {
	kind, err := zone.ParseKind(props.Kind)
	if err != nil {
		return 0, fmt.Errorf("zone marker: %w", err)
	}
	if props.Category == "" {
		return 0, fmt.Errorf("zone marker: missing category")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("zone marker: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ZoneMarkerComponent.Kind(), &component.ZoneMarker{Category: props.Category, Kind: kind}); err != nil {
		return 0, fmt.Errorf("zone marker: add marker: %w", err)
	}
	return e, nil
}

// NewGround adds a static box with its top-left at (x, y).
func NewGround(w *ecs.World, x, y, width, height float64, clr color.Color) (ecs.Entity, error) {
	if clr == nil {
		clr = colornames.Darkolivegreen
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
		return 0, fmt.Errorf("ground: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x + width/2, Y: y + height/2, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("ground: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.RectComponent.Kind(), &component.Rect{Width: width, Height: height, Color: clr}); err != nil {
		return 0, fmt.Errorf("ground: add rect: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Friction: 0.9, Static: true}); err != nil {
		return 0, fmt.Errorf("ground: add physics body: %w", err)
	}
	return e, nil
}

// NewBalloon adds a balloon that covers whatever sits at its position. With
// HasDiamond set, a diamond is placed under it.
func NewBalloon(w *ecs.World, x, y float64, spec *prefabs.BalloonSpec, props prefabs.BalloonProps) (ecs.Entity, error) {
	if props.HasDiamond {
		if _, err := NewDiamond(w, x, y, spec); err != nil {
			return 0, err
		}
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("balloon: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.CoverComponent.Kind(), &component.Cover{}); err != nil {
		return 0, fmt.Errorf("balloon: add cover: %w", err)
	}
	if err := ecs.Add(w, e, component.RectComponent.Kind(), &component.Rect{Width: spec.Width, Height: spec.Height, Color: spec.Color.Or(colornames.Tomato)}); err != nil {
		return 0, fmt.Errorf("balloon: add rect: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 5}); err != nil {
		return 0, fmt.Errorf("balloon: add render layer: %w", err)
	}
	// movers start disabled until a blower enables their group
	if err := ecs.Add(w, e, component.SimpleMoveComponent.Kind(), &component.SimpleMove{
		DirX:  spec.DirX,
		DirY:  spec.DirY,
		Speed: spec.Speed,
		Group: props.Group,
	}); err != nil {
		return 0, fmt.Errorf("balloon: add simple move: %w", err)
	}
	return e, nil
}

func NewDiamond(w *ecs.World, x, y float64, spec *prefabs.BalloonSpec) (ecs.Entity, error) {
	d := spec.Diamond
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("diamond: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.CollectibleComponent.Kind(), &component.Collectible{Kind: d.Kind, Width: d.Width, Height: d.Height}); err != nil {
		return 0, fmt.Errorf("diamond: add collectible: %w", err)
	}
	if err := ecs.Add(w, e, component.RectComponent.Kind(), &component.Rect{Width: d.Width, Height: d.Height, Color: d.Color.Or(colornames.Lightskyblue)}); err != nil {
		return 0, fmt.Errorf("diamond: add rect: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 4}); err != nil {
		return 0, fmt.Errorf("diamond: add render layer: %w", err)
	}
	return e, nil
}

func NewTutorialTrigger(w *ecs.World, x, y float64, props prefabs.TutorialProps) (ecs.Entity, error) {
	unlock, err := component.ParseAbility(props.Unlock)
	if err != nil {
		return 0, fmt.Errorf("tutorial: %w", err)
	}
	var script string
	if props.Script != "" {
		script, err = prefabs.LoadScript(props.Script)
		if err != nil {
			return 0, fmt.Errorf("tutorial: load script %s: %w", props.Script, err)
		}
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("tutorial: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.TutorialTriggerComponent.Kind(), &component.TutorialTrigger{
		Text:   props.Text,
		Unlock: unlock,
		Script: script,
		Width:  props.Width,
		Height: props.Height,
	}); err != nil {
		return 0, fmt.Errorf("tutorial: add trigger: %w", err)
	}
	return e, nil
}

func NewExit(w *ecs.World, x, y float64, props prefabs.ExitProps) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("exit: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ExitComponent.Kind(), &component.Exit{Scene: props.Scene, Width: props.Width, Height: props.Height}); err != nil {
		return 0, fmt.Errorf("exit: add exit: %w", err)
	}
	if err := ecs.Add(w, e, component.RectComponent.Kind(), &component.Rect{Width: props.Width, Height: props.Height, Color: colornames.Gold}); err != nil {
		return 0, fmt.Errorf("exit: add rect: %w", err)
	}
	return e, nil
}

func NewCounter(w *ecs.World, props prefabs.CounterProps) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CounterComponent.Kind(), &component.Counter{Kind: props.Kind, Label: props.Label}); err != nil {
		return 0, fmt.Errorf("counter: add counter: %w", err)
	}
	return e, nil
}

func NewTutorialPopup(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TutorialPopupComponent.Kind(), &component.TutorialPopup{}); err != nil {
		return 0, fmt.Errorf("tutorial popup: add popup: %w", err)
	}
	return e, nil
}
