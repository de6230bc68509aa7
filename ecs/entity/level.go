package entity

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
	"github.com/milk9111/balloonbridge/levels"
	"github.com/milk9111/balloonbridge/prefabs"
)

// LoadOptions tune how a level is turned into entities.
type LoadOptions struct {
	// AllAbilities unlocks every ability regardless of the level.
	AllAbilities bool
	// Tuning overrides the prefab-loaded player tuning when set.
	Tuning *PlayerTuning
}

// LoadLevelToWorld builds bounds, ground, level entities, the camera and the
// tutorial popup state for lvl.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, opts LoadOptions) error {
	if lvl == nil {
		return fmt.Errorf("level: nil level")
	}

	tuning := opts.Tuning
	if tuning == nil {
		t, err := LoadPlayerTuning()
		if err != nil {
			return err
		}
		tuning = &t
	}
	balloon, err := prefabs.LoadBalloonSpec()
	if err != nil {
		return fmt.Errorf("level: load balloon spec: %w", err)
	}

	abilities, err := startAbilities(lvl, tuning.Player, opts.AllAbilities)
	if err != nil {
		return fmt.Errorf("level %s: %w", lvl.Name, err)
	}

	width, height := lvl.PixelSize()
	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Height: height}); err != nil {
		return fmt.Errorf("level %s: add bounds: %w", lvl.Name, err)
	}

	tile := lvl.Tile()
	for i, b := range lvl.Ground {
		if b.W <= 0 || b.H <= 0 {
			log.Printf("level: %s ground block %d has no size, skipped", lvl.Name, i)
			continue
		}
		clr, err := blockColor(b.Color)
		if err != nil {
			return fmt.Errorf("level %s: ground block %d: %w", lvl.Name, i, err)
		}
		if _, err := NewGround(w, float64(b.X)*tile, float64(b.Y)*tile, float64(b.W)*tile, float64(b.H)*tile, clr); err != nil {
			return fmt.Errorf("level %s: %w", lvl.Name, err)
		}
	}

	var playerX, playerY float64
	players := 0
	for _, ent := range lvl.Entities {
		x, y := float64(ent.X), float64(ent.Y)
		var err error
		switch strings.ToLower(ent.Type) {
		case "player":
			players++
			playerX, playerY = x, y
			_, err = NewPlayerAt(w, x, y, *tuning, abilities)
		case "zone_marker":
			var props prefabs.ZoneMarkerProps
			if props, err = prefabs.DecodeProps[prefabs.ZoneMarkerProps](ent.Props); err == nil {
				_, err = NewZoneMarker(w, x, y, props)
			}
		case "balloon":
			var props prefabs.BalloonProps
			if props, err = prefabs.DecodeProps[prefabs.BalloonProps](ent.Props); err == nil {
				_, err = NewBalloon(w, x, y, balloon, props)
			}
		case "diamond":
			_, err = NewDiamond(w, x, y, balloon)
		case "tutorial":
			var props prefabs.TutorialProps
			if props, err = prefabs.DecodeProps[prefabs.TutorialProps](ent.Props); err == nil {
				_, err = NewTutorialTrigger(w, x, y, props)
			}
		case "exit":
			var props prefabs.ExitProps
			if props, err = prefabs.DecodeProps[prefabs.ExitProps](ent.Props); err == nil {
				_, err = NewExit(w, x, y, props)
			}
		case "counter":
			var props prefabs.CounterProps
			if props, err = prefabs.DecodeProps[prefabs.CounterProps](ent.Props); err == nil {
				_, err = NewCounter(w, props)
			}
		default:
			log.Printf("level: %s has unknown entity type %q, skipped", lvl.Name, ent.Type)
		}
		if err != nil {
			return fmt.Errorf("level %s: %s at (%d, %d): %w", lvl.Name, ent.Type, ent.X, ent.Y, err)
		}
	}
	if players != 1 {
		return fmt.Errorf("level %s: expected one player, found %d", lvl.Name, players)
	}

	if _, err := NewCameraAt(w, playerX, playerY); err != nil {
		return fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	if _, err := NewTutorialPopup(w); err != nil {
		return fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	return nil
}

// startAbilities picks the level's listed abilities, or the player
// prefab's when the level lists none.
func startAbilities(lvl *levels.Level, spec *prefabs.PlayerSpec, all bool) (component.Abilities, error) {
	if all {
		return component.AllAbilities(), nil
	}
	if len(lvl.Abilities) == 0 {
		return component.Abilities{
			Move:   spec.Abilities.Move,
			Jump:   spec.Abilities.Jump,
			BlowUp: spec.Abilities.BlowUp,
			Bridge: spec.Abilities.Bridge,
		}, nil
	}

	var out component.Abilities
	for _, name := range lvl.Abilities {
		ab, err := component.ParseAbility(name)
		if err != nil {
			return out, err
		}
		out.Set(ab, true)
	}
	return out, nil
}

func blockColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	return prefabs.ParseColor(s)
}
