package system

import (
	"log"

	"github.com/milk9111/balloonbridge/common"
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// TutorialSystem fires each tutorial trigger once, locks the player's
// abilities while the popup is up, and unlocks on confirm.
type TutorialSystem struct{}

func NewTutorialSystem() *TutorialSystem { return &TutorialSystem{} }

func (s *TutorialSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, px, py, pw, ph, ok := playerBox(w)
	if !ok {
		return
	}
	popup := tutorialPopup(w)

	if popup != nil && popup.Visible {
		if input, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok && input.Confirm.Pressed {
			popup.Confirmed = true
		}
		if popup.Confirmed {
			confirmTutorial(w, player, popup)
		}
		return
	}

	ecs.ForEach2(w, component.TutorialTriggerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, trig *component.TutorialTrigger, t *component.Transform) {
		if trig.Triggered {
			return
		}
		tx, ty, tw, th := boxOf(w, e, t, trig.Width, trig.Height)
		if !common.Intersects(px, py, pw, ph, tx, ty, tw, th) {
			return
		}
		trig.Triggered = true

		if popup == nil {
			log.Printf("tutorial: trigger %v has no popup to show", e)
			return
		}
		if popup.Visible {
			return
		}

		if abilities, ok := ecs.Get(w, player, component.AbilitiesComponent.Kind()); ok {
			abilities.DisableAll()
		}

		text, err := renderTutorialText(trig.Script, trig.Text, trig.Unlock, totalCollected(w))
		if err != nil {
			log.Printf("tutorial: %v", err)
		}

		popup.Visible = true
		popup.Text = text
		popup.Unlock = trig.Unlock
		popup.Confirmed = false
	})
}

func confirmTutorial(w *ecs.World, player ecs.Entity, popup *component.TutorialPopup) {
	popup.Visible = false
	popup.Confirmed = false

	if move, ok := ecs.Get(w, player, component.MoveComponent.Kind()); ok {
		move.PressedUI = true
	}
	if abilities, ok := ecs.Get(w, player, component.AbilitiesComponent.Kind()); ok {
		abilities.Move = true
		if popup.Unlock != component.AbilityMove {
			abilities.Set(popup.Unlock, true)
		}
	}
	popup.Unlock = component.AbilityNone
}

func totalCollected(w *ecs.World) int {
	total := 0
	ecs.ForEach(w, component.CounterComponent.Kind(), func(_ ecs.Entity, c *component.Counter) {
		total += c.Count
	})
	return total
}

func tutorialPopup(w *ecs.World) *component.TutorialPopup {
	e, ok := ecs.First(w, component.TutorialPopupComponent.Kind())
	if !ok {
		return nil
	}
	popup, _ := ecs.Get(w, e, component.TutorialPopupComponent.Kind())
	return popup
}

// TutorialPopupState returns the popup for the UI layer, or nil.
func TutorialPopupState(w *ecs.World) *component.TutorialPopup {
	return tutorialPopup(w)
}
