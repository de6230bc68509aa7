package component

// TutorialTrigger shows a tutorial popup the first time the player enters it.
type TutorialTrigger struct {
	Text   string
	Unlock Ability
	// Script optionally formats Text; see prefabs/scripts.
	Script    string
	Width     float64
	Height    float64
	Triggered bool
}

var TutorialTriggerComponent = NewComponent[TutorialTrigger]()

// TutorialPopup is the single popup state shared by all triggers.
type TutorialPopup struct {
	Visible bool
	Text    string
	Unlock  Ability
	// Confirmed is set by the popup's Play button and consumed by the
	// tutorial system on its next tick.
	Confirmed bool
}

var TutorialPopupComponent = NewComponent[TutorialPopup]()
