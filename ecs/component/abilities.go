package component

import (
	"fmt"
	"strings"
)

// Ability names one of the player's behaviors that a tutorial can lock.
type Ability string

const (
	AbilityNone   Ability = ""
	AbilityMove   Ability = "move"
	AbilityJump   Ability = "jump"
	AbilityBridge Ability = "bridge"
	AbilityBlowUp Ability = "blow_up"
)

func ParseAbility(s string) (Ability, error) {
	switch a := Ability(strings.ToLower(strings.TrimSpace(s))); a {
	case AbilityNone, AbilityMove, AbilityJump, AbilityBridge, AbilityBlowUp:
		return a, nil
	default:
		return AbilityNone, fmt.Errorf("unknown ability %q", s)
	}
}

// Abilities defines which player behaviors are enabled. A disabled behavior
// ignores its input and drops any held state.
type Abilities struct {
	Move   bool
	Jump   bool
	BlowUp bool
	Bridge bool
}

func (a *Abilities) Enabled(ab Ability) bool {
	if a == nil {
		return false
	}
	switch ab {
	case AbilityMove:
		return a.Move
	case AbilityJump:
		return a.Jump
	case AbilityBlowUp:
		return a.BlowUp
	case AbilityBridge:
		return a.Bridge
	}
	return false
}

func (a *Abilities) Set(ab Ability, on bool) {
	if a == nil {
		return
	}
	switch ab {
	case AbilityMove:
		a.Move = on
	case AbilityJump:
		a.Jump = on
	case AbilityBlowUp:
		a.BlowUp = on
	case AbilityBridge:
		a.Bridge = on
	}
}

func (a *Abilities) DisableAll() {
	if a == nil {
		return
	}
	*a = Abilities{}
}

func AllAbilities() Abilities {
	return Abilities{Move: true, Jump: true, BlowUp: true, Bridge: true}
}

var AbilitiesComponent = NewComponent[Abilities]()
