package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
)

// Keys is the raw held state of every action for one tick.
type Keys struct {
	Move    bool
	Jump    bool
	Blow    bool
	Build   bool
	Confirm bool
	Restart bool
}

// InputSystem samples the keyboard and first gamepad into every Input
// component.
type InputSystem struct {
	// Read replaces device sampling when set.
	Read func() Keys
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	read := readKeys
	if i != nil && i.Read != nil {
		read = i.Read
	}
	ApplyKeys(w, read())
}

// ApplyKeys writes keys into every Input component, deriving press and
// release edges from the previous tick.
func ApplyKeys(w *ecs.World, keys Keys) {
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Move.Set(keys.Move)
		input.Jump.Set(keys.Jump)
		input.Blow.Set(keys.Blow)
		input.Build.Set(keys.Build)
		input.Confirm.Set(keys.Confirm)
		input.Restart.Set(keys.Restart)
	})
}

func readKeys() Keys {
	keys := Keys{
		Move:    ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:    ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Blow:    ebiten.IsKeyPressed(ebiten.KeyB),
		Build:   ebiten.IsKeyPressed(ebiten.KeyV),
		Confirm: ebiten.IsKeyPressed(ebiten.KeyEnter),
		Restart: ebiten.IsKeyPressed(ebiten.KeyR),
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		keys.Move = keys.Move || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		keys.Jump = keys.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		keys.Blow = keys.Blow || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		keys.Build = keys.Build || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
		keys.Confirm = keys.Confirm || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}
	return keys
}
