package component

// Move walks the entity along Dir once the move action has been pressed.
type Move struct {
	Speed float64
	DirX  float64
	DirY  float64
	// Pressed latches on the first press and stays set.
	Pressed bool
	// PressedUI is set by the tutorial popup's confirm button.
	PressedUI   bool
	UseAnimator bool
}

var MoveComponent = NewComponent[Move]()

// Jump raises the entity at RiseSpeed while its zone gate is open.
type Jump struct {
	RiseSpeed float64
	Gate      ZoneGate
}

var JumpComponent = NewComponent[Jump]()

// BlowUp lets the entity push the SimpleMove entities of Group while its
// zone gate is open.
type BlowUp struct {
	Group string
	Gate  ZoneGate
}

var BlowUpComponent = NewComponent[BlowUp]()

// SimpleMove translates the entity along Dir while Enabled.
type SimpleMove struct {
	DirX    float64
	DirY    float64
	Speed   float64
	Enabled bool
	Group   string
}

var SimpleMoveComponent = NewComponent[SimpleMove]()

// AnimationFlags is the boolean parameter sink movers write to.
type AnimationFlags struct {
	Flags map[string]bool
}

func (a *AnimationFlags) Set(name string, v bool) {
	if a == nil {
		return
	}
	if a.Flags == nil {
		a.Flags = make(map[string]bool)
	}
	a.Flags[name] = v
}

func (a *AnimationFlags) Get(name string) bool {
	if a == nil {
		return false
	}
	return a.Flags[name]
}

var AnimationFlagsComponent = NewComponent[AnimationFlags]()
