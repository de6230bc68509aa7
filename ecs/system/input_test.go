package system

import "testing"

func TestApplyKeysEdges(t *testing.T) {
	tw := newTestWorld(t, 1.0/60)
	p := tw.player(0, 0)

	sys := &InputSystem{}
	keys := Keys{}
	sys.Read = func() Keys { return keys }

	keys.Jump = true
	tw.tick(sys)
	in := tw.input(p)
	if !in.Jump.Down || !in.Jump.Pressed || in.Jump.Released {
		t.Fatalf("expected press edge, got %+v", in.Jump)
	}

	tw.tick(sys)
	if !in.Jump.Down || in.Jump.Pressed {
		t.Fatalf("expected held without edge, got %+v", in.Jump)
	}

	keys.Jump = false
	tw.tick(sys)
	if in.Jump.Down || !in.Jump.Released {
		t.Fatalf("expected release edge, got %+v", in.Jump)
	}
}
