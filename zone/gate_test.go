package zone

import "testing"

func TestGate(t *testing.T) {
	t.Run("opens_inside", func(t *testing.T) {
		var g Gate
		if !g.Activate(true) {
			t.Fatalf("expected gate to open inside the zone")
		}
		if !g.Tick(true) {
			t.Fatalf("expected effect while held inside")
		}
		g.Release()
		if g.Tick(true) {
			t.Fatalf("expected no effect after release")
		}
	})

	t.Run("activation_outside_is_ignored", func(t *testing.T) {
		var g Gate
		if g.Activate(false) {
			t.Fatalf("gate must not open outside the zone")
		}
		// still held, now walking into the zone
		if g.Tick(true) {
			t.Fatalf("entering the zone while held must not open the gate")
		}
		if !g.Activate(true) {
			t.Fatalf("re-press inside should open the gate")
		}
	})

	t.Run("leaving_closes_for_good", func(t *testing.T) {
		var g Gate
		g.Activate(true)
		if g.Tick(false) {
			t.Fatalf("leaving the zone must suspend the effect")
		}
		if g.Tick(true) {
			t.Fatalf("re-entering without re-press must keep the gate closed")
		}
	})
}
