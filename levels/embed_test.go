package levels

import (
	"errors"
	"testing"
)

func TestLoadEmbeddedLevels(t *testing.T) {
	names := Names()
	if len(names) < 2 {
		t.Fatalf("expected at least two embedded levels, got %v", names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if lvl.Name != name {
				t.Fatalf("expected name %q, got %q", name, lvl.Name)
			}
			players := 0
			for _, e := range lvl.Entities {
				if e.Type == "player" {
					players++
				}
			}
			if players != 1 {
				t.Fatalf("expected one player, got %d", players)
			}
			if len(lvl.Ground) == 0 {
				t.Fatalf("expected ground blocks")
			}
		})
	}
}

func TestLoadUnknownLevel(t *testing.T) {
	if _, err := Load("missing"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestFileNameAndSize(t *testing.T) {
	if got := FileName("tutorial"); got != "tutorial.json" {
		t.Fatalf("expected tutorial.json, got %q", got)
	}
	if got := FileName("levels/level1.json"); got != "level1.json" {
		t.Fatalf("expected level1.json, got %q", got)
	}

	lvl := &Level{Width: 10, Height: 5}
	w, h := lvl.PixelSize()
	if w != 320 || h != 160 {
		t.Fatalf("expected 320x160, got %vx%v", w, h)
	}
}
