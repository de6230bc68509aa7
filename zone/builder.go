package zone

import (
	"errors"
	"log"
	"math"
)

var (
	ErrNoPlacer     = errors.New("zone: no placer configured")
	ErrBadUnitWidth = errors.New("zone: unit width must be positive")
)

// Handle identifies one placed piece.
type Handle uint64

// Placer spawns and removes pieces on behalf of a Builder.
type Placer interface {
	Place(x, y float64) (Handle, error)
	Remove(h Handle)
}

// BuilderConfig holds the fixed build parameters.
type BuilderConfig struct {
	UnitWidth float64
	BuildRate float64
}

// Validate reports the first configuration problem, if any.
func (c BuilderConfig) Validate() error {
	if c.UnitWidth <= 0 || math.IsNaN(c.UnitWidth) {
		return ErrBadUnitWidth
	}
	return nil
}

// Builder turns a length growing at BuildRate into one placed piece per
// UnitWidth, starting at the armed origin and stopping at the cap.
type Builder struct {
	cfg    BuilderConfig
	placer Placer

	building bool
	originX  float64
	originY  float64
	length   float64
	cap      float64
	placed   []Handle

	warned bool
}

func NewBuilder(cfg BuilderConfig, placer Placer) *Builder {
	return &Builder{cfg: cfg, placer: placer, cap: math.Inf(1)}
}

// SetConfig swaps the build parameters. Placed pieces and the running
// session are kept.
func (b *Builder) SetConfig(cfg BuilderConfig) {
	if b == nil {
		return
	}
	b.cfg = cfg
	b.warned = false
}

func (b *Builder) Config() BuilderConfig {
	if b == nil {
		return BuilderConfig{}
	}
	return b.cfg
}

// Arm starts a new session at (x, y) that may grow up to capLength. All
// pieces from the previous session are removed first.
func (b *Builder) Arm(x, y, capLength float64) {
	if b == nil {
		return
	}
	b.Clear()
	b.originX = x
	b.originY = y
	b.length = 0
	if capLength < 0 || math.IsNaN(capLength) {
		capLength = 0
	}
	b.cap = capLength
	b.building = true
}

// Release stops growing. Placed pieces stay.
func (b *Builder) Release() {
	if b == nil {
		return
	}
	b.building = false
}

// Step advances the session by dt seconds and places any pieces the new
// length calls for. It returns the number of pieces placed.
func (b *Builder) Step(dt float64) int {
	if b == nil || !b.building {
		return 0
	}
	if err := b.checkConfig(); err != nil {
		return 0
	}

	if dt > 0 {
		b.length += b.cfg.BuildRate * dt
	}
	if b.length >= b.cap {
		b.length = b.cap
		b.building = false
	}

	return b.Place()
}

// Place emits the pieces owed for the current length. Calling it again
// without the length changing places nothing.
func (b *Builder) Place() int {
	if b == nil {
		return 0
	}
	if err := b.checkConfig(); err != nil {
		return 0
	}

	needed := int(math.Floor(b.length / b.cfg.UnitWidth))
	count := 0
	for len(b.placed) < needed {
		x := b.originX + float64(len(b.placed))*b.cfg.UnitWidth
		h, err := b.placer.Place(x, b.originY)
		if err != nil {
			log.Printf("zone: place piece at (%.2f, %.2f): %v", x, b.originY, err)
			b.building = false
			break
		}
		b.placed = append(b.placed, h)
		count++
	}
	return count
}

// Clear removes every placed piece and resets the counters.
func (b *Builder) Clear() {
	if b == nil {
		return
	}
	if b.placer != nil {
		for _, h := range b.placed {
			b.placer.Remove(h)
		}
	}
	b.placed = b.placed[:0]
	b.length = 0
	b.building = false
}

func (b *Builder) Building() bool {
	return b != nil && b.building
}

func (b *Builder) Length() float64 {
	if b == nil {
		return 0
	}
	return b.length
}

func (b *Builder) Cap() float64 {
	if b == nil {
		return 0
	}
	return b.cap
}

func (b *Builder) Origin() (float64, float64) {
	if b == nil {
		return 0, 0
	}
	return b.originX, b.originY
}

// Emitted is the number of pieces placed in the current session.
func (b *Builder) Emitted() int {
	if b == nil {
		return 0
	}
	return len(b.placed)
}

// Placed returns a copy of the placed handles in placement order.
func (b *Builder) Placed() []Handle {
	if b == nil || len(b.placed) == 0 {
		return nil
	}
	return append([]Handle(nil), b.placed...)
}

func (b *Builder) checkConfig() error {
	err := b.cfg.Validate()
	if err == nil && b.placer == nil {
		err = ErrNoPlacer
	}
	if err != nil && !b.warned {
		log.Printf("zone: builder disabled: %v", err)
		b.warned = true
	}
	return err
}
