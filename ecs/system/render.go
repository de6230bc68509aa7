package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
	"github.com/milk9111/balloonbridge/zone"
	"golang.org/x/image/colornames"
)

type RenderSystem struct {
	// Debug draws zone markers and the active bridge cap.
	Debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX, camY, zoom := cameraView(w)

	entities := ecs.Query(w, component.RectComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(w, entities[i]), layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		rect, _ := ecs.Get(w, e, component.RectComponent.Kind())
		if rect.Width <= 0 || rect.Height <= 0 {
			continue
		}
		clr := rect.Color
		if clr == nil {
			clr = colornames.White
		}
		x := (t.X - rect.Width/2 - camX) * zoom
		y := (t.Y - rect.Height/2 - camY) * zoom
		vector.FillRect(screen, float32(x), float32(y), float32(rect.Width*zoom), float32(rect.Height*zoom), clr, false)
	}

	if r.Debug {
		r.drawMarkers(w, screen, camX, camY, zoom)
	}
	drawCounters(w, screen)
}

func (r *RenderSystem) drawMarkers(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	sh := screen.Bounds().Dy()
	ecs.ForEach2(w, component.ZoneMarkerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, m *component.ZoneMarker, t *component.Transform) {
		var clr color.Color = colornames.Limegreen
		if m.Kind == zone.End {
			clr = colornames.Crimson
		}
		x := float32((t.X - camX) * zoom)
		vector.StrokeLine(screen, x, 0, x, float32(sh), 1, clr, false)
		ebitenutil.DebugPrintAt(screen, m.Category+" "+m.Kind.String(), int(x)+2, int((t.Y-camY)*zoom))
	})

	ecs.ForEach(w, component.BridgeBuilderComponent.Kind(), func(_ ecs.Entity, bb *component.BridgeBuilder) {
		if !bb.Builder.Building() {
			return
		}
		ox, oy := bb.Builder.Origin()
		end := ox + bb.Builder.Cap()
		if math.IsInf(end, 1) {
			end = camX + float64(screen.Bounds().Dx())/zoom
		}
		x0 := float32((ox - camX) * zoom)
		x1 := float32((end - camX) * zoom)
		y := float32((oy - camY) * zoom)
		vector.StrokeLine(screen, x0, y, x1, y, 1, colornames.Gold, false)
	})
}

func drawCounters(w *ecs.World, screen *ebiten.Image) {
	row := 0
	ecs.ForEach(w, component.CounterComponent.Kind(), func(_ ecs.Entity, c *component.Counter) {
		label := c.Label
		if label == "" {
			label = c.Kind
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %d", label, c.Count), 8, 8+row*16)
		row++
	})
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
