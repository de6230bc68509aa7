package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/balloonbridge/common"
	"github.com/milk9111/balloonbridge/ecs"
	"github.com/milk9111/balloonbridge/ecs/component"
	"github.com/milk9111/balloonbridge/ecs/system"
	"golang.org/x/image/font/basicfont"
)

// TutorialUI mirrors the world's TutorialPopup into an ebitenui panel. The
// Play button marks the popup confirmed; the tutorial system does the rest.
type TutorialUI struct {
	ui      *ebitenui.UI
	message *widget.Text
	popup   *component.TutorialPopup
	visible bool
}

func NewTutorialUI() *TutorialUI {
	t := &TutorialUI{}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x18, B: 0x30, A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x1b, G: 0x5e, B: 0x20, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	t.message = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	playBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
		widget.ButtonOpts.Text("Play", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if t.popup != nil && t.popup.Visible {
				t.popup.Confirmed = true
			}
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 32, Right: 32}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(t.message)
	panel.AddChild(playBtn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	t.ui = &ebitenui.UI{Container: root}
	return t
}

func (t *TutorialUI) Update(w *ecs.World) {
	if t == nil {
		return
	}
	t.popup = system.TutorialPopupState(w)
	t.visible = t.popup != nil && t.popup.Visible
	if !t.visible {
		return
	}
	t.message.Label = t.popup.Text
	t.ui.Update()
}

func (t *TutorialUI) Draw(screen *ebiten.Image) {
	if t == nil || !t.visible {
		return
	}
	t.ui.Draw(screen)
}
