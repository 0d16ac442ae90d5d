package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuItem is one button on the title menu. Label is called again after
// every activation so items can show the value they cycle.
type MenuItem struct {
	Label    func() string
	OnSelect func()
}

// TitleMenu is the ebitenui title screen. Buttons react to the mouse
// directly; Move and Activate drive it from the keyboard or a gamepad.
type TitleMenu struct {
	UI *ebitenui.UI

	items    []MenuItem
	buttons  []*widget.Button
	selected int

	titleFace  text.Face
	normalFace text.Face

	// Initialization tracking
	initialized bool
}

// NewTitleMenu builds the menu with one button per item.
func NewTitleMenu(title string, items []MenuItem) *TitleMenu {
	tm := &TitleMenu{items: items}
	tm.loadFonts()
	tm.buildUI(title)
	return tm
}

func (tm *TitleMenu) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	// Sized for the 300x200 canvas
	tm.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	tm.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (tm *TitleMenu) buildUI(title string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Parallax.Layers[0].Color)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &tm.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	for i := range tm.items {
		idx := i // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 20)),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text("", &tm.normalFace, &widget.ButtonTextColor{
				Idle:    cfg.White,
				Hover:   cfg.LightBlue,
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				tm.selected = idx
				tm.Activate()
			}),
		)
		tm.buttons = append(tm.buttons, button)
		contentContainer.AddChild(button)
	}

	rootContainer.AddChild(contentContainer)
	tm.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.DarkBlue),
		Hover:   image.NewNineSliceColor(color.RGBA{80, 120, 180, 255}),
		Pressed: image.NewNineSliceColor(color.RGBA{40, 70, 120, 255}),
	}
}

// Move shifts the keyboard selection by delta, wrapping.
func (tm *TitleMenu) Move(delta int) {
	n := len(tm.items)
	if n == 0 {
		return
	}
	tm.selected = ((tm.selected+delta)%n + n) % n
	tm.refresh()
}

// Activate runs the selected item.
func (tm *TitleMenu) Activate() {
	if tm.selected < len(tm.items) && tm.items[tm.selected].OnSelect != nil {
		tm.items[tm.selected].OnSelect()
	}
	tm.refresh()
}

// Selected returns the index of the highlighted item.
func (tm *TitleMenu) Selected() int {
	return tm.selected
}

func (tm *TitleMenu) refresh() {
	for i, button := range tm.buttons {
		textWidget := button.Text()
		if textWidget == nil {
			continue
		}
		label := tm.items[i].Label()
		if i == tm.selected {
			label = "> " + label + " <"
		}
		textWidget.Label = label
	}
}

func (tm *TitleMenu) Update() {
	tm.UI.Update()
	// Labels are filled in on the first frame after widgets are validated
	if !tm.initialized {
		tm.initialized = true
		tm.refresh()
	}
}

func (tm *TitleMenu) Draw(screen *ebiten.Image) {
	tm.UI.Draw(screen)
}
