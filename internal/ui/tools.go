package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"localboard/internal/session"
	"localboard/internal/state"
)

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 160, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 200, A: 255}, // Yellow
}

var toolOrder = []session.Tool{
	session.ToolSelect,
	session.ToolPan,
	session.ToolPencil,
	session.ToolRectangle,
	session.ToolCircle,
	session.ToolTriangle,
	session.ToolArrow,
	session.ToolEraser,
	session.ToolLaser,
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the controls above the board.
type Toolbar struct {
	fyne.CanvasObject

	board *BoardWidget
	tools *widget.RadioGroup
	undo  *widget.ToolbarAction
	redo  *widget.ToolbarAction
	bar   *widget.Toolbar
}

// NewToolbar builds the tool picker, palette, stroke slider and the command
// actions. onImport and onExport open the file dialogs.
func NewToolbar(board *BoardWidget, onImport, onExport func()) *Toolbar {
	t := &Toolbar{board: board}

	names := make([]string, len(toolOrder))
	for i, tool := range toolOrder {
		names[i] = tool.String()
	}
	t.tools = widget.NewRadioGroup(names, func(name string) {
		for _, tool := range toolOrder {
			if tool.String() == name {
				board.SetTool(tool)
				return
			}
		}
	})
	t.tools.Horizontal = true
	t.tools.Required = true
	t.tools.SetSelected(board.Tool().String())

	t.undo = widget.NewToolbarAction(theme.ContentUndoIcon(), func() { board.Execute(session.CmdUndo) })
	t.redo = widget.NewToolbarAction(theme.ContentRedoIcon(), func() { board.Execute(session.CmdRedo) })
	t.bar = widget.NewToolbar(
		t.undo,
		t.redo,
		widget.NewToolbarAction(theme.DeleteIcon(), func() { board.Execute(session.CmdDelete) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomInIcon(), func() { board.Execute(session.CmdZoomIn) }),
		widget.NewToolbarAction(theme.ZoomOutIcon(), func() { board.Execute(session.CmdZoomOut) }),
		widget.NewToolbarAction(theme.ZoomFitIcon(), func() { board.Execute(session.CmdResetView) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FileImageIcon(), onImport),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), onExport),
	)

	// --- Color Palette ---
	fill := widget.NewCheck("Fill", nil)
	var current color.Color = color.Black
	applyColor := func() {
		board.SetStrokeColor(state.FormatColor(current))
		if fill.Checked {
			board.SetFillColor(state.FormatColor(current))
		} else {
			board.SetFillColor("")
		}
	}
	fill.OnChanged = func(bool) { applyColor() }
	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, func(c color.Color) {
			current = c
			applyColor()
		}))
	}

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(board.cfg.StrokeWidth)
	strokeSlider.OnChanged = board.SetStroke
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	board.OnChanged = t.refresh
	t.refresh()

	t.CanvasObject = container.NewVBox(
		container.NewHBox(widget.NewLabel("Tool:"), t.tools),
		container.NewHBox(
			t.bar,
			widget.NewSeparator(),
			widget.NewLabel("Color:"),
			swatches,
			fill,
			widget.NewSeparator(),
			widget.NewLabel("Size:"),
			sliderContainer,
			layout.NewSpacer(),
		),
	)
	return t
}

// SelectTool updates the picker, which in turn switches the board tool.
func (t *Toolbar) SelectTool(tool session.Tool) {
	t.tools.SetSelected(tool.String())
}

// refresh enables undo and redo according to the history.
func (t *Toolbar) refresh() {
	setEnabled(t.undo, t.board.CanUndo())
	setEnabled(t.redo, t.board.CanRedo())
	t.bar.Refresh()
}

func setEnabled(a *widget.ToolbarAction, on bool) {
	if on {
		a.Enable()
	} else {
		a.Disable()
	}
}
