package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"

	"localboard/internal/applog"
	"localboard/internal/config"
	"localboard/internal/session"
	"localboard/internal/state"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// toolKeys maps single-key shortcuts to tools.
var toolKeys = map[rune]session.Tool{
	'v': session.ToolSelect,
	'h': session.ToolPan,
	'p': session.ToolPencil,
	'r': session.ToolRectangle,
	'c': session.ToolCircle,
	't': session.ToolTriangle,
	'a': session.ToolArrow,
	'e': session.ToolEraser,
	'l': session.ToolLaser,
}

// RunApp opens the board window and blocks until it is closed.
func RunApp(cfg config.Config, initial []state.Shape) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Local Whiteboard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	// Create the interactive board widget
	board := NewBoardWidget(cfg, initial)

	var toolbar *Toolbar
	onImport := func() { showImport(myWindow, board, toolbar) }
	onExport := func() { showExport(myWindow, board) }
	toolbar = NewToolbar(board, onImport, onExport)

	bindKeys(myWindow.Canvas(), board, toolbar)

	// Set up the main layout
	content := container.NewBorder(toolbar, board.statusBar, nil, nil, board)

	myWindow.SetContent(content)
	applog.Logger().Info("board window opened", "shapes", len(initial))
	myWindow.ShowAndRun()
}

func bindKeys(c fyne.Canvas, board *BoardWidget, toolbar *Toolbar) {
	shortcut := func(key fyne.KeyName, mod fyne.KeyModifier, cmd session.Command) {
		c.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: mod}, func(fyne.Shortcut) {
			board.Execute(cmd)
		})
	}
	shortcut(fyne.KeyZ, fyne.KeyModifierShortcutDefault, session.CmdUndo)
	shortcut(fyne.KeyZ, fyne.KeyModifierShortcutDefault|fyne.KeyModifierShift, session.CmdRedo)
	shortcut(fyne.KeyY, fyne.KeyModifierShortcutDefault, session.CmdRedo)
	shortcut(fyne.KeyA, fyne.KeyModifierShortcutDefault, session.CmdSelectAll)
	shortcut(fyne.Key0, fyne.KeyModifierShortcutDefault, session.CmdResetView)

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			board.Execute(session.CmdDelete)
		case fyne.KeyEscape:
			board.Execute(session.CmdEscape)
		}
	})
	c.SetOnTypedRune(func(r rune) {
		switch r {
		case '+', '=':
			board.Execute(session.CmdZoomIn)
		case '-':
			board.Execute(session.CmdZoomOut)
		default:
			if t, ok := toolKeys[r]; ok {
				toolbar.SelectTool(t)
			}
		}
	})
}

func showImport(w fyne.Window, board *BoardWidget, toolbar *Toolbar) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		if err := board.ImportImage(reader, reader.URI().Path()); err != nil {
			dialog.ShowError(err, w)
			return
		}
		toolbar.SelectTool(session.ToolSelect)
	}, w)
	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	d.Show()
}

func showExport(w fyne.Window, board *BoardWidget) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				applog.Logger().Warn("closing export file", "err", err)
			}
		}()
		if err := board.ExportPDF(writer); err != nil {
			dialog.ShowError(err, w)
		}
	}, w)
	d.SetFileName("board.pdf")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}
