package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"localboard/internal/applog"
	"localboard/internal/config"
	"localboard/internal/export"
	"localboard/internal/geom"
	"localboard/internal/importer"
	"localboard/internal/session"
	"localboard/internal/state"
)

// mousePointer is the pointer id used for the desktop mouse.
const mousePointer = 0

// BoardWidget forwards desktop mouse and wheel events to a session and draws
// what the session reports.
type BoardWidget struct {
	widget.BaseWidget

	mu        sync.Mutex
	sess      *session.Session
	cfg       config.Config
	lastPos   fyne.Position
	statusBar *widget.Label

	// OnChanged runs after every event that may change history, selection or
	// view, so toolbars can refresh their state.
	OnChanged func()

	laserTick *fyne.Animation
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(cfg config.Config, initial []state.Shape) *BoardWidget {
	b := &BoardWidget{
		sess:      session.New(cfg, initial),
		cfg:       cfg,
		statusBar: widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

func toPoint(p fyne.Position) geom.Point { return geom.Pt(float64(p.X), float64(p.Y)) }

func toPos(p geom.Point) fyne.Position { return fyne.NewPos(float32(p.X), float32(p.Y)) }

// do runs f on the session under the lock, then refreshes the board.
func (b *BoardWidget) do(f func(s *session.Session)) {
	b.mu.Lock()
	f(b.sess)
	b.mu.Unlock()
	b.Refresh()
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

// read runs f on the session under the lock without refreshing.
func (b *BoardWidget) read(f func(s *session.Session)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f(b.sess)
}

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) SetTool(t session.Tool) {
	b.do(func(s *session.Session) { s.SetTool(t) })
	b.SetStatus(fmt.Sprintf("Tool: %s", t))
}

func (b *BoardWidget) Tool() (t session.Tool) {
	b.read(func(s *session.Session) { t = s.Tool() })
	return t
}

func (b *BoardWidget) SetStrokeColor(c string) {
	b.read(func(s *session.Session) {
		st := s.Style()
		st.StrokeColor = c
		s.SetStyle(st)
	})
}

func (b *BoardWidget) SetFillColor(c string) {
	b.read(func(s *session.Session) {
		st := s.Style()
		st.FillColor = c
		s.SetStyle(st)
	})
}

func (b *BoardWidget) SetStroke(w float64) {
	b.read(func(s *session.Session) {
		st := s.Style()
		st.StrokeWidth = w
		s.SetStyle(st)
	})
}

// Execute runs a board command and reports whether it did anything.
func (b *BoardWidget) Execute(cmd session.Command) (ok bool) {
	b.do(func(s *session.Session) { ok = s.Execute(cmd) })
	if cmd == session.CmdZoomIn || cmd == session.CmdZoomOut || cmd == session.CmdResetView {
		b.SetStatus(fmt.Sprintf("Zoom: %.0f%%", b.View().Scale*100))
	}
	return ok
}

func (b *BoardWidget) CanUndo() (ok bool) {
	b.read(func(s *session.Session) { ok = s.CanUndo() })
	return ok
}

func (b *BoardWidget) CanRedo() (ok bool) {
	b.read(func(s *session.Session) { ok = s.CanRedo() })
	return ok
}

func (b *BoardWidget) View() (v geom.ViewState) {
	b.read(func(s *session.Session) { v = s.View() })
	return v
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.lastPos = e.Position
	b.do(func(s *session.Session) { s.PointerDown(mousePointer, toPoint(e.Position)) })
	b.startLaserTick()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.lastPos = e.Position
	b.do(func(s *session.Session) { s.PointerUp(mousePointer, toPoint(e.Position)) })
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.lastPos = e.Position
	b.do(func(s *session.Session) { s.PointerMove(mousePointer, toPoint(e.Position)) })
}

// DragEnd releases the pointer at its last position. It is a no-op when
// MouseUp already did so.
func (b *BoardWidget) DragEnd() {
	b.do(func(s *session.Session) { s.PointerUp(mousePointer, toPoint(b.lastPos)) })
}

// Scrolled zooms around the wheel position.
func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.do(func(s *session.Session) { s.Wheel(toPoint(e.Position), float64(e.Scrolled.DY)) })
	b.SetStatus(fmt.Sprintf("Zoom: %.0f%%", b.View().Scale*100))
}

// startLaserTick keeps the board repainting while the laser trail fades.
func (b *BoardWidget) startLaserTick() {
	if b.Tool() != session.ToolLaser || b.laserTick != nil {
		return
	}
	b.laserTick = fyne.NewAnimation(b.cfg.LaserFade, func(float32) {
		var n int
		b.read(func(s *session.Session) { n = len(s.LaserTrail()) })
		b.Refresh()
		if n == 0 {
			b.laserTick.Stop()
			b.laserTick = nil
		}
	})
	b.laserTick.RepeatCount = fyne.AnimationRepeatForever
	b.laserTick.Curve = fyne.AnimationLinear
	b.laserTick.Start()
}

// ImportImage adds the image read from r at the centre of the visible area.
func (b *BoardWidget) ImportImage(r io.Reader, src string) error {
	var err error
	b.do(func(s *session.Session) {
		var img state.Image
		img, err = importer.FromReader(r, src, importer.Placement{
			View:     s.View(),
			Viewport: toPoint(fyne.NewPos(b.Size().Width, b.Size().Height)),
			MaxSize:  b.cfg.ImageMaxSize,
		})
		if err != nil {
			return
		}
		s.SetTool(session.ToolSelect)
		s.Add(img)
	})
	if err != nil {
		applog.Logger().Warn("image import failed", "src", src, "err", err)
		b.SetStatus("Could not import image")
		return err
	}
	b.SetStatus("Image imported")
	return nil
}

// ExportPDF writes the committed board to w.
func (b *BoardWidget) ExportPDF(w io.Writer) error {
	var shapes []state.Shape
	b.read(func(s *session.Session) { shapes = s.Committed() })

	start := time.Now()
	if err := export.Write(w, shapes, export.DefaultOptions()); err != nil {
		applog.Logger().Warn("pdf export failed", "err", err)
		b.SetStatus("Export failed: " + err.Error())
		return err
	}
	applog.Logger().Info("pdf exported", "shapes", len(shapes), "took", time.Since(start))
	b.SetStatus(fmt.Sprintf("Exported %d shapes", len(shapes)))
	return nil
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return newBoardRenderer(b)
}
