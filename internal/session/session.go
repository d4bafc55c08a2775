// Package session drives interactive editing of a board: it turns pointer,
// wheel and command events into view changes and history commits. It owns the
// view state and the transient gesture state; the committed shape list lives
// in a state.History.
//
// A Session is not safe for concurrent use. The UI feeds it from a single
// goroutine.
package session

import (
	"maps"
	"slices"
	"time"

	"localboard/internal/applog"
	"localboard/internal/config"
	"localboard/internal/geom"
	"localboard/internal/state"
)

// Tool selects what a primary pointer press does.
type Tool int

const (
	ToolSelect Tool = iota
	ToolPan
	ToolRectangle
	ToolCircle
	ToolTriangle
	ToolArrow
	ToolPencil
	ToolEraser
	ToolLaser
)

var toolNames = [...]string{"select", "pan", "rectangle", "circle", "triangle", "arrow", "pencil", "eraser", "laser"}

func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "unknown"
}

// Mode is the current gesture.
type Mode int

const (
	Idle Mode = iota
	Drawing
	Dragging
	Resizing
	Panning
	BoxSelecting
	Pinching
	Erasing
	Lasering
)

var modeNames = [...]string{"idle", "drawing", "dragging", "resizing", "panning", "box-selecting", "pinching", "erasing", "lasering"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Command is a discrete action, usually bound to a key.
type Command int

const (
	CmdUndo Command = iota
	CmdRedo
	CmdDelete
	CmdSelectAll
	CmdEscape
	CmdZoomIn
	CmdZoomOut
	CmdResetView
)

// Style is applied to newly drawn shapes.
type Style struct {
	StrokeColor string
	FillColor   string
	StrokeWidth float64
}

// Session is the interaction controller of one board.
type Session struct {
	cfg      config.Config
	history  *state.History
	view     geom.ViewState
	viewport geom.Point
	tool     Tool
	style    Style
	selected map[string]struct{}
	laser    *Laser
	now      func() time.Time

	// pointers maps pointer ids to their last screen position.
	pointers map[int]geom.Point
	g        gesture
}

// gesture holds everything a begin/update/commit sequence needs. It is reset
// to its zero value when the gesture ends.
type gesture struct {
	mode    Mode
	primary int

	origin      geom.Point // world
	startScreen geom.Point
	startView   geom.ViewState

	shape     state.Shape   // Drawing
	tentative []state.Shape // Dragging, Resizing, Erasing
	changed   bool

	handle     Handle
	resizeFrom state.Bounds
	box        state.Bounds

	pinch    geom.Pinch
	pinchIDs [2]int
}

// New returns a session over initial with the given settings.
func New(cfg config.Config, initial []state.Shape) *Session {
	return &Session{
		cfg:      cfg,
		history:  state.NewHistory(initial, cfg.HistoryCap),
		view:     geom.IdentityView,
		tool:     ToolPencil,
		style:    Style{StrokeColor: cfg.StrokeColor, StrokeWidth: cfg.StrokeWidth},
		selected: make(map[string]struct{}),
		laser:    NewLaser(cfg.LaserFade, cfg.LaserMaxPoints),
		now:      time.Now,
		pointers: make(map[int]geom.Point),
	}
}

// SetClock replaces the time source used for the laser trail.
func (s *Session) SetClock(now func() time.Time) { s.now = now }

// SetViewport records the screen size; button zoom anchors on its center.
func (s *Session) SetViewport(w, h float64) { s.viewport = geom.Pt(w, h) }

func (s *Session) View() geom.ViewState { return s.view }
func (s *Session) Mode() Mode           { return s.g.mode }
func (s *Session) Tool() Tool           { return s.tool }
func (s *Session) Style() Style         { return s.style }
func (s *Session) CanUndo() bool        { return s.history.CanUndo() }
func (s *Session) CanRedo() bool        { return s.history.CanRedo() }

// History exposes the underlying history, mainly for inspection.
func (s *Session) History() *state.History { return s.history }

// SetTool switches tools, abandoning any gesture in progress.
func (s *Session) SetTool(t Tool) {
	s.cancelGesture()
	s.tool = t
	if t != ToolSelect {
		clear(s.selected)
	}
}

// SetStyle sets the style of shapes drawn from now on.
func (s *Session) SetStyle(st Style) { s.style = st }

// Committed returns the current history snapshot.
func (s *Session) Committed() []state.Shape { return s.history.Current() }

// Shapes returns what should be drawn this frame: the tentative list or shape
// of an active gesture, or the committed snapshot.
func (s *Session) Shapes() []state.Shape {
	switch s.g.mode {
	case Dragging, Resizing, Erasing:
		return s.g.tentative
	case Drawing:
		return append(slices.Clone(s.Committed()), s.g.shape)
	}
	return s.Committed()
}

// SelectionBox returns the rubber band while box selecting.
func (s *Session) SelectionBox() (state.Bounds, bool) {
	return s.g.box, s.g.mode == BoxSelecting
}

// Selected returns the selected ids in z-order.
func (s *Session) Selected() []string {
	var ids []string
	for _, sh := range s.Committed() {
		if _, ok := s.selected[sh.Attrs().ID]; ok {
			ids = append(ids, sh.Attrs().ID)
		}
	}
	return ids
}

// IsSelected reports whether the shape with id is selected.
func (s *Session) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// Select replaces the selection.
func (s *Session) Select(ids ...string) {
	clear(s.selected)
	for _, id := range ids {
		s.selected[id] = struct{}{}
	}
}

// SelectionBounds returns the common bounds of the selected shapes as they
// are currently drawn.
func (s *Session) SelectionBounds() (state.Bounds, bool) {
	var sel []state.Shape
	for _, sh := range s.Shapes() {
		if _, ok := s.selected[sh.Attrs().ID]; ok {
			sel = append(sel, sh)
		}
	}
	return state.CommonBounds(sel)
}

// LaserTrail returns the fading laser samples.
func (s *Session) LaserTrail() []TrailPoint { return s.laser.Trail(s.now()) }

// tolerance is the pick radius in world units at the current zoom.
func (s *Session) tolerance() float64 { return s.cfg.HitTolerance / s.view.Scale }

// Execute runs a command. It returns false when the command had no effect.
// A gesture in progress is abandoned first.
func (s *Session) Execute(cmd Command) bool {
	s.cancelGesture()
	switch cmd {
	case CmdUndo:
		_, ok := s.history.Undo()
		s.pruneSelection()
		return ok
	case CmdRedo:
		_, ok := s.history.Redo()
		s.pruneSelection()
		return ok
	case CmdDelete:
		return s.deleteSelected()
	case CmdSelectAll:
		s.Select(state.IDs(s.Committed())...)
		return len(s.selected) > 0
	case CmdEscape:
		had := len(s.selected) > 0
		clear(s.selected)
		return had
	case CmdZoomIn:
		return s.zoomBy(s.cfg.ZoomStep, s.viewport.Mul(0.5))
	case CmdZoomOut:
		return s.zoomBy(1/s.cfg.ZoomStep, s.viewport.Mul(0.5))
	case CmdResetView:
		changed := s.view != geom.IdentityView
		s.view = geom.IdentityView
		return changed
	}
	return false
}

// Commit pushes shapes as a new snapshot. Collaborators such as the image
// importer use it to add content.
func (s *Session) Commit(shapes []state.Shape) {
	s.cancelGesture()
	s.history.Push(shapes)
	s.pruneSelection()
}

// Add appends sh on top of the committed shapes and selects it.
func (s *Session) Add(sh state.Shape) {
	s.Commit(append(slices.Clone(s.Committed()), sh))
	s.Select(sh.Attrs().ID)
}

func (s *Session) deleteSelected() bool {
	if len(s.selected) == 0 {
		return false
	}
	next := state.RemoveIDs(s.Committed(), s.selected)
	clear(s.selected)
	if len(next) == len(s.Committed()) {
		return false
	}
	s.history.Push(next)
	return true
}

// pruneSelection drops selected ids that are not in the committed snapshot.
func (s *Session) pruneSelection() {
	live := make(map[string]struct{}, len(s.Committed()))
	for _, sh := range s.Committed() {
		live[sh.Attrs().ID] = struct{}{}
	}
	maps.DeleteFunc(s.selected, func(id string, _ struct{}) bool {
		_, ok := live[id]
		return !ok
	})
}

// Wheel zooms around the screen point. Positive dy zooms in.
func (s *Session) Wheel(screen geom.Point, dy float64) bool {
	switch {
	case dy > 0:
		return s.zoomBy(s.cfg.ZoomStep, screen)
	case dy < 0:
		return s.zoomBy(1/s.cfg.ZoomStep, screen)
	}
	return false
}

// ScrollBy pans the view by a screen-space delta.
func (s *Session) ScrollBy(dx, dy float64) {
	s.view.X += dx
	s.view.Y += dy
}

func (s *Session) zoomBy(factor float64, anchor geom.Point) bool {
	scale := geom.ClampScale(s.view.Scale*factor, s.cfg.ZoomMin, s.cfg.ZoomMax)
	if scale == s.view.Scale {
		return false
	}
	s.view = geom.ZoomAt(s.view, anchor, scale)
	applog.Logger().Debug("zoom", "scale", scale)
	return true
}
