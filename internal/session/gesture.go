package session

import (
	"maps"
	"slices"

	"localboard/internal/applog"
	"localboard/internal/geom"
	"localboard/internal/state"
)

// Handle identifies a resize grip on the selection bounds.
type Handle int

const (
	HandleNone Handle = iota
	HandleTopLeft
	HandleTopRight
	HandleBottomRight
	HandleBottomLeft
)

// corner returns the position of h on b.
func (h Handle) corner(b state.Bounds) geom.Point {
	switch h {
	case HandleTopLeft:
		return geom.Pt(b.MinX, b.MinY)
	case HandleTopRight:
		return geom.Pt(b.MaxX, b.MinY)
	case HandleBottomRight:
		return geom.Pt(b.MaxX, b.MaxY)
	case HandleBottomLeft:
		return geom.Pt(b.MinX, b.MaxY)
	}
	return b.Center()
}

// opposite returns the handle diagonally across from h.
func (h Handle) opposite() Handle {
	switch h {
	case HandleTopLeft:
		return HandleBottomRight
	case HandleTopRight:
		return HandleBottomLeft
	case HandleBottomRight:
		return HandleTopLeft
	case HandleBottomLeft:
		return HandleTopRight
	}
	return HandleNone
}

// HandleAt returns the resize handle of the current selection under the world
// point p.
func (s *Session) HandleAt(p geom.Point) Handle {
	b, ok := s.SelectionBounds()
	if !ok {
		return HandleNone
	}
	tol := s.tolerance()
	for _, h := range []Handle{HandleTopLeft, HandleTopRight, HandleBottomRight, HandleBottomLeft} {
		c := h.corner(b)
		if state.IsPointInBounds(p, state.Bounds{MinX: c.X, MinY: c.Y, MaxX: c.X, MaxY: c.Y}, tol) {
			return h
		}
	}
	return HandleNone
}

// PointerDown starts a gesture for the pointer. A second concurrent pointer
// abandons any single-pointer gesture and starts a pinch.
func (s *Session) PointerDown(id int, screen geom.Point) {
	s.pointers[id] = screen

	switch len(s.pointers) {
	case 1:
	case 2:
		s.beginPinch()
		return
	default:
		return
	}
	if s.g.mode != Idle {
		return
	}

	world := geom.ScreenToWorld(screen, s.view)
	s.g = gesture{primary: id, origin: world, startScreen: screen, startView: s.view}

	switch s.tool {
	case ToolPan:
		s.begin(Panning)
	case ToolSelect:
		s.beginSelect(world)
	case ToolRectangle, ToolCircle, ToolTriangle, ToolArrow, ToolPencil:
		s.g.shape = s.newShape(world)
		s.begin(Drawing)
	case ToolEraser:
		s.g.tentative = s.Committed()
		s.begin(Erasing)
		s.eraseAt(world)
	case ToolLaser:
		s.begin(Lasering)
		s.laser.Add(world, s.now())
	}
}

func (s *Session) begin(m Mode) {
	s.g.mode = m
	applog.Logger().Debug("gesture begin", "mode", m, "tool", s.tool)
}

func (s *Session) beginSelect(world geom.Point) {
	if h := s.HandleAt(world); h != HandleNone {
		s.g.handle = h
		s.g.resizeFrom, _ = s.SelectionBounds()
		s.g.tentative = s.Committed()
		s.begin(Resizing)
		return
	}
	if hit, _, ok := state.TopmostAt(s.Committed(), world, s.tolerance()); ok {
		if !s.IsSelected(hit.Attrs().ID) {
			s.Select(hit.Attrs().ID)
		}
		s.g.tentative = s.Committed()
		s.begin(Dragging)
		return
	}
	clear(s.selected)
	s.g.box = state.BoundsOf(world, world)
	s.begin(BoxSelecting)
}

func (s *Session) beginPinch() {
	if s.g.mode != Idle && s.g.mode != Pinching {
		applog.Logger().Debug("gesture canceled by pinch", "mode", s.g.mode)
	}
	ids := slices.Sorted(maps.Keys(s.pointers))
	a, b := s.pointers[ids[0]], s.pointers[ids[1]]
	s.g = gesture{
		mode:     Pinching,
		primary:  -1,
		pinch:    geom.BeginPinch(s.view, a, b),
		pinchIDs: [2]int{ids[0], ids[1]},
	}
	applog.Logger().Debug("gesture begin", "mode", Pinching)
}

// PointerMove updates the gesture driven by the pointer. Moves of pointers
// that are not down are ignored.
func (s *Session) PointerMove(id int, screen geom.Point) {
	if _, down := s.pointers[id]; !down {
		return
	}
	s.pointers[id] = screen

	if s.g.mode == Pinching {
		a, b := s.pointers[s.g.pinchIDs[0]], s.pointers[s.g.pinchIDs[1]]
		s.view = s.g.pinch.Update(a, b, s.cfg.ZoomMin, s.cfg.ZoomMax)
		return
	}
	if s.g.mode == Idle || id != s.g.primary {
		return
	}

	world := geom.ScreenToWorld(screen, s.view)
	switch s.g.mode {
	case Panning:
		d := screen.Sub(s.g.startScreen)
		s.view = geom.ViewState{X: s.g.startView.X + d.X, Y: s.g.startView.Y + d.Y, Scale: s.g.startView.Scale}
	case Drawing:
		s.g.shape = s.updateShape(s.g.shape, world)
	case Dragging:
		d := world.Sub(s.g.origin)
		s.g.changed = d != geom.Point{}
		s.g.tentative = s.mapSelected(func(sh state.Shape) state.Shape {
			return state.Translate(sh, d.X, d.Y)
		})
	case Resizing:
		to := state.BoundsOf(s.g.handle.opposite().corner(s.g.resizeFrom), world)
		s.g.changed = to != s.g.resizeFrom
		s.g.tentative = s.mapSelected(func(sh state.Shape) state.Shape {
			return state.ResizeTo(sh, s.g.resizeFrom, to)
		})
	case BoxSelecting:
		s.g.box = state.BoundsOf(s.g.origin, world)
	case Erasing:
		s.eraseAt(world)
	case Lasering:
		s.laser.Add(world, s.now())
	}
}

// PointerUp commits the gesture driven by the pointer. Releasing one finger
// of a pinch ends the pinch; the remaining finger starts nothing until it is
// pressed again. When other contacts are still down, the pinch restarts from
// the current view on the two lowest remaining ids.
func (s *Session) PointerUp(id int, screen geom.Point) {
	if _, down := s.pointers[id]; !down {
		return
	}
	primary := s.g.mode != Idle && s.g.mode != Pinching && id == s.g.primary
	if primary {
		s.PointerMove(id, screen)
	}
	delete(s.pointers, id)

	switch {
	case s.g.mode == Pinching && len(s.pointers) < 2:
		s.g = gesture{}
		applog.Logger().Debug("gesture end", "mode", Pinching)
	case s.g.mode == Pinching && slices.Contains(s.g.pinchIDs[:], id):
		s.beginPinch()
	case primary:
		s.commit()
	}
}

// PointerCancel abandons the gesture without touching history. A canceled
// pan puts the view back where the pan started.
func (s *Session) PointerCancel(id int) {
	if _, down := s.pointers[id]; !down {
		return
	}
	delete(s.pointers, id)
	s.cancelGesture()
}

func (s *Session) cancelGesture() {
	if s.g.mode != Idle {
		applog.Logger().Debug("gesture canceled", "mode", s.g.mode)
	}
	if s.g.mode == Panning {
		s.view = s.g.startView
	}
	s.g = gesture{}
}

func (s *Session) commit() {
	g := s.g
	s.g = gesture{}
	applog.Logger().Debug("gesture commit", "mode", g.mode)

	switch g.mode {
	case Drawing:
		if isDegenerate(g.shape) {
			return
		}
		sh := state.Normalize(g.shape)
		s.history.Push(append(slices.Clone(s.Committed()), sh))
	case Dragging, Erasing:
		if g.changed {
			s.history.Push(g.tentative)
			s.pruneSelection()
		}
	case Resizing:
		if g.changed {
			s.history.Push(s.normalizeSelected(g.tentative))
		}
	case BoxSelecting:
		s.Select(state.IDs(state.ShapesInBounds(s.Committed(), g.box))...)
	}
}

// mapSelected applies f to every selected shape of the committed snapshot and
// returns the resulting list.
func (s *Session) mapSelected(f func(state.Shape) state.Shape) []state.Shape {
	repl := make(map[string]state.Shape, len(s.selected))
	for _, sh := range s.Committed() {
		if s.IsSelected(sh.Attrs().ID) {
			repl[sh.Attrs().ID] = f(sh)
		}
	}
	return state.ReplaceByID(s.Committed(), repl)
}

func (s *Session) normalizeSelected(shapes []state.Shape) []state.Shape {
	repl := make(map[string]state.Shape, len(s.selected))
	for _, sh := range shapes {
		if s.IsSelected(sh.Attrs().ID) {
			repl[sh.Attrs().ID] = state.Normalize(sh)
		}
	}
	return state.ReplaceByID(shapes, repl)
}

func (s *Session) eraseAt(world geom.Point) {
	e := state.Eraser{
		Center:  world,
		Radius:  s.cfg.EraserRadius / s.view.Scale,
		Spacing: s.cfg.EraserSpacing / s.view.Scale,
	}
	out, changed := state.Erase(s.g.tentative, e)
	if changed {
		s.g.tentative = out
		s.g.changed = true
	}
}
