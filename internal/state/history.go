package state

import (
	"slices"

	"localboard/internal/applog"
)

// DefaultHistoryCap is the number of snapshots kept before the oldest is
// dropped.
const DefaultHistoryCap = 50

// Snapshot is one complete shape list in z-order (last is topmost). It must
// not be modified after it is pushed.
type Snapshot []Shape

// History is a linear undo/redo stack of snapshots. Pushing while not at the
// tail discards the redo entries. It is not safe for concurrent use; the board
// drives it from the UI goroutine only.
type History struct {
	stack []Snapshot
	index int
	cap   int
}

// NewHistory returns a history holding initial as its only snapshot.
// A capacity below 1 selects DefaultHistoryCap.
func NewHistory(initial []Shape, capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCap
	}
	return &History{
		stack: []Snapshot{slices.Clone(Snapshot(initial))},
		cap:   capacity,
	}
}

// Push records shapes as the new current snapshot.
func (h *History) Push(shapes []Shape) {
	clear(h.stack[h.index+1:])
	h.stack = append(h.stack[:h.index+1], slices.Clone(Snapshot(shapes)))
	h.index = len(h.stack) - 1

	if len(h.stack) > h.cap {
		evicted := len(h.stack) - h.cap
		h.stack = slices.Clone(h.stack[evicted:])
		h.index -= evicted
		applog.Logger().Debug("history evicted oldest snapshot", "cap", h.cap)
	}
}

// Undo steps back one snapshot and returns it. ok is false at the oldest
// entry.
func (h *History) Undo() (s Snapshot, ok bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.index--
	return h.stack[h.index], true
}

// Redo steps forward one snapshot and returns it. ok is false at the tail.
func (h *History) Redo() (s Snapshot, ok bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.index++
	return h.stack[h.index], true
}

// Current returns the snapshot at the current index.
func (h *History) Current() Snapshot { return h.stack[h.index] }

func (h *History) CanUndo() bool { return h.index > 0 }
func (h *History) CanRedo() bool { return h.index < len(h.stack)-1 }

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.stack) }

// Index returns the position of the current snapshot.
func (h *History) Index() int { return h.index }

// At returns the snapshot at position i.
func (h *History) At(i int) Snapshot { return h.stack[i] }
