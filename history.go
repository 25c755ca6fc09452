package dotgrid

// History is a bounded undo/redo list of pixmap snapshots.
//
// Push records the buffer state after an edit; Undo and Redo walk the
// recorded states. Pushing after an undo discards the redo tail, and
// the oldest snapshot is evicted once the cap is reached. Snapshots are
// deep copies, so the host may keep mutating its working buffer.
//
// History is a host-side convenience; the rasterizer and quantizer do
// not use it.
type History struct {
	limit     int
	snapshots []*Pixmap
	pos       int // index just past the current state
}

// NewHistory creates a history holding at most limit snapshots.
// A limit below 1 is treated as 1.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit}
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Push records a snapshot of the pixmap as the newest state, dropping
// any redoable states and, if necessary, the oldest snapshot.
func (h *History) Push(p *Pixmap) {
	h.snapshots = append(h.snapshots[:h.pos], p.Clone())
	if len(h.snapshots) > h.limit {
		h.snapshots = h.snapshots[1:]
	}
	h.pos = len(h.snapshots)
}

// CanUndo reports whether a state older than the current one exists.
func (h *History) CanUndo() bool {
	return h.pos > 1
}

// CanRedo reports whether an undone state can be restored.
func (h *History) CanRedo() bool {
	return h.pos < len(h.snapshots)
}

// Undo steps back one state and returns a copy of it. The second
// return is false when there is nothing to undo.
func (h *History) Undo() (*Pixmap, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.pos--
	return h.snapshots[h.pos-1].Clone(), true
}

// Redo re-applies the most recently undone state and returns a copy of
// it. The second return is false when there is nothing to redo.
func (h *History) Redo() (*Pixmap, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.pos++
	return h.snapshots[h.pos-1].Clone(), true
}
