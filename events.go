package dotgrid

import "image"

// EditKind identifies the operation that produced an edit event.
type EditKind int

// Edit kinds reported through the event queue.
const (
	EditStamp EditKind = iota
	EditStroke
	EditLine
	EditRectangle
	EditEllipse
	EditFill
	EditQuantize
)

// String returns the edit kind name.
func (k EditKind) String() string {
	switch k {
	case EditStamp:
		return "stamp"
	case EditStroke:
		return "stroke"
	case EditLine:
		return "line"
	case EditRectangle:
		return "rectangle"
	case EditEllipse:
		return "ellipse"
	case EditFill:
		return "fill"
	case EditQuantize:
		return "quantize"
	default:
		return "unknown"
	}
}

// EditEvent describes a completed edit: what kind of operation ran and
// the buffer region it touched. Region is empty for edits that wrote
// nothing and for whole-buffer operations the host should treat as
// fully dirty (quantization).
type EditEvent struct {
	Kind   EditKind
	Region image.Rectangle
}

// EventQueue is a bounded FIFO of edit events the host polls to drive
// partial texture uploads and repaints. When the queue is full the
// oldest event is dropped; a host that falls behind repaints a larger
// region, it never blocks the editing path.
//
// EventQueue is not synchronized; the single-writer model of the core
// extends to it.
type EventQueue struct {
	limit  int
	events []EditEvent
}

// NewEventQueue creates a queue holding at most limit events.
// A limit below 1 is treated as 1.
func NewEventQueue(limit int) *EventQueue {
	if limit < 1 {
		limit = 1
	}
	return &EventQueue{limit: limit}
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Push appends an event, dropping the oldest one if the queue is full.
func (q *EventQueue) Push(ev EditEvent) {
	if len(q.events) == q.limit {
		copy(q.events, q.events[1:])
		q.events = q.events[:len(q.events)-1]
	}
	q.events = append(q.events, ev)
}

// Poll removes and returns the oldest event. The second return is
// false when the queue is empty.
func (q *EventQueue) Poll() (EditEvent, bool) {
	if len(q.events) == 0 {
		return EditEvent{}, false
	}
	ev := q.events[0]
	copy(q.events, q.events[1:])
	q.events = q.events[:len(q.events)-1]
	return ev, true
}

// Drain removes and returns all queued events in FIFO order.
func (q *EventQueue) Drain() []EditEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]EditEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
