// Package adapter defines the contract between the tree model and the
// platform layers that publish it to assistive technology.
//
// An Adapter receives tree updates in call order and returns the events
// they produced as QueuedEvents. Events are delivered to the platform by
// Raise, which the caller invokes after releasing any locks of its own.
package adapter

import (
	"fmt"
	"sync"

	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// Factory produces a tree update on demand. Adapters call it for the
// initial tree when they become active and, through UpdateIfActive, only
// when an update would be consumed.
type Factory func() tree.Update

// Adapter publishes a tree to a platform accessibility API.
type Adapter interface {
	// Update applies u and returns the events to raise, or nil when there
	// are none or the adapter is not active.
	Update(u tree.Update) *QueuedEvents
	// UpdateIfActive calls f and applies its result only when the adapter
	// is active.
	UpdateIfActive(f Factory) *QueuedEvents
	// SetRootWindowBounds records the outer and inner bounds of the window
	// hosting the tree, in screen coordinates.
	SetRootWindowBounds(outer, inner types.Rect)
}

// EventKind classifies an Event.
type EventKind uint8

const (
	EventTreeChanged EventKind = iota + 1
	EventNodeAdded
	EventNodeChanged
	EventNodeRemoved
	EventFocusChanged
)

func (k EventKind) String() string {
	switch k {
	case EventTreeChanged:
		return "tree-changed"
	case EventNodeAdded:
		return "node-added"
	case EventNodeChanged:
		return "node-changed"
	case EventNodeRemoved:
		return "node-removed"
	case EventFocusChanged:
		return "focus-changed"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one notification produced by applying an update.
type Event struct {
	Kind EventKind
	Node types.NodeID // zero for tree-level events
}

func (e Event) String() string {
	if e.Node.IsZero() {
		return e.Kind.String()
	}
	return e.Kind.String() + " " + e.Node.String()
}

// QueuedEvents holds the events of one update until they are raised.
type QueuedEvents struct {
	once   sync.Once
	events []Event
	sink   func([]Event)
}

// NewQueuedEvents queues events for delivery to sink. It returns nil when
// there is nothing to raise.
func NewQueuedEvents(events []Event, sink func([]Event)) *QueuedEvents {
	if len(events) == 0 {
		return nil
	}
	return &QueuedEvents{events: events, sink: sink}
}

// Events returns the queued events.
func (q *QueuedEvents) Events() []Event {
	if q == nil {
		return nil
	}
	return q.events
}

// Raise delivers the events. Only the first call has an effect, and a nil
// receiver is allowed.
func (q *QueuedEvents) Raise() {
	if q == nil {
		return
	}
	q.once.Do(func() {
		if q.sink != nil {
			q.sink(q.events)
		}
	})
}
