package boundary

import (
	"context"

	"github.com/joshuapare/axkit/pkg/action"
	"github.com/joshuapare/axkit/pkg/adapter"
	"github.com/joshuapare/axkit/pkg/adapter/memory"
	"github.com/joshuapare/axkit/pkg/codec"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// ActionCallback receives one action request. The request, and the Value
// string it may name, are valid only for the duration of the call.
type ActionCallback func(req codec.ActionRequest, userdata uintptr)

// TreeUpdateFactory returns a tree update handle for the initial tree of
// an adapter, or for UpdateIfActive.
type TreeUpdateFactory func(userdata uintptr) codec.Ptr

// callbackHandler adapts a host callback to action.Handler.
type callbackHandler struct {
	b        *Boundary
	cb       ActionCallback
	userdata uintptr
}

func (h *callbackHandler) Do(r action.Request) {
	var owned codec.Ptr
	req := codec.FromRequest(r, func(s string) codec.Ptr {
		p, err := h.b.outString(s)
		if err != nil {
			h.b.log.Debug("action value dropped", "error", err)
		}
		owned = p
		return p
	})
	// The Value string is released after the callback. A callback that
	// already released it leaves a stale handle, which Remove ignores.
	defer func() {
		if owned != 0 {
			_, _ = h.b.buffers.Remove(hnd(owned))
		}
	}()
	h.cb(req, h.userdata)
}

// HandlerNew wraps a callback and its userdata as an action handler.
func (b *Boundary) HandlerNew(cb ActionCallback, userdata uintptr) codec.Ptr {
	return call(b, "action_handler_new", func() (codec.Ptr, error) {
		if cb == nil {
			return 0, types.ErrInvalidArgument
		}
		return ptr(b.handlers.Insert(&callbackHandler{b: b, cb: cb, userdata: userdata})), nil
	})
}

// HandlerFree releases a handler that was not given to an adapter.
func (b *Boundary) HandlerFree(p codec.Ptr) {
	do(b, "action_handler_free", func() error {
		_, err := b.handlers.Remove(hnd(p))
		return err
	})
}

// AdapterNew creates an inactive adapter. The handler handle is consumed.
// Any failure yields a null handle.
func (b *Boundary) AdapterNew(factory TreeUpdateFactory, userdata uintptr, handler codec.Ptr) codec.Ptr {
	return call(b, "adapter_new", func() (codec.Ptr, error) {
		if factory == nil {
			return 0, memory.ErrNoFactory
		}
		h, err := b.handlers.Remove(hnd(handler))
		if err != nil {
			return 0, err
		}
		initial := func() tree.Update {
			u, err := b.takeUpdate(factory(userdata))
			if err != nil {
				b.log.Debug("initial tree unavailable", "error", err)
			}
			return u
		}
		a, err := memory.New(initial, h,
			memory.WithLogger(b.log),
			memory.WithTracerProvider(b.opts.tracer),
			memory.WithLimits(b.opts.limits),
		)
		if err != nil {
			return 0, err
		}
		return ptr(b.adapters.Insert(a)), nil
	})
}

func (b *Boundary) queue(q *adapter.QueuedEvents) codec.Ptr {
	if q == nil {
		return 0
	}
	return ptr(b.events.Insert(q))
}

// AdapterActivate activates an adapter, pulling its initial tree from the
// factory. The returned events are raised with QueuedEventsRaise.
func (b *Boundary) AdapterActivate(p codec.Ptr) codec.Ptr {
	return call(b, "adapter_activate", func() (codec.Ptr, error) {
		a, err := b.adapters.Get(hnd(p))
		if err != nil {
			return 0, err
		}
		q, err := a.Activate()
		if err != nil {
			return 0, err
		}
		return b.queue(q), nil
	})
}

// AdapterUpdate delivers an update. The update handle is consumed even
// when the adapter handle is invalid. A null result means nothing to
// raise.
func (b *Boundary) AdapterUpdate(p, update codec.Ptr) codec.Ptr {
	return call(b, "adapter_update", func() (codec.Ptr, error) {
		u, uerr := b.takeUpdate(update)
		a, err := b.adapters.Get(hnd(p))
		if err != nil {
			return 0, err
		}
		if uerr != nil {
			return 0, uerr
		}
		return b.queue(a.Update(u)), nil
	})
}

// AdapterUpdateIfActive calls factory only when the adapter is active.
func (b *Boundary) AdapterUpdateIfActive(p codec.Ptr, factory TreeUpdateFactory, userdata uintptr) codec.Ptr {
	return call(b, "adapter_update_if_active", func() (codec.Ptr, error) {
		if factory == nil {
			return 0, types.ErrInvalidArgument
		}
		a, err := b.adapters.Get(hnd(p))
		if err != nil {
			return 0, err
		}
		return b.queue(a.UpdateIfActive(func() tree.Update {
			u, err := b.takeUpdate(factory(userdata))
			if err != nil {
				b.log.Debug("update unavailable", "error", err)
			}
			return u
		})), nil
	})
}

// AdapterSetRootWindowBounds records the bounds of the host window.
func (b *Boundary) AdapterSetRootWindowBounds(p codec.Ptr, outer, inner types.Rect) {
	do(b, "adapter_set_root_window_bounds", func() error {
		a, err := b.adapters.Get(hnd(p))
		if err != nil {
			return err
		}
		a.SetRootWindowBounds(outer, inner)
		return nil
	})
}

// AdapterDo plays the assistive technology: it decodes req and dispatches
// it through the adapter to the handler. It reports whether the request
// reached the handler.
func (b *Boundary) AdapterDo(p codec.Ptr, req codec.ActionRequest) bool {
	return call(b, "adapter_do", func() (bool, error) {
		a, err := b.adapters.Get(hnd(p))
		if err != nil {
			return false, err
		}
		r, err := req.Request(func(s codec.Ptr) (string, bool) {
			str, err := b.inString(s)
			return str, err == nil
		})
		if err != nil {
			return false, err
		}
		if err := a.Do(context.Background(), r); err != nil {
			return false, err
		}
		return true, nil
	})
}

// AdapterFree releases an adapter and its handler.
func (b *Boundary) AdapterFree(p codec.Ptr) {
	do(b, "adapter_free", func() error {
		_, err := b.adapters.Remove(hnd(p))
		return err
	})
}

// QueuedEventsLen returns the number of queued events.
func (b *Boundary) QueuedEventsLen(p codec.Ptr) int {
	return call(b, "queued_events_len", func() (int, error) {
		q, err := b.events.Get(hnd(p))
		if err != nil {
			return 0, err
		}
		return len(q.Events()), nil
	})
}

// QueuedEventsRaise delivers the events and consumes the handle.
func (b *Boundary) QueuedEventsRaise(p codec.Ptr) {
	do(b, "queued_events_raise", func() error {
		q, err := b.events.Remove(hnd(p))
		if err != nil {
			return err
		}
		q.Raise()
		return nil
	})
}

// QueuedEventsFree drops the events without raising them.
func (b *Boundary) QueuedEventsFree(p codec.Ptr) {
	do(b, "queued_events_free", func() error {
		_, err := b.events.Remove(hnd(p))
		return err
	})
}
