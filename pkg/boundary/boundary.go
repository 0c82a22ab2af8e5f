package boundary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/joshuapare/axkit/internal/handle"
	"github.com/joshuapare/axkit/pkg/adapter"
	"github.com/joshuapare/axkit/pkg/adapter/memory"
	"github.com/joshuapare/axkit/pkg/codec"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// Handle kinds. The kind is stored in the top byte of every handle.
const (
	KindBuilder handle.Kind = iota + 1
	KindNode
	KindClassSet
	KindBuffer
	KindTreeUpdate
	KindHandler
	KindAdapter
	KindEvents
)

var kindNames = map[handle.Kind]string{
	KindBuilder:    "builder",
	KindNode:       "node",
	KindClassSet:   "class_set",
	KindBuffer:     "buffer",
	KindTreeUpdate: "tree_update",
	KindHandler:    "handler",
	KindAdapter:    "adapter",
	KindEvents:     "queued_events",
}

// ErrFault marks a failure caught by the guard around an operation.
var ErrFault = errors.New("boundary: fault")

// OpError records the operation that failed.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string { return "boundary: " + e.Op + ": " + e.Err.Error() }

func (e *OpError) Unwrap() error { return e.Err }

// Boundary owns every handle issued to the host. It is safe for concurrent
// use; the objects behind builder handles are not, so a builder must be
// driven from one thread at a time.
type Boundary struct {
	opts options
	log  *slog.Logger

	builders *handle.Table[*node.Builder]
	nodes    *handle.Table[*node.Node]
	classes  *handle.Table[*node.ClassSet]
	buffers  *handle.Table[*buffer]
	updates  *handle.Table[*tree.Update]
	handlers *handle.Table[*callbackHandler]
	adapters *handle.Table[*memory.Adapter]
	events   *handle.Table[*adapter.QueuedEvents]

	metrics *instruments

	mu      sync.Mutex
	lastErr error
}

// New returns an empty boundary.
func New(opts ...Option) *Boundary {
	o := buildOptions(opts)
	b := &Boundary{
		opts:     o,
		log:      o.logger,
		builders: handle.NewTable[*node.Builder](KindBuilder),
		nodes:    handle.NewTable[*node.Node](KindNode),
		classes:  handle.NewTable[*node.ClassSet](KindClassSet),
		buffers:  handle.NewTable[*buffer](KindBuffer),
		updates:  handle.NewTable[*tree.Update](KindTreeUpdate),
		handlers: handle.NewTable[*callbackHandler](KindHandler),
		adapters: handle.NewTable[*memory.Adapter](KindAdapter),
		events:   handle.NewTable[*adapter.QueuedEvents](KindEvents),
	}
	b.metrics = newInstruments(b, o.meter)
	return b
}

// Close releases every outstanding handle. Handles issued before Close are
// stale afterwards.
func (b *Boundary) Close() {
	if b == nil {
		return
	}
	b.builders.Drain()
	b.nodes.Drain()
	for _, cs := range b.classes.Drain() {
		cs.Release()
	}
	b.buffers.Drain()
	b.updates.Drain()
	b.handlers.Drain()
	b.adapters.Drain()
	b.events.Drain()
	b.metrics.close()
}

// Live returns the number of live handles per kind name.
func (b *Boundary) Live() map[string]int {
	return map[string]int{
		kindNames[KindBuilder]:    b.builders.Len(),
		kindNames[KindNode]:       b.nodes.Len(),
		kindNames[KindClassSet]:   b.classes.Len(),
		kindNames[KindBuffer]:     b.buffers.Len(),
		kindNames[KindTreeUpdate]: b.updates.Len(),
		kindNames[KindHandler]:    b.handlers.Len(),
		kindNames[KindAdapter]:    b.adapters.Len(),
		kindNames[KindEvents]:     b.events.Len(),
	}
}

// LastError returns the most recent failure, or nil.
func (b *Boundary) LastError() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// ClearLastError forgets the most recent failure.
func (b *Boundary) ClearLastError() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastErr = nil
}

func (b *Boundary) fail(op string, err error, fault bool) {
	b.mu.Lock()
	b.lastErr = &OpError{Op: op, Err: err}
	b.mu.Unlock()
	b.metrics.fault(op)
	if fault {
		b.log.Warn("boundary fault", "op", op, "error", err)
		return
	}
	b.log.Debug("boundary call failed", "op", op, "error", err)
}

// call runs fn under the guard. A returned error or a panic yields the
// zero T.
func call[T any](b *Boundary, op string, fn func() (T, error)) (out T) {
	if b == nil {
		return out
	}
	b.metrics.call(op)
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out = zero
			b.fail(op, fmt.Errorf("%w: %v", ErrFault, r), true)
		}
	}()
	v, err := fn()
	if err != nil {
		b.fail(op, err, false)
		var zero T
		return zero
	}
	return v
}

// do is call for operations without a result.
func do(b *Boundary, op string, fn func() error) {
	call(b, op, func() (struct{}, error) { return struct{}{}, fn() })
}

func ptr(h handle.Handle) codec.Ptr { return codec.Ptr(h) }

func hnd(p codec.Ptr) handle.Handle { return handle.Handle(p) }

type instruments struct {
	calls  metric.Int64Counter
	faults metric.Int64Counter
	reg    metric.Registration
}

const instrumentationName = "github.com/joshuapare/axkit/pkg/boundary"

// newInstruments registers the boundary metrics. Instruments that fail to
// register are left nil and skipped.
func newInstruments(b *Boundary, mp metric.MeterProvider) *instruments {
	m := mp.Meter(instrumentationName)
	ins := &instruments{}
	var err error
	if ins.calls, err = m.Int64Counter("axkit.boundary.calls",
		metric.WithDescription("Boundary operations invoked"),
		metric.WithUnit("{call}"),
	); err != nil {
		b.log.Warn("metric registration failed", "instrument", "axkit.boundary.calls", "error", err)
	}
	if ins.faults, err = m.Int64Counter("axkit.boundary.failures",
		metric.WithDescription("Boundary operations that returned an inert default"),
		metric.WithUnit("{call}"),
	); err != nil {
		b.log.Warn("metric registration failed", "instrument", "axkit.boundary.failures", "error", err)
	}
	live, err := m.Int64ObservableGauge("axkit.boundary.handles",
		metric.WithDescription("Live handles by kind"),
		metric.WithUnit("{handle}"),
	)
	if err != nil {
		b.log.Warn("metric registration failed", "instrument", "axkit.boundary.handles", "error", err)
		return ins
	}
	ins.reg, err = m.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		for kind, n := range b.Live() {
			o.ObserveInt64(live, int64(n), metric.WithAttributes(attribute.String("kind", kind)))
		}
		return nil
	}, live)
	if err != nil {
		b.log.Warn("metric callback registration failed", "error", err)
	}
	return ins
}

func (ins *instruments) call(op string) {
	if ins.calls != nil {
		ins.calls.Add(context.Background(), 1, metric.WithAttributes(attribute.String("op", op)))
	}
}

func (ins *instruments) fault(op string) {
	if ins.faults != nil {
		ins.faults.Add(context.Background(), 1, metric.WithAttributes(attribute.String("op", op)))
	}
}

func (ins *instruments) close() {
	if ins.reg != nil {
		_ = ins.reg.Unregister()
		ins.reg = nil
	}
}

func kindName(k handle.Kind) string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// errKind reports a handle of the wrong kind with both kind names.
func errKind(p codec.Ptr, want handle.Kind) error {
	return types.Errorf(types.ErrKindType, "handle", "%#x is a %s handle, want %s",
		uint64(p), kindName(hnd(p).Kind()), kindName(want))
}
