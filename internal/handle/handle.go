// Package handle implements generation-checked handle tables.
//
// A Handle packs a slot index, the generation of that slot and a kind tag
// into one uint64:
//
//	bits  0..31  slot index + 1 (so the zero Handle is null)
//	bits 32..55  generation
//	bits 56..63  kind
//
// Removing a value bumps the generation of its slot, so a stale handle is
// detected instead of aliasing whatever reuses the slot. The kind tag
// catches a handle of one table presented to another.
package handle

import (
	"sync"

	"github.com/joshuapare/axkit/pkg/types"
)

// Handle is an opaque reference to a table entry. Zero is null.
type Handle uint64

// Kind tags the table a handle belongs to.
type Kind uint8

const (
	indexBits = 32
	genBits   = 24
	genMask   = 1<<genBits - 1
)

func pack(kind Kind, index, gen uint32) Handle {
	return Handle(uint64(kind)<<(indexBits+genBits) | uint64(gen&genMask)<<indexBits | uint64(index+1))
}

// IsNull reports whether h is the zero handle.
func (h Handle) IsNull() bool { return h == 0 }

// Kind returns the kind tag of h.
func (h Handle) Kind() Kind { return Kind(h >> (indexBits + genBits)) }

func (h Handle) index() (uint32, bool) {
	i := uint32(h)
	return i - 1, i != 0
}

func (h Handle) generation() uint32 { return uint32(h>>indexBits) & genMask }

type slot[T any] struct {
	gen  uint32
	used bool
	val  T
}

// Table maps handles to values of type T. It is safe for concurrent use.
type Table[T any] struct {
	mu    sync.Mutex
	kind  Kind
	slots []slot[T]
	free  []uint32
	live  int
}

// NewTable returns an empty table whose handles carry kind.
func NewTable[T any](kind Kind) *Table[T] {
	return &Table[T]{kind: kind}
}

// Insert stores v and returns its handle.
func (t *Table[T]) Insert(v T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot[T]{gen: 1})
	}
	s := &t.slots[idx]
	s.used = true
	s.val = v
	t.live++
	return pack(t.kind, idx, s.gen)
}

// lookup returns the slot of h. The caller holds t.mu.
func (t *Table[T]) lookup(h Handle) (*slot[T], error) {
	if h.IsNull() {
		return nil, types.ErrInvalidArgument
	}
	if h.Kind() != t.kind {
		return nil, types.ErrTypeMismatch
	}
	idx, _ := h.index()
	if int(idx) >= len(t.slots) {
		return nil, types.ErrReleased
	}
	s := &t.slots[idx]
	if !s.used || s.gen != h.generation() {
		return nil, types.ErrReleased
	}
	return s, nil
}

// Get returns the value of h.
func (t *Table[T]) Get(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.val, nil
}

// Valid reports whether h refers to a live entry of t.
func (t *Table[T]) Valid(h Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := t.lookup(h)
	return err == nil
}

// Remove deletes h and returns its value. The handle, and every copy of
// it, is invalid afterwards.
func (t *Table[T]) Remove(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	s, err := t.lookup(h)
	if err != nil {
		return zero, err
	}
	v := s.val
	s.val = zero
	s.used = false
	s.gen = (s.gen + 1) & genMask
	if s.gen == 0 {
		s.gen = 1
	}
	idx, _ := h.index()
	t.free = append(t.free, idx)
	t.live--
	return v, nil
}

// Len returns the number of live entries.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
}

// Cap returns the number of slots ever allocated. It only grows when more
// entries are live at once than ever before.
func (t *Table[T]) Cap() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.slots)
}

// Drain removes every live entry and returns the values.
func (t *Table[T]) Drain() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []T
	var zero T
	for i := range t.slots {
		s := &t.slots[i]
		if !s.used {
			continue
		}
		out = append(out, s.val)
		s.val = zero
		s.used = false
		s.gen = (s.gen + 1) & genMask
		if s.gen == 0 {
			s.gen = 1
		}
		t.free = append(t.free, uint32(i))
	}
	t.live = 0
	return out
}
