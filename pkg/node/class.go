package node

import (
	"sync"

	"github.com/joshuapare/axkit/pkg/types"
)

// Class is the part of a node shared between nodes with the same role,
// actions and set of present properties.
type Class struct {
	role    types.Role
	actions types.ActionSet
	layout  [valueSlots]uint8
}

// Role returns the role shared by every node of c.
func (c *Class) Role() types.Role { return c.role }

// Actions returns the action set shared by every node of c.
func (c *Class) Actions() types.ActionSet { return c.actions }

// Properties lists the non-flag properties present on nodes of c, in ID
// order.
func (c *Class) Properties() []*Descriptor {
	var out []*Descriptor
	for _, d := range registry {
		if d.Shape != ShapeFlag && c.layout[d.slot] != 0 {
			out = append(out, d)
		}
	}
	return out
}

type classKey struct {
	role    types.Role
	actions types.ActionSet
	layout  [valueSlots]uint8
}

// ClassSet interns node classes. Nodes built against the same set share
// their Class when role, actions and property layout match. A ClassSet is
// safe for concurrent use.
type ClassSet struct {
	mu       sync.Mutex
	classes  map[classKey]*Class
	released bool
}

// NewClassSet returns an empty set.
func NewClassSet() *ClassSet {
	return &ClassSet{classes: make(map[classKey]*Class)}
}

// Len returns the number of distinct classes interned so far.
func (s *ClassSet) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.classes)
}

// Release drops the interning table. Nodes already built keep their
// classes; later builds against s get private classes.
func (s *ClassSet) Release() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes = nil
	s.released = true
}

// Released reports whether Release has been called.
func (s *ClassSet) Released() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

func (s *ClassSet) intern(role types.Role, actions types.ActionSet, layout [valueSlots]uint8) *Class {
	if s == nil {
		return &Class{role: role, actions: actions, layout: layout}
	}
	key := classKey{role: role, actions: actions, layout: layout}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return &Class{role: role, actions: actions, layout: layout}
	}
	if c, ok := s.classes[key]; ok {
		return c
	}
	c := &Class{role: role, actions: actions, layout: layout}
	s.classes[key] = c
	return c
}
