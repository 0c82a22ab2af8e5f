package node

import (
	"fmt"
	"slices"
	"strings"

	"github.com/joshuapare/axkit/pkg/types"
)

// PropertyID numbers a registry entry. IDs follow registration order and
// are stable across releases; the snapshot format and the boundary address
// properties by ID.
type PropertyID uint8

// Shape is the codec shape of a property. Adapters interpret the boundary
// encoding by shape, so a property never changes shape.
type Shape uint8

const (
	ShapeInvalid        Shape = iota
	ShapeFlag                 // present-or-absent boolean, stored in a bitset
	ShapeNodeID               // optional node id
	ShapeNodeIDVec            // vector of node ids, plain slice, with push
	ShapeString               // optional nul-terminated string
	ShapeF64                  // optional double
	ShapeIndex                // optional usize
	ShapeColor                // optional packed RGBA u32
	ShapeTextDecoration       // optional TextDecoration
	ShapeLengths              // vector of u8 run lengths, plain slice
	ShapeCoords               // optional vector of f32 coordinates
	ShapeBool                 // optional bool (tri-state: absent/false/true)
	ShapeEnum                 // optional member of a closed enumeration
	ShapeAffine               // optional transform
	ShapeRect                 // optional bounds
	ShapeTextSelection        // optional text selection
	ShapeCustomActions        // vector of custom actions, converted array, with push
)

var shapeNames = [...]string{
	"invalid", "flag", "node_id", "node_ids", "string", "f64", "index", "color",
	"text_decoration", "lengths", "coords", "bool", "enum", "affine", "rect",
	"text_selection", "custom_actions",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// IsVector reports whether the shape supports push.
func (s Shape) IsVector() bool {
	return s == ShapeNodeIDVec || s == ShapeCustomActions
}

// EnumInfo describes the enumeration behind a ShapeEnum property.
type EnumInfo struct {
	// Type is the Go type name, e.g. "DefaultActionVerb".
	Type string
	// Names lists the member names in wire order.
	Names []string

	box   func(uint8) any
	unbox func(any) (uint8, bool)
}

// Box converts a wire value into the typed enum, rejecting undefined members.
func (e *EnumInfo) Box(v uint8) (any, bool) {
	if int(v) >= len(e.Names) {
		return nil, false
	}
	return e.box(v), true
}

// Unbox converts a typed enum value back into its wire value.
func (e *EnumInfo) Unbox(v any) (uint8, bool) { return e.unbox(v) }

// Descriptor is one registry entry.
type Descriptor struct {
	ID    PropertyID
	Name  string // canonical snake_case name, e.g. "default_action_verb"
	Shape Shape

	// Getter, Setter, Pusher and Clearer are the operation names used by the
	// host: node_<Getter>, node_builder_<Setter>...
	// Pusher is empty for non-vector shapes.
	Getter, Setter, Pusher, Clearer string

	// Enum is set for ShapeEnum only.
	Enum *EnumInfo

	slot int // flag bit for ShapeFlag, value slot otherwise
}

func (d *Descriptor) String() string { return d.Name + ":" + d.Shape.String() }

// -----------------------------------------------------------------------------
// Registry
// -----------------------------------------------------------------------------

// valueSlots is the number of non-flag properties; flags live in a uint64.
const (
	valueSlots = 95
	flagSlots  = 30
)

var (
	registry  []*Descriptor
	byName    = map[string]*Descriptor{}
	nextFlag  int
	nextValue int
)

func register(shape Shape, name, getter, setter, pusher, clearer string) *Descriptor {
	d := &Descriptor{
		ID:      PropertyID(len(registry)),
		Name:    name,
		Shape:   shape,
		Getter:  getter,
		Setter:  setter,
		Pusher:  pusher,
		Clearer: clearer,
	}
	if shape == ShapeFlag {
		d.slot = nextFlag
		nextFlag++
		if nextFlag > flagSlots {
			panic("node: too many flag properties")
		}
	} else {
		d.slot = nextValue
		nextValue++
		if nextValue > valueSlots {
			panic("node: too many value properties")
		}
	}
	registry = append(registry, d)
	byName[name] = d
	for _, alias := range []string{getter, setter, pusher, clearer} {
		if alias != "" {
			if _, taken := byName[alias]; !taken {
				byName[alias] = d
			}
		}
	}
	return d
}

// simple registers a property whose operations follow the plain naming
// convention name / set_name / clear_name.
func simple(shape Shape, name string) *Descriptor {
	return register(shape, name, name, "set_"+name, "", "clear_"+name)
}

// Properties returns every registry entry in ID order. The slice is shared;
// callers must not modify it.
func Properties() []*Descriptor { return registry }

// Lookup returns the entry with the given ID.
func Lookup(id PropertyID) (*Descriptor, bool) {
	if int(id) >= len(registry) {
		return nil, false
	}
	return registry[id], true
}

// LookupName finds an entry by canonical name or by any of its operation
// names ("hidden", "is_hidden", "set_hidden", "push_child"...). Matching
// is case-insensitive.
func LookupName(name string) (*Descriptor, bool) {
	d, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// -----------------------------------------------------------------------------
// Typed property keys
// -----------------------------------------------------------------------------

// Reader is implemented by *Node and *Builder: everything that can be read
// through a property key.
type Reader interface {
	Role() types.Role
	Actions() types.ActionSet
	SupportsAction(types.Action) bool

	flag(bit int) bool
	value(slot int) (any, bool)
}

// Flag is a boolean property that is either set or absent.
type Flag struct{ d *Descriptor }

// Descriptor returns the registry entry of f.
func (f Flag) Descriptor() *Descriptor { return f.d }

// Get reports whether the flag is set.
func (f Flag) Get(r Reader) bool { return r.flag(f.d.slot) }

// Set sets the flag.
func (f Flag) Set(b *Builder) { b.setFlag(f.d.slot, true) }

// Clear removes the flag.
func (f Flag) Clear(b *Builder) { b.setFlag(f.d.slot, false) }

// Property is an optional single value.
type Property[T any] struct{ d *Descriptor }

// Descriptor returns the registry entry of p.
func (p Property[T]) Descriptor() *Descriptor { return p.d }

// Get returns the value and whether it is present.
func (p Property[T]) Get(r Reader) (T, bool) {
	v, ok := r.value(p.d.slot)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Set replaces the value. Setting an id-valued property to the zero id
// clears it, and undefined enum members are ignored.
func (p Property[T]) Set(b *Builder, v T) {
	_ = b.setValue(p.d, v)
}

// Clear removes the value.
func (p Property[T]) Clear(b *Builder) { b.clearValue(p.d.slot) }

// Slice is a vector property without push: length runs.
type Slice[T any] struct{ d *Descriptor }

// Descriptor returns the registry entry of s.
func (s Slice[T]) Descriptor() *Descriptor { return s.d }

// Get returns a copy of the elements, or nil when unset.
func (s Slice[T]) Get(r Reader) []T {
	v, ok := r.value(s.d.slot)
	if !ok {
		return nil
	}
	t, _ := v.([]T)
	return slices.Clone(t)
}

// Set replaces the whole vector with a copy of values.
func (s Slice[T]) Set(b *Builder, values []T) {
	_ = b.setValue(s.d, values)
}

// Clear removes the vector.
func (s Slice[T]) Clear(b *Builder) { b.clearValue(s.d.slot) }

// Vec is a vector property with push: id references and custom actions.
type Vec[T any] struct{ Slice[T] }

// Push appends one element, creating the vector if needed.
func (v Vec[T]) Push(b *Builder, item T) {
	_ = b.pushValue(v.d, item)
}

// OptSlice is a vector that distinguishes absent from empty: coordinates.
type OptSlice[T any] struct{ d *Descriptor }

// Descriptor returns the registry entry of s.
func (s OptSlice[T]) Descriptor() *Descriptor { return s.d }

// Get returns a copy of the elements and whether the vector is present.
func (s OptSlice[T]) Get(r Reader) ([]T, bool) {
	v, ok := r.value(s.d.slot)
	if !ok {
		return nil, false
	}
	t, _ := v.([]T)
	return slices.Clone(t), true
}

// Set replaces the vector with a copy of values. An empty or nil values
// still marks the vector present.
func (s OptSlice[T]) Set(b *Builder, values []T) {
	_ = b.setValue(s.d, values)
}

// Clear removes the vector.
func (s OptSlice[T]) Clear(b *Builder) { b.clearValue(s.d.slot) }

func cloneNonNil[T any](v []T) []T {
	out := make([]T, len(v))
	copy(out, v)
	return out
}

// -----------------------------------------------------------------------------
// Constructors used by the registry table
// -----------------------------------------------------------------------------

func newFlag(getter, setter, clearer string) Flag {
	name := strings.TrimPrefix(setter, "set_")
	return Flag{register(ShapeFlag, name, getter, setter, "", clearer)}
}

func newValue[T any](shape Shape, name string) Property[T] {
	return Property[T]{simple(shape, name)}
}

func newVec[T any](shape Shape, name, pusher string) Vec[T] {
	return Vec[T]{Slice[T]{register(shape, name, name, "set_"+name, pusher, "clear_"+name)}}
}

func newEnum[E types.EnumValue](name string) Property[E] {
	d := simple(ShapeEnum, name)
	var zero E
	typ := fmt.Sprintf("%T", zero)
	if i := strings.LastIndexByte(typ, '.'); i >= 0 {
		typ = typ[i+1:]
	}
	d.Enum = &EnumInfo{
		Type:  typ,
		Names: types.EnumNames[E](),
		box:   func(v uint8) any { return E(v) },
		unbox: func(v any) (uint8, bool) {
			e, ok := v.(E)
			return uint8(e), ok && e.Valid()
		},
	}
	return Property[E]{d}
}
