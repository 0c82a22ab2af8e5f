package treefile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/types"
)

type rect struct {
	X0 float64 `yaml:"x0" json:"x0"`
	Y0 float64 `yaml:"y0" json:"y0"`
	X1 float64 `yaml:"x1" json:"x1"`
	Y1 float64 `yaml:"y1" json:"y1"`
}

type position struct {
	Node           ID     `yaml:"node" json:"node"`
	CharacterIndex uint64 `yaml:"character_index" json:"character_index"`
}

type selection struct {
	Anchor position `yaml:"anchor" json:"anchor"`
	Focus  position `yaml:"focus" json:"focus"`
}

type customAction struct {
	ID          int32  `yaml:"id" json:"id"`
	Description string `yaml:"description" json:"description"`
}

// decodeValue converts a YAML value into the Go type node.Set expects for
// the shape of d.
func decodeValue(d *node.Descriptor, n *yaml.Node) (any, error) {
	switch d.Shape {
	case node.ShapeFlag, node.ShapeBool:
		var v bool
		err := n.Decode(&v)
		return v, err
	case node.ShapeNodeID:
		var id ID
		err := n.Decode(&id)
		return types.NodeID(id), err
	case node.ShapeNodeIDVec:
		var ids []ID
		if err := n.Decode(&ids); err != nil {
			return nil, err
		}
		out := make([]types.NodeID, len(ids))
		for i, id := range ids {
			out[i] = types.NodeID(id)
		}
		return out, nil
	case node.ShapeString:
		var s string
		err := n.Decode(&s)
		return s, err
	case node.ShapeF64:
		var f float64
		err := n.Decode(&f)
		return f, err
	case node.ShapeIndex:
		var i uint64
		err := n.Decode(&i)
		return i, err
	case node.ShapeColor:
		return parseColor(n.Value)
	case node.ShapeTextDecoration:
		return types.ParseEnum[types.TextDecoration](n.Value)
	case node.ShapeLengths:
		var l []uint8
		err := n.Decode(&l)
		return l, err
	case node.ShapeCoords:
		c := []float32{}
		err := n.Decode(&c)
		return c, err
	case node.ShapeEnum:
		return enumMember(d.Enum, n.Value)
	case node.ShapeAffine:
		var a []float64
		if err := n.Decode(&a); err != nil {
			return nil, err
		}
		if len(a) != len(types.Affine{}) {
			return nil, fmt.Errorf("want 6 coefficients, got %d", len(a))
		}
		return types.Affine(a), nil
	case node.ShapeRect:
		var r rect
		err := n.Decode(&r)
		return types.Rect(r), err
	case node.ShapeTextSelection:
		var s selection
		if err := n.Decode(&s); err != nil {
			return nil, err
		}
		return types.TextSelection{
			Anchor: types.TextPosition{Node: types.NodeID(s.Anchor.Node), CharacterIndex: s.Anchor.CharacterIndex},
			Focus:  types.TextPosition{Node: types.NodeID(s.Focus.Node), CharacterIndex: s.Focus.CharacterIndex},
		}, nil
	case node.ShapeCustomActions:
		var cas []customAction
		if err := n.Decode(&cas); err != nil {
			return nil, err
		}
		out := make([]types.CustomAction, len(cas))
		for i, ca := range cas {
			out[i] = types.CustomAction(ca)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("shape %s", d.Shape)
	}
}

// Value returns the document form of a property value: ids as integers
// (or hex strings past 64 bits), enums and colors by name, geometry as
// keyed mappings. The result marshals to YAML or JSON.
func Value(d *node.Descriptor, v any) any {
	switch t := v.(type) {
	case types.NodeID:
		return ID(t)
	case []types.NodeID:
		out := make([]ID, len(t))
		for i, id := range t {
			out[i] = ID(id)
		}
		return out
	case types.Color:
		return t.String()
	case types.TextDecoration:
		return t.String()
	case types.Affine:
		return t[:]
	case types.Rect:
		return rect(t)
	case types.TextSelection:
		return selection{
			Anchor: position{Node: ID(t.Anchor.Node), CharacterIndex: t.Anchor.CharacterIndex},
			Focus:  position{Node: ID(t.Focus.Node), CharacterIndex: t.Focus.CharacterIndex},
		}
	case []types.CustomAction:
		out := make([]customAction, len(t))
		for i, ca := range t {
			out[i] = customAction(ca)
		}
		return out
	}
	if d.Shape == node.ShapeEnum {
		if raw, ok := d.Enum.Unbox(v); ok {
			return d.Enum.Names[raw]
		}
	}
	return v
}

// parseColor accepts #rrggbbaa, #rrggbb (opaque) or a plain integer.
func parseColor(s string) (types.Color, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", s, err)
		}
		switch len(hex) {
		case 8:
			return types.Color(v), nil
		case 6:
			return types.Color(v<<8 | 0xff), nil
		}
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return types.Color(v), nil
}

func foldName(s string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
}

func enumMember(e *node.EnumInfo, s string) (uint8, error) {
	if e == nil {
		return 0, errors.New("not an enum property")
	}
	want := foldName(s)
	for i, name := range e.Names {
		if foldName(name) == want {
			return uint8(i), nil
		}
	}
	return 0, types.Errorf(types.ErrKindNotFound, "unknown enum member", "%s has no member %q", e.Type, s)
}
