package format

import (
	"errors"
	"testing"

	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

func id(v uint64) types.NodeID { return types.NewNodeID(v) }

func sampleUpdate() tree.Update {
	root := node.NewBuilder(types.RoleWindow)
	node.Children.Set(root, []types.NodeID{id(2), id(3)})
	node.Name.Set(root, "Hello world")
	node.Bounds.Set(root, types.Rect{X1: 640, Y1: 480})

	field := node.NewBuilder(types.RoleTextField)
	field.AddAction(types.ActionFocus)
	node.Value.Set(field, "héllo")
	node.Editable.Set(field)
	node.CheckedState.Set(field, types.CheckedStateMixed)
	node.Expanded.Set(field, false)
	node.CharacterLengths.Set(field, []uint8{1, 2, 1, 1, 1})
	node.CharacterPositions.Set(field, []float32{})
	node.ColorValue.Set(field, types.RGBA(1, 2, 3, 4))
	node.Transform.Set(field, types.ScaleAffine(2))
	node.TextSelection.Set(field, types.TextSelection{
		Anchor: types.TextPosition{Node: id(3), CharacterIndex: 1},
		Focus:  types.TextPosition{Node: id(3), CharacterIndex: 4},
	})
	node.CustomActions.Push(field, types.CustomAction{ID: -7, Description: "Reply"})
	node.CustomActions.Push(field, types.CustomAction{ID: 9})

	label := node.NewBuilder(types.RoleLabelText)
	node.NumericValue.Set(label, 0.5)
	node.ActiveDescendant.Set(label, types.NodeIDFromHalves(1, 2))

	var u tree.Update
	u.Push(id(1), root.Build(nil))
	u.Push(id(2), field.Build(nil))
	u.Push(id(3), label.Build(nil))
	u.SetTree(tree.Tree{Root: id(1), RootScroller: id(2)})
	u.Focus = id(2)
	return u
}

func TestEncodeDecode(t *testing.T) {
	u := sampleUpdate()
	b, err := Encode(u)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(b)%RecordAlignment != 0 {
		t.Fatalf("snapshot size %d not aligned", len(b))
	}

	got, err := Decode(b, node.NewClassSet(), types.DefaultLimits())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Len() != u.Len() {
		t.Fatalf("decoded %d nodes, want %d", got.Len(), u.Len())
	}
	for i, p := range u.Nodes {
		q := got.Nodes[i]
		if q.ID != p.ID {
			t.Fatalf("pair %d: id %s, want %s", i, q.ID, p.ID)
		}
		if !node.Equal(p.Node, q.Node) {
			t.Fatalf("pair %d: node differs after decode", i)
		}
	}
	if got.Tree == nil || *got.Tree != *u.Tree {
		t.Fatalf("tree = %v, want %v", got.Tree, u.Tree)
	}
	if got.Focus != id(2) {
		t.Fatalf("focus = %s, want 2", got.Focus)
	}

	// Empty coordinates stay present.
	pos, ok := node.CharacterPositions.Get(got.Nodes[1].Node)
	if !ok || len(pos) != 0 {
		t.Fatalf("character_positions = %v, %v; want present and empty", pos, ok)
	}
}

func TestEncode_NoTreeNoFocus(t *testing.T) {
	var u tree.Update
	u.Push(id(5), node.NewBuilder(types.RoleButton).Build(nil))
	b, err := Encode(u)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	h, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.Flags != 0 || h.NodeCount != 1 || h.TotalSize != uint64(len(b)) {
		t.Fatalf("header = %+v", h)
	}
	got, err := Decode(b, nil, types.DefaultLimits())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Tree != nil || !got.Focus.IsZero() {
		t.Fatalf("decoded tree %v focus %s, want none", got.Tree, got.Focus)
	}
}

func TestEncode_KeepsDuplicates(t *testing.T) {
	var u tree.Update
	a := node.NewBuilder(types.RoleButton)
	node.Name.Set(a, "first")
	c := node.NewBuilder(types.RoleButton)
	node.Name.Set(c, "second")
	u.Push(id(4), a.Build(nil))
	u.Push(id(4), c.Build(nil))

	b, err := Encode(u)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var names []string
	if _, err := Walk(b, types.DefaultLimits(), func(r Record) error {
		n, err := r.Build(nil, types.DefaultLimits())
		if err != nil {
			return err
		}
		name, _ := node.Name.Get(n)
		names = append(names, name)
		return nil
	}); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(names) != 2 || names[0] != "first" || names[1] != "second" {
		t.Fatalf("names = %v", names)
	}
}

// singleName encodes one button whose only property is its name.
func singleName(t *testing.T) []byte {
	t.Helper()
	nb := node.NewBuilder(types.RoleButton)
	node.Name.Set(nb, "OK")
	var u tree.Update
	u.Push(id(1), nb.Build(nil))
	b, err := Encode(u)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return b
}

func TestDecode_SkipsUnknownProperty(t *testing.T) {
	b := singleName(t)
	b[HeaderSize+NodeHeaderSize+PropIDOffset] = 0xF0

	got, err := Decode(b, nil, types.DefaultLimits())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := node.Name.Get(got.Nodes[0].Node); ok {
		t.Fatalf("unknown property should be skipped")
	}
	if got.Nodes[0].Node.Role() != types.RoleButton {
		t.Fatalf("role = %v", got.Nodes[0].Node.Role())
	}
}

func TestDecode_ShapeMismatch(t *testing.T) {
	b := singleName(t)
	b[HeaderSize+NodeHeaderSize+PropShapeOffset] = uint8(node.ShapeF64)

	if _, err := Decode(b, nil, types.DefaultLimits()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	good := singleName(t)

	cases := []struct {
		name   string
		mutate func([]byte) []byte
		want   error
	}{
		{"short header", func(b []byte) []byte { return b[:HeaderSize-1] }, ErrTruncated},
		{"signature", func(b []byte) []byte { b[0] = 'X'; return b }, ErrSignatureMismatch},
		{"version", func(b []byte) []byte { b[MajorVersionOffset] = 9; return b }, ErrVersion},
		{"declared size", func(b []byte) []byte { return b[:len(b)-8] }, ErrTruncated},
		{"record signature", func(b []byte) []byte { b[HeaderSize] = 'x'; return b }, ErrSignatureMismatch},
		{"record size", func(b []byte) []byte { b[HeaderSize+NodeSizeOffset] = 3; return b }, ErrTruncated},
		{"node count", func(b []byte) []byte { b[NodeCountOffset] = 2; return b }, ErrTruncated},
		{"trailing", func(b []byte) []byte { b[NodeCountOffset] = 0; return b }, ErrUnsupported},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.mutate(append([]byte(nil), good...))
			if _, err := Decode(b, nil, types.DefaultLimits()); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDecode_InvalidString(t *testing.T) {
	b := singleName(t)
	b[HeaderSize+NodeHeaderSize+PropHeaderSize] = 0xFF

	if _, err := Decode(b, nil, types.DefaultLimits()); !errors.Is(err, types.ErrMalformedString) {
		t.Fatalf("err = %v, want ErrMalformedString", err)
	}
}

func TestWalk_Limits(t *testing.T) {
	b, err := Encode(sampleUpdate())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	lim := types.DefaultLimits()
	lim.MaxUpdateNodes = 2
	if _, err := Walk(b, lim, func(Record) error { return nil }); !errors.Is(err, ErrLimit) {
		t.Fatalf("node limit: err = %v, want ErrLimit", err)
	}

	lim = types.DefaultLimits()
	lim.MaxSnapshotSize = HeaderSize
	if _, err := Walk(b, lim, func(Record) error { return nil }); !errors.Is(err, ErrLimit) {
		t.Fatalf("size limit: err = %v, want ErrLimit", err)
	}

	lim = types.DefaultLimits()
	lim.MaxVectorLen = 1
	if _, err := Decode(b, nil, lim); !errors.Is(err, ErrLimit) {
		t.Fatalf("vector limit: err = %v, want ErrLimit", err)
	}
}

func TestWalk_StopsOnCallbackError(t *testing.T) {
	b, err := Encode(sampleUpdate())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	stop := errors.New("stop")
	seen := 0
	_, err = Walk(b, types.DefaultLimits(), func(Record) error {
		seen++
		return stop
	})
	if !errors.Is(err, stop) || seen != 1 {
		t.Fatalf("err = %v after %d records", err, seen)
	}
}
