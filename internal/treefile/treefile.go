// Package treefile reads and writes tree updates as YAML documents:
//
//	root: 1
//	focus: 2
//	nodes:
//	  - id: 1
//	    role: window
//	    props:
//	      children: [2]
//	      name: Hello
//	  - id: 2
//	    role: button
//	    actions: [focus, click]
//	    props:
//	      name: OK
//	      bounds: {x0: 10, y0: 10, x1: 90, y1: 40}
//
// Property keys are registry names or any of their operation aliases
// ("is_hidden", "set_hidden"). Roles, actions and enum values are matched
// by name ignoring case, underscores and dashes.
package treefile

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// File is the document form of a tree update.
type File struct {
	Root         ID     `yaml:"root,omitempty"`
	RootScroller ID     `yaml:"root_scroller,omitempty"`
	Focus        ID     `yaml:"focus,omitempty"`
	Nodes        []Node `yaml:"nodes"`
}

// Node is one (id, node) pair. Props is kept as a raw mapping so that
// values can be decoded by the shape of their property.
type Node struct {
	ID      ID         `yaml:"id"`
	Role    string     `yaml:"role"`
	Actions []string   `yaml:"actions,omitempty,flow"`
	Props   yaml.Node `yaml:"props,omitempty"`
}

// ID is a node id that encodes as a plain integer when it fits in 64 bits.
type ID types.NodeID

// IsZero lets omitempty drop absent ids.
func (id ID) IsZero() bool { return types.NodeID(id).IsZero() }

func (id ID) String() string { return types.NodeID(id).String() }

// MarshalYAML implements yaml.Marshaler.
func (id ID) MarshalYAML() (any, error) {
	if v, ok := types.NodeID(id).Uint64(); ok {
		return v, nil
	}
	return types.NodeID(id).String(), nil
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	v, err := id.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *ID) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return lineErr(n, "node id must be a scalar")
	}
	v, err := types.ParseNodeID(n.Value)
	if err != nil {
		return lineErr(n, "%v", err)
	}
	*id = ID(v)
	return nil
}

func lineErr(n *yaml.Node, format string, args ...any) error {
	return types.Errorf(types.ErrKindMalformed, "tree file", "line %d: %s", n.Line, fmt.Sprintf(format, args...))
}

// Load reads and parses the YAML file at path.
func Load(path string, classes *node.ClassSet) (tree.Update, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return tree.Update{}, err
	}
	u, err := Parse(b, classes)
	if err != nil {
		return tree.Update{}, fmt.Errorf("%s: %w", path, err)
	}
	return u, nil
}

// Parse builds a tree update from a YAML document. Nodes are built against
// classes, or private classes when nil.
func Parse(b []byte, classes *node.ClassSet) (tree.Update, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return tree.Update{}, types.Errorf(types.ErrKindMalformed, "tree file", "%v", err)
	}
	return f.Update(classes)
}

// Update converts the document into a tree update.
func (f *File) Update(classes *node.ClassSet) (tree.Update, error) {
	u := tree.Update{Focus: types.NodeID(f.Focus)}
	if !f.Root.IsZero() {
		u.SetTree(tree.Tree{Root: types.NodeID(f.Root), RootScroller: types.NodeID(f.RootScroller)})
	}
	for i := range f.Nodes {
		n, err := f.Nodes[i].build(classes)
		if err != nil {
			return tree.Update{}, fmt.Errorf("node %s: %w", types.NodeID(f.Nodes[i].ID), err)
		}
		if !u.Push(types.NodeID(f.Nodes[i].ID), n) {
			return tree.Update{}, types.Errorf(types.ErrKindInvalid, "tree file", "node %d has a zero id", i)
		}
	}
	return u, nil
}

func (n *Node) build(classes *node.ClassSet) (*node.Node, error) {
	role, err := types.ParseRole(n.Role)
	if err != nil {
		return nil, err
	}
	b := node.NewBuilder(role)
	for _, name := range n.Actions {
		a, err := types.ParseAction(name)
		if err != nil {
			return nil, err
		}
		b.AddAction(a)
	}
	if n.Props.Kind != 0 {
		if err := decodeProps(b, &n.Props); err != nil {
			return nil, err
		}
	}
	return b.Build(classes), nil
}

func decodeProps(b *node.Builder, m *yaml.Node) error {
	if m.Kind != yaml.MappingNode {
		return lineErr(m, "props must be a mapping")
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, val := m.Content[i], m.Content[i+1]
		d, ok := node.LookupName(key.Value)
		if !ok {
			return lineErr(key, "unknown property %q", key.Value)
		}
		v, err := decodeValue(d, val)
		if err != nil {
			return lineErr(val, "%s: %v", d.Name, err)
		}
		if err := node.Set(b, d, v); err != nil {
			return lineErr(val, "%v", err)
		}
	}
	return nil
}

// Marshal renders u as a YAML document. Properties are written in
// registry order.
func Marshal(u tree.Update) ([]byte, error) {
	f := File{Focus: ID(u.Focus), Nodes: make([]Node, 0, len(u.Nodes))}
	if u.Tree != nil {
		f.Root = ID(u.Tree.Root)
		f.RootScroller = ID(u.Tree.RootScroller)
	}
	for _, p := range u.Nodes {
		n := Node{ID: ID(p.ID), Role: p.Node.Role().String()}
		for _, a := range p.Node.Actions().Actions() {
			n.Actions = append(n.Actions, a.String())
		}
		props, err := encodeProps(p.Node)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", p.ID, err)
		}
		if props != nil {
			n.Props = *props
		}
		f.Nodes = append(f.Nodes, n)
	}
	return yaml.Marshal(&f)
}

func encodeProps(r node.Reader) (*yaml.Node, error) {
	if node.Count(r) == 0 {
		return nil, nil
	}
	m := &yaml.Node{Kind: yaml.MappingNode}
	var err error
	node.Each(r, func(d *node.Descriptor, v any) {
		if err != nil {
			return
		}
		val := &yaml.Node{}
		if err = val.Encode(Value(d, v)); err != nil {
			return
		}
		if val.Kind == yaml.SequenceNode && d.Shape != node.ShapeCustomActions {
			val.Style = yaml.FlowStyle
		}
		if val.Kind == yaml.MappingNode && d.Shape == node.ShapeRect {
			val.Style = yaml.FlowStyle
		}
		m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: d.Name}, val)
	})
	return m, err
}
