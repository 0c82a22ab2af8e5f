// Package render draws a tree update as a node-link diagram. ToDOT produces
// Graphviz source; RenderSVG and RenderPNG lay it out in-process with
// go-graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// Options configures diagram generation.
type Options struct {
	// Detailed lists every property in the node label and draws the
	// non-child relations (labelled_by, controls...) as dashed edges.
	Detailed bool
}

// relations drawn besides children in detailed mode.
var relations = []node.Vec[types.NodeID]{
	node.IndirectChildren, node.Controls, node.Details, node.DescribedBy,
	node.FlowTo, node.LabelledBy, node.RadioGroup,
}

// ToDOT converts u to Graphviz DOT. Nodes are declared in update order; a
// repeated id is drawn once, from its last pair. The root is drawn bold and
// the focused node filled.
func ToDOT(u tree.Update, opts Options) string {
	last := make(map[types.NodeID]*node.Node, len(u.Nodes))
	var order []types.NodeID
	for _, p := range u.Nodes {
		if _, seen := last[p.ID]; !seen {
			order = append(order, p.ID)
		}
		last[p.ID] = p.Node
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, id := range order {
		n := last[id]
		attrs := []string{fmt.Sprintf("label=%q", label(id, n, opts.Detailed))}
		if u.Tree != nil && u.Tree.Root == id {
			attrs = append(attrs, "penwidth=2")
		}
		if u.Focus == id {
			attrs = append(attrs, "fillcolor=lightyellow")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id.String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, id := range order {
		n := last[id]
		for _, c := range node.Children.Get(n) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", id.String(), c.String())
		}
		if !opts.Detailed {
			continue
		}
		for _, rel := range relations {
			for _, to := range rel.Get(n) {
				fmt.Fprintf(&buf, "  %q -> %q [style=dashed, label=%q];\n", id.String(), to.String(), rel.Descriptor().Name)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func label(id types.NodeID, n *node.Node, detailed bool) string {
	head := fmt.Sprintf("%s #%s", n.Role(), id)
	name, ok := node.Name.Get(n)
	if !detailed {
		if ok {
			return head + "\n" + name
		}
		return head
	}
	lines := []string{head}
	if a := n.Actions(); a != 0 {
		lines = append(lines, "actions: "+a.String())
	}
	node.Each(n, func(d *node.Descriptor, v any) {
		if d == node.Children.Descriptor() {
			return
		}
		lines = append(lines, fmt.Sprintf("%s: %v", d.Name, v))
	})
	return strings.Join(lines, "\n")
}

// RenderSVG lays out dot and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderAs(ctx, dot, graphviz.SVG)
}

// RenderPNG lays out dot and returns PNG bytes.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderAs(ctx, dot, graphviz.PNG)
}

func renderAs(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// Render produces the named format: "dot", "svg" or "png".
func Render(ctx context.Context, u tree.Update, format string, opts Options) ([]byte, error) {
	dot := ToDOT(u, opts)
	switch strings.ToLower(format) {
	case "dot":
		return []byte(dot), nil
	case "svg":
		return RenderSVG(ctx, dot)
	case "png":
		return RenderPNG(ctx, dot)
	default:
		return nil, types.Errorf(types.ErrKindNotFound, "render format", "%q", format)
	}
}
