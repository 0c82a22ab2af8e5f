package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/axkit/internal/format"
	"github.com/joshuapare/axkit/internal/mmfile"
	"github.com/joshuapare/axkit/internal/server"
	"github.com/joshuapare/axkit/internal/treefile"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

var (
	dumpRaw     bool
	dumpCompact bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpRaw, "raw", false, "List snapshot records without decoding payloads")
	cmd.Flags().BoolVar(&dumpCompact, "compact", false, "One line per node")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <tree.axt|tree.yaml>",
		Short: "Human-readable dump of a tree update",
		Long: `The dump command prints the tree, focus and every node of a snapshot
or YAML tree file with its role, actions and properties.

Example:
  axctl dump hello.axt
  axctl dump hello.axt --compact
  axctl dump hello.axt --raw
  axctl dump hello.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dumpRaw {
				return runDumpRaw(args)
			}
			return runDump(args)
		},
	}
}

func runDump(args []string) error {
	u, err := loadUpdate(args[0], node.NewClassSet())
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(server.EncodeTree(u))
	}
	printUpdate(args[0], u)
	return nil
}

func printUpdate(path string, u tree.Update) {
	if !dumpCompact {
		printInfo("\n%s %s\n", styleTitle.Render("Tree update:"), path)
		printInfo("%s\n", styleDim.Render(strings.Repeat("═", 40)))
		if u.Tree != nil {
			printInfo("  %s %s\n", styleKey.Render("root:"), styleID.Render(u.Tree.Root.String()))
			if u.Tree.HasRootScroller() {
				printInfo("  %s %s\n", styleKey.Render("root scroller:"), styleID.Render(u.Tree.RootScroller.String()))
			}
		} else {
			printInfo("  %s\n", styleDim.Render("(no tree)"))
		}
		if !u.Focus.IsZero() {
			printInfo("  %s %s\n", styleKey.Render("focus:"), styleID.Render(u.Focus.String()))
		}
		printInfo("  %s %d\n\n", styleKey.Render("nodes:"), u.Len())
	}

	for _, p := range u.Nodes {
		printNode(p.ID, p.Node)
	}
}

func printNode(id types.NodeID, n *node.Node) {
	head := fmt.Sprintf("[%s] %s", styleID.Render(id.String()), styleRole.Render(n.Role().String()))
	if dumpCompact {
		name, _ := node.Name.Get(n)
		printInfo("%s %q %s\n", head, name, styleDim.Render(fmt.Sprintf("(%d props)", node.Count(n))))
		return
	}
	printInfo("%s\n", head)
	if a := n.Actions(); a != 0 {
		printInfo("  %s %s\n", styleKey.Render("actions:"), a)
	}
	if node.Count(n) == 0 {
		printInfo("  %s\n", styleDim.Render("(no properties)"))
	}
	node.Each(n, func(d *node.Descriptor, v any) {
		printInfo("  %s = %v\n", styleKey.Render(d.Name), treefile.Value(d, v))
	})
	printInfo("\n")
}

// runDumpRaw lists records as stored, including properties this build
// does not know.
func runDumpRaw(args []string) error {
	path := args[0]
	if !isSnapshot(path) {
		return fmt.Errorf("--raw needs a .axt snapshot, got %s", path)
	}
	limits, err := cfg.LimitSet()
	if err != nil {
		return err
	}
	f, err := mmfile.Map(path, limits.MaxSnapshotSize)
	if err != nil {
		return err
	}
	defer f.Close()

	type rawProp struct {
		ID    uint8  `json:"id"`
		Name  string `json:"name,omitempty"`
		Shape string `json:"shape"`
		Bytes int    `json:"bytes"`
	}
	type rawRecord struct {
		ID      treefile.ID `json:"id"`
		Role    string      `json:"role"`
		Actions string      `json:"actions"`
		Props   []rawProp   `json:"props"`
	}
	var records []rawRecord
	h, err := format.Walk(f.Data, limits, func(r format.Record) error {
		rec := rawRecord{ID: treefile.ID(r.ID), Role: r.Role.String(), Actions: r.Actions.String()}
		for _, p := range r.Props {
			name := ""
			if d, ok := node.Lookup(p.ID); ok {
				name = d.Name
			}
			rec.Props = append(rec.Props, rawProp{ID: uint8(p.ID), Name: name, Shape: p.Shape.String(), Bytes: len(p.Payload)})
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"version": fmt.Sprintf("%d.%d", h.MajorVersion, h.MinorVersion),
			"flags":   h.Flags,
			"size":    h.TotalSize,
			"records": records,
		})
	}
	printInfo("%s %s (v%d.%d, %d bytes, flags 0x%x)\n", styleTitle.Render("Snapshot:"), path,
		h.MajorVersion, h.MinorVersion, h.TotalSize, h.Flags)
	for _, r := range records {
		printInfo("record %s %s actions=%s\n", r.ID.String(), r.Role, r.Actions)
		for _, p := range r.Props {
			name := p.Name
			if name == "" {
				name = styleWarning.Render("unknown")
			}
			printInfo("  #%-3d %-32s %-16s %d bytes\n", p.ID, name, styleShape.Render(p.Shape), p.Bytes)
		}
	}
	return nil
}
