package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/types"
)

var propsShape string

func init() {
	cmd := newPropsCmd()
	cmd.Flags().StringVar(&propsShape, "shape", "", "Only list properties of this shape (flag, string, node_ids...)")
	rootCmd.AddCommand(cmd)
}

func newPropsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props [name]",
		Short: "List the node property registry",
		Long: `The props command lists every node property with its ID, shape and
operation names. Given a name (or any operation alias such as
"push_child") it shows that property only.

Example:
  axctl props
  axctl props --shape enum
  axctl props set_hidden --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProps(args)
		},
	}
}

type propInfo struct {
	ID      uint8    `json:"id"`
	Name    string   `json:"name"`
	Shape   string   `json:"shape"`
	Getter  string   `json:"getter"`
	Setter  string   `json:"setter"`
	Pusher  string   `json:"pusher,omitempty"`
	Clearer string   `json:"clearer"`
	Enum    string   `json:"enum,omitempty"`
	Members []string `json:"members,omitempty"`
}

func describe(d *node.Descriptor) propInfo {
	p := propInfo{
		ID:      uint8(d.ID),
		Name:    d.Name,
		Shape:   d.Shape.String(),
		Getter:  d.Getter,
		Setter:  d.Setter,
		Pusher:  d.Pusher,
		Clearer: d.Clearer,
	}
	if d.Enum != nil {
		p.Enum = d.Enum.Type
		p.Members = d.Enum.Names
	}
	return p
}

func runProps(args []string) error {
	var list []*node.Descriptor
	if len(args) == 1 {
		d, ok := node.LookupName(args[0])
		if !ok {
			return types.Errorf(types.ErrKindNotFound, "property", "%q", args[0])
		}
		list = []*node.Descriptor{d}
	} else {
		for _, d := range node.Properties() {
			if propsShape == "" || strings.EqualFold(d.Shape.String(), propsShape) {
				list = append(list, d)
			}
		}
		if len(list) == 0 && propsShape != "" {
			return types.Errorf(types.ErrKindNotFound, "shape", "no properties of shape %q", propsShape)
		}
	}

	infos := make([]propInfo, len(list))
	for i, d := range list {
		infos[i] = describe(d)
	}
	if jsonOut {
		return printJSON(infos)
	}

	for _, p := range infos {
		ops := []string{p.Getter, p.Setter}
		if p.Pusher != "" {
			ops = append(ops, p.Pusher)
		}
		ops = append(ops, p.Clearer)
		printInfo("%3d  %-34s %-16s %s\n", p.ID, p.Name, styleShape.Render(p.Shape), styleDim.Render(strings.Join(ops, " ")))
		if p.Enum != "" {
			printInfo("     %s %s\n", styleKey.Render(p.Enum+":"), strings.Join(p.Members, ", "))
		}
	}
	return nil
}
