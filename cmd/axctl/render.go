package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/axkit/internal/render"
	"github.com/joshuapare/axkit/internal/writer"
	"github.com/joshuapare/axkit/pkg/node"
)

var (
	renderOutput   string
	renderFormat   string
	renderDetailed bool
)

func init() {
	cmd := newRenderCmd()
	cmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output path, - for stdout (default: input with the format extension)")
	cmd.Flags().StringVar(&renderFormat, "format", "", "svg, png or dot (default from config, else svg)")
	cmd.Flags().BoolVar(&renderDetailed, "detailed", false, "List every property and draw non-child relations")
	rootCmd.AddCommand(cmd)
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <tree.yaml|tree.axt>",
		Short: "Draw a tree update as a node-link diagram",
		Long: `The render command lays out a tree with Graphviz. The root is drawn
bold and the focused node highlighted.

Example:
  axctl render hello.yaml
  axctl render hello.axt -o tree.svg --detailed
  axctl render hello.yaml --format dot -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args)
		},
	}
}

func runRender(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	in := args[0]
	u, err := loadUpdate(in, node.NewClassSet())
	if err != nil {
		return err
	}
	f := renderFormat
	if f == "" {
		f = cfg.Render.Format
	}
	out, err := render.Render(ctx, u, f, render.Options{Detailed: renderDetailed})
	if err != nil {
		return err
	}
	dst := renderOutput
	if dst == "" {
		dst = strings.TrimSuffix(in, filepath.Ext(in)) + "." + strings.ToLower(f)
	}
	if err := writer.For(dst, stdout).WriteSnapshot(out); err != nil {
		return err
	}
	if dst != "-" {
		printInfo("%s %s\n", styleShape.Render("wrote"), dst)
	}
	return nil
}
