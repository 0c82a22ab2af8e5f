package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/axkit/internal/format"
	"github.com/joshuapare/axkit/internal/treefile"
	"github.com/joshuapare/axkit/internal/writer"
	"github.com/joshuapare/axkit/pkg/node"
)

var encodeOutput string

func init() {
	cmd := newEncodeCmd()
	cmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Output path, - for stdout (default: input with .axt)")
	rootCmd.AddCommand(cmd)
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <tree.yaml>",
		Short: "Encode a YAML tree description as a .axt snapshot",
		Long: `The encode command validates a YAML tree description against the
configured limits and writes it as a binary .axt snapshot. Given a .axt
input it converts the other way and prints YAML.

Example:
  axctl encode hello.yaml
  axctl encode hello.yaml -o /tmp/hello.axt
  axctl encode hello.axt -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args)
		},
	}
}

func runEncode(args []string) error {
	in := args[0]
	limits, err := cfg.LimitSet()
	if err != nil {
		return err
	}
	u, err := loadUpdate(in, node.NewClassSet())
	if err != nil {
		return err
	}
	if err := u.Validate(limits); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	var out []byte
	if isSnapshot(in) {
		out, err = treefile.Marshal(u)
	} else {
		out, err = format.Encode(u)
	}
	if err != nil {
		return err
	}

	dst := encodeOutput
	if dst == "" {
		if isSnapshot(in) {
			dst = "-"
		} else {
			dst = strings.TrimSuffix(in, filepath.Ext(in)) + ".axt"
		}
	}
	if err := writer.For(dst, stdout).WriteSnapshot(out); err != nil {
		return err
	}
	if dst != "-" {
		printInfo("%s %s (%d nodes, %d bytes)\n", styleShape.Render("wrote"), dst, u.Len(), len(out))
	}
	return nil
}
