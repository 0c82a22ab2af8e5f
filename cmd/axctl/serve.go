package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/axkit/internal/logger"
	"github.com/joshuapare/axkit/internal/server"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
)

var serveAddr string

func init() {
	cmd := newServeCmd()
	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, else 127.0.0.1:8080)")
	rootCmd.AddCommand(cmd)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve <tree.yaml|tree.axt>",
		Short: "Serve an HTTP inspector over an in-memory adapter",
		Long: `The serve command loads a tree as the adapter's initial state and
serves it over HTTP. POST /activate delivers the initial tree; action
requests posted to /nodes/{id}/actions/{action} are logged as the
application would receive them.

Example:
  axctl serve hello.yaml
  axctl serve hello.axt --addr :9000
  curl -X POST localhost:8080/activate
  curl -X POST localhost:8080/nodes/2/actions/focus`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(args)
		},
	}
}

func runServe(args []string) error {
	classes := node.NewClassSet()
	initial, err := loadUpdate(args[0], classes)
	if err != nil {
		return err
	}
	limits, err := cfg.LimitSet()
	if err != nil {
		return err
	}
	if err := initial.Validate(limits); err != nil {
		return err
	}

	s, err := server.New(func() tree.Update { return initial },
		server.WithLogger(logger.L), server.WithLimits(limits))
	if err != nil {
		return err
	}
	addr := serveAddr
	if addr == "" {
		addr = cfg.Serve.Addr
	}
	return s.ListenAndServe(addr)
}
