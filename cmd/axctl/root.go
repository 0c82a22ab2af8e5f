package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/axkit/internal/config"
	"github.com/joshuapare/axkit/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	configPath string

	// cfg is loaded before any command runs.
	cfg = config.Default()

	stdout io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "axctl",
	Short: "Inspect and convert accessibility tree updates",
	Long: `axctl works with accessibility tree updates: it encodes YAML tree
descriptions into .axt snapshot files, dumps snapshots, lists the node
property registry, renders trees as diagrams and serves an HTTP inspector
that plays the part of the assistive technology.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./"+config.DefaultPath+" if present)")
}

// setup loads the config file and installs the logger.
func setup(cmd *cobra.Command) error {
	path, optional := configPath, false
	if path == "" {
		path, optional = config.DefaultPath, true
	}
	c, err := config.Load(path, optional)
	if err != nil {
		return err
	}
	cfg = c

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	l := newLogger(cmd.ErrOrStderr(), level)
	if err := logger.Init(logger.Options{Enabled: !quiet, Handler: l}); err != nil {
		return err
	}
	for _, k := range cfg.Unknown {
		logger.L.Warn("unknown config key", "key", k, "file", path)
	}
	if noColor {
		disableColor()
	}
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, styleError.Render("Error: ")+format, args...)
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
