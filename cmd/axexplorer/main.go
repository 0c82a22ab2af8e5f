// Command axexplorer is an interactive terminal browser for accessibility
// tree updates stored as YAML tree files or .axt snapshots.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/axkit/internal/logger"
	"github.com/joshuapare/axkit/internal/source"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/types"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Must be before any logging calls
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
		LogDir:  logDir(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch filteredArgs[0] {
	case "--help", "-h":
		printHelp()
		os.Exit(0)
	case "--version", "-v":
		fmt.Printf("axexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := filteredArgs[0]
	logger.Info("starting axexplorer", "path", path, "debug", debugMode)

	u, err := source.Open(path, node.NewClassSet(), types.DefaultLimits())
	if err != nil {
		logger.Error("load failed", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		NewModel(path, u),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			logger.Warn("error closing resources", "error", err)
		}
	}
	logger.Info("axexplorer exited normally")
}

// logDir is ~/.axkit/logs, or the working directory when there is no home.
func logDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "logs"
	}
	return filepath.Join(home, ".axkit", "logs")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: axexplorer [options] <tree.yaml|tree.axt>\n")
	fmt.Fprintf(os.Stderr, "Try 'axexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("axexplorer - Interactive TUI for accessibility tree updates")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  axexplorer [options] <tree.yaml|tree.axt>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Browses the nodes of a tree update the way an assistive technology")
	fmt.Println("  would see them once an adapter applied it.")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Split-pane layout (node tree + properties)")
	fmt.Println("    - Keyboard navigation (vim-style keys supported)")
	fmt.Println("    - Jump to the focused node (f)")
	fmt.Println("    - Node detail as JSON (i), copy id or JSON (c, y)")
	fmt.Println("    - Send Default or Focus requests through an in-memory adapter (x, F)")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.axkit/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'axctl' command instead.")
}
