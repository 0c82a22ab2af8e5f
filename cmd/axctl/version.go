package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/axkit/internal/format"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		printInfo("axctl %s\n", version)
		printInfo("  commit: %s\n", commit)
		printInfo("  built: %s\n", date)
		printInfo("  snapshot format: %s %d.%d\n", format.Signature, format.MajorVersion, format.MinorVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
