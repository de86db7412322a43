package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dialogchain/dialogchain/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show dialogchain CLI version information",
	Long: `Display version information for the dialogchain CLI tool.

This command shows:
  • CLI version, git commit hash, and build timestamp
  • Go runtime version`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Version = version.GetVersionString()
	rootCmd.SetVersionTemplate(`{{.Version}}
`)
}

// runVersion executes the version command.
func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(version.GetFullVersionInfo())
}
