// Package main provides the dialogchain CLI tool entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command structure
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Exit codes and user-friendly error messages
//   - Performance Notes: Fast startup, minimal memory footprint
//
// Usage:
//
//	dialogchain [command] [flags]
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dialogchain/dialogchain/internal/ui"
)

var (
	verbose    bool
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dialogchain",
	Short: "DialogChain project generator",
	Long: `DialogChain project generator for event-pipeline projects.

This tool materializes a runnable multi-language project skeleton from a
named template:
- Pipeline descriptor (pipeline.yaml)
- Per-processor source stubs (python, go, rust_wasm)
- Docker build and compose files
- Dependency manifest and developer scripts

Defaults can be set in a dialogchain.yaml config file or through
DIALOGCHAIN_* environment variables.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.SetJSONOutput(jsonOutput)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("Command failed: %v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// initConfig loads optional generator defaults from dialogchain.yaml and
// DIALOGCHAIN_* environment variables.
func initConfig() {
	viper.SetConfigName("dialogchain")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "dialogchain"))
	}

	viper.SetEnvPrefix("DIALOGCHAIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		ui.Debug("Using config file: %s", viper.ConfigFileUsed())
	}
}

// main is the entry point for the dialogchain CLI tool.
func main() {
	Execute()
}
