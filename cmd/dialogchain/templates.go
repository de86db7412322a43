package main

import (
	"github.com/spf13/cobra"

	"github.com/dialogchain/dialogchain/internal/registry"
	"github.com/dialogchain/dialogchain/internal/ui"
)

// templatesCmd represents the templates command.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available project templates",
	Long: `List the built-in project templates that can be passed to 'new'.

Examples:
  dialogchain templates`,
	Run: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

// runTemplates executes the templates command.
func runTemplates(cmd *cobra.Command, args []string) {
	reg := registry.New()

	for _, name := range reg.Names() {
		tpl, err := reg.Lookup(name)
		if err != nil {
			continue
		}
		ui.Info("%-10s %s (triggers: %d, processors: %d, outputs: %d)",
			name, tpl.Description,
			len(tpl.Triggers), len(tpl.Processors), len(tpl.Outputs))
	}
}
