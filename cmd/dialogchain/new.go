package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dialogchain/dialogchain/internal/generator"
	"github.com/dialogchain/dialogchain/internal/registry"
	"github.com/dialogchain/dialogchain/internal/ui"
)

// newCmd represents the new command.
var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Generate a new pipeline project from a template",
	Long: `Generate a new event-pipeline project skeleton from a named template.

This command creates:
- The project directory structure
- pipeline.yaml descriptor for the DialogChain runtime
- Processor stubs in the languages the template declares
- Dockerfile and docker-compose.yml
- Dependency manifest and developer control script

Examples:
  dialogchain new my-pipeline
  dialogchain new my-pipeline --template security
  dialogchain new my-pipeline --template iot --git
  dialogchain new my-pipeline --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

var (
	newOutputDir string
	newGitInit   bool
)

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringP("template", "t", "basic", "Template to generate from")
	newCmd.Flags().Bool("strict", false, "Fail on unsupported processor types instead of skipping them")
	newCmd.Flags().StringVarP(&newOutputDir, "output", "o", ".", "Parent directory for the generated project")
	newCmd.Flags().BoolVar(&newGitInit, "git", false, "Initialize a git repository with an initial commit")

	// Config file and DIALOGCHAIN_* environment defaults apply when the
	// flags are not set explicitly.
	viper.BindPFlag("template", newCmd.Flags().Lookup("template"))
	viper.BindPFlag("strict", newCmd.Flags().Lookup("strict"))
}

// runNew executes the new command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Command arguments (project name)
//
// Returns:
//   - error: Generation error if any
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - Bounded by filesystem write latency
func runNew(cmd *cobra.Command, args []string) error {
	projectName := args[0]
	templateName := viper.GetString("template")

	gen := generator.New(registry.New(),
		generator.WithOutputDir(newOutputDir),
		generator.WithStrictTypes(viper.GetBool("strict")),
		generator.WithGitInit(newGitInit),
	)

	result, err := gen.Generate(projectName, templateName)
	if err != nil {
		return err
	}

	ui.Info("Next steps:")
	for i, step := range result.NextSteps {
		ui.Info("  %d. %s", i+1, step)
	}

	return nil
}
