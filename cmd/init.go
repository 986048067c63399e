package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stanza-dev/stanza/internal/scaffolding"
	"github.com/stanza-dev/stanza/internal/validation"
)

var (
	initModulePath string
	initAuthor     string
)

var initCmd = &cobra.Command{
	Use:     "init <name>",
	Aliases: []string{"i"},
	Short:   "Scaffold a new stanza project",
	Long: `Creates a project directory with a runnable app, a components
package, markdown content, CI, and Docker scaffolding.

Example:
  stanza init mysite --module github.com/me/mysite`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validation.ValidateProjectName(name); err != nil {
			return err
		}

		gen := scaffolding.NewGenerator(".", initAuthor)
		if err := gen.GenerateProject(name, initModulePath); err != nil {
			return err
		}

		fmt.Printf("Created project %s\n", name)
		fmt.Printf("  cd %s && go run .\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initModulePath, "module", "", "Go module path (defaults to the project name)")
	initCmd.Flags().StringVar(&initAuthor, "author", "", "Author recorded in generated files")
}
