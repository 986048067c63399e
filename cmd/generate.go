package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stanza-dev/stanza/internal/config"
	"github.com/stanza-dev/stanza/internal/scaffolding"
)

var (
	generatePackage string
	generateOutput  string
)

var generateCmd = &cobra.Command{
	Use:     "generate <kind> <name>",
	Aliases: []string{"g", "gen"},
	Short:   "Generate a component, page, or model",
	Long: fmt.Sprintf(`Generates a source file from a built-in template.

Kinds: %s

Examples:
  stanza generate component Button
  stanza generate page About
  stanza generate model User --package models --output models`,
		strings.Join(scaffolding.TemplateKinds(), ", ")),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, name := args[0], args[1]

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		pkg := generatePackage
		if pkg == "" {
			pkg = cfg.Generate.PackageName
		}
		out := generateOutput
		if out == "" {
			out = cfg.Generate.OutputDir
		}

		gen := scaffolding.NewGenerator(".", cfg.Generate.Author)
		path, err := gen.GenerateComponent(kind, name, pkg, out)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generatePackage, "package", "", "Package name for the generated file")
	generateCmd.Flags().StringVar(&generateOutput, "output", "", "Output directory")
}
