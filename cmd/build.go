package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stanza-dev/stanza/internal/config"
	"github.com/stanza-dev/stanza/internal/logging"
	"github.com/stanza-dev/stanza/internal/site"
)

var buildCheck bool

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"b"},
	Short:   "Build the static site from markdown content",
	Long: `Renders every markdown page under site.content_dir through the
stanza layout and writes the HTML files to site.output_dir.

With --check, each generated document is re-parsed and verified to
contain the expected structure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger := logging.New(&logging.Config{
			Level:  logging.ParseLevel(cfg.LogLevel),
			Output: os.Stderr,
		})

		gen := site.NewGenerator(site.Options{
			Title:      cfg.Site.Title,
			BaseURL:    cfg.Site.BaseURL,
			ContentDir: cfg.Site.ContentDir,
			OutputDir:  cfg.Site.OutputDir,
		}, logger)

		n, err := gen.Build(cmd.Context())
		if err != nil {
			return err
		}

		if buildCheck {
			if err := checkOutput(cfg.Site.OutputDir); err != nil {
				return err
			}
		}

		fmt.Printf("Built %d pages into %s\n", n, cfg.Site.OutputDir)
		return nil
	},
}

func checkOutput(outputDir string) error {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".html" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(outputDir, entry.Name()))
		if err != nil {
			return err
		}
		if err := site.CheckDocument(string(raw)); err != nil {
			return fmt.Errorf("%s: %w", entry.Name(), err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVar(&buildCheck, "check", false, "Verify generated documents after building")
	buildCmd.Flags().String("content", "", "Override site.content_dir")
	buildCmd.Flags().String("output", "", "Override site.output_dir")
	_ = viper.BindPFlag("site.content_dir", buildCmd.Flags().Lookup("content"))
	_ = viper.BindPFlag("site.output_dir", buildCmd.Flags().Lookup("output"))
}
