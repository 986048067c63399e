package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stanza-dev/stanza/internal/config"
	"github.com/stanza-dev/stanza/internal/logging"
	"github.com/stanza-dev/stanza/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Serve the site with live reload",
	Long: `Builds the site, serves it on server.host:server.port, watches
the content directory, and pushes reloads to connected browsers over a
websocket when pages change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyServeOverrides(cmd)

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger := logging.New(&logging.Config{
			Level:  logging.ParseLevel(cfg.LogLevel),
			Output: os.Stderr,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, logger).Run(ctx)
	},
}

// applyServeOverrides maps flags that have no direct viper binding onto
// the configuration before it is loaded.
func applyServeOverrides(cmd *cobra.Command) {
	if noReload, _ := cmd.Flags().GetBool("no-reload"); noReload {
		viper.Set("server.hot_reload", false)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Override server.port")
	serveCmd.Flags().String("host", "", "Override server.host")
	serveCmd.Flags().Bool("no-reload", false, "Disable hot reload")
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
}
