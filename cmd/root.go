// Package cmd implements the stanza command-line interface.
//
// Configuration sources, highest priority first:
//  1. Command-line flags (--config, --port, ...)
//  2. STANZA_-prefixed environment variables (STANZA_SERVER_PORT, ...)
//  3. The configuration file (.stanza.yml in the working directory, or
//     the file named by --config / STANZA_CONFIG_FILE)
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "stanza",
	Short: "Server-side rendering toolkit for node-tree HTML",
	Long: `Stanza renders HTML from plain Go node trees and ships the tooling
around that: a project scaffolder, component generators, a markdown
docs-site builder, and a live-reloading preview server.

Quick start:
  stanza init mysite          Scaffold a new project
  stanza generate component Button
  stanza build                Build the static site from content/
  stanza serve                Preview with live reload`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default .stanza.yml; STANZA_CONFIG_FILE also honored)")
	rootCmd.PersistentFlags().String("log-level", "info",
		"log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envFile := os.Getenv("STANZA_CONFIG_FILE"); envFile != "" {
		viper.SetConfigFile(envFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".stanza")
	}

	viper.SetEnvPrefix("STANZA")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; defaults and environment take over.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
