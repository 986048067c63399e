// Package config loads stanza project configuration through Viper from
// .stanza.yml, STANZA_-prefixed environment variables, and command-line
// flags, with validation and sensible defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	stanzaerrors "github.com/stanza-dev/stanza/internal/errors"
)

// Config is the full stanza project configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Site     SiteConfig     `yaml:"site"`
	Generate GenerateConfig `yaml:"generate"`
	LogLevel string         `yaml:"log_level"`
}

// ServerConfig controls the dev preview server.
type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	HotReload bool   `yaml:"hot_reload"`
}

// SiteConfig controls the docs-site build.
type SiteConfig struct {
	Title      string `yaml:"title"`
	BaseURL    string `yaml:"base_url"`
	ContentDir string `yaml:"content_dir"`
	OutputDir  string `yaml:"output_dir"`
}

// GenerateConfig controls scaffolding output.
type GenerateConfig struct {
	OutputDir   string `yaml:"output_dir"`
	PackageName string `yaml:"package_name"`
	Author      string `yaml:"author"`
}

// Defaults applied when neither config file nor environment set a value.
func setDefaults() {
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.hot_reload", true)
	viper.SetDefault("site.title", "stanza")
	viper.SetDefault("site.content_dir", "content")
	viper.SetDefault("site.output_dir", "public")
	viper.SetDefault("generate.output_dir", "components")
	viper.SetDefault("generate.package_name", "components")
	viper.SetDefault("log_level", "info")
}

// Load reads the configuration from viper's current state and validates it.
func Load() (*Config, error) {
	setDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, stanzaerrors.NewConfigError(
			stanzaerrors.CodeConfigInvalid,
			fmt.Sprintf("unmarshaling configuration: %v", err),
		)
	}

	// Viper's Unmarshal keys come from mapstructure tags; pull the nested
	// values explicitly so yaml-tagged structs stay the single source of
	// field names.
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.HotReload = viper.GetBool("server.hot_reload")
	cfg.Site.Title = viper.GetString("site.title")
	cfg.Site.BaseURL = viper.GetString("site.base_url")
	cfg.Site.ContentDir = viper.GetString("site.content_dir")
	cfg.Site.OutputDir = viper.GetString("site.output_dir")
	cfg.Generate.OutputDir = viper.GetString("generate.output_dir")
	cfg.Generate.PackageName = viper.GetString("generate.package_name")
	cfg.Generate.Author = viper.GetString("generate.author")
	cfg.LogLevel = viper.GetString("log_level")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks invariants the commands rely on.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return stanzaerrors.NewConfigError(
			stanzaerrors.CodeConfigInvalid,
			fmt.Sprintf("server.port %d out of range 1-65535", c.Server.Port),
		)
	}
	if strings.Contains(c.Site.ContentDir, "..") || strings.Contains(c.Site.OutputDir, "..") {
		return stanzaerrors.NewConfigError(
			stanzaerrors.CodeConfigInvalid,
			"site directories must not contain path traversal",
		)
	}
	if c.Site.ContentDir == "" || c.Site.OutputDir == "" {
		return stanzaerrors.NewConfigError(
			stanzaerrors.CodeConfigInvalid,
			"site.content_dir and site.output_dir must be set",
		)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "":
	default:
		return stanzaerrors.NewConfigError(
			stanzaerrors.CodeConfigInvalid,
			fmt.Sprintf("unknown log_level %q", c.LogLevel),
		)
	}
	return nil
}
