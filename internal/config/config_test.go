package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stanzaerrors "github.com/stanza-dev/stanza/internal/errors"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.HotReload)
	assert.Equal(t, "content", cfg.Site.ContentDir)
	assert.Equal(t, "public", cfg.Site.OutputDir)
	assert.Equal(t, "components", cfg.Generate.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	resetViper(t)
	viper.Set("server.port", 3000)
	viper.Set("site.title", "Stanza Docs")
	viper.Set("site.base_url", "https://stanza.dev")
	viper.Set("log_level", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "Stanza Docs", cfg.Site.Title)
	assert.Equal(t, "https://stanza.dev", cfg.Site.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidatePortRange(t *testing.T) {
	resetViper(t)
	viper.Set("server.port", 0)

	_, err := Load()
	require.Error(t, err)
	assert.True(t, stanzaerrors.IsType(err, stanzaerrors.ErrorTypeConfig))
}

func TestValidateRejectsTraversal(t *testing.T) {
	resetViper(t)
	viper.Set("site.content_dir", "../outside")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, stanzaerrors.IsType(err, stanzaerrors.ErrorTypeConfig))
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	resetViper(t)
	viper.Set("log_level", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateDirect(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Site:   SiteConfig{ContentDir: "content", OutputDir: "public"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Site.OutputDir = ""
	assert.Error(t, cfg.Validate())
}
