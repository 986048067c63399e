package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanza-dev/stanza/internal/config"
)

func previewFixture(t *testing.T, hotReload bool) *PreviewServer {
	t.Helper()

	outputDir := t.TempDir()
	page := "<html><head><title>t</title></head><body><main>hi</main></body></html>"
	require.NoError(t, os.WriteFile(filepath.Join(outputDir, "index.html"), []byte(page), 0o644))

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "localhost", Port: 8080, HotReload: hotReload},
		Site:   config.SiteConfig{ContentDir: t.TempDir(), OutputDir: outputDir, Title: "t"},
	}
	return New(cfg, nil)
}

func TestHandlerServesSite(t *testing.T) {
	srv := previewFixture(t, false)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/index.html")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<main>hi</main>")
	assert.NotContains(t, string(body), "WebSocket", "reload script off without hot reload")
}

func TestHandlerInjectsReloadScript(t *testing.T) {
	srv := previewFixture(t, true)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/index.html")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "new WebSocket")
	assert.Contains(t, string(body), "</script></body>")
}

func TestHandlerLeavesNonHTMLAlone(t *testing.T) {
	srv := previewFixture(t, true)
	require.NoError(t, os.WriteFile(
		filepath.Join(srv.cfg.Site.OutputDir, "style.css"), []byte("body{}"), 0o644))

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/style.css")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(body))
}

func TestHandlerNotFound(t *testing.T) {
	srv := previewFixture(t, false)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/missing.html")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
