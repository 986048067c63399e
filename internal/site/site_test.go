package site

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stanzaerrors "github.com/stanza-dev/stanza/internal/errors"
)

func TestParsePageWithFrontMatter(t *testing.T) {
	raw := []byte(`---
title: Getting Started
slug: getting-started
order: 2
---

# Hello
`)

	page, err := ParsePage("content/start.md", raw)
	require.NoError(t, err)

	assert.Equal(t, "Getting Started", page.Title)
	assert.Equal(t, "getting-started", page.EffectiveSlug())
	assert.Equal(t, 2, page.Order)
	assert.Equal(t, "# Hello\n", string(page.Markdown))
}

func TestParsePageWithoutFrontMatter(t *testing.T) {
	page, err := ParsePage("content/Quick Start.md", []byte("# Plain\n"))
	require.NoError(t, err)

	assert.Equal(t, "quick-start", page.EffectiveSlug())
	assert.Equal(t, "Quick start", page.EffectiveTitle())
	assert.Equal(t, "# Plain\n", string(page.Markdown))
}

func TestParsePageEmptyFrontMatter(t *testing.T) {
	page, err := ParsePage("content/empty.md", []byte("---\n---\n# Body\n"))
	require.NoError(t, err)

	assert.Equal(t, FrontMatter{}, page.FrontMatter)
	assert.Equal(t, "empty", page.EffectiveSlug())
	assert.Equal(t, "# Body\n", string(page.Markdown))
}

func TestParsePageUnterminatedFrontMatter(t *testing.T) {
	_, err := ParsePage("bad.md", []byte("---\ntitle: x\n"))
	assert.Error(t, err)
}

func TestParsePageBadYAML(t *testing.T) {
	_, err := ParsePage("bad.md", []byte("---\ntitle: [unclosed\n---\nbody\n"))
	assert.Error(t, err)
}

func writeContent(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestBuild(t *testing.T) {
	contentDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "public")

	writeContent(t, contentDir, "index.md", "---\ntitle: Home\nslug: index\norder: 1\n---\n\n# Welcome\n\nSome *markdown* here.\n")
	writeContent(t, contentDir, "guide.md", "---\ntitle: Guide\norder: 2\n---\n\n## Usage\n")
	writeContent(t, contentDir, "draft.md", "---\ntitle: WIP\ndraft: true\n---\n\nnot yet\n")
	writeContent(t, contentDir, "notes.txt", "ignored")

	g := NewGenerator(Options{
		Title:      "Stanza",
		ContentDir: contentDir,
		OutputDir:  outputDir,
	}, nil)

	n, err := g.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	index, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	require.NoError(t, err)
	out := string(index)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>Home — Stanza</title>")
	assert.Contains(t, out, "<h1>Welcome</h1>")
	assert.Contains(t, out, "<em>markdown</em>")
	// Nav links both pages, marks the current one.
	assert.Contains(t, out, `href="/guide.html"`)
	assert.Contains(t, out, `class="active"`)
	// Drafts are skipped.
	_, err = os.Stat(filepath.Join(outputDir, "draft.html"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, CheckDocument(out))
}

func TestBuildEmptyContentDir(t *testing.T) {
	g := NewGenerator(Options{
		ContentDir: t.TempDir(),
		OutputDir:  filepath.Join(t.TempDir(), "public"),
	}, nil)

	_, err := g.Build(context.Background())
	require.Error(t, err)
	assert.True(t, stanzaerrors.IsType(err, stanzaerrors.ErrorTypeSite))
}

func TestBuildMissingContentDir(t *testing.T) {
	g := NewGenerator(Options{
		ContentDir: filepath.Join(t.TempDir(), "nope"),
		OutputDir:  filepath.Join(t.TempDir(), "public"),
	}, nil)

	_, err := g.Build(context.Background())
	assert.Error(t, err)
}

func TestRenderPageEscapesTitleButNotBody(t *testing.T) {
	page, err := ParsePage("x.md", []byte("---\ntitle: A <b> title\n---\n\n**bold**\n"))
	require.NoError(t, err)

	g := NewGenerator(Options{Title: "Docs"}, nil)
	out, err := g.RenderPage(page, []*Page{page})
	require.NoError(t, err)

	assert.Contains(t, out, "A &lt;b&gt; title")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestCheckDocumentRejectsPartial(t *testing.T) {
	err := CheckDocument("<div>no shell</div>")
	assert.Error(t, err)
}
