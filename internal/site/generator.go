package site

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	stanzaerrors "github.com/stanza-dev/stanza/internal/errors"
	"github.com/stanza-dev/stanza/internal/logging"
	"github.com/stanza-dev/stanza/pkg/html"
)

// Options configures a site build.
type Options struct {
	Title      string
	BaseURL    string
	ContentDir string
	OutputDir  string
}

// Generator builds the static site.
type Generator struct {
	opts     Options
	markdown goldmark.Markdown
	logger   logging.Logger
}

// NewGenerator creates a site generator.
func NewGenerator(opts Options, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Generator{
		opts: opts,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(ghtml.WithUnsafe()),
		),
		logger: logger.WithComponent("site"),
	}
}

// Build walks the content directory, renders every non-draft markdown page
// through the layout, and writes the HTML files into the output directory.
// It returns the number of pages written.
func (g *Generator) Build(ctx context.Context) (int, error) {
	pages, err := g.loadPages()
	if err != nil {
		return 0, err
	}
	if len(pages) == 0 {
		return 0, stanzaerrors.NewSiteError(
			stanzaerrors.CodeBuildFailed,
			fmt.Sprintf("no markdown content found under %s", g.opts.ContentDir),
			nil,
		)
	}

	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return 0, stanzaerrors.NewIOError(
			stanzaerrors.CodeWriteFailed, "creating output directory", err)
	}

	for _, page := range pages {
		out, err := g.RenderPage(page, pages)
		if err != nil {
			return 0, err
		}

		target := filepath.Join(g.opts.OutputDir, page.EffectiveSlug()+".html")
		if err := os.WriteFile(target, []byte(out), 0o644); err != nil {
			return 0, stanzaerrors.NewIOError(
				stanzaerrors.CodeWriteFailed,
				fmt.Sprintf("writing %s", target), err)
		}
		g.logger.Debug(ctx, "wrote page", "slug", page.EffectiveSlug(), "target", target)
	}

	g.logger.Info(ctx, "site built", "pages", len(pages), "output", g.opts.OutputDir)
	return len(pages), nil
}

// loadPages parses every .md file under the content dir, skipping drafts,
// sorted by front-matter order then title.
func (g *Generator) loadPages() ([]*Page, error) {
	var pages []*Page

	err := filepath.WalkDir(g.opts.ContentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		page, err := ParsePage(path, raw)
		if err != nil {
			return err
		}
		if page.Draft {
			return nil
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, stanzaerrors.NewSiteError(
			stanzaerrors.CodeBuildFailed,
			fmt.Sprintf("walking %s", g.opts.ContentDir), err)
	}

	sort.SliceStable(pages, func(i, j int) bool {
		if pages[i].Order != pages[j].Order {
			return pages[i].Order < pages[j].Order
		}
		return pages[i].EffectiveTitle() < pages[j].EffectiveTitle()
	})
	return pages, nil
}

// RenderPage converts one page's markdown and wraps it in the site layout.
func (g *Generator) RenderPage(page *Page, all []*Page) (string, error) {
	var body bytes.Buffer
	if err := g.markdown.Convert(page.Markdown, &body); err != nil {
		return "", stanzaerrors.NewSiteError(
			stanzaerrors.CodeBuildFailed,
			fmt.Sprintf("converting %s", page.SourcePath), err)
	}

	doc := g.layout(page, all, body.String())
	out, err := html.Render(doc)
	if err != nil {
		return "", stanzaerrors.NewSiteError(
			stanzaerrors.CodeBuildFailed,
			fmt.Sprintf("rendering %s", page.SourcePath), err)
	}
	return "<!DOCTYPE html>" + out, nil
}

// layout is the site chrome, built as a stanza node tree. The converted
// markdown is already HTML, so it is inserted through a Raw node rather
// than re-escaped.
func (g *Generator) layout(page *Page, all []*Page, body string) html.Node {
	nav := make([]any, 0, len(all))
	for _, p := range all {
		attrs := []html.Attr{html.A("href", g.opts.BaseURL+"/"+p.EffectiveSlug()+".html")}
		if p.EffectiveSlug() == page.EffectiveSlug() {
			attrs = append(attrs, html.A("class", "active"))
		}
		nav = append(nav, html.El("li", nil, html.El("a", attrs, p.EffectiveTitle())))
	}

	title := page.EffectiveTitle()
	if g.opts.Title != "" {
		title += " — " + g.opts.Title
	}

	return html.El("html", []html.Attr{html.A("lang", "en")},
		html.El("head", nil,
			html.El("meta", []html.Attr{html.A("charset", "utf-8")}),
			html.El("meta", []html.Attr{
				html.A("name", "viewport"),
				html.A("content", "width=device-width, initial-scale=1"),
			}),
			html.Text("title", title),
		),
		html.El("body", nil,
			html.El("header", nil, html.Text("strong", g.opts.Title)),
			html.El("nav", nil, html.El("ul", nil, nav...)),
			html.El("main", nil, html.Raw(body)),
		),
	)
}
