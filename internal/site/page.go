// Package site builds a static documentation site from markdown content,
// rendering every page through the stanza tree renderer.
package site

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML header of a content page.
type FrontMatter struct {
	Title string `yaml:"title"`
	Slug  string `yaml:"slug"`
	Order int    `yaml:"order"`
	Draft bool   `yaml:"draft"`
}

// Page is one parsed content file.
type Page struct {
	FrontMatter
	SourcePath string
	Markdown   []byte
}

const frontMatterDelimiter = "---"

// ParsePage splits an optional YAML front matter block from the markdown
// body. A file without front matter is a page with an empty title.
func ParsePage(sourcePath string, raw []byte) (*Page, error) {
	page := &Page{SourcePath: sourcePath, Markdown: raw}

	trimmed := bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if !bytes.HasPrefix(trimmed, []byte(frontMatterDelimiter+"\n")) &&
		!bytes.HasPrefix(trimmed, []byte(frontMatterDelimiter+"\r\n")) {
		return page, nil
	}

	// rest keeps the line break after the opening delimiter so the search
	// below also matches a closing delimiter on the very next line.
	rest := trimmed[len(frontMatterDelimiter):]
	end := bytes.Index(rest, []byte("\n"+frontMatterDelimiter))
	if end < 0 {
		return nil, fmt.Errorf("%s: unterminated front matter", sourcePath)
	}

	header := rest[:end]
	body := rest[end+len("\n"+frontMatterDelimiter):]
	body = bytes.TrimLeft(body, "\r\n")

	if err := yaml.Unmarshal(header, &page.FrontMatter); err != nil {
		return nil, fmt.Errorf("%s: parsing front matter: %w", sourcePath, err)
	}

	page.Markdown = body
	return page, nil
}

// EffectiveSlug returns the explicit slug or one derived from the source
// file name.
func (p *Page) EffectiveSlug() string {
	if p.Slug != "" {
		return p.Slug
	}

	name := p.SourcePath
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".md")
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

// EffectiveTitle returns the explicit title or one derived from the slug.
func (p *Page) EffectiveTitle() string {
	if p.Title != "" {
		return p.Title
	}
	slug := p.EffectiveSlug()
	if slug == "" {
		return "Untitled"
	}
	return strings.ToUpper(slug[:1]) + strings.ReplaceAll(slug[1:], "-", " ")
}
