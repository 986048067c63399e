package scaffolding

// ProjectFile is one file emitted by the project scaffolder. Path is
// relative to the project root and may contain template placeholders.
type ProjectFile struct {
	Path    string
	Content string
}

// TemplateContext carries the values interpolated into templates.
type TemplateContext struct {
	ProjectName   string
	ModulePath    string
	ComponentName string
	PackageName   string
	Author        string
	Date          string
}

// ProjectFiles returns the file set for a fresh stanza project.
func ProjectFiles() []ProjectFile {
	return []ProjectFile{
		{Path: "go.mod", Content: goModTemplate},
		{Path: "main.go", Content: mainGoTemplate},
		{Path: "components/layout.go", Content: layoutTemplate},
		{Path: "pages/home.go", Content: homePageTemplate},
		{Path: "content/index.md", Content: indexContentTemplate},
		{Path: ".stanza.yml", Content: configTemplate},
		{Path: "Dockerfile", Content: dockerfileTemplate},
		{Path: ".github/workflows/ci.yml", Content: ciTemplate},
		{Path: ".gitignore", Content: gitignoreTemplate},
		{Path: "README.md", Content: readmeTemplate},
	}
}

// ComponentTemplates returns the built-in generator templates keyed by kind.
func ComponentTemplates() map[string]string {
	return map[string]string{
		"component": componentTemplate,
		"page":      pageTemplate,
		"model":     modelTemplate,
	}
}

const goModTemplate = `module {{.ModulePath}}

go 1.24

require github.com/stanza-dev/stanza v0.1.0
`

const mainGoTemplate = `package main

import (
	"log"
	"net/http"

	"github.com/stanza-dev/stanza/pkg/html"

	"{{.ModulePath}}/pages"
)

func main() {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		out, err := html.Render(pages.Home())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<!DOCTYPE html>" + out))
	})

	log.Println("{{.ProjectName}} listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
`

const layoutTemplate = `package components

import "github.com/stanza-dev/stanza/pkg/html"

// Layout wraps page content in the shared document shell.
func Layout(title string, content ...any) html.Node {
	return html.El("html", []html.Attr{html.A("lang", "en")},
		html.El("head", nil,
			html.El("meta", []html.Attr{html.A("charset", "utf-8")}),
			html.Text("title", title),
		),
		html.El("body", nil, content...),
	)
}
`

const homePageTemplate = `package pages

import (
	"github.com/stanza-dev/stanza/pkg/html"

	"{{.ModulePath}}/components"
)

// Home is the landing page.
func Home() html.Node {
	return components.Layout("{{.ProjectName}}",
		html.Text("h1", "Welcome to {{.ProjectName}}"),
		html.Text("p", "Edit pages/home.go to change this page."),
	)
}
`

const indexContentTemplate = `---
title: {{.ProjectName}}
order: 1
---

# {{.ProjectName}}

This page is rendered by ` + "`stanza build`" + ` from content/index.md.
`

const configTemplate = `server:
  host: localhost
  port: 8080
  hot_reload: true

site:
  title: {{.ProjectName}}
  content_dir: content
  output_dir: public

generate:
  output_dir: components
  package_name: components
`

const dockerfileTemplate = `FROM golang:1.24-alpine AS build
WORKDIR /src
COPY go.mod go.sum* ./
RUN go mod download
COPY . .
RUN CGO_ENABLED=0 go build -o /bin/app .

FROM alpine:3.20
COPY --from=build /bin/app /bin/app
EXPOSE 8080
ENTRYPOINT ["/bin/app"]
`

const ciTemplate = `name: ci

on:
  push:
    branches: [main]
  pull_request:

jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
        with:
          go-version: "1.24"
      - run: go vet ./...
      - run: go test ./...
`

const gitignoreTemplate = `public/
*.log
.DS_Store
`

const readmeTemplate = `# {{.ProjectName}}

A [stanza](https://github.com/stanza-dev/stanza) project.

## Development

    go run .          # start the app on :8080
    stanza serve      # preview with hot reload
    stanza build      # build the static site from content/

## Layout

    components/   shared html.Node components
    pages/        page functions
    content/      markdown content for stanza build
`

const componentTemplate = `package {{.PackageName}}

import "github.com/stanza-dev/stanza/pkg/html"

// {{.ComponentName}} renders the {{.ComponentName}} component.
func {{.ComponentName}}(children ...any) html.Node {
	return html.El("div", []html.Attr{html.A("class", "{{.ComponentName | lower}}")}, children...)
}
`

const pageTemplate = `package pages

import "github.com/stanza-dev/stanza/pkg/html"

// {{.ComponentName}} is a page.
func {{.ComponentName}}() html.Node {
	return html.El("main", nil,
		html.Text("h1", "{{.ComponentName}}"),
	)
}
`

const modelTemplate = `package {{.PackageName}}

import (
	"context"

	"github.com/stanza-dev/stanza/pkg/query"
)

// {{.ComponentName}}Store wraps queries against the {{.ComponentName | lower}}s table.
type {{.ComponentName}}Store struct {
	driver query.Driver
}

// New{{.ComponentName}}Store creates a store backed by driver.
func New{{.ComponentName}}Store(driver query.Driver) *{{.ComponentName}}Store {
	return &{{.ComponentName}}Store{driver: driver}
}

// Find returns one record by id.
func (s *{{.ComponentName}}Store) Find(ctx context.Context, id any) (query.Row, error) {
	return query.NewWithDriver(s.driver).
		Table("{{.ComponentName | lower}}s").
		Select().
		Where("id", id).
		First(ctx)
}

// All returns every record.
func (s *{{.ComponentName}}Store) All(ctx context.Context) (*query.Result, error) {
	return query.NewWithDriver(s.driver).
		Table("{{.ComponentName | lower}}s").
		Select().
		Execute(ctx)
}
`
