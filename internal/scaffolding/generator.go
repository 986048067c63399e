// Package scaffolding generates stanza project skeletons and component
// source files from built-in templates.
package scaffolding

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	stanzaerrors "github.com/stanza-dev/stanza/internal/errors"
	"github.com/stanza-dev/stanza/internal/validation"
)

// Generator writes scaffolded files under a root directory.
type Generator struct {
	root   string
	author string
}

// NewGenerator creates a generator rooted at dir.
func NewGenerator(dir, author string) *Generator {
	return &Generator{root: dir, author: author}
}

// funcMap exposes the helpers templates rely on.
var funcMap = template.FuncMap{
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
}

// GenerateProject writes a complete project skeleton named name into
// root/name. The directory must not already contain a go.mod.
func (g *Generator) GenerateProject(name, modulePath string) error {
	if err := validation.ValidateProjectName(name); err != nil {
		return err
	}
	if modulePath == "" {
		modulePath = name
	}

	projectDir := filepath.Join(g.root, name)
	if _, err := os.Stat(filepath.Join(projectDir, "go.mod")); err == nil {
		return stanzaerrors.NewGenerateError(
			stanzaerrors.CodeWriteFailed,
			fmt.Sprintf("directory %s already contains a project", projectDir),
			nil,
		)
	}

	ctx := TemplateContext{
		ProjectName: name,
		ModulePath:  modulePath,
		Author:      g.author,
		Date:        time.Now().Format("2006-01-02"),
	}

	for _, file := range ProjectFiles() {
		target := filepath.Join(projectDir, file.Path)
		if err := g.writeTemplated(target, file.Path, file.Content, ctx); err != nil {
			return err
		}
	}
	return nil
}

// GenerateComponent writes a single component, page, or model file. kind
// selects the template; name must be a valid component name.
func (g *Generator) GenerateComponent(kind, name, packageName, outputDir string) (string, error) {
	if err := validation.ValidateComponentName(name); err != nil {
		return "", err
	}
	if outputDir != "" {
		if err := validation.ValidateOutputPath(outputDir); err != nil {
			return "", err
		}
	}

	templates := ComponentTemplates()
	content, ok := templates[kind]
	if !ok {
		return "", stanzaerrors.NewGenerateError(
			stanzaerrors.CodeTemplateMissing,
			fmt.Sprintf("unknown template %q (available: %s)", kind, strings.Join(TemplateKinds(), ", ")),
			nil,
		)
	}

	if packageName == "" {
		packageName = "components"
	}
	if outputDir == "" {
		outputDir = packageName
	}

	ctx := TemplateContext{
		ComponentName: exportedName(name),
		PackageName:   packageName,
		Author:        g.author,
		Date:          time.Now().Format("2006-01-02"),
	}

	target := filepath.Join(g.root, outputDir, strings.ToLower(name)+".go")
	if err := g.writeTemplated(target, kind, content, ctx); err != nil {
		return "", err
	}
	return target, nil
}

// TemplateKinds lists the available component template names, sorted.
func TemplateKinds() []string {
	templates := ComponentTemplates()
	kinds := make([]string, 0, len(templates))
	for kind := range templates {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func (g *Generator) writeTemplated(target, name, content string, ctx TemplateContext) error {
	tmpl, err := template.New(name).Funcs(funcMap).Parse(content)
	if err != nil {
		return stanzaerrors.NewInternalError(
			fmt.Sprintf("parsing template %s", name), err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, ctx); err != nil {
		return stanzaerrors.NewGenerateError(
			stanzaerrors.CodeWriteFailed,
			fmt.Sprintf("rendering template %s", name), err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return stanzaerrors.NewIOError(
			stanzaerrors.CodeWriteFailed,
			fmt.Sprintf("creating directory for %s", target), err)
	}
	if err := os.WriteFile(target, []byte(sb.String()), 0o644); err != nil {
		return stanzaerrors.NewIOError(
			stanzaerrors.CodeWriteFailed,
			fmt.Sprintf("writing %s", target), err)
	}
	return nil
}

// exportedName upper-cases the first rune so generated identifiers are
// exported.
func exportedName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
