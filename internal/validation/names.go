// Package validation checks user-supplied names and paths before they are
// interpolated into generated files or used as filesystem locations.
package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	stanzaerrors "github.com/stanza-dev/stanza/internal/errors"
)

var (
	// Project names become directory and module names.
	projectNameRe = regexp.MustCompile(`^[a-z][a-z0-9-]{0,63}$`)

	// Component names become Go identifiers, so they start with a letter
	// and stay alphanumeric.
	componentNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{0,63}$`)
)

// reservedNames cannot be used for projects or components; they collide
// with Go tooling or generated package layout.
var reservedNames = map[string]bool{
	"go": true, "main": true, "internal": true, "vendor": true,
	"test": true, "stanza": true,
}

// ValidateProjectName checks a project name for use as a directory and
// module path element.
func ValidateProjectName(name string) error {
	if name == "" {
		return stanzaerrors.NewValidationError(
			stanzaerrors.CodeInvalidName, "project name is empty")
	}
	if reservedNames[strings.ToLower(name)] {
		return stanzaerrors.NewValidationError(
			stanzaerrors.CodeInvalidName,
			fmt.Sprintf("project name %q is reserved", name))
	}
	if !projectNameRe.MatchString(name) {
		return stanzaerrors.NewValidationError(
			stanzaerrors.CodeInvalidName,
			fmt.Sprintf("project name %q must be lowercase letters, digits, and hyphens, starting with a letter", name))
	}
	return nil
}

// ValidateComponentName checks a component name for use as a Go identifier
// in generated code.
func ValidateComponentName(name string) error {
	if name == "" {
		return stanzaerrors.NewValidationError(
			stanzaerrors.CodeInvalidName, "component name is empty")
	}
	if reservedNames[strings.ToLower(name)] {
		return stanzaerrors.NewValidationError(
			stanzaerrors.CodeInvalidName,
			fmt.Sprintf("component name %q is reserved", name))
	}
	if !componentNameRe.MatchString(name) {
		return stanzaerrors.NewValidationError(
			stanzaerrors.CodeInvalidName,
			fmt.Sprintf("component name %q must be alphanumeric and start with a letter", name))
	}
	return nil
}

// ValidateOutputPath rejects paths that escape the working directory.
func ValidateOutputPath(path string) error {
	if path == "" {
		return stanzaerrors.NewValidationError(
			stanzaerrors.CodeInvalidName, "output path is empty")
	}

	clean := filepath.Clean(path)
	if strings.Contains(clean, "..") {
		return stanzaerrors.NewValidationError(
			stanzaerrors.CodePathTraversal,
			fmt.Sprintf("path %q contains directory traversal", path))
	}
	if filepath.IsAbs(clean) {
		return stanzaerrors.NewValidationError(
			stanzaerrors.CodePathTraversal,
			fmt.Sprintf("absolute path %q not allowed", path))
	}
	return nil
}
