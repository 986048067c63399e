package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	stanzaerrors "github.com/stanza-dev/stanza/internal/errors"
)

func TestValidateProjectName(t *testing.T) {
	valid := []string{"blog", "my-site", "docs2", "a"}
	for _, name := range valid {
		assert.NoError(t, ValidateProjectName(name), name)
	}

	invalid := []string{
		"", "My-Site", "1site", "-lead", "has space", "has_underscore",
		"semi;colon", "../escape", "main", "internal", "stanza",
	}
	for _, name := range invalid {
		assert.Error(t, ValidateProjectName(name), name)
	}
}

func TestValidateComponentName(t *testing.T) {
	valid := []string{"Button", "navBar", "Card2", "x"}
	for _, name := range valid {
		assert.NoError(t, ValidateComponentName(name), name)
	}

	invalid := []string{"", "2Cool", "has-dash", "has space", "a.b", "main", "vendor"}
	for _, name := range invalid {
		assert.Error(t, ValidateComponentName(name), name)
	}
}

func TestValidateOutputPath(t *testing.T) {
	assert.NoError(t, ValidateOutputPath("components"))
	assert.NoError(t, ValidateOutputPath("public/docs"))

	tests := []string{"", "../outside", "a/../../b", "/etc/passwd"}
	for _, path := range tests {
		assert.Error(t, ValidateOutputPath(path), path)
	}
}

func TestValidationErrorsAreTyped(t *testing.T) {
	err := ValidateProjectName("Bad Name")
	assert.True(t, stanzaerrors.IsType(err, stanzaerrors.ErrorTypeValidation))

	err = ValidateOutputPath("../x")
	var se *stanzaerrors.StanzaError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, stanzaerrors.CodePathTraversal, se.Code)
}
