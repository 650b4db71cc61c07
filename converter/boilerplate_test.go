package converter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBoilerplate(t *testing.T) {
	b := DefaultBoilerplate()

	titles := []struct {
		title string
		want  bool
	}{
		{"string", true},
		{"minLength(1)", true},
		{"between(1, 5)", true},
		{"pattern(/^a$/)", true},
		{"positive()", true},
		{"nonNegative()", true},
		{"int", true},
		{"Name", false},
		{"positive(1)", false},
		{"DateTime", false},
	}
	for _, tt := range titles {
		t.Run("title "+tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsTitle(tt.title))
		})
	}

	descriptions := []struct {
		description string
		want        bool
	}{
		{"a string", true},
		{"a number", true},
		{"an integer", true},
		{"a string at least 3 character(s) long", true},
		{"a positive number", true},
		{"a number between 1 and 5", true},
		{"an array of at most 2 item(s)", true},
		{"a non empty string", true},
		{"a string to be decoded into a DateTime.Utc", false},
		{"Display name", false},
	}
	for _, tt := range descriptions {
		t.Run("description "+tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsDescription(tt.description))
		})
	}
}

func TestBoilerplateExtend(t *testing.T) {
	b := DefaultBoilerplate()
	b.DescriptionPatterns = append(b.DescriptionPatterns, regexp.MustCompile(`^internal:`))

	assert.True(t, b.IsDescription("internal: do not show"))
	assert.False(t, DefaultBoilerplate().IsDescription("internal: do not show"))
}
