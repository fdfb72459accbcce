package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_Template(t *testing.T) {
	lib := NewLibrary()

	for _, section := range SectionNames {
		tmpl, err := lib.Template(section)
		require.NoError(t, err)
		assert.NotEmpty(t, tmpl)
	}

	_, err := lib.Template("bogus_section")
	assert.Error(t, err)
}

func TestLibrary_Render(t *testing.T) {
	lib := NewLibrary()

	rendered, err := lib.Render(SectionHerbalProtocol, map[string]string{
		"symptoms":     "poor sleep",
		"goals":        "deeper rest",
		"restrictions": "none",
		"traditions":   "Ayurvedic",
		"herb_context": "- Ashwagandha",
	})
	require.NoError(t, err)

	assert.Contains(t, rendered, "poor sleep")
	assert.Contains(t, rendered, "deeper rest")
	assert.Contains(t, rendered, "- Ashwagandha")
	assert.NotContains(t, rendered, "{{")
}

func TestLibrary_Render_PartialSubstitutions(t *testing.T) {
	lib := NewLibrary()

	// Missing keys render as empty text rather than leaking placeholders.
	rendered, err := lib.Render(SectionMindAndSpirit, map[string]string{
		"symptoms": "stress",
	})
	require.NoError(t, err)
	assert.Contains(t, rendered, "stress")
	assert.NotContains(t, rendered, "{{")
	assert.NotContains(t, rendered, "}}")
}

func TestLibrary_SetTemplate(t *testing.T) {
	lib := NewLibrary()

	require.NoError(t, lib.setTemplate(SectionNourishment, "custom {{symptoms}}"))

	rendered, err := lib.Render(SectionNourishment, map[string]string{"symptoms": "bloating"})
	require.NoError(t, err)
	assert.Equal(t, "custom bloating", rendered)

	assert.Error(t, lib.setTemplate("bogus_section", "anything"),
		"overrides must not invent sections")
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     string
		subs     map[string]string
		expected string
	}{
		{
			name:     "basic substitution",
			tmpl:     "hello {{name}}",
			subs:     map[string]string{"name": "world"},
			expected: "hello world",
		},
		{
			name:     "unknown key becomes empty",
			tmpl:     "a{{missing}}b",
			subs:     map[string]string{},
			expected: "ab",
		},
		{
			name:     "whitespace inside braces",
			tmpl:     "{{ key }}",
			subs:     map[string]string{"key": "v"},
			expected: "v",
		},
		{
			name:     "unterminated placeholder passes through",
			tmpl:     "start {{open",
			subs:     map[string]string{"open": "x"},
			expected: "start {{open",
		},
		{
			name:     "no placeholders",
			tmpl:     "plain text",
			subs:     map[string]string{"key": "v"},
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, substitute(tt.tmpl, tt.subs))
		})
	}
}
