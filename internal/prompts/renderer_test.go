// ABOUTME: Tests for template variable rendering in prompts
// ABOUTME: Validates substitution, missing vars, literal JSON braces, and parse errors

package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVariables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		vars    map[string]string
		want    string
	}{
		{"all vars", "Entity: {{.Text}} ({{.Kind}})", map[string]string{"Text": "IBM", "Kind": "acronym"}, "Entity: IBM (acronym)"},
		{"missing var is empty", "A{{.Missing}}B", map[string]string{}, "AB"},
		{"json braces are literal", `{"action":"x"} {{.Text}}`, map[string]string{"Text": "y"}, `{"action":"x"} y`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := RenderVariables(tt.content, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderVariables_ParseError(t *testing.T) {
	t.Parallel()

	_, err := RenderVariables("{{.Text", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse template")
}

func TestPromptRender_TrimsAndKeepsUserText(t *testing.T) {
	t.Parallel()

	p := Prompt{Name: "t", Template: "\n  Entity: {{.Text}}\n\n"}
	got, err := p.Render("{{ not a template }}")
	require.NoError(t, err)
	assert.Equal(t, "Entity: {{ not a template }}", got)
}
