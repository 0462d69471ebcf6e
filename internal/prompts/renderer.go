// ABOUTME: Template variable resolution for prompts using text/template
// ABOUTME: Replaces {{.Text}}-style placeholders with runtime values

package prompts

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// RenderVariables replaces template variables in the content string.
// Variables are passed as a map; undefined variables produce empty strings.
func RenderVariables(content string, vars map[string]string) (string, error) {
	tmpl, err := template.New("prompt").Option("missingkey=zero").Parse(content)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

// Render fills the prompt with text and trims surrounding whitespace.
func (p Prompt) Render(text string) (string, error) {
	out, err := RenderVariables(p.Template, map[string]string{"Text": text})
	if err != nil {
		return "", fmt.Errorf("render %s prompt: %w", p.Name, err)
	}
	return strings.TrimSpace(out), nil
}
