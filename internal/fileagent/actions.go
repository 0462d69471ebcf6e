// ABOUTME: The three file actions: model summary, local TODO extraction, model rewrite
// ABOUTME: Every action rejects blank text with "File empty" before touching the model

package fileagent

import (
	"context"
	"regexp"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/mauromedda/pi-assist-go/internal/llm"
	"github.com/mauromedda/pi-assist-go/internal/prompts"
)

// MaxInputChars bounds the text sent to the model, counted in grapheme clusters.
const MaxInputChars = 8000

// NoTodos is the todos result when no marker line exists.
const NoTodos = "No TODOs found."

const errFileEmpty = "File empty"

// markerLine captures a marker line from the marker onward, without any leading "#".
var markerLine = regexp.MustCompile(`(?im)^[ \t]*(?:#[ \t]*)?((?:TODO|FIXME|XXX)\b.*)$`)

// truncate keeps the first n user-perceived characters of s.
func truncate(s string, n int) string {
	rest := s
	state := -1
	for i := 0; i < n && rest != ""; i++ {
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return s[:len(s)-len(rest)]
}

// ExtractTodos returns every marker line, trimmed and bulleted, in file order.
func ExtractTodos(text string) string {
	matches := markerLine.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return NoTodos
	}
	lines := make([]string, len(matches))
	for i, m := range matches {
		lines[i] = "- " + strings.TrimSpace(m[1])
	}
	return strings.Join(lines, "\n")
}

func (a *Agent) todos(_ context.Context, t FileTask) (FileTask, error) {
	text := strings.TrimSpace(t.FileText)
	if text == "" {
		return t.withError(errFileEmpty), nil
	}
	return t.withResult(ExtractTodos(text)), nil
}

func (a *Agent) summarize(ctx context.Context, t FileTask) (FileTask, error) {
	return a.viaModel(ctx, t, prompts.NameSummarize)
}

func (a *Agent) rewrite(ctx context.Context, t FileTask) (FileTask, error) {
	return a.viaModel(ctx, t, prompts.NameRewrite)
}

// viaModel renders the named prompt over the truncated text and returns the
// model reply as the result, whatever it contains.
func (a *Agent) viaModel(ctx context.Context, t FileTask, name string) (FileTask, error) {
	text := strings.TrimSpace(t.FileText)
	if text == "" {
		return t.withError(errFileEmpty), nil
	}

	p, err := a.catalog.Get(name)
	if err != nil {
		return t, err
	}
	prompt, err := p.Render(truncate(text, MaxInputChars))
	if err != nil {
		return t, err
	}
	out, err := a.chat.Chat(ctx, prompt, llm.Options{
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
		Purpose:     name,
	})
	if err != nil {
		return t, err
	}
	return t.withResult(out), nil
}
