// ABOUTME: Result printing: plain text, JSON, or styled markdown when stdout is a terminal
// ABOUTME: Structural errors print as "ERROR: <message>" lines

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/mauromedda/pi-assist-go/internal/assistant"
	"github.com/mauromedda/pi-assist-go/internal/entity"
	"github.com/mauromedda/pi-assist-go/internal/fileagent"
	"github.com/mauromedda/pi-assist-go/internal/intent"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type printer struct {
	out    io.Writer
	asJSON bool
	tty    bool
	width  int
}

func newPrinter(out io.Writer, asJSON bool) *printer {
	p := &printer{out: out, asJSON: asJSON, width: 80}
	if fd, ok := terminalFd(out); ok {
		p.tty = true
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			p.width = w
		}
	}
	return p
}

// terminalFd returns the descriptor of v when it is an *os.File attached to a terminal.
func terminalFd(v any) (int, bool) {
	f, ok := v.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.tty {
		return text
	}
	return s.Render(text)
}

func (p *printer) errorLine(msg string) error {
	_, err := fmt.Fprintln(p.out, p.style(errorStyle, "ERROR:")+" "+msg)
	return err
}

func (p *printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// text prints a result; model-written prose is rendered as markdown on a terminal.
func (p *printer) text(s string, prose bool) error {
	if prose && p.tty {
		s = renderMarkdown(s, p.width)
	}
	_, err := fmt.Fprintln(p.out, s)
	return err
}

func (p *printer) fileTask(t fileagent.FileTask) error {
	if p.asJSON {
		return p.writeJSON(t)
	}
	if t.Failed() {
		return p.errorLine(t.Error)
	}
	return p.text(t.Result, t.Mode != fileagent.ModeTodos)
}

func (p *printer) response(r assistant.Response) error {
	if p.asJSON {
		return p.writeJSON(r)
	}
	if r.Failed() {
		return p.errorLine(r.Error)
	}
	if r.Action != intent.ActionClassifyText {
		return p.text(r.Result, r.Action != intent.ActionTodos)
	}

	if err := p.text(r.Result, false); err != nil {
		return err
	}
	if r.Validation == nil {
		return nil
	}
	if r.Validation.Parsed == nil {
		return p.errorLine(r.Validation.Error)
	}
	verdict := "disagrees"
	if r.Agreement() {
		verdict = "agrees"
	}
	_, err := fmt.Fprintf(p.out, "%s %s %s\n",
		p.style(mutedStyle, "validator:"), formatClassification(*r.Validation.Parsed), p.style(mutedStyle, "("+verdict+")"))
	return err
}

func (p *printer) validation(v entity.Validation) error {
	if p.asJSON {
		return p.writeJSON(v)
	}
	if v.Parsed == nil {
		return p.errorLine(v.Error)
	}
	_, err := fmt.Fprintln(p.out, p.style(labelStyle, string(v.Parsed.Label))+fmt.Sprintf(" (confidence %.2f)", v.Parsed.Confidence))
	return err
}

func formatClassification(c entity.Classification) string {
	return fmt.Sprintf("%s (confidence %.2f)", c.Label, c.Confidence)
}

// renderMarkdown styles md for the terminal; it returns md unchanged when
// rendering fails.
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n ")
}
