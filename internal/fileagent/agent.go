// ABOUTME: File agent: read the file, then run exactly one action chosen by mode
// ABOUTME: Structural problems land in FileTask.Error; only model transport failures are returned as errors

package fileagent

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/pi-assist-go/internal/llm"
	pilog "github.com/mauromedda/pi-assist-go/internal/log"
	"github.com/mauromedda/pi-assist-go/internal/prompts"
	"github.com/mauromedda/pi-assist-go/internal/telemetry"
)

// Agent runs file tasks.
type Agent struct {
	chat    llm.Chatter
	catalog *prompts.Catalog
	metrics *telemetry.Metrics

	// Dir resolves relative paths; empty means the process working directory.
	Dir string
}

// New builds a file agent. metrics may be nil.
func New(chat llm.Chatter, catalog *prompts.Catalog, metrics *telemetry.Metrics) *Agent {
	return &Agent{chat: chat, catalog: catalog, metrics: metrics}
}

// Run reads path and applies mode to its contents.
func (a *Agent) Run(ctx context.Context, mode, path string) (FileTask, error) {
	t := FileTask{Mode: Mode(mode), FilePath: path}

	m, ok := ParseMode(mode)
	if !ok {
		t = t.withError(unsupportedMode(mode))
		a.record(t)
		return t, nil
	}

	text, err := readText(path, a.Dir)
	if err != nil {
		t = t.withError("Failed to read file: " + err.Error())
		a.record(t)
		return t, nil
	}
	t.FileText = text
	pilog.Debug("file agent: %s %s (%d bytes)", m, path, len(text))

	switch m {
	case ModeSummarize:
		t, err = a.summarize(ctx, t)
	case ModeTodos:
		t, err = a.todos(ctx, t)
	case ModeRewrite:
		t, err = a.rewrite(ctx, t)
	}
	if err != nil {
		a.metrics.RecordFileAction(string(m), "failure")
		return t, fmt.Errorf("file agent %s: %w", m, err)
	}
	a.record(t)
	return t, nil
}

func (a *Agent) record(t FileTask) {
	outcome := "result"
	if t.Failed() {
		outcome = "error"
	}
	mode := string(t.Mode)
	if _, ok := ParseMode(mode); !ok {
		mode = "unsupported"
	}
	a.metrics.RecordFileAction(mode, outcome)
}

// unsupportedMode names the bad mode and, when one is close, the likely intended mode.
func unsupportedMode(mode string) string {
	msg := fmt.Sprintf("unsupported mode %q", mode)
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	if matches := fuzzy.Find(mode, names); len(matches) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
	}
	return msg
}
