// ABOUTME: Model-backed intent detection for requests no command prefix matched
// ABOUTME: Unparseable replies fall back to classify_text; an unknown action is a user-facing error

package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pilog "github.com/mauromedda/pi-assist-go/internal/log"
	"github.com/mauromedda/pi-assist-go/internal/llm"
	"github.com/mauromedda/pi-assist-go/internal/prompts"
)

// errBadFilePath marks a file_path field that is neither absent nor a string.
var errBadFilePath = errors.New("file_path is not a string")

// detect asks the model for {action, file_path, note}. The returned error is
// only ever a transport failure from the model call.
func (r *Router) detect(ctx context.Context, text string) (Decision, error) {
	prompt, err := r.prompt.Render(text)
	if err != nil {
		return Decision{}, err
	}

	raw, err := r.chat.Chat(ctx, prompt, llm.Options{
		MaxTokens:   r.prompt.MaxTokens,
		Temperature: r.prompt.Temperature,
		Purpose:     prompts.NameIntent,
	})
	if err != nil {
		return Decision{}, fmt.Errorf("intent detection: %w", err)
	}

	d, err := interpret(raw)
	if err != nil {
		pilog.Debugw("intent reply unusable, defaulting to classify_text", "error", err, "raw", raw)
		return Decision{Action: ActionClassifyText, Source: SourceFallback}, nil
	}
	return d, nil
}

// interpret turns a raw intent reply into a Decision. Errors mean the reply
// could not be read at all; a readable reply with an unknown action yields
// a Decision carrying the error text instead.
func interpret(raw string) (Decision, error) {
	obj, err := ExtractJSONObject(raw)
	if err != nil {
		return Decision{}, err
	}

	path, err := stringField(obj, "file_path")
	if err != nil {
		return Decision{}, err
	}
	note, _ := stringField(obj, "note")

	name, _ := obj["action"].(string)
	action, ok := ParseAction(name)
	if !ok {
		return Decision{Source: SourceModel, Error: "Bad action from model. Raw: " + raw}, nil
	}

	d := Decision{Action: action, Note: note, Source: SourceModel}
	if path = strings.TrimSpace(path); path != "" {
		d.FilePath = path
	}
	return d, nil
}

func stringField(obj map[string]any, key string) (string, error) {
	switch v := obj[key].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		if key == "file_path" {
			return "", errBadFilePath
		}
		return "", fmt.Errorf("%s is %T, not a string", key, v)
	}
}
