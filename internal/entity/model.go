// ABOUTME: classify_text leaf: asks the model for {label, confidence} JSON
// ABOUTME: Unlike intent routing, unreadable or out-of-range replies are explicit errors

package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mauromedda/pi-assist-go/internal/intent"
	"github.com/mauromedda/pi-assist-go/internal/llm"
	"github.com/mauromedda/pi-assist-go/internal/prompts"
)

// ModelResult is the classify_text outcome. Exactly one of Result and Error is set;
// Parsed accompanies Result.
type ModelResult struct {
	Result string          `json:"result,omitempty"`
	Parsed *Classification `json:"parsed,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// ModelClassifier classifies entity text with the external model.
type ModelClassifier struct {
	chat   llm.Chatter
	prompt prompts.Prompt
}

// NewModelClassifier binds chat to the catalog's classify prompt.
func NewModelClassifier(chat llm.Chatter, catalog *prompts.Catalog) (*ModelClassifier, error) {
	p, err := catalog.Get(prompts.NameClassify)
	if err != nil {
		return nil, fmt.Errorf("model classifier: %w", err)
	}
	return &ModelClassifier{chat: chat, prompt: p}, nil
}

// Classify returns the model's classification of text. A non-nil error is a
// transport failure; bad replies are reported in ModelResult.Error.
func (c *ModelClassifier) Classify(ctx context.Context, text string) (ModelResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ModelResult{Error: "Empty input"}, nil
	}

	prompt, err := c.prompt.Render(text)
	if err != nil {
		return ModelResult{}, err
	}
	raw, err := c.chat.Chat(ctx, prompt, llm.Options{
		MaxTokens:   c.prompt.MaxTokens,
		Temperature: c.prompt.Temperature,
		Purpose:     prompts.NameClassify,
	})
	if err != nil {
		return ModelResult{}, fmt.Errorf("classification: %w", err)
	}

	obj, err := intent.ExtractJSONObject(raw)
	if err != nil {
		return ModelResult{Error: fmt.Sprintf("Classification did not return JSON: %v. Raw: %s", err, raw)}, nil
	}

	parsed, err := decodeClassification(obj)
	if err != nil {
		return ModelResult{Error: fmt.Sprintf("Classification returned invalid fields: %v. Raw: %s", err, raw)}, nil
	}

	out, err := json.Marshal(parsed)
	if err != nil {
		return ModelResult{}, fmt.Errorf("encoding classification: %w", err)
	}
	return ModelResult{Result: string(out), Parsed: &parsed}, nil
}

func decodeClassification(obj map[string]any) (Classification, error) {
	name, ok := obj["label"].(string)
	if !ok {
		return Classification{}, fmt.Errorf("label missing or not a string")
	}
	conf, ok := obj["confidence"].(float64)
	if !ok {
		return Classification{}, fmt.Errorf("confidence missing or not a number")
	}
	c := Classification{Label: Label(name), Confidence: conf}
	if err := c.Valid(); err != nil {
		return Classification{}, err
	}
	return c, nil
}
