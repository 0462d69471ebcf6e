// ABOUTME: Intent router: deterministic prefixes first, then model intent detection
// ABOUTME: Never fails on model noise; only transport errors from the model call are returned

package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/mauromedda/pi-assist-go/internal/llm"
	"github.com/mauromedda/pi-assist-go/internal/prompts"
)

// Router decides which action serves a request.
type Router struct {
	chat   llm.Chatter
	prompt prompts.Prompt
}

// NewRouter builds a router that consults chat with the catalog's intent prompt.
func NewRouter(chat llm.Chatter, catalog *prompts.Catalog) (*Router, error) {
	p, err := catalog.Get(prompts.NameIntent)
	if err != nil {
		return nil, fmt.Errorf("intent router: %w", err)
	}
	return &Router{chat: chat, prompt: p}, nil
}

// Decide routes one request. A non-nil error is a model transport failure;
// every other problem is reported in Decision.Error.
func (r *Router) Decide(ctx context.Context, request string) (Decision, error) {
	text := strings.TrimSpace(request)
	if text == "" {
		return Decision{Source: SourceInput, Error: "Empty input"}, nil
	}

	if d, ok := MatchPrefix(text); ok {
		return d, nil
	}
	return r.detect(ctx, text)
}
