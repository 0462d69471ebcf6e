// ABOUTME: Text-in/text-out model collaborator built on the pkg/ai provider stream
// ABOUTME: One user message per call; records latency, tokens and status in telemetry

package llm

import (
	"context"
	"fmt"
	"time"

	pilog "github.com/mauromedda/pi-assist-go/internal/log"
	"github.com/mauromedda/pi-assist-go/internal/telemetry"
	"github.com/mauromedda/pi-assist-go/pkg/ai"
)

// Options configures one generation call.
type Options struct {
	MaxTokens   int
	Temperature float64
	Purpose     string // prompt name, used for logs and metrics
}

// Chatter sends a prompt to the external model and returns its text.
// Errors are transport or provider failures; an empty reply is not an error.
type Chatter interface {
	Chat(ctx context.Context, prompt string, opts Options) (string, error)
}

// Client implements Chatter over an ai.ApiProvider.
type Client struct {
	provider ai.ApiProvider
	model    ai.Model
	metrics  *telemetry.Metrics
}

// NewClient binds a provider to a model. metrics may be nil.
func NewClient(provider ai.ApiProvider, model ai.Model, metrics *telemetry.Metrics) *Client {
	return &Client{provider: provider, model: model, metrics: metrics}
}

// Model returns the model this client talks to.
func (c *Client) Model() ai.Model {
	return c.model
}

// Chat sends prompt as a single user message and collects the streamed reply.
func (c *Client) Chat(ctx context.Context, prompt string, opts Options) (string, error) {
	llmCtx := &ai.Context{
		Messages: []ai.Message{ai.NewTextMessage(ai.RoleUser, prompt)},
	}
	streamOpts := &ai.StreamOptions{
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}

	start := time.Now()
	msg, err := c.provider.Stream(ctx, &c.model, llmCtx, streamOpts).Collect(ctx)
	elapsed := time.Since(start)

	call := telemetry.ModelCall{
		Purpose:  opts.Purpose,
		ModelID:  c.model.ID,
		Err:      err,
		Duration: elapsed,
	}
	if msg != nil {
		call.InputTokens = msg.Usage.InputTokens
		call.OutputTokens = msg.Usage.OutputTokens
	}
	c.metrics.RecordModelCall(call)

	if err != nil {
		pilog.Debugw("model call failed", "purpose", opts.Purpose, "model", c.model.ID, "elapsed", elapsed, "error", err)
		return "", fmt.Errorf("model call (%s): %w", opts.Purpose, err)
	}

	text := msg.Text()
	pilog.Debugw("model call",
		"purpose", opts.Purpose,
		"model", c.model.ID,
		"elapsed", elapsed,
		"input_tokens", call.InputTokens,
		"output_tokens", call.OutputTokens,
		"chars", len(text),
	)
	return text, nil
}
