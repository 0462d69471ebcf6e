// ABOUTME: Google Gemini provider backed by the google.golang.org/genai SDK
// ABOUTME: Streams GenerateContent responses into the provider-agnostic EventStream

package google

import (
	"context"
	"fmt"
	"iter"
	"os"
	"sync"

	"google.golang.org/genai"

	pilog "github.com/mauromedda/pi-assist-go/internal/log"
	"github.com/mauromedda/pi-assist-go/pkg/ai"
)

// generateFunc streams a GenerateContent call. Swapped out in tests.
type generateFunc func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]

// Provider implements ai.ApiProvider over the Gemini API.
type Provider struct {
	apiKey  string
	baseURL string

	mu       sync.Mutex
	generate generateFunc
}

// New creates a Gemini provider. An empty apiKey falls back to GEMINI_API_KEY,
// then GOOGLE_API_KEY. The SDK client is created on first use.
func New(apiKey, baseURL string) *Provider {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	return &Provider{apiKey: apiKey, baseURL: baseURL}
}

// Api returns the provider identifier.
func (p *Provider) Api() ai.Api {
	return ai.ApiGoogle
}

// Stream initiates a streaming generation request.
func (p *Provider) Stream(ctx context.Context, model *ai.Model, llmCtx *ai.Context, opts *ai.StreamOptions) *ai.EventStream {
	stream := ai.NewEventStream(64)

	go func() {
		if err := p.doStream(ctx, model, llmCtx, opts, stream); err != nil {
			stream.FinishWithError(err)
		}
	}()

	return stream
}

func (p *Provider) generator(ctx context.Context) (generateFunc, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.generate != nil {
		return p.generate, nil
	}

	cfg := &genai.ClientConfig{APIKey: p.apiKey, Backend: genai.BackendGeminiAPI}
	if p.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: p.baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	p.generate = client.Models.GenerateContentStream
	return p.generate, nil
}

func (p *Provider) doStream(ctx context.Context, model *ai.Model, llmCtx *ai.Context, opts *ai.StreamOptions, stream *ai.EventStream) error {
	generate, err := p.generator(ctx)
	if err != nil {
		return err
	}

	contents, cfg := buildRequest(model, llmCtx, opts)
	pilog.Debug("genai: GenerateContentStream model=%s", model.ID)

	result := ai.AssistantMessage{Model: model.ID}
	for resp, err := range generate(ctx, model.ID, contents, cfg) {
		if err != nil {
			return fmt.Errorf("gemini generate: %w", err)
		}
		if text := resp.Text(); text != "" {
			stream.Send(ai.StreamEvent{Type: ai.EventContentDelta, Text: text})
			appendText(&result, text)
		}
		for _, cand := range resp.Candidates {
			if cand != nil && cand.FinishReason != "" {
				result.StopReason = mapFinishReason(cand.FinishReason)
			}
		}
		if u := resp.UsageMetadata; u != nil {
			result.Usage = ai.Usage{
				InputTokens:  int(u.PromptTokenCount),
				OutputTokens: int(u.CandidatesTokenCount),
			}
		}
	}

	stream.Finish(&result)
	return nil
}

func buildRequest(model *ai.Model, llmCtx *ai.Context, opts *ai.StreamOptions) ([]*genai.Content, *genai.GenerateContentConfig) {
	cfg := &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0)}
	if opts != nil {
		cfg.Temperature = genai.Ptr(float32(opts.Temperature))
		cfg.MaxOutputTokens = int32(opts.MaxTokens)
		if opts.TopP > 0 {
			cfg.TopP = genai.Ptr(float32(opts.TopP))
		}
		cfg.StopSequences = opts.StopSequences
	}
	if cfg.MaxOutputTokens == 0 && model.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = int32(model.MaxOutputTokens)
	}
	if llmCtx == nil {
		return nil, cfg
	}
	if llmCtx.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(llmCtx.System, genai.RoleUser)
	}

	contents := make([]*genai.Content, 0, len(llmCtx.Messages))
	for _, m := range llmCtx.Messages {
		var role genai.Role = genai.RoleUser
		if m.Role == ai.RoleAssistant {
			role = genai.RoleModel
		}
		var text string
		for _, c := range m.Content {
			if c.Type == ai.ContentText {
				text += c.Text
			}
		}
		contents = append(contents, genai.NewContentFromText(text, role))
	}
	return contents, cfg
}

func appendText(msg *ai.AssistantMessage, text string) {
	for i := range msg.Content {
		if msg.Content[i].Type == ai.ContentText {
			msg.Content[i].Text += text
			return
		}
	}
	msg.Content = append(msg.Content, ai.Content{Type: ai.ContentText, Text: text})
}

func mapFinishReason(reason genai.FinishReason) ai.StopReason {
	switch reason {
	case genai.FinishReasonStop:
		return ai.StopEndTurn
	case genai.FinishReasonMaxTokens:
		return ai.StopMaxTokens
	default:
		return ai.StopStop
	}
}
