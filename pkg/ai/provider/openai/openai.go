// ABOUTME: OpenAI-compatible Chat Completions streaming provider (OpenAI, Hugging Face router, vLLM)
// ABOUTME: Implements ApiProvider with SSE-based streaming; text and reasoning deltas only

package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	pilog "github.com/mauromedda/pi-assist-go/internal/log"
	"github.com/mauromedda/pi-assist-go/pkg/ai"
	"github.com/mauromedda/pi-assist-go/pkg/ai/internal/httputil"
	"github.com/mauromedda/pi-assist-go/pkg/ai/internal/sse"
)

const (
	defaultBaseURL     = "https://api.openai.com"
	chatCompletionPath = "/v1/chat/completions"
)

// Provider implements the OpenAI Chat Completions API.
type Provider struct {
	client *httputil.Client
}

// New creates an OpenAI-compatible provider. An empty apiKey falls back to
// OPENAI_API_KEY; an empty baseURL targets api.openai.com.
func New(apiKey, baseURL string) *Provider {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = httputil.NormalizeBaseURL(baseURL)

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + apiKey,
	}

	return &Provider{
		client: httputil.NewClient(baseURL, headers, httputil.Options{}),
	}
}

// Api returns the provider identifier.
func (p *Provider) Api() ai.Api {
	return ai.ApiOpenAI
}

// Stream initiates a streaming chat completion.
func (p *Provider) Stream(ctx context.Context, model *ai.Model, llmCtx *ai.Context, opts *ai.StreamOptions) *ai.EventStream {
	stream := ai.NewEventStream(64)

	go func() {
		if err := p.doStream(ctx, model, llmCtx, opts, stream); err != nil {
			stream.FinishWithError(err)
		}
	}()

	return stream
}

func (p *Provider) doStream(ctx context.Context, model *ai.Model, llmCtx *ai.Context, opts *ai.StreamOptions, stream *ai.EventStream) error {
	bodyBytes, err := json.Marshal(buildRequestBody(model, llmCtx, opts))
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	pilog.Debug("http: POST %s%s model=%s", p.client.BaseURL(), chatCompletionPath, model.ID)
	reader, resp, err := p.client.StreamSSE(ctx, http.MethodPost, chatCompletionPath, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()
	pilog.Debug("http: POST %s%s -> %d", p.client.BaseURL(), chatCompletionPath, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(errBody)}
	}

	return processSSE(reader, stream, model.ID)
}

// APIError is a non-200 response from the completions endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai API error (status %d): %s", e.StatusCode, e.Body)
}

func processSSE(reader *sse.Reader, stream *ai.EventStream, modelID string) error {
	result := ai.AssistantMessage{Model: modelID}
	var gotFinish bool

	for !gotFinish {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading stream: %w", err)
		}
		if event.Data == "[DONE]" {
			break
		}

		var chunk chatCompletionChunk
		if err := json.Unmarshal([]byte(event.Data), &chunk); err != nil {
			pilog.Debug("openai: skipping undecodable chunk: %v", err)
			continue
		}
		if chunk.Error != nil {
			return fmt.Errorf("openai stream error: %s", chunk.Error.Message)
		}

		for _, choice := range chunk.Choices {
			delta := choice.Delta
			if delta.Content != "" {
				stream.Send(ai.StreamEvent{Type: ai.EventContentDelta, Text: delta.Content})
				appendContent(&result, ai.ContentText, delta.Content)
			}
			if delta.ReasoningContent != "" {
				stream.Send(ai.StreamEvent{Type: ai.EventThinkingDelta, Text: delta.ReasoningContent})
				appendContent(&result, ai.ContentThinking, delta.ReasoningContent)
			}
			if choice.FinishReason != "" {
				result.StopReason = mapFinishReason(choice.FinishReason)
				gotFinish = true
			}
		}

		// Usage often rides on the finish chunk.
		if chunk.Usage != nil {
			result.Usage = ai.Usage{
				InputTokens:  chunk.Usage.PromptTokens,
				OutputTokens: chunk.Usage.CompletionTokens,
			}
		}
	}

	stream.Finish(&result)
	return nil
}

func appendContent(msg *ai.AssistantMessage, kind ai.ContentType, text string) {
	for i := range msg.Content {
		if msg.Content[i].Type != kind {
			continue
		}
		if kind == ai.ContentThinking {
			msg.Content[i].Thinking += text
		} else {
			msg.Content[i].Text += text
		}
		return
	}
	c := ai.Content{Type: kind}
	if kind == ai.ContentThinking {
		c.Thinking = text
	} else {
		c.Text = text
	}
	msg.Content = append(msg.Content, c)
}

func mapFinishReason(reason string) ai.StopReason {
	switch reason {
	case "stop", "eos_token":
		return ai.StopEndTurn
	case "length":
		return ai.StopMaxTokens
	default:
		return ai.StopStop
	}
}
