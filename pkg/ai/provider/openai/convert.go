// ABOUTME: Request and SSE chunk wire types for OpenAI-compatible Chat Completions
// ABOUTME: Builds the request body; temperature is always present so 0.0 means greedy

package openai

import "github.com/mauromedda/pi-assist-go/pkg/ai"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model         string         `json:"model"`
	Messages      []chatMessage  `json:"messages"`
	Stream        bool           `json:"stream"`
	StreamOptions *streamOptions `json:"stream_options,omitempty"`
	MaxTokens     int            `json:"max_tokens,omitempty"`
	Temperature   float64        `json:"temperature"`
	TopP          float64        `json:"top_p,omitempty"`
	Stop          []string       `json:"stop,omitempty"`
}

type streamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

type chatCompletionChunk struct {
	ID      string        `json:"id"`
	Choices []chunkChoice `json:"choices"`
	Usage   *chunkUsage   `json:"usage,omitempty"`
	Error   *chunkError   `json:"error,omitempty"`
}

type chunkChoice struct {
	Index        int        `json:"index"`
	Delta        chunkDelta `json:"delta"`
	FinishReason string     `json:"finish_reason"`
}

type chunkDelta struct {
	Role             string `json:"role,omitempty"`
	Content          string `json:"content,omitempty"`
	ReasoningContent string `json:"reasoning_content,omitempty"`
}

type chunkUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type chunkError struct {
	Message string `json:"message"`
}

func buildRequestBody(model *ai.Model, ctx *ai.Context, opts *ai.StreamOptions) chatRequest {
	req := chatRequest{
		Model:         model.ID,
		Messages:      convertMessages(ctx),
		Stream:        true,
		StreamOptions: &streamOptions{IncludeUsage: true},
	}
	if opts != nil {
		req.MaxTokens = opts.MaxTokens
		req.Temperature = opts.Temperature
		req.TopP = opts.TopP
		req.Stop = opts.StopSequences
	}
	if req.MaxTokens == 0 && model.MaxOutputTokens > 0 {
		req.MaxTokens = model.MaxOutputTokens
	}
	return req
}

func convertMessages(ctx *ai.Context) []chatMessage {
	if ctx == nil {
		return nil
	}
	msgs := make([]chatMessage, 0, len(ctx.Messages)+1)
	if ctx.System != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: ctx.System})
	}
	for _, m := range ctx.Messages {
		var text string
		for _, c := range m.Content {
			if c.Type == ai.ContentText {
				text += c.Text
			}
		}
		msgs = append(msgs, chatMessage{Role: string(m.Role), Content: text})
	}
	return msgs
}
