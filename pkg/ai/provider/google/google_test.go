// ABOUTME: Tests for the Gemini provider: request mapping, text streaming, and error propagation
// ABOUTME: Replaces the SDK call with canned iterators so no network is touched

package google

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/mauromedda/pi-assist-go/pkg/ai"
)

func cannedProvider(responses []*genai.GenerateContentResponse, failWith error, seen *genai.GenerateContentConfig) *Provider {
	p := New("test-key", "")
	p.generate = func(_ context.Context, _ string, _ []*genai.Content, cfg *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error] {
		if seen != nil {
			*seen = *cfg
		}
		return func(yield func(*genai.GenerateContentResponse, error) bool) {
			for _, r := range responses {
				if !yield(r, nil) {
					return
				}
			}
			if failWith != nil {
				yield(nil, failWith)
			}
		}
	}
	return p
}

func textResponse(text string, finish genai.FinishReason) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      genai.NewContentFromText(text, genai.RoleModel),
			FinishReason: finish,
		}},
	}
}

func TestProviderApi(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ai.ApiGoogle, New("key", "").Api())
}

func TestProviderStreamTextContent(t *testing.T) {
	t.Parallel()

	last := textResponse("world", genai.FinishReasonStop)
	last.UsageMetadata = &genai.GenerateContentResponseUsageMetadata{PromptTokenCount: 7, CandidatesTokenCount: 3}

	var seen genai.GenerateContentConfig
	p := cannedProvider([]*genai.GenerateContentResponse{textResponse("hello ", ""), last}, nil, &seen)

	msg, err := p.Stream(context.Background(), &ai.ModelGemini20Flash, &ai.Context{
		Messages: []ai.Message{ai.NewTextMessage(ai.RoleUser, "hi")},
	}, &ai.StreamOptions{MaxTokens: 120, Temperature: 0}).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "hello world", msg.Text())
	assert.Equal(t, ai.StopEndTurn, msg.StopReason)
	assert.Equal(t, ai.Usage{InputTokens: 7, OutputTokens: 3}, msg.Usage)

	require.NotNil(t, seen.Temperature)
	assert.InDelta(t, 0.0, float64(*seen.Temperature), 1e-9)
	assert.Equal(t, int32(120), seen.MaxOutputTokens)
}

func TestProviderStreamError(t *testing.T) {
	t.Parallel()

	p := cannedProvider(nil, errors.New("quota exceeded"), nil)
	_, err := p.Stream(context.Background(), &ai.ModelGemini20Flash, &ai.Context{}, nil).Collect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestBuildRequestMapsRoles(t *testing.T) {
	t.Parallel()

	contents, cfg := buildRequest(&ai.ModelGemini20Flash, &ai.Context{
		System: "sys",
		Messages: []ai.Message{
			ai.NewTextMessage(ai.RoleUser, "q"),
			ai.NewTextMessage(ai.RoleAssistant, "a"),
		},
	}, &ai.StreamOptions{Temperature: 0.2})

	require.Len(t, contents, 2)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	require.NotNil(t, cfg.SystemInstruction)
	assert.Equal(t, "sys", cfg.SystemInstruction.Parts[0].Text)
	assert.InDelta(t, 0.2, float64(*cfg.Temperature), 1e-6)
	assert.Equal(t, int32(ai.ModelGemini20Flash.MaxOutputTokens), cfg.MaxOutputTokens)
}

func TestMapFinishReason(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ai.StopEndTurn, mapFinishReason(genai.FinishReasonStop))
	assert.Equal(t, ai.StopMaxTokens, mapFinishReason(genai.FinishReasonMaxTokens))
	assert.Equal(t, ai.StopStop, mapFinishReason(genai.FinishReasonSafety))
}
