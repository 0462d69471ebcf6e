// ABOUTME: Tests for OpenAI request construction and message conversion
// ABOUTME: Verifies temperature is always serialized and text blocks are flattened

package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/pi-assist-go/pkg/ai"
)

func TestBuildRequestBody_AlwaysSendsTemperature(t *testing.T) {
	t.Parallel()

	body := buildRequestBody(&ai.ModelMistral7BInstruct, &ai.Context{
		Messages: []ai.Message{ai.NewTextMessage(ai.RoleUser, "hi")},
	}, &ai.StreamOptions{MaxTokens: 120, Temperature: 0})

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "temperature")
	assert.InDelta(t, 0.0, decoded["temperature"], 1e-9)
	assert.InDelta(t, 120.0, decoded["max_tokens"], 1e-9)
	assert.Equal(t, ai.DefaultModelID, decoded["model"])
	assert.Equal(t, true, decoded["stream"])
}

func TestBuildRequestBody_FallsBackToModelOutputLimit(t *testing.T) {
	t.Parallel()

	body := buildRequestBody(&ai.ModelGPT4oMini, &ai.Context{}, nil)
	assert.Equal(t, ai.ModelGPT4oMini.MaxOutputTokens, body.MaxTokens)
}

func TestConvertMessages(t *testing.T) {
	t.Parallel()

	msgs := convertMessages(&ai.Context{
		System: "be brief",
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: []ai.Content{
				{Type: ai.ContentText, Text: "a"},
				{Type: ai.ContentThinking, Thinking: "ignored"},
				{Type: ai.ContentText, Text: "b"},
			}},
		},
	})

	assert.Equal(t, []chatMessage{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "ab"},
	}, msgs)
}
