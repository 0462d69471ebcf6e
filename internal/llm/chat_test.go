// ABOUTME: Tests for the model collaborator over a stub provider
// ABOUTME: Verifies request shaping, text collection, error wrapping, and metrics

package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/pi-assist-go/internal/telemetry"
	"github.com/mauromedda/pi-assist-go/pkg/ai"
)

type stubProvider struct {
	reply   string
	err     error
	gotCtx  *ai.Context
	gotOpts *ai.StreamOptions
}

func (p *stubProvider) Api() ai.Api { return ai.ApiOpenAI }

func (p *stubProvider) Stream(_ context.Context, _ *ai.Model, llmCtx *ai.Context, opts *ai.StreamOptions) *ai.EventStream {
	p.gotCtx, p.gotOpts = llmCtx, opts
	s := ai.NewEventStream(4)
	go func() {
		if p.err != nil {
			s.FinishWithError(p.err)
			return
		}
		s.Send(ai.StreamEvent{Type: ai.EventContentDelta, Text: p.reply})
		s.Finish(&ai.AssistantMessage{
			Content: []ai.Content{{Type: ai.ContentText, Text: p.reply}},
			Usage:   ai.Usage{InputTokens: 12, OutputTokens: 4},
		})
	}()
	return s
}

func TestClientChat(t *testing.T) {
	t.Parallel()

	p := &stubProvider{reply: `{"label":"company","confidence":0.9}`}
	metrics := telemetry.NewMetrics()
	c := NewClient(p, ai.ModelMistral7BInstruct, metrics)

	out, err := c.Chat(context.Background(), "Entity: OpenAI", Options{MaxTokens: 120, Temperature: 0, Purpose: "classify"})
	require.NoError(t, err)

	assert.Equal(t, `{"label":"company","confidence":0.9}`, out)
	require.Len(t, p.gotCtx.Messages, 1)
	assert.Equal(t, ai.RoleUser, p.gotCtx.Messages[0].Role)
	assert.Equal(t, "Entity: OpenAI", p.gotCtx.Messages[0].Content[0].Text)
	assert.Empty(t, p.gotCtx.System)
	assert.Equal(t, 120, p.gotOpts.MaxTokens)
	assert.Equal(t, ai.DefaultModelID, c.Model().ID)

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.Registry(), "pi_assist_model_calls_total"))
}

func TestClientChatError(t *testing.T) {
	t.Parallel()

	c := NewClient(&stubProvider{err: errors.New("401 unauthorized")}, ai.ModelGPT4oMini, nil)

	_, err := c.Chat(context.Background(), "x", Options{Purpose: "intent"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model call (intent)")
	assert.Contains(t, err.Error(), "401 unauthorized")
}

func TestScripted(t *testing.T) {
	t.Parallel()

	s := NewScripted("one").Push(Reply{Err: errors.New("down")})

	out, err := s.Chat(context.Background(), "p1", Options{Purpose: "a"})
	require.NoError(t, err)
	assert.Equal(t, "one", out)

	_, err = s.Chat(context.Background(), "p2", Options{})
	assert.EqualError(t, err, "down")

	_, err = s.Chat(context.Background(), "p3", Options{})
	assert.ErrorIs(t, err, ErrScriptExhausted)

	calls := s.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "p1", calls[0].Prompt)
	assert.Equal(t, "a", calls[0].Opts.Purpose)
}
