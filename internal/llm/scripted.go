// ABOUTME: Scripted Chatter for tests and offline runs
// ABOUTME: Replays canned replies in order and records every prompt it receives

package llm

import (
	"context"
	"errors"
	"sync"
)

// ErrScriptExhausted is returned when a Scripted chatter runs out of replies.
var ErrScriptExhausted = errors.New("scripted chatter: no replies left")

// Call is one recorded Chat invocation.
type Call struct {
	Prompt string
	Opts   Options
}

// Reply is one canned answer; Err wins over Text.
type Reply struct {
	Text string
	Err  error
}

// Scripted is a Chatter that replays Replies in order.
type Scripted struct {
	mu      sync.Mutex
	replies []Reply
	calls   []Call
}

// NewScripted returns a chatter answering with texts in order.
func NewScripted(texts ...string) *Scripted {
	s := &Scripted{}
	for _, t := range texts {
		s.replies = append(s.replies, Reply{Text: t})
	}
	return s
}

// Push appends a reply to the script.
func (s *Scripted) Push(r Reply) *Scripted {
	s.mu.Lock()
	s.replies = append(s.replies, r)
	s.mu.Unlock()
	return s
}

// Chat records the call and returns the next scripted reply.
func (s *Scripted) Chat(_ context.Context, prompt string, opts Options) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, Call{Prompt: prompt, Opts: opts})
	if len(s.replies) == 0 {
		return "", ErrScriptExhausted
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	if r.Err != nil {
		return "", r.Err
	}
	return r.Text, nil
}

// Calls returns a copy of the recorded calls.
func (s *Scripted) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}
