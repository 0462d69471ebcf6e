// ABOUTME: Channel-based event streaming for LLM responses
// ABOUTME: EventStream provides async iteration over provider events and Collect for one-shot calls

package ai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
)

// StreamEventType identifies the kind of stream event.
type StreamEventType int

const (
	EventContentDelta StreamEventType = iota
	EventContentDone
	EventThinkingDelta
	EventMessageStart
	EventMessageDelta
	EventMessageDone
	EventPing
	EventError
)

// StreamEvent represents a single event from the LLM stream.
type StreamEvent struct {
	Type       StreamEventType
	Text       string // Content text delta
	Usage      *Usage
	StopReason StopReason
	Error      error
}

// EventStream carries one model reply from a provider goroutine to its reader.
// Readers either range over Events and then call Result, or call Collect.
//
// Producers write to events, which is never closed; Finish closes done.
// A forwarding goroutine copies events to out and closes out once done has
// fired and the buffer is empty, so Send can race Finish safely.
type EventStream struct {
	events chan StreamEvent // internal: producers write here via Send
	out    chan StreamEvent // external: consumers read via Events()
	done   chan struct{}
	result atomic.Pointer[AssistantMessage]
	once   sync.Once
}

// NewEventStream creates a new EventStream with the given buffer size.
func NewEventStream(bufSize int) *EventStream {
	s := &EventStream{
		events: make(chan StreamEvent, bufSize),
		out:    make(chan StreamEvent, bufSize),
		done:   make(chan struct{}),
	}
	go s.drain()
	return s
}

// drain copies events to out until done, then flushes what is buffered.
func (s *EventStream) drain() {
	defer close(s.out)
	for {
		select {
		case ev := <-s.events:
			s.out <- ev
		case <-s.done:
			for {
				select {
				case ev := <-s.events:
					s.out <- ev
				default:
					return
				}
			}
		}
	}
}

// Events returns the reader side; it is closed after the last event.
func (s *EventStream) Events() <-chan StreamEvent {
	return s.out
}

// Send queues event. It reports false once the stream has finished.
func (s *EventStream) Send(event StreamEvent) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.events <- event:
		return true
	case <-s.done:
		return false
	}
}

// Finish records msg as the final reply and ends the stream. Later calls are no-ops.
func (s *EventStream) Finish(msg *AssistantMessage) {
	s.once.Do(func() {
		if msg != nil {
			s.result.Store(msg)
		}
		close(s.done)
	})
}

// FinishWithError ends the stream after queuing an error event.
func (s *EventStream) FinishWithError(err error) {
	s.Send(StreamEvent{Type: EventError, Error: err})
	s.Finish(nil)
}

// Result waits for the stream to end and returns the final reply, or nil.
func (s *EventStream) Result() *AssistantMessage {
	<-s.done
	return s.result.Load()
}

// Done is closed when the stream ends.
func (s *EventStream) Done() <-chan struct{} {
	return s.done
}

// ErrEmptyStream is returned by Collect when a provider finishes without a result.
var ErrEmptyStream = errors.New("stream finished without a result")

// Collect drains the stream and returns the final message.
// Text deltas are concatenated when the provider's final message carries no text.
// The first error event aborts collection; ctx cancellation returns ctx.Err().
func (s *EventStream) Collect(ctx context.Context) (*AssistantMessage, error) {
	var text strings.Builder
	var streamErr error

	events := s.Events()
	for {
		select {
		case <-ctx.Done():
			go func() {
				for range events {
				}
			}()
			return nil, ctx.Err()
		case ev, ok := <-events:
			if !ok {
				if streamErr != nil {
					return nil, streamErr
				}
				msg := s.Result()
				if msg == nil {
					return nil, ErrEmptyStream
				}
				if msg.Text() == "" && text.Len() > 0 {
					msg.Content = append(msg.Content, Content{Type: ContentText, Text: text.String()})
				}
				return msg, nil
			}
			switch ev.Type {
			case EventContentDelta:
				text.WriteString(ev.Text)
			case EventError:
				if streamErr == nil && ev.Error != nil {
					streamErr = ev.Error
				}
			}
		}
	}
}
