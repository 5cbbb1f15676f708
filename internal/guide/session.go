package guide

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"cosmos/internal/catalog"
	"cosmos/internal/gemini"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one transcript entry. Assistant text grows while its turn
// streams and is final once the turn completes.
type Message struct {
	Role string
	Text string
}

var (
	// ErrEmptyMessage rejects blank user input.
	ErrEmptyMessage = errors.New("guide: empty message")
	// ErrTurnInFlight rejects a send while a previous turn is still
	// streaming. Turns are serialized, never queued.
	ErrTurnInFlight = errors.New("guide: a turn is already streaming")
	// ErrClosed rejects use of a closed session.
	ErrClosed = errors.New("guide: session closed")
)

// apology ends a turn whose stream failed mid-flight. Never retried.
const apology = "My apologies, a cosmic interference has disrupted my thoughts. Please try again."

// Session is one open conversation. It is destroyed by Close; the next Open
// starts with no memory of it beyond the persisted last-visited title.
type Session struct {
	id    string
	guide *Guide

	mu        sync.Mutex
	messages  []Message
	streaming bool
	closed    bool
	closedCh  chan struct{}
	cancel    context.CancelFunc
}

// ID identifies the session.
func (s *Session) ID() string { return s.id }

// Messages returns a snapshot of the transcript. While a turn streams, the
// final assistant message grows between calls.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

// Send submits one user turn and streams the assistant's reply. The returned
// channel yields text increments in order and closes when the turn ends; the
// same increments accumulate onto the transcript's final message, so callers
// may follow either. When a current article is given, a context note naming
// it is sent to the model but never stored in the transcript, and the visit
// is recorded for the next session's greeting. A transport failure ends the
// turn with a fixed apology instead of an error.
func (s *Session) Send(ctx context.Context, text string, current *catalog.Article) (<-chan string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	if s.streaming {
		s.mu.Unlock()
		return nil, ErrTurnInFlight
	}
	s.streaming = true
	history := historyTurns(s.messages)
	s.messages = append(s.messages,
		Message{Role: RoleUser, Text: text},
		Message{Role: RoleAssistant},
	)
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	outgoing := text
	if current != nil {
		outgoing = fmt.Sprintf("CONTEXT: The user is currently reading an article titled %q.\n\nUSER QUESTION: %s", current.Title, text)
		s.guide.rememberVisit(ctx, current)
	}

	chunks, errs := s.guide.ai.CompleteStream(ctx, systemInstruction, history, outgoing)

	out := make(chan string)
	go s.consume(cancel, chunks, errs, out)
	return out, nil
}

// consume folds stream increments into the growing assistant message and
// forwards them to the caller. Increments arriving after Close are dropped.
func (s *Session) consume(cancel context.CancelFunc, chunks <-chan string, errs <-chan error, out chan<- string) {
	defer close(out)
	defer cancel()

	for chunk := range chunks {
		if !s.appendChunk(chunk) {
			return
		}
		select {
		case out <- chunk:
		case <-s.closedCh:
			return
		}
	}
	s.finishTurn(<-errs)
}

func (s *Session) appendChunk(chunk string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.messages[len(s.messages)-1].Text += chunk
	return true
}

func (s *Session) finishTurn(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.streaming = false
	s.cancel = nil
	if err == nil {
		return
	}
	s.guide.log.Warn("chat stream failed", zap.Error(err))
	if last := &s.messages[len(s.messages)-1]; last.Role == RoleAssistant && last.Text == "" {
		last.Text = apology
	} else {
		s.messages = append(s.messages, Message{Role: RoleAssistant, Text: apology})
	}
}

// Close discards the session. An in-flight turn is cancelled and any late
// increments are ignored on arrival; the request itself cannot be recalled
// mid-flight, only its result.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.closedCh)
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.messages = nil
	s.streaming = false
}

// historyTurns converts the transcript so far into the provider's chat
// history encoding.
func historyTurns(messages []Message) []gemini.Turn {
	turns := make([]gemini.Turn, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		turns = append(turns, gemini.Turn{Role: role, Text: m.Text})
	}
	return turns
}
