// Package tone rewrites article text into a different voice while keeping
// the stored article untouched. A Session owns the derived "displayed
// content" for one article view; Reset always recovers the original blocks.
package tone

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"cosmos/internal/catalog"
)

// ErrRewriteInFlight rejects a rewrite while a previous one has not resolved.
// The UI contract is one tone request at a time per viewing session; this is
// the guard behind it.
var ErrRewriteInFlight = errors.New("tone: rewrite already in flight")

// failurePlaceholder replaces the displayed content when a rewrite fails, so
// the reader never sees stale or partial output.
const failurePlaceholder = "Apologies, a cosmic interference prevented the tone shift. Please try again."

// Generator is the slice of the AI client the transformer needs.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Session holds the displayed content for one article view. It is discarded
// with the view; the catalog's stored article never changes.
type Session struct {
	gen Generator
	log *zap.Logger

	mu        sync.Mutex
	busy      bool
	original  []catalog.ContentBlock
	displayed []catalog.ContentBlock
}

// NewSession starts a viewing session over the article's original blocks.
func NewSession(gen Generator, original []catalog.ContentBlock, log *zap.Logger) *Session {
	return &Session{
		gen:       gen,
		log:       log,
		original:  catalog.CloneBlocks(original),
		displayed: catalog.CloneBlocks(original),
	}
}

// Rewrite restyles the article text into the given tone and replaces the
// displayed content with a single paragraph holding the model's raw output.
// Only text-bearing blocks are sent; images are neither summarized nor kept.
// On AI failure the displayed content becomes exactly one apologetic
// placeholder paragraph and no error is returned; the failure is logged, not
// raised.
func (s *Session) Rewrite(ctx context.Context, tone string) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrRewriteInFlight
	}
	s.busy = true
	source := catalog.SpokenText(s.original)
	s.mu.Unlock()

	prompt := fmt.Sprintf("Rewrite the following article content in a %s style. Maintain the core information but alter the tone and prose. Output ONLY the rewritten text, without any introductory phrases.\n\nORIGINAL:\n%s",
		strings.ToLower(tone), source)

	text, err := s.gen.Complete(ctx, prompt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		s.log.Warn("tone rewrite failed", zap.String("tone", tone), zap.Error(err))
		s.displayed = []catalog.ContentBlock{{Kind: catalog.BlockParagraph, Text: failurePlaceholder}}
		return nil
	}
	s.displayed = []catalog.ContentBlock{{Kind: catalog.BlockParagraph, Text: text}}
	return nil
}

// Reset restores the original block sequence. It is synchronous and always
// available, whether or not a rewrite ever ran.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayed = catalog.CloneBlocks(s.original)
}

// Blocks returns a copy of the currently displayed content.
func (s *Session) Blocks() []catalog.ContentBlock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.CloneBlocks(s.displayed)
}

// Busy reports whether a rewrite is currently in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}
