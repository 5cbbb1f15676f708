package tone

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"cosmos/internal/catalog"
)

type fakeGen struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
	gate    chan struct{} // when non-nil, Complete blocks until closed
}

func (f *fakeGen) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return f.reply, f.err
}

func (f *fakeGen) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prompts[len(f.prompts)-1]
}

func originalBlocks() []catalog.ContentBlock {
	return []catalog.ContentBlock{
		{Kind: catalog.BlockParagraph, Text: "The universe is expanding."},
		{Kind: catalog.BlockImage, Caption: "Hubble deep field"},
		{Kind: catalog.BlockQuote, Text: "Look up.", Author: "Anonymous"},
	}
}

func TestRewriteReplacesDisplayedContent(t *testing.T) {
	gen := &fakeGen{reply: "Verily, the cosmos stretches."}
	s := NewSession(gen, originalBlocks(), zap.NewNop())

	if err := s.Rewrite(context.Background(), "Poetic"); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	got := s.Blocks()
	if len(got) != 1 || got[0].Kind != catalog.BlockParagraph {
		t.Fatalf("displayed content = %+v, want single paragraph", got)
	}
	if got[0].Text != "Verily, the cosmos stretches." {
		t.Errorf("paragraph text = %q", got[0].Text)
	}
}

func TestRewritePromptShape(t *testing.T) {
	gen := &fakeGen{reply: "x"}
	s := NewSession(gen, originalBlocks(), zap.NewNop())

	if err := s.Rewrite(context.Background(), "Noir Detective"); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	prompt := gen.lastPrompt()
	if !strings.Contains(prompt, "in a noir detective style") {
		t.Errorf("tone not lowercased in prompt: %q", prompt)
	}
	if !strings.Contains(prompt, "The universe is expanding.") {
		t.Error("paragraph text missing from prompt")
	}
	if !strings.Contains(prompt, "Look up.") {
		t.Error("quote text missing from prompt")
	}
	if strings.Contains(prompt, "Hubble deep field") {
		t.Error("image caption leaked into the prompt")
	}
}

func TestResetRestoresOriginal(t *testing.T) {
	gen := &fakeGen{reply: "rewritten"}
	orig := originalBlocks()
	s := NewSession(gen, orig, zap.NewNop())

	if err := s.Rewrite(context.Background(), "poetic"); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if err := s.Rewrite(context.Background(), "scientific"); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	s.Reset()

	if diff := cmp.Diff(orig, s.Blocks()); diff != "" {
		t.Errorf("Reset did not restore original (-want +got):\n%s", diff)
	}
}

func TestRewriteFailureShowsPlaceholder(t *testing.T) {
	gen := &fakeGen{err: errors.New("model unavailable")}
	s := NewSession(gen, originalBlocks(), zap.NewNop())

	// Failure is absorbed, not raised.
	if err := s.Rewrite(context.Background(), "poetic"); err != nil {
		t.Fatalf("Rewrite returned error: %v", err)
	}

	got := s.Blocks()
	if len(got) != 1 {
		t.Fatalf("got %d blocks, want exactly 1 placeholder", len(got))
	}
	if got[0].Kind != catalog.BlockParagraph || got[0].Text != failurePlaceholder {
		t.Errorf("placeholder block = %+v", got[0])
	}

	// Reset still recovers the untouched original.
	s.Reset()
	if diff := cmp.Diff(originalBlocks(), s.Blocks()); diff != "" {
		t.Errorf("original lost after failed rewrite (-want +got):\n%s", diff)
	}
}

func TestOverlappingRewriteRejected(t *testing.T) {
	gate := make(chan struct{})
	gen := &fakeGen{reply: "slow", gate: gate}
	s := NewSession(gen, originalBlocks(), zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Rewrite(context.Background(), "poetic")
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !s.Busy() {
		if time.Now().After(deadline) {
			t.Fatal("first rewrite never started")
		}
		time.Sleep(2 * time.Millisecond)
	}

	if err := s.Rewrite(context.Background(), "mythic"); !errors.Is(err, ErrRewriteInFlight) {
		t.Errorf("second rewrite: got %v, want ErrRewriteInFlight", err)
	}

	close(gate)
	<-done
	if s.Busy() {
		t.Error("session still busy after rewrite resolved")
	}
}
