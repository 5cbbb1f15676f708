package narration

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"cosmos/internal/audio"
	"cosmos/internal/catalog"
)

type fakeSynth struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	data    []byte
	err     error
	gate    chan struct{} // when non-nil, Synthesize blocks until closed
}

func (f *fakeSynth) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.prompts = append(f.prompts, text)
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return f.data, f.err
}

func (f *fakeSynth) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePlayer struct {
	mu        sync.Mutex
	handles   []*fakeHandle
	active    int
	maxActive int
}

func (p *fakePlayer) Play(c audio.Clip) (audio.Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active++
	if p.active > p.maxActive {
		p.maxActive = p.active
	}
	h := &fakeHandle{player: p, done: make(chan struct{})}
	p.handles = append(p.handles, h)
	return h, nil
}

func (p *fakePlayer) snapshot() (handles []*fakeHandle, maxActive int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*fakeHandle(nil), p.handles...), p.maxActive
}

type fakeHandle struct {
	player  *fakePlayer
	done    chan struct{}
	once    sync.Once
	mu      sync.Mutex
	stopped bool
}

func (h *fakeHandle) finish() {
	h.once.Do(func() {
		close(h.done)
		h.player.mu.Lock()
		h.player.active--
		h.player.mu.Unlock()
	})
}

// complete simulates natural end-of-audio.
func (h *fakeHandle) complete() { h.finish() }

func (h *fakeHandle) Done() <-chan struct{} { return h.done }

func (h *fakeHandle) Stop() {
	h.mu.Lock()
	h.stopped = true
	h.mu.Unlock()
	h.finish()
}

func (h *fakeHandle) wasStopped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopped
}

func testBlocks() []catalog.ContentBlock {
	return []catalog.ContentBlock{
		{Kind: catalog.BlockParagraph, Text: "Stars are born in nebulae."},
	}
}

func waitForState(t *testing.T, c *Controller, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.State() == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("state = %v, want %v", c.State(), want)
}

func TestStopWhileIdleIsNoOp(t *testing.T) {
	synth := &fakeSynth{data: []byte{0, 0}}
	c := New(synth, &fakePlayer{}, "Kore", zap.NewNop())

	c.Stop()
	if got := c.State(); got != StateIdle {
		t.Errorf("state = %v, want idle", got)
	}
	if synth.callCount() != 0 {
		t.Error("Stop triggered synthesis")
	}
}

func TestNarrateSkipsWhenNothingToSpeak(t *testing.T) {
	synth := &fakeSynth{data: []byte{0, 0}}
	c := New(synth, &fakePlayer{}, "Kore", zap.NewNop())

	c.Narrate(context.Background(), []catalog.ContentBlock{
		{Kind: catalog.BlockImage, Caption: "a nebula"},
	})
	if synth.callCount() != 0 {
		t.Error("image-only content should not be synthesized")
	}
	if got := c.State(); got != StateIdle {
		t.Errorf("state = %v, want idle", got)
	}
}

func TestNarratePlaysThenReturnsToIdle(t *testing.T) {
	synth := &fakeSynth{data: make([]byte, 4800)}
	player := &fakePlayer{}
	c := New(synth, player, "Kore", zap.NewNop())

	c.Narrate(context.Background(), testBlocks())
	if got := c.State(); got != StatePlaying {
		t.Fatalf("state after Narrate = %v, want playing", got)
	}

	handles, _ := player.snapshot()
	if len(handles) != 1 {
		t.Fatalf("got %d handles, want 1", len(handles))
	}
	handles[0].complete()
	waitForState(t, c, StateIdle)
}

func TestNarratePromptPrefix(t *testing.T) {
	synth := &fakeSynth{data: []byte{0, 0}}
	c := New(synth, &fakePlayer{}, "Kore", zap.NewNop())

	c.Narrate(context.Background(), testBlocks())
	synth.mu.Lock()
	prompt := synth.prompts[0]
	synth.mu.Unlock()
	if !strings.HasPrefix(prompt, "Read the following article passage: ") {
		t.Errorf("prompt missing read instruction: %q", prompt)
	}
	if !strings.Contains(prompt, "Stars are born in nebulae.") {
		t.Errorf("prompt missing article text: %q", prompt)
	}
}

func TestSynthesisFailureReturnsToIdle(t *testing.T) {
	synth := &fakeSynth{err: errors.New("boom")}
	player := &fakePlayer{}
	c := New(synth, player, "Kore", zap.NewNop())

	c.Narrate(context.Background(), testBlocks())
	if got := c.State(); got != StateIdle {
		t.Errorf("state = %v, want idle", got)
	}
	if handles, _ := player.snapshot(); len(handles) != 0 {
		t.Error("failed synthesis must not reach the player")
	}
}

func TestNewNarrationStopsPrevious(t *testing.T) {
	synth := &fakeSynth{data: make([]byte, 4800)}
	player := &fakePlayer{}
	c := New(synth, player, "Kore", zap.NewNop())

	c.Narrate(context.Background(), testBlocks())
	c.Narrate(context.Background(), testBlocks())

	handles, maxActive := player.snapshot()
	if len(handles) != 2 {
		t.Fatalf("got %d handles, want 2", len(handles))
	}
	if !handles[0].wasStopped() {
		t.Error("first playback was not stopped")
	}
	if maxActive > 1 {
		t.Errorf("maxActive = %d; two playbacks overlapped", maxActive)
	}
	if got := c.State(); got != StatePlaying {
		t.Errorf("state = %v, want playing", got)
	}
}

func TestStopDuringPreparingDiscardsAudio(t *testing.T) {
	gate := make(chan struct{})
	synth := &fakeSynth{data: make([]byte, 4800), gate: gate}
	player := &fakePlayer{}
	c := New(synth, player, "Kore", zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Narrate(context.Background(), testBlocks())
	}()

	waitForState(t, c, StatePreparing)
	c.Stop()
	close(gate)
	<-done

	if got := c.State(); got != StateIdle {
		t.Errorf("state = %v, want idle", got)
	}
	if handles, _ := player.snapshot(); len(handles) != 0 {
		t.Error("audio resolved after Stop must be discarded, not played")
	}
}
