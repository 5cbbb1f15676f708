// Package narration turns article text into speech playback. The controller
// is a small state machine (Idle, Preparing, Playing) guarding the single
// system-wide playback: starting a new narration stops the previous one, and
// a stop issued while a request is in flight discards the audio on arrival.
package narration

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"cosmos/internal/audio"
	"cosmos/internal/catalog"
)

// State of the controller.
type State string

const (
	StateIdle      State = "idle"
	StatePreparing State = "preparing"
	StatePlaying   State = "playing"
)

// Synthesized speech arrives as raw PCM at this fixed format.
const (
	SampleRate = 24000
	Channels   = 1
)

// Synthesizer is the slice of the AI client the controller needs.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// Controller manages narration for whichever article is currently displayed.
type Controller struct {
	synth  Synthesizer
	player audio.Player
	voice  string
	log    *zap.Logger

	mu     sync.Mutex
	state  State
	gen    uint64 // bumped on every stop/start; stale work checks it
	handle audio.Handle
}

// New builds a controller. The player is the exclusive owner of the audio
// output; voice may be empty to use the synthesizer's default.
func New(synth Synthesizer, player audio.Player, voice string, log *zap.Logger) *Controller {
	return &Controller{
		synth:  synth,
		player: player,
		voice:  voice,
		log:    log,
		state:  StateIdle,
	}
}

// State returns the current playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Narrate synthesizes speech for the text-bearing blocks and starts playback,
// stopping any playback already in progress first. An empty concatenation is
// a no-op. Synthesis failures are logged and return the controller to Idle;
// they never propagate.
func (c *Controller) Narrate(ctx context.Context, blocks []catalog.ContentBlock) {
	text := catalog.SpokenText(blocks)
	if text == "" {
		return
	}

	c.mu.Lock()
	c.stopLocked()
	gen := c.gen
	c.state = StatePreparing
	c.mu.Unlock()

	data, err := c.synth.Synthesize(ctx, "Read the following article passage: "+text, c.voice)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// Stopped (or superseded) while the request was in flight; the
		// resolved audio is discarded, never played.
		return
	}
	if err != nil {
		c.log.Warn("narration failed", zap.Error(err))
		c.state = StateIdle
		return
	}

	clip := audio.Clip{Data: data, SampleRate: SampleRate, Channels: Channels}
	handle, err := c.player.Play(clip)
	if err != nil {
		c.log.Warn("narration playback failed", zap.Error(err))
		c.state = StateIdle
		return
	}
	c.handle = handle
	c.state = StatePlaying
	go c.watch(gen, handle)
}

// watch waits for end-of-audio and returns the controller to Idle, unless a
// newer narration or a stop has superseded this playback in the meantime.
func (c *Controller) watch(gen uint64, handle audio.Handle) {
	<-handle.Done()
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.state != StatePlaying {
		return
	}
	c.handle = nil
	c.state = StateIdle
}

// Stop halts any active playback and invalidates an in-flight preparation.
// Calling it while Idle is a no-op.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Controller) stopLocked() {
	c.gen++
	if c.handle != nil {
		c.handle.Stop()
		c.handle = nil
	}
	c.state = StateIdle
}
