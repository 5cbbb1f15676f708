// Package audio models the process-wide audio output resource. The narration
// controller is its only caller: it decodes synthesized speech into a Clip
// and owns at most one playback Handle at a time.
package audio

import (
	"sync"
	"time"
)

// Clip is a decoded audio buffer: raw 16-bit little-endian PCM.
type Clip struct {
	Data       []byte
	SampleRate int
	Channels   int
}

// Duration returns the wall-clock playback length of the clip.
func (c Clip) Duration() time.Duration {
	if c.SampleRate <= 0 || c.Channels <= 0 {
		return 0
	}
	frames := len(c.Data) / (2 * c.Channels)
	return time.Duration(frames) * time.Second / time.Duration(c.SampleRate)
}

// Handle is one active playback. Done is closed exactly once, when the clip
// finishes naturally or is stopped.
type Handle interface {
	Done() <-chan struct{}
	Stop()
}

// Player renders clips. Implementations own the single output resource; no
// other component may create a competing playback handle.
type Player interface {
	Play(Clip) (Handle, error)
}

// RealtimePlayer renders a clip by holding its handle open for the clip's
// wall-clock duration, the same way the catalog repository stands in for a
// remote service. The process has no hardware audio device.
type RealtimePlayer struct{}

// Play starts rendering the clip and returns its handle.
func (RealtimePlayer) Play(c Clip) (Handle, error) {
	h := &timedHandle{done: make(chan struct{})}
	h.timer = time.AfterFunc(c.Duration(), h.finish)
	return h, nil
}

type timedHandle struct {
	mu     sync.Mutex
	timer  *time.Timer
	done   chan struct{}
	closed bool
}

func (h *timedHandle) finish() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.closed {
		h.closed = true
		close(h.done)
	}
}

func (h *timedHandle) Done() <-chan struct{} { return h.done }

// Stop halts playback early. Safe to call more than once, and after natural
// completion.
func (h *timedHandle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.timer != nil {
		h.timer.Stop()
	}
	if !h.closed {
		h.closed = true
		close(h.done)
	}
}
