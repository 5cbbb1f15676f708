package audio

import (
	"testing"
	"time"
)

func TestClipDuration(t *testing.T) {
	tests := []struct {
		name string
		clip Clip
		want time.Duration
	}{
		{"one second mono", Clip{Data: make([]byte, 48000), SampleRate: 24000, Channels: 1}, time.Second},
		{"half second stereo", Clip{Data: make([]byte, 48000), SampleRate: 24000, Channels: 2}, 500 * time.Millisecond},
		{"empty", Clip{SampleRate: 24000, Channels: 1}, 0},
		{"zero rate", Clip{Data: make([]byte, 48000)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.clip.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRealtimePlayerCompletes(t *testing.T) {
	// 10ms of 24kHz mono audio.
	clip := Clip{Data: make([]byte, 480), SampleRate: 24000, Channels: 1}
	h, err := RealtimePlayer{}.Play(clip)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("playback never completed")
	}
}

func TestRealtimePlayerStop(t *testing.T) {
	clip := Clip{Data: make([]byte, 48000*10), SampleRate: 24000, Channels: 1}
	h, err := RealtimePlayer{}.Play(clip)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	h.Stop()
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("Stop did not close Done")
	}

	// Stop is idempotent, including after completion.
	h.Stop()
	h.Stop()
}
