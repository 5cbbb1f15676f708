package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Synthesize turns text into speech audio using the configured TTS model and
// the given prebuilt voice (falling back to the client's default). The return
// value is the decoded audio payload: raw 16-bit PCM at 24 kHz mono, ready
// for the audio package.
func (c *Client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if voice == "" {
		voice = c.voice
	}

	resp, err := c.generate(ctx, c.ttsModel, geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: text}}},
		},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &speechConfig{
				VoiceConfig: voiceConfig{
					PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: voice},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("gemini: decode audio payload: %w", err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("gemini: no audio returned")
}
