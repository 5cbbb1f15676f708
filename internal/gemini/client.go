// Package gemini is the generative-AI provider boundary. One Client is
// constructed at process start and shared read-only by the narration, tone,
// and guide components; it holds no per-conversation state. Failures are
// returned to callers untouched; each component converts them into its own
// recoverable behavior, and nothing here retries automatically.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured reports a missing API credential. It is surfaced on first
// use and kept distinct from transport failures so a setup problem is never
// mistaken for a flaky network.
var ErrNotConfigured = errors.New("gemini: API key not configured")

// Config holds connection settings for the Gemini API.
type Config struct {
	APIKey    string
	BaseURL   string
	ChatModel string
	TTSModel  string
	Voice     string
	Timeout   time.Duration
}

// DefaultConfig returns sensible defaults for the given key.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:    apiKey,
		BaseURL:   "https://generativelanguage.googleapis.com/v1beta",
		ChatModel: "gemini-2.5-flash",
		TTSModel:  "gemini-2.5-flash-preview-tts",
		Voice:     "Kore",
		Timeout:   2 * time.Minute,
	}
}

// Client talks to the Gemini API over HTTP.
type Client struct {
	apiKey     string
	baseURL    string
	chatModel  string
	ttsModel   string
	voice      string
	httpClient *http.Client
}

// New creates a client. A missing API key is not an error here; it surfaces
// as ErrNotConfigured on the first call that needs the network.
func New(cfg Config) *Client {
	def := DefaultConfig(cfg.APIKey)
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = def.ChatModel
	}
	if cfg.TTSModel == "" {
		cfg.TTSModel = def.TTSModel
	}
	if cfg.Voice == "" {
		cfg.Voice = def.Voice
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		chatModel:  cfg.ChatModel,
		ttsModel:   cfg.TTSModel,
		voice:      cfg.Voice,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Voice returns the configured narration voice.
func (c *Client) Voice() string { return c.voice }

// Turn is one prior exchange in a chat history. Role is "user" or "model".
type Turn struct {
	Role string
	Text string
}

// Wire types, mirroring the generateContent REST surface.

type geminiRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"` // base64
}

type generationConfig struct {
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *speechConfig `json:"speechConfig,omitempty"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type prebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Complete sends a single prompt and returns the completed text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, c.chatModel, geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: no completion returned")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String()), nil
}

func (c *Client) generate(ctx context.Context, model string, body geminiRequest) (*geminiResponse, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out geminiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("gemini: parse response: %w", err)
	}
	if out.Error != nil {
		return nil, fmt.Errorf("gemini: API error: %s", out.Error.Message)
	}
	return &out, nil
}
