package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(Config{APIKey: "test-key", BaseURL: srv.URL})
	t.Cleanup(c.httpClient.CloseIdleConnections)
	return c
}

func TestCompleteNotConfigured(t *testing.T) {
	c := New(Config{})
	_, err := c.Complete(context.Background(), "hello")
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestComplete(t *testing.T) {
	var gotPath string
	var gotReq geminiRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"hello "},{"text":"world"}]}}]}`)
	})

	out, err := c.Complete(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "say hello", gotReq.Contents[0].Parts[0].Text)
}

func TestCompleteHTTPError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := c.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestCompleteAPIErrorBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"code":400,"message":"invalid model","status":"INVALID_ARGUMENT"}}`)
	})

	_, err := c.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid model")
}

func TestCompleteStream(t *testing.T) {
	var gotReq geminiRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		assert.True(t, strings.HasSuffix(r.URL.Path, ":streamGenerateContent"))

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"Greet\"}]}}]}\n\n")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"ings, \"},{\"text\":\"traveler.\"}]}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	history := []Turn{
		{Role: "user", Text: "hi"},
		{Role: "model", Text: "hello"},
	}
	chunks, errs := c.CompleteStream(context.Background(), "be cosmic", history, "who are you?")

	var got []string
	for chunk := range chunks {
		got = append(got, chunk)
	}
	require.NoError(t, <-errs)

	assert.Equal(t, []string{"Greet", "ings, ", "traveler."}, got)
	require.NotNil(t, gotReq.SystemInstruction)
	assert.Equal(t, "be cosmic", gotReq.SystemInstruction.Parts[0].Text)
	require.Len(t, gotReq.Contents, 3)
	assert.Equal(t, "model", gotReq.Contents[1].Role)
	assert.Equal(t, "who are you?", gotReq.Contents[2].Parts[0].Text)
}

func TestCompleteStreamNotConfigured(t *testing.T) {
	c := New(Config{})
	chunks, errs := c.CompleteStream(context.Background(), "", nil, "hello")

	for range chunks {
		t.Fatal("unexpected increment from unconfigured client")
	}
	require.ErrorIs(t, <-errs, ErrNotConfigured)
}

func TestCompleteStreamMidStreamError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":\"partial\"}]}}]}\n\n")
		fmt.Fprint(w, "data: {\"error\":{\"code\":500,\"message\":\"internal\"}}\n\n")
	})

	chunks, errs := c.CompleteStream(context.Background(), "", nil, "hello")
	var got []string
	for chunk := range chunks {
		got = append(got, chunk)
	}
	err := <-errs
	require.Error(t, err)
	assert.Equal(t, []string{"partial"}, got, "increments before the failure stand")
}

func TestSynthesize(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	var gotPath string
	var gotReq geminiRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"audio/L16;rate=24000","data":%q}}]}}]}`,
			base64.StdEncoding.EncodeToString(pcm))
	})

	got, err := c.Synthesize(context.Background(), "Read this.", "Kore")
	require.NoError(t, err)
	assert.Equal(t, pcm, got)
	assert.Equal(t, "/models/gemini-2.5-flash-preview-tts:generateContent", gotPath)

	require.NotNil(t, gotReq.GenerationConfig)
	assert.Equal(t, []string{"AUDIO"}, gotReq.GenerationConfig.ResponseModalities)
	require.NotNil(t, gotReq.GenerationConfig.SpeechConfig)
	assert.Equal(t, "Kore", gotReq.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
}

func TestSynthesizeDefaultVoice(t *testing.T) {
	var gotReq geminiRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"inlineData":{"data":%q}}]}}]}`,
			base64.StdEncoding.EncodeToString([]byte{0}))
	})

	_, err := c.Synthesize(context.Background(), "Read this.", "")
	require.NoError(t, err)
	assert.Equal(t, "Kore", gotReq.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
}

func TestSynthesizeNoAudio(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"not audio"}]}}]}`)
	})

	_, err := c.Synthesize(context.Background(), "Read this.", "Kore")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no audio")
}
