package gemini

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// CompleteStream sends one chat turn with the running history and streams the
// reply as ordered text increments. Both channels close when the turn ends;
// the error channel carries at most one value. An aborted stream is normal
// termination for the consumer: the increments received so far stand, and the
// error (if any) explains why no more follow. Cancellation is cooperative:
// cancel ctx and the increments stop.
func (c *Client) CompleteStream(ctx context.Context, system string, history []Turn, message string) (<-chan string, <-chan error) {
	content := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(content)
		defer close(errc)

		if c.apiKey == "" {
			errc <- ErrNotConfigured
			return
		}

		contents := make([]geminiContent, 0, len(history)+1)
		for _, t := range history {
			contents = append(contents, geminiContent{
				Role:  t.Role,
				Parts: []geminiPart{{Text: t.Text}},
			})
		}
		contents = append(contents, geminiContent{
			Role:  "user",
			Parts: []geminiPart{{Text: message}},
		})

		body := geminiRequest{Contents: contents}
		if system != "" {
			body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
		}

		payload, err := json.Marshal(body)
		if err != nil {
			errc <- fmt.Errorf("gemini: marshal request: %w", err)
			return
		}

		url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse&key=%s", c.baseURL, c.chatModel, c.apiKey)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			errc <- fmt.Errorf("gemini: create request: %w", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "text/event-stream")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			errc <- fmt.Errorf("gemini: request failed: %w", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			raw, _ := io.ReadAll(resp.Body)
			errc <- fmt.Errorf("gemini: API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "" || data == "[DONE]" {
				continue
			}

			var chunk geminiResponse
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				continue
			}
			if chunk.Error != nil {
				errc <- fmt.Errorf("gemini: API error: %s", chunk.Error.Message)
				return
			}
			if len(chunk.Candidates) == 0 {
				continue
			}
			for _, part := range chunk.Candidates[0].Content.Parts {
				if part.Text == "" {
					continue
				}
				select {
				case content <- part.Text:
				case <-ctx.Done():
					errc <- ctx.Err()
					return
				}
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- fmt.Errorf("gemini: stream error: %w", err)
		}
	}()

	return content, errc
}
