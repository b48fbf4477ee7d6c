package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/plumharbor/daylens/internal/journal"
)

// Client talks to an OpenAI-compatible chat-completion endpoint. It is the
// only component that performs remote calls; everything downstream of it is
// deterministic.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

// NewClient creates a Client for the given endpoint. An empty baseURL
// selects the public OpenAI API.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: timeout},
	}
}

// chatRequest mirrors the chat-completion request body.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse mirrors the subset of the completion envelope we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete sends one prompt and returns the raw completion text.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: %d: %s", ErrBadStatus, resp.StatusCode, string(snippet))
	}

	var envelope chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadEnvelope, err)
	}
	if len(envelope.Choices) == 0 || envelope.Choices[0].Message.Content == "" {
		return "", ErrBadEnvelope
	}
	return envelope.Choices[0].Message.Content, nil
}

// Remote classifies entries via the model endpoint and mutates each entry's
// category in place. The response must be a JSON array of known labels
// whose length exactly equals the entry count; any deviation discards the
// whole response and returns an error, leaving every entry untouched.
func (c *Client) Remote(ctx context.Context, entries []*journal.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	raw, err := c.complete(ctx, BuildClassifyPrompt(entries))
	if err != nil {
		return err
	}
	labels, err := parseLabels(raw, len(entries))
	if err != nil {
		return err
	}
	for i, e := range entries {
		e.Category = labels[i]
	}
	return nil
}

// Advise generates the coaching review for the full categorized entry list.
// Failure here is reported to the caller as-is; it never triggers fallback
// classification and never invalidates already-computed statistics.
func (c *Client) Advise(ctx context.Context, entries []*journal.Entry) (string, error) {
	text, err := c.complete(ctx, BuildAdvicePrompt(entries))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// parseLabels validates the model output: strip an optional code fence,
// parse a JSON string array, check the length, and map every label onto
// the closed category set.
func parseLabels(raw string, want int) ([]journal.Category, error) {
	var labels []string
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &labels); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArray, err)
	}
	if len(labels) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(labels), want)
	}
	out := make([]journal.Category, len(labels))
	for i, label := range labels {
		cat, ok := journal.ParseCategory(strings.TrimSpace(label))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
		}
		out[i] = cat
	}
	return out, nil
}

// stripCodeFence removes a surrounding markdown code fence, which models
// emit despite instructions not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
