// Package assistant relays chat messages to the external conversational
// assistant webhook.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	url        string
	httpClient *http.Client
}

func New(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Message is the payload the assistant webhook accepts.
type Message struct {
	Sender   string         `json:"sender"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Fragment is one reply unit from the assistant: free text, an image URL, or
// both.
type Fragment struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

// Send posts the message and returns the assistant's reply fragments. Any
// upstream failure surfaces as a single error; there are no retries.
func (c *Client) Send(ctx context.Context, msg Message) ([]Fragment, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assistant webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("assistant webhook: status %d: %s", resp.StatusCode, string(b))
	}

	var fragments []Fragment
	if err := json.NewDecoder(resp.Body).Decode(&fragments); err != nil {
		return nil, fmt.Errorf("assistant webhook: decode reply: %w", err)
	}
	return fragments, nil
}
