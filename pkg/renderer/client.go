package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the PDF rendering service. The service owns layout and
// pagination; we only send it the normalized render payload and which
// template to use.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// RenderRequest is the renderer's input contract: a normalized CV document
// and a template selector (modern|minimalist|executive).
type RenderRequest struct {
	CV       json.RawMessage `json:"cv"`
	Template string          `json:"template"`
}

// RenderResult carries the stored PDF's URL.
type RenderResult struct {
	PDFURL string `json:"pdf_url"`
}

func (c *Client) Render(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/render", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("renderer unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("renderer returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result RenderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode render result: %w", err)
	}
	return &result, nil
}
