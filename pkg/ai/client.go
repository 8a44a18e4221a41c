package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

// Client talks to the hosted AI service. Request/response bodies are
// opaque JSON as far as this backend is concerned; we only carry them
// between the caller and the service.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		// AI calls are slow; generous timeout, no retry (the user retries)
		http: &http.Client{Timeout: 90 * time.Second},
	}
}

// OptimizeRequest carries the master profile and the job requirements the
// CV should be tailored against.
type OptimizeRequest struct {
	Profile      json.RawMessage `json:"profile"`
	Requirements []string        `json:"requirements"`
	JobText      string          `json:"job_text,omitempty"`
}

// OptimizeResponse holds the tailored CV document produced by the service.
type OptimizeResponse struct {
	CV json.RawMessage `json:"cv"`
}

func (c *Client) OptimizeCV(ctx context.Context, req OptimizeRequest) (*OptimizeResponse, error) {
	var resp OptimizeResponse
	if err := c.postJSON(ctx, "/v1/cv/optimize", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ATSScore holds an ATS compatibility score plus feedback lines.
type ATSScore struct {
	Score    float64  `json:"score"`
	Feedback []string `json:"feedback"`
}

func (c *Client) ScoreCV(ctx context.Context, cv json.RawMessage, jobText string) (*ATSScore, error) {
	req := map[string]interface{}{"cv": cv, "job_text": jobText}
	var resp ATSScore
	if err := c.postJSON(ctx, "/v1/cv/ats-score", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CleanCV parses pasted or uploaded raw CV text into a structured profile.
func (c *Client) CleanCV(ctx context.Context, rawText string) (json.RawMessage, error) {
	req := map[string]string{"text": rawText}
	var resp struct {
		Profile json.RawMessage `json:"profile"`
	}
	if err := c.postJSON(ctx, "/v1/cv/clean", req, &resp); err != nil {
		return nil, err
	}
	return resp.Profile, nil
}

// RevampProfile returns improvement suggestions for a master profile.
func (c *Client) RevampProfile(ctx context.Context, profile json.RawMessage) (json.RawMessage, error) {
	req := map[string]interface{}{"profile": profile}
	var resp struct {
		Suggestions json.RawMessage `json:"suggestions"`
	}
	if err := c.postJSON(ctx, "/v1/profile/revamp", req, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// InterviewQuestions generates practice questions for a role.
func (c *Client) InterviewQuestions(ctx context.Context, role string, profile json.RawMessage) ([]string, error) {
	req := map[string]interface{}{"role": role, "profile": profile}
	var resp struct {
		Questions []string `json:"questions"`
	}
	if err := c.postJSON(ctx, "/v1/interview/questions", req, &resp); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// AnswerAnalysis is the scored feedback for one recorded answer.
type AnswerAnalysis struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// AnalyzeAnswer uploads a recorded answer (audio) and returns the analysis.
func (c *Client) AnalyzeAnswer(ctx context.Context, question string, audio []byte, contentType string) (*AnswerAnalysis, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("question", question); err != nil {
		return nil, err
	}
	part, err := writer.CreatePart(audioPartHeader(contentType))
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(audio); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/interview/analyze", &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ai service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("ai service returned %d: %s", resp.StatusCode, string(respBody))
	}

	var analysis AnswerAnalysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	return &analysis, nil
}

var audioExtensions = map[string]string{
	"audio/webm": "webm",
	"audio/ogg":  "ogg",
	"audio/mpeg": "mp3",
	"audio/mp4":  "m4a",
	"audio/wav":  "wav",
	"audio/wave": "wav",
}

// audioPartHeader builds the multipart header for the audio part so the
// uploaded content type survives the hop to the analysis service.
func audioPartHeader(contentType string) textproto.MIMEHeader {
	contentType = strings.TrimSpace(contentType)
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ext, ok := audioExtensions[strings.ToLower(contentType)]
	if !ok {
		ext = "webm"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="audio"; filename="answer.%s"`, ext))
	h.Set("Content-Type", contentType)
	return h
}

func (c *Client) postJSON(ctx context.Context, path string, reqBody interface{}, out interface{}) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("ai service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ai service returned %d: %s", resp.StatusCode, string(respBody))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
