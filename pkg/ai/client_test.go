package ai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeAnswerForwardsAudioContentType(t *testing.T) {
	var gotQuestion, gotContentType, gotFilename string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reader, err := r.MultipartReader()
		if err != nil {
			t.Fatalf("expected multipart request: %v", err)
		}
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("reading part: %v", err)
			}
			switch part.FormName() {
			case "question":
				data, _ := io.ReadAll(part)
				gotQuestion = string(data)
			case "audio":
				gotContentType = part.Header.Get("Content-Type")
				gotFilename = part.FileName()
				io.Copy(io.Discard, part)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"score": 7.5, "feedback": "solid answer"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	analysis, err := client.AnalyzeAnswer(context.Background(), "Tell me about yourself", []byte("fake-audio"), "audio/ogg")

	assert.NoError(t, err)
	assert.Equal(t, 7.5, analysis.Score)
	assert.Equal(t, "solid answer", analysis.Feedback)
	assert.Equal(t, "Tell me about yourself", gotQuestion)
	assert.Equal(t, "audio/ogg", gotContentType)
	assert.Equal(t, "answer.ogg", gotFilename)
}

func TestAudioPartHeaderDefaults(t *testing.T) {
	tests := []struct {
		name         string
		contentType  string
		wantType     string
		wantFilename string
	}{
		{"webm", "audio/webm", "audio/webm", "answer.webm"},
		{"mpeg maps to mp3", "audio/mpeg", "audio/mpeg", "answer.mp3"},
		{"codec params stripped", "audio/ogg; codecs=opus", "audio/ogg", "answer.ogg"},
		{"empty falls back", "", "application/octet-stream", "answer.webm"},
		{"unknown keeps type, default ext", "audio/flac", "audio/flac", "answer.webm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := audioPartHeader(tt.contentType)
			assert.Equal(t, tt.wantType, h.Get("Content-Type"))
			assert.Contains(t, h.Get("Content-Disposition"), `filename="`+tt.wantFilename+`"`)
		})
	}
}
