package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"valo-platform-backend/internal/config"
	apperrors "valo-platform-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreboardJSON = `{"rows":[{"game_name":"JettMain","tag_line":"EUW","agent":"Jett","kills":24,"deaths":12,"assists":3,"score":5280}],"map":"Ascent","result":"win","score":"13-7","confidence":0.92}`

// visionTestServer answers the chat completions call with the given content
// string and captures the request for inspection
func visionTestServer(t *testing.T, content string) (*httptest.Server, *http.Request, *[]byte) {
	t.Helper()
	var captured http.Request
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		body, _ = io.ReadAll(r.Body)
		response := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(response)
	}))
	return server, &captured, &body
}

func visionConfig(apiURL string) *config.Config {
	return &config.Config{
		VisionAPIURL:     apiURL,
		VisionAPIKey:     "test-key",
		VisionModel:      "qwen2-vl-72b",
		VisionTimeoutSec: 5,
	}
}

// TestNewVisionService_Disabled tests that a missing configuration is rejected
func TestNewVisionService_Disabled(t *testing.T) {
	svc, err := NewVisionService(&config.Config{})

	assert.Nil(t, svc)
	assert.Equal(t, apperrors.ErrVisionConfigMissing, err)
}

// TestNewVisionService_Internal tests URL trimming and the timeout default
func TestNewVisionService_Internal(t *testing.T) {
	svc, err := NewVisionService(&config.Config{
		VisionAPIURL: "https://vision.example.com/",
		VisionAPIKey: "test-key",
		VisionModel:  "qwen2-vl-72b",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://vision.example.com", svc.apiURL)
	assert.Equal(t, "qwen2-vl-72b", svc.model)
	assert.Equal(t, 30*time.Second, svc.httpClient.Timeout)
}

// TestParseScoreboard_Success tests a clean recognition round trip
func TestParseScoreboard_Success(t *testing.T) {
	server, captured, body := visionTestServer(t, scoreboardJSON)
	defer server.Close()

	svc, err := NewVisionService(visionConfig(server.URL))
	require.NoError(t, err)

	image := []byte("fake png bytes")
	result := svc.ParseScoreboard(context.Background(), image)

	require.NotNil(t, result)
	assert.False(t, result.NeedsManualEntry)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "JettMain", result.Rows[0].GameName)
	assert.Equal(t, "EUW", result.Rows[0].TagLine)
	assert.Equal(t, "Jett", result.Rows[0].Agent)
	assert.Equal(t, 24, result.Rows[0].Kills)
	assert.Equal(t, "Ascent", result.MapCandidate)
	assert.Equal(t, "win", result.ResultCandidate)
	assert.Equal(t, "13-7", result.ScoreCandidate)
	assert.InDelta(t, 0.92, result.Confidence, 0.001)

	assert.Equal(t, "/v1/chat/completions", captured.URL.Path)
	assert.Equal(t, "Bearer test-key", captured.Header.Get("Authorization"))
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Contains(t, string(*body), `"model":"qwen2-vl-72b"`)
	assert.Contains(t, string(*body), "data:image/png;base64,"+base64.StdEncoding.EncodeToString(image))
}

// TestParseScoreboard_FencedContent tests model output wrapped in a markdown
// code block
func TestParseScoreboard_FencedContent(t *testing.T) {
	server, _, _ := visionTestServer(t, "```json\n"+scoreboardJSON+"\n```")
	defer server.Close()

	svc, err := NewVisionService(visionConfig(server.URL))
	require.NoError(t, err)

	result := svc.ParseScoreboard(context.Background(), []byte("fake png bytes"))

	assert.False(t, result.NeedsManualEntry)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "JettMain", result.Rows[0].GameName)
}

// TestParseScoreboard_EmptyRows tests that zero recognized rows request manual
// entry while keeping the candidates
func TestParseScoreboard_EmptyRows(t *testing.T) {
	server, _, _ := visionTestServer(t, `{"rows":[],"map":"Ascent","result":"","score":"","confidence":0.4}`)
	defer server.Close()

	svc, err := NewVisionService(visionConfig(server.URL))
	require.NoError(t, err)

	result := svc.ParseScoreboard(context.Background(), []byte("fake png bytes"))

	assert.True(t, result.NeedsManualEntry)
	assert.NotNil(t, result.Rows)
	assert.Empty(t, result.Rows)
	assert.Equal(t, "Ascent", result.MapCandidate)
}

// TestParseScoreboard_APIError tests that an upstream failure falls back to
// manual entry instead of erroring
func TestParseScoreboard_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("model overloaded"))
	}))
	defer server.Close()

	svc, err := NewVisionService(visionConfig(server.URL))
	require.NoError(t, err)

	result := svc.ParseScoreboard(context.Background(), []byte("fake png bytes"))

	require.NotNil(t, result)
	assert.True(t, result.NeedsManualEntry)
	assert.Empty(t, result.Rows)
}

// TestParseScoreboard_BadContent tests model output that is not JSON at all
func TestParseScoreboard_BadContent(t *testing.T) {
	server, _, _ := visionTestServer(t, "I could not read the scoreboard, sorry.")
	defer server.Close()

	svc, err := NewVisionService(visionConfig(server.URL))
	require.NoError(t, err)

	result := svc.ParseScoreboard(context.Background(), []byte("fake png bytes"))

	assert.True(t, result.NeedsManualEntry)
	assert.Empty(t, result.Rows)
}

// TestParseScoreboard_NoChoices tests an answer without any completion choices
func TestParseScoreboard_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	svc, err := NewVisionService(visionConfig(server.URL))
	require.NoError(t, err)

	result := svc.ParseScoreboard(context.Background(), []byte("fake png bytes"))

	assert.True(t, result.NeedsManualEntry)
}

// TestStripJSONFences_Internal tests unwrapping fenced model output
func TestStripJSONFences_Internal(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "plain JSON",
			content:  `{"rows":[]}`,
			expected: `{"rows":[]}`,
		},
		{
			name:     "json fence",
			content:  "```json\n{\"rows\":[]}\n```",
			expected: `{"rows":[]}`,
		},
		{
			name:     "bare fence",
			content:  "```\n{\"rows\":[]}\n```",
			expected: `{"rows":[]}`,
		},
		{
			name:     "fence with surrounding prose",
			content:  "Here is the scoreboard:\n```json\n{\"rows\":[]}\n```\nLet me know if you need more.",
			expected: `{"rows":[]}`,
		},
		{
			name:     "surrounding whitespace",
			content:  "  {\"rows\":[]}\n",
			expected: `{"rows":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripJSONFences(tt.content))
		})
	}
}
