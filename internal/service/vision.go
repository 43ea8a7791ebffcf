package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"valo-platform-backend/internal/config"
	apperrors "valo-platform-backend/internal/errors"
	"valo-platform-backend/internal/logger"
)

const scoreboardSystemPrompt = `You are a Valorant scoreboard reader. Extract every player row from the provided end-of-game scoreboard screenshot.

Respond ONLY in this JSON format:
{
    "rows": [
        {"game_name": "...", "tag_line": "...", "agent": "...", "kills": 0, "deaths": 0, "assists": 0, "score": 0}
    ],
    "map": "map name or empty string",
    "result": "win" or "loss" or "draw" or "",
    "score": "13-7 or empty string",
    "confidence": 0.0-1.0
}`

// OCRRow represents one scoreboard line read from a screenshot
type OCRRow struct {
	GameName string `json:"game_name"`
	TagLine  string `json:"tag_line"`
	Agent    string `json:"agent"`
	Kills    int    `json:"kills"`
	Deaths   int    `json:"deaths"`
	Assists  int    `json:"assists"`
	Score    int    `json:"score"`
}

// ScoreboardParseResult represents the outcome of a scoreboard recognition
// attempt. NeedsManualEntry is set whenever recognition could not produce
// rows, so the client can fall back to a manual entry form.
type ScoreboardParseResult struct {
	NeedsManualEntry bool     `json:"needs_manual_entry"`
	Rows             []OCRRow `json:"rows"`
	MapCandidate     string   `json:"map_candidate,omitempty"`
	ResultCandidate  string   `json:"result_candidate,omitempty"`
	ScoreCandidate   string   `json:"score_candidate,omitempty"`
	Confidence       float64  `json:"confidence"`
	ScreenshotURL    string   `json:"screenshot_url,omitempty"`
}

type visionContentPart struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *visionImageURL `json:"image_url,omitempty"`
}

type visionImageURL struct {
	URL string `json:"url"`
}

type visionMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type visionChatRequest struct {
	Model       string          `json:"model"`
	Messages    []visionMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type visionChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type visionPayload struct {
	Rows       []OCRRow `json:"rows"`
	Map        string   `json:"map"`
	Result     string   `json:"result"`
	Score      string   `json:"score"`
	Confidence float64  `json:"confidence"`
}

// VisionService reads Valorant scoreboards through an OpenAI compatible
// vision model endpoint
type VisionService struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	model      string
	log        *logger.Logger
}

// NewVisionService creates a new vision service from the configuration
func NewVisionService(cfg *config.Config) (*VisionService, error) {
	if !cfg.VisionEnabled() {
		return nil, apperrors.ErrVisionConfigMissing
	}

	timeout := time.Duration(cfg.VisionTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &VisionService{
		httpClient: &http.Client{Timeout: timeout},
		apiURL:     strings.TrimRight(cfg.VisionAPIURL, "/"),
		apiKey:     cfg.VisionAPIKey,
		model:      cfg.VisionModel,
		log:        logger.New(),
	}, nil
}

// ParseScoreboard runs scoreboard recognition on a screenshot. Recognition is
// best effort: transport, API and parse failures all come back as a manual
// entry result, never as an error.
func (s *VisionService) ParseScoreboard(ctx context.Context, image []byte) *ScoreboardParseResult {
	payload, err := s.analyze(ctx, image)
	if err != nil {
		s.log.WithField("error", err.Error()).Warn("Scoreboard recognition failed, falling back to manual entry")
		return &ScoreboardParseResult{NeedsManualEntry: true, Rows: []OCRRow{}}
	}

	result := &ScoreboardParseResult{
		Rows:            payload.Rows,
		MapCandidate:    payload.Map,
		ResultCandidate: payload.Result,
		ScoreCandidate:  payload.Score,
		Confidence:      payload.Confidence,
	}
	if len(result.Rows) == 0 {
		result.NeedsManualEntry = true
		result.Rows = []OCRRow{}
	}
	return result
}

func (s *VisionService) analyze(ctx context.Context, image []byte) (*visionPayload, error) {
	encoded := base64.StdEncoding.EncodeToString(image)

	reqBody := visionChatRequest{
		Model: s.model,
		Messages: []visionMessage{
			{Role: "system", Content: scoreboardSystemPrompt},
			{Role: "user", Content: []visionContentPart{
				{Type: "image_url", ImageURL: &visionImageURL{URL: "data:image/png;base64," + encoded}},
				{Type: "text", Text: "Extract the scoreboard from this Valorant end-of-game screen."},
			}},
		},
		MaxTokens:   1500,
		Temperature: 0.1,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/v1/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrVisionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", apperrors.ErrVisionUnavailable, resp.StatusCode, string(body))
	}

	var chatResp visionChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrVisionParseFailed, err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: response contains no choices", apperrors.ErrVisionParseFailed)
	}

	content := stripJSONFences(chatResp.Choices[0].Message.Content)

	var payload visionPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrVisionParseFailed, err)
	}

	return &payload, nil
}

// stripJSONFences unwraps model output that arrives inside a markdown code block
func stripJSONFences(content string) string {
	if strings.Contains(content, "```json") {
		content = strings.SplitN(content, "```json", 2)[1]
		content = strings.SplitN(content, "```", 2)[0]
	} else if strings.Contains(content, "```") {
		parts := strings.SplitN(content, "```", 3)
		if len(parts) >= 2 {
			content = parts[1]
		}
	}
	return strings.TrimSpace(content)
}
