package handlers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"valo-platform-backend/internal/api/handlers"
	"valo-platform-backend/internal/mocks"
	"valo-platform-backend/internal/service"
	"valo-platform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OCRHandlerTestSuite defines the test suite for OCRHandler
type OCRHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockVision *mocks.MockVisionServiceInterface
	mockStore  *mocks.MockScreenshotStore
	handler    *handlers.OCRHandler
	httpSuite  *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OCRHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockVision = mocks.NewMockVisionServiceInterface(suite.ctrl)
	suite.mockStore = mocks.NewMockScreenshotStore(suite.ctrl)

	// Create handler with mock dependencies
	suite.handler = handlers.NewOCRHandler(suite.mockVision, suite.mockStore)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	ocr := v1.Group("/ocr")
	{
		ocr.POST("/scoreboard", suite.handler.ParseScoreboard)
	}
}

// TearDownTest cleans up after each test
func (suite *OCRHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// buildScoreboardUpload assembles a multipart body with a screenshot part and,
// when teamID is non-empty, a team_id field. CreatePart is used instead of
// CreateFormFile so the part carries a real image content type rather than
// application/octet-stream.
func buildScoreboardUpload(teamID string, payload []byte, contentType string) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if teamID != "" {
		writer.WriteField("team_id", teamID)
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="screenshot"; filename="scoreboard.png"`)
	header.Set("Content-Type", contentType)
	part, _ := writer.CreatePart(header)
	part.Write(payload)
	writer.Close()

	return body, writer.FormDataContentType()
}

// makeScoreboardRequest posts a screenshot upload through the suite router
func (suite *OCRHandlerTestSuite) makeScoreboardRequest(teamID string, payload []byte, contentType string) *httptest.ResponseRecorder {
	body, formContentType := buildScoreboardUpload(teamID, payload, contentType)

	req, _ := http.NewRequest("POST", "/api/v1/ocr/scoreboard", body)
	req.Header.Set("Content-Type", formContentType)

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// scoreboardRowsFixture returns the ally five of a parsed Ascent board
func scoreboardRowsFixture() []service.OCRRow {
	return []service.OCRRow{
		{GameName: "jett_main", TagLine: "EUW", Agent: "Jett", Kills: 24, Deaths: 15, Assists: 4, Score: 301},
		{GameName: "sova_scout", TagLine: "EUW", Agent: "Sova", Kills: 16, Deaths: 14, Assists: 11, Score: 242},
		{GameName: "omen_anchor", TagLine: "EUW", Agent: "Omen", Kills: 14, Deaths: 13, Assists: 9, Score: 218},
		{GameName: "coach_cat", TagLine: "VAL", Agent: "Killjoy", Kills: 12, Deaths: 16, Assists: 7, Score: 190},
		{GameName: "vod_gremlin", TagLine: "VAL", Agent: "Skye", Kills: 10, Deaths: 15, Assists: 14, Score: 176},
	}
}

// TestParseScoreboard tests the ParseScoreboard handler
func (suite *OCRHandlerTestSuite) TestParseScoreboard() {
	// Test recognition with storage
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		payload := []byte("fake-png-bytes")
		storedKey := "screenshots/" + teamID.String() + "/abc123.png"
		presignedURL := "https://minio.valo.local/screenshots/abc123?X-Amz-Signature=def"

		parsed := &service.ScoreboardParseResult{
			NeedsManualEntry: false,
			Rows:             scoreboardRowsFixture(),
			MapCandidate:     "Ascent",
			ResultCandidate:  "win",
			ScoreCandidate:   "13-7",
			Confidence:       0.91,
		}

		suite.mockStore.EXPECT().
			UploadScreenshot(gomock.Any(), teamID, payload, "image/png").
			Return(storedKey, nil).
			Times(1)
		suite.mockStore.EXPECT().
			PresignScreenshot(gomock.Any(), storedKey).
			Return(presignedURL, nil).
			Times(1)
		suite.mockVision.EXPECT().
			ParseScoreboard(gomock.Any(), payload).
			Return(parsed).
			Times(1)

		recorder := suite.makeScoreboardRequest(teamID.String(), payload, "image/png")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ScoreboardParseResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.False(t, response.NeedsManualEntry)
		assert.Len(t, response.Rows, 5)
		assert.Equal(t, "Ascent", response.MapCandidate)
		assert.Equal(t, "jett_main", response.Rows[0].GameName)
		assert.Equal(t, presignedURL, response.ScreenshotURL)
	})

	// Test upload without a team_id field
	suite.T().Run("Without Team ID", func(t *testing.T) {
		payload := []byte("fake-png-bytes")

		parsed := &service.ScoreboardParseResult{
			NeedsManualEntry: false,
			Rows:             scoreboardRowsFixture(),
			Confidence:       0.84,
		}

		suite.mockVision.EXPECT().
			ParseScoreboard(gomock.Any(), payload).
			Return(parsed).
			Times(1)

		recorder := suite.makeScoreboardRequest("", payload, "image/png")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ScoreboardParseResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Empty(t, response.ScreenshotURL)
	})

	// Test upload with a malformed team_id field
	suite.T().Run("Invalid Team ID Skips Storage", func(t *testing.T) {
		payload := []byte("fake-png-bytes")

		parsed := &service.ScoreboardParseResult{
			NeedsManualEntry: false,
			Rows:             scoreboardRowsFixture(),
			Confidence:       0.84,
		}

		suite.mockVision.EXPECT().
			ParseScoreboard(gomock.Any(), payload).
			Return(parsed).
			Times(1)

		recorder := suite.makeScoreboardRequest("mythic-five", payload, "image/png")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ScoreboardParseResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Empty(t, response.ScreenshotURL)
	})

	// Test recognition surviving an upload failure
	suite.T().Run("Upload Failure Does Not Fail The Request", func(t *testing.T) {
		teamID := uuid.New()
		payload := []byte("fake-png-bytes")

		parsed := &service.ScoreboardParseResult{
			NeedsManualEntry: false,
			Rows:             scoreboardRowsFixture(),
			Confidence:       0.88,
		}

		suite.mockStore.EXPECT().
			UploadScreenshot(gomock.Any(), teamID, payload, "image/png").
			Return("", fmt.Errorf("minio: connection refused")).
			Times(1)
		suite.mockVision.EXPECT().
			ParseScoreboard(gomock.Any(), payload).
			Return(parsed).
			Times(1)

		recorder := suite.makeScoreboardRequest(teamID.String(), payload, "image/png")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ScoreboardParseResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.False(t, response.NeedsManualEntry)
		assert.Empty(t, response.ScreenshotURL)
	})

	// Test recognition surviving a presign failure
	suite.T().Run("Presign Failure Does Not Fail The Request", func(t *testing.T) {
		teamID := uuid.New()
		payload := []byte("fake-png-bytes")
		storedKey := "screenshots/" + teamID.String() + "/abc123.png"

		parsed := &service.ScoreboardParseResult{
			NeedsManualEntry: false,
			Rows:             scoreboardRowsFixture(),
			Confidence:       0.88,
		}

		suite.mockStore.EXPECT().
			UploadScreenshot(gomock.Any(), teamID, payload, "image/png").
			Return(storedKey, nil).
			Times(1)
		suite.mockStore.EXPECT().
			PresignScreenshot(gomock.Any(), storedKey).
			Return("", fmt.Errorf("minio: connection refused")).
			Times(1)
		suite.mockVision.EXPECT().
			ParseScoreboard(gomock.Any(), payload).
			Return(parsed).
			Times(1)

		recorder := suite.makeScoreboardRequest(teamID.String(), payload, "image/png")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ScoreboardParseResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Empty(t, response.ScreenshotURL)
	})

	// Test recognition reporting low confidence
	suite.T().Run("Manual Fallback From Vision", func(t *testing.T) {
		payload := []byte("fake-png-bytes")

		parsed := &service.ScoreboardParseResult{
			NeedsManualEntry: true,
			Rows:             []service.OCRRow{},
			Confidence:       0.2,
		}

		suite.mockVision.EXPECT().
			ParseScoreboard(gomock.Any(), payload).
			Return(parsed).
			Times(1)

		recorder := suite.makeScoreboardRequest("", payload, "image/png")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ScoreboardParseResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.NeedsManualEntry)
		assert.Empty(t, response.Rows)
	})

	// Test missing screenshot part
	suite.T().Run("Missing File", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		writer.Close()

		req, _ := http.NewRequest("POST", "/api/v1/ocr/scoreboard", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "screenshot file is required")
	})

	// Test oversized upload
	suite.T().Run("File Too Large", func(t *testing.T) {
		payload := bytes.Repeat([]byte("a"), 10<<20+1)

		recorder := suite.makeScoreboardRequest("", payload, "image/png")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "file exceeds the 10MB limit")
	})
}

// TestParseScoreboardWithoutVision tests the fallback when no vision client is configured
func (suite *OCRHandlerTestSuite) TestParseScoreboardWithoutVision() {
	suite.T().Run("Manual Entry Fallback", func(t *testing.T) {
		bare := testutils.SetupHTTPTest()
		handler := handlers.NewOCRHandler(nil, nil)
		bare.Router.POST("/api/v1/ocr/scoreboard", handler.ParseScoreboard)

		body, formContentType := buildScoreboardUpload("", []byte("fake-png-bytes"), "image/png")

		req, _ := http.NewRequest("POST", "/api/v1/ocr/scoreboard", body)
		req.Header.Set("Content-Type", formContentType)

		recorder := httptest.NewRecorder()
		bare.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.ScoreboardParseResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.NeedsManualEntry)
		assert.Empty(t, response.Rows)
		assert.Empty(t, response.ScreenshotURL)
	})
}

// TestOCRHandlerTestSuite runs the test suite
func TestOCRHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OCRHandlerTestSuite))
}
