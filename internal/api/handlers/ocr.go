package handlers

import (
	"net/http"

	"valo-platform-backend/internal/logger"
	"valo-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OCRHandler handles scoreboard screenshot recognition
type OCRHandler struct {
	visionService service.VisionServiceInterface
	store         service.ScreenshotStore
	log           *logger.Logger
}

// NewOCRHandler creates a new OCR handler. Both dependencies are optional:
// without a vision client every request falls back to manual entry, without
// a store the screenshot is parsed but not persisted.
func NewOCRHandler(visionService service.VisionServiceInterface, store service.ScreenshotStore) *OCRHandler {
	return &OCRHandler{
		visionService: visionService,
		store:         store,
		log:           logger.New(),
	}
}

// ParseScoreboard handles POST /ocr/scoreboard
// @Summary Parse a scoreboard screenshot
// @Description Store the uploaded end-of-game screenshot and run scoreboard recognition on it. Always returns 200; when recognition is unavailable or fails, needs_manual_entry is set so the client can fall back to a manual entry form.
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param screenshot formData file true "Screenshot image (PNG, JPEG or WebP)"
// @Param team_id formData string false "Team ID (UUID) used to file the stored screenshot"
// @Success 200 {object} service.ScoreboardParseResult "Parsed rows or manual entry fallback"
// @Failure 400 {object} map[string]interface{} "Invalid or oversized file"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security BearerAuth
// @Router /ocr/scoreboard [post]
func (h *OCRHandler) ParseScoreboard(c *gin.Context) {
	data, contentType, ok := readImageFile(c, "screenshot")
	if !ok {
		return
	}

	var screenshotURL string
	if h.store != nil {
		if teamID, err := uuid.Parse(c.PostForm("team_id")); err == nil {
			screenshotURL = h.storeScreenshot(c, teamID, data, contentType)
		}
	}

	result := &service.ScoreboardParseResult{
		NeedsManualEntry: true,
		Rows:             []service.OCRRow{},
	}
	if h.visionService != nil {
		result = h.visionService.ParseScoreboard(c.Request.Context(), data)
	}
	result.ScreenshotURL = screenshotURL

	c.JSON(http.StatusOK, result)
}

// storeScreenshot uploads the image and returns a presigned URL. Storage
// trouble never fails the request, the caller just loses the stored copy.
func (h *OCRHandler) storeScreenshot(c *gin.Context, teamID uuid.UUID, data []byte, contentType string) string {
	key, err := h.store.UploadScreenshot(c.Request.Context(), teamID, data, contentType)
	if err != nil {
		h.log.WithField("error", err.Error()).Warn("Screenshot upload failed")
		return ""
	}
	url, err := h.store.PresignScreenshot(c.Request.Context(), key)
	if err != nil {
		h.log.WithField("error", err.Error()).Warn("Screenshot presign failed")
		return ""
	}
	return url
}
