package handlers

import (
	"io"
	"net/http"
	"strconv"

	"valo-platform-backend/internal/auth"
	"valo-platform-backend/internal/database/models"
	"valo-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxScreenshotBytes caps scoreboard uploads; end-of-game screens are a few MB at most.
const maxScreenshotBytes = 10 << 20

// MatchHandler handles HTTP requests for matches
type MatchHandler struct {
	matchService service.MatchServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService service.MatchServiceInterface) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// CreateMatch handles POST /matches
// @Summary Create a match manually
// @Description Create a match from manually entered scoreboard rows; team members only
// @Tags matches
// @Accept json
// @Produce json
// @Param match body service.CreateMatchRequest true "Match data with scoreboard rows"
// @Success 201 {object} service.MatchDetailResponse "Successfully created match"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 409 {object} map[string]interface{} "Match already recorded"
// @Security BearerAuth
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	match, err := h.matchService.Create(actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// ImportMatch handles POST /matches/import
// @Summary Import a match from raw match data
// @Description Ingest a full raw match JSON payload, compute per-player and per-round stats and store the match; team members only
// @Tags matches
// @Accept json
// @Produce json
// @Param match body service.ImportMatchRequest true "Raw match payload"
// @Success 201 {object} service.MatchDetailResponse "Successfully imported match"
// @Failure 400 {object} map[string]interface{} "Invalid or unusable match payload"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 409 {object} map[string]interface{} "Match already imported"
// @Security BearerAuth
// @Router /matches/import [post]
func (h *MatchHandler) ImportMatch(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.ImportMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	match, err := h.matchService.Import(actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// GetMatch handles GET /matches/:id
// @Summary Get match by ID
// @Description Get a match by its UUID; team members only
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchResponse "Successfully retrieved match"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	match, err := h.matchService.GetByID(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// GetMatchPlayers handles GET /matches/:id/players
// @Summary List match players
// @Description Get the stored per-player rows of a match; team members only
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {array} service.MatchPlayerResponse "Successfully retrieved match players"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id}/players [get]
func (h *MatchHandler) GetMatchPlayers(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	players, err := h.matchService.GetPlayers(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetMatchesByTeam handles GET /teams/:id/matches
// @Summary List team matches
// @Description Get the matches of a team, optionally filtered by category, with pagination; members only
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param category query string false "Match category filter (competitive, scrim, tournament)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MatchListResponse "Successfully retrieved matches"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/matches [get]
func (h *MatchHandler) GetMatchesByTeam(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	category := models.MatchCategory(c.Query("category"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	matches, err := h.matchService.GetByTeamID(actorID, teamID, category, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// UpdateMatch handles PUT /matches/:id
// @Summary Update match
// @Description Update match metadata such as opponent, category or notes; team members only
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param match body service.UpdateMatchRequest true "Match fields to update"
// @Success 200 {object} service.MatchResponse "Successfully updated match"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [put]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	var req service.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	match, err := h.matchService.Update(actorID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch handles DELETE /matches/:id
// @Summary Delete match
// @Description Delete a match and its player rows; owner or coach only
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 204 "Successfully deleted match"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 403 {object} map[string]interface{} "Not an owner or coach"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	if err := h.matchService.Delete(actorID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// UploadScreenshot handles POST /matches/:id/screenshot
// @Summary Attach a scoreboard screenshot
// @Description Upload the end-of-game screenshot for a match to object storage; team members only
// @Tags matches
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param screenshot formData file true "Screenshot image (PNG, JPEG or WebP)"
// @Success 200 {object} map[string]interface{} "Presigned screenshot URL"
// @Failure 400 {object} map[string]interface{} "Invalid or oversized file"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Failure 502 {object} map[string]interface{} "Object storage unavailable"
// @Security BearerAuth
// @Router /matches/{id}/screenshot [post]
func (h *MatchHandler) UploadScreenshot(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	data, contentType, ok := readImageFile(c, "screenshot")
	if !ok {
		return
	}

	url, err := h.matchService.AttachScreenshot(c.Request.Context(), actorID, id, data, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"screenshot_url": url})
}

// readImageFile pulls a multipart image out of the request. On failure it
// writes the error response itself and returns ok=false.
func readImageFile(c *gin.Context, field string) ([]byte, string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + " file is required"})
		return nil, "", false
	}
	if fileHeader.Size > maxScreenshotBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the 10MB limit"})
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxScreenshotBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return nil, "", false
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, true
}
