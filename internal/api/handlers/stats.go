package handlers

import (
	"net/http"
	"strconv"

	"valo-platform-backend/internal/auth"
	"valo-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StatsHandler handles HTTP requests for aggregated player and match statistics
type StatsHandler struct {
	statsService service.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetPlayerStats handles GET /players/:id/stats
// @Summary Get overall player stats
// @Description Get aggregated stats for a player across all imported matches; team members only
// @Tags stats
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {object} service.PlayerOverallStats "Successfully retrieved stats"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{id}/stats [get]
func (h *StatsHandler) GetPlayerStats(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	stats, err := h.statsService.GetPlayerOverall(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetPlayerMapStats handles GET /players/:id/stats/maps
// @Summary Get per-map player stats
// @Description Get the player's aggregated stats broken down by map; team members only
// @Tags stats
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {array} service.PlayerMapStats "Successfully retrieved map stats"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{id}/stats/maps [get]
func (h *StatsHandler) GetPlayerMapStats(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	stats, err := h.statsService.GetPlayerMapStats(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetPlayerAgentStats handles GET /players/:id/stats/agents
// @Summary Get per-agent player stats
// @Description Get the player's aggregated stats broken down by agent; team members only
// @Tags stats
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {array} service.PlayerAgentStats "Successfully retrieved agent stats"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{id}/stats/agents [get]
func (h *StatsHandler) GetPlayerAgentStats(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	stats, err := h.statsService.GetPlayerAgentStats(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetPlayerTimingStats handles GET /players/:id/stats/timings
// @Summary Get round-timing player stats
// @Description Get the player's kill/death distribution across round time sectors; team members only
// @Tags stats
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {array} service.SectorStats "Successfully retrieved timing stats"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{id}/stats/timings [get]
func (h *StatsHandler) GetPlayerTimingStats(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	stats, err := h.statsService.GetPlayerTimingStats(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetPlayerMatches handles GET /players/:id/matches
// @Summary List player match history
// @Description Get the player's match rows with per-match stats, newest first; team members only
// @Tags stats
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PlayerMatchListResponse "Successfully retrieved match history"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{id}/matches [get]
func (h *StatsHandler) GetPlayerMatches(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	matches, err := h.statsService.GetPlayerMatches(actorID, id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatchStats handles GET /matches/:id/stats
// @Summary Get match scoreboard
// @Description Get the full scoreboard of a match with per-player computed stats; team members only
// @Tags stats
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {array} service.MatchPlayerResponse "Successfully retrieved scoreboard"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id}/stats [get]
func (h *StatsHandler) GetMatchStats(c *gin.Context) {
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

	scoreboard, err := h.statsService.GetMatchScoreboard(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scoreboard)
}
