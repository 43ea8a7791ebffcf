package handlers

import (
	"net/http"
	"strconv"

	"valo-platform-backend/internal/auth"
	"valo-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlayerHandler handles HTTP requests for roster players
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// CreatePlayer handles POST /players
// @Summary Create a player
// @Description Add a player to a team roster; owner or coach only
// @Tags players
// @Accept json
// @Produce json
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse "Successfully created player"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Not an owner or coach"
// @Failure 409 {object} map[string]interface{} "Player with this PUUID exists"
// @Security BearerAuth
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	player, err := h.playerService.Create(actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayer handles GET /players/:id
// @Summary Get player by ID
// @Description Get a roster player by its UUID; team members only
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {object} service.PlayerResponse "Successfully retrieved player"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
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

	player, err := h.playerService.GetByID(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetPlayersByTeam handles GET /teams/:id/players
// @Summary List team players
// @Description Get the roster of a team with pagination; members only
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PlayerListResponse "Successfully retrieved players"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/players [get]
func (h *PlayerHandler) GetPlayersByTeam(c *gin.Context) {
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

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	players, err := h.playerService.GetByTeamID(actorID, teamID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// UpdatePlayer handles PUT /players/:id
// @Summary Update player
// @Description Update a roster player; owner or coach only
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Param player body service.UpdatePlayerRequest true "Player fields to update"
// @Success 200 {object} service.PlayerResponse "Successfully updated player"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not an owner or coach"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
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

	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	player, err := h.playerService.Update(actorID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// DeletePlayer handles DELETE /players/:id
// @Summary Delete player
// @Description Remove a player from the roster; owner or coach only
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 204 "Successfully deleted player"
// @Failure 400 {object} map[string]interface{} "Invalid player ID"
// @Failure 403 {object} map[string]interface{} "Not an owner or coach"
// @Failure 404 {object} map[string]interface{} "Player not found"
// @Security BearerAuth
// @Router /players/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
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

	if err := h.playerService.Delete(actorID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
