package handlers

import (
	"net/http"
	"strconv"

	"valo-platform-backend/internal/auth"
	"valo-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GoalHandler handles HTTP requests for team and player goals
type GoalHandler struct {
	goalService service.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService service.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoal handles POST /goals
// @Summary Create a goal
// @Description Create a team-wide or per-player goal; owner or coach only
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body service.CreateGoalRequest true "Goal data"
// @Success 201 {object} service.GoalResponse "Successfully created goal"
// @Failure 400 {object} map[string]interface{} "Invalid request body or past target date"
// @Failure 403 {object} map[string]interface{} "Not an owner or coach"
// @Failure 404 {object} map[string]interface{} "Team or player not found"
// @Security BearerAuth
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	goal, err := h.goalService.Create(actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// GetGoal handles GET /goals/:id
// @Summary Get goal by ID
// @Description Get a goal by its UUID; team members only
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} service.GoalResponse "Successfully retrieved goal"
// @Failure 400 {object} map[string]interface{} "Invalid goal ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal ID"})
		return
	}

	goal, err := h.goalService.GetByID(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// GetGoalsByTeam handles GET /teams/:id/goals
// @Summary List team goals
// @Description Get the goals of a team, optionally filtered by player or active status, with pagination; members only
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param player_id query string false "Filter by player ID (UUID)"
// @Param active query bool false "Only active goals"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.GoalListResponse "Successfully retrieved goals"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/goals [get]
func (h *GoalHandler) GetGoalsByTeam(c *gin.Context) {
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

	var playerID *uuid.UUID
	if playerIDStr := c.Query("player_id"); playerIDStr != "" {
		id, err := uuid.Parse(playerIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player ID"})
			return
		}
		playerID = &id
	}

	activeOnly := c.Query("active") == "true"
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	goals, err := h.goalService.GetByTeamID(actorID, teamID, playerID, activeOnly, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// UpdateGoal handles PUT /goals/:id
// @Summary Update goal
// @Description Update goal fields such as title, description, status or target date; owner or coach only
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param goal body service.UpdateGoalRequest true "Goal fields to update"
// @Success 200 {object} service.GoalResponse "Successfully updated goal"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not an owner or coach"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal ID"})
		return
	}

	var req service.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	goal, err := h.goalService.Update(actorID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// UpdateGoalProgress handles PUT /goals/:id/progress
// @Summary Update goal progress
// @Description Set the progress percentage of a goal; any team member
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param progress body service.UpdateGoalProgressRequest true "Progress value (0-100)"
// @Success 200 {object} service.GoalResponse "Successfully updated progress"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Security BearerAuth
// @Router /goals/{id}/progress [put]
func (h *GoalHandler) UpdateGoalProgress(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal ID"})
		return
	}

	var req service.UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	goal, err := h.goalService.UpdateProgress(actorID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles DELETE /goals/:id
// @Summary Delete goal
// @Description Delete a goal; owner or coach only
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 204 "Successfully deleted goal"
// @Failure 400 {object} map[string]interface{} "Invalid goal ID"
// @Failure 403 {object} map[string]interface{} "Not an owner or coach"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal ID"})
		return
	}

	if err := h.goalService.Delete(actorID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
