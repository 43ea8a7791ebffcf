package handlers

import (
	"net/http"
	"strconv"

	"valo-platform-backend/internal/auth"
	"valo-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ObjectiveHandler handles HTTP requests for scrim objectives
type ObjectiveHandler struct {
	objectiveService service.ObjectiveServiceInterface
}

// NewObjectiveHandler creates a new objective handler
func NewObjectiveHandler(objectiveService service.ObjectiveServiceInterface) *ObjectiveHandler {
	return &ObjectiveHandler{objectiveService: objectiveService}
}

// CreateMatchObjective handles POST /matches/:id/objectives
// @Summary Create a match objective
// @Description Attach a practice objective to a match; owner or coach only
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param objective body service.CreateObjectiveRequest true "Objective data"
// @Success 201 {object} service.ObjectiveResponse "Successfully created objective"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not a team manager"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id}/objectives [post]
func (h *ObjectiveHandler) CreateMatchObjective(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	var req service.CreateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	objective, err := h.objectiveService.CreateForMatch(actorID, matchID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, objective)
}

// GetMatchObjectives handles GET /matches/:id/objectives
// @Summary Get match objectives
// @Description Get all objectives attached to a match; team members only
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {array} service.ObjectiveResponse "Successfully retrieved objectives"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id}/objectives [get]
func (h *ObjectiveHandler) GetMatchObjectives(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	objectives, err := h.objectiveService.GetByMatchID(actorID, matchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, objectives)
}

// CreateScheduleObjective handles POST /schedules/:id/objectives
// @Summary Create a schedule objective
// @Description Attach a practice objective to a scheduled event; owner or coach only
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param objective body service.CreateObjectiveRequest true "Objective data"
// @Success 201 {object} service.ObjectiveResponse "Successfully created objective"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not a team manager"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id}/objectives [post]
func (h *ObjectiveHandler) CreateScheduleObjective(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	var req service.CreateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	objective, err := h.objectiveService.CreateForSchedule(actorID, scheduleID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, objective)
}

// GetScheduleObjectives handles GET /schedules/:id/objectives
// @Summary Get schedule objectives
// @Description Get all objectives attached to a scheduled event; team members only
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {array} service.ObjectiveResponse "Successfully retrieved objectives"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id}/objectives [get]
func (h *ObjectiveHandler) GetScheduleObjectives(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	objectives, err := h.objectiveService.GetByScheduleID(actorID, scheduleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, objectives)
}

// GetTeamObjectives handles GET /teams/:id/objectives
// @Summary Get team objectives
// @Description Get all objectives across the team's matches and schedules with pagination; team members only
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ObjectiveListResponse "Successfully retrieved objectives"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/objectives [get]
func (h *ObjectiveHandler) GetTeamObjectives(c *gin.Context) {
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

	objectives, err := h.objectiveService.GetByTeamID(actorID, teamID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, objectives)
}

// UpdateObjective handles PUT /objectives/:id
// @Summary Update an objective
// @Description Update an objective's text, status or result notes; owner or coach only
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Param objective body service.UpdateObjectiveRequest true "Objective fields to update"
// @Success 200 {object} service.ObjectiveResponse "Successfully updated objective"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not a team manager"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Security BearerAuth
// @Router /objectives/{id} [put]
func (h *ObjectiveHandler) UpdateObjective(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid objective ID"})
		return
	}

	var req service.UpdateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	objective, err := h.objectiveService.Update(actorID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, objective)
}

// DeleteObjective handles DELETE /objectives/:id
// @Summary Delete an objective
// @Description Delete an objective; owner or coach only
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Success 204 "Successfully deleted objective"
// @Failure 400 {object} map[string]interface{} "Invalid objective ID"
// @Failure 403 {object} map[string]interface{} "Not a team manager"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Security BearerAuth
// @Router /objectives/{id} [delete]
func (h *ObjectiveHandler) DeleteObjective(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid objective ID"})
		return
	}

	if err := h.objectiveService.Delete(actorID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
