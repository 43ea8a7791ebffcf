package handlers

import (
	"net/http"

	"valo-platform-backend/internal/auth"
	"valo-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConditionHandler handles HTTP requests for daily player condition check-ins
type ConditionHandler struct {
	conditionService service.ConditionServiceInterface
}

// NewConditionHandler creates a new condition handler
func NewConditionHandler(conditionService service.ConditionServiceInterface) *ConditionHandler {
	return &ConditionHandler{conditionService: conditionService}
}

// UpsertToday handles PUT /conditions/today
// @Summary Record today's condition
// @Description Create or update the authenticated user's condition check-in for today
// @Tags conditions
// @Accept json
// @Produce json
// @Param condition body service.UpsertConditionRequest true "Condition data"
// @Success 200 {object} service.ConditionResponse "Successfully recorded condition"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /conditions/today [put]
func (h *ConditionHandler) UpsertToday(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.UpsertConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	condition, err := h.conditionService.UpsertToday(actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, condition)
}

// GetMyConditions handles GET /conditions/me
// @Summary Get my condition history
// @Description Get the authenticated user's condition check-ins, optionally bounded by a date range
// @Tags conditions
// @Accept json
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} service.ConditionResponse "Successfully retrieved conditions"
// @Failure 400 {object} map[string]interface{} "Invalid date range"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /conditions/me [get]
func (h *ConditionHandler) GetMyConditions(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	conditions, err := h.conditionService.GetMine(actorID, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, conditions)
}

// GetTeamConditions handles GET /teams/:id/conditions
// @Summary Get team conditions for a date
// @Description Get every member's condition check-in for the given date, defaulting to today; team members only
// @Tags conditions
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} service.ConditionResponse "Successfully retrieved conditions"
// @Failure 400 {object} map[string]interface{} "Invalid team ID or date"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/conditions [get]
func (h *ConditionHandler) GetTeamConditions(c *gin.Context) {
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

	conditions, err := h.conditionService.GetByTeamAndDate(actorID, teamID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, conditions)
}
