package handlers

import (
	"net/http"
	"strconv"

	"valo-platform-backend/internal/auth"
	"valo-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for calendar events and RSVPs
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// CreateSchedule handles POST /schedules
// @Summary Create a calendar event
// @Description Schedule a scrim, practice, VOD review, tournament or meeting; owner or coach only
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body service.CreateScheduleRequest true "Event data"
// @Success 201 {object} service.ScheduleResponse "Successfully created event"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time range"
// @Failure 403 {object} map[string]interface{} "Not an owner or coach"
// @Failure 409 {object} map[string]interface{} "Overlapping event"
// @Security BearerAuth
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	schedule, err := h.scheduleService.Create(actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetSchedule handles GET /schedules/:id
// @Summary Get event by ID
// @Description Get a calendar event by its UUID; team members only
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {object} service.ScheduleResponse "Successfully retrieved event"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	schedule, err := h.scheduleService.GetByID(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// GetSchedulesByTeam handles GET /teams/:id/schedules
// @Summary List team events
// @Description Get the calendar events of a team with pagination; members only
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ScheduleListResponse "Successfully retrieved events"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/schedules [get]
func (h *ScheduleHandler) GetSchedulesByTeam(c *gin.Context) {
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

	schedules, err := h.scheduleService.GetByTeamID(actorID, teamID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// GetUpcomingByTeam handles GET /teams/:id/schedules/upcoming
// @Summary List upcoming team events
// @Description Get the team's events starting within the next N days (default 7); members only
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param days query int false "Look-ahead window in days" default(7)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ScheduleListResponse "Successfully retrieved events"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/schedules/upcoming [get]
func (h *ScheduleHandler) GetUpcomingByTeam(c *gin.Context) {
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

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	schedules, err := h.scheduleService.GetUpcoming(actorID, teamID, days, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// UpdateSchedule handles PUT /schedules/:id
// @Summary Update event
// @Description Update a calendar event; owner or coach only
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param schedule body service.UpdateScheduleRequest true "Event fields to update"
// @Success 200 {object} service.ScheduleResponse "Successfully updated event"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not an owner or coach"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [put]
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	var req service.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	schedule, err := h.scheduleService.Update(actorID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule handles DELETE /schedules/:id
// @Summary Delete event
// @Description Delete a calendar event and its RSVPs; owner or coach only
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 204 "Successfully deleted event"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 403 {object} map[string]interface{} "Not an owner or coach"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	if err := h.scheduleService.Delete(actorID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// GetAttendance handles GET /schedules/:id/attendance
// @Summary Get event attendance
// @Description Get all RSVPs for an event with per-status counts; team members only
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {object} service.AttendanceSummary "Successfully retrieved attendance"
// @Failure 400 {object} map[string]interface{} "Invalid schedule ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id}/attendance [get]
func (h *ScheduleHandler) GetAttendance(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	attendance, err := h.scheduleService.GetAttendance(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attendance)
}

// UpsertAttendance handles PUT /schedules/:id/attendance
// @Summary RSVP to an event
// @Description Create or update the caller's own RSVP for an event; team members only
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID (UUID)"
// @Param attendance body service.UpsertAttendanceRequest true "RSVP status and optional note"
// @Success 200 {object} service.AttendanceResponse "Successfully saved RSVP"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id}/attendance [put]
func (h *ScheduleHandler) UpsertAttendance(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	var req service.UpsertAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	attendance, err := h.scheduleService.UpsertAttendance(actorID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attendance)
}
