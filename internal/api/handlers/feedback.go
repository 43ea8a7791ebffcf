package handlers

import (
	"net/http"
	"strconv"

	"valo-platform-backend/internal/auth"
	"valo-platform-backend/internal/repository"
	"valo-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeedbackHandler handles HTTP requests for coach and peer feedback notes
type FeedbackHandler struct {
	feedbackService service.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService service.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// CreateFeedback handles POST /feedback
// @Summary Leave feedback
// @Description Leave a feedback note for the team or a specific member; team members only
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body service.CreateFeedbackRequest true "Feedback data"
// @Success 201 {object} service.FeedbackResponse "Successfully created feedback"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Team, match or recipient not found"
// @Security BearerAuth
// @Router /feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	feedback, err := h.feedbackService.Create(actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// ListFeedback handles GET /feedback
// @Summary List feedback
// @Description Get feedback notes filtered by team (required), match, recipient or author, with pagination; team members only
// @Tags feedback
// @Accept json
// @Produce json
// @Param team_id query string true "Team ID (UUID)"
// @Param match_id query string false "Filter by match ID (UUID)"
// @Param recipient_id query string false "Filter by recipient user ID (UUID)"
// @Param author_id query string false "Filter by author user ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.FeedbackListResponse "Successfully retrieved feedback"
// @Failure 400 {object} map[string]interface{} "Missing team_id or invalid filter"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Security BearerAuth
// @Router /feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var filter repository.FeedbackFilter
	if value := c.Query("team_id"); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team_id"})
			return
		}
		filter.TeamID = &id
	}
	if value := c.Query("match_id"); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match_id"})
			return
		}
		filter.MatchID = &id
	}
	if value := c.Query("recipient_id"); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipient_id"})
			return
		}
		filter.RecipientID = &id
	}
	if value := c.Query("author_id"); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author_id"})
			return
		}
		filter.AuthorID = &id
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	feedback, err := h.feedbackService.List(actorID, filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// GetFeedback handles GET /feedback/:id
// @Summary Get feedback by ID
// @Description Get a feedback note by its UUID; team members only
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID (UUID)"
// @Success 200 {object} service.FeedbackResponse "Successfully retrieved feedback"
// @Failure 400 {object} map[string]interface{} "Invalid feedback ID"
// @Failure 403 {object} map[string]interface{} "Not a team member"
// @Failure 404 {object} map[string]interface{} "Feedback not found"
// @Security BearerAuth
// @Router /feedback/{id} [get]
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback ID"})
		return
	}

	feedback, err := h.feedbackService.GetByID(actorID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// UpdateFeedback handles PUT /feedback/:id
// @Summary Update feedback
// @Description Update a feedback note; author only
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID (UUID)"
// @Param feedback body service.UpdateFeedbackRequest true "Feedback fields to update"
// @Success 200 {object} service.FeedbackResponse "Successfully updated feedback"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not the author"
// @Failure 404 {object} map[string]interface{} "Feedback not found"
// @Security BearerAuth
// @Router /feedback/{id} [put]
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback ID"})
		return
	}

	var req service.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	feedback, err := h.feedbackService.Update(actorID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// DeleteFeedback handles DELETE /feedback/:id
// @Summary Delete feedback
// @Description Delete a feedback note; author, owner or coach only
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID (UUID)"
// @Success 204 "Successfully deleted feedback"
// @Failure 400 {object} map[string]interface{} "Invalid feedback ID"
// @Failure 403 {object} map[string]interface{} "Not allowed"
// @Failure 404 {object} map[string]interface{} "Feedback not found"
// @Security BearerAuth
// @Router /feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	actorID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback ID"})
		return
	}

	if err := h.feedbackService.Delete(actorID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
