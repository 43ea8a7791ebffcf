package service

import (
	"errors"
	"fmt"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"
	"valo-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackService handles business logic for coach and peer feedback notes
type FeedbackService struct {
	repo       repository.FeedbackRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	matchRepo  repository.MatchRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	dispatcher NotificationDispatcher
	validator  *validator.Validate
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo repository.FeedbackRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, matchRepo repository.MatchRepositoryInterface, userRepo repository.UserRepositoryInterface, dispatcher NotificationDispatcher, validator *validator.Validate) *FeedbackService {
	return &FeedbackService{
		repo:       repo,
		memberRepo: memberRepo,
		matchRepo:  matchRepo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
		validator:  validator,
	}
}

// CreateFeedbackRequest represents the request to leave a feedback note
type CreateFeedbackRequest struct {
	TeamID      uuid.UUID               `json:"team_id" validate:"required"`
	MatchID     *uuid.UUID              `json:"match_id,omitempty"`
	RecipientID *uuid.UUID              `json:"recipient_id,omitempty"`
	Category    models.FeedbackCategory `json:"category,omitempty"`
	Content     string                  `json:"content" validate:"required,min=1"`
	Rating      *int                    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// UpdateFeedbackRequest represents the request to update a feedback note
type UpdateFeedbackRequest struct {
	Category *models.FeedbackCategory `json:"category,omitempty"`
	Content  *string                  `json:"content,omitempty" validate:"omitempty,min=1"`
	Rating   *int                     `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// FeedbackResponse represents the response for feedback operations
type FeedbackResponse struct {
	ID          uuid.UUID               `json:"id"`
	TeamID      uuid.UUID               `json:"team_id"`
	MatchID     *uuid.UUID              `json:"match_id,omitempty"`
	AuthorID    uuid.UUID               `json:"author_id"`
	RecipientID *uuid.UUID              `json:"recipient_id,omitempty"`
	Category    models.FeedbackCategory `json:"category"`
	Content     string                  `json:"content"`
	Rating      *int                    `json:"rating,omitempty"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

// FeedbackListResponse represents a paginated list of feedback notes
type FeedbackListResponse struct {
	Items    []FeedbackResponse `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Create leaves a feedback note for the team or for a single member
func (s *FeedbackService) Create(actorID uuid.UUID, req *CreateFeedbackRequest) (*FeedbackResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Category == "" {
		req.Category = models.FeedbackCategoryGeneral
	}
	if !req.Category.IsValid() {
		return nil, errors.New("invalid feedback category")
	}

	if _, err := requireMember(s.memberRepo, req.TeamID, actorID); err != nil {
		return nil, err
	}

	if req.MatchID != nil {
		match, err := s.matchRepo.GetByID(*req.MatchID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrMatchNotFound
			}
			return nil, fmt.Errorf("failed to get match: %w", err)
		}
		if match.TeamID != req.TeamID {
			return nil, apperrors.ErrMatchNotFound
		}
	}

	if req.RecipientID != nil {
		isMember, err := s.memberRepo.CheckMembershipExists(req.TeamID, *req.RecipientID)
		if err != nil {
			return nil, fmt.Errorf("failed to check recipient membership: %w", err)
		}
		if !isMember {
			return nil, apperrors.ErrTeamMemberNotFound
		}
	}

	feedback := &models.Feedback{
		TeamID:      req.TeamID,
		MatchID:     req.MatchID,
		AuthorID:    actorID,
		RecipientID: req.RecipientID,
		Category:    req.Category,
		Content:     req.Content,
		Rating:      req.Rating,
	}

	if err := s.repo.Create(feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	if s.dispatcher != nil {
		authorName := "A teammate"
		if user, err := s.userRepo.GetByID(actorID); err == nil {
			authorName = user.Username
		}
		title := fmt.Sprintf("New %s feedback", feedback.Category)
		body := fmt.Sprintf("%s left a note for the team", authorName)
		payload := map[string]interface{}{"feedback_id": feedback.ID, "team_id": feedback.TeamID}
		if feedback.RecipientID != nil {
			// Personal notes go to the recipient's inbox only, never the team webhook.
			body = fmt.Sprintf("%s left you a note", authorName)
			s.dispatcher.Dispatch(nil, feedback.RecipientID, models.NotificationTypeFeedbackReceived, title, body, payload)
		} else {
			s.dispatcher.Dispatch(&feedback.TeamID, nil, models.NotificationTypeFeedbackReceived, title, body, payload)
		}
	}

	return s.toResponse(feedback), nil
}

// GetByID retrieves a feedback note by ID
func (s *FeedbackService) GetByID(actorID, feedbackID uuid.UUID) (*FeedbackResponse, error) {
	feedback, err := s.getVisible(actorID, feedbackID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(feedback), nil
}

// List retrieves feedback notes matching the filter. The team filter is
// mandatory, the rest narrow the listing further.
func (s *FeedbackService) List(actorID uuid.UUID, filter repository.FeedbackFilter, page, pageSize int) (*FeedbackListResponse, error) {
	if filter.TeamID == nil {
		return nil, &apperrors.ValidationError{Field: "team_id", Message: "team_id is required"}
	}
	if _, err := requireMember(s.memberRepo, *filter.TeamID, actorID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	feedback, total, err := s.repo.List(filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	items := make([]FeedbackResponse, len(feedback))
	for i := range feedback {
		items[i] = *s.toResponse(&feedback[i])
	}

	return &FeedbackListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a feedback note. Only the author can edit a note.
func (s *FeedbackService) Update(actorID, feedbackID uuid.UUID, req *UpdateFeedbackRequest) (*FeedbackResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	feedback, err := s.getVisible(actorID, feedbackID)
	if err != nil {
		return nil, err
	}
	if feedback.AuthorID != actorID {
		return nil, &apperrors.AuthorizationError{Message: "only the author can edit feedback"}
	}

	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, errors.New("invalid feedback category")
		}
		feedback.Category = *req.Category
	}
	if req.Content != nil {
		feedback.Content = *req.Content
	}
	if req.Rating != nil {
		feedback.Rating = req.Rating
	}

	if err := s.repo.Update(feedback); err != nil {
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}

	return s.toResponse(feedback), nil
}

// Delete deletes a feedback note. The author can always delete their own
// notes, managers can delete any note on the team.
func (s *FeedbackService) Delete(actorID, feedbackID uuid.UUID) error {
	feedback, err := s.getVisible(actorID, feedbackID)
	if err != nil {
		return err
	}

	if feedback.AuthorID != actorID {
		if _, err := requireManager(s.memberRepo, feedback.TeamID, actorID); err != nil {
			return err
		}
	}

	if err := s.repo.Delete(feedbackID); err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	return nil
}

func (s *FeedbackService) getVisible(actorID, feedbackID uuid.UUID) (*models.Feedback, error) {
	feedback, err := s.repo.GetByID(feedbackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	if _, err := requireMember(s.memberRepo, feedback.TeamID, actorID); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *FeedbackService) toResponse(feedback *models.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:          feedback.ID,
		TeamID:      feedback.TeamID,
		MatchID:     feedback.MatchID,
		AuthorID:    feedback.AuthorID,
		RecipientID: feedback.RecipientID,
		Category:    feedback.Category,
		Content:     feedback.Content,
		Rating:      feedback.Rating,
		CreatedAt:   feedback.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   feedback.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
