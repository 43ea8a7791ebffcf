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

// UserService handles business logic for platform accounts
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// UpdateUserRequest represents the request to update the caller's profile
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	RiotID      *string `json:"riot_id,omitempty" validate:"omitempty,max=50"`
	Timezone    *string `json:"timezone,omitempty" validate:"omitempty,max=50"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID          uuid.UUID           `json:"id"`
	DiscordID   string              `json:"discord_id,omitempty"`
	Username    string              `json:"username"`
	DisplayName string              `json:"display_name,omitempty"`
	Email       string              `json:"email,omitempty"`
	AvatarURL   string              `json:"avatar_url,omitempty"`
	RiotID      string              `json:"riot_id,omitempty"`
	Timezone    string              `json:"timezone,omitempty"`
	Provider    models.AuthProvider `json:"provider"`
	IsActive    bool                `json:"is_active"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.toResponse(user), nil
}

// UpdateProfile updates the caller's own profile fields
func (s *UserService) UpdateProfile(userID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.RiotID != nil {
		user.RiotID = *req.RiotID
	}
	if req.Timezone != nil {
		user.Timezone = *req.Timezone
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.toResponse(user), nil
}

// ProvisionOAuthUser finds or creates the account behind an OAuth login and
// refreshes the profile fields the provider reported.
func (s *UserService) ProvisionOAuthUser(provider models.AuthProvider, providerID, username, displayName, email, avatarURL string) (*models.User, error) {
	if !provider.IsValid() {
		return nil, fmt.Errorf("unsupported auth provider: %s", provider)
	}
	if username == "" {
		return nil, apperrors.NewValidationError("username", "provider returned no username")
	}

	user, err := s.lookupByProviderIdentity(provider, providerID, email, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		user = &models.User{
			Username:    username,
			DisplayName: displayName,
			Email:       email,
			AvatarURL:   avatarURL,
			Provider:    provider,
			IsActive:    true,
		}
		if provider == models.AuthProviderDiscord {
			user.DiscordID = providerID
		}
		if err := s.repo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return user, nil
	}

	// Keep the mirrored provider fields fresh
	user.Username = username
	if displayName != "" {
		user.DisplayName = displayName
	}
	if email != "" {
		user.Email = email
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}
	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *UserService) lookupByProviderIdentity(provider models.AuthProvider, providerID, email, username string) (*models.User, error) {
	if provider == models.AuthProviderDiscord && providerID != "" {
		return s.repo.GetByDiscordID(providerID)
	}
	if email != "" {
		return s.repo.GetByEmail(email)
	}
	return s.repo.GetByUsername(username)
}

// toResponse converts a user model to response
func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		DiscordID:   user.DiscordID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		AvatarURL:   user.AvatarURL,
		RiotID:      user.RiotID,
		Timezone:    user.Timezone,
		Provider:    user.Provider,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
