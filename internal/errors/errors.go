package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ExternalServiceError represents a failure in an outbound integration
// (vision API, object storage, Discord webhook)
type ExternalServiceError struct {
	Service string
	Message string
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

// Is enables errors.Is() comparison for ExternalServiceError
func (e *ExternalServiceError) Is(target error) bool {
	t, ok := target.(*ExternalServiceError)
	if !ok {
		return false
	}
	return e.Service == t.Service
}

// Entity Not Found Errors
var (
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrTeamNotFound           = &NotFoundError{Entity: "team"}
	ErrTeamMemberNotFound     = &NotFoundError{Entity: "team member"}
	ErrPlayerNotFound         = &NotFoundError{Entity: "player"}
	ErrMatchNotFound          = &NotFoundError{Entity: "match"}
	ErrMatchPlayerNotFound    = &NotFoundError{Entity: "match player"}
	ErrGoalNotFound           = &NotFoundError{Entity: "goal"}
	ErrScheduleNotFound       = &NotFoundError{Entity: "schedule"}
	ErrAttendanceNotFound     = &NotFoundError{Entity: "attendance"}
	ErrFeedbackNotFound       = &NotFoundError{Entity: "feedback"}
	ErrConditionNotFound      = &NotFoundError{Entity: "condition"}
	ErrNotificationNotFound   = &NotFoundError{Entity: "notification"}
	ErrScrimObjectiveNotFound = &NotFoundError{Entity: "scrim objective"}
)

// Already Exists Errors
var (
	ErrTeamExists        = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrTeamMemberExists  = &AlreadyExistsError{Entity: "team member", Context: "in this team"}
	ErrPlayerExists      = &AlreadyExistsError{Entity: "player", Context: "with this PUUID"}
	ErrMatchExists       = &AlreadyExistsError{Entity: "match", Context: "with this match reference"}
	ErrMatchPlayerExists = &AlreadyExistsError{Entity: "match player", Context: "for this match and PUUID"}
	ErrConditionExists   = &AlreadyExistsError{Entity: "condition", Context: "for this day"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrTargetDateInPast        = errors.New("target date is in the past")
	ErrScheduleConflict        = errors.New("schedule conflict detected")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidInviteCode       = errors.New("invalid invite code")
	ErrNotTeamMember           = errors.New("user is not a member of this team")
	ErrOwnerCannotLeave        = errors.New("team owner cannot be removed from the team")
	ErrMatchHasNoPlayers       = errors.New("match has no player rows")
	ErrEmptyScoreboard         = errors.New("scoreboard contains no rows")
	ErrRosterNotInMatch        = errors.New("no roster player found in the match data")
)

// Authentication Errors
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")

	ErrUserIDNotFound    = &AuthenticationError{Message: "user id not found in context"}
	ErrNotTeamManager    = &AuthorizationError{Message: "user is not an owner or coach of this team"}
	ErrNotificationOwner = &AuthorizationError{Message: "notification belongs to another user"}
)

// External Service Errors
var (
	ErrVisionUnavailable   = &ExternalServiceError{Service: "vision", Message: "scoreboard recognition request failed"}
	ErrVisionParseFailed   = &ExternalServiceError{Service: "vision", Message: "scoreboard response could not be parsed"}
	ErrStorageUnavailable  = &ExternalServiceError{Service: "storage", Message: "object storage request failed"}
	ErrWebhookDeliveryFail = &ExternalServiceError{Service: "discord", Message: "webhook delivery failed"}
)

// Configuration Errors
var (
	ErrVisionConfigMissing  = &ConfigurationError{Message: "vision configuration missing: VISION_API_URL or VISION_API_KEY"}
	ErrStorageConfigMissing = &ConfigurationError{Message: "storage configuration missing: STORAGE_ENDPOINT, STORAGE_ACCESS_KEY or STORAGE_SECRET_KEY"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// IsExternalService checks if an error is an ExternalServiceError
func IsExternalService(err error) bool {
	var svcErr *ExternalServiceError
	return errors.Is(err, &ExternalServiceError{}) || errors.As(err, &svcErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewExternalServiceError creates a new ExternalServiceError
func NewExternalServiceError(service, message string) error {
	return &ExternalServiceError{Service: service, Message: message}
}
