package service

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"
	"valo-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams and memberships
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	dispatcher NotificationDispatcher
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, userRepo repository.UserRepositoryInterface, dispatcher NotificationDispatcher, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
		validator:  validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=40"`
	Tag         string `json:"tag" validate:"max=10"`
	Region      string `json:"region" validate:"max=20"`
	Description string `json:"description" validate:"max=200"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url,max=200"`
	WebhookURL  string `json:"webhook_url" validate:"omitempty,url,max=255"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=40"`
	Tag         *string `json:"tag,omitempty" validate:"omitempty,max=10"`
	Region      *string `json:"region,omitempty" validate:"omitempty,max=20"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url,max=200"`
	WebhookURL  *string `json:"webhook_url,omitempty" validate:"omitempty,url,max=255"`
}

// JoinTeamRequest represents the request to join a team by invite code
type JoinTeamRequest struct {
	InviteCode string `json:"invite_code" validate:"required,min=4,max=20"`
}

// AddMemberRequest represents the request to add a user to a team
type AddMemberRequest struct {
	UserID uuid.UUID             `json:"user_id" validate:"required"`
	Role   models.TeamMemberRole `json:"role" validate:"required"`
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role     models.TeamMemberRole `json:"role" validate:"required"`
	IsActive *bool                 `json:"is_active,omitempty"`
}

// AddLinkRequest represents a request to add a link to a team
type AddLinkRequest struct {
	URL   string `json:"url" validate:"required,url"`
	Title string `json:"title" validate:"required,min=1"`
}

// UpdateLinksRequest represents a request to replace all links for a team
type UpdateLinksRequest struct {
	Links []AddLinkRequest `json:"links"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Tag         string            `json:"tag,omitempty"`
	Region      string            `json:"region,omitempty"`
	Description string            `json:"description,omitempty"`
	LogoURL     string            `json:"logo_url,omitempty"`
	OwnerID     uuid.UUID         `json:"owner_id"`
	InviteCode  string            `json:"invite_code,omitempty"`
	WebhookURL  string            `json:"webhook_url,omitempty"`
	Links       []models.TeamLink `json:"links"`
	MemberCount int64             `json:"member_count"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// TeamMemberResponse represents one membership with the account attached
type TeamMemberResponse struct {
	ID          uuid.UUID             `json:"id"`
	TeamID      uuid.UUID             `json:"team_id"`
	UserID      uuid.UUID             `json:"user_id"`
	Username    string                `json:"username"`
	DisplayName string                `json:"display_name,omitempty"`
	AvatarURL   string                `json:"avatar_url,omitempty"`
	Role        models.TeamMemberRole `json:"role"`
	JoinedAt    string                `json:"joined_at"`
	IsActive    bool                  `json:"is_active"`
}

// Create creates a team and makes the caller its owner
func (s *TeamService) Create(actorID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.repo.CheckTeamNameExists(req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		Name:        req.Name,
		Tag:         req.Tag,
		Region:      req.Region,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		OwnerID:     actorID,
		InviteCode:  generateInviteCode(),
		WebhookURL:  req.WebhookURL,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	owner := &models.TeamMember{
		TeamID:   team.ID,
		UserID:   actorID,
		Role:     models.TeamMemberRoleOwner,
		JoinedAt: time.Now(),
		IsActive: true,
	}
	if err := s.memberRepo.Create(owner); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}

	return s.toResponse(team, 1), nil
}

// GetByID retrieves a team; the caller must be a member
func (s *TeamService) GetByID(actorID, teamID uuid.UUID) (*TeamResponse, error) {
	if _, err := requireMember(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	count, err := s.repo.GetMemberCount(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return s.toResponse(team, count), nil
}

// GetMine retrieves the teams the caller belongs to
func (s *TeamService) GetMine(actorID uuid.UUID) ([]TeamResponse, error) {
	teams, err := s.repo.GetByUserID(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		count, err := s.repo.GetMemberCount(team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count members: %w", err)
		}
		responses[i] = *s.toResponse(&team, count)
	}
	return responses, nil
}

// Update updates a team; the caller must be an owner or coach
func (s *TeamService) Update(actorID, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := requireManager(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil && *req.Name != team.Name {
		exists, err := s.repo.CheckTeamNameExists(*req.Name, &team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check team name: %w", err)
		}
		if exists {
			return nil, apperrors.ErrTeamExists
		}
		team.Name = *req.Name
	}
	if req.Tag != nil {
		team.Tag = *req.Tag
	}
	if req.Region != nil {
		team.Region = *req.Region
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.LogoURL != nil {
		team.LogoURL = *req.LogoURL
	}
	if req.WebhookURL != nil {
		team.WebhookURL = *req.WebhookURL
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	count, err := s.repo.GetMemberCount(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return s.toResponse(team, count), nil
}

// Delete deletes a team; only the owner may do this
func (s *TeamService) Delete(actorID, teamID uuid.UUID) error {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if team.OwnerID != actorID {
		return apperrors.ErrNotTeamManager
	}

	if err := s.repo.Delete(teamID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

// RotateInviteCode replaces the team's invite code; owner or coach only
func (s *TeamService) RotateInviteCode(actorID, teamID uuid.UUID) (*TeamResponse, error) {
	if _, err := requireManager(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	team.InviteCode = generateInviteCode()
	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to rotate invite code: %w", err)
	}

	count, err := s.repo.GetMemberCount(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return s.toResponse(team, count), nil
}

// Join adds the caller to the team behind an invite code
func (s *TeamService) Join(actorID uuid.UUID, req *JoinTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByInviteCode(req.InviteCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to look up invite code: %w", err)
	}

	exists, err := s.memberRepo.CheckMembershipExists(team.ID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamMemberExists
	}

	member := &models.TeamMember{
		TeamID:   team.ID,
		UserID:   actorID,
		Role:     models.TeamMemberRolePlayer,
		JoinedAt: time.Now(),
		IsActive: true,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	if s.dispatcher != nil {
		user, err := s.userRepo.GetByID(actorID)
		username := "a new member"
		if err == nil {
			username = user.Username
		}
		s.dispatcher.Dispatch(&team.ID, nil, models.NotificationTypeMemberJoined,
			fmt.Sprintf("%s joined %s", username, team.Name), "", nil)
	}

	count, err := s.repo.GetMemberCount(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return s.toResponse(team, count), nil
}

// GetMembers lists a team's memberships; the caller must be a member
func (s *TeamService) GetMembers(actorID, teamID uuid.UUID) ([]TeamMemberResponse, error) {
	if _, err := requireMember(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i, member := range members {
		responses[i] = *toMemberResponse(&member)
	}
	return responses, nil
}

// AddMember adds an existing user to the team; owner or coach only
func (s *TeamService) AddMember(actorID, teamID uuid.UUID, req *AddMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, errors.New("invalid member role")
	}

	if _, err := requireManager(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	exists, err := s.memberRepo.CheckMembershipExists(teamID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamMemberExists
	}

	member := &models.TeamMember{
		TeamID:   teamID,
		UserID:   req.UserID,
		Role:     req.Role,
		JoinedAt: time.Now(),
		IsActive: true,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return toMemberResponse(member), nil
}

// UpdateMemberRole changes a membership's role or active flag; owner or coach only
func (s *TeamService) UpdateMemberRole(actorID, teamID, memberID uuid.UUID, req *UpdateMemberRoleRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, errors.New("invalid member role")
	}

	if _, err := requireManager(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if member.TeamID != teamID {
		return nil, apperrors.ErrTeamMemberNotFound
	}
	if member.Role == models.TeamMemberRoleOwner && req.Role != models.TeamMemberRoleOwner {
		return nil, errors.New("owner role cannot be changed")
	}

	member.Role = req.Role
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	return toMemberResponse(member), nil
}

// RemoveMember removes a membership. Owners and coaches may remove anyone but
// the owner; everyone may remove themselves.
func (s *TeamService) RemoveMember(actorID, teamID, memberID uuid.UUID) error {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}
	if member.TeamID != teamID {
		return apperrors.ErrTeamMemberNotFound
	}
	if member.Role == models.TeamMemberRoleOwner {
		return apperrors.ErrOwnerCannotLeave
	}

	if member.UserID != actorID {
		if _, err := requireManager(s.memberRepo, teamID, actorID); err != nil {
			return err
		}
	}

	if err := s.memberRepo.Delete(memberID); err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	return nil
}

// AddLink appends a link to the team's pinned links; owner or coach only
func (s *TeamService) AddLink(actorID, teamID uuid.UUID, req *AddLinkRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := requireManager(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	links := decodeLinks(team.Links)
	for _, link := range links {
		if link.URL == req.URL {
			return nil, apperrors.NewAlreadyExistsError("link", "with this URL")
		}
	}
	links = append(links, models.TeamLink{URL: req.URL, Title: req.Title})

	if err := s.saveLinks(team, links); err != nil {
		return nil, err
	}

	count, err := s.repo.GetMemberCount(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return s.toResponse(team, count), nil
}

// RemoveLink deletes a link by URL; owner or coach only
func (s *TeamService) RemoveLink(actorID, teamID uuid.UUID, url string) (*TeamResponse, error) {
	if _, err := requireManager(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	links := decodeLinks(team.Links)
	kept := links[:0]
	found := false
	for _, link := range links {
		if link.URL == url {
			found = true
			continue
		}
		kept = append(kept, link)
	}
	if !found {
		return nil, apperrors.NewNotFoundError("link")
	}

	if err := s.saveLinks(team, kept); err != nil {
		return nil, err
	}

	count, err := s.repo.GetMemberCount(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return s.toResponse(team, count), nil
}

// UpdateLinks replaces the team's pinned links; owner or coach only
func (s *TeamService) UpdateLinks(actorID, teamID uuid.UUID, req *UpdateLinksRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := requireManager(s.memberRepo, teamID, actorID); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	links := make([]models.TeamLink, len(req.Links))
	for i, link := range req.Links {
		links[i] = models.TeamLink{URL: link.URL, Title: link.Title}
	}

	if err := s.saveLinks(team, links); err != nil {
		return nil, err
	}

	count, err := s.repo.GetMemberCount(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	return s.toResponse(team, count), nil
}

func (s *TeamService) saveLinks(team *models.Team, links []models.TeamLink) error {
	raw, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("failed to encode links: %w", err)
	}
	team.Links = raw
	if err := s.repo.Update(team); err != nil {
		return fmt.Errorf("failed to update team links: %w", err)
	}
	return nil
}

// toResponse converts a team model to response
func (s *TeamService) toResponse(team *models.Team, memberCount int64) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Tag:         team.Tag,
		Region:      team.Region,
		Description: team.Description,
		LogoURL:     team.LogoURL,
		OwnerID:     team.OwnerID,
		InviteCode:  team.InviteCode,
		WebhookURL:  team.WebhookURL,
		Links:       decodeLinks(team.Links),
		MemberCount: memberCount,
		CreatedAt:   team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toMemberResponse(member *models.TeamMember) *TeamMemberResponse {
	response := &TeamMemberResponse{
		ID:       member.ID,
		TeamID:   member.TeamID,
		UserID:   member.UserID,
		Role:     member.Role,
		JoinedAt: member.JoinedAt.Format("2006-01-02T15:04:05Z07:00"),
		IsActive: member.IsActive,
	}
	if member.User.ID != uuid.Nil {
		response.Username = member.User.Username
		response.DisplayName = member.User.DisplayName
		response.AvatarURL = member.User.AvatarURL
	}
	return response
}

func decodeLinks(raw json.RawMessage) []models.TeamLink {
	links := []models.TeamLink{}
	if len(raw) == 0 {
		return links
	}
	_ = json.Unmarshal(raw, &links)
	return links
}

// requireMember loads the caller's active membership or fails with a
// permission error.
func requireMember(repo repository.TeamMemberRepositoryInterface, teamID, userID uuid.UUID) (*models.TeamMember, error) {
	member, err := repo.GetByTeamAndUser(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotTeamMember
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !member.IsActive {
		return nil, apperrors.ErrNotTeamMember
	}
	return member, nil
}

// requireManager loads the caller's membership and requires an owner or coach role.
func requireManager(repo repository.TeamMemberRepositoryInterface, teamID, userID uuid.UUID) (*models.TeamMember, error) {
	member, err := requireMember(repo, teamID, userID)
	if err != nil {
		return nil, err
	}
	if !member.Role.CanManageTeam() {
		return nil, apperrors.ErrNotTeamManager
	}
	return member, nil
}

// generateInviteCode returns a short random, URL safe code.
func generateInviteCode() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()[:8]
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
