package repository

import (
	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team memberships
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team membership
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a membership by ID
func (r *TeamMemberRepository) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByTeamID retrieves all memberships of a team with the linked accounts
func (r *TeamMemberRepository) GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("User").Where("team_id = ?", teamID).Order("joined_at ASC").Find(&members).Error
	return members, err
}

// GetByUserID retrieves all memberships of a user
func (r *TeamMemberRepository) GetByUserID(userID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("Team").Where("user_id = ?", userID).Find(&members).Error
	return members, err
}

// GetByTeamAndUser retrieves the membership of a user in a team
func (r *TeamMemberRepository) GetByTeamAndUser(teamID, userID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Update updates a membership
func (r *TeamMemberRepository) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a membership
func (r *TeamMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "id = ?", id).Error
}

// CheckMembershipExists checks whether a user already belongs to a team
func (r *TeamMemberRepository) CheckMembershipExists(teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ? AND user_id = ?", teamID, userID).Count(&count).Error
	return count > 0, err
}
