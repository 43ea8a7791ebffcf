package repository

import (
	"valo-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByInviteCode retrieves a team by its invite code
func (r *TeamRepository) GetByInviteCode(code string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "invite_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByUserID retrieves all teams a user is an active member of
func (r *TeamRepository) GetByUserID(userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ? AND team_members.is_active = ?", userID, true).
		Order("teams.name ASC").
		Find(&teams).Error
	return teams, err
}

// GetWithMembers retrieves a team with all its members and their accounts
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").Preload("Members.User").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithPlayers retrieves a team with its roster
func (r *TeamRepository) GetWithPlayers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Players").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// CheckTeamNameExists checks if a team name is taken
func (r *TeamRepository) CheckTeamNameExists(name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Team{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// GetMemberCount returns the number of active members in a team
func (r *TeamRepository) GetMemberCount(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ? AND is_active = ?", teamID, true).Count(&count).Error
	return count, err
}
