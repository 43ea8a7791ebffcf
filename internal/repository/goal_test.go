//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"valo-platform-backend/internal/database/models"
	"valo-platform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GoalRepositoryTestSuite tests the GoalRepository
type GoalRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GoalRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *GoalRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewGoalRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GoalRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GoalRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *GoalRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert an owner account and a team
func (suite *GoalRepositoryTestSuite) createTeam() *models.Team {
	owner := suite.factories.User.Create()
	userRepo := NewUserRepository(suite.baseTestSuite.DB)
	err := userRepo.Create(owner)
	suite.NoError(err)

	team := suite.factories.Team.WithOwner(owner.ID)
	teamRepo := NewTeamRepository(suite.baseTestSuite.DB)
	err = teamRepo.Create(team)
	suite.NoError(err)

	return team
}

// TestCreate tests creating a goal
func (suite *GoalRepositoryTestSuite) TestCreate() {
	team := suite.createTeam()

	goal := suite.factories.Goal.WithTeam(team.ID)

	err := suite.repo.Create(goal)

	// Assertions
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, goal.ID)
	suite.Equal(models.GoalStatusActive, goal.Status)
}

// TestGetByID tests retrieving a goal by ID
func (suite *GoalRepositoryTestSuite) TestGetByID() {
	team := suite.createTeam()

	goal := suite.factories.Goal.WithTeam(team.ID)
	err := suite.repo.Create(goal)
	suite.NoError(err)

	foundGoal, err := suite.repo.GetByID(goal.ID)

	suite.NoError(err)
	suite.Equal(goal.ID, foundGoal.ID)
	suite.Equal("Improve retake coordination", foundGoal.Title)
}

// TestGetByIDNotFound tests retrieving a non-existent goal
func (suite *GoalRepositoryTestSuite) TestGetByIDNotFound() {
	foundGoal, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Nil(foundGoal)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByTeamID tests listing a team's goals newest first
func (suite *GoalRepositoryTestSuite) TestGetByTeamID() {
	team := suite.createTeam()

	oldGoal := suite.factories.Goal.WithTeam(team.ID)
	oldGoal.Title = "Stop force-buying after pistol losses"
	oldGoal.CreatedAt = time.Now().Add(-48 * time.Hour)
	err := suite.repo.Create(oldGoal)
	suite.NoError(err)

	newGoal := suite.factories.Goal.WithTeam(team.ID)
	newGoal.Title = "Hit 70% attack round win rate on Ascent"
	newGoal.CreatedAt = time.Now().Add(-2 * time.Hour)
	err = suite.repo.Create(newGoal)
	suite.NoError(err)

	goals, total, err := suite.repo.GetByTeamID(team.ID, 10, 0)

	suite.NoError(err)
	suite.Len(goals, 2)
	suite.Equal(int64(2), total)
	suite.Equal("Hit 70% attack round win rate on Ascent", goals[0].Title)
	suite.Equal("Stop force-buying after pistol losses", goals[1].Title)
}

// TestGetByTeamIDWithPagination tests goal listing pagination
func (suite *GoalRepositoryTestSuite) TestGetByTeamIDWithPagination() {
	team := suite.createTeam()

	for i := 0; i < 5; i++ {
		goal := suite.factories.Goal.WithTeam(team.ID)
		goal.CreatedAt = time.Now().Add(-time.Duration(i+1) * time.Hour)
		err := suite.repo.Create(goal)
		suite.NoError(err)
	}

	goals, total, err := suite.repo.GetByTeamID(team.ID, 2, 0)
	suite.NoError(err)
	suite.Len(goals, 2)
	suite.Equal(int64(5), total)

	goals, total, err = suite.repo.GetByTeamID(team.ID, 2, 4)
	suite.NoError(err)
	suite.Len(goals, 1)
	suite.Equal(int64(5), total)
}

// TestGetByPlayerID tests listing the goals assigned to one player
func (suite *GoalRepositoryTestSuite) TestGetByPlayerID() {
	team := suite.createTeam()

	player := suite.factories.Player.WithTeam(team.ID)
	playerRepo := NewPlayerRepository(suite.baseTestSuite.DB)
	err := playerRepo.Create(player)
	suite.NoError(err)

	personalGoal := suite.factories.Goal.WithTeam(team.ID)
	personalGoal.PlayerID = &player.ID
	personalGoal.Title = "Average 0.8 first kills per map"
	err = suite.repo.Create(personalGoal)
	suite.NoError(err)

	// Team-wide goal, no player assigned
	teamGoal := suite.factories.Goal.WithTeam(team.ID)
	err = suite.repo.Create(teamGoal)
	suite.NoError(err)

	goals, err := suite.repo.GetByPlayerID(player.ID)

	suite.NoError(err)
	suite.Len(goals, 1)
	suite.Equal("Average 0.8 first kills per map", goals[0].Title)
}

// TestGetActiveByTeamID tests that only active goals come back, nearest deadline first
func (suite *GoalRepositoryTestSuite) TestGetActiveByTeamID() {
	team := suite.createTeam()

	deadline := time.Now().Add(7 * 24 * time.Hour)
	datedGoal := suite.factories.Goal.WithTeam(team.ID)
	datedGoal.Title = "Qualify for the weekend open"
	datedGoal.TargetDate = &deadline
	err := suite.repo.Create(datedGoal)
	suite.NoError(err)

	openEndedGoal := suite.factories.Goal.WithTeam(team.ID)
	openEndedGoal.Title = "Keep comms clean after lost rounds"
	err = suite.repo.Create(openEndedGoal)
	suite.NoError(err)

	doneGoal := suite.factories.Goal.WithTeam(team.ID)
	doneGoal.Status = models.GoalStatusCompleted
	doneGoal.Progress = 100
	err = suite.repo.Create(doneGoal)
	suite.NoError(err)

	goals, err := suite.repo.GetActiveByTeamID(team.ID)

	suite.NoError(err)
	suite.Len(goals, 2)
	// Goals without a target date sort last
	suite.Equal("Qualify for the weekend open", goals[0].Title)
	suite.Equal("Keep comms clean after lost rounds", goals[1].Title)
}

// TestUpdate tests updating a goal's progress and status
func (suite *GoalRepositoryTestSuite) TestUpdate() {
	team := suite.createTeam()

	goal := suite.factories.Goal.WithTeam(team.ID)
	err := suite.repo.Create(goal)
	suite.NoError(err)

	goal.Progress = 100
	goal.Status = models.GoalStatusCompleted

	err = suite.repo.Update(goal)

	// Assertions
	suite.NoError(err)

	updatedGoal, err := suite.repo.GetByID(goal.ID)
	suite.NoError(err)
	suite.Equal(100, updatedGoal.Progress)
	suite.Equal(models.GoalStatusCompleted, updatedGoal.Status)
}

// TestDelete tests deleting a goal
func (suite *GoalRepositoryTestSuite) TestDelete() {
	team := suite.createTeam()

	goal := suite.factories.Goal.WithTeam(team.ID)
	err := suite.repo.Create(goal)
	suite.NoError(err)

	err = suite.repo.Delete(goal.ID)
	suite.NoError(err)

	foundGoal, err := suite.repo.GetByID(goal.ID)
	suite.Error(err)
	suite.Nil(foundGoal)
}

// Run the test suite
func TestGoalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GoalRepositoryTestSuite))
}
