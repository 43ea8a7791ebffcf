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

// ConditionRepositoryTestSuite tests the ConditionRepository
type ConditionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ConditionRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ConditionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewConditionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ConditionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ConditionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ConditionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a user account
func (suite *ConditionRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	userRepo := NewUserRepository(suite.baseTestSuite.DB)
	err := userRepo.Create(user)
	suite.NoError(err)
	return user
}

// helper to insert an owner account and a team
func (suite *ConditionRepositoryTestSuite) createTeam() *models.Team {
	owner := suite.createUser()

	team := suite.factories.Team.WithOwner(owner.ID)
	teamRepo := NewTeamRepository(suite.baseTestSuite.DB)
	err := teamRepo.Create(team)
	suite.NoError(err)

	return team
}

// helper to insert a check-in for a user on a specific day
func (suite *ConditionRepositoryTestSuite) createCheckIn(userID uuid.UUID, day time.Time) *models.Condition {
	condition := suite.factories.Condition.WithUser(userID)
	condition.RecordedOn = day
	err := suite.repo.Create(condition)
	suite.NoError(err)
	return condition
}

// TestCreate tests creating a check-in
func (suite *ConditionRepositoryTestSuite) TestCreate() {
	user := suite.createUser()

	condition := suite.factories.Condition.WithUser(user.ID)

	err := suite.repo.Create(condition)

	// Assertions
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, condition.ID)
	suite.Equal(4, condition.PhysicalScore)
	suite.Equal(7.5, condition.SleepHours)
}

// TestCreateDuplicateDay tests that a user checks in once per day
func (suite *ConditionRepositoryTestSuite) TestCreateDuplicateDay() {
	user := suite.createUser()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	suite.createCheckIn(user.ID, day)

	duplicate := suite.factories.Condition.WithUser(user.ID)
	duplicate.RecordedOn = day

	err := suite.repo.Create(duplicate)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a check-in by ID
func (suite *ConditionRepositoryTestSuite) TestGetByID() {
	user := suite.createUser()

	condition := suite.createCheckIn(user.ID, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))

	foundCondition, err := suite.repo.GetByID(condition.ID)

	suite.NoError(err)
	suite.Equal(condition.ID, foundCondition.ID)
	suite.Equal(user.ID, foundCondition.UserID)
}

// TestGetByUserAndDate tests fetching the check-in of one day
func (suite *ConditionRepositoryTestSuite) TestGetByUserAndDate() {
	user := suite.createUser()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	condition := suite.createCheckIn(user.ID, day)

	foundCondition, err := suite.repo.GetByUserAndDate(user.ID, day)

	suite.NoError(err)
	suite.Equal(condition.ID, foundCondition.ID)
}

// TestGetByUserAndDateNotFound tests fetching a day without a check-in
func (suite *ConditionRepositoryTestSuite) TestGetByUserAndDateNotFound() {
	user := suite.createUser()

	suite.createCheckIn(user.ID, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))

	foundCondition, err := suite.repo.GetByUserAndDate(user.ID, time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC))

	suite.Error(err)
	suite.Nil(foundCondition)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByUserRange tests fetching a span of days oldest first
func (suite *ConditionRepositoryTestSuite) TestGetByUserRange() {
	user := suite.createUser()

	first := suite.factories.Condition.WithUser(user.ID)
	first.RecordedOn = time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)
	first.SleepHours = 6
	err := suite.repo.Create(first)
	suite.NoError(err)

	second := suite.factories.Condition.WithUser(user.ID)
	second.RecordedOn = time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC)
	second.SleepHours = 8
	err = suite.repo.Create(second)
	suite.NoError(err)

	// Outside the queried range
	suite.createCheckIn(user.ID, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))

	conditions, err := suite.repo.GetByUserRange(
		user.ID,
		time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC),
	)

	suite.NoError(err)
	suite.Len(conditions, 2)
	suite.Equal(float64(6), conditions[0].SleepHours)
	suite.Equal(float64(8), conditions[1].SleepHours)
}

// TestGetByTeamAndDate tests the team-wide view of one day
func (suite *ConditionRepositoryTestSuite) TestGetByTeamAndDate() {
	team := suite.createTeam()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	teamUser := suite.createUser()
	teamCheckIn := suite.factories.Condition.WithUser(teamUser.ID)
	teamCheckIn.TeamID = &team.ID
	teamCheckIn.RecordedOn = day
	err := suite.repo.Create(teamCheckIn)
	suite.NoError(err)

	// Check-in of a user outside the team
	soloUser := suite.createUser()
	suite.createCheckIn(soloUser.ID, day)

	conditions, err := suite.repo.GetByTeamAndDate(team.ID, day)

	suite.NoError(err)
	suite.Len(conditions, 1)
	suite.Equal(teamUser.ID, conditions[0].UserID)
	suite.Equal(teamUser.Username, conditions[0].User.Username)
}

// TestUpdate tests updating a check-in
func (suite *ConditionRepositoryTestSuite) TestUpdate() {
	user := suite.createUser()

	condition := suite.createCheckIn(user.ID, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))

	condition.PhysicalScore = 2
	condition.MentalScore = 3
	condition.Note = "Wrist soreness after the long block, cutting DM today"

	err := suite.repo.Update(condition)

	// Assertions
	suite.NoError(err)

	updatedCondition, err := suite.repo.GetByID(condition.ID)
	suite.NoError(err)
	suite.Equal(2, updatedCondition.PhysicalScore)
	suite.Equal(3, updatedCondition.MentalScore)
	suite.Equal("Wrist soreness after the long block, cutting DM today", updatedCondition.Note)
}

// TestDelete tests deleting a check-in
func (suite *ConditionRepositoryTestSuite) TestDelete() {
	user := suite.createUser()

	condition := suite.createCheckIn(user.ID, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))

	err := suite.repo.Delete(condition.ID)
	suite.NoError(err)

	foundCondition, err := suite.repo.GetByID(condition.ID)
	suite.Error(err)
	suite.Nil(foundCondition)
}

// Run the test suite
func TestConditionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ConditionRepositoryTestSuite))
}
