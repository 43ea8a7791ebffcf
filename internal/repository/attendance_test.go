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

// AttendanceRepositoryTestSuite tests the AttendanceRepository
type AttendanceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AttendanceRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AttendanceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAttendanceRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AttendanceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AttendanceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AttendanceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a user account
func (suite *AttendanceRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	userRepo := NewUserRepository(suite.baseTestSuite.DB)
	err := userRepo.Create(user)
	suite.NoError(err)
	return user
}

// helper to insert an owner, a team and one scheduled event
func (suite *AttendanceRepositoryTestSuite) createSchedule() *models.Schedule {
	owner := suite.createUser()

	team := suite.factories.Team.WithOwner(owner.ID)
	teamRepo := NewTeamRepository(suite.baseTestSuite.DB)
	err := teamRepo.Create(team)
	suite.NoError(err)

	schedule := suite.factories.Schedule.WithTeam(team.ID)
	scheduleRepo := NewScheduleRepository(suite.baseTestSuite.DB)
	err = scheduleRepo.Create(schedule)
	suite.NoError(err)

	return schedule
}

// TestCreate tests creating an RSVP
func (suite *AttendanceRepositoryTestSuite) TestCreate() {
	schedule := suite.createSchedule()
	user := suite.createUser()

	attendance := suite.factories.Attendance.WithScheduleAndUser(schedule.ID, user.ID)

	err := suite.repo.Create(attendance)

	// Assertions
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, attendance.ID)
	suite.Equal(models.AttendanceStatusAttending, attendance.Status)
}

// TestCreateDuplicateResponse tests that a member answers an event once
func (suite *AttendanceRepositoryTestSuite) TestCreateDuplicateResponse() {
	schedule := suite.createSchedule()
	user := suite.createUser()

	first := suite.factories.Attendance.WithScheduleAndUser(schedule.ID, user.ID)
	err := suite.repo.Create(first)
	suite.NoError(err)

	second := suite.factories.Attendance.WithScheduleAndUser(schedule.ID, user.ID)
	second.Status = models.AttendanceStatusAbsent

	err = suite.repo.Create(second)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving an RSVP by ID
func (suite *AttendanceRepositoryTestSuite) TestGetByID() {
	schedule := suite.createSchedule()
	user := suite.createUser()

	attendance := suite.factories.Attendance.WithScheduleAndUser(schedule.ID, user.ID)
	err := suite.repo.Create(attendance)
	suite.NoError(err)

	foundAttendance, err := suite.repo.GetByID(attendance.ID)

	suite.NoError(err)
	suite.Equal(attendance.ID, foundAttendance.ID)
	suite.Equal(user.ID, foundAttendance.UserID)
}

// TestGetByIDNotFound tests retrieving a non-existent RSVP
func (suite *AttendanceRepositoryTestSuite) TestGetByIDNotFound() {
	foundAttendance, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Nil(foundAttendance)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByScheduleID tests listing an event's RSVPs in response order
func (suite *AttendanceRepositoryTestSuite) TestGetByScheduleID() {
	schedule := suite.createSchedule()
	earlyUser := suite.createUser()
	lateUser := suite.createUser()

	lateResponse := suite.factories.Attendance.WithScheduleAndUser(schedule.ID, lateUser.ID)
	lateResponse.RespondedAt = time.Now().Add(-1 * time.Hour)
	err := suite.repo.Create(lateResponse)
	suite.NoError(err)

	earlyResponse := suite.factories.Attendance.WithScheduleAndUser(schedule.ID, earlyUser.ID)
	earlyResponse.RespondedAt = time.Now().Add(-3 * time.Hour)
	err = suite.repo.Create(earlyResponse)
	suite.NoError(err)

	responses, err := suite.repo.GetByScheduleID(schedule.ID)

	suite.NoError(err)
	suite.Len(responses, 2)
	// Verify ordering by responded_at and the preloaded account
	suite.Equal(earlyUser.ID, responses[0].UserID)
	suite.Equal(lateUser.ID, responses[1].UserID)
	suite.Equal(earlyUser.Username, responses[0].User.Username)
}

// TestGetByScheduleAndUser tests fetching one member's RSVP
func (suite *AttendanceRepositoryTestSuite) TestGetByScheduleAndUser() {
	schedule := suite.createSchedule()
	user := suite.createUser()

	attendance := suite.factories.Attendance.WithScheduleAndUser(schedule.ID, user.ID)
	attendance.Status = models.AttendanceStatusLate
	attendance.Note = "Stuck at work until 19:30"
	err := suite.repo.Create(attendance)
	suite.NoError(err)

	foundAttendance, err := suite.repo.GetByScheduleAndUser(schedule.ID, user.ID)

	suite.NoError(err)
	suite.Equal(models.AttendanceStatusLate, foundAttendance.Status)
	suite.Equal("Stuck at work until 19:30", foundAttendance.Note)
}

// TestGetByScheduleAndUserNotFound tests fetching an RSVP that was never given
func (suite *AttendanceRepositoryTestSuite) TestGetByScheduleAndUserNotFound() {
	schedule := suite.createSchedule()
	outsider := suite.createUser()

	foundAttendance, err := suite.repo.GetByScheduleAndUser(schedule.ID, outsider.ID)

	suite.Error(err)
	suite.Nil(foundAttendance)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestCountByStatus tests tallying RSVPs per status
func (suite *AttendanceRepositoryTestSuite) TestCountByStatus() {
	schedule := suite.createSchedule()

	statuses := []models.AttendanceStatus{
		models.AttendanceStatusAttending,
		models.AttendanceStatusAttending,
		models.AttendanceStatusAbsent,
		models.AttendanceStatusTentative,
	}
	for _, status := range statuses {
		user := suite.createUser()
		attendance := suite.factories.Attendance.WithScheduleAndUser(schedule.ID, user.ID)
		attendance.Status = status
		err := suite.repo.Create(attendance)
		suite.NoError(err)
	}

	counts, err := suite.repo.CountByStatus(schedule.ID)

	suite.NoError(err)
	suite.Equal(int64(2), counts[models.AttendanceStatusAttending])
	suite.Equal(int64(1), counts[models.AttendanceStatusAbsent])
	suite.Equal(int64(1), counts[models.AttendanceStatusTentative])
	suite.Equal(int64(0), counts[models.AttendanceStatusLate])
}

// TestUpdate tests changing an RSVP answer
func (suite *AttendanceRepositoryTestSuite) TestUpdate() {
	schedule := suite.createSchedule()
	user := suite.createUser()

	attendance := suite.factories.Attendance.WithScheduleAndUser(schedule.ID, user.ID)
	err := suite.repo.Create(attendance)
	suite.NoError(err)

	attendance.Status = models.AttendanceStatusAbsent
	attendance.Note = "Exam week, skipping the block"

	err = suite.repo.Update(attendance)

	// Assertions
	suite.NoError(err)

	updatedAttendance, err := suite.repo.GetByID(attendance.ID)
	suite.NoError(err)
	suite.Equal(models.AttendanceStatusAbsent, updatedAttendance.Status)
	suite.Equal("Exam week, skipping the block", updatedAttendance.Note)
}

// TestDelete tests deleting an RSVP
func (suite *AttendanceRepositoryTestSuite) TestDelete() {
	schedule := suite.createSchedule()
	user := suite.createUser()

	attendance := suite.factories.Attendance.WithScheduleAndUser(schedule.ID, user.ID)
	err := suite.repo.Create(attendance)
	suite.NoError(err)

	err = suite.repo.Delete(attendance.ID)
	suite.NoError(err)

	foundAttendance, err := suite.repo.GetByID(attendance.ID)
	suite.Error(err)
	suite.Nil(foundAttendance)
}

// Run the test suite
func TestAttendanceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceRepositoryTestSuite))
}
