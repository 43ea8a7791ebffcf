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

// FeedbackRepositoryTestSuite tests the FeedbackRepository
type FeedbackRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FeedbackRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *FeedbackRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewFeedbackRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *FeedbackRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *FeedbackRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *FeedbackRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a user account
func (suite *FeedbackRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	userRepo := NewUserRepository(suite.baseTestSuite.DB)
	err := userRepo.Create(user)
	suite.NoError(err)
	return user
}

// helper to insert a team along with its owner, who doubles as the note author
func (suite *FeedbackRepositoryTestSuite) createTeamAndAuthor() (*models.Team, *models.User) {
	author := suite.createUser()

	team := suite.factories.Team.WithOwner(author.ID)
	teamRepo := NewTeamRepository(suite.baseTestSuite.DB)
	err := teamRepo.Create(team)
	suite.NoError(err)

	return team, author
}

// TestCreate tests creating a feedback note
func (suite *FeedbackRepositoryTestSuite) TestCreate() {
	team, author := suite.createTeamAndAuthor()

	feedback := suite.factories.Feedback.WithTeamAndAuthor(team.ID, author.ID)

	err := suite.repo.Create(feedback)

	// Assertions
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, feedback.ID)
	suite.Equal(models.FeedbackCategoryGeneral, feedback.Category)
}

// TestGetByID tests retrieving a feedback note by ID
func (suite *FeedbackRepositoryTestSuite) TestGetByID() {
	team, author := suite.createTeamAndAuthor()

	feedback := suite.factories.Feedback.WithTeamAndAuthor(team.ID, author.ID)
	feedback.Content = "Rotations off B were 10 seconds late all night"
	err := suite.repo.Create(feedback)
	suite.NoError(err)

	foundFeedback, err := suite.repo.GetByID(feedback.ID)

	suite.NoError(err)
	suite.Equal(feedback.ID, foundFeedback.ID)
	suite.Equal("Rotations off B were 10 seconds late all night", foundFeedback.Content)
}

// TestGetByIDNotFound tests retrieving a non-existent feedback note
func (suite *FeedbackRepositoryTestSuite) TestGetByIDNotFound() {
	foundFeedback, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Nil(foundFeedback)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestListByTeam tests listing a team's notes newest first
func (suite *FeedbackRepositoryTestSuite) TestListByTeam() {
	team, author := suite.createTeamAndAuthor()
	otherTeam, otherAuthor := suite.createTeamAndAuthor()

	oldNote := suite.factories.Feedback.WithTeamAndAuthor(team.ID, author.ID)
	oldNote.Content = "Pistol round setups looked scripted, mix them up"
	oldNote.CreatedAt = time.Now().Add(-48 * time.Hour)
	err := suite.repo.Create(oldNote)
	suite.NoError(err)

	newNote := suite.factories.Feedback.WithTeamAndAuthor(team.ID, author.ID)
	newNote.Content = "Great adjustment after the first timeout"
	newNote.CreatedAt = time.Now().Add(-2 * time.Hour)
	err = suite.repo.Create(newNote)
	suite.NoError(err)

	// Another team's note stays invisible
	err = suite.repo.Create(suite.factories.Feedback.WithTeamAndAuthor(otherTeam.ID, otherAuthor.ID))
	suite.NoError(err)

	notes, total, err := suite.repo.List(FeedbackFilter{TeamID: &team.ID}, 10, 0)

	suite.NoError(err)
	suite.Len(notes, 2)
	suite.Equal(int64(2), total)
	suite.Equal("Great adjustment after the first timeout", notes[0].Content)
	suite.Equal("Pistol round setups looked scripted, mix them up", notes[1].Content)
}

// TestListWithPagination tests feedback listing pagination
func (suite *FeedbackRepositoryTestSuite) TestListWithPagination() {
	team, author := suite.createTeamAndAuthor()

	for i := 0; i < 5; i++ {
		note := suite.factories.Feedback.WithTeamAndAuthor(team.ID, author.ID)
		note.CreatedAt = time.Now().Add(-time.Duration(i+1) * time.Hour)
		err := suite.repo.Create(note)
		suite.NoError(err)
	}

	notes, total, err := suite.repo.List(FeedbackFilter{TeamID: &team.ID}, 2, 0)
	suite.NoError(err)
	suite.Len(notes, 2)
	suite.Equal(int64(5), total)

	notes, total, err = suite.repo.List(FeedbackFilter{TeamID: &team.ID}, 2, 4)
	suite.NoError(err)
	suite.Len(notes, 1)
	suite.Equal(int64(5), total)
}

// TestListByRecipient tests narrowing notes to one recipient
func (suite *FeedbackRepositoryTestSuite) TestListByRecipient() {
	team, author := suite.createTeamAndAuthor()
	recipient := suite.createUser()

	addressed := suite.factories.Feedback.WithTeamAndAuthor(team.ID, author.ID)
	addressed.RecipientID = &recipient.ID
	addressed.Category = models.FeedbackCategoryGameplay
	err := suite.repo.Create(addressed)
	suite.NoError(err)

	// Team-wide note without a recipient
	err = suite.repo.Create(suite.factories.Feedback.WithTeamAndAuthor(team.ID, author.ID))
	suite.NoError(err)

	notes, total, err := suite.repo.List(FeedbackFilter{RecipientID: &recipient.ID}, 10, 0)

	suite.NoError(err)
	suite.Len(notes, 1)
	suite.Equal(int64(1), total)
	suite.Equal(models.FeedbackCategoryGameplay, notes[0].Category)
}

// TestListByMatch tests narrowing notes to one match
func (suite *FeedbackRepositoryTestSuite) TestListByMatch() {
	team, author := suite.createTeamAndAuthor()

	match := suite.factories.Match.WithTeam(team.ID)
	matchRepo := NewMatchRepository(suite.baseTestSuite.DB)
	err := matchRepo.Create(match)
	suite.NoError(err)

	matchNote := suite.factories.Feedback.WithTeamAndAuthor(team.ID, author.ID)
	matchNote.MatchID = &match.ID
	matchNote.Content = "Map 2 anchor positioning cost us the half"
	err = suite.repo.Create(matchNote)
	suite.NoError(err)

	err = suite.repo.Create(suite.factories.Feedback.WithTeamAndAuthor(team.ID, author.ID))
	suite.NoError(err)

	notes, total, err := suite.repo.List(FeedbackFilter{MatchID: &match.ID}, 10, 0)

	suite.NoError(err)
	suite.Len(notes, 1)
	suite.Equal(int64(1), total)
	suite.Equal("Map 2 anchor positioning cost us the half", notes[0].Content)
}

// TestListByAuthor tests narrowing notes to one author
func (suite *FeedbackRepositoryTestSuite) TestListByAuthor() {
	team, coach := suite.createTeamAndAuthor()
	captain := suite.createUser()

	err := suite.repo.Create(suite.factories.Feedback.WithTeamAndAuthor(team.ID, coach.ID))
	suite.NoError(err)
	err = suite.repo.Create(suite.factories.Feedback.WithTeamAndAuthor(team.ID, captain.ID))
	suite.NoError(err)

	notes, total, err := suite.repo.List(FeedbackFilter{TeamID: &team.ID, AuthorID: &coach.ID}, 10, 0)

	suite.NoError(err)
	suite.Len(notes, 1)
	suite.Equal(int64(1), total)
	suite.Equal(coach.ID, notes[0].AuthorID)
}

// TestUpdate tests updating a feedback note
func (suite *FeedbackRepositoryTestSuite) TestUpdate() {
	team, author := suite.createTeamAndAuthor()

	feedback := suite.factories.Feedback.WithTeamAndAuthor(team.ID, author.ID)
	err := suite.repo.Create(feedback)
	suite.NoError(err)

	feedback.Category = models.FeedbackCategoryCommunication
	feedback.Content = "Mid-round calls are overlapping, one voice per round"

	err = suite.repo.Update(feedback)

	// Assertions
	suite.NoError(err)

	updatedFeedback, err := suite.repo.GetByID(feedback.ID)
	suite.NoError(err)
	suite.Equal(models.FeedbackCategoryCommunication, updatedFeedback.Category)
	suite.Equal("Mid-round calls are overlapping, one voice per round", updatedFeedback.Content)
}

// TestDelete tests deleting a feedback note
func (suite *FeedbackRepositoryTestSuite) TestDelete() {
	team, author := suite.createTeamAndAuthor()

	feedback := suite.factories.Feedback.WithTeamAndAuthor(team.ID, author.ID)
	err := suite.repo.Create(feedback)
	suite.NoError(err)

	err = suite.repo.Delete(feedback.ID)
	suite.NoError(err)

	foundFeedback, err := suite.repo.GetByID(feedback.ID)
	suite.Error(err)
	suite.Nil(foundFeedback)
}

// Run the test suite
func TestFeedbackRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FeedbackRepositoryTestSuite))
}
