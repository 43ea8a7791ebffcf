package service_test

import (
	"testing"
	"time"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"
	"valo-platform-backend/internal/mocks"
	"valo-platform-backend/internal/repository"
	"valo-platform-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FeedbackServiceTestSuite defines the test suite for FeedbackService
type FeedbackServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockFeedbackRepo *mocks.MockFeedbackRepositoryInterface
	mockMemberRepo   *mocks.MockTeamMemberRepositoryInterface
	mockMatchRepo    *mocks.MockMatchRepositoryInterface
	mockUserRepo     *mocks.MockUserRepositoryInterface
	mockDispatcher   *mocks.MockNotificationServiceInterface
	feedbackService  *service.FeedbackService
	validator        *validator.Validate
}

// SetupTest runs before each test
func (suite *FeedbackServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFeedbackRepo = mocks.NewMockFeedbackRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockMatchRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockDispatcher = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.validator = validator.New()

	// Create service with mock repositories
	suite.feedbackService = service.NewFeedbackService(
		suite.mockFeedbackRepo,
		suite.mockMemberRepo,
		suite.mockMatchRepo,
		suite.mockUserRepo,
		suite.mockDispatcher,
		suite.validator,
	)
}

// TearDownTest runs after each test
func (suite *FeedbackServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// teamNote builds a stored feedback row
func teamNote(teamID, authorID uuid.UUID) *models.Feedback {
	return &models.Feedback{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		TeamID:    teamID,
		AuthorID:  authorID,
		Category:  models.FeedbackCategoryGameplay,
		Content:   "entry timing on A main was late all night",
	}
}

// TestCreateFeedback tests leaving a note for the whole team
func (suite *FeedbackServiceTestSuite) TestCreateFeedback() {
	actorID := uuid.New()
	teamID := uuid.New()
	req := &service.CreateFeedbackRequest{
		TeamID:  teamID,
		Content: "good comms tonight, keep the mid-round calls short",
	}

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRoleCoach), nil).
		Times(1)

	suite.mockFeedbackRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(feedback *models.Feedback) error {
			feedback.ID = uuid.New()
			assert.Equal(suite.T(), actorID, feedback.AuthorID)
			assert.Equal(suite.T(), models.FeedbackCategoryGeneral, feedback.Category)
			return nil
		}).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(actorID).
		Return(&models.User{BaseModel: models.BaseModel{ID: actorID}, Username: "coach_cat"}, nil).
		Times(1)

	suite.mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), nil, models.NotificationTypeFeedbackReceived,
			"New general feedback",
			"coach_cat left a note for the team",
			gomock.Any()).
		Times(1)

	response, err := suite.feedbackService.Create(actorID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.FeedbackCategoryGeneral, response.Category)
	assert.Nil(suite.T(), response.RecipientID)
}

// TestCreateFeedbackPersonal tests that a personal note is routed to the
// recipient's inbox instead of the team
func (suite *FeedbackServiceTestSuite) TestCreateFeedbackPersonal() {
	actorID := uuid.New()
	teamID := uuid.New()
	recipientID := uuid.New()
	rating := 4
	req := &service.CreateFeedbackRequest{
		TeamID:      teamID,
		RecipientID: &recipientID,
		Category:    models.FeedbackCategoryCommunication,
		Content:     "your retake calls on Bind were on point",
		Rating:      &rating,
	}

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRoleCoach), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		CheckMembershipExists(teamID, recipientID).
		Return(true, nil).
		Times(1)

	suite.mockFeedbackRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(actorID).
		Return(&models.User{BaseModel: models.BaseModel{ID: actorID}, Username: "coach_cat"}, nil).
		Times(1)

	suite.mockDispatcher.EXPECT().
		Dispatch(nil, &recipientID, models.NotificationTypeFeedbackReceived,
			"New communication feedback",
			"coach_cat left you a note",
			gomock.Any()).
		Times(1)

	response, err := suite.feedbackService.Create(actorID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.RecipientID)
	assert.Equal(suite.T(), recipientID, *response.RecipientID)
	assert.Equal(suite.T(), 4, *response.Rating)
}

// TestCreateFeedbackForMatch tests pinning a note to a match
func (suite *FeedbackServiceTestSuite) TestCreateFeedbackForMatch() {
	actorID := uuid.New()
	teamID := uuid.New()
	match := recordedMatch(teamID)
	req := &service.CreateFeedbackRequest{
		TeamID:   teamID,
		MatchID:  &match.ID,
		Category: models.FeedbackCategoryStrategy,
		Content:  "we kept forcing B after losing pistol, need a reset plan",
	}

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRolePlayer), nil).
		Times(1)

	suite.mockMatchRepo.EXPECT().
		GetByID(match.ID).
		Return(match, nil).
		Times(1)

	suite.mockFeedbackRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(actorID).
		Return(&models.User{BaseModel: models.BaseModel{ID: actorID}, Username: "sova_scout"}, nil).
		Times(1)

	suite.mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), nil, models.NotificationTypeFeedbackReceived,
			"New strategy feedback",
			"sova_scout left a note for the team",
			gomock.Any()).
		Times(1)

	response, err := suite.feedbackService.Create(actorID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.MatchID)
	assert.Equal(suite.T(), match.ID, *response.MatchID)
}

// TestCreateFeedbackMatchOtherTeam tests pinning a note to another team's match
func (suite *FeedbackServiceTestSuite) TestCreateFeedbackMatchOtherTeam() {
	actorID := uuid.New()
	teamID := uuid.New()
	match := recordedMatch(uuid.New())
	req := &service.CreateFeedbackRequest{
		TeamID:  teamID,
		MatchID: &match.ID,
		Content: "we kept forcing B after losing pistol",
	}

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRolePlayer), nil).
		Times(1)

	suite.mockMatchRepo.EXPECT().
		GetByID(match.ID).
		Return(match, nil).
		Times(1)

	response, err := suite.feedbackService.Create(actorID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrMatchNotFound, err)
}

// TestCreateFeedbackRecipientNotMember tests a recipient outside the team
func (suite *FeedbackServiceTestSuite) TestCreateFeedbackRecipientNotMember() {
	actorID := uuid.New()
	teamID := uuid.New()
	recipientID := uuid.New()
	req := &service.CreateFeedbackRequest{
		TeamID:      teamID,
		RecipientID: &recipientID,
		Content:     "your retake calls on Bind were on point",
	}

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRoleCoach), nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		CheckMembershipExists(teamID, recipientID).
		Return(false, nil).
		Times(1)

	response, err := suite.feedbackService.Create(actorID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrTeamMemberNotFound, err)
}

// TestCreateFeedbackInvalidCategory tests an unknown feedback category
func (suite *FeedbackServiceTestSuite) TestCreateFeedbackInvalidCategory() {
	actorID := uuid.New()
	req := &service.CreateFeedbackRequest{
		TeamID:   uuid.New(),
		Category: models.FeedbackCategory("vibes"),
		Content:  "immaculate",
	}

	response, err := suite.feedbackService.Create(actorID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "invalid feedback category")
}

// TestCreateFeedbackAuthorLookupFallback tests that a failed author lookup
// falls back to an anonymous byline
func (suite *FeedbackServiceTestSuite) TestCreateFeedbackAuthorLookupFallback() {
	actorID := uuid.New()
	teamID := uuid.New()
	req := &service.CreateFeedbackRequest{
		TeamID:  teamID,
		Content: "good comms tonight",
	}

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRolePlayer), nil).
		Times(1)

	suite.mockFeedbackRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(actorID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockDispatcher.EXPECT().
		Dispatch(gomock.Any(), nil, models.NotificationTypeFeedbackReceived,
			"New general feedback",
			"A teammate left a note for the team",
			gomock.Any()).
		Times(1)

	response, err := suite.feedbackService.Create(actorID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestGetFeedbackByID tests retrieving a note by ID
func (suite *FeedbackServiceTestSuite) TestGetFeedbackByID() {
	actorID := uuid.New()
	teamID := uuid.New()
	note := teamNote(teamID, uuid.New())

	suite.mockFeedbackRepo.EXPECT().
		GetByID(note.ID).
		Return(note, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRolePlayer), nil).
		Times(1)

	response, err := suite.feedbackService.GetByID(actorID, note.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), note.ID, response.ID)
	assert.Equal(suite.T(), models.FeedbackCategoryGameplay, response.Category)
	assert.Equal(suite.T(), "entry timing on A main was late all night", response.Content)
}

// TestGetFeedbackByIDNotFound tests retrieving a missing note
func (suite *FeedbackServiceTestSuite) TestGetFeedbackByIDNotFound() {
	actorID := uuid.New()
	feedbackID := uuid.New()

	suite.mockFeedbackRepo.EXPECT().
		GetByID(feedbackID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.feedbackService.GetByID(actorID, feedbackID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrFeedbackNotFound, err)
}

// TestListFeedback tests listing a team's notes
func (suite *FeedbackServiceTestSuite) TestListFeedback() {
	actorID := uuid.New()
	teamID := uuid.New()
	filter := repository.FeedbackFilter{TeamID: &teamID}
	notes := []models.Feedback{*teamNote(teamID, uuid.New()), *teamNote(teamID, uuid.New())}

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRolePlayer), nil).
		Times(1)

	suite.mockFeedbackRepo.EXPECT().
		List(filter, 20, 0).
		Return(notes, int64(2), nil).
		Times(1)

	response, err := suite.feedbackService.List(actorID, filter, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Items, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestListFeedbackMissingTeam tests that listing requires a team filter
func (suite *FeedbackServiceTestSuite) TestListFeedbackMissingTeam() {
	actorID := uuid.New()

	response, err := suite.feedbackService.List(actorID, repository.FeedbackFilter{}, 1, 20)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "team_id")
}

// TestListFeedbackByMatch tests narrowing the listing to one match
func (suite *FeedbackServiceTestSuite) TestListFeedbackByMatch() {
	actorID := uuid.New()
	teamID := uuid.New()
	matchID := uuid.New()
	filter := repository.FeedbackFilter{TeamID: &teamID, MatchID: &matchID}

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRolePlayer), nil).
		Times(1)

	suite.mockFeedbackRepo.EXPECT().
		List(filter, 20, 0).
		Return([]models.Feedback{}, int64(0), nil).
		Times(1)

	response, err := suite.feedbackService.List(actorID, filter, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.Items)
}

// TestUpdateFeedback tests the author editing their note
func (suite *FeedbackServiceTestSuite) TestUpdateFeedback() {
	actorID := uuid.New()
	teamID := uuid.New()
	note := teamNote(teamID, actorID)
	rating := 3
	req := &service.UpdateFeedbackRequest{
		Content: strPtr("entry timing improved in the second half"),
		Rating:  &rating,
	}

	suite.mockFeedbackRepo.EXPECT().
		GetByID(note.ID).
		Return(note, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRoleCoach), nil).
		Times(1)

	suite.mockFeedbackRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(feedback *models.Feedback) error {
			assert.Equal(suite.T(), "entry timing improved in the second half", feedback.Content)
			assert.Equal(suite.T(), 3, *feedback.Rating)
			return nil
		}).
		Times(1)

	response, err := suite.feedbackService.Update(actorID, note.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "entry timing improved in the second half", response.Content)
}

// TestUpdateFeedbackNotAuthor tests that only the author can edit a note
func (suite *FeedbackServiceTestSuite) TestUpdateFeedbackNotAuthor() {
	actorID := uuid.New()
	teamID := uuid.New()
	note := teamNote(teamID, uuid.New())
	req := &service.UpdateFeedbackRequest{
		Content: strPtr("rewritten by someone else"),
	}

	suite.mockFeedbackRepo.EXPECT().
		GetByID(note.ID).
		Return(note, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRoleOwner), nil).
		Times(1)

	response, err := suite.feedbackService.Update(actorID, note.ID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.Equal(suite.T(), "only the author can edit feedback", err.Error())
}

// TestDeleteFeedbackAsAuthor tests the author deleting their own note
func (suite *FeedbackServiceTestSuite) TestDeleteFeedbackAsAuthor() {
	actorID := uuid.New()
	teamID := uuid.New()
	note := teamNote(teamID, actorID)

	suite.mockFeedbackRepo.EXPECT().
		GetByID(note.ID).
		Return(note, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRolePlayer), nil).
		Times(1)

	suite.mockFeedbackRepo.EXPECT().
		Delete(note.ID).
		Return(nil).
		Times(1)

	err := suite.feedbackService.Delete(actorID, note.ID)

	assert.NoError(suite.T(), err)
}

// TestDeleteFeedbackAsManager tests a coach deleting someone else's note
func (suite *FeedbackServiceTestSuite) TestDeleteFeedbackAsManager() {
	actorID := uuid.New()
	teamID := uuid.New()
	note := teamNote(teamID, uuid.New())

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRoleCoach), nil).
		Times(2)

	suite.mockFeedbackRepo.EXPECT().
		GetByID(note.ID).
		Return(note, nil).
		Times(1)

	suite.mockFeedbackRepo.EXPECT().
		Delete(note.ID).
		Return(nil).
		Times(1)

	err := suite.feedbackService.Delete(actorID, note.ID)

	assert.NoError(suite.T(), err)
}

// TestDeleteFeedbackNotAuthorNotManager tests a player deleting someone
// else's note
func (suite *FeedbackServiceTestSuite) TestDeleteFeedbackNotAuthorNotManager() {
	actorID := uuid.New()
	teamID := uuid.New()
	note := teamNote(teamID, uuid.New())

	suite.mockMemberRepo.EXPECT().
		GetByTeamAndUser(teamID, actorID).
		Return(activeMember(teamID, actorID, models.TeamMemberRolePlayer), nil).
		Times(2)

	suite.mockFeedbackRepo.EXPECT().
		GetByID(note.ID).
		Return(note, nil).
		Times(1)

	err := suite.feedbackService.Delete(actorID, note.ID)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), apperrors.ErrNotTeamManager, err)
}

// TestCreateFeedbackRequestValidation tests validation rules for notes
func TestCreateFeedbackRequestValidation(t *testing.T) {
	validate := validator.New()
	badRating := 6

	testCases := []struct {
		name        string
		request     service.CreateFeedbackRequest
		expectError bool
	}{
		{
			name: "Valid request",
			request: service.CreateFeedbackRequest{
				TeamID:  uuid.New(),
				Content: "good comms tonight",
			},
			expectError: false,
		},
		{
			name: "Missing team",
			request: service.CreateFeedbackRequest{
				Content: "good comms tonight",
			},
			expectError: true,
		},
		{
			name: "Missing content",
			request: service.CreateFeedbackRequest{
				TeamID: uuid.New(),
			},
			expectError: true,
		},
		{
			name: "Rating above scale",
			request: service.CreateFeedbackRequest{
				TeamID:  uuid.New(),
				Content: "good comms tonight",
				Rating:  &badRating,
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.request)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestFeedbackServiceTestSuite runs the test suite
func TestFeedbackServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeedbackServiceTestSuite))
}
