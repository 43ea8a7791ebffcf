package service_test

import (
	"testing"
	"time"

	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"
	"valo-platform-backend/internal/mocks"
	"valo-platform-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func uuidPtr() *uuid.UUID {
	u := uuid.New()
	return &u
}

func strPtr(s string) *string {
	return &s
}

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
	validator    *validator.Validate
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	// Create service with mock repository
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetByID tests retrieving an account by ID
func (suite *UserServiceTestSuite) TestGetByID() {
	userID := uuid.New()
	user := &models.User{
		BaseModel:   models.BaseModel{ID: userID, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		DiscordID:   "123456789012345678",
		Username:    "jett_main",
		DisplayName: "Jett Main",
		Email:       "jett@example.com",
		RiotID:      "JettMain#EUW",
		Timezone:    "Europe/Berlin",
		Provider:    models.AuthProviderDiscord,
		IsActive:    true,
	}

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(user, nil).
		Times(1)

	response, err := suite.userService.GetByID(userID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), userID, response.ID)
	assert.Equal(suite.T(), "jett_main", response.Username)
	assert.Equal(suite.T(), "JettMain#EUW", response.RiotID)
	assert.Equal(suite.T(), models.AuthProviderDiscord, response.Provider)
}

// TestGetByIDNotFound tests retrieving an account that does not exist
func (suite *UserServiceTestSuite) TestGetByIDNotFound() {
	userID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.userService.GetByID(userID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrUserNotFound, err)
}

// TestUpdateProfile tests updating profile fields
func (suite *UserServiceTestSuite) TestUpdateProfile() {
	userID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Username:  "jett_main",
		RiotID:    "JettMain#EUW",
		Timezone:  "Europe/Berlin",
	}
	req := &service.UpdateUserRequest{
		DisplayName: strPtr("Jett on Duty"),
		RiotID:      strPtr("JettOnDuty#EUW"),
	}

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(user, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.userService.UpdateProfile(userID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Jett on Duty", response.DisplayName)
	assert.Equal(suite.T(), "JettOnDuty#EUW", response.RiotID)
	// Untouched fields survive
	assert.Equal(suite.T(), "Europe/Berlin", response.Timezone)
}

// TestUpdateProfileValidationError tests updating with an invalid email
func (suite *UserServiceTestSuite) TestUpdateProfileValidationError() {
	userID := uuid.New()
	req := &service.UpdateUserRequest{
		Email: strPtr("not-an-email"),
	}

	response, err := suite.userService.UpdateProfile(userID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestUpdateProfileNotFound tests updating an account that does not exist
func (suite *UserServiceTestSuite) TestUpdateProfileNotFound() {
	userID := uuid.New()
	req := &service.UpdateUserRequest{DisplayName: strPtr("Jett on Duty")}

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.userService.UpdateProfile(userID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), apperrors.ErrUserNotFound, err)
}

/*************** ProvisionOAuthUser ***************/

// TestProvisionOAuthUserCreates tests first login creating an account
func (suite *UserServiceTestSuite) TestProvisionOAuthUserCreates() {
	suite.mockUserRepo.EXPECT().
		GetByDiscordID("123456789012345678").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), "123456789012345678", user.DiscordID)
			assert.Equal(suite.T(), "jett_main", user.Username)
			assert.Equal(suite.T(), models.AuthProviderDiscord, user.Provider)
			assert.True(suite.T(), user.IsActive)
			return nil
		}).
		Times(1)

	user, err := suite.userService.ProvisionOAuthUser(models.AuthProviderDiscord,
		"123456789012345678", "jett_main", "Jett Main", "jett@example.com", "https://cdn.discordapp.com/avatars/1/a.png")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), user)
	assert.Equal(suite.T(), "jett_main", user.Username)
	assert.Equal(suite.T(), "jett@example.com", user.Email)
}

// TestProvisionOAuthUserRefreshes tests repeat login refreshing mirrored fields
func (suite *UserServiceTestSuite) TestProvisionOAuthUserRefreshes() {
	existing := &models.User{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		DiscordID:   "123456789012345678",
		Username:    "old_name",
		DisplayName: "Old Name",
		Email:       "old@example.com",
		Provider:    models.AuthProviderDiscord,
		IsActive:    true,
	}

	suite.mockUserRepo.EXPECT().
		GetByDiscordID("123456789012345678").
		Return(existing, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	user, err := suite.userService.ProvisionOAuthUser(models.AuthProviderDiscord,
		"123456789012345678", "new_name", "New Name", "new@example.com", "")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), user)
	assert.Equal(suite.T(), "new_name", user.Username)
	assert.Equal(suite.T(), "New Name", user.DisplayName)
	assert.Equal(suite.T(), "new@example.com", user.Email)
}

// TestProvisionOAuthUserKeepsFieldsTheProviderOmits tests that empty provider
// fields never wipe stored values
func (suite *UserServiceTestSuite) TestProvisionOAuthUserKeepsFieldsTheProviderOmits() {
	existing := &models.User{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		DiscordID:   "123456789012345678",
		Username:    "jett_main",
		DisplayName: "Jett Main",
		Email:       "jett@example.com",
		AvatarURL:   "https://cdn.discordapp.com/avatars/1/a.png",
		Provider:    models.AuthProviderDiscord,
	}

	suite.mockUserRepo.EXPECT().
		GetByDiscordID("123456789012345678").
		Return(existing, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	user, err := suite.userService.ProvisionOAuthUser(models.AuthProviderDiscord,
		"123456789012345678", "jett_main", "", "", "")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Jett Main", user.DisplayName)
	assert.Equal(suite.T(), "jett@example.com", user.Email)
	assert.Equal(suite.T(), "https://cdn.discordapp.com/avatars/1/a.png", user.AvatarURL)
}

// TestProvisionOAuthUserGitHubByEmail tests GitHub login matching by email
func (suite *UserServiceTestSuite) TestProvisionOAuthUserGitHubByEmail() {
	existing := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "jett_main",
		Email:     "jett@example.com",
		Provider:  models.AuthProviderGitHub,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail("jett@example.com").
		Return(existing, nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	user, err := suite.userService.ProvisionOAuthUser(models.AuthProviderGitHub,
		"9001", "jettmain", "Jett Main", "jett@example.com", "")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), existing.ID, user.ID)
	assert.Equal(suite.T(), "jettmain", user.Username)
}

// TestProvisionOAuthUserGitHubByUsername tests GitHub login without an email
func (suite *UserServiceTestSuite) TestProvisionOAuthUserGitHubByUsername() {
	suite.mockUserRepo.EXPECT().
		GetByUsername("jettmain").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			// GitHub IDs never land in the Discord column
			assert.Empty(suite.T(), user.DiscordID)
			assert.Equal(suite.T(), models.AuthProviderGitHub, user.Provider)
			return nil
		}).
		Times(1)

	user, err := suite.userService.ProvisionOAuthUser(models.AuthProviderGitHub,
		"9001", "jettmain", "", "", "")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), user)
}

// TestProvisionOAuthUserInvalidProvider tests an unknown provider key
func (suite *UserServiceTestSuite) TestProvisionOAuthUserInvalidProvider() {
	user, err := suite.userService.ProvisionOAuthUser("riot", "1", "jett_main", "", "", "")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), user)
	assert.Contains(suite.T(), err.Error(), "unsupported auth provider")
}

// TestProvisionOAuthUserMissingUsername tests a provider profile without a username
func (suite *UserServiceTestSuite) TestProvisionOAuthUserMissingUsername() {
	user, err := suite.userService.ProvisionOAuthUser(models.AuthProviderDiscord, "1", "", "", "", "")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), user)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateUserRequestValidation tests validation rules for profile updates
func TestUpdateUserRequestValidation(t *testing.T) {
	validate := validator.New()

	testCases := []struct {
		name        string
		request     service.UpdateUserRequest
		expectError bool
	}{
		{
			name: "valid request",
			request: service.UpdateUserRequest{
				DisplayName: strPtr("Jett Main"),
				Email:       strPtr("jett@example.com"),
				RiotID:      strPtr("JettMain#EUW"),
				Timezone:    strPtr("Europe/Berlin"),
			},
			expectError: false,
		},
		{
			name:        "empty request",
			request:     service.UpdateUserRequest{},
			expectError: false,
		},
		{
			name: "invalid email",
			request: service.UpdateUserRequest{
				Email: strPtr("not-an-email"),
			},
			expectError: true,
		},
		{
			name: "riot id too long",
			request: service.UpdateUserRequest{
				RiotID: strPtr("ThisRiotIDIsMuchTooLongToFitInTheColumnAtAll#SOMETAG"),
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

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
