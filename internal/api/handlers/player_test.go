package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"valo-platform-backend/internal/api/handlers"
	"valo-platform-backend/internal/database/models"
	apperrors "valo-platform-backend/internal/errors"
	"valo-platform-backend/internal/mocks"
	"valo-platform-backend/internal/service"
	"valo-platform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PlayerHandlerTestSuite defines the test suite for PlayerHandler
type PlayerHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPlayerServiceInterface
	handler     *handlers.PlayerHandler
	httpSuite   *testutils.HTTPTestSuite
	actorID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *PlayerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPlayerServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewPlayerHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Inject the authenticated identity the way the auth middleware would
	suite.actorID = uuid.New()
	suite.httpSuite.AuthenticateAs(suite.actorID)

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	players := v1.Group("/players")
	{
		players.POST("", suite.handler.CreatePlayer)
		players.GET("/:id", suite.handler.GetPlayer)
		players.PUT("/:id", suite.handler.UpdatePlayer)
		players.DELETE("/:id", suite.handler.DeletePlayer)
	}
	teams := v1.Group("/teams")
	{
		teams.GET("/:id/players", suite.handler.GetPlayersByTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *PlayerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *PlayerHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// playerFixture builds a roster player on the given team
func playerFixture(teamID uuid.UUID) *service.PlayerResponse {
	return &service.PlayerResponse{
		ID:          uuid.New(),
		TeamID:      &teamID,
		PUUID:       "8c7a341e-5d2f-4b89-a1c3-9e0f6d24b7a5",
		GameName:    "jett_main",
		TagLine:     "EUW",
		Region:      "eu",
		Role:        models.PlayerRoleDuelist,
		CurrentRank: "Immortal 2",
		IsActive:    true,
		CreatedAt:   "2026-05-12T18:30:00Z",
		UpdatedAt:   "2026-05-12T18:30:00Z",
	}
}

// TestCreatePlayer tests the CreatePlayer handler
func (suite *PlayerHandlerTestSuite) TestCreatePlayer() {
	// Test successful creation
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		requestBody := map[string]interface{}{
			"team_id":   teamID.String(),
			"puuid":     "8c7a341e-5d2f-4b89-a1c3-9e0f6d24b7a5",
			"game_name": "jett_main",
			"tag_line":  "EUW",
			"region":    "eu",
			"role":      "duelist",
		}

		expectedResponse := playerFixture(teamID)

		suite.mockService.EXPECT().
			Create(suite.actorID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/players", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "jett_main", response.GameName)
		assert.Equal(t, models.PlayerRoleDuelist, response.Role)
	})

	// Test duplicate PUUID on the roster
	suite.T().Run("Duplicate PUUID", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"team_id":   uuid.New().String(),
			"puuid":     "8c7a341e-5d2f-4b89-a1c3-9e0f6d24b7a5",
			"game_name": "jett_main",
			"tag_line":  "EUW",
		}

		suite.mockService.EXPECT().
			Create(suite.actorID, gomock.Any()).
			Return(nil, apperrors.ErrPlayerExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/players", requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "player already exists")
	})

	// Test player on the roster without manager rights
	suite.T().Run("Not A Manager", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"team_id":   uuid.New().String(),
			"puuid":     "8c7a341e-5d2f-4b89-a1c3-9e0f6d24b7a5",
			"game_name": "jett_main",
			"tag_line":  "EUW",
		}

		suite.mockService.EXPECT().
			Create(suite.actorID, gomock.Any()).
			Return(nil, apperrors.ErrNotTeamManager).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/players", requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	// Test invalid JSON
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/v1/players")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	// Test missing identity
	suite.T().Run("Unauthenticated", func(t *testing.T) {
		bare := testutils.SetupHTTPTest()
		bare.Router.POST("/api/v1/players", suite.handler.CreatePlayer)

		recorder := bare.MakeRequest("POST", "/api/v1/players", map[string]interface{}{"game_name": "jett_main"})

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "Authentication required")
	})
}

// TestGetPlayer tests the GetPlayer handler
func (suite *PlayerHandlerTestSuite) TestGetPlayer() {
	// Test successful retrieval
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := playerFixture(uuid.New())

		suite.mockService.EXPECT().
			GetByID(suite.actorID, expectedResponse.ID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s", expectedResponse.ID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.ID, response.ID)
		assert.Equal(t, "Immortal 2", response.CurrentRank)
	})

	// Test invalid UUID
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/invalid-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid player ID")
	})

	// Test player not found
	suite.T().Run("Not Found", func(t *testing.T) {
		playerID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(suite.actorID, playerID).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s", playerID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "player not found")
	})
}

// TestGetPlayersByTeam tests the GetPlayersByTeam handler
func (suite *PlayerHandlerTestSuite) TestGetPlayersByTeam() {
	// Test successful listing with default pagination
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		expectedResponse := &service.PlayerListResponse{
			Items: []service.PlayerResponse{
				*playerFixture(teamID),
				{
					ID:       uuid.New(),
					TeamID:   &teamID,
					PUUID:    "f14d9b02-6e8a-4c71-b5d9-2a3c8e7f1904",
					GameName: "sova_scout",
					TagLine:  "EUW",
					Role:     models.PlayerRoleInitiator,
					IsActive: true,
				},
			},
			Total:    2,
			Page:     1,
			PageSize: 20,
		}

		suite.mockService.EXPECT().
			GetByTeamID(suite.actorID, teamID, 1, 20).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s/players", teamID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PlayerListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Items, 2)
		assert.Equal(t, int64(2), response.Total)
	})

	// Test explicit pagination parameters
	suite.T().Run("With Pagination", func(t *testing.T) {
		teamID := uuid.New()

		expectedResponse := &service.PlayerListResponse{
			Items:    []service.PlayerResponse{},
			Total:    12,
			Page:     3,
			PageSize: 5,
		}

		suite.mockService.EXPECT().
			GetByTeamID(suite.actorID, teamID, 3, 5).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s/players?page=3&page_size=5", teamID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PlayerListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 3, response.Page)
		assert.Equal(t, 5, response.PageSize)
	})

	// Test invalid team UUID
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/invalid-uuid/players", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})

	// Test outsider access
	suite.T().Run("Not A Member", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			GetByTeamID(suite.actorID, teamID, 1, 20).
			Return(nil, apperrors.ErrNotTeamMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s/players", teamID), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestUpdatePlayer tests the UpdatePlayer handler
func (suite *PlayerHandlerTestSuite) TestUpdatePlayer() {
	// Test successful update
	suite.T().Run("Success", func(t *testing.T) {
		playerID := uuid.New()
		teamID := uuid.New()

		requestBody := map[string]interface{}{
			"role":         "flex",
			"current_rank": "Immortal 3",
		}

		expectedResponse := playerFixture(teamID)
		expectedResponse.ID = playerID
		expectedResponse.Role = models.PlayerRoleFlex
		expectedResponse.CurrentRank = "Immortal 3"

		suite.mockService.EXPECT().
			Update(suite.actorID, playerID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/players/%s", playerID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, models.PlayerRoleFlex, response.Role)
		assert.Equal(t, "Immortal 3", response.CurrentRank)
	})

	// Test invalid UUID
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"current_rank": "Immortal 3",
		}

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/players/invalid-uuid", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid player ID")
	})

	// Test player not found
	suite.T().Run("Not Found", func(t *testing.T) {
		playerID := uuid.New()
		requestBody := map[string]interface{}{
			"current_rank": "Immortal 3",
		}

		suite.mockService.EXPECT().
			Update(suite.actorID, playerID, gomock.Any()).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/players/%s", playerID), requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	// Test invalid JSON
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		playerID := uuid.New()
		recorder := suite.makeInvalidJSONRequest("PUT", fmt.Sprintf("/api/v1/players/%s", playerID))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestDeletePlayer tests the DeletePlayer handler
func (suite *PlayerHandlerTestSuite) TestDeletePlayer() {
	// Test successful deletion
	suite.T().Run("Success", func(t *testing.T) {
		playerID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.actorID, playerID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/players/%s", playerID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	// Test invalid UUID
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/players/invalid-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid player ID")
	})

	// Test player trying to delete a roster entry
	suite.T().Run("Not A Manager", func(t *testing.T) {
		playerID := uuid.New()

		suite.mockService.EXPECT().
			Delete(suite.actorID, playerID).
			Return(apperrors.ErrNotTeamManager).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/players/%s", playerID), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestPlayerHandlerTestSuite runs the test suite
func TestPlayerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerHandlerTestSuite))
}
