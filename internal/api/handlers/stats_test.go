package handlers_test

import (
	"fmt"
	"net/http"
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

// StatsHandlerTestSuite defines the test suite for StatsHandler
type StatsHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockStatsServiceInterface
	handler     *handlers.StatsHandler
	httpSuite   *testutils.HTTPTestSuite
	actorID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *StatsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockStatsServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewStatsHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Inject the authenticated identity the way the auth middleware would
	suite.actorID = uuid.New()
	suite.httpSuite.AuthenticateAs(suite.actorID)

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	players := v1.Group("/players")
	{
		players.GET("/:id/stats", suite.handler.GetPlayerStats)
		players.GET("/:id/stats/maps", suite.handler.GetPlayerMapStats)
		players.GET("/:id/stats/agents", suite.handler.GetPlayerAgentStats)
		players.GET("/:id/stats/timings", suite.handler.GetPlayerTimingStats)
		players.GET("/:id/matches", suite.handler.GetPlayerMatches)
	}
	matches := v1.Group("/matches")
	{
		matches.GET("/:id/stats", suite.handler.GetMatchStats)
	}
}

// TearDownTest cleans up after each test
func (suite *StatsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetPlayerStats tests the GetPlayerStats handler
func (suite *StatsHandlerTestSuite) TestGetPlayerStats() {
	// Test successful aggregation
	suite.T().Run("Success", func(t *testing.T) {
		playerID := uuid.New()

		expectedResponse := &service.PlayerOverallStats{
			PlayerID:     playerID,
			GamesPlayed:  18,
			RoundsPlayed: 402,
			Kills:        341,
			Deaths:       287,
			Assists:      96,
			AvgKills:     18.9,
			AvgDeaths:    15.9,
			KD:           1.19,
			KDA:          1.52,
			ACS:          231.4,
			ADR:          148.2,
			HeadshotRate: 0.24,
			KastRate:     0.71,
			FirstKills:   52,
			FirstDeaths:  38,
		}

		suite.mockService.EXPECT().
			GetPlayerOverall(suite.actorID, playerID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s/stats", playerID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PlayerOverallStats
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, playerID, response.PlayerID)
		assert.Equal(t, 18, response.GamesPlayed)
		assert.InDelta(t, 1.19, response.KD, 0.001)
	})

	// Test invalid UUID
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/invalid-uuid/stats", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid player ID")
	})

	// Test player not found
	suite.T().Run("Not Found", func(t *testing.T) {
		playerID := uuid.New()

		suite.mockService.EXPECT().
			GetPlayerOverall(suite.actorID, playerID).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s/stats", playerID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	// Test missing identity
	suite.T().Run("Unauthenticated", func(t *testing.T) {
		bare := testutils.SetupHTTPTest()
		bare.Router.GET("/api/v1/players/:id/stats", suite.handler.GetPlayerStats)

		recorder := bare.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s/stats", uuid.New()), nil)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "Authentication required")
	})
}

// TestGetPlayerMapStats tests the GetPlayerMapStats handler
func (suite *StatsHandlerTestSuite) TestGetPlayerMapStats() {
	// Test successful breakdown
	suite.T().Run("Success", func(t *testing.T) {
		playerID := uuid.New()

		expectedResponse := []service.PlayerMapStats{
			{MapName: "Ascent", Games: 7, Wins: 5, WinRate: 0.714, Kills: 133, Deaths: 102, KD: 1.3, AvgDamage: 152.1},
			{MapName: "Bind", Games: 4, Wins: 1, WinRate: 0.25, Kills: 61, Deaths: 70, KD: 0.87, AvgDamage: 131.6},
		}

		suite.mockService.EXPECT().
			GetPlayerMapStats(suite.actorID, playerID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s/stats/maps", playerID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.PlayerMapStats
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "Ascent", response[0].MapName)
		assert.Equal(t, 5, response[0].Wins)
	})

	// Test invalid UUID
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/invalid-uuid/stats/maps", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	// Test outsider access
	suite.T().Run("Not A Member", func(t *testing.T) {
		playerID := uuid.New()

		suite.mockService.EXPECT().
			GetPlayerMapStats(suite.actorID, playerID).
			Return(nil, apperrors.ErrNotTeamMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s/stats/maps", playerID), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestGetPlayerAgentStats tests the GetPlayerAgentStats handler
func (suite *StatsHandlerTestSuite) TestGetPlayerAgentStats() {
	// Test successful breakdown
	suite.T().Run("Success", func(t *testing.T) {
		playerID := uuid.New()

		expectedResponse := []service.PlayerAgentStats{
			{AgentName: "Jett", Games: 11, Wins: 7, WinRate: 0.636, Kills: 224, Deaths: 168, Assists: 41, KD: 1.33},
			{AgentName: "Raze", Games: 5, Wins: 2, WinRate: 0.4, Kills: 87, Deaths: 83, Assists: 29, KD: 1.05},
		}

		suite.mockService.EXPECT().
			GetPlayerAgentStats(suite.actorID, playerID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s/stats/agents", playerID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.PlayerAgentStats
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "Jett", response[0].AgentName)
		assert.Equal(t, 11, response[0].Games)
	})

	// Test player not found
	suite.T().Run("Not Found", func(t *testing.T) {
		playerID := uuid.New()

		suite.mockService.EXPECT().
			GetPlayerAgentStats(suite.actorID, playerID).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s/stats/agents", playerID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestGetPlayerTimingStats tests the GetPlayerTimingStats handler
func (suite *StatsHandlerTestSuite) TestGetPlayerTimingStats() {
	// Test successful sector breakdown
	suite.T().Run("Success", func(t *testing.T) {
		playerID := uuid.New()

		expectedResponse := []service.SectorStats{
			{Sector: models.TimeSectorFirst, Kills: 48, Deaths: 31, KD: 1.55},
			{Sector: models.TimeSectorPrepare, Kills: 22, Deaths: 25, KD: 0.88},
			{Sector: models.TimeSectorSecond, Kills: 67, Deaths: 58, KD: 1.16},
			{Sector: models.TimeSectorLate, Kills: 35, Deaths: 42, KD: 0.83},
			{Sector: models.TimeSectorPostplant, Kills: 71, Deaths: 64, KD: 1.11},
		}

		suite.mockService.EXPECT().
			GetPlayerTimingStats(suite.actorID, playerID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s/stats/timings", playerID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.SectorStats
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 5)
		assert.Equal(t, models.TimeSectorFirst, response[0].Sector)
		assert.Equal(t, 48, response[0].Kills)
	})

	// Test invalid UUID
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/invalid-uuid/stats/timings", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetPlayerMatches tests the GetPlayerMatches handler
func (suite *StatsHandlerTestSuite) TestGetPlayerMatches() {
	// Test successful history listing
	suite.T().Run("Success", func(t *testing.T) {
		playerID := uuid.New()

		expectedResponse := &service.PlayerMatchListResponse{
			Items: []service.PlayerMatchEntry{
				{
					MatchID:    uuid.New(),
					MapName:    "Ascent",
					Category:   models.MatchCategoryScrim,
					Result:     models.MatchResultWin,
					RoundsWon:  13,
					RoundsLost: 9,
					PlayedAt:   "2026-06-10T19:00:00Z",
					Stats:      matchPlayerFixture("jett_main", 24, 15, 4),
				},
			},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}

		suite.mockService.EXPECT().
			GetPlayerMatches(suite.actorID, playerID, 1, 20).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s/matches", playerID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PlayerMatchListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Items, 1)
		assert.Equal(t, "Ascent", response.Items[0].MapName)
		assert.Equal(t, 24, response.Items[0].Stats.Kills)
	})

	// Test explicit pagination parameters
	suite.T().Run("With Pagination", func(t *testing.T) {
		playerID := uuid.New()

		expectedResponse := &service.PlayerMatchListResponse{
			Items:    []service.PlayerMatchEntry{},
			Total:    31,
			Page:     4,
			PageSize: 10,
		}

		suite.mockService.EXPECT().
			GetPlayerMatches(suite.actorID, playerID, 4, 10).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s/matches?page=4&page_size=10", playerID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	// Test player not found
	suite.T().Run("Not Found", func(t *testing.T) {
		playerID := uuid.New()

		suite.mockService.EXPECT().
			GetPlayerMatches(suite.actorID, playerID, 1, 20).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/players/%s/matches", playerID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestGetMatchStats tests the GetMatchStats handler
func (suite *StatsHandlerTestSuite) TestGetMatchStats() {
	// Test successful scoreboard retrieval
	suite.T().Run("Success", func(t *testing.T) {
		matchID := uuid.New()

		expectedResponse := []service.MatchPlayerResponse{
			matchPlayerFixture("jett_main", 24, 15, 4),
			matchPlayerFixture("sova_scout", 17, 14, 11),
			matchPlayerFixture("omen_anchor", 14, 16, 19),
		}

		suite.mockService.EXPECT().
			GetMatchScoreboard(suite.actorID, matchID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/matches/%s/stats", matchID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.MatchPlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 3)
		assert.Equal(t, "omen_anchor", response[2].GameName)
	})

	// Test invalid UUID
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/matches/invalid-uuid/stats", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid match ID")
	})

	// Test match not found
	suite.T().Run("Not Found", func(t *testing.T) {
		matchID := uuid.New()

		suite.mockService.EXPECT().
			GetMatchScoreboard(suite.actorID, matchID).
			Return(nil, apperrors.ErrMatchNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/matches/%s/stats", matchID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestStatsHandlerTestSuite runs the test suite
func TestStatsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatsHandlerTestSuite))
}
