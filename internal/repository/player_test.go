//go:build integration
// +build integration

package repository

import (
	"testing"

	"valo-platform-backend/internal/database/models"
	"valo-platform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlayerRepositoryTestSuite tests the PlayerRepository
type PlayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlayerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PlayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert an owner account and a team
func (suite *PlayerRepositoryTestSuite) createTeam() *models.Team {
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

// TestCreate tests creating a new player
func (suite *PlayerRepositoryTestSuite) TestCreate() {
	// Scouted opponents have no team, TeamID stays nil
	player := suite.factories.Player.Create()

	err := suite.repo.Create(player)

	// Assertions
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, player.ID)
	suite.NotZero(player.CreatedAt)
	suite.NotZero(player.UpdatedAt)
	suite.Nil(player.TeamID)
}

// TestCreateDuplicatePUUID tests creating a player with a taken PUUID
func (suite *PlayerRepositoryTestSuite) TestCreateDuplicatePUUID() {
	puuid := uuid.New().String()

	player1 := suite.factories.Player.WithPUUID(puuid)
	err := suite.repo.Create(player1)
	suite.NoError(err)

	player2 := suite.factories.Player.WithPUUID(puuid)

	err = suite.repo.Create(player2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestCreateEmptyPUUIDNotUnique tests that manually entered players coexist.
// Rows without a Riot identity are exempt from the PUUID unique index.
func (suite *PlayerRepositoryTestSuite) TestCreateEmptyPUUIDNotUnique() {
	player1 := suite.factories.Player.WithPUUID("")
	err := suite.repo.Create(player1)
	suite.NoError(err)

	player2 := suite.factories.Player.WithPUUID("")
	err = suite.repo.Create(player2)
	suite.NoError(err)
}

// TestGetByID tests retrieving a player by ID
func (suite *PlayerRepositoryTestSuite) TestGetByID() {
	player := suite.factories.Player.Create()
	err := suite.repo.Create(player)
	suite.NoError(err)

	retrievedPlayer, err := suite.repo.GetByID(player.ID)

	// Assertions
	suite.NoError(err)
	suite.NotNil(retrievedPlayer)
	suite.Equal(player.ID, retrievedPlayer.ID)
	suite.Equal(player.PUUID, retrievedPlayer.PUUID)
	suite.Equal(player.GameName, retrievedPlayer.GameName)
	suite.Equal(player.Role, retrievedPlayer.Role)
}

// TestGetByIDNotFound tests retrieving a non-existent player
func (suite *PlayerRepositoryTestSuite) TestGetByIDNotFound() {
	player, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(player)
}

// TestGetByPUUID tests retrieving a player by Riot PUUID
func (suite *PlayerRepositoryTestSuite) TestGetByPUUID() {
	puuid := uuid.New().String()

	player := suite.factories.Player.WithPUUID(puuid)
	err := suite.repo.Create(player)
	suite.NoError(err)

	retrievedPlayer, err := suite.repo.GetByPUUID(puuid)

	suite.NoError(err)
	suite.NotNil(retrievedPlayer)
	suite.Equal(player.ID, retrievedPlayer.ID)
}

// TestGetByTeamID tests listing a team's players ordered by game name
func (suite *PlayerRepositoryTestSuite) TestGetByTeamID() {
	team := suite.createTeam()

	for _, name := range []string{"omen_anchor", "jett_main", "sova_scout"} {
		player := suite.factories.Player.WithTeam(team.ID)
		player.GameName = name
		err := suite.repo.Create(player)
		suite.NoError(err)
	}

	players, total, err := suite.repo.GetByTeamID(team.ID, 10, 0)

	suite.NoError(err)
	suite.Len(players, 3)
	suite.Equal(int64(3), total)
	// Verify ordering by game_name ASC
	suite.Equal("jett_main", players[0].GameName)
	suite.Equal("omen_anchor", players[1].GameName)
	suite.Equal("sova_scout", players[2].GameName)
}

// TestGetByTeamIDWithPagination tests listing players across pages
func (suite *PlayerRepositoryTestSuite) TestGetByTeamIDWithPagination() {
	team := suite.createTeam()

	for i := 0; i < 5; i++ {
		err := suite.repo.Create(suite.factories.Player.WithTeam(team.ID))
		suite.NoError(err)
	}

	// First page
	players, total, err := suite.repo.GetByTeamID(team.ID, 2, 0)
	suite.NoError(err)
	suite.Len(players, 2)
	suite.Equal(int64(5), total)

	// Last page
	players, total, err = suite.repo.GetByTeamID(team.ID, 2, 4)
	suite.NoError(err)
	suite.Len(players, 1)
	suite.Equal(int64(5), total)
}

// TestGetActiveByTeamID tests listing the active roster
func (suite *PlayerRepositoryTestSuite) TestGetActiveByTeamID() {
	team := suite.createTeam()

	active := suite.factories.Player.WithTeam(team.ID)
	err := suite.repo.Create(active)
	suite.NoError(err)

	benched := suite.factories.Player.WithTeam(team.ID)
	benched.IsActive = false
	err = suite.repo.Create(benched)
	suite.NoError(err)

	players, err := suite.repo.GetActiveByTeamID(team.ID)

	suite.NoError(err)
	suite.Len(players, 1)
	suite.Equal(active.ID, players[0].ID)
}

// TestGetPUUIDsByTeamID tests collecting the roster PUUIDs
func (suite *PlayerRepositoryTestSuite) TestGetPUUIDsByTeamID() {
	team := suite.createTeam()

	linked1 := suite.factories.Player.WithTeam(team.ID)
	err := suite.repo.Create(linked1)
	suite.NoError(err)

	linked2 := suite.factories.Player.WithTeam(team.ID)
	err = suite.repo.Create(linked2)
	suite.NoError(err)

	// Manually tracked player without a Riot identity, must be skipped
	manual := suite.factories.Player.WithTeam(team.ID)
	manual.PUUID = ""
	err = suite.repo.Create(manual)
	suite.NoError(err)

	puuids, err := suite.repo.GetPUUIDsByTeamID(team.ID)

	suite.NoError(err)
	suite.Len(puuids, 2)
	suite.Contains(puuids, linked1.PUUID)
	suite.Contains(puuids, linked2.PUUID)
}

// TestUpdate tests updating a player
func (suite *PlayerRepositoryTestSuite) TestUpdate() {
	player := suite.factories.Player.Create()
	err := suite.repo.Create(player)
	suite.NoError(err)

	player.Role = models.PlayerRoleDuelist
	player.CurrentRank = "Immortal 3"

	err = suite.repo.Update(player)

	// Assertions
	suite.NoError(err)

	updatedPlayer, err := suite.repo.GetByID(player.ID)
	suite.NoError(err)
	suite.Equal(models.PlayerRoleDuelist, updatedPlayer.Role)
	suite.Equal("Immortal 3", updatedPlayer.CurrentRank)
}

// TestDelete tests deleting a player
func (suite *PlayerRepositoryTestSuite) TestDelete() {
	player := suite.factories.Player.Create()
	err := suite.repo.Create(player)
	suite.NoError(err)

	err = suite.repo.Delete(player.ID)
	suite.NoError(err)

	// Verify player is deleted
	_, err = suite.repo.GetByID(player.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestCheckPUUIDExists tests the PUUID uniqueness check
func (suite *PlayerRepositoryTestSuite) TestCheckPUUIDExists() {
	puuid := uuid.New().String()

	player := suite.factories.Player.WithPUUID(puuid)
	err := suite.repo.Create(player)
	suite.NoError(err)

	// Registered PUUID
	exists, err := suite.repo.CheckPUUIDExists(puuid, nil)
	suite.NoError(err)
	suite.True(exists)

	// Unknown PUUID
	exists, err = suite.repo.CheckPUUIDExists(uuid.New().String(), nil)
	suite.NoError(err)
	suite.False(exists)

	// Registered by the excluded player itself, edits must not self-collide
	exists, err = suite.repo.CheckPUUIDExists(puuid, &player.ID)
	suite.NoError(err)
	suite.False(exists)
}

// Run the test suite
func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
