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

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert an owner account, teams carry a foreign key to users
func (suite *TeamRepositoryTestSuite) createOwner() *models.User {
	owner := suite.factories.User.Create()
	userRepo := NewUserRepository(suite.baseTestSuite.DB)
	err := userRepo.Create(owner)
	suite.NoError(err)
	return owner
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	owner := suite.createOwner()

	team := suite.factories.Team.WithOwner(owner.ID)

	err := suite.repo.Create(team)

	// Assertions
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
	suite.NotZero(team.UpdatedAt)
}

// TestCreateDuplicateName tests creating a team with a taken name
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	owner := suite.createOwner()

	team1 := suite.factories.Team.WithName("Mythic Five")
	team1.OwnerID = owner.ID
	err := suite.repo.Create(team1)
	suite.NoError(err)

	team2 := suite.factories.Team.WithName("Mythic Five")
	team2.OwnerID = owner.ID

	err = suite.repo.Create(team2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a team by ID
func (suite *TeamRepositoryTestSuite) TestGetByID() {
	owner := suite.createOwner()

	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.Create(team)
	suite.NoError(err)

	retrievedTeam, err := suite.repo.GetByID(team.ID)

	// Assertions
	suite.NoError(err)
	suite.NotNil(retrievedTeam)
	suite.Equal(team.ID, retrievedTeam.ID)
	suite.Equal(team.Name, retrievedTeam.Name)
	suite.Equal(team.Tag, retrievedTeam.Tag)
	suite.Equal(owner.ID, retrievedTeam.OwnerID)
	suite.Equal(team.InviteCode, retrievedTeam.InviteCode)
}

// TestGetByIDNotFound tests retrieving a non-existent team
func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	team, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(team)
}

// TestGetByName tests retrieving a team by its unique name
func (suite *TeamRepositoryTestSuite) TestGetByName() {
	owner := suite.createOwner()

	team := suite.factories.Team.WithName("Night Shift")
	team.OwnerID = owner.ID
	err := suite.repo.Create(team)
	suite.NoError(err)

	retrievedTeam, err := suite.repo.GetByName("Night Shift")

	suite.NoError(err)
	suite.NotNil(retrievedTeam)
	suite.Equal(team.ID, retrievedTeam.ID)
}

// TestGetByInviteCode tests retrieving a team by its invite code
func (suite *TeamRepositoryTestSuite) TestGetByInviteCode() {
	owner := suite.createOwner()

	team := suite.factories.Team.WithOwner(owner.ID)
	team.InviteCode = "MYT-7F3K2Q"
	err := suite.repo.Create(team)
	suite.NoError(err)

	retrievedTeam, err := suite.repo.GetByInviteCode("MYT-7F3K2Q")

	suite.NoError(err)
	suite.NotNil(retrievedTeam)
	suite.Equal(team.ID, retrievedTeam.ID)
}

// TestGetByInviteCodeNotFound tests retrieving a team by an unknown invite code
func (suite *TeamRepositoryTestSuite) TestGetByInviteCodeNotFound() {
	team, err := suite.repo.GetByInviteCode("MYT-000000")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(team)
}

// TestGetByUserID tests listing the teams a user is an active member of
func (suite *TeamRepositoryTestSuite) TestGetByUserID() {
	owner := suite.createOwner()
	memberRepo := NewTeamMemberRepository(suite.baseTestSuite.DB)

	// Two teams with active memberships, ordered check via names
	teamB := suite.factories.Team.WithName("Night Shift")
	teamB.OwnerID = owner.ID
	err := suite.repo.Create(teamB)
	suite.NoError(err)
	err = memberRepo.Create(suite.factories.TeamMember.WithTeamAndUser(teamB.ID, owner.ID))
	suite.NoError(err)

	teamA := suite.factories.Team.WithName("Mythic Five")
	teamA.OwnerID = owner.ID
	err = suite.repo.Create(teamA)
	suite.NoError(err)
	err = memberRepo.Create(suite.factories.TeamMember.WithTeamAndUser(teamA.ID, owner.ID))
	suite.NoError(err)

	// Third team with an inactive membership, must be filtered out
	teamC := suite.factories.Team.WithName("Spike Rush Academy")
	teamC.OwnerID = owner.ID
	err = suite.repo.Create(teamC)
	suite.NoError(err)
	inactive := suite.factories.TeamMember.WithTeamAndUser(teamC.ID, owner.ID)
	inactive.IsActive = false
	err = memberRepo.Create(inactive)
	suite.NoError(err)

	teams, err := suite.repo.GetByUserID(owner.ID)

	suite.NoError(err)
	suite.Len(teams, 2)
	// Verify ordering by name ASC
	suite.Equal("Mythic Five", teams[0].Name)
	suite.Equal("Night Shift", teams[1].Name)
}

// TestGetWithMembers tests retrieving a team with its members and accounts preloaded
func (suite *TeamRepositoryTestSuite) TestGetWithMembers() {
	owner := suite.createOwner()

	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.Create(team)
	suite.NoError(err)

	memberRepo := NewTeamMemberRepository(suite.baseTestSuite.DB)
	membership := suite.factories.TeamMember.WithTeamAndUser(team.ID, owner.ID)
	membership.Role = models.TeamMemberRoleOwner
	err = memberRepo.Create(membership)
	suite.NoError(err)

	teamWithMembers, err := suite.repo.GetWithMembers(team.ID)

	suite.NoError(err)
	suite.NotNil(teamWithMembers)
	suite.Len(teamWithMembers.Members, 1)
	suite.Equal(models.TeamMemberRoleOwner, teamWithMembers.Members[0].Role)
	suite.Equal(owner.Username, teamWithMembers.Members[0].User.Username)
}

// TestGetWithPlayers tests retrieving a team with its roster preloaded
func (suite *TeamRepositoryTestSuite) TestGetWithPlayers() {
	owner := suite.createOwner()

	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.Create(team)
	suite.NoError(err)

	playerRepo := NewPlayerRepository(suite.baseTestSuite.DB)
	err = playerRepo.Create(suite.factories.Player.WithTeam(team.ID))
	suite.NoError(err)
	err = playerRepo.Create(suite.factories.Player.WithTeam(team.ID))
	suite.NoError(err)

	teamWithPlayers, err := suite.repo.GetWithPlayers(team.ID)

	suite.NoError(err)
	suite.NotNil(teamWithPlayers)
	suite.Len(teamWithPlayers.Players, 2)
}

// TestUpdate tests updating a team
func (suite *TeamRepositoryTestSuite) TestUpdate() {
	owner := suite.createOwner()

	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.Create(team)
	suite.NoError(err)

	team.Tag = "MYT"
	team.Region = "EMEA"
	team.WebhookURL = "https://discord.com/api/webhooks/1234/abcd"

	err = suite.repo.Update(team)

	// Assertions
	suite.NoError(err)

	updatedTeam, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal("MYT", updatedTeam.Tag)
	suite.Equal("EMEA", updatedTeam.Region)
	suite.Equal("https://discord.com/api/webhooks/1234/abcd", updatedTeam.WebhookURL)
	suite.True(updatedTeam.UpdatedAt.After(updatedTeam.CreatedAt))
}

// TestDelete tests deleting a team
func (suite *TeamRepositoryTestSuite) TestDelete() {
	owner := suite.createOwner()

	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.Create(team)
	suite.NoError(err)

	err = suite.repo.Delete(team.ID)
	suite.NoError(err)

	// Verify team is deleted
	_, err = suite.repo.GetByID(team.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteCascadesMembers tests that deleting a team removes its memberships
func (suite *TeamRepositoryTestSuite) TestDeleteCascadesMembers() {
	owner := suite.createOwner()

	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.Create(team)
	suite.NoError(err)

	memberRepo := NewTeamMemberRepository(suite.baseTestSuite.DB)
	err = memberRepo.Create(suite.factories.TeamMember.WithTeamAndUser(team.ID, owner.ID))
	suite.NoError(err)

	err = suite.repo.Delete(team.ID)
	suite.NoError(err)

	exists, err := memberRepo.CheckMembershipExists(team.ID, owner.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestCheckTeamNameExists tests the name uniqueness check
func (suite *TeamRepositoryTestSuite) TestCheckTeamNameExists() {
	owner := suite.createOwner()

	team := suite.factories.Team.WithName("Mythic Five")
	team.OwnerID = owner.ID
	err := suite.repo.Create(team)
	suite.NoError(err)

	// Taken name
	exists, err := suite.repo.CheckTeamNameExists("Mythic Five", nil)
	suite.NoError(err)
	suite.True(exists)

	// Free name
	exists, err = suite.repo.CheckTeamNameExists("Night Shift", nil)
	suite.NoError(err)
	suite.False(exists)

	// Taken by the excluded team itself, renames must not self-collide
	exists, err = suite.repo.CheckTeamNameExists("Mythic Five", &team.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestGetMemberCount tests counting active members
func (suite *TeamRepositoryTestSuite) TestGetMemberCount() {
	owner := suite.createOwner()
	userRepo := NewUserRepository(suite.baseTestSuite.DB)
	memberRepo := NewTeamMemberRepository(suite.baseTestSuite.DB)

	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.Create(team)
	suite.NoError(err)

	// Two active members
	err = memberRepo.Create(suite.factories.TeamMember.WithTeamAndUser(team.ID, owner.ID))
	suite.NoError(err)

	second := suite.factories.User.Create()
	err = userRepo.Create(second)
	suite.NoError(err)
	err = memberRepo.Create(suite.factories.TeamMember.WithTeamAndUser(team.ID, second.ID))
	suite.NoError(err)

	// One inactive member, must not be counted
	third := suite.factories.User.Create()
	err = userRepo.Create(third)
	suite.NoError(err)
	inactive := suite.factories.TeamMember.WithTeamAndUser(team.ID, third.ID)
	inactive.IsActive = false
	inactive.JoinedAt = time.Now().Add(-time.Hour)
	err = memberRepo.Create(inactive)
	suite.NoError(err)

	count, err := suite.repo.GetMemberCount(team.ID)

	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// Run the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
