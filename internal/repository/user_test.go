//go:build integration
// +build integration

package repository

import (
	"testing"

	"skillsync-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	skillRepo     *SkillRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.skillRepo = NewSkillRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestEnsureInserts tests creating a user on first sight
func (suite *UserRepositoryTestSuite) TestEnsureInserts() {
	user := suite.factories.User.Create()

	suite.NoError(suite.repo.Ensure(user))

	stored, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(user.Email, stored.Email)
}

// TestEnsureLeavesExistingRowUntouched tests that stale token claims never
// overwrite profile edits
func (suite *UserRepositoryTestSuite) TestEnsureLeavesExistingRowUntouched() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Ensure(user))

	stored, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	stored.Bio = "handwritten bio"
	suite.NoError(suite.repo.Update(stored))

	again := suite.factories.User.WithID(user.ID)
	again.FirstName = "Stale"
	suite.NoError(suite.repo.Ensure(again))

	after, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal("handwritten bio", after.Bio)
	suite.NotEqual("Stale", after.FirstName)
}

// TestGetByIDPreloadsSkills tests that profiles carry their skills
func (suite *UserRepositoryTestSuite) TestGetByIDPreloadsSkills() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Ensure(user))
	suite.NoError(suite.skillRepo.Create(suite.factories.Skill.ForUser(user.ID)))

	stored, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Len(stored.Skills, 1)
}

// TestGetByIDNotFound tests the miss path
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID("ghost")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListPublicExcludesPrivateProfiles tests directory visibility
func (suite *UserRepositoryTestSuite) TestListPublicExcludesPrivateProfiles() {
	public := suite.factories.User.Create()
	suite.NoError(suite.repo.Ensure(public))

	private := suite.factories.User.Private()
	suite.NoError(suite.repo.Ensure(private))

	users, err := suite.repo.ListPublic()
	suite.NoError(err)
	suite.Len(users, 1)
	suite.Equal(public.ID, users[0].ID)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
