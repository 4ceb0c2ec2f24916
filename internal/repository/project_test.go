//go:build integration
// +build integration

package repository

import (
	"testing"

	"skillsync-backend/internal/database/models"
	"skillsync-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	memberRepo    *ProjectMemberRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewProjectMemberRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectRepositoryTestSuite) createCreator() *models.User {
	creator := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Ensure(creator))
	return creator
}

// TestCreate tests inserting a project
func (suite *ProjectRepositoryTestSuite) TestCreate() {
	creator := suite.createCreator()
	project := suite.factories.Project.ForCreator(creator.ID)

	err := suite.repo.Create(project)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, project.ID)
	suite.NotZero(project.CreatedAt)
}

// TestGetWithDetails tests loading creator and members
func (suite *ProjectRepositoryTestSuite) TestGetWithDetails() {
	creator := suite.createCreator()
	applicant := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Ensure(applicant))

	project := suite.factories.Project.ForCreator(creator.ID)
	suite.NoError(suite.repo.Create(project))
	suite.NoError(suite.memberRepo.Upsert(suite.factories.ProjectMember.For(project, applicant.ID)))

	stored, err := suite.repo.GetWithDetails(project.ID)

	suite.NoError(err)
	suite.Equal(creator.ID, stored.Creator.ID)
	suite.Len(stored.Members, 1)
	suite.Equal(applicant.ID, stored.Members[0].User.ID)
}

// TestListNewestFirst tests the default ordering
func (suite *ProjectRepositoryTestSuite) TestListNewestFirst() {
	creator := suite.createCreator()

	older := suite.factories.Project.ForCreator(creator.ID)
	suite.NoError(suite.repo.Create(older))
	newer := suite.factories.Project.ForCreator(creator.ID)
	suite.NoError(suite.repo.Create(newer))
	// Force distinct timestamps regardless of clock resolution
	suite.NoError(suite.baseTestSuite.DB.Model(older).
		Update("created_at", gorm.Expr("created_at - interval '1 hour'")).Error)

	projects, err := suite.repo.List(ProjectFilter{})

	suite.NoError(err)
	suite.Len(projects, 2)
	suite.Equal(newer.ID, projects[0].ID)
	suite.Equal(older.ID, projects[1].ID)
}

// TestListQueryMatchesSkills tests the free-text query against skill tags
func (suite *ProjectRepositoryTestSuite) TestListQueryMatchesSkills() {
	creator := suite.createCreator()

	goProject := suite.factories.Project.ForCreator(creator.ID)
	goProject.Title = "Backend collective"
	goProject.RequiredSkills = models.StringList{"Go", "PostgreSQL"}
	suite.NoError(suite.repo.Create(goProject))

	designProject := suite.factories.Project.ForCreator(creator.ID)
	designProject.Title = "Poster design jam"
	designProject.RequiredSkills = models.StringList{"Figma"}
	suite.NoError(suite.repo.Create(designProject))

	projects, err := suite.repo.List(ProjectFilter{Query: "postgres"})

	suite.NoError(err)
	suite.Len(projects, 1)
	suite.Equal(goProject.ID, projects[0].ID)
}

// TestListFilters tests the equality filters
func (suite *ProjectRepositoryTestSuite) TestListFilters() {
	creator := suite.createCreator()

	open := suite.factories.Project.ForCreator(creator.ID)
	open.Category = "Web Development"
	open.Difficulty = models.DifficultyBeginner
	suite.NoError(suite.repo.Create(open))

	closed := suite.factories.Project.ForCreator(creator.ID)
	closed.Category = "Web Development"
	closed.Status = models.ProjectStatusClosed
	suite.NoError(suite.repo.Create(closed))

	projects, err := suite.repo.List(ProjectFilter{
		Category: "Web Development",
		Status:   string(models.ProjectStatusOpen),
	})

	suite.NoError(err)
	suite.Len(projects, 1)
	suite.Equal(open.ID, projects[0].ID)
}

// TestListMaxDuration tests that the duration cap keeps unset durations
func (suite *ProjectRepositoryTestSuite) TestListMaxDuration() {
	creator := suite.createCreator()

	short := suite.factories.Project.ForCreator(creator.ID)
	weeks4 := 4
	short.DurationWeeks = &weeks4
	suite.NoError(suite.repo.Create(short))

	long := suite.factories.Project.ForCreator(creator.ID)
	weeks6 := 6
	long.DurationWeeks = &weeks6
	suite.NoError(suite.repo.Create(long))

	unset := suite.factories.Project.ForCreator(creator.ID)
	suite.NoError(suite.repo.Create(unset))

	maxWeeks := 4
	projects, err := suite.repo.List(ProjectFilter{MaxDurationWeeks: &maxWeeks})

	suite.NoError(err)
	suite.Len(projects, 2)
	for _, p := range projects {
		suite.NotEqual(long.ID, p.ID)
	}
}

// TestDeleteCascadesMembers tests that deleting a project removes its rows
func (suite *ProjectRepositoryTestSuite) TestDeleteCascadesMembers() {
	creator := suite.createCreator()
	applicant := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Ensure(applicant))

	project := suite.factories.Project.ForCreator(creator.ID)
	suite.NoError(suite.repo.Create(project))
	suite.NoError(suite.memberRepo.Upsert(suite.factories.ProjectMember.For(project, applicant.ID)))

	suite.NoError(suite.repo.Delete(project.ID))

	_, err := suite.repo.GetByID(project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.ProjectMember{}).
		Where("project_id = ?", project.ID).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
