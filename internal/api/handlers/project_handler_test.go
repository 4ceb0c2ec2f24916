package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillsync-backend/internal/api/handlers"
	"skillsync-backend/internal/database/models"
	"skillsync-backend/internal/events"
	"skillsync-backend/internal/mocks"
	"skillsync-backend/internal/repository"
	"skillsync-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	router          *gin.Engine

	// userID is injected into the request context when non-empty,
	// standing in for the authentication middleware
	userID string
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.userID = "user-1"

	projectService := service.NewProjectService(suite.mockProjectRepo, events.NewDispatcher(), validator.New())
	handler := handlers.NewProjectHandler(projectService)

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		if suite.userID != "" {
			c.Set("user_id", suite.userID)
		}
	})
	suite.router.GET("/projects", handler.ListProjects)
	suite.router.GET("/projects/:id", handler.GetProject)
	suite.router.POST("/projects", handler.CreateProject)
	suite.router.DELETE("/projects", handler.DeleteProject)
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectHandlerTestSuite) newProject(creatorID string) *models.Project {
	return &models.Project{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Title:            "Campus Event Planner",
		ShortDescription: "Plan student events together",
		Description:      "A scheduling tool for student clubs",
		Category:         "Web Development",
		Difficulty:       models.DifficultyIntermediate,
		Status:           models.ProjectStatusOpen,
		CreatorID:        creatorID,
		Creator:          models.User{ID: creatorID, FirstName: "Dana", LastName: "Levi"},
	}
}

func (suite *ProjectHandlerTestSuite) TestListProjects() {
	project := suite.newProject("user-1")
	suite.mockProjectRepo.EXPECT().
		List(gomock.Any()).
		Return([]models.Project{*project}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/projects", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body []service.ProjectResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), body, 1)
	assert.Equal(suite.T(), project.Title, body[0].Title)
}

// filterMatcher asserts on the repository filter the handler builds from
// query parameters.
type filterMatcher struct {
	query       string
	category    string
	maxDuration *int
}

func (m filterMatcher) Matches(x interface{}) bool {
	filter, ok := x.(repository.ProjectFilter)
	if !ok {
		return false
	}
	if filter.Query != m.query || filter.Category != m.category {
		return false
	}
	if m.maxDuration == nil {
		return filter.MaxDurationWeeks == nil
	}
	return filter.MaxDurationWeeks != nil && *filter.MaxDurationWeeks == *m.maxDuration
}

func (m filterMatcher) String() string {
	return fmt.Sprintf("matches filter query=%q category=%q", m.query, m.category)
}

func (suite *ProjectHandlerTestSuite) TestListProjectsParsesFilters() {
	weeks := 8
	suite.mockProjectRepo.EXPECT().
		List(filterMatcher{query: "planner", category: "", maxDuration: &weeks}).
		Return([]models.Project{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/projects?q=planner&category=All&maxDuration=8", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestListProjectsStoreErrorReturnsEmptyList() {
	suite.mockProjectRepo.EXPECT().
		List(gomock.Any()).
		Return(nil, assert.AnError)

	req, _ := http.NewRequest(http.MethodGet, "/projects", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "[]", w.Body.String())
}

func (suite *ProjectHandlerTestSuite) TestListProjectsIgnoresBadMaxDuration() {
	suite.mockProjectRepo.EXPECT().
		List(filterMatcher{query: "", category: "", maxDuration: nil}).
		Return([]models.Project{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/projects?maxDuration=soon", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestGetProjectInvalidID() {
	req, _ := http.NewRequest(http.MethodGet, "/projects/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid project ID")
}

func (suite *ProjectHandlerTestSuite) TestGetProjectNotFound() {
	id := uuid.New()
	suite.mockProjectRepo.EXPECT().
		GetWithDetails(id).
		Return(nil, gorm.ErrRecordNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/projects/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	project := suite.newProject("user-1")
	suite.mockProjectRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Project) error {
			p.ID = project.ID
			return nil
		})
	suite.mockProjectRepo.EXPECT().
		GetWithDetails(project.ID).
		Return(project, nil)

	payload := map[string]interface{}{
		"title":             "Campus Event Planner",
		"short_description": "Plan student events together",
		"description":       "A scheduling tool for student clubs",
		"category":          "Web Development",
		"difficulty":        "Intermediate",
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var resp service.ProjectResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), project.ID, resp.ID)
}

func (suite *ProjectHandlerTestSuite) TestCreateProjectUnauthenticated() {
	suite.userID = ""

	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestCreateProjectInvalidJSON() {
	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestCreateProjectValidationError() {
	payload := map[string]interface{}{
		"title":       "x",
		"description": "too short",
		"category":    "Web Development",
		"difficulty":  "Intermediate",
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	project := suite.newProject("user-1")
	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockProjectRepo.EXPECT().Delete(project.ID).Return(nil)

	req, _ := http.NewRequest(http.MethodDelete, "/projects?id="+project.ID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProjectNotCreator() {
	project := suite.newProject("someone-else")
	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	req, _ := http.NewRequest(http.MethodDelete, "/projects?id="+project.ID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProjectInvalidID() {
	req, _ := http.NewRequest(http.MethodDelete, "/projects?id=nope", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
