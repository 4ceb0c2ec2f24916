package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillsync-backend/internal/api/handlers"
	"skillsync-backend/internal/database/models"
	"skillsync-backend/internal/mocks"
	"skillsync-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SkillHandlerTestSuite defines the test suite for SkillHandler
type SkillHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSkillRepo *mocks.MockSkillRepositoryInterface
	router        *gin.Engine

	userID string
}

// SetupTest sets up the test suite
func (suite *SkillHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSkillRepo = mocks.NewMockSkillRepositoryInterface(suite.ctrl)
	suite.userID = "user-1"

	skillService := service.NewSkillService(suite.mockSkillRepo, validator.New())
	handler := handlers.NewSkillHandler(skillService)

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		if suite.userID != "" {
			c.Set("user_id", suite.userID)
		}
	})
	suite.router.GET("/user-skills", handler.ListSkills)
	suite.router.POST("/user-skills", handler.CreateSkill)
	suite.router.DELETE("/user-skills", handler.DeleteSkill)
}

// TearDownTest cleans up after each test
func (suite *SkillHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SkillHandlerTestSuite) TestListSkills() {
	skills := []models.Skill{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			UserID:    "user-1",
			Name:      "Go",
			Level:     models.SkillLevelAdvanced,
			Category:  "Backend",
			Type:      models.SkillTypeTaught,
		},
	}
	suite.mockSkillRepo.EXPECT().GetByUserID("user-1").Return(skills, nil)

	req, _ := http.NewRequest(http.MethodGet, "/user-skills", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body []service.SkillResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), body, 1)
	assert.Equal(suite.T(), "Go", body[0].Name)
}

func (suite *SkillHandlerTestSuite) TestListSkillsUnauthenticated() {
	suite.userID = ""

	req, _ := http.NewRequest(http.MethodGet, "/user-skills", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *SkillHandlerTestSuite) TestCreateSkill() {
	suite.mockSkillRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(skill *models.Skill) error {
			assert.Equal(suite.T(), "user-1", skill.UserID)
			skill.ID = uuid.New()
			return nil
		})

	payload := map[string]string{
		"name":     "React",
		"level":    "Intermediate",
		"category": "Frontend",
		"type":     "learned",
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/user-skills", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var resp service.SkillResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "React", resp.Name)
}

func (suite *SkillHandlerTestSuite) TestCreateSkillInvalidLevel() {
	payload := map[string]string{
		"name":     "React",
		"level":    "Wizard",
		"category": "Frontend",
		"type":     "learned",
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/user-skills", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *SkillHandlerTestSuite) TestDeleteSkill() {
	skillID := uuid.New()
	suite.mockSkillRepo.EXPECT().
		GetByID(skillID).
		Return(&models.Skill{BaseModel: models.BaseModel{ID: skillID}, UserID: "user-1"}, nil)
	suite.mockSkillRepo.EXPECT().Delete(skillID).Return(nil)

	req, _ := http.NewRequest(http.MethodDelete, "/user-skills?id="+skillID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SkillHandlerTestSuite) TestDeleteSkillNotOwner() {
	skillID := uuid.New()
	suite.mockSkillRepo.EXPECT().
		GetByID(skillID).
		Return(&models.Skill{BaseModel: models.BaseModel{ID: skillID}, UserID: "someone-else"}, nil)

	req, _ := http.NewRequest(http.MethodDelete, "/user-skills?id="+skillID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *SkillHandlerTestSuite) TestDeleteSkillNotFound() {
	skillID := uuid.New()
	suite.mockSkillRepo.EXPECT().GetByID(skillID).Return(nil, gorm.ErrRecordNotFound)

	req, _ := http.NewRequest(http.MethodDelete, "/user-skills?id="+skillID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SkillHandlerTestSuite) TestDeleteSkillInvalidID() {
	req, _ := http.NewRequest(http.MethodDelete, "/user-skills?id=nope", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestSkillHandlerTestSuite runs the test suite
func TestSkillHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SkillHandlerTestSuite))
}
