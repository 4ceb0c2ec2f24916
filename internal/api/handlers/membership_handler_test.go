package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillsync-backend/internal/api/handlers"
	"skillsync-backend/internal/database/models"
	"skillsync-backend/internal/events"
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

// MembershipHandlerTestSuite defines the test suite for MembershipHandler
type MembershipHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockMemberRepo  *mocks.MockProjectMemberRepositoryInterface
	router          *gin.Engine

	userID string
}

// SetupTest sets up the test suite
func (suite *MembershipHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockProjectMemberRepositoryInterface(suite.ctrl)
	suite.userID = "applicant-1"

	membershipService := service.NewMembershipService(
		suite.mockProjectRepo,
		suite.mockMemberRepo,
		events.NewDispatcher(),
		validator.New(),
	)
	handler := handlers.NewMembershipHandler(membershipService)

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		if suite.userID != "" {
			c.Set("user_id", suite.userID)
		}
	})
	suite.router.GET("/projects/:id/members", handler.ListMembers)
	suite.router.POST("/projects/join", handler.JoinProject)
	suite.router.PATCH("/projects/member", handler.RespondToApplication)
	suite.router.DELETE("/projects/member", handler.RemoveMember)
}

// TearDownTest cleans up after each test
func (suite *MembershipHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipHandlerTestSuite) project(creatorID string) *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Peer Tutoring Platform",
		CreatorID: creatorID,
	}
}

func (suite *MembershipHandlerTestSuite) TestJoinProject() {
	project := suite.project("creator-1")
	stored := &models.ProjectMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: project.ID,
		UserID:    "applicant-1",
		Role:      "Backend Developer",
		Status:    models.MembershipStatusApplied,
	}

	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockMemberRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
	suite.mockMemberRepo.EXPECT().
		GetByProjectAndUser(project.ID, "applicant-1").
		Return(stored, nil)

	payload := map[string]interface{}{
		"project_id":           project.ID,
		"preferred_role":       "Backend Developer",
		"agreed_to_guidelines": true,
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/projects/join", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp service.MembershipResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MembershipStatusApplied, resp.Status)
	assert.Equal(suite.T(), "Backend Developer", resp.Role)
}

func (suite *MembershipHandlerTestSuite) TestJoinProjectUnauthenticated() {
	suite.userID = ""

	req, _ := http.NewRequest(http.MethodPost, "/projects/join", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *MembershipHandlerTestSuite) TestJoinProjectGuidelinesNotAgreed() {
	project := suite.project("creator-1")
	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	payload := map[string]interface{}{
		"project_id":           project.ID,
		"agreed_to_guidelines": false,
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/projects/join", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "guidelines")
}

func (suite *MembershipHandlerTestSuite) TestJoinProjectNotFound() {
	projectID := uuid.New()
	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

	payload := map[string]interface{}{
		"project_id":           projectID,
		"agreed_to_guidelines": true,
	}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodPost, "/projects/join", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *MembershipHandlerTestSuite) TestRespondAccept() {
	suite.userID = "creator-1"
	project := suite.project("creator-1")
	member := &models.ProjectMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: project.ID,
		UserID:    "applicant-1",
		Status:    models.MembershipStatusApplied,
	}

	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockMemberRepo.EXPECT().
		GetByProjectAndUser(project.ID, "applicant-1").
		Return(member, nil)
	suite.mockMemberRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(m *models.ProjectMember) error {
			assert.Equal(suite.T(), models.MembershipStatusAccepted, m.Status)
			assert.NotNil(suite.T(), m.AcceptedAt)
			return nil
		})

	url := fmt.Sprintf("/projects/member?projectId=%s&userId=applicant-1&action=accept", project.ID)
	req, _ := http.NewRequest(http.MethodPatch, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp service.MembershipResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MembershipStatusAccepted, resp.Status)
	assert.NotNil(suite.T(), resp.AcceptedAt)
}

func (suite *MembershipHandlerTestSuite) TestRespondRejectClearsAcceptance() {
	suite.userID = "creator-1"
	project := suite.project("creator-1")
	accepted := time.Now().Add(-time.Hour)
	member := &models.ProjectMember{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		ProjectID:  project.ID,
		UserID:     "applicant-1",
		Status:     models.MembershipStatusAccepted,
		AcceptedAt: &accepted,
	}

	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockMemberRepo.EXPECT().
		GetByProjectAndUser(project.ID, "applicant-1").
		Return(member, nil)
	suite.mockMemberRepo.EXPECT().Update(gomock.Any()).Return(nil)

	url := fmt.Sprintf("/projects/member?projectId=%s&userId=applicant-1&action=reject", project.ID)
	req, _ := http.NewRequest(http.MethodPatch, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp service.MembershipResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MembershipStatusRejected, resp.Status)
	assert.Nil(suite.T(), resp.AcceptedAt)
}

func (suite *MembershipHandlerTestSuite) TestRespondInvalidProjectID() {
	req, _ := http.NewRequest(http.MethodPatch, "/projects/member?projectId=nope&userId=applicant-1&action=accept", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MembershipHandlerTestSuite) TestRespondMissingUserID() {
	url := fmt.Sprintf("/projects/member?projectId=%s&action=accept", uuid.New())
	req, _ := http.NewRequest(http.MethodPatch, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "userId")
}

func (suite *MembershipHandlerTestSuite) TestRespondInvalidAction() {
	url := fmt.Sprintf("/projects/member?projectId=%s&userId=applicant-1&action=maybe", uuid.New())
	req, _ := http.NewRequest(http.MethodPatch, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MembershipHandlerTestSuite) TestRespondNotCreator() {
	suite.userID = "bystander-1"
	project := suite.project("creator-1")
	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	url := fmt.Sprintf("/projects/member?projectId=%s&userId=applicant-1&action=accept", project.ID)
	req, _ := http.NewRequest(http.MethodPatch, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *MembershipHandlerTestSuite) TestListMembers() {
	project := suite.project("creator-1")
	members := []models.ProjectMember{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			ProjectID: project.ID,
			UserID:    "applicant-1",
			Role:      "Backend Developer",
			Status:    models.MembershipStatusApplied,
		},
	}

	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockMemberRepo.EXPECT().ListByProject(project.ID).Return(members, nil)

	req, _ := http.NewRequest(http.MethodGet, "/projects/"+project.ID.String()+"/members", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body []service.MembershipResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), body, 1)
	assert.Equal(suite.T(), "applicant-1", body[0].UserID)
}

func (suite *MembershipHandlerTestSuite) TestListMembersInvalidID() {
	req, _ := http.NewRequest(http.MethodGet, "/projects/not-a-uuid/members", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *MembershipHandlerTestSuite) TestListMembersProjectNotFound() {
	projectID := uuid.New()
	suite.mockProjectRepo.EXPECT().GetByID(projectID).Return(nil, gorm.ErrRecordNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/projects/"+projectID.String()+"/members", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *MembershipHandlerTestSuite) TestRemoveMember() {
	suite.userID = "creator-1"
	project := suite.project("creator-1")
	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockMemberRepo.EXPECT().Delete(project.ID, "applicant-1").Return(nil)

	payload := handlers.RemoveMemberRequest{ProjectID: project.ID, UserID: "applicant-1"}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodDelete, "/projects/member", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *MembershipHandlerTestSuite) TestRemoveMemberForbidden() {
	suite.userID = "bystander-1"
	project := suite.project("creator-1")
	suite.mockProjectRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	payload := handlers.RemoveMemberRequest{ProjectID: project.ID, UserID: "applicant-1"}
	body, _ := json.Marshal(payload)

	req, _ := http.NewRequest(http.MethodDelete, "/projects/member", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *MembershipHandlerTestSuite) TestRemoveMemberMissingFields() {
	req, _ := http.NewRequest(http.MethodDelete, "/projects/member", bytes.NewBufferString(`{"user_id":"applicant-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestMembershipHandlerTestSuite runs the test suite
func TestMembershipHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipHandlerTestSuite))
}
