package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillsync-backend/internal/database/models"
	apperrors "skillsync-backend/internal/errors"
	"skillsync-backend/internal/events"
	"skillsync-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillTags is a list of skill names that accepts either a JSON array or a
// single comma-separated string on input.
type SkillTags []string

// UnmarshalJSON implements json.Unmarshaler
func (t *SkillTags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = normalizeTags(list)
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("skills must be a string or a list of strings")
	}
	*t = normalizeTags(strings.Split(single, ","))
	return nil
}

// normalizeTags trims whitespace, drops empties and removes duplicates while
// preserving first-seen order.
func normalizeTags(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepositoryInterface
	dispatcher  *events.Dispatcher
	validator   *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repository.ProjectRepositoryInterface,
	dispatcher *events.Dispatcher,
	validator *validator.Validate,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		dispatcher:  dispatcher,
		validator:   validator,
	}
}

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	Title            string    `json:"title" validate:"required,min=3,max=200"`
	ShortDescription string    `json:"short_description" validate:"required,max=300"`
	Description      string    `json:"description" validate:"required,min=10"`
	Category         string    `json:"category" validate:"required,max=100"`
	Difficulty       string    `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	Status           string    `json:"status" validate:"omitempty,oneof=Open Closed"`
	TeamSize         *int      `json:"team_size" validate:"omitempty,min=1,max=100"`
	DurationWeeks    *int      `json:"duration_weeks" validate:"omitempty,min=1,max=520"`
	RequiredSkills   SkillTags `json:"required_skills"`
	BannerURL        string    `json:"banner_url" validate:"omitempty,url,max=500"`
	Attachments      []string  `json:"attachments" validate:"omitempty,dive,url"`
	Featured         bool      `json:"featured"`
}

// ListProjectsRequest carries the optional listing filters
type ListProjectsRequest struct {
	Query            string
	Category         string
	Difficulty       string
	Status           string
	MaxDurationWeeks *int
}

// UserSummary is the compact user shape embedded in project responses
type UserSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// CollaboratorResponse is a membership row as seen through a project
type CollaboratorResponse struct {
	User        UserSummary             `json:"user"`
	Role        string                  `json:"role"`
	Status      models.MembershipStatus `json:"status"`
	AcceptedAt  *string                 `json:"accepted_at,omitempty"`
	Application *ApplicationPayload     `json:"application,omitempty"`
}

// ApplicationPayload is the applicant-supplied part of a membership row
type ApplicationPayload struct {
	FullName      string   `json:"full_name,omitempty"`
	Contact       string   `json:"contact,omitempty"`
	PortfolioURL  string   `json:"portfolio_url,omitempty"`
	SkillsOffered []string `json:"skills_offered,omitempty"`
	Availability  string   `json:"availability,omitempty"`
	Motivation    string   `json:"motivation,omitempty"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID               uuid.UUID              `json:"id"`
	Title            string                 `json:"title"`
	ShortDescription string                 `json:"short_description,omitempty"`
	Description      string                 `json:"description"`
	Category         string                 `json:"category"`
	Difficulty       string                 `json:"difficulty,omitempty"`
	Status           models.ProjectStatus   `json:"status"`
	TeamSize         *int                   `json:"team_size,omitempty"`
	DurationWeeks    *int                   `json:"duration_weeks,omitempty"`
	RequiredSkills   []string               `json:"required_skills"`
	BannerURL        string                 `json:"banner_url,omitempty"`
	Attachments      []string               `json:"attachments,omitempty"`
	Featured         bool                   `json:"featured"`
	Creator          UserSummary            `json:"creator"`
	Collaborators    []CollaboratorResponse `json:"collaborators"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at"`
}

// Create validates and stores a new project owned by the caller. The caller's
// own membership row is added afterwards through the post-commit hooks, so a
// failure there never undoes the project itself.
func (s *ProjectService) Create(creatorID string, req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	status := models.ProjectStatusOpen
	if req.Status != "" {
		status = models.ProjectStatus(req.Status)
	}

	project := &models.Project{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Category:         req.Category,
		Difficulty:       models.ProjectDifficulty(req.Difficulty),
		Status:           status,
		TeamSize:         req.TeamSize,
		DurationWeeks:    req.DurationWeeks,
		RequiredSkills:   models.StringList(req.RequiredSkills),
		BannerURL:        req.BannerURL,
		Attachments:      models.StringList(req.Attachments),
		Featured:         req.Featured,
		CreatorID:        creatorID,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.dispatcher.Dispatch(events.Event{
		Type:      events.ProjectCreated,
		ProjectID: project.ID.String(),
		UserID:    creatorID,
	})

	// Reload with associations so the response carries the creator and the
	// membership row the post-commit hook may have added
	stored, err := s.projectRepo.GetWithDetails(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created project: %w", err)
	}
	return s.toResponse(stored), nil
}

// List returns projects matching the given filters, newest first. Filter
// values of "All" mean no filtering on that field.
func (s *ProjectService) List(req *ListProjectsRequest) ([]ProjectResponse, error) {
	filter := repository.ProjectFilter{
		Query:            strings.TrimSpace(req.Query),
		Category:         normalizeFilter(req.Category),
		Difficulty:       normalizeFilter(req.Difficulty),
		Status:           normalizeFilter(req.Status),
		MaxDurationWeeks: req.MaxDurationWeeks,
	}

	projects, err := s.projectRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.toResponse(&projects[i])
	}
	return responses, nil
}

// GetByID returns a single project with its creator and collaborators
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.projectRepo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return s.toResponse(project), nil
}

// Delete removes a project and all of its membership rows. Only the creator
// may delete.
func (s *ProjectService) Delete(id uuid.UUID, callerID string) error {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	if project.CreatorID != callerID {
		return apperrors.ErrNotProjectCreator
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.dispatcher.Dispatch(events.Event{
		Type:      events.ProjectsChanged,
		ProjectID: id.String(),
		UserID:    callerID,
	})

	return nil
}

// normalizeFilter maps the UI's "All" selection to an empty (inactive) filter
func normalizeFilter(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "All") {
		return ""
	}
	return value
}

func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	resp := &ProjectResponse{
		ID:               project.ID,
		Title:            project.Title,
		ShortDescription: project.ShortDescription,
		Description:      project.Description,
		Category:         project.Category,
		Difficulty:       string(project.Difficulty),
		Status:           project.Status,
		TeamSize:         project.TeamSize,
		DurationWeeks:    project.DurationWeeks,
		RequiredSkills:   project.RequiredSkills,
		BannerURL:        project.BannerURL,
		Attachments:      project.Attachments,
		Featured:         project.Featured,
		Creator:          userSummary(&project.Creator, project.CreatorID),
		Collaborators:    make([]CollaboratorResponse, 0, len(project.Members)),
		CreatedAt:        project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        project.UpdatedAt.Format(time.RFC3339),
	}
	if resp.RequiredSkills == nil {
		resp.RequiredSkills = []string{}
	}

	for i := range project.Members {
		member := &project.Members[i]
		collab := CollaboratorResponse{
			User:   userSummary(&member.User, member.UserID),
			Role:   member.Role,
			Status: member.Status,
		}
		if member.AcceptedAt != nil {
			accepted := member.AcceptedAt.Format(time.RFC3339)
			collab.AcceptedAt = &accepted
		}
		if member.FullName != "" || member.Motivation != "" || len(member.SkillsOffered) > 0 {
			collab.Application = &ApplicationPayload{
				FullName:      member.FullName,
				Contact:       member.Contact,
				PortfolioURL:  member.PortfolioURL,
				SkillsOffered: member.SkillsOffered,
				Availability:  member.Availability,
				Motivation:    member.Motivation,
			}
		}
		resp.Collaborators = append(resp.Collaborators, collab)
	}

	return resp
}

func userSummary(user *models.User, fallbackID string) UserSummary {
	if user == nil || user.ID == "" {
		return UserSummary{ID: fallbackID}
	}
	return UserSummary{
		ID:        user.ID,
		Name:      user.DisplayName(),
		AvatarURL: user.AvatarURL,
	}
}
