package service

import (
	"errors"
	"fmt"
	"time"

	"skillsync-backend/internal/database/models"
	apperrors "skillsync-backend/internal/errors"
	"skillsync-backend/internal/events"
	"skillsync-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership decision actions accepted by Respond
const (
	MemberActionAccept = "accept"
	MemberActionReject = "reject"
)

// MembershipService handles the application workflow: apply, accept/reject,
// remove. It is the only service where a second party's authorization (the
// project creator) gates transitions.
type MembershipService struct {
	projectRepo repository.ProjectRepositoryInterface
	memberRepo  repository.ProjectMemberRepositoryInterface
	dispatcher  *events.Dispatcher
	validator   *validator.Validate
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	projectRepo repository.ProjectRepositoryInterface,
	memberRepo repository.ProjectMemberRepositoryInterface,
	dispatcher *events.Dispatcher,
	validator *validator.Validate,
) *MembershipService {
	return &MembershipService{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		dispatcher:  dispatcher,
		validator:   validator,
	}
}

// ApplyRequest represents an application to join a project
type ApplyRequest struct {
	ProjectID          uuid.UUID `json:"project_id" validate:"required"`
	PreferredRole      string    `json:"preferred_role" validate:"max=100"`
	FullName           string    `json:"full_name" validate:"max=200"`
	Contact            string    `json:"contact" validate:"max=255"`
	PortfolioURL       string    `json:"portfolio_url" validate:"omitempty,url,max=500"`
	SkillsOffered      SkillTags `json:"skills_offered"`
	Availability       string    `json:"availability" validate:"max=200"`
	Motivation         string    `json:"motivation"`
	AgreedToGuidelines bool      `json:"agreed_to_guidelines"`
}

// MembershipResponse represents a membership row in API responses
type MembershipResponse struct {
	ID                 uuid.UUID               `json:"id"`
	ProjectID          uuid.UUID               `json:"project_id"`
	UserID             string                  `json:"user_id"`
	Role               string                  `json:"role"`
	Status             models.MembershipStatus `json:"status"`
	FullName           string                  `json:"full_name,omitempty"`
	Contact            string                  `json:"contact,omitempty"`
	PortfolioURL       string                  `json:"portfolio_url,omitempty"`
	SkillsOffered      []string                `json:"skills_offered,omitempty"`
	Availability       string                  `json:"availability,omitempty"`
	Motivation         string                  `json:"motivation,omitempty"`
	AgreedToGuidelines bool                    `json:"agreed_to_guidelines"`
	AcceptedAt         *string                 `json:"accepted_at,omitempty"`
	CreatedAt          string                  `json:"created_at"`
	UpdatedAt          string                  `json:"updated_at"`
}

// Apply creates or refreshes the caller's application to a project. The
// guidelines acknowledgement is checked before anything is written; an upsert
// on (caller, project) keeps at most one row per pair, and a re-apply leaves
// any prior decision (status, accepted_at) untouched.
func (s *MembershipService) Apply(callerID string, req *ApplyRequest) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if !req.AgreedToGuidelines {
		return nil, apperrors.ErrGuidelinesNotAgreed
	}

	role := req.PreferredRole
	if role == "" {
		role = models.DefaultMemberRole
	}

	member := &models.ProjectMember{
		ProjectID:          req.ProjectID,
		UserID:             callerID,
		Role:               role,
		FullName:           req.FullName,
		Contact:            req.Contact,
		PortfolioURL:       req.PortfolioURL,
		SkillsOffered:      models.StringList(req.SkillsOffered),
		Availability:       req.Availability,
		Motivation:         req.Motivation,
		AgreedToGuidelines: true,
		Status:             models.MembershipStatusApplied,
	}
	if err := s.memberRepo.Upsert(member); err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}

	// Re-read so the response reflects the stored row, including a prior
	// decision the upsert did not touch
	stored, err := s.memberRepo.GetByProjectAndUser(req.ProjectID, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved application: %w", err)
	}

	s.dispatcher.Dispatch(events.Event{
		Type:      events.MembersChanged,
		ProjectID: req.ProjectID.String(),
		UserID:    callerID,
	})

	return s.toResponse(stored), nil
}

// Respond records the creator's decision on an application. Accept stamps the
// acceptance time; reject clears it. Only the project creator may decide, and
// the decision is an unconditional overwrite (re-deciding an already-decided
// row is permitted).
func (s *MembershipService) Respond(callerID string, projectID uuid.UUID, targetUserID, action string) (*MembershipResponse, error) {
	if action != MemberActionAccept && action != MemberActionReject {
		return nil, apperrors.ErrInvalidMemberAction
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project.CreatorID != callerID {
		return nil, apperrors.ErrNotProjectCreator
	}

	member, err := s.memberRepo.GetByProjectAndUser(projectID, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}

	if action == MemberActionAccept {
		now := time.Now()
		member.Status = models.MembershipStatusAccepted
		member.AcceptedAt = &now
	} else {
		member.Status = models.MembershipStatusRejected
		member.AcceptedAt = nil
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update membership: %w", err)
	}

	s.dispatcher.Dispatch(events.Event{
		Type:      events.MembersChanged,
		ProjectID: projectID.String(),
		UserID:    targetUserID,
	})

	return s.toResponse(member), nil
}

// Remove deletes the (project, user) membership. The project creator may
// remove anyone; everyone else may remove only themself. Removing a
// membership that does not exist succeeds.
func (s *MembershipService) Remove(callerID string, projectID uuid.UUID, targetUserID string) error {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to load project: %w", err)
	}
	if callerID != project.CreatorID && callerID != targetUserID {
		return apperrors.ErrNotMemberOrCreator
	}

	if err := s.memberRepo.Delete(projectID, targetUserID); err != nil {
		return fmt.Errorf("failed to remove membership: %w", err)
	}

	s.dispatcher.Dispatch(events.Event{
		Type:      events.MembersChanged,
		ProjectID: projectID.String(),
		UserID:    targetUserID,
	})

	return nil
}

// ListByProject returns every membership row for a project, including
// undecided and rejected applications
func (s *MembershipService) ListByProject(projectID uuid.UUID) ([]MembershipResponse, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	members, err := s.memberRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	responses := make([]MembershipResponse, len(members))
	for i := range members {
		responses[i] = *s.toResponse(&members[i])
	}
	return responses, nil
}

func (s *MembershipService) toResponse(member *models.ProjectMember) *MembershipResponse {
	resp := &MembershipResponse{
		ID:                 member.ID,
		ProjectID:          member.ProjectID,
		UserID:             member.UserID,
		Role:               member.Role,
		Status:             member.Status,
		FullName:           member.FullName,
		Contact:            member.Contact,
		PortfolioURL:       member.PortfolioURL,
		SkillsOffered:      member.SkillsOffered,
		Availability:       member.Availability,
		Motivation:         member.Motivation,
		AgreedToGuidelines: member.AgreedToGuidelines,
		CreatedAt:          member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          member.UpdatedAt.Format(time.RFC3339),
	}
	if member.AcceptedAt != nil {
		accepted := member.AcceptedAt.Format(time.RFC3339)
		resp.AcceptedAt = &accepted
	}
	return resp
}
