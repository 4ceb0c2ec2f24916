package service

import (
	"errors"
	"fmt"
	"time"

	"skillsync-backend/internal/database/models"
	apperrors "skillsync-backend/internal/errors"
	"skillsync-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillService handles skill business logic
type SkillService struct {
	skillRepo repository.SkillRepositoryInterface
	validator *validator.Validate
}

// NewSkillService creates a new skill service
func NewSkillService(skillRepo repository.SkillRepositoryInterface, validator *validator.Validate) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
		validator: validator,
	}
}

// CreateSkillRequest represents a request to add a skill to the caller's profile
type CreateSkillRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Level    string `json:"level" validate:"required,oneof=Beginner Intermediate Advanced Expert"`
	Category string `json:"category" validate:"required,max=100"`
	Type     string `json:"type" validate:"required,oneof=learned taught"`
}

// SkillResponse represents a skill in API responses
type SkillResponse struct {
	ID        uuid.UUID         `json:"id"`
	UserID    string            `json:"user_id"`
	Name      string            `json:"name"`
	Level     models.SkillLevel `json:"level"`
	Category  string            `json:"category"`
	Type      models.SkillType  `json:"type"`
	CreatedAt string            `json:"created_at"`
}

// List returns the caller's skills
func (s *SkillService) List(userID string) ([]SkillResponse, error) {
	skills, err := s.skillRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	responses := make([]SkillResponse, len(skills))
	for i := range skills {
		responses[i] = *toSkillResponse(&skills[i])
	}
	return responses, nil
}

// Create validates and stores a new skill on the caller's profile
func (s *SkillService) Create(userID string, req *CreateSkillRequest) (*SkillResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	skill := &models.Skill{
		UserID:   userID,
		Name:     req.Name,
		Level:    models.SkillLevel(req.Level),
		Category: req.Category,
		Type:     models.SkillType(req.Type),
	}
	if err := s.skillRepo.Create(skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return toSkillResponse(skill), nil
}

// Delete removes a skill. Only its owner may delete it.
func (s *SkillService) Delete(id uuid.UUID, callerID string) error {
	skill, err := s.skillRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSkillNotFound
		}
		return fmt.Errorf("failed to get skill: %w", err)
	}
	if skill.UserID != callerID {
		return apperrors.ErrNotSkillOwner
	}

	if err := s.skillRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

func toSkillResponse(skill *models.Skill) *SkillResponse {
	return &SkillResponse{
		ID:        skill.ID,
		UserID:    skill.UserID,
		Name:      skill.Name,
		Level:     skill.Level,
		Category:  skill.Category,
		Type:      skill.Type,
		CreatedAt: skill.CreatedAt.Format(time.RFC3339),
	}
}
