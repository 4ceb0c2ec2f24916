package service

import (
	"errors"
	"fmt"
	"time"

	"skillsync-backend/internal/database/models"
	apperrors "skillsync-backend/internal/errors"
	"skillsync-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserService handles user profile and directory logic
type UserService struct {
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		userRepo:  userRepo,
		validator: validator,
	}
}

// Identity is the subset of token claims persisted on first sight of a user
type Identity struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	AvatarURL string
}

// UpdateProfileRequest represents a profile update; nil fields are left unchanged
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	AvatarURL   *string `json:"avatar_url" validate:"omitempty,url,max=500"`
	GithubURL   *string `json:"github_url" validate:"omitempty,url,max=500"`
	LinkedinURL *string `json:"linkedin_url" validate:"omitempty,url,max=500"`
	WebsiteURL  *string `json:"website_url" validate:"omitempty,url,max=500"`
	Bio         *string `json:"bio" validate:"omitempty,max=2000"`
	IsPublic    *bool   `json:"is_public"`
}

// ProfileResponse represents a user profile in API responses
type ProfileResponse struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	AvatarURL   string          `json:"avatar_url,omitempty"`
	GithubURL   string          `json:"github_url,omitempty"`
	LinkedinURL string          `json:"linkedin_url,omitempty"`
	WebsiteURL  string          `json:"website_url,omitempty"`
	Bio         string          `json:"bio,omitempty"`
	IsPublic    bool            `json:"is_public"`
	Skills      []SkillResponse `json:"skills,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

// Ensure persists the identity on its first authenticated request. An
// existing row is left untouched so later profile edits are not overwritten
// by stale token claims.
func (s *UserService) Ensure(identity *Identity) error {
	if identity.ID == "" {
		return apperrors.ErrNotAuthenticated
	}
	user := &models.User{
		ID:        identity.ID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Email:     identity.Email,
		AvatarURL: identity.AvatarURL,
		IsPublic:  true,
	}
	if err := s.userRepo.Ensure(user); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

// GetProfile returns the given user's profile with skills
func (s *UserService) GetProfile(id string) (*ProfileResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toProfileResponse(user), nil
}

// UpdateProfile applies the non-nil fields of the request to the caller's profile
func (s *UserService) UpdateProfile(id string, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.GithubURL != nil {
		user.GithubURL = *req.GithubURL
	}
	if req.LinkedinURL != nil {
		user.LinkedinURL = *req.LinkedinURL
	}
	if req.WebsiteURL != nil {
		user.WebsiteURL = *req.WebsiteURL
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.IsPublic != nil {
		user.IsPublic = *req.IsPublic
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return toProfileResponse(user), nil
}

// Directory returns every public profile with skills, for the people browser
func (s *UserService) Directory() ([]ProfileResponse, error) {
	users, err := s.userRepo.ListPublic()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]ProfileResponse, len(users))
	for i := range users {
		responses[i] = *toProfileResponse(&users[i])
	}
	return responses, nil
}

func toProfileResponse(user *models.User) *ProfileResponse {
	resp := &ProfileResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		AvatarURL:   user.AvatarURL,
		GithubURL:   user.GithubURL,
		LinkedinURL: user.LinkedinURL,
		WebsiteURL:  user.WebsiteURL,
		Bio:         user.Bio,
		IsPublic:    user.IsPublic,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
	for i := range user.Skills {
		resp.Skills = append(resp.Skills, *toSkillResponse(&user.Skills[i]))
	}
	return resp
}
