package repository

import (
	"skillsync-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectFilter narrows project listings. Zero values mean "no filter";
// callers normalize the UI's "All" sentinel before reaching the repository.
type ProjectFilter struct {
	Query            string
	Category         string
	Difficulty       string
	Status           string
	MaxDurationWeeks *int
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	// Ensure inserts the user if absent and leaves an existing row untouched,
	// so profile edits survive subsequent authenticated requests.
	Ensure(user *models.User) error
	GetByID(id string) (*models.User, error)
	Update(user *models.User) error
	ListPublic() ([]models.User, error)
}

// SkillRepositoryInterface defines the interface for skill repository operations
type SkillRepositoryInterface interface {
	Create(skill *models.Skill) error
	GetByID(id uuid.UUID) (*models.Skill, error)
	GetByUserID(userID string) ([]models.Skill, error)
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	// GetWithDetails loads the project with its creator and members
	// (including each member's user) for display shaping.
	GetWithDetails(id uuid.UUID) (*models.Project, error)
	// List returns matching projects newest-first with creator and members
	// preloaded.
	List(filter ProjectFilter) ([]models.Project, error)
	// Delete removes the project's memberships and then the project itself.
	Delete(id uuid.UUID) error
}

// ProjectMemberRepositoryInterface defines the interface for membership
// repository operations
type ProjectMemberRepositoryInterface interface {
	GetByProjectAndUser(projectID uuid.UUID, userID string) (*models.ProjectMember, error)
	// Upsert inserts a new membership or overwrites the application fields and
	// role of the existing (project, user) row, leaving status and accepted_at
	// untouched.
	Upsert(member *models.ProjectMember) error
	Update(member *models.ProjectMember) error
	// Delete removes the (project, user) membership; deleting a missing row is
	// not an error.
	Delete(projectID uuid.UUID, userID string) error
	ListByProject(projectID uuid.UUID) ([]models.ProjectMember, error)
}
