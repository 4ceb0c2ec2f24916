package repository

import (
	"skillsync-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithDetails retrieves a project with its creator and members (including
// each member's user) for display shaping
func (r *ProjectRepository) GetWithDetails(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Creator").
		Preload("Members").
		Preload("Members.User").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves projects matching the filter, newest-first, with creator and
// members preloaded. The text query matches title, short description, or any
// required-skill tag, case-insensitively.
func (r *ProjectRepository) List(filter ProjectFilter) ([]models.Project, error) {
	query := r.db.Model(&models.Project{}).
		Preload("Creator").
		Preload("Members").
		Preload("Members.User")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"title ILIKE ? OR short_description ILIKE ? OR required_skills::text ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.MaxDurationWeeks != nil {
		// Projects without a duration are never excluded by this filter
		query = query.Where("duration_weeks IS NULL OR duration_weeks <= ?", *filter.MaxDurationWeeks)
	}

	var projects []models.Project
	err := query.Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Delete removes the project's memberships and then the project. Each delete
// is a single statement; the membership cascade also exists as a foreign-key
// constraint.
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	if err := r.db.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
