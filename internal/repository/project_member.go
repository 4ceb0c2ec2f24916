package repository

import (
	"skillsync-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectMemberRepository handles database operations for project memberships
type ProjectMemberRepository struct {
	db *gorm.DB
}

// NewProjectMemberRepository creates a new project member repository
func NewProjectMemberRepository(db *gorm.DB) *ProjectMemberRepository {
	return &ProjectMemberRepository{db: db}
}

// GetByProjectAndUser retrieves the membership row for a (project, user) pair
func (r *ProjectMemberRepository) GetByProjectAndUser(projectID uuid.UUID, userID string) (*models.ProjectMember, error) {
	var member models.ProjectMember
	err := r.db.First(&member, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Upsert inserts a new membership or, when the (project, user) row already
// exists, overwrites the application fields and role in place. Status and
// accepted_at are deliberately not in the assignment list: re-applying never
// resets a prior decision. The whole operation is a single statement, so
// racing applies resolve last-writer-wins at the database.
func (r *ProjectMemberRepository) Upsert(member *models.ProjectMember) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"role",
			"full_name",
			"contact",
			"portfolio_url",
			"skills_offered",
			"availability",
			"motivation",
			"agreed_to_guidelines",
			"updated_at",
		}),
	}).Create(member).Error
}

// Update saves a membership row (used for accept/reject decisions)
func (r *ProjectMemberRepository) Update(member *models.ProjectMember) error {
	return r.db.Save(member).Error
}

// Delete removes the (project, user) membership. GORM reports no error when
// nothing matched, which gives the idempotent-remove semantics the workflow
// relies on.
func (r *ProjectMemberRepository) Delete(projectID uuid.UUID, userID string) error {
	return r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectMember{}).Error
}

// ListByProject retrieves all membership rows for a project with their users
func (r *ProjectMemberRepository) ListByProject(projectID uuid.UUID) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	err := r.db.Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}
