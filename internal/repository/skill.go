package repository

import (
	"skillsync-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillRepository handles database operations for skills
type SkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create inserts a new skill
func (r *SkillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// GetByID retrieves a skill by ID
func (r *SkillRepository) GetByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetByUserID retrieves all skills owned by a user, newest-first
func (r *SkillRepository) GetByUserID(userID string) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

// Delete removes a skill by ID
func (r *SkillRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}
