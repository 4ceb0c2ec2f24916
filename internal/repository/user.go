package repository

import (
	"skillsync-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure inserts the user if no row with its ID exists. An existing row is
// left untouched so token claims never clobber profile edits.
func (r *UserRepository) Ensure(user *models.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(user).Error
}

// GetByID retrieves a user with their skills by identity-provider subject
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Skills").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update saves profile edits without touching the skill rows
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Omit(clause.Associations).Save(user).Error
}

// ListPublic retrieves all users visible in the public directory, with their
// skills, newest-first
func (r *UserRepository) ListPublic() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Skills").
		Where("is_public = ?", true).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
