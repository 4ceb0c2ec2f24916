package models

import "time"

// User represents an authenticated account. The primary key is the subject
// issued by the identity provider, so rows are created on first authenticated
// request rather than through a registration flow.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;size:128"`
	FirstName   string    `json:"first_name" gorm:"size:100"`
	LastName    string    `json:"last_name" gorm:"size:100"`
	Email       string    `json:"email" gorm:"size:255;index"`
	AvatarURL   string    `json:"avatar_url" gorm:"size:500"`
	GithubURL   string    `json:"github_url" gorm:"size:500"`
	LinkedinURL string    `json:"linkedin_url" gorm:"size:500"`
	WebsiteURL  string    `json:"website_url" gorm:"size:500"`
	Bio         string    `json:"bio" gorm:"type:text"`
	IsPublic    bool      `json:"is_public" gorm:"default:true"` // controls visibility in the public directory
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Skills []Skill `json:"skills,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// DisplayName returns the user's full name for list shaping
func (u *User) DisplayName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
