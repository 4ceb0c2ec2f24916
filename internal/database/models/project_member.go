package models

import (
	"time"

	"github.com/google/uuid"
)

// MembershipStatus represents the lifecycle state of a project membership.
// APPLIED is the initial state; ACCEPTED and REJECTED are decisions made by
// the project's creator. Removal is deletion of the row, not a state.
type MembershipStatus string

const (
	MembershipStatusApplied  MembershipStatus = "APPLIED"
	MembershipStatusAccepted MembershipStatus = "ACCEPTED"
	MembershipStatusRejected MembershipStatus = "REJECTED"
)

// DefaultMemberRole is used when an applicant does not name a preferred role.
const DefaultMemberRole = "Contributor"

// ProjectMember records one user's relationship to one project: the
// application they submitted, the role they want, and the creator's decision.
// A user has at most one row per project; re-applying updates the row in
// place.
type ProjectMember struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_members_project_user" validate:"required"`
	UserID    string    `json:"user_id" gorm:"not null;size:128;uniqueIndex:idx_project_members_project_user" validate:"required"`
	Role      string    `json:"role" gorm:"not null;size:100;default:'Contributor'"`

	// Application payload
	FullName           string     `json:"full_name" gorm:"size:200"`
	Contact            string     `json:"contact" gorm:"size:255"`
	PortfolioURL       string     `json:"portfolio_url" gorm:"size:500"`
	SkillsOffered      StringList `json:"skills_offered" gorm:"type:jsonb"`
	Availability       string     `json:"availability" gorm:"size:200"`
	Motivation         string     `json:"motivation" gorm:"type:text"`
	AgreedToGuidelines bool       `json:"agreed_to_guidelines" gorm:"not null;default:false"`

	Status     MembershipStatus `json:"status" gorm:"type:varchar(20);not null;default:'APPLIED';index"`
	AcceptedAt *time.Time       `json:"accepted_at,omitempty"`

	// Relationships
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for ProjectMember
func (ProjectMember) TableName() string {
	return "project_members"
}
