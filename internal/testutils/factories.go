package testutils

import (
	"fmt"
	"sync/atomic"

	"skillsync-backend/internal/database/models"
)

// FactorySet bundles test-data factories for all entities
type FactorySet struct {
	User          *UserFactory
	Skill         *SkillFactory
	Project       *ProjectFactory
	ProjectMember *ProjectMemberFactory
}

// NewFactorySet creates a factory set with fresh counters
func NewFactorySet() *FactorySet {
	counter := &atomic.Int64{}
	return &FactorySet{
		User:          &UserFactory{counter: counter},
		Skill:         &SkillFactory{counter: counter},
		Project:       &ProjectFactory{counter: counter},
		ProjectMember: &ProjectMemberFactory{counter: counter},
	}
}

// UserFactory builds user rows
type UserFactory struct {
	counter *atomic.Int64
}

// Create builds a user with unique id and email
func (f *UserFactory) Create() *models.User {
	n := f.counter.Add(1)
	return &models.User{
		ID:        fmt.Sprintf("user-%d", n),
		FirstName: "Test",
		LastName:  fmt.Sprintf("User%d", n),
		Email:     fmt.Sprintf("user%d@example.com", n),
		IsPublic:  true,
	}
}

// WithID builds a user with a fixed id
func (f *UserFactory) WithID(id string) *models.User {
	user := f.Create()
	user.ID = id
	return user
}

// Private builds a user hidden from the directory
func (f *UserFactory) Private() *models.User {
	user := f.Create()
	user.IsPublic = false
	return user
}

// SkillFactory builds skill rows
type SkillFactory struct {
	counter *atomic.Int64
}

// Create builds a skill; the caller sets UserID
func (f *SkillFactory) Create() *models.Skill {
	n := f.counter.Add(1)
	return &models.Skill{
		Name:     fmt.Sprintf("Skill %d", n),
		Level:    models.SkillLevelIntermediate,
		Category: "Backend",
		Type:     models.SkillTypeLearned,
	}
}

// ForUser builds a skill owned by the given user
func (f *SkillFactory) ForUser(userID string) *models.Skill {
	skill := f.Create()
	skill.UserID = userID
	return skill
}

// ProjectFactory builds project rows
type ProjectFactory struct {
	counter *atomic.Int64
}

// Create builds an open project; the caller sets CreatorID
func (f *ProjectFactory) Create() *models.Project {
	n := f.counter.Add(1)
	return &models.Project{
		Title:            fmt.Sprintf("Project %d", n),
		ShortDescription: "A project for testing",
		Description:      "A longer description of a project used in tests",
		Category:         "Web Development",
		Difficulty:       models.DifficultyIntermediate,
		Status:           models.ProjectStatusOpen,
		RequiredSkills:   models.StringList{"Go", "React"},
	}
}

// ForCreator builds a project owned by the given user
func (f *ProjectFactory) ForCreator(creatorID string) *models.Project {
	project := f.Create()
	project.CreatorID = creatorID
	return project
}

// ProjectMemberFactory builds membership rows
type ProjectMemberFactory struct {
	counter *atomic.Int64
}

// Create builds an applied membership; the caller sets ProjectID and UserID
func (f *ProjectMemberFactory) Create() *models.ProjectMember {
	n := f.counter.Add(1)
	return &models.ProjectMember{
		Role:               models.DefaultMemberRole,
		FullName:           fmt.Sprintf("Applicant %d", n),
		Contact:            fmt.Sprintf("applicant%d@example.com", n),
		SkillsOffered:      models.StringList{"Go"},
		Availability:       "10 hours per week",
		Motivation:         "Looking to collaborate",
		AgreedToGuidelines: true,
		Status:             models.MembershipStatusApplied,
	}
}

// For builds an applied membership linking the given project and user
func (f *ProjectMemberFactory) For(project *models.Project, userID string) *models.ProjectMember {
	member := f.Create()
	member.ProjectID = project.ID
	member.UserID = userID
	return member
}
