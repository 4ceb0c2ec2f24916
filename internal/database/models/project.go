package models

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusOpen   ProjectStatus = "Open"
	ProjectStatusClosed ProjectStatus = "Closed"
)

// ProjectDifficulty represents the difficulty rating of a project
type ProjectDifficulty string

const (
	DifficultyBeginner     ProjectDifficulty = "Beginner"
	DifficultyIntermediate ProjectDifficulty = "Intermediate"
	DifficultyAdvanced     ProjectDifficulty = "Advanced"
)

// Project represents a collaborative project listed for matching. Exactly one
// user creates it; deletion cascades to its memberships.
type Project struct {
	BaseModel
	Title            string            `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	ShortDescription string            `json:"short_description" gorm:"not null;size:300" validate:"required,max=300"`
	Description      string            `json:"description" gorm:"type:text;not null" validate:"required"`
	Category         string            `json:"category" gorm:"not null;size:100;index" validate:"required"`
	Difficulty       ProjectDifficulty `json:"difficulty" gorm:"type:varchar(20);not null;index" validate:"required"`
	Status           ProjectStatus     `json:"status" gorm:"type:varchar(20);not null;default:'Open'"`
	TeamSize         *int              `json:"team_size,omitempty"`
	DurationWeeks    *int              `json:"duration_weeks,omitempty"`
	RequiredSkills   StringList        `json:"required_skills" gorm:"type:jsonb"`
	BannerURL        string            `json:"banner_url" gorm:"size:500"`
	Attachments      StringList        `json:"attachments" gorm:"type:jsonb"`
	Featured         bool              `json:"featured" gorm:"default:false"`
	CreatorID        string            `json:"creator_id" gorm:"not null;size:128;index" validate:"required"`

	// Relationships
	Creator User            `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Members []ProjectMember `json:"members,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
