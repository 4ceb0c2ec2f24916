package models

// SkillLevel represents the proficiency level of a skill
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
	SkillLevelExpert       SkillLevel = "Expert"
)

// SkillType discriminates between skills a user has and skills they can teach
type SkillType string

const (
	SkillTypeLearned SkillType = "learned"
	SkillTypeTaught  SkillType = "taught"
)

// Skill represents a single skill entry owned by a user. Skills have no
// relation to projects; changing one is delete-then-recreate at the API
// boundary.
type Skill struct {
	BaseModel
	UserID   string     `json:"user_id" gorm:"not null;size:128;index" validate:"required"`
	Name     string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Level    SkillLevel `json:"level" gorm:"type:varchar(20);not null" validate:"required"`
	Category string     `json:"category" gorm:"not null;size:100" validate:"required"`
	Type     SkillType  `json:"type" gorm:"type:varchar(20);not null;default:'learned'" validate:"required"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Skill
func (Skill) TableName() string {
	return "skills"
}
