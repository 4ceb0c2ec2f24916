package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"skillsync-backend/internal/config"
	"skillsync-backend/internal/database"
	"skillsync-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	ID          string `yaml:"id"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Email       string `yaml:"email"`
	AvatarURL   string `yaml:"avatar_url,omitempty"`
	GithubURL   string `yaml:"github_url,omitempty"`
	LinkedinURL string `yaml:"linkedin_url,omitempty"`
	Bio         string `yaml:"bio,omitempty"`
	IsPublic    *bool  `yaml:"is_public,omitempty"`
}

type SkillData struct {
	UserID   string `yaml:"user_id"`
	Name     string `yaml:"name"`
	Level    string `yaml:"level"`
	Category string `yaml:"category"`
	Type     string `yaml:"type"`
}

type ProjectData struct {
	Title            string   `yaml:"title"`
	ShortDescription string   `yaml:"short_description"`
	Description      string   `yaml:"description"`
	Category         string   `yaml:"category"`
	Difficulty       string   `yaml:"difficulty"`
	Status           string   `yaml:"status,omitempty"`
	TeamSize         *int     `yaml:"team_size,omitempty"`
	DurationWeeks    *int     `yaml:"duration_weeks,omitempty"`
	RequiredSkills   []string `yaml:"required_skills,omitempty"`
	BannerURL        string   `yaml:"banner_url,omitempty"`
	Featured         bool     `yaml:"featured,omitempty"`
	CreatorID        string   `yaml:"creator_id"`
}

type MemberData struct {
	ProjectTitle       string   `yaml:"project_title"`
	UserID             string   `yaml:"user_id"`
	Role               string   `yaml:"role,omitempty"`
	FullName           string   `yaml:"full_name,omitempty"`
	Contact            string   `yaml:"contact,omitempty"`
	SkillsOffered      []string `yaml:"skills_offered,omitempty"`
	Availability       string   `yaml:"availability,omitempty"`
	Motivation         string   `yaml:"motivation,omitempty"`
	AgreedToGuidelines bool     `yaml:"agreed_to_guidelines,omitempty"`
	Status             string   `yaml:"status,omitempty"`
}

// SeedFile holds every entity group loaded in one pass
type SeedFile struct {
	Users    []UserData    `yaml:"users"`
	Skills   []SkillData   `yaml:"skills"`
	Projects []ProjectData `yaml:"projects"`
	Members  []MemberData  `yaml:"members"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML seed file...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.UsesFileStore() {
		log.Fatal("Seeding requires STORAGE_DRIVER=postgres")
	}

	seedPath := cfg.SeedFile
	if seedPath == "" {
		seedPath = "scripts/data/seed.yaml"
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadSeedFile(db, seedPath); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	userCreated := 0
	for _, userData := range seed.Users {
		created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.ID, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(seed.Users))

	skillCreated := 0
	for _, skillData := range seed.Skills {
		created, err := createSkill(db, skillData)
		if err != nil {
			return fmt.Errorf("failed to create skill %s for %s: %w", skillData.Name, skillData.UserID, err)
		}
		if created {
			skillCreated++
		}
	}
	log.Printf("📋 Skills: %d created, %d total", skillCreated, len(seed.Skills))

	// Projects next so members can resolve them by title
	projectMap := make(map[string]*models.Project)
	projectCreated := 0
	for _, projectData := range seed.Projects {
		project, created, err := createProject(db, projectData)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", projectData.Title, err)
		}
		projectMap[projectData.Title] = project
		if created {
			projectCreated++
		}
	}
	log.Printf("📋 Projects: %d created, %d total", projectCreated, len(seed.Projects))

	memberCreated := 0
	for _, memberData := range seed.Members {
		created, err := createMember(db, memberData, projectMap)
		if err != nil {
			return fmt.Errorf("failed to create member %s on %s: %w", memberData.UserID, memberData.ProjectTitle, err)
		}
		if created {
			memberCreated++
		}
	}
	log.Printf("📋 Members: %d created, %d total", memberCreated, len(seed.Members))

	return nil
}

func createUser(db *gorm.DB, userData UserData) (bool, error) {
	var user models.User
	if err := db.Where("id = ?", userData.ID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			isPublic := true
			if userData.IsPublic != nil {
				isPublic = *userData.IsPublic
			}

			user = models.User{
				ID:          userData.ID,
				FirstName:   userData.FirstName,
				LastName:    userData.LastName,
				Email:       userData.Email,
				AvatarURL:   userData.AvatarURL,
				GithubURL:   userData.GithubURL,
				LinkedinURL: userData.LinkedinURL,
				Bio:         userData.Bio,
				IsPublic:    isPublic,
			}

			if err := db.Create(&user).Error; err != nil {
				return false, fmt.Errorf("failed to create user: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	return false, nil // created = false (existing)
}

func createSkill(db *gorm.DB, skillData SkillData) (bool, error) {
	var skill models.Skill
	err := db.Where("user_id = ? AND name = ? AND type = ?", skillData.UserID, skillData.Name, skillData.Type).
		First(&skill).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			skill = models.Skill{
				UserID:   skillData.UserID,
				Name:     skillData.Name,
				Level:    models.SkillLevel(skillData.Level),
				Category: skillData.Category,
				Type:     models.SkillType(skillData.Type),
			}

			if err := db.Create(&skill).Error; err != nil {
				return false, fmt.Errorf("failed to create skill: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query skill: %w", err)
	}

	return false, nil // created = false (existing)
}

func createProject(db *gorm.DB, projectData ProjectData) (*models.Project, bool, error) {
	var project models.Project
	err := db.Where("title = ? AND creator_id = ?", projectData.Title, projectData.CreatorID).
		First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.ProjectStatusOpen
			if projectData.Status != "" {
				status = models.ProjectStatus(projectData.Status)
			}

			project = models.Project{
				Title:            projectData.Title,
				ShortDescription: projectData.ShortDescription,
				Description:      projectData.Description,
				Category:         projectData.Category,
				Difficulty:       models.ProjectDifficulty(projectData.Difficulty),
				Status:           status,
				TeamSize:         projectData.TeamSize,
				DurationWeeks:    projectData.DurationWeeks,
				RequiredSkills:   models.StringList(projectData.RequiredSkills),
				BannerURL:        projectData.BannerURL,
				Featured:         projectData.Featured,
				CreatorID:        projectData.CreatorID,
			}

			if err := db.Create(&project).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create project: %w", err)
			}

			// The creator always holds an accepted membership on their own
			// project, mirroring what project creation does at runtime.
			now := time.Now()
			creatorRow := models.ProjectMember{
				ProjectID:          project.ID,
				UserID:             project.CreatorID,
				Role:               "Creator",
				AgreedToGuidelines: true,
				Status:             models.MembershipStatusAccepted,
				AcceptedAt:         &now,
			}
			if err := db.Create(&creatorRow).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create creator membership: %w", err)
			}

			return &project, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query project: %w", err)
	}

	return &project, false, nil // created = false (existing)
}

func createMember(db *gorm.DB, memberData MemberData, projectMap map[string]*models.Project) (bool, error) {
	project := projectMap[memberData.ProjectTitle]
	if project == nil {
		return false, fmt.Errorf("project %s not found for member %s", memberData.ProjectTitle, memberData.UserID)
	}

	var member models.ProjectMember
	err := db.Where("project_id = ? AND user_id = ?", project.ID, memberData.UserID).
		First(&member).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			role := memberData.Role
			if role == "" {
				role = models.DefaultMemberRole
			}
			status := models.MembershipStatusApplied
			if memberData.Status != "" {
				status = models.MembershipStatus(memberData.Status)
			}

			member = models.ProjectMember{
				ProjectID:          project.ID,
				UserID:             memberData.UserID,
				Role:               role,
				FullName:           memberData.FullName,
				Contact:            memberData.Contact,
				SkillsOffered:      models.StringList(memberData.SkillsOffered),
				Availability:       memberData.Availability,
				Motivation:         memberData.Motivation,
				AgreedToGuidelines: memberData.AgreedToGuidelines,
				Status:             status,
			}
			if status == models.MembershipStatusAccepted {
				now := time.Now()
				member.AcceptedAt = &now
			}

			if err := db.Create(&member).Error; err != nil {
				return false, fmt.Errorf("failed to create member: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query member: %w", err)
	}

	return false, nil // created = false (existing)
}
