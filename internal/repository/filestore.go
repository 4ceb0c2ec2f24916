package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"skillsync-backend/internal/database/models"
	apperrors "skillsync-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileStore is the degraded, file-based persistence path selected with
// STORAGE_DRIVER=file. It holds the whole data set as one JSON document
// (projects with embedded members, plus users and skills) guarded by a mutex
// and rewritten atomically on every mutation. It offers the same contract as
// the Postgres repositories with weaker guarantees: no foreign-key
// enforcement and single-process write safety only.
//
// Not-found conditions are reported as gorm.ErrRecordNotFound so the service
// layer maps errors identically for both drivers.
type FileStore struct {
	path string

	mu  sync.Mutex
	doc fileDocument
}

type fileDocument struct {
	Users    []models.User    `json:"users"`
	Skills   []models.Skill   `json:"skills"`
	Projects []models.Project `json:"projects"`
}

// OpenFileStore loads (or creates) the JSON document at path
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.doc); err != nil {
			return nil, fmt.Errorf("parse store file: %w", err)
		}
	}
	return s, nil
}

// persistLocked writes the document via a temp file and rename. Callers must
// hold s.mu (or be single-threaded during open).
func (s *FileStore) persistLocked() error {
	data, err := json.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return os.Rename(tmp, s.path)
}

// Ping reports whether the backing file is still accessible
func (s *FileStore) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// Users returns the user repository view of the store
func (s *FileStore) Users() *FileUserRepository { return &FileUserRepository{store: s} }

// Skills returns the skill repository view of the store
func (s *FileStore) Skills() *FileSkillRepository { return &FileSkillRepository{store: s} }

// Projects returns the project repository view of the store
func (s *FileStore) Projects() *FileProjectRepository { return &FileProjectRepository{store: s} }

// Members returns the membership repository view of the store
func (s *FileStore) Members() *FileProjectMemberRepository {
	return &FileProjectMemberRepository{store: s}
}

// ------------------------------
// Users
// ------------------------------

// FileUserRepository implements UserRepositoryInterface over the JSON store
type FileUserRepository struct {
	store *FileStore
}

func (r *FileUserRepository) Ensure(user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Users {
		if s.doc.Users[i].ID == user.ID {
			return nil
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.doc.Users = append(s.doc.Users, *user)
	return s.persistLocked()
}

func (r *FileUserRepository) GetByID(id string) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Users {
		if s.doc.Users[i].ID == id {
			user := s.doc.Users[i]
			user.Skills = s.skillsOfLocked(id)
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *FileUserRepository) Update(user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Users {
		if s.doc.Users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			user.Skills = nil
			s.doc.Users[i] = *user
			return s.persistLocked()
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *FileUserRepository) ListPublic() ([]models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0)
	for i := range s.doc.Users {
		if !s.doc.Users[i].IsPublic {
			continue
		}
		user := s.doc.Users[i]
		user.Skills = s.skillsOfLocked(user.ID)
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (s *FileStore) skillsOfLocked(userID string) []models.Skill {
	var skills []models.Skill
	for i := range s.doc.Skills {
		if s.doc.Skills[i].UserID == userID {
			skills = append(skills, s.doc.Skills[i])
		}
	}
	return skills
}

// ------------------------------
// Skills
// ------------------------------

// FileSkillRepository implements SkillRepositoryInterface over the JSON store
type FileSkillRepository struct {
	store *FileStore
}

func (r *FileSkillRepository) Create(skill *models.Skill) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	now := time.Now()
	skill.CreatedAt = now
	skill.UpdatedAt = now
	s.doc.Skills = append(s.doc.Skills, *skill)
	return s.persistLocked()
}

func (r *FileSkillRepository) GetByID(id uuid.UUID) (*models.Skill, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Skills {
		if s.doc.Skills[i].ID == id {
			skill := s.doc.Skills[i]
			return &skill, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *FileSkillRepository) GetByUserID(userID string) ([]models.Skill, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	skills := make([]models.Skill, 0)
	for i := range s.doc.Skills {
		if s.doc.Skills[i].UserID == userID {
			skills = append(skills, s.doc.Skills[i])
		}
	}
	sort.Slice(skills, func(i, j int) bool {
		return skills[i].CreatedAt.After(skills[j].CreatedAt)
	})
	return skills, nil
}

func (r *FileSkillRepository) Delete(id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Skills {
		if s.doc.Skills[i].ID == id {
			s.doc.Skills = append(s.doc.Skills[:i], s.doc.Skills[i+1:]...)
			return s.persistLocked()
		}
	}
	// deleting a missing row is not an error, matching the SQL contract
	return nil
}

// ------------------------------
// Projects
// ------------------------------

// FileProjectRepository implements ProjectRepositoryInterface over the JSON
// store
type FileProjectRepository struct {
	store *FileStore
}

func (r *FileProjectRepository) Create(project *models.Project) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	stored := *project
	stored.Creator = models.User{}
	stored.Members = nil
	s.doc.Projects = append(s.doc.Projects, stored)
	return s.persistLocked()
}

func (r *FileProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProjectLocked(id)
	if p == nil {
		return nil, gorm.ErrRecordNotFound
	}
	project := *p
	project.Members = nil
	return &project, nil
}

func (r *FileProjectRepository) GetWithDetails(id uuid.UUID) (*models.Project, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProjectLocked(id)
	if p == nil {
		return nil, gorm.ErrRecordNotFound
	}
	project := *p
	s.hydrateProjectLocked(&project)
	return &project, nil
}

func (r *FileProjectRepository) List(filter ProjectFilter) ([]models.Project, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	projects := make([]models.Project, 0)
	for i := range s.doc.Projects {
		project := s.doc.Projects[i]
		if !matchesFilter(&project, filter) {
			continue
		}
		s.hydrateProjectLocked(&project)
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (r *FileProjectRepository) Delete(id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Projects {
		if s.doc.Projects[i].ID == id {
			s.doc.Projects = append(s.doc.Projects[:i], s.doc.Projects[i+1:]...)
			return s.persistLocked()
		}
	}
	return nil
}

func (s *FileStore) findProjectLocked(id uuid.UUID) *models.Project {
	for i := range s.doc.Projects {
		if s.doc.Projects[i].ID == id {
			return &s.doc.Projects[i]
		}
	}
	return nil
}

// hydrateProjectLocked fills Creator and each member's User from the users
// array, the file-store analogue of the SQL preloads
func (s *FileStore) hydrateProjectLocked(project *models.Project) {
	project.Creator = s.userByIDLocked(project.CreatorID)
	members := make([]models.ProjectMember, len(project.Members))
	copy(members, project.Members)
	for i := range members {
		members[i].User = s.userByIDLocked(members[i].UserID)
	}
	project.Members = members
}

func (s *FileStore) userByIDLocked(id string) models.User {
	for i := range s.doc.Users {
		if s.doc.Users[i].ID == id {
			return s.doc.Users[i]
		}
	}
	return models.User{ID: id}
}

func matchesFilter(project *models.Project, filter ProjectFilter) bool {
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		hit := strings.Contains(strings.ToLower(project.Title), q) ||
			strings.Contains(strings.ToLower(project.ShortDescription), q)
		for _, tag := range project.RequiredSkills {
			if strings.Contains(strings.ToLower(tag), q) {
				hit = true
			}
		}
		if !hit {
			return false
		}
	}
	if filter.Category != "" && project.Category != filter.Category {
		return false
	}
	if filter.Difficulty != "" && string(project.Difficulty) != filter.Difficulty {
		return false
	}
	if filter.Status != "" && string(project.Status) != filter.Status {
		return false
	}
	if filter.MaxDurationWeeks != nil &&
		project.DurationWeeks != nil && *project.DurationWeeks > *filter.MaxDurationWeeks {
		return false
	}
	return true
}

// ------------------------------
// Project members
// ------------------------------

// FileProjectMemberRepository implements ProjectMemberRepositoryInterface
// over the JSON store. Members live embedded in their project object.
type FileProjectMemberRepository struct {
	store *FileStore
}

func (r *FileProjectMemberRepository) GetByProjectAndUser(projectID uuid.UUID, userID string) (*models.ProjectMember, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProjectLocked(projectID)
	if p == nil {
		return nil, gorm.ErrRecordNotFound
	}
	for i := range p.Members {
		if p.Members[i].UserID == userID {
			member := p.Members[i]
			return &member, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *FileProjectMemberRepository) Upsert(member *models.ProjectMember) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProjectLocked(member.ProjectID)
	if p == nil {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	for i := range p.Members {
		if p.Members[i].UserID == member.UserID {
			existing := &p.Members[i]
			existing.Role = member.Role
			existing.FullName = member.FullName
			existing.Contact = member.Contact
			existing.PortfolioURL = member.PortfolioURL
			existing.SkillsOffered = member.SkillsOffered
			existing.Availability = member.Availability
			existing.Motivation = member.Motivation
			existing.AgreedToGuidelines = member.AgreedToGuidelines
			existing.UpdatedAt = now
			return s.persistLocked()
		}
	}
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	member.CreatedAt = now
	member.UpdatedAt = now
	stored := *member
	stored.Project = models.Project{}
	stored.User = models.User{}
	p.Members = append(p.Members, stored)
	return s.persistLocked()
}

func (r *FileProjectMemberRepository) Update(member *models.ProjectMember) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProjectLocked(member.ProjectID)
	if p == nil {
		return gorm.ErrRecordNotFound
	}
	for i := range p.Members {
		if p.Members[i].UserID == member.UserID {
			member.UpdatedAt = time.Now()
			stored := *member
			stored.Project = models.Project{}
			stored.User = models.User{}
			p.Members[i] = stored
			return s.persistLocked()
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *FileProjectMemberRepository) Delete(projectID uuid.UUID, userID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProjectLocked(projectID)
	if p == nil {
		return nil
	}
	for i := range p.Members {
		if p.Members[i].UserID == userID {
			p.Members = append(p.Members[:i], p.Members[i+1:]...)
			return s.persistLocked()
		}
	}
	return nil
}

func (r *FileProjectMemberRepository) ListByProject(projectID uuid.UUID) ([]models.ProjectMember, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProjectLocked(projectID)
	if p == nil {
		return nil, gorm.ErrRecordNotFound
	}
	members := make([]models.ProjectMember, len(p.Members))
	copy(members, p.Members)
	for i := range members {
		members[i].User = s.userByIDLocked(members[i].UserID)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].CreatedAt.Before(members[j].CreatedAt)
	})
	return members, nil
}
