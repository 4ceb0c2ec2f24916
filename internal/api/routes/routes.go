package routes

import (
	"fmt"
	"time"

	"skillsync-backend/internal/api/handlers"
	"skillsync-backend/internal/api/middleware"
	"skillsync-backend/internal/auth"
	"skillsync-backend/internal/config"
	"skillsync-backend/internal/database/models"
	"skillsync-backend/internal/events"
	"skillsync-backend/internal/logger"
	"skillsync-backend/internal/repository"
	"skillsync-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// stores bundles one repository implementation per entity, regardless of
// which storage driver backs them
type stores struct {
	users    repository.UserRepositoryInterface
	skills   repository.SkillRepositoryInterface
	projects repository.ProjectRepositoryInterface
	members  repository.ProjectMemberRepositoryInterface
	pinger   handlers.StorePinger
}

// gormPinger adapts a gorm connection to the health check
type gormPinger struct {
	db *gorm.DB
}

func (p *gormPinger) Ping() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// openStores builds the repository set for the configured storage driver.
// db is only used by the postgres driver and may be nil otherwise.
func openStores(db *gorm.DB, cfg *config.Config) (*stores, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres driver selected but no database connection given")
		}
		return &stores{
			users:    repository.NewUserRepository(db),
			skills:   repository.NewSkillRepository(db),
			projects: repository.NewProjectRepository(db),
			members:  repository.NewProjectMemberRepository(db),
			pinger:   &gormPinger{db: db},
		}, nil
	case config.StorageDriverFile:
		fileStore, err := repository.OpenFileStore(cfg.StorageFile)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		return &stores{
			users:    fileStore.Users(),
			skills:   fileStore.Skills(),
			projects: fileStore.Projects(),
			members:  fileStore.Members(),
			pinger:   fileStore,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// registerHooks wires the post-commit side effects: the creator's own
// membership row after a project create, and change notifications. Hook
// failures are logged by the dispatcher and never surface to callers.
func registerHooks(dispatcher *events.Dispatcher, members repository.ProjectMemberRepositoryInterface, notifier events.Notifier) {
	dispatcher.Register("creator-membership", func(e events.Event) error {
		if e.Type != events.ProjectCreated {
			return nil
		}
		projectID, err := uuid.Parse(e.ProjectID)
		if err != nil {
			return fmt.Errorf("bad project id in event: %w", err)
		}
		now := time.Now()
		return members.Upsert(&models.ProjectMember{
			ProjectID:          projectID,
			UserID:             e.UserID,
			Role:               "Creator",
			Status:             models.MembershipStatusAccepted,
			AcceptedAt:         &now,
			AgreedToGuidelines: true,
		})
	})

	dispatcher.Register("change-notifications", func(e events.Event) error {
		// Project creation is rebroadcast as a plain projects change
		if e.Type == events.ProjectCreated {
			e.Type = events.ProjectsChanged
		}
		return notifier.Notify(e)
	})
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	log := logger.New()

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories for the configured driver
	st, err := openStores(db, cfg)
	if err != nil {
		return nil, err
	}
	log.WithField("driver", cfg.StorageDriver).Info("storage initialized")

	// Post-commit hooks
	dispatcher := events.NewDispatcher()
	registerHooks(dispatcher, st.members, events.NewLogNotifier())

	// Initialize services
	userService := service.NewUserService(st.users, validator)
	skillService := service.NewSkillService(st.skills, validator)
	projectService := service.NewProjectService(st.projects, dispatcher, validator)
	membershipService := service.NewMembershipService(st.projects, st.members, dispatcher, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService, userService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(st.pinger)
	projectHandler := handlers.NewProjectHandler(projectService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	skillHandler := handlers.NewSkillHandler(skillService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Project routes; browsing is public, everything else needs a caller
	projects := router.Group("/projects")
	{
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.POST("", authMiddleware.RequireAuth(), projectHandler.CreateProject)
		projects.DELETE("", authMiddleware.RequireAuth(), projectHandler.DeleteProject)

		projects.GET("/:id/members", authMiddleware.RequireAuth(), membershipHandler.ListMembers)
		projects.POST("/join", authMiddleware.RequireAuth(), membershipHandler.JoinProject)
		projects.PATCH("/member", authMiddleware.RequireAuth(), membershipHandler.RespondToApplication)
		projects.DELETE("/member", authMiddleware.RequireAuth(), membershipHandler.RemoveMember)
	}

	// Skill routes
	skills := router.Group("/user-skills")
	skills.Use(authMiddleware.RequireAuth())
	{
		skills.GET("", skillHandler.ListSkills)
		skills.POST("", skillHandler.CreateSkill)
		skills.DELETE("", skillHandler.DeleteSkill)
	}

	// User routes
	users := router.Group("/users")
	users.Use(authMiddleware.RequireAuth())
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/me", userHandler.GetProfile)
		users.PUT("/me", userHandler.UpdateProfile)
	}

	return router, nil
}
