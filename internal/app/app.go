package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AlMamunFarhad/job-portal/internal/auth"
	"github.com/AlMamunFarhad/job-portal/internal/config"
	"github.com/AlMamunFarhad/job-portal/internal/email"
	"github.com/AlMamunFarhad/job-portal/internal/handlers"
	"github.com/AlMamunFarhad/job-portal/internal/imaging"
	"github.com/AlMamunFarhad/job-portal/internal/logger"
	"github.com/AlMamunFarhad/job-portal/internal/models"
	"github.com/AlMamunFarhad/job-portal/internal/repositories"
	"github.com/AlMamunFarhad/job-portal/internal/routes"
	"github.com/AlMamunFarhad/job-portal/internal/services"
	"github.com/AlMamunFarhad/job-portal/internal/storage"
	"github.com/AlMamunFarhad/job-portal/internal/validator"
)

// Run boots the application: config, logger, database, migrations,
// router.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		// Referential integrity is handled application-side so that
		// applications referencing deleted jobs stay readable.
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	switch cfg.Database.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.JobType{},
		&models.Job{},
		&models.JobApplication{},
	)
}

// SetupRouter wires repositories, services and handlers onto a gin
// engine. Shared with the test harness.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	store, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	mailer := email.NewSMTPSender(cfg)
	processor := imaging.NewProcessor(imaging.ThumbnailSide)

	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	lookupRepo := repositories.NewLookupRepository(db)

	avatarService := services.NewAvatarService(store, processor, cfg.Upload.MaxSize)
	authService := services.NewAuthService(userRepo, tokens, mailer, validate)
	userService := services.NewUserService(userRepo, avatarService, validate)
	jobService := services.NewJobService(jobRepo, lookupRepo, validate)
	appService := services.NewApplicationService(appRepo, jobRepo)
	adminService := services.NewAdminService(jobRepo, userRepo)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Serve avatar originals and thumbnails.
	router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)

	routes.Register(router, &routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		Account:      handlers.NewAccountHandler(userService),
		Jobs:         handlers.NewJobHandler(jobService, lookupRepo, cfg.Pagination.JobsPageSize),
		Applications: handlers.NewApplicationHandler(appService, cfg.Pagination.ApplicationsPageSize),
		Admin:        handlers.NewAdminHandler(adminService, cfg.Pagination.AdminPageSize),
	}, tokens)

	return router, nil
}
