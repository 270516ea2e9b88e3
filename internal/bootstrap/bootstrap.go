// Package bootstrap wires configuration, logging, the database and the
// HTTP stack together at startup.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/mkoech/police-profiling/internal/app/controllers"
	"github.com/mkoech/police-profiling/internal/app/migrations"
	"github.com/mkoech/police-profiling/internal/app/repositories"
	"github.com/mkoech/police-profiling/internal/app/routes"
	"github.com/mkoech/police-profiling/internal/app/services"
	"github.com/mkoech/police-profiling/internal/config"
	"github.com/mkoech/police-profiling/internal/db"
	"github.com/mkoech/police-profiling/internal/middleware"
	"github.com/mkoech/police-profiling/internal/pkg/auth"
	"github.com/mkoech/police-profiling/internal/pkg/filestorage"
	"github.com/mkoech/police-profiling/internal/pkg/logger"
	"github.com/mkoech/police-profiling/internal/pkg/metrics"
	"github.com/mkoech/police-profiling/internal/seed"
)

// Dependencies is the fully wired application graph.
type Dependencies struct {
	Config       *config.Config
	Database     *db.PostgresDB
	Repositories *repositories.Repositories
	Services     *services.Services
	Controllers  *controllers.Controllers
	AuthMW       *middleware.AuthMiddleware
	Storage      filestorage.FileStorage
}

// LoadConfigAndSetupLogger loads the configuration and configures the
// global logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Pretty,
	})

	logger.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")
	return cfg, nil
}

// SetupDatabase connects the pool and applies pending migrations.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(cfg.Database.MigrationsPath); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return database, nil
}

// BuildDependencies wires repositories, services, controllers and the
// auth middleware, and seeds the default Commissioner.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) (*Dependencies, error) {
	storage, err := filestorage.NewLocalStorage(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to set up file storage: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.Auth.SecretKey, cfg.Auth.SessionExpiresIn)
	repos := repositories.NewRepositories(database)
	svcs := services.NewServices(repos, database, jwtService, storage, cfg)
	ctrls := controllers.NewControllers(svcs)
	authMW := middleware.NewAuthMiddleware(jwtService, repos.Sessions, repos.Officers)

	if err := seed.EnsureDefaultCommissioner(context.Background(), database, repos); err != nil {
		return nil, fmt.Errorf("failed to seed default commissioner: %w", err)
	}

	return &Dependencies{
		Config:       cfg,
		Database:     database,
		Repositories: repos,
		Services:     svcs,
		Controllers:  ctrls,
		AuthMW:       authMW,
		Storage:      storage,
	}, nil
}

// SetupRouter builds the gin engine with the shared middleware stack
// and the route table.
func SetupRouter(deps *Dependencies) *gin.Engine {
	gin.SetMode(ginMode(deps.Config.Server.Mode))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.Server.AllowedOrigins))
	router.Use(metrics.Middleware())

	routes.SetupRoutes(router, deps.Controllers, deps.AuthMW)
	return router
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
