// Package bootstrap wires configuration, storage and the HTTP layer together.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/arjun/regportal/internal/app/controllers"
	appMigrations "github.com/arjun/regportal/internal/app/migrations"
	appRepos "github.com/arjun/regportal/internal/app/repositories"
	appRoutes "github.com/arjun/regportal/internal/app/routes"
	appServices "github.com/arjun/regportal/internal/app/services"
	"github.com/arjun/regportal/internal/config"
	"github.com/arjun/regportal/internal/db"
	appMiddleware "github.com/arjun/regportal/internal/middleware"
	"github.com/arjun/regportal/internal/otp"
	"github.com/arjun/regportal/internal/pkg/logger"
	"github.com/arjun/regportal/internal/pkg/sms"
	"github.com/arjun/regportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	RegistrationService    appServices.RegistrationService
	CourseService          appServices.CourseService
	AuthController         *appControllers.AuthController
	RegistrationController *appControllers.RegistrationController
	CoursesController      *appControllers.CoursesController
	SessionMiddleware      *appMiddleware.SessionMiddleware
	Repos                  *appRepos.Repositories
	OTPStore               otp.Store
	SMSSender              sms.Sender
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds
// the elective catalogs.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Catalog gaps are recoverable; the app still serves what exists.
		lgr.Error().Err(err).Msg("Failed to seed elective catalogs, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupOTPStore builds the pending-code store. With a Redis address configured
// codes live in Redis and survive restarts; without one an in-process store is
// used, which is fine for a single instance.
func SetupOTPStore(cfg *config.Config, lgr zerolog.Logger) (otp.Store, error) {
	if cfg.Redis.Addr == "" {
		lgr.Warn().Msg("Redis not configured, using in-memory OTP store")
		return otp.NewMemoryStore(otp.DefaultTTL), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection successfully established.")
	return otp.NewRedisStore(client, otp.DefaultTTL), nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	otpStore, err := SetupOTPStore(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize OTP store")
		return nil, err
	}
	deps.OTPStore = otpStore

	deps.SMSSender = sms.NewTwilioSender(sms.TwilioConfig{
		AccountSID: cfg.SMS.AccountSID,
		AuthToken:  cfg.SMS.AuthToken,
		FromNumber: cfg.SMS.FromNumber,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.OTPStore,
		deps.SMSSender,
		lgr,
	)
	deps.RegistrationService = appServices.NewRegistrationService(
		deps.Repos.RegistrationRepository,
		deps.Repos.UserRepository,
		deps.Repos.CourseRepository,
		lgr,
	)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, lgr)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(
		deps.Repos.SessionRepository,
		appMiddleware.SessionConfig{
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.SessionTTL(),
			Production: cfg.IsProduction(),
		},
		lgr,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService, lgr)
	deps.CoursesController = appControllers.NewCoursesController(deps.CourseService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.RegistrationController,
		deps.CoursesController,
		deps.SessionMiddleware,
	)

	return router
}
