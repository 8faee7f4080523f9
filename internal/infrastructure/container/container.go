package container

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/skillswap-app/skillswap-backend/internal/config"
	"github.com/skillswap-app/skillswap-backend/internal/delivery/http"
	"github.com/skillswap-app/skillswap-backend/internal/delivery/http/handler"
	"github.com/skillswap-app/skillswap-backend/internal/delivery/http/middleware"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/cache"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/database"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/mail"
	"github.com/skillswap-app/skillswap-backend/internal/infrastructure/server"
	"github.com/skillswap-app/skillswap-backend/internal/repository/postgres"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/account"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/match"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/password"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/review"
	"github.com/skillswap-app/skillswap-backend/internal/usecase/skill"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis is optional: without it the leaderboard is served from postgres
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("failed to initialize redis, leaderboard cache disabled", "error", err)
			redisClient = nil
		}
	}

	mailer := mail.NewMailer(&cfg.Mail)
	if mailer == nil {
		slog.Warn("SMTP not configured, password reset emails disabled")
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	skillRepo := postgres.NewSkillRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	resetTokenRepo := postgres.NewResetTokenRepository(db)

	// Initialize use cases
	accountUseCase := account.NewAccountUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	skillUseCase := skill.NewSkillUseCase(skillRepo)
	matchUseCase := match.NewMatchUseCase(matchRepo, userRepo)
	reviewUseCase := review.NewReviewUseCase(reviewRepo, userRepo, cache.NewLeaderboardCache(redisClient))
	resetUseCase := password.NewResetUseCase(userRepo, resetTokenRepo, mailer)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(accountUseCase)
	userHandler := handler.NewUserHandler(accountUseCase)
	skillHandler := handler.NewSkillHandler(skillUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	reviewHandler := handler.NewReviewHandler(reviewUseCase)
	passwordHandler := handler.NewPasswordHandler(resetUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(accountUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		userHandler,
		skillHandler,
		matchHandler,
		reviewHandler,
		passwordHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			slog.Error("error closing redis", "error", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
