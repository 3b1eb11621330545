package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fitstack/gym-api/internal/api/handler"
	"github.com/fitstack/gym-api/internal/api/middleware"
	"github.com/fitstack/gym-api/internal/core/service"
	"github.com/fitstack/gym-api/internal/infrastructure/config"
	"github.com/fitstack/gym-api/internal/infrastructure/db/postgres"
	redisdb "github.com/fitstack/gym-api/internal/infrastructure/db/redis"
	"github.com/fitstack/gym-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the activity dispatcher, which the caller must Start.
// Token configuration is validated here; an error means the process must not
// serve traffic.
func NewRouter(db *postgres.DB, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("gymapp"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	tokenRepo := postgres.NewRefreshTokenRepository(db)
	entitlementRepo := postgres.NewEntitlementRepository(db)
	exerciseRepo := postgres.NewExerciseRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	transactor := postgres.NewTransactor(db, log)

	tokenService, err := service.NewTokenService(tokenRepo, cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	if err != nil {
		return nil, nil, err
	}

	dispatcher := queue.NewDispatcher(cfg.Queue.Workers, service.NewLastLoginRecorder(userRepo), log)
	authService := service.NewAuthService(userRepo, entitlementRepo, tokenService,
		service.NewBcryptHasher(0), transactor, dispatcher)

	catalogCache := redisdb.NewCatalogCache(rdb, cfg.Redis.CacheTTL)
	exerciseService := service.NewExerciseService(exerciseRepo, catalogCache)
	userService := service.NewUserService(userRepo, entitlementRepo, profileRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)

	authRequired := middleware.Auth(tokenService)
	activeOnly := middleware.ActiveOnly()

	// --- Auth routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/signup", authHandler.SignUp)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.POST("/auth/refresh", authHandler.Refresh)

	// --- User routes ---
	users := apiGroup.Group("/users", authRequired, activeOnly)
	users.GET("/profile", userHandler.Profile)
	users.POST("/profile/setup/basic", userHandler.SetupBasicProfile)
	users.POST("/profile/setup/fitness", userHandler.SetupFitnessProfile)

	// --- Exercise catalog routes ---
	exercises := apiGroup.Group("/exercises", authRequired, activeOnly)
	exercises.GET("", exerciseHandler.List)
	exercises.GET("/:id", exerciseHandler.Get)
	exercises.GET("/muscle-group/:id", exerciseHandler.ByMuscleGroup)
	apiGroup.GET("/muscle-groups", exerciseHandler.MuscleGroups, authRequired, activeOnly)

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e, dispatcher, nil
}
