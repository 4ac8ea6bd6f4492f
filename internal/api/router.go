package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/fitlogapp/fitlog-api/docs"
	"github.com/fitlogapp/fitlog-api/internal/api/handler"
	"github.com/fitlogapp/fitlog-api/internal/api/middleware"
	"github.com/fitlogapp/fitlog-api/internal/core/auth"
	"github.com/fitlogapp/fitlog-api/internal/core/domain"
	"github.com/fitlogapp/fitlog-api/internal/core/ports"
	"github.com/fitlogapp/fitlog-api/internal/core/service"
	"github.com/fitlogapp/fitlog-api/internal/infrastructure/config"
	mongodb "github.com/fitlogapp/fitlog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fitlogapp/fitlog-api/internal/infrastructure/db/redis"
	"github.com/fitlogapp/fitlog-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fitlog"))

	// Permissive CORS only under dev/test; production is same-origin only.
	if cfg.IsDevOrTest() {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
			AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
			AllowCredentials: true,
		}))
	}

	// --- Dependencies ---
	codec := auth.NewTokenCodec(cfg.JWTSecret, auth.DefaultTokenTTL)
	resolver := auth.NewResolver(codec)
	cookies := auth.NewCookieBuilder(cfg.CookieDomain)

	userRepo := mongodb.NewUserRepository(db)
	exerciseRepo := mongodb.NewExerciseRepository(db)
	workoutRepo := mongodb.NewWorkoutRepository(db)
	workoutExerciseRepo := mongodb.NewWorkoutExerciseRepository(db)

	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb)
	}

	authService := service.NewAuthService(userRepo, codec, limiter, log)
	userService := service.NewUserService(userRepo, log)
	exerciseService := service.NewExerciseService(exerciseRepo, log)
	workoutService := service.NewWorkoutService(workoutRepo, log)
	workoutExerciseService := service.NewWorkoutExerciseService(workoutExerciseRepo, workoutRepo, exerciseRepo, log)

	userHandler := handler.NewUserHandler(authService, userService, cookies, cfg.IsDevOrTest())
	exerciseHandler := handler.NewExerciseHandler(exerciseService)
	workoutHandler := handler.NewWorkoutHandler(workoutService)
	workoutExerciseHandler := handler.NewWorkoutExerciseHandler(workoutExerciseService)

	// The transport filter runs on every route: it hard-rejects invalid
	// tokens and passes credential-less requests through unauthenticated.
	e.Use(middleware.Authenticate(resolver))

	requireAuth := middleware.RequireAuth()
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("", userHandler.Register)
	users.POST("/login", userHandler.Login)
	users.POST("/logout", userHandler.Logout)
	users.GET("", userHandler.List, adminOnly)
	users.DELETE("/me", userHandler.DeleteOwn, requireAuth)
	users.GET("/:id", userHandler.Get, requireAuth)
	users.DELETE("/:id", userHandler.Delete, adminOnly)

	// --- Exercise routes ---
	exercises := e.Group("/exercises", requireAuth)
	exercises.POST("", exerciseHandler.Create)
	exercises.GET("", exerciseHandler.List)
	exercises.GET("/:id", exerciseHandler.Get)
	exercises.PUT("/:id", exerciseHandler.Update)
	exercises.DELETE("/:id", exerciseHandler.Delete)

	// --- Workout routes ---
	workouts := e.Group("/workouts", requireAuth)
	workouts.POST("", workoutHandler.Create)
	workouts.GET("", workoutHandler.List)
	workouts.GET("/:id", workoutHandler.Get)
	workouts.PUT("/:id", workoutHandler.Update)
	workouts.DELETE("/:id", workoutHandler.Delete)

	// --- Workout exercise routes ---
	workoutExercises := e.Group("/workout_exercises", requireAuth)
	workoutExercises.POST("", workoutExerciseHandler.Create)
	workoutExercises.GET("/by_workout/:workoutId", workoutExerciseHandler.ListByWorkout)
	workoutExercises.GET("/:id", workoutExerciseHandler.Get)
	workoutExercises.PUT("/:id", workoutExerciseHandler.Update)
	workoutExercises.DELETE("/:id", workoutExerciseHandler.Delete)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
