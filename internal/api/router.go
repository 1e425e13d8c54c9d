package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/englishlessons/classroom-api/internal/api/handler"
	"github.com/englishlessons/classroom-api/internal/api/middleware"
	"github.com/englishlessons/classroom-api/internal/core/domain"
	"github.com/englishlessons/classroom-api/internal/core/service"
	"github.com/englishlessons/classroom-api/internal/infrastructure/config"
	mongodb "github.com/englishlessons/classroom-api/internal/infrastructure/db/mongo"
	redisdb "github.com/englishlessons/classroom-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; directory lookups then skip the cache.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("classroom"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	directoryRepo := mongodb.NewDirectoryRepository(db)
	submissionRepo := mongodb.NewSubmissionRepository(db)

	var directoryCache service.DirectoryCache
	if rdb != nil {
		directoryCache = redisdb.NewDirectoryCache(rdb)
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Hour, log)
	directoryService := service.NewDirectoryService(directoryRepo, directoryCache, log)
	submissionService := service.NewSubmissionService(submissionRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	directoryHandler := handler.NewDirectoryHandler(directoryService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	teacherHandler := handler.NewTeacherHandler(submissionService)

	authRequired := middleware.Auth(authService)
	studentOnly := middleware.RequireRole(domain.RoleStudent)
	teacherGate := middleware.TeacherGate(cfg.TeacherPassword)

	// --- Routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, this is your English class server!")
	})

	e.POST("/login", authHandler.Login)

	e.GET("/classes", directoryHandler.ListClasses, authRequired, studentOnly)
	e.GET("/classes/:classId/lessons", directoryHandler.ListLessons, authRequired)

	e.POST("/submit-answers", submissionHandler.Submit, authRequired, studentOnly)
	e.GET("/grades", submissionHandler.Grades, authRequired)

	e.GET("/teacher", teacherHandler.ListSubmissions, authRequired, teacherGate)
	e.POST("/teacher/mark", teacherHandler.Mark, authRequired, teacherGate)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
