package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/calmora/portal-system/internal/api/handler"
	"github.com/calmora/portal-system/internal/api/middleware"
	"github.com/calmora/portal-system/internal/core/domain"
	"github.com/calmora/portal-system/internal/core/service"
	mongodb "github.com/calmora/portal-system/internal/infrastructure/db/mongo"
	redisdb "github.com/calmora/portal-system/internal/infrastructure/db/redis"
)

// Options carries the router's external dependencies and settings.
type Options struct {
	JWTSecret       string
	SessionTTL      time.Duration
	VerifyPasswords bool
	Logger          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	patientRepo := mongodb.NewPatientRepository(db)
	sedationistRepo := mongodb.NewSedationistRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)
	portalState := redisdb.NewPortalStateStore(rdb)

	authService := service.NewAuthService(userRepo, sessionStore, opts.JWTSecret, opts.SessionTTL, opts.VerifyPasswords, opts.Logger)
	portalService := service.NewPortalService(portalState, opts.Logger)
	patientService := service.NewPatientService(patientRepo, opts.Logger)
	sedationistService := service.NewSedationistService(sedationistRepo, opts.Logger)
	userService := service.NewUserService(userRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	portalHandler := handler.NewPortalHandler(authService, portalService)
	patientHandler := handler.NewPatientHandler(patientService)
	sedationistHandler := handler.NewSedationistHandler(sedationistService)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.Auth(opts.JWTSecret, sessionStore)

	// --- Auth routes ---
	// Logout intentionally skips the auth middleware: ending an already-ended
	// session must stay a no-op, not a 401.
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Portal routes (any authenticated role) ---
	portals := e.Group("/v1/portals", authMiddleware)
	portals.GET("", portalHandler.List)
	portals.POST("/switch", portalHandler.Switch)

	// --- Patient administration (internal + clinic staff) ---
	patients := e.Group("/v1/patients", authMiddleware, middleware.RBAC(domain.RoleAdmin, domain.RoleStaff))
	patients.POST("", patientHandler.Create)
	patients.GET("", patientHandler.List)
	patients.GET("/:id", patientHandler.Get)
	patients.PUT("/:id", patientHandler.Update)
	patients.DELETE("/:id", patientHandler.Deactivate)

	// --- Sedationist administration (internal + clinic staff) ---
	sedationists := e.Group("/v1/sedationists", authMiddleware, middleware.RBAC(domain.RoleAdmin, domain.RoleStaff))
	sedationists.POST("", sedationistHandler.Create)
	sedationists.GET("", sedationistHandler.List)
	sedationists.GET("/:id", sedationistHandler.Get)
	sedationists.PUT("/:id", sedationistHandler.Update)
	sedationists.DELETE("/:id", sedationistHandler.Deactivate)

	// --- Account administration (admins only) ---
	users := e.Group("/v1/users", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Deactivate)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
