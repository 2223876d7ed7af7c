package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/heatseek/attendance-system/internal/api/handler"
	"github.com/heatseek/attendance-system/internal/api/middleware"
	"github.com/heatseek/attendance-system/internal/core/ports"
)

// Services groups the core services the router exposes over HTTP.
type Services struct {
	Sessions   ports.SessionService
	Attendance ports.AttendanceService
	Leave      ports.LeaveService
	Directory  ports.DirectoryService
}

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when the directory cache is disabled.
func NewRouter(services Services, db *gorm.DB, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("attendance"))

	// --- Dependencies ---
	sessionHandler := handler.NewSessionHandler(services.Sessions)
	attendanceHandler := handler.NewAttendanceHandler(services.Attendance)
	leaveHandler := handler.NewLeaveHandler(services.Leave)
	directoryHandler := handler.NewDirectoryHandler(services.Directory)

	requireSession := middleware.RequireSession(services.Sessions)

	// --- Session routes ---
	e.POST("/session/login", sessionHandler.Login)
	e.POST("/session/logout", sessionHandler.Logout, requireSession)
	e.GET("/session", sessionHandler.Current, requireSession)

	// --- Attendance routes ---
	e.GET("/attendance", attendanceHandler.Get, requireSession)
	e.POST("/attendance/status", attendanceHandler.SetStatus, requireSession)

	// --- Directory routes ---
	e.GET("/employees", directoryHandler.List, requireSession)

	// --- Leave routes ---
	e.GET("/leave-requests", leaveHandler.List, requireSession)
	e.POST("/leave-requests", leaveHandler.Submit, requireSession)
	e.POST("/leave-requests/:uuid/approve", leaveHandler.Approve, requireSession)
	e.POST("/leave-requests/:uuid/deny", leaveHandler.Deny, requireSession)

	// --- Health probes (no session required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
