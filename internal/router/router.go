package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusgrid/enrollment-api/internal/config"
	"github.com/campusgrid/enrollment-api/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	StudentHandler   *handler.StudentHandler
	ProfessorHandler *handler.ProfessorHandler
	SubjectHandler   *handler.SubjectHandler
	GradeHandler     *handler.GradeHandler
	ActivityHandler  *handler.ActivityHandler
	DashboardHandler *handler.DashboardHandler
	JWTMiddleware    fiber.Handler
	WriteRateLimiter fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Auth is optional: the JWT middleware is only installed when a
	// secret is configured.
	protect := deps.JWTMiddleware
	if protect == nil {
		protect = func(c *fiber.Ctx) error { return c.Next() }
	}
	throttle := deps.WriteRateLimiter
	if throttle == nil {
		throttle = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(api.Group("/dashboard"))
	}

	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api.Group("/activity"))
	}

	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students", protect, throttle))
	}

	if deps.ProfessorHandler != nil {
		deps.ProfessorHandler.Register(api.Group("/professors", protect, throttle))
	}

	if deps.SubjectHandler != nil {
		deps.SubjectHandler.Register(api.Group("/subjects", protect, throttle))
	}

	if deps.GradeHandler != nil {
		deps.GradeHandler.Register(api.Group("/grades", protect, throttle))
	}
}
