// Package server assembles the Fiber application: views, middleware,
// static assets and routes.
package server

import (
	"errors"
	"net/http"

	"aidhivi-dashboard/app/config"
	"aidhivi-dashboard/app/logging"
	"aidhivi-dashboard/app/routes/dashboard"
	"aidhivi-dashboard/app/routes/landing"
	"aidhivi-dashboard/app/static"
	"aidhivi-dashboard/app/templates"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

const appName = "AI Dhivi"

// New builds the application. It does not start listening.
func New(cfg *config.Config, logger *zap.Logger) *fiber.App {
	engine := html.NewFileSystem(http.FS(templates.FS), ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := sonic.Marshal(v)
		return string(b), err
	})
	engine.Reload(cfg.Server.TemplateReload)
	engine.Debug(false)

	app := fiber.New(fiber.Config{
		AppName:               appName,
		Views:                 engine,
		ViewsLayout:           "layouts/main",
		ErrorHandler:          errorHandler(logger),
		DisableStartupMessage: cfg.IsProduction(),
	})

	app.Use(recover.New())
	app.Use(logging.RequestLogger(logger))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.AllowOrigins}))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(static.FS),
		MaxAge: 3600,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	landing.SetupLandingRoutes(app)
	dashboard.SetupDashboardRoutes(app, dashboard.NewHandler(logger))

	// Catch-all, must be registered last.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}

// errorHandler renders HTML error pages for errors returned by handlers.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		var renderErr error
		switch {
		case code == fiber.StatusNotFound:
			renderErr = c.Status(code).Render("404", fiber.Map{
				"Title":       "Page Not Found - " + appName,
				"CurrentPage": "",
			})
		case code >= fiber.StatusInternalServerError:
			logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
			renderErr = c.Status(code).Render("500", fiber.Map{
				"Title":        "Server Error - " + appName,
				"CurrentPage":  "",
				"ErrorCode":    code,
				"ErrorTitle":   "Internal Server Error",
				"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
				"ShowRetry":    true,
			})
		default:
			renderErr = c.Status(code).Render("error", fiber.Map{
				"Title":        "Error - " + appName,
				"CurrentPage":  "",
				"ErrorCode":    code,
				"ErrorTitle":   http.StatusText(code),
				"ErrorMessage": err.Error(),
			})
		}

		if renderErr != nil {
			logger.Error("render error page", zap.Int("status", code), zap.Error(renderErr))
			return c.Status(code).SendString(http.StatusText(code))
		}
		return nil
	}
}
