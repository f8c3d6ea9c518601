package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the dashboard page.
type Handler struct {
	Log *zap.Logger
	Now func() time.Time
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger, Now: time.Now}
}

func SetupDashboardRoutes(app *fiber.App, h *Handler) {
	app.Get("/dashboard", h.DashboardPage)
}

// DashboardPage renders the dashboard for the selection in the query string.
func (h *Handler) DashboardPage(c *fiber.Ctx) error {
	sel, err := ParseSelection(c)
	if err != nil {
		h.Log.Debug("rejected dashboard query",
			zap.String("query", string(c.Request().URI().QueryString())),
			zap.Error(err))
		return err
	}

	view, err := Project(sel)
	if err != nil {
		h.Log.Error("dashboard projection failed", zap.String("class", string(sel.ClassID)), zap.Error(err))
		return err
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - AI Dhivi",
		"CurrentPage": "dashboard",
		"View":        view,
		"Calendar":    BuildMonth(h.Now()),
	})
}
