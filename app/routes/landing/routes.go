package landing

import "github.com/gofiber/fiber/v2"

const dashboardURL = "/dashboard"

func SetupLandingRoutes(app *fiber.App) {
	app.Get("/", LandingPage)
}

// LandingPage renders the marketing hero with the link into the dashboard.
func LandingPage(c *fiber.Ctx) error {
	return c.Render("landing/index", fiber.Map{
		"Title":        "AI Dhivi",
		"CurrentPage":  "home",
		"NavItems":     []string{"Home", "About", "Contact"},
		"Headline":     "Build the Future of Learning",
		"Tagline":      "Empower teachers. Engage students. Automate everything else.",
		"DashboardURL": dashboardURL,
	})
}
