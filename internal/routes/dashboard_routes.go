package routes

import (
	"github.com/NiraJ01010101/chaiBackend/internal/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesDashboard(api fiber.Router, h *controllers.DashboardHandler) {
	dash := api.Group("/dashboard", requireAuth)

	dash.Get("/stats", h.Stats)
	dash.Get("/videos", h.Videos)
}
