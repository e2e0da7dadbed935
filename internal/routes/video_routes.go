package routes

import (
	"github.com/NiraJ01010101/chaiBackend/internal/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesVideo(api fiber.Router, h *controllers.VideoHandler) {
	videos := api.Group("/videos")

	// GET /api/v1/videos?page=2&limit=5&query=go&sortBy=views&sortType=desc&userId=...
	videos.Get("/", h.List)
	// POST /api/v1/videos (multipart: videoFile, thumbnail, title, description)
	videos.Post("/", requireAuth, h.Publish)

	// GET counts a view; a signed-in viewer also gets a watch history entry
	videos.Get("/:videoId", h.Get)
	videos.Patch("/:videoId", requireAuth, h.Update)
	videos.Delete("/:videoId", requireAuth, h.Delete)

	// PATCH /api/v1/videos/:videoId/publish  {"isPublished": false} or no body to flip
	videos.Patch("/:videoId/publish", requireAuth, h.TogglePublish)
}
