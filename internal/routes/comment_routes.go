package routes

import (
	"github.com/NiraJ01010101/chaiBackend/internal/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesComment(api fiber.Router, h *controllers.CommentHandler) {
	comments := api.Group("/comments")

	// GET /api/v1/comments/:videoId?page=1&limit=10
	comments.Get("/:videoId", h.List)
	comments.Post("/:videoId", requireAuth, h.Create)

	// only the comment's owner may edit or delete it
	comments.Patch("/c/:commentId", requireAuth, h.Update)
	comments.Delete("/c/:commentId", requireAuth, h.Delete)
	comments.Patch("/:commentId", requireAuth, h.Update)
	comments.Delete("/:commentId", requireAuth, h.Delete)
}
