package routes

import (
	"github.com/NiraJ01010101/chaiBackend/internal/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesPlaylist(api fiber.Router, h *controllers.PlaylistHandler) {
	playlists := api.Group("/playlists")

	playlists.Post("/", requireAuth, h.Create)
	playlists.Get("/user/:userId", h.ListByUser)

	// PATCH /api/v1/playlists/add/:videoId/:playlistId
	playlists.Patch("/add/:videoId/:playlistId", requireAuth, h.AddVideo)
	playlists.Patch("/remove/:videoId/:playlistId", requireAuth, h.RemoveVideo)

	playlists.Get("/:playlistId", h.Get)
	playlists.Patch("/:playlistId", requireAuth, h.Update)
	playlists.Delete("/:playlistId", requireAuth, h.Delete)
}
