package routes

import (
	"github.com/NiraJ01010101/chaiBackend/internal/controllers"
	"github.com/NiraJ01010101/chaiBackend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesUser(api fiber.Router, h *controllers.UserHandler) {
	users := api.Group("/users")

	users.Post("/register", h.Register)
	users.Post("/login", h.Login)
	users.Post("/refresh-token", h.Refresh)
	users.Post("/forgot-password", h.ForgotPassword)
	users.Post("/reset-password/:token", h.ResetPassword)

	users.Post("/logout", requireAuth, h.Logout)
	users.Post("/change-password", requireAuth, h.ChangePassword)
	users.Get("/current-user", requireAuth, h.Current)
	users.Patch("/update-account", requireAuth, h.UpdateAccount)
	users.Patch("/avatar", requireAuth, h.SetImage(services.FieldAvatar))
	users.Patch("/cover-image", requireAuth, h.SetImage(services.FieldCoverImage))
	users.Get("/history", requireAuth, h.WatchHistory)

	// isSubscribed is only true for a signed-in caller
	users.Get("/c/:username", h.ChannelProfile)
}
