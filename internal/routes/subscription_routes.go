package routes

import (
	"github.com/NiraJ01010101/chaiBackend/internal/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesSubscription(api fiber.Router, h *controllers.SubscriptionHandler) {
	subs := api.Group("/subscriptions")

	// POST toggles: 201 when subscribed, 200 when unsubscribed
	subs.Post("/c/:channelId", requireAuth, h.Toggle)

	subs.Get("/channel/:channelId/subscribers", h.Subscribers)
	subs.Get("/subscriber/:subscriberId/channels", h.Channels)

	// alias kept for older clients; registered last so the paths above win
	subs.Post("/:channelId", requireAuth, h.Toggle)
}
