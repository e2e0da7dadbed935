package routes

import (
	"github.com/NiraJ01010101/chaiBackend/internal/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesTweet(api fiber.Router, h *controllers.TweetHandler) {
	tweets := api.Group("/tweets")

	tweets.Post("/", requireAuth, h.Create)
	tweets.Get("/user/:userId", h.ListByUser)
	tweets.Patch("/:tweetId", requireAuth, h.Update)
	tweets.Delete("/:tweetId", requireAuth, h.Delete)
}
