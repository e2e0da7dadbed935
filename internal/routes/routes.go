package routes

import (
	"github.com/NiraJ01010101/chaiBackend/internal/controllers"
	"github.com/NiraJ01010101/chaiBackend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Videos        *controllers.VideoHandler
	Comments      *controllers.CommentHandler
	Likes         *controllers.LikeHandler
	Subscriptions *controllers.SubscriptionHandler
	Tweets        *controllers.TweetHandler
	Playlists     *controllers.PlaylistHandler
	Users         *controllers.UserHandler
	Dashboard     *controllers.DashboardHandler
}

// Setup mounts every resource under /api/v1. auth resolves the caller when a
// token is present; protected routes add middleware.RequireAuth.
func Setup(app *fiber.App, h Handlers, auth fiber.Handler) {
	api := app.Group("/api/v1", auth)

	api.Get("/healthcheck", controllers.Healthcheck)

	SetupRoutesUser(api, h.Users)
	SetupRoutesVideo(api, h.Videos)
	SetupRoutesComment(api, h.Comments)
	SetupRoutesLike(api, h.Likes)
	SetupRoutesSubscription(api, h.Subscriptions)
	SetupRoutesTweet(api, h.Tweets)
	SetupRoutesPlaylist(api, h.Playlists)
	SetupRoutesDashboard(api, h.Dashboard)
}

var requireAuth = middleware.RequireAuth()
