package routes

import (
	"github.com/NiraJ01010101/chaiBackend/internal/controllers"
	"github.com/NiraJ01010101/chaiBackend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesLike(api fiber.Router, h *controllers.LikeHandler) {
	likes := api.Group("/likes", requireAuth)

	likes.Post("/toggle/v/:videoId", h.Toggle(models.LikeVideo, "videoId"))
	likes.Post("/toggle/c/:commentId", h.Toggle(models.LikeComment, "commentId"))
	likes.Post("/toggle/t/:tweetId", h.Toggle(models.LikeTweet, "tweetId"))
	likes.Get("/videos", h.LikedVideos)

	// older client paths
	likes.Post("/video/:videoId", h.Toggle(models.LikeVideo, "videoId"))
	likes.Post("/comment/:commentId", h.Toggle(models.LikeComment, "commentId"))
	likes.Post("/tweet/:tweetId", h.Toggle(models.LikeTweet, "tweetId"))
	likes.Get("/likedvideos", h.LikedVideos)
}
