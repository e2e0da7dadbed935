package controllers

import (
	"net/http"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/middleware"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type LikeHandler struct {
	Svc  LikeService
	Opts Options
}

// Toggle returns the handler for one like target; param names the route
// parameter carrying the target id.
//
// @Summary      Toggle a like
// @Description  Likes the target, or removes the caller's like. Returns the new state and total.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        videoId    path  string  false  "Video ID (hex ObjectID)"
// @Param        commentId  path  string  false  "Comment ID (hex ObjectID)"
// @Param        tweetId    path  string  false  "Tweet ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse{data=dto.ToggleLikeResp}
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/likes/toggle/v/{videoId} [post]
// @Router       /api/v1/likes/toggle/c/{commentId} [post]
// @Router       /api/v1/likes/toggle/t/{tweetId} [post]
func (h *LikeHandler) Toggle(target models.LikeTarget, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}
		id, err := utils.ParamOID(c, param)
		if err != nil {
			return err
		}

		ctx, cancel := h.Opts.ctx(c)
		defer cancel()

		res, err := h.Svc.Toggle(ctx, uid, target, id)
		if err != nil {
			return err
		}
		msg := string(target) + " unliked"
		if res.IsLiked {
			msg = string(target) + " liked"
		}
		return respond(c, http.StatusOK, res, msg)
	}
}

// @Summary      Videos the caller liked
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ApiResponse{data=dto.LikedVideosResp}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/likes/videos [get]
func (h *LikeHandler) LikedVideos(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	videos, err := h.Svc.LikedVideos(ctx, uid)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.LikedVideosResp{LikedVideos: videos}, "liked videos fetched successfully")
}
