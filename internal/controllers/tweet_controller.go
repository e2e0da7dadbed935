package controllers

import (
	"net/http"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/middleware"
	"github.com/NiraJ01010101/chaiBackend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TweetHandler struct {
	Svc  TweetService
	Opts Options
}

// @Summary      Post a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.TweetReq  true  "Tweet text"
// @Success      201  {object}  dto.ApiResponse{data=models.Tweet}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/tweets [post]
func (h *TweetHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	var body dto.TweetReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	tw, err := h.Svc.Create(ctx, uid, body.Content)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, tw, "tweet created successfully")
}

// @Summary      Tweets of a user
// @Description  Newest first, with like count and whether the caller liked each one.
// @Tags         tweets
// @Produce      json
// @Param        userId  path  string  true  "User ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse{data=[]dto.TweetRow}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tweets/user/{userId} [get]
func (h *TweetHandler) ListByUser(c *fiber.Ctx) error {
	owner, err := utils.ParamOID(c, "userId")
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	rows, err := h.Svc.ListByUser(ctx, owner, middleware.ViewerID(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, rows, "tweets fetched successfully")
}

// @Summary      Edit a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId  path  string        true  "Tweet ID (hex ObjectID)"
// @Param        body     body  dto.TweetReq  true  "New text"
// @Success      200  {object}  dto.ApiResponse{data=models.Tweet}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tweets/{tweetId} [patch]
func (h *TweetHandler) Update(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := utils.ParamOID(c, "tweetId")
	if err != nil {
		return err
	}
	var body dto.TweetReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	tw, err := h.Svc.Update(ctx, uid, id, body.Content)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, tw, "tweet updated successfully")
}

// @Summary      Delete a tweet
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        tweetId  path  string  true  "Tweet ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tweets/{tweetId} [delete]
func (h *TweetHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := utils.ParamOID(c, "tweetId")
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	if err := h.Svc.Delete(ctx, uid, id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, fiber.Map{}, "tweet deleted successfully")
}
