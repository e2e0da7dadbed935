package controllers

import (
	"net/http"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/middleware"
	"github.com/NiraJ01010101/chaiBackend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	Svc  CommentService
	Opts Options
}

// @Summary      List comments of a video
// @Description  Newest first, each with its like count.
// @Tags         comments
// @Produce      json
// @Param        videoId  path   string  true   "Video ID (hex ObjectID)"
// @Param        page     query  int     false  "Page number (>=1)" default(1)
// @Param        limit    query  int     false  "Page size (>=1)" default(10)
// @Success      200  {object}  dto.ApiResponse{data=dto.CommentPage}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/comments/{videoId} [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	videoID, err := utils.ParamOID(c, "videoId")
	if err != nil {
		return err
	}
	p, err := h.Opts.page(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	res, err := h.Svc.List(ctx, videoID, p)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.CommentPage{
		Comments:   res.Items,
		TotalCount: res.TotalCount,
		Page:       res.Page,
		Limit:      res.Limit,
	}, "comments fetched successfully")
}

// @Summary      Comment on a video
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path  string          true  "Video ID (hex ObjectID)"
// @Param        body     body  dto.CommentReq  true  "Comment text"
// @Success      201  {object}  dto.ApiResponse{data=models.Comment}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/comments/{videoId} [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	videoID, err := utils.ParamOID(c, "videoId")
	if err != nil {
		return err
	}
	var body dto.CommentReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	com, err := h.Svc.Add(ctx, uid, videoID, body.Content)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, com, "comment added successfully")
}

// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId  path  string          true  "Comment ID (hex ObjectID)"
// @Param        body       body  dto.CommentReq  true  "New text"
// @Success      200  {object}  dto.ApiResponse{data=models.Comment}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/comments/c/{commentId} [patch]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := utils.ParamOID(c, "commentId")
	if err != nil {
		return err
	}
	var body dto.CommentReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	com, err := h.Svc.Update(ctx, uid, id, body.Content)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, com, "comment updated successfully")
}

// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId  path  string  true  "Comment ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/comments/c/{commentId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := utils.ParamOID(c, "commentId")
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	if err := h.Svc.Delete(ctx, uid, id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, fiber.Map{}, "comment deleted successfully")
}
