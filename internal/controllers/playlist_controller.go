package controllers

import (
	"context"
	"net/http"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/middleware"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type PlaylistHandler struct {
	Svc  PlaylistService
	Opts Options
}

// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PlaylistReq  true  "Name and description"
// @Success      201  {object}  dto.ApiResponse{data=models.Playlist}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/playlists [post]
func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	var body dto.PlaylistReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	p, err := h.Svc.Create(ctx, uid, body.Name, body.Description)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, p, "playlist created successfully")
}

// @Summary      Playlists of a user
// @Tags         playlists
// @Produce      json
// @Param        userId  path  string  true  "User ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse{data=[]dto.PlaylistRow}
// @Router       /api/v1/playlists/user/{userId} [get]
func (h *PlaylistHandler) ListByUser(c *fiber.Ctx) error {
	owner, err := utils.ParamOID(c, "userId")
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	rows, err := h.Svc.ListByUser(ctx, owner)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, rows, "playlists fetched successfully")
}

// @Summary      Get a playlist
// @Description  Playlist with its videos in insertion order.
// @Tags         playlists
// @Produce      json
// @Param        playlistId  path  string  true  "Playlist ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse{data=dto.PlaylistDetail}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/playlists/{playlistId} [get]
func (h *PlaylistHandler) Get(c *fiber.Ctx) error {
	id, err := utils.ParamOID(c, "playlistId")
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	p, err := h.Svc.Get(ctx, id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, p, "playlist fetched successfully")
}

// @Summary      Rename or describe a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId  path  string           true  "Playlist ID (hex ObjectID)"
// @Param        body        body  dto.PlaylistReq  true  "New name and/or description"
// @Success      200  {object}  dto.ApiResponse{data=models.Playlist}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/playlists/{playlistId} [patch]
func (h *PlaylistHandler) Update(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := utils.ParamOID(c, "playlistId")
	if err != nil {
		return err
	}
	var body dto.PlaylistReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	p, err := h.Svc.Update(ctx, uid, id, body.Name, body.Description)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, p, "playlist updated successfully")
}

// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        playlistId  path  string  true  "Playlist ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/playlists/{playlistId} [delete]
func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	id, err := utils.ParamOID(c, "playlistId")
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	if err := h.Svc.Delete(ctx, uid, id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, fiber.Map{}, "playlist deleted successfully")
}

// @Summary      Add a video to a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        videoId     path  string  true  "Video ID (hex ObjectID)"
// @Param        playlistId  path  string  true  "Playlist ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse{data=models.Playlist}
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/playlists/add/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) AddVideo(c *fiber.Ctx) error {
	return h.changeVideos(c, h.Svc.AddVideo, "video added to playlist")
}

// @Summary      Remove a video from a playlist
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        videoId     path  string  true  "Video ID (hex ObjectID)"
// @Param        playlistId  path  string  true  "Playlist ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse{data=models.Playlist}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/playlists/remove/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) RemoveVideo(c *fiber.Ctx) error {
	return h.changeVideos(c, h.Svc.RemoveVideo, "video removed from playlist")
}

func (h *PlaylistHandler) changeVideos(c *fiber.Ctx, op func(ctx context.Context, user, id, videoID bson.ObjectID) (*models.Playlist, error), msg string) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	videoID, err := utils.ParamOID(c, "videoId")
	if err != nil {
		return err
	}
	id, err := utils.ParamOID(c, "playlistId")
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	p, err := op(ctx, uid, id, videoID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, p, msg)
}
