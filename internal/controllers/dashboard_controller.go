package controllers

import (
	"net/http"

	"github.com/NiraJ01010101/chaiBackend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Svc  DashboardService
	Opts Options
}

// @Summary      Channel totals for the caller
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ApiResponse{data=dto.ChannelStats}
// @Router       /api/v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	st, err := h.Svc.Stats(ctx, uid)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, st, "channel stats fetched successfully")
}

// @Summary      The caller's uploads
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ApiResponse{data=[]dto.DashboardVideo}
// @Router       /api/v1/dashboard/videos [get]
func (h *DashboardHandler) Videos(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	videos, err := h.Svc.Videos(ctx, uid)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, videos, "channel videos fetched successfully")
}
