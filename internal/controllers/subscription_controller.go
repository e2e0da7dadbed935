package controllers

import (
	"net/http"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/middleware"
	"github.com/NiraJ01010101/chaiBackend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type SubscriptionHandler struct {
	Svc  SubscriptionService
	Opts Options
}

// @Summary      Toggle a subscription
// @Description  201 with the new subscription, or 200 after unsubscribing.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channelId  path  string  true  "Channel (user) ID (hex ObjectID)"
// @Success      200  {object}  dto.ApiResponse{data=dto.ToggleSubscriptionResp}
// @Success      201  {object}  dto.ApiResponse{data=dto.ToggleSubscriptionResp}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) Toggle(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	channel, err := utils.ParamOID(c, "channelId")
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	sub, err := h.Svc.Toggle(ctx, uid, channel)
	if err != nil {
		return err
	}
	if sub == nil {
		return respond(c, http.StatusOK, dto.ToggleSubscriptionResp{IsSubscribed: false}, "unsubscribed successfully")
	}
	return respond(c, http.StatusCreated, dto.ToggleSubscriptionResp{IsSubscribed: true, Subscription: sub}, "subscribed successfully")
}

// @Summary      Subscribers of a channel
// @Tags         subscriptions
// @Produce      json
// @Param        channelId  path   string  true   "Channel (user) ID (hex ObjectID)"
// @Param        page       query  int     false  "Page number (>=1)" default(1)
// @Param        limit      query  int     false  "Page size (>=1)" default(10)
// @Success      200  {object}  dto.ApiResponse{data=dto.SubscriberPage}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/subscriptions/channel/{channelId}/subscribers [get]
func (h *SubscriptionHandler) Subscribers(c *fiber.Ctx) error {
	channel, err := utils.ParamOID(c, "channelId")
	if err != nil {
		return err
	}
	p, err := h.Opts.page(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	res, err := h.Svc.Subscribers(ctx, channel, p)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.SubscriberPage{
		Subscribers: res.Items,
		TotalCount:  res.TotalCount,
		Page:        res.Page,
		Limit:       res.Limit,
	}, "subscribers fetched successfully")
}

// @Summary      Channels a user subscribes to
// @Tags         subscriptions
// @Produce      json
// @Param        subscriberId  path   string  true   "Subscriber (user) ID (hex ObjectID)"
// @Param        page          query  int     false  "Page number (>=1)" default(1)
// @Param        limit         query  int     false  "Page size (>=1)" default(10)
// @Success      200  {object}  dto.ApiResponse{data=dto.ChannelPage}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/subscriptions/subscriber/{subscriberId}/channels [get]
func (h *SubscriptionHandler) Channels(c *fiber.Ctx) error {
	subscriber, err := utils.ParamOID(c, "subscriberId")
	if err != nil {
		return err
	}
	p, err := h.Opts.page(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	res, err := h.Svc.Channels(ctx, subscriber, p)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.ChannelPage{
		Channels:   res.Items,
		TotalCount: res.TotalCount,
		Page:       res.Page,
		Limit:      res.Limit,
	}, "subscribed channels fetched successfully")
}
