package controllers

import (
	"net/http"

	"github.com/NiraJ01010101/chaiBackend/dto"

	"github.com/gofiber/fiber/v2"
)

// @Summary      Health check
// @Tags         healthcheck
// @Produce      json
// @Success      200  {object}  dto.ApiResponse{data=dto.HealthResp}
// @Router       /api/v1/healthcheck [get]
func Healthcheck(c *fiber.Ctx) error {
	return respond(c, http.StatusOK, dto.HealthResp{Status: "OK"}, "health check passed")
}
