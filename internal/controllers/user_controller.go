package controllers

import (
	"net/http"
	"time"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/middleware"
	"github.com/NiraJ01010101/chaiBackend/internal/services"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Svc  UserService
	Opts Options
}

// @Summary      Register
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullname    formData  string  true   "Full name"
// @Param        email       formData  string  true   "Email"
// @Param        username    formData  string  true   "Username"
// @Param        password    formData  string  true   "Password"
// @Param        avatar      formData  file    false  "Avatar image"
// @Param        coverImage  formData  file    false  "Cover image"
// @Success      201  {object}  dto.ApiResponse{data=dto.UserResp}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterReq
	if err := parseBody(c, &body); err != nil {
		return err
	}
	avatar, err := h.Opts.saveUpload(c, "avatar")
	if err != nil {
		return err
	}
	cover, err := h.Opts.saveUpload(c, "coverImage")
	if err != nil {
		discardUploads(avatar)
		return err
	}
	defer discardUploads(avatar, cover)

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	u, err := h.Svc.Register(ctx, services.RegisterInput{RegisterReq: body, AvatarPath: avatar, CoverImagePath: cover})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, dto.NewUserResp(u), "user registered successfully")
}

// @Summary      Log in
// @Description  Accepts email or username. Sets accessToken and refreshToken cookies.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginReq  true  "Credentials"
// @Success      200  {object}  dto.ApiResponse{data=dto.LoginResp}
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	res, err := h.Svc.Login(ctx, body)
	if err != nil {
		return err
	}
	h.setTokenCookies(c, res.AccessToken, res.RefreshToken)
	return respond(c, http.StatusOK, res, "user logged in successfully")
}

// @Summary      Log out
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/v1/users/logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	if err := h.Svc.Logout(ctx, uid); err != nil {
		return err
	}
	h.clearTokenCookies(c)
	return respond(c, http.StatusOK, fiber.Map{}, "user logged out")
}

// @Summary      Rotate tokens
// @Description  Reads the refreshToken cookie, or refreshToken from the body.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshReq  false  "Refresh token"
// @Success      200  {object}  dto.ApiResponse{data=dto.TokenPair}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/users/refresh-token [post]
func (h *UserHandler) Refresh(c *fiber.Ctx) error {
	token := c.Cookies(middleware.RefreshCookie)
	if token == "" && len(c.Body()) > 0 {
		var body dto.RefreshReq
		if err := parseBody(c, &body); err != nil {
			return err
		}
		token = body.RefreshToken
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	pair, err := h.Svc.Refresh(ctx, token)
	if err != nil {
		return err
	}
	h.setTokenCookies(c, pair.AccessToken, pair.RefreshToken)
	return respond(c, http.StatusOK, pair, "access token refreshed")
}

// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ChangePasswordReq  true  "Old and new password"
// @Success      200  {object}  dto.ApiResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/users/change-password [post]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	var body dto.ChangePasswordReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	if err := h.Svc.ChangePassword(ctx, uid, body); err != nil {
		return err
	}
	return respond(c, http.StatusOK, fiber.Map{}, "password changed successfully")
}

// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ApiResponse{data=dto.UserResp}
// @Router       /api/v1/users/current-user [get]
func (h *UserHandler) Current(c *fiber.Ctx) error {
	if u := middleware.CurrentUser(c); u != nil {
		return respond(c, http.StatusOK, dto.NewUserResp(u), "current user fetched successfully")
	}
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	u, err := h.Svc.Current(ctx, uid)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.NewUserResp(u), "current user fetched successfully")
}

// @Summary      Update name or email
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateAccountReq  true  "Fields to change"
// @Success      200  {object}  dto.ApiResponse{data=dto.UserResp}
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/users/update-account [patch]
func (h *UserHandler) UpdateAccount(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	var body dto.UpdateAccountReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	u, err := h.Svc.UpdateAccount(ctx, uid, body)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto.NewUserResp(u), "account details updated successfully")
}

// SetImage returns the handler replacing the avatar or the cover image.
//
// @Summary      Replace avatar or cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar      formData  file  false  "Avatar image (PATCH /avatar)"
// @Param        coverImage  formData  file  false  "Cover image (PATCH /cover-image)"
// @Success      200  {object}  dto.ApiResponse{data=dto.UserResp}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/users/avatar [patch]
// @Router       /api/v1/users/cover-image [patch]
func (h *UserHandler) SetImage(field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}
		path, err := h.Opts.saveUpload(c, field)
		if err != nil {
			return err
		}
		defer discardUploads(path)

		ctx, cancel := h.Opts.ctx(c)
		defer cancel()

		u, err := h.Svc.SetImage(ctx, uid, field, path)
		if err != nil {
			return err
		}
		return respond(c, http.StatusOK, dto.NewUserResp(u), field+" updated successfully")
	}
}

// @Summary      Channel profile
// @Description  Subscriber counts, plus isSubscribed for a signed-in caller.
// @Tags         users
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  dto.ApiResponse{data=dto.ChannelProfile}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/c/{username} [get]
func (h *UserHandler) ChannelProfile(c *fiber.Ctx) error {
	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	p, err := h.Svc.ChannelProfile(ctx, c.Params("username"), middleware.ViewerID(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, p, "user channel fetched successfully")
}

// @Summary      Watch history
// @Description  Most recently watched first.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ApiResponse{data=[]dto.HistoryVideo}
// @Router       /api/v1/users/history [get]
func (h *UserHandler) WatchHistory(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	videos, err := h.Svc.WatchHistory(ctx, uid)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, videos, "watch history fetched successfully")
}

// @Summary      Request a password reset link
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordReq  true  "Account email"
// @Success      200  {object}  dto.ApiResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/forgot-password [post]
func (h *UserHandler) ForgotPassword(c *fiber.Ctx) error {
	var body dto.ForgotPasswordReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	if err := h.Svc.ForgotPassword(ctx, body.Email); err != nil {
		return err
	}
	return respond(c, http.StatusOK, fiber.Map{}, "password reset link sent to your email")
}

// @Summary      Reset password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        token  path  string                true  "Reset token from the emailed link"
// @Param        body   body  dto.ResetPasswordReq  true  "New password"
// @Success      200  {object}  dto.ApiResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/users/reset-password/{token} [post]
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	var body dto.ResetPasswordReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := h.Opts.ctx(c)
	defer cancel()

	if err := h.Svc.ResetPassword(ctx, c.Params("token"), body.Password); err != nil {
		return err
	}
	return respond(c, http.StatusOK, fiber.Map{}, "password reset successfully")
}

func (h *UserHandler) setTokenCookies(c *fiber.Ctx, access, refresh string) {
	now := time.Now()
	c.Cookie(h.cookie(middleware.AccessCookie, access, now.Add(h.Opts.AccessTTL)))
	c.Cookie(h.cookie(middleware.RefreshCookie, refresh, now.Add(h.Opts.RefreshTTL)))
}

func (h *UserHandler) clearTokenCookies(c *fiber.Ctx) {
	past := time.Unix(0, 0)
	c.Cookie(h.cookie(middleware.AccessCookie, "", past))
	c.Cookie(h.cookie(middleware.RefreshCookie, "", past))
}

func (h *UserHandler) cookie(name, value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.Opts.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
