package controllers

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/NiraJ01010101/chaiBackend/config"
	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Options carries the request-scoped settings every handler shares.
type Options struct {
	Timeout       time.Duration
	DefaultLimit  int64
	MaxLimit      int64
	UploadDir     string
	SecureCookies bool
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func NewOptions(cfg config.Config) Options {
	return Options{
		Timeout:       cfg.RequestTimeout,
		DefaultLimit:  cfg.DefaultPageLimit,
		MaxLimit:      cfg.MaxPageLimit,
		UploadDir:     cfg.UploadDir,
		SecureCookies: cfg.IsProduction(),
		AccessTTL:     cfg.AccessTokenExpiry,
		RefreshTTL:    cfg.RefreshTokenExpiry,
	}
}

func (o Options) ctx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), o.Timeout)
}

func (o Options) page(c *fiber.Ctx) (readmodel.Page, error) {
	return readmodel.ParsePage(c.Query("page"), c.Query("limit"), o.DefaultLimit, o.MaxLimit)
}

// saveUpload stores the multipart file under field in UploadDir and returns
// its path, or "" when the request carries no such file.
func (o Options) saveUpload(c *fiber.Ctx, field string) (string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return "", nil
	}
	files := form.File[field]
	if len(files) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(o.UploadDir, 0o755); err != nil {
		return "", apperr.Wrap(errors.Wrap(err, "create upload dir"), "failed to store upload")
	}
	dst := filepath.Join(o.UploadDir, uuid.NewString()+filepath.Ext(files[0].Filename))
	if err := c.SaveFile(files[0], dst); err != nil {
		return "", apperr.Wrap(errors.Wrapf(err, "save %s", field), "failed to store upload")
	}
	return dst, nil
}

// discardUploads removes temp files the asset store did not consume.
func discardUploads(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", p).Warn("failed to remove upload")
		}
	}
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperr.InvalidArgument("invalid body")
	}
	return nil
}

func respond(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(dto.OK(status, data, message))
}
