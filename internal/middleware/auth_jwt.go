package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/NiraJ01010101/chaiBackend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"

	localUserID = "user_id"
	localUser   = "user"
)

type AccessVerifier interface {
	VerifyAccess(token string) (bson.ObjectID, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
}

// JWTAuth resolves the caller from the accessToken cookie or a Bearer header.
// Requests without a usable token (missing, expired, or naming a deleted
// user) pass through anonymously; RequireAuth turns that into a 401 where a
// caller is needed.
func JWTAuth(tokens AccessVerifier, users UserFinder, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearerOrCookie(c)
		if tokenStr == "" {
			return c.Next()
		}

		uid, err := tokens.VerifyAccess(tokenStr)
		if err != nil {
			logrus.WithError(err).Debug("ignoring unusable access token")
			return c.Next()
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()

		u, err := users.FindByID(ctx, uid)
		if err != nil {
			return err
		}
		if u == nil {
			logrus.WithField("user_id", uid.Hex()).Debug("access token names a missing user")
			return c.Next()
		}

		c.Locals(localUserID, uid.Hex())
		c.Locals(localUser, u)
		return c.Next()
	}
}

// RequireAuth rejects requests that JWTAuth left anonymous.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if uid, ok := c.Locals(localUserID).(string); !ok || strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized request")
		}
		return c.Next()
	}
}

func bearerOrCookie(c *fiber.Ctx) string {
	if tok := c.Cookies(AccessCookie); tok != "" {
		return tok
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
