package middleware

import (
	"github.com/NiraJ01010101/chaiBackend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UIDObjectID returns the authenticated user's id from Locals.
func UIDObjectID(c *fiber.Ctx) (bson.ObjectID, error) {
	uid, ok := c.Locals(localUserID).(string)
	if !ok || uid == "" {
		return bson.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, "unauthorized request")
	}
	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, "unauthorized request")
	}
	return oid, nil
}

// ViewerID is UIDObjectID for routes that also serve anonymous callers.
func ViewerID(c *fiber.Ctx) *bson.ObjectID {
	oid, err := UIDObjectID(c)
	if err != nil {
		return nil
	}
	return &oid
}

func CurrentUser(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(localUser).(*models.User)
	return u
}
