package utils

import (
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func Oid(hex string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, apperr.InvalidArgument("invalid id " + hex)
	}
	return oid, nil
}

// ParamOID reads a hex ObjectID route parameter.
func ParamOID(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	raw := c.Params(name)
	if raw == "" {
		return bson.NilObjectID, apperr.InvalidArgument(name + " is required")
	}
	oid, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.NilObjectID, apperr.InvalidArgument("invalid " + name)
	}
	return oid, nil
}
