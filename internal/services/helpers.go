package services

import (
	"context"
	"strings"

	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/storage"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func requireText(value, field string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", apperr.InvalidArgument(field + " is required")
	}
	return v, nil
}

func requireOwner(owner, user bson.ObjectID, what string) error {
	if owner != user {
		return apperr.Forbidden("you are not allowed to modify this " + what)
	}
	return nil
}

// dropAsset deletes a stored asset by URL. Failures are logged, not returned.
func dropAsset(ctx context.Context, assets AssetStore, url string, kind storage.Kind) {
	id := storage.PublicIDFromURL(url)
	if id == "" {
		return
	}
	if err := assets.Delete(ctx, id, kind); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"publicId": id, "kind": kind}).Warn("failed to delete asset")
	}
}
