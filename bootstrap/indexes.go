package bootstrap

import (
	"context"

	"github.com/NiraJ01010101/chaiBackend/internal/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes is idempotent; CreateMany is a no-op for indexes that already exist
// with the same keys and options.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		models.ColUsers: {
			{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_username"),
			},
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
		// one like per user per target; the two unused target fields are stored as null
		models.ColLikes: {
			{
				Keys: bson.D{
					{Key: "likedBy", Value: 1},
					{Key: "video", Value: 1},
					{Key: "comment", Value: 1},
					{Key: "tweet", Value: 1},
				},
				Options: options.Index().SetUnique(true).SetName("uniq_likedby_target"),
			},
			{Keys: bson.D{{Key: "video", Value: 1}}, Options: options.Index().SetName("idx_video")},
			{Keys: bson.D{{Key: "comment", Value: 1}}, Options: options.Index().SetName("idx_comment")},
			{Keys: bson.D{{Key: "tweet", Value: 1}}, Options: options.Index().SetName("idx_tweet")},
		},
		models.ColSubscriptions: {
			{
				Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_subscriber_channel"),
			},
			{Keys: bson.D{{Key: "channel", Value: 1}}, Options: options.Index().SetName("idx_channel")},
		},
		models.ColVideos: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("idx_owner_created")},
		},
		models.ColComments: {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("idx_video_created")},
		},
		models.ColTweets: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("idx_owner_created")},
		},
		models.ColPlaylists: {
			{Keys: bson.D{{Key: "owner", Value: 1}}, Options: options.Index().SetName("idx_owner")},
		},
	}

	for col, idx := range specs {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, idx); err != nil {
			return errors.Wrapf(err, "ensure indexes on %s", col)
		}
	}
	return nil
}
