package repository

import (
	"context"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type LikeRepository struct {
	ColLikes *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{ColLikes: db.Collection(models.ColLikes)}
}

// Toggle removes the user's like on the target if there is one, otherwise
// inserts it. The unique (likedBy, video, comment, tweet) index turns a
// concurrent second insert into a duplicate key, which still means liked.
func (r *LikeRepository) Toggle(ctx context.Context, userID bson.ObjectID, target models.LikeTarget, targetID bson.ObjectID) (liked bool, err error) {
	res, err := r.ColLikes.DeleteOne(ctx, bson.M{"likedBy": userID, string(target): targetID})
	if err != nil {
		return false, errors.Wrapf(err, "delete %s like", target)
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	_, err = r.ColLikes.InsertOne(ctx, models.NewLike(userID, target, targetID))
	if err == nil || mongo.IsDuplicateKeyError(err) {
		return true, nil
	}
	return false, errors.Wrapf(err, "insert %s like", target)
}

func (r *LikeRepository) Count(ctx context.Context, target models.LikeTarget, targetID bson.ObjectID) (int64, error) {
	n, err := r.ColLikes.CountDocuments(ctx, bson.M{string(target): targetID})
	return n, errors.Wrapf(err, "count %s likes", target)
}

func (r *LikeRepository) LikedVideos(ctx context.Context, userID bson.ObjectID) ([]dto.LikedVideo, error) {
	return readmodel.FetchAll[dto.LikedVideo](ctx, r.ColLikes, readmodel.LikedVideos(userID))
}
