package repository

import (
	"context"
	"time"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type TweetRepository struct {
	ColTweets *mongo.Collection
	ColLikes  *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{
		ColTweets: db.Collection(models.ColTweets),
		ColLikes:  db.Collection(models.ColLikes),
	}
}

func (r *TweetRepository) Create(ctx context.Context, owner bson.ObjectID, content string) (*models.Tweet, error) {
	now := time.Now().UTC()
	t := &models.Tweet{ID: bson.NewObjectID(), Content: content, Owner: owner, CreatedAt: now, UpdatedAt: now}
	if _, err := r.ColTweets.InsertOne(ctx, t); err != nil {
		return nil, errors.Wrap(err, "insert tweet")
	}
	return t, nil
}

func (r *TweetRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Tweet, error) {
	var t models.Tweet
	if err := r.ColTweets.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find tweet")
	}
	return &t, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, owner bson.ObjectID, viewer *bson.ObjectID) ([]dto.TweetRow, error) {
	return readmodel.FetchAll[dto.TweetRow](ctx, r.ColTweets, readmodel.UserTweets(owner, viewer))
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*models.Tweet, error) {
	var t models.Tweet
	err := r.ColTweets.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "update tweet")
	}
	return &t, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.ColTweets.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "delete tweet")
	}
	if res.DeletedCount == 0 {
		return false, nil
	}
	if _, err := r.ColLikes.DeleteMany(ctx, bson.M{"tweet": id}); err != nil {
		return true, errors.Wrap(err, "delete tweet likes")
	}
	return true, nil
}

func (r *TweetRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	n, err := r.ColTweets.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	return n > 0, errors.Wrap(err, "count tweet")
}
