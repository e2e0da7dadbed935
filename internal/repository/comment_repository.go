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

type CommentRepository struct {
	ColComments *mongo.Collection
	ColLikes    *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		ColComments: db.Collection(models.ColComments),
		ColLikes:    db.Collection(models.ColLikes),
	}
}

// ListByVideo pages comments newest first with their like counts.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.CommentRow], error) {
	return readmodel.FetchPage[dto.CommentRow](ctx, r.ColComments, readmodel.VideoComments(videoID, p), p)
}

func (r *CommentRepository) Create(ctx context.Context, videoID, ownerID bson.ObjectID, content string) (*models.Comment, error) {
	now := time.Now().UTC()
	doc := &models.Comment{
		ID:        bson.NewObjectID(),
		Content:   content,
		Video:     videoID,
		Owner:     ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.ColComments.InsertOne(ctx, doc); err != nil {
		return nil, errors.Wrap(err, "insert comment")
	}
	return doc, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Comment, error) {
	var c models.Comment
	if err := r.ColComments.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find comment")
	}
	return &c, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*models.Comment, error) {
	var c models.Comment
	err := r.ColComments.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "update comment")
	}
	return &c, nil
}

// Delete removes the comment and its likes. false means it did not exist.
func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.ColComments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "delete comment")
	}
	if res.DeletedCount == 0 {
		return false, nil
	}
	if _, err := r.ColLikes.DeleteMany(ctx, bson.M{"comment": id}); err != nil {
		return true, errors.Wrap(err, "delete comment likes")
	}
	return true, nil
}
