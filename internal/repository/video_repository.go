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

type VideoRepository struct {
	ColVideos    *mongo.Collection
	ColComments  *mongo.Collection
	ColLikes     *mongo.Collection
	ColPlaylists *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{
		ColVideos:    db.Collection(models.ColVideos),
		ColComments:  db.Collection(models.ColComments),
		ColLikes:     db.Collection(models.ColLikes),
		ColPlaylists: db.Collection(models.ColPlaylists),
	}
}

func (r *VideoRepository) List(ctx context.Context, f readmodel.VideoFilter, p readmodel.Page) (readmodel.Paged[dto.VideoCard], error) {
	return readmodel.FetchPage[dto.VideoCard](ctx, r.ColVideos, readmodel.ListVideos(f, p), p)
}

// Detail returns nil when the video does not exist.
func (r *VideoRepository) Detail(ctx context.Context, id bson.ObjectID) (*dto.VideoDetail, error) {
	return readmodel.FetchOne[dto.VideoDetail](ctx, r.ColVideos, readmodel.VideoDetail(id))
}

func (r *VideoRepository) ByOwner(ctx context.Context, owner bson.ObjectID) ([]dto.DashboardVideo, error) {
	return readmodel.FetchAll[dto.DashboardVideo](ctx, r.ColVideos, readmodel.OwnerVideos(owner))
}

// Stats aggregates views and likes over every video of owner. A channel
// without videos gets zeros.
func (r *VideoRepository) Stats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, error) {
	st, err := readmodel.FetchOne[dto.ChannelStats](ctx, r.ColVideos, readmodel.ChannelStats(owner))
	if err != nil || st == nil {
		return dto.ChannelStats{}, err
	}
	return *st, nil
}

func (r *VideoRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Video, error) {
	var v models.Video
	if err := r.ColVideos.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find video")
	}
	return &v, nil
}

func (r *VideoRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	n, err := r.ColVideos.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "count video")
	}
	return n > 0, nil
}

func (r *VideoRepository) Create(ctx context.Context, v *models.Video) error {
	now := time.Now().UTC()
	if v.ID.IsZero() {
		v.ID = bson.NewObjectID()
	}
	v.CreatedAt, v.UpdatedAt = now, now
	_, err := r.ColVideos.InsertOne(ctx, v)
	return errors.Wrap(err, "insert video")
}

// UpdateDetails sets title and description, and thumbnail when non-empty.
// It returns the updated document, or nil when the video is gone.
func (r *VideoRepository) UpdateDetails(ctx context.Context, id bson.ObjectID, title, description, thumbnail string) (*models.Video, error) {
	set := bson.M{"title": title, "description": description, "updatedAt": time.Now().UTC()}
	if thumbnail != "" {
		set["thumbnail"] = thumbnail
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

// SetPublished stores value, or flips the current flag when value is nil.
func (r *VideoRepository) SetPublished(ctx context.Context, id bson.ObjectID, value *bool) (*models.Video, error) {
	now := time.Now().UTC()
	if value != nil {
		return r.findOneAndUpdate(ctx, bson.M{"_id": id},
			bson.M{"$set": bson.M{"isPublished": *value, "updatedAt": now}})
	}
	flip := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: bson.D{{Key: "$not", Value: bson.A{"$isPublished"}}}},
			{Key: "updatedAt", Value: now},
		}}},
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, flip)
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	_, err := r.ColVideos.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return errors.Wrap(err, "increment views")
}

// Delete removes the video and everything that points at it: its comments,
// likes on the video and on those comments, and playlist entries.
// It returns the deleted document, or nil when nothing was deleted.
func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) (*models.Video, error) {
	var v models.Video
	if err := r.ColVideos.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "delete video")
	}

	commentIDs, err := r.commentIDs(ctx, id)
	if err != nil {
		return &v, err
	}
	if len(commentIDs) > 0 {
		if _, err := r.ColLikes.DeleteMany(ctx, bson.M{"comment": bson.M{"$in": commentIDs}}); err != nil {
			return &v, errors.Wrap(err, "delete comment likes")
		}
	}
	if _, err := r.ColComments.DeleteMany(ctx, bson.M{"video": id}); err != nil {
		return &v, errors.Wrap(err, "delete comments")
	}
	if _, err := r.ColLikes.DeleteMany(ctx, bson.M{"video": id}); err != nil {
		return &v, errors.Wrap(err, "delete video likes")
	}
	if _, err := r.ColPlaylists.UpdateMany(ctx,
		bson.M{"videos": id},
		bson.M{"$pull": bson.M{"videos": id}},
	); err != nil {
		return &v, errors.Wrap(err, "pull video from playlists")
	}
	return &v, nil
}

func (r *VideoRepository) commentIDs(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error) {
	cur, err := r.ColComments.Find(ctx, bson.M{"video": videoID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, errors.Wrap(err, "find comments")
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "decode comment ids")
	}
	ids := make([]bson.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func (r *VideoRepository) findOneAndUpdate(ctx context.Context, filter bson.M, update any) (*models.Video, error) {
	var v models.Video
	err := r.ColVideos.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "update video")
	}
	return &v, nil
}
