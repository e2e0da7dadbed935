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

type PlaylistRepository struct {
	ColPlaylists *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{ColPlaylists: db.Collection(models.ColPlaylists)}
}

func (r *PlaylistRepository) Create(ctx context.Context, owner bson.ObjectID, name, description string) (*models.Playlist, error) {
	now := time.Now().UTC()
	p := &models.Playlist{
		ID:          bson.NewObjectID(),
		Name:        name,
		Description: description,
		Owner:       owner,
		Videos:      []bson.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.ColPlaylists.InsertOne(ctx, p); err != nil {
		return nil, errors.Wrap(err, "insert playlist")
	}
	return p, nil
}

func (r *PlaylistRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Playlist, error) {
	var p models.Playlist
	if err := r.ColPlaylists.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find playlist")
	}
	return &p, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]dto.PlaylistRow, error) {
	return readmodel.FetchAll[dto.PlaylistRow](ctx, r.ColPlaylists, readmodel.UserPlaylists(owner))
}

func (r *PlaylistRepository) Detail(ctx context.Context, id bson.ObjectID) (*dto.PlaylistDetail, error) {
	return readmodel.FetchOne[dto.PlaylistDetail](ctx, r.ColPlaylists, readmodel.PlaylistDetail(id))
}

func (r *PlaylistRepository) Update(ctx context.Context, id bson.ObjectID, name, description string) (*models.Playlist, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if name != "" {
		set["name"] = name
	}
	if description != "" {
		set["description"] = description
	}
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.ColPlaylists.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, errors.Wrap(err, "delete playlist")
	}
	return res.DeletedCount > 0, nil
}

// AddVideo appends videoID only when the playlist does not hold it yet.
// A nil playlist with a nil error means the video was already there.
func (r *PlaylistRepository) AddVideo(ctx context.Context, id, videoID bson.ObjectID) (*models.Playlist, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": id, "videos": bson.M{"$ne": videoID}},
		bson.M{
			"$push": bson.M{"videos": videoID},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		})
}

// RemoveVideo pulls videoID; nil means the playlist did not hold it.
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (*models.Playlist, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"_id": id, "videos": videoID},
		bson.M{
			"$pull": bson.M{"videos": videoID},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		})
}

func (r *PlaylistRepository) findOneAndUpdate(ctx context.Context, filter bson.M, update bson.M) (*models.Playlist, error) {
	var p models.Playlist
	err := r.ColPlaylists.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "update playlist")
	}
	return &p, nil
}
