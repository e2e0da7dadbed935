package repository

import (
	"context"
	"strings"
	"time"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type UserRepository struct {
	ColUsers *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{ColUsers: db.Collection(models.ColUsers)}
}

// Create stores u; a taken username or email surfaces as a duplicate key error.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.WatchHistory == nil {
		u.WatchHistory = []bson.ObjectID{}
	}
	u.CreatedAt, u.UpdatedAt = now, now
	_, err := r.ColUsers.InsertOne(ctx, u)
	return errors.Wrap(err, "insert user")
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

// FindByLogin matches either identifier; empty ones are ignored.
func (r *UserRepository) FindByLogin(ctx context.Context, email, username string) (*models.User, error) {
	or := bson.A{}
	if e := strings.ToLower(strings.TrimSpace(email)); e != "" {
		or = append(or, bson.M{"email": e})
	}
	if u := strings.ToLower(strings.TrimSpace(username)); u != "" {
		or = append(or, bson.M{"username": u})
	}
	if len(or) == 0 {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"$or": or})
}

func (r *UserRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	n, err := r.ColUsers.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	return n > 0, errors.Wrap(err, "count user")
}

// SetRefreshToken stores token, or unsets it when token is nil.
func (r *UserRepository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token *string) error {
	update := bson.M{"$unset": bson.M{"refreshToken": ""}}
	if token != nil {
		update = bson.M{"$set": bson.M{"refreshToken": *token}}
	}
	_, err := r.ColUsers.UpdateOne(ctx, bson.M{"_id": id}, update)
	return errors.Wrap(err, "set refresh token")
}

func (r *UserRepository) SetPassword(ctx context.Context, id bson.ObjectID, hash string) error {
	_, err := r.ColUsers.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": hash, "updatedAt": time.Now().UTC()}})
	return errors.Wrap(err, "set password")
}

func (r *UserRepository) UpdateAccount(ctx context.Context, id bson.ObjectID, fullname, email string) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if fullname != "" {
		set["fullname"] = strings.TrimSpace(fullname)
	}
	if email != "" {
		set["email"] = strings.ToLower(strings.TrimSpace(email))
	}
	var u models.User
	err := r.ColUsers.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "update account")
	}
	return &u, nil
}

// SetAsset replaces one image field ("avatar" or "coverImage") and returns
// the previous URL so the caller can delete the old object.
func (r *UserRepository) SetAsset(ctx context.Context, id bson.ObjectID, field, url string) (previous string, user *models.User, err error) {
	var before models.User
	err = r.ColUsers.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{field: url, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.Before)).Decode(&before)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, nil
		}
		return "", nil, errors.Wrapf(err, "set %s", field)
	}

	switch field {
	case "avatar":
		previous = before.Avatar
		before.Avatar = url
	case "coverImage":
		previous = before.CoverImage
		before.CoverImage = url
	}
	return previous, &before, nil
}

// PushWatchHistory moves videoID to the end of the user's history.
func (r *UserRepository) PushWatchHistory(ctx context.Context, id, videoID bson.ObjectID) error {
	if _, err := r.ColUsers.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$pull": bson.M{"watchHistory": videoID}}); err != nil {
		return errors.Wrap(err, "pull watch history")
	}
	_, err := r.ColUsers.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$push": bson.M{"watchHistory": videoID}})
	return errors.Wrap(err, "push watch history")
}

func (r *UserRepository) ChannelProfile(ctx context.Context, username string, viewer *bson.ObjectID) (*dto.ChannelProfile, error) {
	return readmodel.FetchOne[dto.ChannelProfile](ctx, r.ColUsers, readmodel.ChannelProfile(username, viewer))
}

// WatchHistory returns the watched videos, most recent first.
func (r *UserRepository) WatchHistory(ctx context.Context, id bson.ObjectID) ([]dto.HistoryVideo, error) {
	type row struct {
		History []dto.HistoryVideo `bson:"history"`
	}
	res, err := readmodel.FetchOne[row](ctx, r.ColUsers, readmodel.WatchHistory(id))
	if err != nil {
		return nil, err
	}
	if res == nil || len(res.History) == 0 {
		return []dto.HistoryVideo{}, nil
	}
	out := make([]dto.HistoryVideo, 0, len(res.History))
	for i := len(res.History) - 1; i >= 0; i-- {
		out = append(out, res.History[i])
	}
	return out, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	if err := r.ColUsers.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find user")
	}
	return &u, nil
}
