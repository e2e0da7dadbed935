package services

import (
	"context"
	"time"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"
	"github.com/NiraJ01010101/chaiBackend/internal/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Store contracts. Find* methods return nil, nil when nothing matches.

type VideoStore interface {
	List(ctx context.Context, f readmodel.VideoFilter, p readmodel.Page) (readmodel.Paged[dto.VideoCard], error)
	Detail(ctx context.Context, id bson.ObjectID) (*dto.VideoDetail, error)
	ByOwner(ctx context.Context, owner bson.ObjectID) ([]dto.DashboardVideo, error)
	Stats(ctx context.Context, owner bson.ObjectID) (dto.ChannelStats, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Video, error)
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
	Create(ctx context.Context, v *models.Video) error
	UpdateDetails(ctx context.Context, id bson.ObjectID, title, description, thumbnail string) (*models.Video, error)
	SetPublished(ctx context.Context, id bson.ObjectID, value *bool) (*models.Video, error)
	IncrementViews(ctx context.Context, id bson.ObjectID) error
	Delete(ctx context.Context, id bson.ObjectID) (*models.Video, error)
}

type CommentStore interface {
	ListByVideo(ctx context.Context, videoID bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.CommentRow], error)
	Create(ctx context.Context, videoID, ownerID bson.ObjectID, content string) (*models.Comment, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Comment, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*models.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
}

type LikeStore interface {
	Toggle(ctx context.Context, userID bson.ObjectID, target models.LikeTarget, targetID bson.ObjectID) (bool, error)
	Count(ctx context.Context, target models.LikeTarget, targetID bson.ObjectID) (int64, error)
	LikedVideos(ctx context.Context, userID bson.ObjectID) ([]dto.LikedVideo, error)
}

type SubscriptionStore interface {
	Toggle(ctx context.Context, subscriber, channel bson.ObjectID) (*models.Subscription, error)
	Subscribers(ctx context.Context, channel bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.SubscriberRow], error)
	Channels(ctx context.Context, subscriber bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.SubscribedChannelRow], error)
	CountSubscribers(ctx context.Context, channel bson.ObjectID) (int64, error)
}

type TweetStore interface {
	Create(ctx context.Context, owner bson.ObjectID, content string) (*models.Tweet, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Tweet, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID, viewer *bson.ObjectID) ([]dto.TweetRow, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*models.Tweet, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
}

type PlaylistStore interface {
	Create(ctx context.Context, owner bson.ObjectID, name, description string) (*models.Playlist, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Playlist, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]dto.PlaylistRow, error)
	Detail(ctx context.Context, id bson.ObjectID) (*dto.PlaylistDetail, error)
	Update(ctx context.Context, id bson.ObjectID, name, description string) (*models.Playlist, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
	AddVideo(ctx context.Context, id, videoID bson.ObjectID) (*models.Playlist, error)
	RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (*models.Playlist, error)
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByLogin(ctx context.Context, email, username string) (*models.User, error)
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)
	SetRefreshToken(ctx context.Context, id bson.ObjectID, token *string) error
	SetPassword(ctx context.Context, id bson.ObjectID, hash string) error
	UpdateAccount(ctx context.Context, id bson.ObjectID, fullname, email string) (*models.User, error)
	SetAsset(ctx context.Context, id bson.ObjectID, field, url string) (string, *models.User, error)
	PushWatchHistory(ctx context.Context, id, videoID bson.ObjectID) error
	ChannelProfile(ctx context.Context, username string, viewer *bson.ObjectID) (*dto.ChannelProfile, error)
	WatchHistory(ctx context.Context, id bson.ObjectID) ([]dto.HistoryVideo, error)
}

// Capabilities provided outside the store.

type AssetStore interface {
	Upload(ctx context.Context, localPath string, kind storage.Kind) (*storage.Asset, error)
	Delete(ctx context.Context, publicID string, kind storage.Kind) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type ResetStore interface {
	Save(ctx context.Context, id string, userID bson.ObjectID, ttl time.Duration) error
	Consume(ctx context.Context, id string) (bson.ObjectID, bool, error)
}

type TokenIssuer interface {
	IssueAccess(uid bson.ObjectID) (string, error)
	IssueRefresh(uid bson.ObjectID) (string, error)
	IssueReset(uid bson.ObjectID) (string, string, error)
	VerifyRefresh(token string) (bson.ObjectID, error)
	VerifyReset(token string) (bson.ObjectID, string, error)
	ResetTTL() time.Duration
}
