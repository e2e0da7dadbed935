package controllers

import (
	"context"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"
	"github.com/NiraJ01010101/chaiBackend/internal/services"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service contracts the handlers depend on; implemented by internal/services.

type VideoService interface {
	List(ctx context.Context, f readmodel.VideoFilter, p readmodel.Page) (readmodel.Paged[dto.VideoCard], error)
	Get(ctx context.Context, id bson.ObjectID, viewer *bson.ObjectID) (*dto.VideoDetail, error)
	Publish(ctx context.Context, in services.PublishVideoInput) (*models.Video, error)
	Update(ctx context.Context, in services.UpdateVideoInput) (*models.Video, error)
	Delete(ctx context.Context, user, id bson.ObjectID) error
	TogglePublish(ctx context.Context, user, id bson.ObjectID, value *bool) (bool, error)
}

type CommentService interface {
	List(ctx context.Context, videoID bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.CommentRow], error)
	Add(ctx context.Context, user, videoID bson.ObjectID, content string) (*models.Comment, error)
	Update(ctx context.Context, user, id bson.ObjectID, content string) (*models.Comment, error)
	Delete(ctx context.Context, user, id bson.ObjectID) error
}

type LikeService interface {
	Toggle(ctx context.Context, user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) (dto.ToggleLikeResp, error)
	LikedVideos(ctx context.Context, user bson.ObjectID) ([]dto.LikedVideo, error)
}

type SubscriptionService interface {
	Toggle(ctx context.Context, user, channel bson.ObjectID) (*models.Subscription, error)
	Subscribers(ctx context.Context, channel bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.SubscriberRow], error)
	Channels(ctx context.Context, subscriber bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.SubscribedChannelRow], error)
}

type TweetService interface {
	Create(ctx context.Context, user bson.ObjectID, content string) (*models.Tweet, error)
	ListByUser(ctx context.Context, owner bson.ObjectID, viewer *bson.ObjectID) ([]dto.TweetRow, error)
	Update(ctx context.Context, user, id bson.ObjectID, content string) (*models.Tweet, error)
	Delete(ctx context.Context, user, id bson.ObjectID) error
}

type PlaylistService interface {
	Create(ctx context.Context, user bson.ObjectID, name, description string) (*models.Playlist, error)
	ListByUser(ctx context.Context, owner bson.ObjectID) ([]dto.PlaylistRow, error)
	Get(ctx context.Context, id bson.ObjectID) (*dto.PlaylistDetail, error)
	Update(ctx context.Context, user, id bson.ObjectID, name, description string) (*models.Playlist, error)
	Delete(ctx context.Context, user, id bson.ObjectID) error
	AddVideo(ctx context.Context, user, id, videoID bson.ObjectID) (*models.Playlist, error)
	RemoveVideo(ctx context.Context, user, id, videoID bson.ObjectID) (*models.Playlist, error)
}

type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
	Login(ctx context.Context, in dto.LoginReq) (dto.LoginResp, error)
	Logout(ctx context.Context, user bson.ObjectID) error
	Refresh(ctx context.Context, token string) (dto.TokenPair, error)
	ChangePassword(ctx context.Context, user bson.ObjectID, in dto.ChangePasswordReq) error
	Current(ctx context.Context, user bson.ObjectID) (*models.User, error)
	UpdateAccount(ctx context.Context, user bson.ObjectID, in dto.UpdateAccountReq) (*models.User, error)
	SetImage(ctx context.Context, user bson.ObjectID, field, localPath string) (*models.User, error)
	ChannelProfile(ctx context.Context, username string, viewer *bson.ObjectID) (*dto.ChannelProfile, error)
	WatchHistory(ctx context.Context, user bson.ObjectID) ([]dto.HistoryVideo, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type DashboardService interface {
	Stats(ctx context.Context, channel bson.ObjectID) (dto.ChannelStats, error)
	Videos(ctx context.Context, channel bson.ObjectID) ([]dto.DashboardVideo, error)
}
