package dto

import (
	"time"

	"github.com/NiraJ01010101/chaiBackend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type RegisterReq struct {
	Fullname string `json:"fullname" form:"fullname"`
	Email    string `json:"email"    form:"email"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateAccountReq struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

type ForgotPasswordReq struct {
	Email string `json:"email"`
}

type ResetPasswordReq struct {
	Password string `json:"password"`
}

// UserResp is the public projection of models.User.
type UserResp struct {
	ID         bson.ObjectID `json:"_id"`
	Username   string        `json:"username"`
	Email      string        `json:"email"`
	Fullname   string        `json:"fullname"`
	Avatar     string        `json:"avatar"`
	CoverImage string        `json:"coverImage"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

func NewUserResp(u *models.User) UserResp {
	return UserResp{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Fullname:   u.Fullname,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

type LoginResp struct {
	User         UserResp `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type ChannelProfile struct {
	ID                        bson.ObjectID `bson:"_id"                       json:"_id"`
	Fullname                  string        `bson:"fullname"                  json:"fullname"`
	Username                  string        `bson:"username"                  json:"username"`
	Email                     string        `bson:"email"                     json:"email"`
	Avatar                    string        `bson:"avatar"                    json:"avatar"`
	CoverImage                string        `bson:"coverImage"                json:"coverImage"`
	SubscribersCount          int64         `bson:"subscribersCount"          json:"subscribersCount"`
	ChannelsSubscribedToCount int64         `bson:"channelsSubscribedToCount" json:"channelsSubscribedToCount"`
	IsSubscribed              bool          `bson:"isSubscribed"              json:"isSubscribed"`
}

type HistoryOwner struct {
	ID       bson.ObjectID `bson:"_id"      json:"_id"`
	Fullname string        `bson:"fullname" json:"fullname"`
	Username string        `bson:"username" json:"username"`
	Avatar   string        `bson:"avatar"   json:"avatar"`
}

type HistoryVideo struct {
	ID           bson.ObjectID `bson:"_id"          json:"_id"`
	VideoFile    string        `bson:"videoFile"    json:"videoFile"`
	Thumbnail    string        `bson:"thumbnail"    json:"thumbnail"`
	Title        string        `bson:"title"        json:"title"`
	Description  string        `bson:"description"  json:"description"`
	Duration     float64       `bson:"duration"     json:"duration"`
	Views        int64         `bson:"views"        json:"views"`
	IsPublished  bool          `bson:"isPublished"  json:"isPublished"`
	Owner        bson.ObjectID `bson:"owner"        json:"owner"`
	OwnerDetails *HistoryOwner `bson:"ownerDetails" json:"ownerDetails"`
	CreatedAt    time.Time     `bson:"createdAt"    json:"createdAt"`
}

type ChannelStats struct {
	TotalVideos      int64 `bson:"totalVideos"      json:"totalVideos"`
	TotalViews       int64 `bson:"totalViews"       json:"totalViews"`
	TotalLikes       int64 `bson:"totalLikes"       json:"totalLikes"`
	TotalSubscribers int64 `bson:"totalSubscribers" json:"totalSubscribers"`
}
