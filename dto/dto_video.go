package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// VideoCard is one ListVideos row.
type VideoCard struct {
	ID          bson.ObjectID `bson:"_id"         json:"_id"`
	Title       string        `bson:"title"       json:"title"`
	Description string        `bson:"description" json:"description"`
	Thumbnail   string        `bson:"thumbnail"   json:"thumbnail"`
	Duration    float64       `bson:"duration"    json:"duration"`
	Views       int64         `bson:"views"       json:"views"`
	IsPublished bool          `bson:"isPublished" json:"isPublished"`
	Owner       bson.ObjectID `bson:"owner"       json:"owner"`
	ChannelName *string       `bson:"channelName" json:"channelName"`
	VideoAvatar *string       `bson:"videoAvatar" json:"videoAvatar"`
	CreatedAt   time.Time     `bson:"createdAt"   json:"createdAt"`
}

type VideoOwner struct {
	Fullname string `bson:"fullname" json:"fullname"`
	Email    string `bson:"email"    json:"email"`
}

type VideoDetail struct {
	ID            bson.ObjectID `bson:"_id"           json:"_id"`
	VideoFile     string        `bson:"videoFile"     json:"videoFile"`
	Thumbnail     string        `bson:"thumbnail"     json:"thumbnail"`
	Title         string        `bson:"title"         json:"title"`
	Description   string        `bson:"description"   json:"description"`
	Duration      float64       `bson:"duration"      json:"duration"`
	Views         int64         `bson:"views"         json:"views"`
	IsPublished   bool          `bson:"isPublished"   json:"isPublished"`
	CreatedAt     time.Time     `bson:"createdAt"     json:"createdAt"`
	Owner         *VideoOwner   `bson:"owner"         json:"owner"`
	LikeCount     int64         `bson:"likeCount"     json:"likeCount"`
	CommentsCount int64         `bson:"commentsCount" json:"commentsCount"`
}

// DashboardVideo is a channel's own upload with its engagement counts.
type DashboardVideo struct {
	ID            bson.ObjectID `bson:"_id"           json:"_id"`
	VideoFile     string        `bson:"videoFile"     json:"videoFile"`
	Thumbnail     string        `bson:"thumbnail"     json:"thumbnail"`
	Title         string        `bson:"title"         json:"title"`
	Description   string        `bson:"description"   json:"description"`
	Duration      float64       `bson:"duration"      json:"duration"`
	Views         int64         `bson:"views"         json:"views"`
	IsPublished   bool          `bson:"isPublished"   json:"isPublished"`
	CreatedAt     time.Time     `bson:"createdAt"     json:"createdAt"`
	LikeCount     int64         `bson:"likeCount"     json:"likeCount"`
	CommentsCount int64         `bson:"commentsCount" json:"commentsCount"`
}

type UpdateVideoReq struct {
	Title       string `json:"title"       form:"title"`
	Description string `json:"description" form:"description"`
}

type PublishVideoReq struct {
	Title       string `json:"title"       form:"title"`
	Description string `json:"description" form:"description"`
}

// TogglePublishReq: a missing isPublished flips the current value.
type TogglePublishReq struct {
	IsPublished *bool `json:"isPublished"`
}

type PublishStatusResp struct {
	IsPublished bool `json:"isPublished"`
}

type ListVideosQuery struct {
	Page     string `query:"page"`
	Limit    string `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserID   string `query:"userId"`
}
