package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PlaylistReq struct {
	Name        string `json:"name"        form:"name"`
	Description string `json:"description" form:"description"`
}

type PlaylistRow struct {
	ID          bson.ObjectID   `bson:"_id"         json:"_id"`
	Name        string          `bson:"name"        json:"name"`
	Description string          `bson:"description" json:"description"`
	Owner       bson.ObjectID   `bson:"owner"       json:"owner"`
	Videos      []bson.ObjectID `bson:"videos"      json:"videos"`
	TotalVideos int64           `bson:"totalVideos" json:"totalVideos"`
	CreatedAt   time.Time       `bson:"createdAt"   json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt"   json:"updatedAt"`
}

type PlaylistVideo struct {
	ID        bson.ObjectID `bson:"_id"       json:"_id"`
	Title     string        `bson:"title"     json:"title"`
	Thumbnail string        `bson:"thumbnail" json:"thumbnail"`
	Duration  float64       `bson:"duration"  json:"duration"`
	Views     int64         `bson:"views"     json:"views"`
	Owner     bson.ObjectID `bson:"owner"     json:"owner"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

type PlaylistDetail struct {
	ID          bson.ObjectID   `bson:"_id"         json:"_id"`
	Name        string          `bson:"name"        json:"name"`
	Description string          `bson:"description" json:"description"`
	Owner       bson.ObjectID   `bson:"owner"       json:"owner"`
	Videos      []PlaylistVideo `bson:"videos"      json:"videos"`
	TotalVideos int64           `bson:"totalVideos" json:"totalVideos"`
	CreatedAt   time.Time       `bson:"createdAt"   json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt"   json:"updatedAt"`
}
