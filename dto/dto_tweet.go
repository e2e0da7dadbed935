package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type TweetReq struct {
	Content string `json:"content" form:"content"`
}

type TweetOwner struct {
	ID       bson.ObjectID `bson:"_id"      json:"_id"`
	Username string        `bson:"username" json:"username"`
	Fullname string        `bson:"fullname" json:"fullname"`
	Avatar   string        `bson:"avatar"   json:"avatar"`
}

type TweetRow struct {
	ID           bson.ObjectID `bson:"_id"          json:"_id"`
	Content      string        `bson:"content"      json:"content"`
	Owner        bson.ObjectID `bson:"owner"        json:"owner"`
	OwnerDetails *TweetOwner   `bson:"ownerDetails" json:"ownerDetails"`
	LikeCount    int64         `bson:"likeCount"    json:"likeCount"`
	IsLiked      bool          `bson:"isLiked"      json:"isLiked"`
	CreatedAt    time.Time     `bson:"createdAt"    json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt"    json:"updatedAt"`
}
