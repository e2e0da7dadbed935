package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CommentReq struct {
	Content string `json:"content" form:"content"`
}

type CommentRow struct {
	ID        bson.ObjectID `bson:"_id"       json:"_id"`
	Content   string        `bson:"content"   json:"content"`
	Video     bson.ObjectID `bson:"video"     json:"video"`
	Owner     bson.ObjectID `bson:"owner"     json:"owner"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	LikeCount int64         `bson:"likeCount" json:"likeCount"`
}
