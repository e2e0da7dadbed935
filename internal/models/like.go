package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LikeTarget names the document kind a like points at. Its value is also
// the stored field holding the target id.
type LikeTarget string

const (
	LikeVideo   LikeTarget = "video"
	LikeComment LikeTarget = "comment"
	LikeTweet   LikeTarget = "tweet"
)

func (t LikeTarget) Valid() bool {
	switch t {
	case LikeVideo, LikeComment, LikeTweet:
		return true
	}
	return false
}

// Like has exactly one non-nil target; the others are stored as null so the
// unique (likedBy, video, comment, tweet) index covers every kind.
type Like struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"_id"`
	LikedBy   bson.ObjectID  `bson:"likedBy"       json:"likedBy"`
	Video     *bson.ObjectID `bson:"video"         json:"video"`
	Comment   *bson.ObjectID `bson:"comment"       json:"comment"`
	Tweet     *bson.ObjectID `bson:"tweet"         json:"tweet"`
	CreatedAt time.Time      `bson:"createdAt"     json:"createdAt"`
}

func NewLike(user bson.ObjectID, target LikeTarget, id bson.ObjectID) Like {
	l := Like{LikedBy: user, CreatedAt: time.Now().UTC()}
	switch target {
	case LikeVideo:
		l.Video = &id
	case LikeComment:
		l.Comment = &id
	case LikeTweet:
		l.Tweet = &id
	}
	return l
}
