package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the stored account. Password and RefreshToken never leave the
// server: json:"-" keeps them out of every response.
type User struct {
	ID           bson.ObjectID   `bson:"_id,omitempty"          json:"_id"`
	Username     string          `bson:"username"               json:"username"`
	Email        string          `bson:"email"                  json:"email"`
	Fullname     string          `bson:"fullname"               json:"fullname"`
	Avatar       string          `bson:"avatar"                 json:"avatar"`
	CoverImage   string          `bson:"coverImage"             json:"coverImage"`
	Password     string          `bson:"password"               json:"-"`
	RefreshToken *string         `bson:"refreshToken,omitempty" json:"-"`
	WatchHistory []bson.ObjectID `bson:"watchHistory"           json:"watchHistory"`
	CreatedAt    time.Time       `bson:"createdAt"              json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt"              json:"updatedAt"`
}
