package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content   string        `bson:"content"       json:"content"`
	Video     bson.ObjectID `bson:"video"         json:"video"`
	Owner     bson.ObjectID `bson:"owner"         json:"owner"`
	CreatedAt time.Time     `bson:"createdAt"     json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"     json:"updatedAt"`
}
