package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserSummary is the public face of a user inside another document.
type UserSummary struct {
	ID       bson.ObjectID `bson:"_id"      json:"_id"`
	Username string        `bson:"username" json:"username"`
	Email    string        `bson:"email"    json:"email"`
	Avatar   string        `bson:"avatar"   json:"avatar"`
}

type SubscriberRow struct {
	ID         bson.ObjectID `bson:"_id"        json:"_id"`
	Subscriber *UserSummary  `bson:"subscriber" json:"subscriber"`
	CreatedAt  time.Time     `bson:"createdAt"  json:"createdAt"`
}

type SubscribedChannelRow struct {
	ID        bson.ObjectID `bson:"_id"       json:"_id"`
	Channel   *UserSummary  `bson:"channel"   json:"channel"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

type ToggleSubscriptionResp struct {
	IsSubscribed bool `json:"isSubscribed"`
	Subscription any  `json:"subscription,omitempty"`
}
