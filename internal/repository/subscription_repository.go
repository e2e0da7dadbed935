package repository

import (
	"context"
	"time"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type SubscriptionRepository struct {
	ColSubscriptions *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{ColSubscriptions: db.Collection(models.ColSubscriptions)}
}

// Toggle unsubscribes when a subscription exists, otherwise subscribes.
// The returned subscription is nil after an unsubscribe.
func (r *SubscriptionRepository) Toggle(ctx context.Context, subscriber, channel bson.ObjectID) (*models.Subscription, error) {
	filter := bson.M{"subscriber": subscriber, "channel": channel}
	res, err := r.ColSubscriptions.DeleteOne(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "delete subscription")
	}
	if res.DeletedCount > 0 {
		return nil, nil
	}

	sub := &models.Subscription{
		ID:         bson.NewObjectID(),
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  time.Now().UTC(),
	}
	_, err = r.ColSubscriptions.InsertOne(ctx, sub)
	if err == nil {
		return sub, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return nil, errors.Wrap(err, "insert subscription")
	}

	// lost a race with an identical insert; report the stored one
	var existing models.Subscription
	if err := r.ColSubscriptions.FindOne(ctx, filter).Decode(&existing); err != nil {
		return nil, errors.Wrap(err, "find subscription")
	}
	return &existing, nil
}

func (r *SubscriptionRepository) Subscribers(ctx context.Context, channel bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.SubscriberRow], error) {
	return readmodel.FetchPage[dto.SubscriberRow](ctx, r.ColSubscriptions, readmodel.ChannelSubscribers(channel, p), p)
}

func (r *SubscriptionRepository) Channels(ctx context.Context, subscriber bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.SubscribedChannelRow], error) {
	return readmodel.FetchPage[dto.SubscribedChannelRow](ctx, r.ColSubscriptions, readmodel.SubscribedChannels(subscriber, p), p)
}

func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channel bson.ObjectID) (int64, error) {
	n, err := r.ColSubscriptions.CountDocuments(ctx, bson.M{"channel": channel})
	return n, errors.Wrap(err, "count subscribers")
}
