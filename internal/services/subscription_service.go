package services

import (
	"context"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type SubscriptionService struct {
	Subscriptions SubscriptionStore
	Users         UserStore
}

func NewSubscriptionService(subs SubscriptionStore, users UserStore) *SubscriptionService {
	return &SubscriptionService{Subscriptions: subs, Users: users}
}

// Toggle returns the new subscription, or nil after unsubscribing.
func (s *SubscriptionService) Toggle(ctx context.Context, user, channel bson.ObjectID) (*models.Subscription, error) {
	if user == channel {
		return nil, apperr.InvalidArgument("you cannot subscribe to your own channel")
	}
	ok, err := s.Users.Exists(ctx, channel)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("channel not found")
	}
	return s.Subscriptions.Toggle(ctx, user, channel)
}

func (s *SubscriptionService) Subscribers(ctx context.Context, channel bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.SubscriberRow], error) {
	return s.Subscriptions.Subscribers(ctx, channel, p)
}

func (s *SubscriptionService) Channels(ctx context.Context, subscriber bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.SubscribedChannelRow], error) {
	return s.Subscriptions.Channels(ctx, subscriber, p)
}
