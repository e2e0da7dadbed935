package services

import (
	"context"

	"github.com/NiraJ01010101/chaiBackend/dto"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type DashboardService struct {
	videos VideoStore
	subs   SubscriptionStore
}

func NewDashboardService(videos VideoStore, subs SubscriptionStore) *DashboardService {
	return &DashboardService{videos: videos, subs: subs}
}

func (s *DashboardService) Stats(ctx context.Context, channel bson.ObjectID) (dto.ChannelStats, error) {
	st, err := s.videos.Stats(ctx, channel)
	if err != nil {
		return dto.ChannelStats{}, err
	}
	n, err := s.subs.CountSubscribers(ctx, channel)
	if err != nil {
		return dto.ChannelStats{}, err
	}
	st.TotalSubscribers = n
	return st, nil
}

func (s *DashboardService) Videos(ctx context.Context, channel bson.ObjectID) ([]dto.DashboardVideo, error) {
	return s.videos.ByOwner(ctx, channel)
}
