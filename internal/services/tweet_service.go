package services

import (
	"context"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type TweetService struct {
	Tweets TweetStore
	Users  UserStore
}

func NewTweetService(tweets TweetStore, users UserStore) *TweetService {
	return &TweetService{Tweets: tweets, Users: users}
}

func (s *TweetService) Create(ctx context.Context, user bson.ObjectID, content string) (*models.Tweet, error) {
	content, err := requireText(content, "content")
	if err != nil {
		return nil, err
	}
	return s.Tweets.Create(ctx, user, content)
}

func (s *TweetService) ListByUser(ctx context.Context, owner bson.ObjectID, viewer *bson.ObjectID) ([]dto.TweetRow, error) {
	ok, err := s.Users.Exists(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("user not found")
	}
	return s.Tweets.ListByOwner(ctx, owner, viewer)
}

func (s *TweetService) Update(ctx context.Context, user, id bson.ObjectID, content string) (*models.Tweet, error) {
	content, err := requireText(content, "content")
	if err != nil {
		return nil, err
	}
	if err := s.owned(ctx, id, user); err != nil {
		return nil, err
	}
	t, err := s.Tweets.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("tweet not found")
	}
	return t, nil
}

func (s *TweetService) Delete(ctx context.Context, user, id bson.ObjectID) error {
	if err := s.owned(ctx, id, user); err != nil {
		return err
	}
	ok, err := s.Tweets.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("tweet not found")
	}
	return nil
}

func (s *TweetService) owned(ctx context.Context, id, user bson.ObjectID) error {
	t, err := s.Tweets.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return apperr.NotFound("tweet not found")
	}
	return requireOwner(t.Owner, user, "tweet")
}
