package services

import (
	"context"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type LikeService struct {
	Likes    LikeStore
	Videos   VideoStore
	Comments CommentStore
	Tweets   TweetStore
}

func NewLikeService(likes LikeStore, videos VideoStore, comments CommentStore, tweets TweetStore) *LikeService {
	return &LikeService{Likes: likes, Videos: videos, Comments: comments, Tweets: tweets}
}

// Toggle flips the user's like on the target and reports the new state with
// the target's like total.
func (s *LikeService) Toggle(ctx context.Context, user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) (dto.ToggleLikeResp, error) {
	if !target.Valid() {
		return dto.ToggleLikeResp{}, apperr.InvalidArgument("unknown like target")
	}
	if err := s.targetExists(ctx, target, id); err != nil {
		return dto.ToggleLikeResp{}, err
	}

	liked, err := s.Likes.Toggle(ctx, user, target, id)
	if err != nil {
		return dto.ToggleLikeResp{}, err
	}
	total, err := s.Likes.Count(ctx, target, id)
	if err != nil {
		return dto.ToggleLikeResp{}, err
	}
	return dto.ToggleLikeResp{IsLiked: liked, TotalLikes: total}, nil
}

func (s *LikeService) LikedVideos(ctx context.Context, user bson.ObjectID) ([]dto.LikedVideo, error) {
	return s.Likes.LikedVideos(ctx, user)
}

func (s *LikeService) targetExists(ctx context.Context, target models.LikeTarget, id bson.ObjectID) error {
	var (
		ok  bool
		err error
	)
	switch target {
	case models.LikeVideo:
		ok, err = s.Videos.Exists(ctx, id)
	case models.LikeComment:
		var c *models.Comment
		c, err = s.Comments.FindByID(ctx, id)
		ok = c != nil
	case models.LikeTweet:
		ok, err = s.Tweets.Exists(ctx, id)
	}
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound(string(target) + " not found")
	}
	return nil
}
