package services

import (
	"context"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CommentService struct {
	Comments CommentStore
	Videos   VideoStore
}

func NewCommentService(comments CommentStore, videos VideoStore) *CommentService {
	return &CommentService{Comments: comments, Videos: videos}
}

func (s *CommentService) List(ctx context.Context, videoID bson.ObjectID, p readmodel.Page) (readmodel.Paged[dto.CommentRow], error) {
	return s.Comments.ListByVideo(ctx, videoID, p)
}

func (s *CommentService) Add(ctx context.Context, user, videoID bson.ObjectID, content string) (*models.Comment, error) {
	content, err := requireText(content, "content")
	if err != nil {
		return nil, err
	}
	ok, err := s.Videos.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("video not found")
	}
	return s.Comments.Create(ctx, videoID, user, content)
}

func (s *CommentService) Update(ctx context.Context, user, id bson.ObjectID, content string) (*models.Comment, error) {
	content, err := requireText(content, "content")
	if err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, id, user); err != nil {
		return nil, err
	}
	c, err := s.Comments.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("comment not found")
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, user, id bson.ObjectID) error {
	if _, err := s.owned(ctx, id, user); err != nil {
		return err
	}
	ok, err := s.Comments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("comment not found")
	}
	return nil
}

func (s *CommentService) owned(ctx context.Context, id, user bson.ObjectID) (*models.Comment, error) {
	c, err := s.Comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("comment not found")
	}
	if err := requireOwner(c.Owner, user, "comment"); err != nil {
		return nil, err
	}
	return c, nil
}
