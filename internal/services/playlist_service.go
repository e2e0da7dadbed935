package services

import (
	"context"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PlaylistService struct {
	Playlists PlaylistStore
	Videos    VideoStore
}

func NewPlaylistService(playlists PlaylistStore, videos VideoStore) *PlaylistService {
	return &PlaylistService{Playlists: playlists, Videos: videos}
}

func (s *PlaylistService) Create(ctx context.Context, user bson.ObjectID, name, description string) (*models.Playlist, error) {
	name, err := requireText(name, "name")
	if err != nil {
		return nil, err
	}
	return s.Playlists.Create(ctx, user, name, description)
}

func (s *PlaylistService) ListByUser(ctx context.Context, owner bson.ObjectID) ([]dto.PlaylistRow, error) {
	return s.Playlists.ListByOwner(ctx, owner)
}

func (s *PlaylistService) Get(ctx context.Context, id bson.ObjectID) (*dto.PlaylistDetail, error) {
	p, err := s.Playlists.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("playlist not found")
	}
	return p, nil
}

func (s *PlaylistService) Update(ctx context.Context, user, id bson.ObjectID, name, description string) (*models.Playlist, error) {
	if name == "" && description == "" {
		return nil, apperr.InvalidArgument("name or description is required")
	}
	if err := s.owned(ctx, id, user); err != nil {
		return nil, err
	}
	p, err := s.Playlists.Update(ctx, id, name, description)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("playlist not found")
	}
	return p, nil
}

func (s *PlaylistService) Delete(ctx context.Context, user, id bson.ObjectID) error {
	if err := s.owned(ctx, id, user); err != nil {
		return err
	}
	ok, err := s.Playlists.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("playlist not found")
	}
	return nil
}

func (s *PlaylistService) AddVideo(ctx context.Context, user, id, videoID bson.ObjectID) (*models.Playlist, error) {
	if err := s.owned(ctx, id, user); err != nil {
		return nil, err
	}
	ok, err := s.Videos.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("video not found")
	}
	p, err := s.Playlists.AddVideo(ctx, id, videoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, s.missedUpdate(ctx, id, apperr.Conflict("video is already in the playlist"))
	}
	return p, nil
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, user, id, videoID bson.ObjectID) (*models.Playlist, error) {
	if err := s.owned(ctx, id, user); err != nil {
		return nil, err
	}
	p, err := s.Playlists.RemoveVideo(ctx, id, videoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, s.missedUpdate(ctx, id, apperr.NotFound("video is not in the playlist"))
	}
	return p, nil
}

func (s *PlaylistService) owned(ctx context.Context, id, user bson.ObjectID) error {
	p, err := s.Playlists.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("playlist not found")
	}
	return requireOwner(p.Owner, user, "playlist")
}

// missedUpdate explains a conditional update that matched nothing: either
// the playlist is gone or the video condition failed.
func (s *PlaylistService) missedUpdate(ctx context.Context, id bson.ObjectID, cause error) error {
	p, err := s.Playlists.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("playlist not found")
	}
	return cause
}
