package services

import (
	"context"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"
	"github.com/NiraJ01010101/chaiBackend/internal/storage"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type VideoService struct {
	Videos VideoStore
	Users  UserStore
	Assets AssetStore
}

func NewVideoService(videos VideoStore, users UserStore, assets AssetStore) *VideoService {
	return &VideoService{Videos: videos, Users: users, Assets: assets}
}

func (s *VideoService) List(ctx context.Context, f readmodel.VideoFilter, p readmodel.Page) (readmodel.Paged[dto.VideoCard], error) {
	return s.Videos.List(ctx, f, p)
}

// Get counts a view and, for a signed-in viewer, records it in their history.
func (s *VideoService) Get(ctx context.Context, id bson.ObjectID, viewer *bson.ObjectID) (*dto.VideoDetail, error) {
	exists, err := s.Videos.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("video not found")
	}

	if err := s.Videos.IncrementViews(ctx, id); err != nil {
		logrus.WithError(err).WithField("videoId", id.Hex()).Warn("failed to count view")
	}
	if viewer != nil {
		if err := s.Users.PushWatchHistory(ctx, *viewer, id); err != nil {
			logrus.WithError(err).WithField("videoId", id.Hex()).Warn("failed to record watch history")
		}
	}

	d, err := s.Videos.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound("video not found")
	}
	return d, nil
}

type PublishVideoInput struct {
	Owner         bson.ObjectID
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

func (s *VideoService) Publish(ctx context.Context, in PublishVideoInput) (*models.Video, error) {
	title, err := requireText(in.Title, "title")
	if err != nil {
		return nil, err
	}
	description, err := requireText(in.Description, "description")
	if err != nil {
		return nil, err
	}
	if in.VideoPath == "" {
		return nil, apperr.InvalidArgument("video file is required")
	}

	videoAsset, err := s.Assets.Upload(ctx, in.VideoPath, storage.KindVideo)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to upload video")
	}
	if videoAsset == nil {
		return nil, apperr.InvalidArgument("video file is required")
	}
	thumbAsset, err := s.Assets.Upload(ctx, in.ThumbnailPath, storage.KindImage)
	if err != nil {
		dropAsset(ctx, s.Assets, videoAsset.URL, storage.KindVideo)
		return nil, apperr.Wrap(err, "failed to upload thumbnail")
	}

	v := &models.Video{
		VideoFile:   videoAsset.URL,
		Title:       title,
		Description: description,
		Duration:    videoAsset.Duration,
		IsPublished: true,
		Owner:       in.Owner,
	}
	if thumbAsset != nil {
		v.Thumbnail = thumbAsset.URL
	}
	if err := s.Videos.Create(ctx, v); err != nil {
		dropAsset(ctx, s.Assets, v.VideoFile, storage.KindVideo)
		dropAsset(ctx, s.Assets, v.Thumbnail, storage.KindImage)
		return nil, err
	}
	return v, nil
}

type UpdateVideoInput struct {
	User          bson.ObjectID
	VideoID       bson.ObjectID
	Title         string
	Description   string
	ThumbnailPath string
}

// Update keeps the stored title or description when the new one is blank.
// A replaced thumbnail is deleted from storage after the update succeeds.
func (s *VideoService) Update(ctx context.Context, in UpdateVideoInput) (*models.Video, error) {
	current, err := s.owned(ctx, in.VideoID, in.User)
	if err != nil {
		return nil, err
	}

	title := current.Title
	if t := in.Title; t != "" {
		if title, err = requireText(t, "title"); err != nil {
			return nil, err
		}
	}
	description := current.Description
	if d := in.Description; d != "" {
		if description, err = requireText(d, "description"); err != nil {
			return nil, err
		}
	}

	thumb, err := s.Assets.Upload(ctx, in.ThumbnailPath, storage.KindImage)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to upload thumbnail")
	}
	newThumb := ""
	if thumb != nil {
		newThumb = thumb.URL
	}

	updated, err := s.Videos.UpdateDetails(ctx, in.VideoID, title, description, newThumb)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		dropAsset(ctx, s.Assets, newThumb, storage.KindImage)
		return nil, apperr.NotFound("video not found")
	}
	if newThumb != "" && current.Thumbnail != "" {
		dropAsset(ctx, s.Assets, current.Thumbnail, storage.KindImage)
	}
	return updated, nil
}

func (s *VideoService) Delete(ctx context.Context, user, id bson.ObjectID) error {
	if _, err := s.owned(ctx, id, user); err != nil {
		return err
	}
	deleted, err := s.Videos.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return apperr.NotFound("video not found")
	}
	dropAsset(ctx, s.Assets, deleted.VideoFile, storage.KindVideo)
	dropAsset(ctx, s.Assets, deleted.Thumbnail, storage.KindImage)
	return nil
}

// TogglePublish stores value, or flips the flag when value is nil.
func (s *VideoService) TogglePublish(ctx context.Context, user, id bson.ObjectID, value *bool) (bool, error) {
	if _, err := s.owned(ctx, id, user); err != nil {
		return false, err
	}
	v, err := s.Videos.SetPublished(ctx, id, value)
	if err != nil {
		return false, err
	}
	if v == nil {
		return false, apperr.NotFound("video not found")
	}
	return v.IsPublished, nil
}

func (s *VideoService) owned(ctx context.Context, id, user bson.ObjectID) (*models.Video, error) {
	v, err := s.Videos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NotFound("video not found")
	}
	if err := requireOwner(v.Owner, user, "video"); err != nil {
		return nil, err
	}
	return v, nil
}
