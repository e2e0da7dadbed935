package services

import (
	"context"
	"testing"

	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae), "expected *apperr.Error, got %v", err)
	require.Equal(t, kind, ae.Kind, ae.Message)
}

func TestVideoGet_CountsViewAndRecordsHistory(t *testing.T) {
	ctx := context.Background()
	v := &models.Video{ID: bson.NewObjectID(), Title: "intro"}
	viewer := bson.NewObjectID()
	videos, users := newFakeVideos(v), newFakeUsers()
	svc := NewVideoService(videos, users, &fakeAssets{})

	d, err := svc.Get(ctx, v.ID, &viewer)
	require.NoError(t, err)
	require.Equal(t, "intro", d.Title)
	require.Equal(t, 1, videos.views[v.ID])
	require.Equal(t, []bson.ObjectID{v.ID}, users.history[viewer])

	_, err = svc.Get(ctx, v.ID, nil)
	require.NoError(t, err)
	require.Equal(t, 2, videos.views[v.ID])
	require.Len(t, users.history, 1)

	_, err = svc.Get(ctx, bson.NewObjectID(), nil)
	requireKind(t, err, apperr.KindNotFound)
}

func TestVideoPublish(t *testing.T) {
	ctx := context.Background()
	owner := bson.NewObjectID()

	t.Run("validates input before uploading", func(t *testing.T) {
		assets := &fakeAssets{}
		svc := NewVideoService(newFakeVideos(), newFakeUsers(), assets)

		_, err := svc.Publish(ctx, PublishVideoInput{Owner: owner, Title: " ", Description: "d", VideoPath: "a.mp4"})
		requireKind(t, err, apperr.KindInvalidArgument)
		_, err = svc.Publish(ctx, PublishVideoInput{Owner: owner, Title: "t", Description: "d"})
		requireKind(t, err, apperr.KindInvalidArgument)
		require.Empty(t, assets.uploaded)
	})

	t.Run("stores both assets", func(t *testing.T) {
		assets := &fakeAssets{}
		videos := newFakeVideos()
		svc := NewVideoService(videos, newFakeUsers(), assets)

		v, err := svc.Publish(ctx, PublishVideoInput{
			Owner: owner, Title: " t ", Description: "d", VideoPath: "a.mp4", ThumbnailPath: "a.png",
		})
		require.NoError(t, err)
		require.Equal(t, "t", v.Title)
		require.Equal(t, owner, v.Owner)
		require.Equal(t, float64(42), v.Duration)
		require.True(t, v.IsPublished)
		require.Contains(t, v.VideoFile, "a.mp4")
		require.Contains(t, v.Thumbnail, "a.png")
		require.Len(t, videos.created, 1)
	})

	t.Run("drops uploaded assets when the insert fails", func(t *testing.T) {
		assets := &fakeAssets{}
		videos := newFakeVideos()
		videos.createErr = errors.New("boom")
		svc := NewVideoService(videos, newFakeUsers(), assets)

		_, err := svc.Publish(ctx, PublishVideoInput{
			Owner: owner, Title: "t", Description: "d", VideoPath: "b.mp4", ThumbnailPath: "b.png",
		})
		require.Error(t, err)
		require.ElementsMatch(t, []string{"b.mp4", "b.png"}, assets.deleted)
	})

	t.Run("drops the video when the thumbnail upload fails", func(t *testing.T) {
		assets := &fakeAssets{failOn: "c.png"}
		svc := NewVideoService(newFakeVideos(), newFakeUsers(), assets)

		_, err := svc.Publish(ctx, PublishVideoInput{
			Owner: owner, Title: "t", Description: "d", VideoPath: "c.mp4", ThumbnailPath: "c.png",
		})
		requireKind(t, err, apperr.KindInternal)
		require.Equal(t, []string{"c.mp4"}, assets.deleted)
	})
}

func TestVideoUpdate(t *testing.T) {
	ctx := context.Background()
	owner := bson.NewObjectID()
	v := &models.Video{
		ID: bson.NewObjectID(), Owner: owner, Title: "old", Description: "desc",
		Thumbnail: "http://cdn.test/media/image/old.png",
	}
	assets := &fakeAssets{}
	svc := NewVideoService(newFakeVideos(v), newFakeUsers(), assets)

	_, err := svc.Update(ctx, UpdateVideoInput{User: bson.NewObjectID(), VideoID: v.ID, Title: "x"})
	requireKind(t, err, apperr.KindForbidden)

	updated, err := svc.Update(ctx, UpdateVideoInput{User: owner, VideoID: v.ID, Title: "new", ThumbnailPath: "new.png"})
	require.NoError(t, err)
	require.Equal(t, "new", updated.Title)
	require.Equal(t, "desc", updated.Description)
	require.Contains(t, updated.Thumbnail, "new.png")
	require.Equal(t, []string{"old.png"}, assets.deleted)

	_, err = svc.Update(ctx, UpdateVideoInput{User: owner, VideoID: bson.NewObjectID(), Title: "x"})
	requireKind(t, err, apperr.KindNotFound)
}

func TestVideoDeleteDropsAssets(t *testing.T) {
	ctx := context.Background()
	owner := bson.NewObjectID()
	v := &models.Video{
		ID: bson.NewObjectID(), Owner: owner,
		VideoFile: "http://cdn.test/media/video/v.mp4",
		Thumbnail: "http://cdn.test/media/image/t.png",
	}
	assets := &fakeAssets{}
	videos := newFakeVideos(v)
	svc := NewVideoService(videos, newFakeUsers(), assets)

	requireKind(t, svc.Delete(ctx, bson.NewObjectID(), v.ID), apperr.KindForbidden)
	require.NoError(t, svc.Delete(ctx, owner, v.ID))
	require.Empty(t, videos.byID)
	require.ElementsMatch(t, []string{"v.mp4", "t.png"}, assets.deleted)

	requireKind(t, svc.Delete(ctx, owner, v.ID), apperr.KindNotFound)
}

func TestVideoTogglePublish(t *testing.T) {
	ctx := context.Background()
	owner := bson.NewObjectID()
	v := &models.Video{ID: bson.NewObjectID(), Owner: owner, IsPublished: true}
	svc := NewVideoService(newFakeVideos(v), newFakeUsers(), &fakeAssets{})

	got, err := svc.TogglePublish(ctx, owner, v.ID, nil)
	require.NoError(t, err)
	require.False(t, got)

	yes := true
	got, err = svc.TogglePublish(ctx, owner, v.ID, &yes)
	require.NoError(t, err)
	require.True(t, got)

	_, err = svc.TogglePublish(ctx, bson.NewObjectID(), v.ID, nil)
	requireKind(t, err, apperr.KindForbidden)
}
