package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"
	"github.com/NiraJ01010101/chaiBackend/internal/repository"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestLikeToggle_TwiceRestoresState(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	likes := repository.NewLikeRepository(db)

	user := bson.NewObjectID()
	tweet := bson.NewObjectID()

	liked, err := likes.Toggle(ctx, user, models.LikeTweet, tweet)
	require.NoError(t, err)
	require.True(t, liked)
	n, err := likes.Count(ctx, models.LikeTweet, tweet)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	liked, err = likes.Toggle(ctx, user, models.LikeTweet, tweet)
	require.NoError(t, err)
	require.False(t, liked)
	n, err = likes.Count(ctx, models.LikeTweet, tweet)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestLikeToggle_TargetsAreIndependent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	likes := repository.NewLikeRepository(db)

	user := bson.NewObjectID()
	id := bson.NewObjectID()
	for _, target := range []models.LikeTarget{models.LikeVideo, models.LikeComment, models.LikeTweet} {
		liked, err := likes.Toggle(ctx, user, target, id)
		require.NoError(t, err)
		require.True(t, liked, string(target))
	}
	n, err := db.Collection(models.ColLikes).CountDocuments(ctx, bson.M{"likedBy": user})
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
}

func TestLikeIndexRejectsDuplicates(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	like := models.NewLike(bson.NewObjectID(), models.LikeVideo, bson.NewObjectID())
	_, err := db.Collection(models.ColLikes).InsertOne(ctx, like)
	require.NoError(t, err)
	_, err = db.Collection(models.ColLikes).InsertOne(ctx, like)
	require.Error(t, err)
}

func TestLikedVideos_SkipsDeletedVideos(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	likes := repository.NewLikeRepository(db)
	videos := repository.NewVideoRepository(db)

	user := seedUser(t, db, "fan")
	kept := seedVideo(t, db, user.ID, "kept", time.Now().UTC())
	_, err := likes.Toggle(ctx, user.ID, models.LikeVideo, kept.ID)
	require.NoError(t, err)
	_, err = likes.Toggle(ctx, user.ID, models.LikeVideo, bson.NewObjectID())
	require.NoError(t, err)
	_, err = likes.Toggle(ctx, user.ID, models.LikeComment, bson.NewObjectID())
	require.NoError(t, err)

	got, err := likes.LikedVideos(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, kept.ID, got[0].VideoID)
	require.Equal(t, kept.Title, got[0].Title)

	_, err = videos.Delete(ctx, kept.ID)
	require.NoError(t, err)
	got, err = likes.LikedVideos(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestComments_ListWithLikeCounts(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	comments := repository.NewCommentRepository(db)
	likes := repository.NewLikeRepository(db)

	video := bson.NewObjectID()
	author := bson.NewObjectID()
	var last *models.Comment
	for i := 0; i < 7; i++ {
		c, err := comments.Create(ctx, video, author, fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
		last = c
	}
	for i := 0; i < 2; i++ {
		_, err := likes.Toggle(ctx, bson.NewObjectID(), models.LikeComment, last.ID)
		require.NoError(t, err)
	}

	page, err := comments.ListByVideo(ctx, video, readmodel.Page{Number: 1, Limit: 3})
	require.NoError(t, err)
	require.Equal(t, int64(7), page.TotalCount)
	require.Len(t, page.Items, 3)
	require.Equal(t, last.ID, page.Items[0].ID)
	require.Equal(t, int64(2), page.Items[0].LikeCount)
	require.Zero(t, page.Items[1].LikeCount)

	page, err = comments.ListByVideo(ctx, video, readmodel.Page{Number: 3, Limit: 3})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	ok, err := comments.Delete(ctx, last.ID)
	require.NoError(t, err)
	require.True(t, ok)
	n, err := likes.Count(ctx, models.LikeComment, last.ID)
	require.NoError(t, err)
	require.Zero(t, n)

	ok, err = comments.Delete(ctx, last.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSubscriptionToggle_TwiceLeavesNone(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	subs := repository.NewSubscriptionRepository(db)

	fan := bson.NewObjectID()
	channel := bson.NewObjectID()

	s, err := subs.Toggle(ctx, fan, channel)
	require.NoError(t, err)
	require.NotNil(t, s)
	n, err := subs.CountSubscribers(ctx, channel)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	s, err = subs.Toggle(ctx, fan, channel)
	require.NoError(t, err)
	require.Nil(t, s)
	n, err = subs.CountSubscribers(ctx, channel)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSubscriptionLists(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	subs := repository.NewSubscriptionRepository(db)

	channel := seedUser(t, db, "channel")
	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")
	ghost := bson.NewObjectID()
	for _, fan := range []bson.ObjectID{a.ID, b.ID, ghost} {
		_, err := subs.Toggle(ctx, fan, channel.ID)
		require.NoError(t, err)
	}

	page, err := subs.Subscribers(ctx, channel.ID, readmodel.Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(3), page.TotalCount)
	nilCount := 0
	for _, row := range page.Items {
		if row.Subscriber == nil {
			nilCount++
			continue
		}
		require.NotEmpty(t, row.Subscriber.Username)
	}
	require.Equal(t, 1, nilCount)

	chans, err := subs.Channels(ctx, a.ID, readmodel.Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), chans.TotalCount)
	require.Equal(t, "channel", chans.Items[0].Channel.Username)
}

func TestPlaylist_AddRemoveVideo(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	playlists := repository.NewPlaylistRepository(db)

	owner := seedUser(t, db, "curator")
	first := seedVideo(t, db, owner.ID, "first", time.Now().UTC())
	second := seedVideo(t, db, owner.ID, "second", time.Now().UTC().Add(-time.Hour))

	pl, err := playlists.Create(ctx, owner.ID, "mix", "songs")
	require.NoError(t, err)

	got, err := playlists.AddVideo(ctx, pl.ID, second.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	got, err = playlists.AddVideo(ctx, pl.ID, first.ID)
	require.NoError(t, err)
	require.Equal(t, []bson.ObjectID{second.ID, first.ID}, got.Videos)

	dup, err := playlists.AddVideo(ctx, pl.ID, first.ID)
	require.NoError(t, err)
	require.Nil(t, dup)

	detail, err := playlists.Detail(ctx, pl.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), detail.TotalVideos)
	require.Equal(t, second.ID, detail.Videos[0].ID)
	require.Equal(t, first.ID, detail.Videos[1].ID)

	removed, err := playlists.RemoveVideo(ctx, pl.ID, second.ID)
	require.NoError(t, err)
	require.Equal(t, []bson.ObjectID{first.ID}, removed.Videos)
	again, err := playlists.RemoveVideo(ctx, pl.ID, second.ID)
	require.NoError(t, err)
	require.Nil(t, again)

	list, err := playlists.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, int64(1), list[0].TotalVideos)
}

func TestTweets_ListWithLikes(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	tweets := repository.NewTweetRepository(db)
	likes := repository.NewLikeRepository(db)

	author := seedUser(t, db, "writer")
	viewer := seedUser(t, db, "reader")
	tw, err := tweets.Create(ctx, author.ID, "hello")
	require.NoError(t, err)
	_, err = likes.Toggle(ctx, viewer.ID, models.LikeTweet, tw.ID)
	require.NoError(t, err)

	rows, err := tweets.ListByOwner(ctx, author.ID, &viewer.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(1), rows[0].LikeCount)
	require.True(t, rows[0].IsLiked)
	require.Equal(t, "writer", rows[0].OwnerDetails.Username)

	rows, err = tweets.ListByOwner(ctx, author.ID, nil)
	require.NoError(t, err)
	require.False(t, rows[0].IsLiked)

	ok, err := tweets.Delete(ctx, tw.ID)
	require.NoError(t, err)
	require.True(t, ok)
	n, err := likes.Count(ctx, models.LikeTweet, tw.ID)
	require.NoError(t, err)
	require.Zero(t, n)
}
