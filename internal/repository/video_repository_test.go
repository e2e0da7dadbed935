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

func TestVideoDetail_CountsAndOwner(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	videos := repository.NewVideoRepository(db)
	likes := repository.NewLikeRepository(db)
	comments := repository.NewCommentRepository(db)

	owner := seedUser(t, db, "owner")
	v := seedVideo(t, db, owner.ID, "clip", time.Now().UTC())

	for i := 0; i < 3; i++ {
		liked, err := likes.Toggle(ctx, bson.NewObjectID(), models.LikeVideo, v.ID)
		require.NoError(t, err)
		require.True(t, liked)
	}
	for i := 0; i < 2; i++ {
		_, err := comments.Create(ctx, v.ID, owner.ID, fmt.Sprintf("c%d", i))
		require.NoError(t, err)
	}

	d, err := videos.Detail(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Equal(t, int64(3), d.LikeCount)
	require.Equal(t, int64(2), d.CommentsCount)
	require.NotNil(t, d.Owner)
	require.Equal(t, owner.Fullname, d.Owner.Fullname)
	require.Equal(t, owner.Email, d.Owner.Email)
}

func TestVideoDetail_NoRelationsAndMissingOwner(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	videos := repository.NewVideoRepository(db)

	v := seedVideo(t, db, bson.NewObjectID(), "orphan", time.Now().UTC())

	d, err := videos.Detail(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Zero(t, d.LikeCount)
	require.Zero(t, d.CommentsCount)
	require.Nil(t, d.Owner)

	missing, err := videos.Detail(ctx, bson.NewObjectID())
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestListVideos_PagesCoverEverything(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	videos := repository.NewVideoRepository(db)

	owner := seedUser(t, db, "uploader")
	// identical timestamps force the _id tie-break
	at := time.Now().UTC().Truncate(time.Millisecond)
	for i := 0; i < 12; i++ {
		seedVideo(t, db, owner.ID, fmt.Sprintf("v%02d", i), at)
	}

	sort, err := readmodel.NewVideoSort("", "")
	require.NoError(t, err)

	page2, err := videos.List(ctx, readmodel.VideoFilter{Sort: sort}, readmodel.Page{Number: 2, Limit: 5})
	require.NoError(t, err)
	require.Len(t, page2.Items, 5)
	require.Equal(t, int64(12), page2.TotalCount)
	require.Equal(t, int64(2), page2.Page)
	require.Equal(t, int64(5), page2.Limit)
	require.NotNil(t, page2.Items[0].ChannelName)
	require.Equal(t, owner.Fullname, *page2.Items[0].ChannelName)

	seen := map[bson.ObjectID]bool{}
	for n := int64(1); n <= 3; n++ {
		pg, err := videos.List(ctx, readmodel.VideoFilter{Sort: sort}, readmodel.Page{Number: n, Limit: 5})
		require.NoError(t, err)
		require.LessOrEqual(t, len(pg.Items), 5)
		for _, it := range pg.Items {
			require.False(t, seen[it.ID], "video %s returned twice", it.ID.Hex())
			seen[it.ID] = true
		}
	}
	require.Len(t, seen, 12)

	beyond, err := videos.List(ctx, readmodel.VideoFilter{Sort: sort}, readmodel.Page{Number: 4, Limit: 5})
	require.NoError(t, err)
	require.Empty(t, beyond.Items)
	require.Equal(t, int64(12), beyond.TotalCount)
}

func TestListVideos_FilterAndSort(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	videos := repository.NewVideoRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	now := time.Now().UTC()
	seedVideo(t, db, alice.ID, "Go tutorial", now.Add(-2*time.Hour))
	seedVideo(t, db, alice.ID, "cooking", now.Add(-time.Hour))
	seedVideo(t, db, bob.ID, "go.mod explained", now)

	sort, err := readmodel.NewVideoSort("createdAt", "asc")
	require.NoError(t, err)
	res, err := videos.List(ctx, readmodel.VideoFilter{Query: "GO", Sort: sort}, readmodel.Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(2), res.TotalCount)
	require.Equal(t, "Go tutorial", res.Items[0].Title)

	res, err = videos.List(ctx, readmodel.VideoFilter{Owner: &alice.ID, Sort: sort}, readmodel.Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(2), res.TotalCount)

	empty, err := videos.List(ctx, readmodel.VideoFilter{Query: "nothing matches"}, readmodel.Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	require.Empty(t, empty.Items)
	require.Zero(t, empty.TotalCount)
}

func TestSetPublished_FlipsWithoutValue(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	videos := repository.NewVideoRepository(db)
	v := seedVideo(t, db, bson.NewObjectID(), "p", time.Now().UTC())

	got, err := videos.SetPublished(ctx, v.ID, nil)
	require.NoError(t, err)
	require.False(t, got.IsPublished)

	yes := true
	got, err = videos.SetPublished(ctx, v.ID, &yes)
	require.NoError(t, err)
	require.True(t, got.IsPublished)

	missing, err := videos.SetPublished(ctx, bson.NewObjectID(), nil)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestDeleteVideo_Cascades(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	videos := repository.NewVideoRepository(db)
	likes := repository.NewLikeRepository(db)
	comments := repository.NewCommentRepository(db)
	playlists := repository.NewPlaylistRepository(db)

	owner := seedUser(t, db, "owner")
	v := seedVideo(t, db, owner.ID, "gone", time.Now().UTC())
	c, err := comments.Create(ctx, v.ID, owner.ID, "hi")
	require.NoError(t, err)
	_, err = likes.Toggle(ctx, owner.ID, models.LikeVideo, v.ID)
	require.NoError(t, err)
	_, err = likes.Toggle(ctx, owner.ID, models.LikeComment, c.ID)
	require.NoError(t, err)
	pl, err := playlists.Create(ctx, owner.ID, "mix", "")
	require.NoError(t, err)
	_, err = playlists.AddVideo(ctx, pl.ID, v.ID)
	require.NoError(t, err)

	deleted, err := videos.Delete(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, v.VideoFile, deleted.VideoFile)

	n, err := db.Collection(models.ColComments).CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	require.Zero(t, n)
	n, err = db.Collection(models.ColLikes).CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	require.Zero(t, n)
	after, err := playlists.FindByID(ctx, pl.ID)
	require.NoError(t, err)
	require.Empty(t, after.Videos)

	again, err := videos.Delete(ctx, v.ID)
	require.NoError(t, err)
	require.Nil(t, again)
}

func TestStatsAndOwnerVideos(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	videos := repository.NewVideoRepository(db)
	likes := repository.NewLikeRepository(db)

	owner := seedUser(t, db, "creator")
	a := seedVideo(t, db, owner.ID, "a", time.Now().UTC().Add(-time.Minute))
	b := seedVideo(t, db, owner.ID, "b", time.Now().UTC())
	require.NoError(t, videos.IncrementViews(ctx, a.ID))
	require.NoError(t, videos.IncrementViews(ctx, a.ID))
	require.NoError(t, videos.IncrementViews(ctx, b.ID))
	_, err := likes.Toggle(ctx, bson.NewObjectID(), models.LikeVideo, a.ID)
	require.NoError(t, err)

	st, err := videos.Stats(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), st.TotalVideos)
	require.Equal(t, int64(3), st.TotalViews)
	require.Equal(t, int64(1), st.TotalLikes)

	none, err := videos.Stats(ctx, bson.NewObjectID())
	require.NoError(t, err)
	require.Zero(t, none.TotalVideos)

	list, err := videos.ByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, b.ID, list[0].ID)
	require.Equal(t, int64(1), list[1].LikeCount)
}
