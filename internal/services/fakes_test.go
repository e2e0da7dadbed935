package services

import (
	"context"
	"time"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Each fake embeds its interface; calling a method the fake does not
// override panics, which flags an unexpected store call in a test.

type fakeVideos struct {
	VideoStore
	byID      map[bson.ObjectID]*models.Video
	views     map[bson.ObjectID]int
	created   []*models.Video
	createErr error
}

func newFakeVideos(vs ...*models.Video) *fakeVideos {
	f := &fakeVideos{byID: map[bson.ObjectID]*models.Video{}, views: map[bson.ObjectID]int{}}
	for _, v := range vs {
		f.byID[v.ID] = v
	}
	return f
}

func (f *fakeVideos) Exists(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeVideos) FindByID(_ context.Context, id bson.ObjectID) (*models.Video, error) {
	return f.byID[id], nil
}

func (f *fakeVideos) Detail(_ context.Context, id bson.ObjectID) (*dto.VideoDetail, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &dto.VideoDetail{ID: v.ID, Title: v.Title, Views: v.Views}, nil
}

func (f *fakeVideos) IncrementViews(_ context.Context, id bson.ObjectID) error {
	f.views[id]++
	return nil
}

func (f *fakeVideos) Create(_ context.Context, v *models.Video) error {
	if f.createErr != nil {
		return f.createErr
	}
	v.ID = bson.NewObjectID()
	f.byID[v.ID] = v
	f.created = append(f.created, v)
	return nil
}

func (f *fakeVideos) UpdateDetails(_ context.Context, id bson.ObjectID, title, description, thumbnail string) (*models.Video, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	cp.Title, cp.Description = title, description
	if thumbnail != "" {
		cp.Thumbnail = thumbnail
	}
	f.byID[id] = &cp
	return &cp, nil
}

func (f *fakeVideos) SetPublished(_ context.Context, id bson.ObjectID, value *bool) (*models.Video, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	if value == nil {
		v.IsPublished = !v.IsPublished
	} else {
		v.IsPublished = *value
	}
	return v, nil
}

func (f *fakeVideos) Delete(_ context.Context, id bson.ObjectID) (*models.Video, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	delete(f.byID, id)
	return v, nil
}

func (f *fakeVideos) Stats(_ context.Context, _ bson.ObjectID) (dto.ChannelStats, error) {
	return dto.ChannelStats{TotalVideos: int64(len(f.byID))}, nil
}

type fakeUsers struct {
	UserStore
	byID    map[bson.ObjectID]*models.User
	history map[bson.ObjectID][]bson.ObjectID
}

func newFakeUsers(us ...*models.User) *fakeUsers {
	f := &fakeUsers{byID: map[bson.ObjectID]*models.User{}, history: map[bson.ObjectID][]bson.ObjectID{}}
	for _, u := range us {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	u.ID = bson.NewObjectID()
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByLogin(_ context.Context, email, username string) (*models.User, error) {
	for _, u := range f.byID {
		if (email != "" && u.Email == email) || (username != "" && u.Username == username) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) Exists(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeUsers) SetRefreshToken(_ context.Context, id bson.ObjectID, token *string) error {
	if u, ok := f.byID[id]; ok {
		u.RefreshToken = token
	}
	return nil
}

func (f *fakeUsers) SetPassword(_ context.Context, id bson.ObjectID, hash string) error {
	if u, ok := f.byID[id]; ok {
		u.Password = hash
	}
	return nil
}

func (f *fakeUsers) SetAsset(_ context.Context, id bson.ObjectID, field, url string) (string, *models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return "", nil, nil
	}
	var prev string
	if field == FieldAvatar {
		prev, u.Avatar = u.Avatar, url
	} else {
		prev, u.CoverImage = u.CoverImage, url
	}
	return prev, u, nil
}

func (f *fakeUsers) PushWatchHistory(_ context.Context, id, videoID bson.ObjectID) error {
	f.history[id] = append(f.history[id], videoID)
	return nil
}

func (f *fakeUsers) ChannelProfile(_ context.Context, username string, _ *bson.ObjectID) (*dto.ChannelProfile, error) {
	for _, u := range f.byID {
		if u.Username == username {
			return &dto.ChannelProfile{ID: u.ID, Username: u.Username}, nil
		}
	}
	return nil, nil
}

type fakeAssets struct {
	uploaded []string
	deleted  []string
	failOn   string
}

func (f *fakeAssets) Upload(_ context.Context, localPath string, kind storage.Kind) (*storage.Asset, error) {
	if localPath == "" {
		return nil, nil
	}
	if localPath == f.failOn {
		return nil, context.DeadlineExceeded
	}
	f.uploaded = append(f.uploaded, localPath)
	return &storage.Asset{
		URL:      "http://cdn.test/media/" + string(kind) + "/" + localPath,
		PublicID: localPath,
		Duration: 42,
	}, nil
}

func (f *fakeAssets) Delete(_ context.Context, publicID string, _ storage.Kind) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

type fakeLikes struct {
	LikeStore
	liked map[string]bool
}

func likeKey(user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) string {
	return user.Hex() + string(target) + id.Hex()
}

func (f *fakeLikes) Toggle(_ context.Context, user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) (bool, error) {
	k := likeKey(user, target, id)
	f.liked[k] = !f.liked[k]
	return f.liked[k], nil
}

func (f *fakeLikes) Count(_ context.Context, _ models.LikeTarget, _ bson.ObjectID) (int64, error) {
	var n int64
	for _, v := range f.liked {
		if v {
			n++
		}
	}
	return n, nil
}

type fakeComments struct {
	CommentStore
	byID map[bson.ObjectID]*models.Comment
}

func (f *fakeComments) FindByID(_ context.Context, id bson.ObjectID) (*models.Comment, error) {
	return f.byID[id], nil
}

func (f *fakeComments) Create(_ context.Context, videoID, ownerID bson.ObjectID, content string) (*models.Comment, error) {
	c := &models.Comment{ID: bson.NewObjectID(), Video: videoID, Owner: ownerID, Content: content}
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeComments) Delete(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := f.byID[id]
	delete(f.byID, id)
	return ok, nil
}

type fakeTweets struct {
	TweetStore
	byID map[bson.ObjectID]*models.Tweet
}

func (f *fakeTweets) Exists(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeTweets) FindByID(_ context.Context, id bson.ObjectID) (*models.Tweet, error) {
	return f.byID[id], nil
}

func (f *fakeTweets) UpdateContent(_ context.Context, id bson.ObjectID, content string) (*models.Tweet, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	t.Content = content
	return t, nil
}

type fakeSubscriptions struct {
	SubscriptionStore
	count int64
}

func (f *fakeSubscriptions) Toggle(_ context.Context, subscriber, channel bson.ObjectID) (*models.Subscription, error) {
	return &models.Subscription{ID: bson.NewObjectID(), Subscriber: subscriber, Channel: channel}, nil
}

func (f *fakeSubscriptions) CountSubscribers(_ context.Context, _ bson.ObjectID) (int64, error) {
	return f.count, nil
}

type fakePlaylists struct {
	PlaylistStore
	byID map[bson.ObjectID]*models.Playlist
}

func (f *fakePlaylists) FindByID(_ context.Context, id bson.ObjectID) (*models.Playlist, error) {
	return f.byID[id], nil
}

func (f *fakePlaylists) AddVideo(_ context.Context, id, videoID bson.ObjectID) (*models.Playlist, error) {
	p := f.byID[id]
	if p == nil {
		return nil, nil
	}
	for _, v := range p.Videos {
		if v == videoID {
			return nil, nil
		}
	}
	p.Videos = append(p.Videos, videoID)
	return p, nil
}

func (f *fakePlaylists) RemoveVideo(_ context.Context, id, videoID bson.ObjectID) (*models.Playlist, error) {
	p := f.byID[id]
	if p == nil {
		return nil, nil
	}
	for i, v := range p.Videos {
		if v == videoID {
			p.Videos = append(p.Videos[:i], p.Videos[i+1:]...)
			return p, nil
		}
	}
	return nil, nil
}

// vanishingPlaylists deletes the playlist right before each video update,
// as a concurrent delete would.
type vanishingPlaylists struct{ *fakePlaylists }

func (f vanishingPlaylists) AddVideo(ctx context.Context, id, videoID bson.ObjectID) (*models.Playlist, error) {
	delete(f.byID, id)
	return f.fakePlaylists.AddVideo(ctx, id, videoID)
}

func (f vanishingPlaylists) RemoveVideo(ctx context.Context, id, videoID bson.ObjectID) (*models.Playlist, error) {
	delete(f.byID, id)
	return f.fakePlaylists.RemoveVideo(ctx, id, videoID)
}

type sentMail struct{ to, subject, body string }

type fakeMailer struct{ sent []sentMail }

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}

type fakeResets struct{ ids map[string]bson.ObjectID }

func (f *fakeResets) Save(_ context.Context, id string, userID bson.ObjectID, _ time.Duration) error {
	f.ids[id] = userID
	return nil
}

func (f *fakeResets) Consume(_ context.Context, id string) (bson.ObjectID, bool, error) {
	uid, ok := f.ids[id]
	delete(f.ids, id)
	return uid, ok, nil
}
