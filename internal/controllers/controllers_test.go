package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/middleware"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/readmodel"
	"github.com/NiraJ01010101/chaiBackend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type stubVideos struct {
	VideoService
	lastFilter readmodel.VideoFilter
	lastPage   readmodel.Page
	published  *services.PublishVideoInput
	toggled    *bool
	sawFile    bool
}

func (s *stubVideos) List(_ context.Context, f readmodel.VideoFilter, p readmodel.Page) (readmodel.Paged[dto.VideoCard], error) {
	s.lastFilter, s.lastPage = f, p
	items := make([]dto.VideoCard, p.Limit)
	return readmodel.Paged[dto.VideoCard]{Items: items, TotalCount: 12, Page: p.Number, Limit: p.Limit}, nil
}

func (s *stubVideos) Get(_ context.Context, id bson.ObjectID, _ *bson.ObjectID) (*dto.VideoDetail, error) {
	return nil, apperr.NotFound("video not found")
}

func (s *stubVideos) Publish(_ context.Context, in services.PublishVideoInput) (*models.Video, error) {
	s.published = &in
	_, err := os.Stat(in.VideoPath)
	s.sawFile = err == nil
	return &models.Video{ID: bson.NewObjectID(), Title: in.Title, Owner: in.Owner}, nil
}

func (s *stubVideos) TogglePublish(_ context.Context, _, _ bson.ObjectID, value *bool) (bool, error) {
	s.toggled = value
	if value == nil {
		return false, nil
	}
	return *value, nil
}

type stubSubs struct {
	SubscriptionService
	on bool
}

func (s *stubSubs) Toggle(_ context.Context, user, channel bson.ObjectID) (*models.Subscription, error) {
	if user == channel {
		return nil, apperr.InvalidArgument("you cannot subscribe to your own channel")
	}
	s.on = !s.on
	if !s.on {
		return nil, nil
	}
	return &models.Subscription{ID: bson.NewObjectID(), Subscriber: user, Channel: channel}, nil
}

type stubUsers struct {
	UserService
}

func (stubUsers) Login(_ context.Context, in dto.LoginReq) (dto.LoginResp, error) {
	if in.Password != "secret" {
		return dto.LoginResp{}, apperr.Unauthorized("invalid user credentials")
	}
	return dto.LoginResp{User: dto.UserResp{Username: in.Username}, AccessToken: "acc", RefreshToken: "ref"}, nil
}

func (stubUsers) Refresh(_ context.Context, token string) (dto.TokenPair, error) {
	if token != "ref" {
		return dto.TokenPair{}, apperr.Unauthorized("refresh token is expired or used")
	}
	return dto.TokenPair{AccessToken: "acc2", RefreshToken: "ref2"}, nil
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func testOptions(t *testing.T) Options {
	return Options{
		Timeout:      time.Second,
		DefaultLimit: 10,
		MaxLimit:     100,
		UploadDir:    t.TempDir(),
		AccessTTL:    time.Minute,
		RefreshTTL:   time.Hour,
	}
}

// asUser stands in for JWTAuth: requests carrying X-Test-User are signed in.
func asUser(c *fiber.Ctx) error {
	if uid := c.Get("X-Test-User"); uid != "" {
		c.Locals("user_id", uid)
	}
	return c.Next()
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Use(asUser)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestVideoList(t *testing.T) {
	svc := &stubVideos{}
	h := &VideoHandler{Svc: svc, Opts: testOptions(t)}
	app := newTestApp()
	app.Get("/videos", h.List)

	owner := bson.NewObjectID()
	status, env := do(t, app, httptest.NewRequest("GET", "/videos?page=2&limit=5&query=go&sortBy=views&sortType=asc&userId="+owner.Hex(), nil))
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var page dto.VideoPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Videos, 5)
	require.Equal(t, int64(12), page.TotalCount)
	require.Equal(t, int64(2), page.Page)
	require.Equal(t, int64(5), page.Limit)
	require.Equal(t, "go", svc.lastFilter.Query)
	require.Equal(t, owner, *svc.lastFilter.Owner)
	require.Equal(t, readmodel.VideoSort{Field: "views", Dir: 1}, svc.lastFilter.Sort)

	for _, q := range []string{"page=0", "limit=-3", "page=x", "sortBy=password", "sortType=up", "userId=nope"} {
		status, env := do(t, app, httptest.NewRequest("GET", "/videos?"+q, nil))
		require.Equal(t, http.StatusBadRequest, status, q)
		require.False(t, env.Success, q)
		require.Equal(t, http.StatusBadRequest, env.StatusCode, q)
	}
}

func TestVideoGetErrors(t *testing.T) {
	h := &VideoHandler{Svc: &stubVideos{}, Opts: testOptions(t)}
	app := newTestApp()
	app.Get("/videos/:videoId", h.Get)

	status, env := do(t, app, httptest.NewRequest("GET", "/videos/not-an-id", nil))
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "invalid videoId", env.Message)

	status, env = do(t, app, httptest.NewRequest("GET", "/videos/"+bson.NewObjectID().Hex(), nil))
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "video not found", env.Message)
}

func TestVideoPublishMultipart(t *testing.T) {
	svc := &stubVideos{}
	opts := testOptions(t)
	h := &VideoHandler{Svc: svc, Opts: opts}
	app := newTestApp()
	app.Post("/videos", middleware.RequireAuth(), h.Publish)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "My clip"))
	require.NoError(t, mw.WriteField("description", "desc"))
	fw, err := mw.CreateFormFile("videoFile", "clip.mp4")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not really a video"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	newReq := func() *http.Request {
		req := httptest.NewRequest("POST", "/videos", bytes.NewReader(buf.Bytes()))
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req
	}

	status, _ := do(t, app, newReq())
	require.Equal(t, http.StatusUnauthorized, status)

	owner := bson.NewObjectID()
	req := newReq()
	req.Header.Set("X-Test-User", owner.Hex())
	status, env := do(t, app, req)
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	require.Equal(t, owner, svc.published.Owner)
	require.Equal(t, "My clip", svc.published.Title)
	require.True(t, strings.HasSuffix(svc.published.VideoPath, ".mp4"))
	require.Empty(t, svc.published.ThumbnailPath)
	require.True(t, svc.sawFile)

	entries, err := os.ReadDir(opts.UploadDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestVideoTogglePublishBody(t *testing.T) {
	svc := &stubVideos{}
	h := &VideoHandler{Svc: svc, Opts: testOptions(t)}
	app := newTestApp()
	app.Patch("/videos/:videoId/publish", h.TogglePublish)

	uid := bson.NewObjectID().Hex()
	path := "/videos/" + bson.NewObjectID().Hex() + "/publish"

	req := httptest.NewRequest("PATCH", path, nil)
	req.Header.Set("X-Test-User", uid)
	status, _ := do(t, app, req)
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, svc.toggled)

	req = httptest.NewRequest("PATCH", path, strings.NewReader(`{"isPublished":true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", uid)
	status, env := do(t, app, req)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, svc.toggled)
	require.JSONEq(t, `{"isPublished":true}`, string(env.Data))
}

func TestSubscriptionToggleStatus(t *testing.T) {
	h := &SubscriptionHandler{Svc: &stubSubs{}, Opts: testOptions(t)}
	app := newTestApp()
	app.Post("/subscriptions/c/:channelId", h.Toggle)

	me := bson.NewObjectID().Hex()
	channel := bson.NewObjectID().Hex()
	post := func(ch string) *http.Request {
		req := httptest.NewRequest("POST", "/subscriptions/c/"+ch, nil)
		req.Header.Set("X-Test-User", me)
		return req
	}

	status, env := do(t, app, post(channel))
	require.Equal(t, http.StatusCreated, status)
	var on dto.ToggleSubscriptionResp
	require.NoError(t, json.Unmarshal(env.Data, &on))
	require.True(t, on.IsSubscribed)
	require.NotNil(t, on.Subscription)

	status, env = do(t, app, post(channel))
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"isSubscribed":false}`, string(env.Data))

	status, _ = do(t, app, post(me))
	require.Equal(t, http.StatusBadRequest, status)
}

func TestLoginSetsCookiesAndRefreshReadsThem(t *testing.T) {
	h := &UserHandler{Svc: stubUsers{}, Opts: testOptions(t)}
	app := newTestApp()
	app.Post("/login", h.Login)
	app.Post("/refresh", h.Refresh)

	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"username":"alice","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookies := map[string]*http.Cookie{}
	for _, ck := range resp.Cookies() {
		cookies[ck.Name] = ck
	}
	require.Equal(t, "acc", cookies[middleware.AccessCookie].Value)
	require.Equal(t, "ref", cookies[middleware.RefreshCookie].Value)
	require.True(t, cookies[middleware.RefreshCookie].HttpOnly)

	req = httptest.NewRequest("POST", "/refresh", nil)
	req.AddCookie(&http.Cookie{Name: middleware.RefreshCookie, Value: "ref"})
	status, env := do(t, app, req)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"accessToken":"acc2","refreshToken":"ref2"}`, string(env.Data))

	req = httptest.NewRequest("POST", "/refresh", strings.NewReader(`{"refreshToken":"stale"}`))
	req.Header.Set("Content-Type", "application/json")
	status, _ = do(t, app, req)
	require.Equal(t, http.StatusUnauthorized, status)

	req = httptest.NewRequest("POST", "/login", strings.NewReader(`{"username":"alice","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	status, env = do(t, app, req)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "invalid user credentials", env.Message)
}

func TestHealthcheck(t *testing.T) {
	app := newTestApp()
	app.Get("/healthcheck", Healthcheck)

	status, env := do(t, app, httptest.NewRequest("GET", "/healthcheck", nil))
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"status":"OK"}`, string(env.Data))
}
