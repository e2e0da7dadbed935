package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/NiraJ01010101/chaiBackend/config"
	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/tokens"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type userFixture struct {
	svc    *UserService
	users  *fakeUsers
	assets *fakeAssets
	mail   *fakeMailer
	resets *fakeResets
}

func newUserFixture() userFixture {
	tm := tokens.NewManager(config.Config{
		AccessTokenSecret:  "access",
		AccessTokenExpiry:  time.Minute,
		RefreshTokenSecret: "refresh",
		RefreshTokenExpiry: time.Hour,
		ResetTokenSecret:   "reset",
		ResetTokenExpiry:   time.Hour,
	})
	f := userFixture{
		users:  newFakeUsers(),
		assets: &fakeAssets{},
		mail:   &fakeMailer{},
		resets: &fakeResets{ids: map[string]bson.ObjectID{}},
	}
	f.svc = NewUserService(f.users, f.assets, tm, f.resets, f.mail, "http://client.test/")
	return f
}

func (f userFixture) register(t *testing.T) bson.ObjectID {
	t.Helper()
	u, err := f.svc.Register(context.Background(), RegisterInput{RegisterReq: dto.RegisterReq{
		Fullname: "Alice A", Email: "alice@example.com", Username: "alice", Password: "secret",
	}})
	require.NoError(t, err)
	return u.ID
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	id := f.register(t)
	require.NotEqual(t, "secret", f.users.byID[id].Password)

	_, err := f.svc.Register(ctx, RegisterInput{RegisterReq: dto.RegisterReq{
		Fullname: "Other", Email: "alice@example.com", Username: "other", Password: "x",
	}})
	requireKind(t, err, apperr.KindConflict)

	_, err = f.svc.Login(ctx, dto.LoginReq{Username: "alice", Password: "wrong"})
	requireKind(t, err, apperr.KindUnauthorized)
	_, err = f.svc.Login(ctx, dto.LoginReq{Password: "secret"})
	requireKind(t, err, apperr.KindInvalidArgument)
	_, err = f.svc.Login(ctx, dto.LoginReq{Username: "bob", Password: "secret"})
	requireKind(t, err, apperr.KindNotFound)

	resp, err := f.svc.Login(ctx, dto.LoginReq{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, id, resp.User.ID)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, resp.RefreshToken, *f.users.byID[id].RefreshToken)
}

func TestRefreshRotatesAndRejectsReuse(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	f.register(t)

	login, err := f.svc.Login(ctx, dto.LoginReq{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	pair, err := f.svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, login.RefreshToken, pair.RefreshToken)

	_, err = f.svc.Refresh(ctx, login.RefreshToken)
	requireKind(t, err, apperr.KindUnauthorized)
	_, err = f.svc.Refresh(ctx, "")
	requireKind(t, err, apperr.KindUnauthorized)
}

func TestLogoutClearsRefreshToken(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	id := f.register(t)

	login, err := f.svc.Login(ctx, dto.LoginReq{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	require.NoError(t, f.svc.Logout(ctx, id))
	require.Nil(t, f.users.byID[id].RefreshToken)

	_, err = f.svc.Refresh(ctx, login.RefreshToken)
	requireKind(t, err, apperr.KindUnauthorized)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	id := f.register(t)

	err := f.svc.ChangePassword(ctx, id, dto.ChangePasswordReq{OldPassword: "nope", NewPassword: "n"})
	requireKind(t, err, apperr.KindInvalidArgument)

	require.NoError(t, f.svc.ChangePassword(ctx, id, dto.ChangePasswordReq{OldPassword: "secret", NewPassword: "next"}))
	_, err = f.svc.Login(ctx, dto.LoginReq{Username: "alice", Password: "next"})
	require.NoError(t, err)
}

func TestSetImageReplacesAndDropsPrevious(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	id := f.register(t)

	u, err := f.svc.SetImage(ctx, id, FieldAvatar, "one.png")
	require.NoError(t, err)
	require.Contains(t, u.Avatar, "one.png")
	require.Empty(t, f.assets.deleted)

	_, err = f.svc.SetImage(ctx, id, FieldAvatar, "two.png")
	require.NoError(t, err)
	require.Equal(t, []string{"one.png"}, f.assets.deleted)

	_, err = f.svc.SetImage(ctx, id, FieldCoverImage, "")
	requireKind(t, err, apperr.KindInvalidArgument)
	_, err = f.svc.SetImage(ctx, id, "password", "x.png")
	requireKind(t, err, apperr.KindInvalidArgument)
}

func TestUpdateAccountEmailTaken(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	id := f.register(t)
	other, err := f.svc.Register(ctx, RegisterInput{RegisterReq: dto.RegisterReq{
		Fullname: "Bob", Email: "bob@example.com", Username: "bob", Password: "pw",
	}})
	require.NoError(t, err)

	_, err = f.svc.UpdateAccount(ctx, other.ID, dto.UpdateAccountReq{Email: "ALICE@example.com"})
	requireKind(t, err, apperr.KindConflict)

	_, err = f.svc.UpdateAccount(ctx, id, dto.UpdateAccountReq{})
	requireKind(t, err, apperr.KindInvalidArgument)
}

func TestPasswordResetIsSingleUse(t *testing.T) {
	ctx := context.Background()
	f := newUserFixture()
	f.register(t)

	requireKind(t, f.svc.ForgotPassword(ctx, "nobody@example.com"), apperr.KindNotFound)
	require.NoError(t, f.svc.ForgotPassword(ctx, "alice@example.com"))
	require.Len(t, f.mail.sent, 1)
	require.Equal(t, "alice@example.com", f.mail.sent[0].to)

	const prefix = "http://client.test/reset-password/"
	body := f.mail.sent[0].body
	start := strings.Index(body, prefix)
	require.GreaterOrEqual(t, start, 0)
	token := strings.Fields(body[start+len(prefix):])[0]

	require.NoError(t, f.svc.ResetPassword(ctx, token, "fresh"))
	_, err := f.svc.Login(ctx, dto.LoginReq{Username: "alice", Password: "fresh"})
	require.NoError(t, err)

	requireKind(t, f.svc.ResetPassword(ctx, token, "again"), apperr.KindUnauthorized)
	requireKind(t, f.svc.ResetPassword(ctx, "garbage", "again"), apperr.KindUnauthorized)
}

func TestChannelProfileMissing(t *testing.T) {
	f := newUserFixture()
	f.register(t)

	p, err := f.svc.ChannelProfile(context.Background(), "alice", nil)
	require.NoError(t, err)
	require.Equal(t, "alice", p.Username)

	_, err = f.svc.ChannelProfile(context.Background(), "ghost", nil)
	requireKind(t, err, apperr.KindNotFound)
}
