package services

import (
	"context"
	"strings"

	"github.com/NiraJ01010101/chaiBackend/dto"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
	"github.com/NiraJ01010101/chaiBackend/internal/mailer"
	"github.com/NiraJ01010101/chaiBackend/internal/models"
	"github.com/NiraJ01010101/chaiBackend/internal/storage"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

const (
	FieldAvatar     = "avatar"
	FieldCoverImage = "coverImage"
)

type UserService struct {
	Users     UserStore
	Assets    AssetStore
	Tokens    TokenIssuer
	Resets    ResetStore
	Mail      Mailer
	ClientURL string
}

func NewUserService(users UserStore, assets AssetStore, tokens TokenIssuer, resets ResetStore, mail Mailer, clientURL string) *UserService {
	return &UserService{
		Users:     users,
		Assets:    assets,
		Tokens:    tokens,
		Resets:    resets,
		Mail:      mail,
		ClientURL: strings.TrimRight(clientURL, "/"),
	}
}

type RegisterInput struct {
	dto.RegisterReq
	AvatarPath     string
	CoverImagePath string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	var err error
	u := &models.User{}
	if u.Fullname, err = requireText(in.Fullname, "fullname"); err != nil {
		return nil, err
	}
	if u.Email, err = requireText(in.Email, "email"); err != nil {
		return nil, err
	}
	if u.Username, err = requireText(in.Username, "username"); err != nil {
		return nil, err
	}
	if _, err = requireText(in.Password, "password"); err != nil {
		return nil, err
	}

	existing, err := s.Users.FindByLogin(ctx, u.Email, u.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("user with email or username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to hash password")
	}
	u.Password = string(hash)

	avatar, err := s.Assets.Upload(ctx, in.AvatarPath, storage.KindImage)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to upload avatar")
	}
	if avatar != nil {
		u.Avatar = avatar.URL
	}
	cover, err := s.Assets.Upload(ctx, in.CoverImagePath, storage.KindImage)
	if err != nil {
		dropAsset(ctx, s.Assets, u.Avatar, storage.KindImage)
		return nil, apperr.Wrap(err, "failed to upload cover image")
	}
	if cover != nil {
		u.CoverImage = cover.URL
	}

	if err := s.Users.Create(ctx, u); err != nil {
		dropAsset(ctx, s.Assets, u.Avatar, storage.KindImage)
		dropAsset(ctx, s.Assets, u.CoverImage, storage.KindImage)
		return nil, err
	}
	return u, nil
}

func (s *UserService) Login(ctx context.Context, in dto.LoginReq) (dto.LoginResp, error) {
	if strings.TrimSpace(in.Email) == "" && strings.TrimSpace(in.Username) == "" {
		return dto.LoginResp{}, apperr.InvalidArgument("username or email is required")
	}
	u, err := s.Users.FindByLogin(ctx, in.Email, in.Username)
	if err != nil {
		return dto.LoginResp{}, err
	}
	if u == nil {
		return dto.LoginResp{}, apperr.NotFound("user does not exist")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		return dto.LoginResp{}, apperr.Unauthorized("invalid user credentials")
	}

	pair, err := s.issuePair(ctx, u.ID)
	if err != nil {
		return dto.LoginResp{}, err
	}
	return dto.LoginResp{User: dto.NewUserResp(u), AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *UserService) Logout(ctx context.Context, user bson.ObjectID) error {
	return s.Users.SetRefreshToken(ctx, user, nil)
}

// Refresh rotates the token pair. The presented token must be the one
// currently stored for the user.
func (s *UserService) Refresh(ctx context.Context, token string) (dto.TokenPair, error) {
	if token == "" {
		return dto.TokenPair{}, apperr.Unauthorized("unauthorized request")
	}
	uid, err := s.Tokens.VerifyRefresh(token)
	if err != nil {
		return dto.TokenPair{}, err
	}
	u, err := s.Users.FindByID(ctx, uid)
	if err != nil {
		return dto.TokenPair{}, err
	}
	if u == nil {
		return dto.TokenPair{}, apperr.Unauthorized("invalid refresh token")
	}
	if u.RefreshToken == nil || *u.RefreshToken != token {
		return dto.TokenPair{}, apperr.Unauthorized("refresh token is expired or used")
	}
	return s.issuePair(ctx, uid)
}

func (s *UserService) ChangePassword(ctx context.Context, user bson.ObjectID, in dto.ChangePasswordReq) error {
	if _, err := requireText(in.NewPassword, "newPassword"); err != nil {
		return err
	}
	u, err := s.current(ctx, user)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.OldPassword)) != nil {
		return apperr.InvalidArgument("invalid old password")
	}
	return s.setPassword(ctx, user, in.NewPassword)
}

func (s *UserService) Current(ctx context.Context, user bson.ObjectID) (*models.User, error) {
	return s.current(ctx, user)
}

func (s *UserService) UpdateAccount(ctx context.Context, user bson.ObjectID, in dto.UpdateAccountReq) (*models.User, error) {
	fullname := strings.TrimSpace(in.Fullname)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if fullname == "" && email == "" {
		return nil, apperr.InvalidArgument("fullname or email is required")
	}
	if email != "" {
		other, err := s.Users.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user {
			return nil, apperr.Conflict("email is already in use")
		}
	}
	u, err := s.Users.UpdateAccount(ctx, user, fullname, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

// SetImage replaces the avatar or cover image and deletes the previous object.
func (s *UserService) SetImage(ctx context.Context, user bson.ObjectID, field, localPath string) (*models.User, error) {
	if field != FieldAvatar && field != FieldCoverImage {
		return nil, apperr.InvalidArgument("unknown image field " + field)
	}
	if localPath == "" {
		return nil, apperr.InvalidArgument(field + " file is missing")
	}
	asset, err := s.Assets.Upload(ctx, localPath, storage.KindImage)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to upload "+field)
	}

	previous, u, err := s.Users.SetAsset(ctx, user, field, asset.URL)
	if err != nil {
		dropAsset(ctx, s.Assets, asset.URL, storage.KindImage)
		return nil, err
	}
	if u == nil {
		dropAsset(ctx, s.Assets, asset.URL, storage.KindImage)
		return nil, apperr.NotFound("user not found")
	}
	if previous != "" && previous != asset.URL {
		dropAsset(ctx, s.Assets, previous, storage.KindImage)
	}
	return u, nil
}

func (s *UserService) ChannelProfile(ctx context.Context, username string, viewer *bson.ObjectID) (*dto.ChannelProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperr.InvalidArgument("username is missing")
	}
	p, err := s.Users.ChannelProfile(ctx, username, viewer)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("channel does not exist")
	}
	return p, nil
}

func (s *UserService) WatchHistory(ctx context.Context, user bson.ObjectID) ([]dto.HistoryVideo, error) {
	return s.Users.WatchHistory(ctx, user)
}

// ForgotPassword mails a single-use reset link to the account's address.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	email, err := requireText(email, "email")
	if err != nil {
		return err
	}
	u, err := s.Users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}
	if u == nil {
		return apperr.NotFound("user with this email does not exist")
	}

	token, jti, err := s.Tokens.IssueReset(u.ID)
	if err != nil {
		return apperr.Wrap(err, "failed to issue reset token")
	}
	if err := s.Resets.Save(ctx, jti, u.ID, s.Tokens.ResetTTL()); err != nil {
		return apperr.Wrap(err, "failed to store reset token")
	}

	link := s.ClientURL + "/reset-password/" + token
	if err := s.Mail.Send(ctx, u.Email, "Reset your password", mailer.ResetPasswordBody(link)); err != nil {
		return apperr.Wrap(err, "failed to send reset email")
	}
	logrus.WithField("userId", u.ID.Hex()).Info("password reset mail sent")
	return nil
}

// ResetPassword accepts each reset token once. Existing sessions are ended.
func (s *UserService) ResetPassword(ctx context.Context, token, password string) error {
	if _, err := requireText(password, "password"); err != nil {
		return err
	}
	uid, jti, err := s.Tokens.VerifyReset(token)
	if err != nil {
		return err
	}
	owner, ok, err := s.Resets.Consume(ctx, jti)
	if err != nil {
		return apperr.Wrap(err, "failed to read reset token")
	}
	if !ok || owner != uid {
		return apperr.Unauthorized("reset link is invalid or has already been used")
	}
	if err := s.setPassword(ctx, uid, password); err != nil {
		return err
	}
	return s.Users.SetRefreshToken(ctx, uid, nil)
}

func (s *UserService) issuePair(ctx context.Context, uid bson.ObjectID) (dto.TokenPair, error) {
	access, err := s.Tokens.IssueAccess(uid)
	if err != nil {
		return dto.TokenPair{}, apperr.Wrap(err, "failed to issue access token")
	}
	refresh, err := s.Tokens.IssueRefresh(uid)
	if err != nil {
		return dto.TokenPair{}, apperr.Wrap(err, "failed to issue refresh token")
	}
	if err := s.Users.SetRefreshToken(ctx, uid, &refresh); err != nil {
		return dto.TokenPair{}, errors.WithMessage(err, "store refresh token")
	}
	return dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *UserService) setPassword(ctx context.Context, uid bson.ObjectID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Wrap(err, "failed to hash password")
	}
	return s.Users.SetPassword(ctx, uid, string(hash))
}

func (s *UserService) current(ctx context.Context, uid bson.ObjectID) (*models.User, error) {
	u, err := s.Users.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}
