package tokens

import (
	"time"

	"github.com/NiraJ01010101/chaiBackend/config"
	"github.com/NiraJ01010101/chaiBackend/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Claims carries the user id in uid; Subject is accepted as a fallback.
type Claims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

type kind struct {
	secret []byte
	ttl    time.Duration
}

// Manager issues and verifies the three HS256 token kinds. Each kind has its
// own secret so a token of one kind never verifies as another.
type Manager struct {
	access  kind
	refresh kind
	reset   kind
	now     func() time.Time
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		access:  kind{secret: []byte(cfg.AccessTokenSecret), ttl: cfg.AccessTokenExpiry},
		refresh: kind{secret: []byte(cfg.RefreshTokenSecret), ttl: cfg.RefreshTokenExpiry},
		reset:   kind{secret: []byte(cfg.ResetTokenSecret), ttl: cfg.ResetTokenExpiry},
		now:     time.Now,
	}
}

func (m *Manager) IssueAccess(uid bson.ObjectID) (string, error) {
	tok, _, err := m.issue(m.access, uid)
	return tok, err
}

func (m *Manager) IssueRefresh(uid bson.ObjectID) (string, error) {
	tok, _, err := m.issue(m.refresh, uid)
	return tok, err
}

// IssueReset also returns the token id used to make the link single-use.
func (m *Manager) IssueReset(uid bson.ObjectID) (token, jti string, err error) {
	return m.issue(m.reset, uid)
}

func (m *Manager) AccessTTL() time.Duration  { return m.access.ttl }
func (m *Manager) RefreshTTL() time.Duration { return m.refresh.ttl }
func (m *Manager) ResetTTL() time.Duration   { return m.reset.ttl }

func (m *Manager) VerifyAccess(token string) (bson.ObjectID, error) {
	uid, _, err := m.verify(m.access, token)
	return uid, err
}

func (m *Manager) VerifyRefresh(token string) (bson.ObjectID, error) {
	uid, _, err := m.verify(m.refresh, token)
	return uid, err
}

func (m *Manager) VerifyReset(token string) (bson.ObjectID, string, error) {
	return m.verify(m.reset, token)
}

func (m *Manager) issue(k kind, uid bson.ObjectID) (string, string, error) {
	now := m.now()
	jti := uuid.NewString()
	claims := Claims{
		UID: uid.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid.Hex(),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(k.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(k.secret)
	if err != nil {
		return "", "", apperr.Wrap(err, "failed to sign token")
	}
	return signed, jti, nil
}

func (m *Manager) verify(k kind, tokenStr string) (bson.ObjectID, string, error) {
	if tokenStr == "" {
		return bson.NilObjectID, "", apperr.Unauthorized("unauthorized request")
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "unsupported alg")
			}
			return k.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return bson.NilObjectID, "", apperr.Unauthorized("invalid or expired token")
	}

	uid := claims.UID
	if uid == "" {
		uid = claims.Subject
	}
	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, "", apperr.Unauthorized("invalid token subject")
	}
	return oid, claims.ID, nil
}
