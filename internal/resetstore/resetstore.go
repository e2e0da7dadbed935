package resetstore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const keyPrefix = "reset:"

// Store keeps outstanding password-reset token ids. Consume deletes as it
// reads, so each id redeems at most once.
type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (s *Store) Save(ctx context.Context, id string, userID bson.ObjectID, ttl time.Duration) error {
	return errors.Wrap(s.rdb.Set(ctx, keyPrefix+id, userID.Hex(), ttl).Err(), "save reset token")
}

// Consume returns the user the id was issued for. ok is false when the id
// is unknown, expired or already used.
func (s *Store) Consume(ctx context.Context, id string) (userID bson.ObjectID, ok bool, err error) {
	val, err := s.rdb.GetDel(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return bson.NilObjectID, false, nil
	}
	if err != nil {
		return bson.NilObjectID, false, errors.Wrap(err, "consume reset token")
	}
	oid, err := bson.ObjectIDFromHex(val)
	if err != nil {
		return bson.NilObjectID, false, errors.Wrap(err, "decode reset token owner")
	}
	return oid, true, nil
}
