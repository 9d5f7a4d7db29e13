package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "sess:"

// RedisStore keeps sessions as JSON values under sess:<uuid> with a TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ Store = (*RedisStore)(nil)

func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, sess Session) (string, error) {
	id := uuid.NewString()
	if err := s.save(ctx, id, sess); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	v, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(v, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, keyPrefix+id).Err()
}

func (s *RedisStore) PushFlash(ctx context.Context, id string, f Flash) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	sess.Flashes = append(sess.Flashes, f)
	return s.save(ctx, id, *sess)
}

func (s *RedisStore) PopFlashes(ctx context.Context, id string) ([]Flash, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	flashes := sess.Flashes
	if len(flashes) == 0 {
		return nil, nil
	}
	sess.Flashes = nil
	if err := s.save(ctx, id, *sess); err != nil {
		return nil, err
	}
	return flashes, nil
}

func (s *RedisStore) save(ctx context.Context, id string, sess Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyPrefix+id, payload, s.ttl).Err()
}
