package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"geolens/internal/model"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "geolens:session:"

const slotTTL = 24 * time.Hour

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func slotKey(sessionID, agent string) string {
	return keyPrefix + sessionID + ":" + agent
}

func (s *RedisStore) save(ctx context.Context, sessionID, agent string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, slotKey(sessionID, agent), data, slotTTL).Err()
}

func (s *RedisStore) load(ctx context.Context, sessionID, agent string, v any) (bool, error) {
	data, err := s.client.Get(ctx, slotKey(sessionID, agent)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

func (s *RedisStore) SaveNews(ctx context.Context, sessionID string, res *model.NewsResult) error {
	return s.save(ctx, sessionID, "news", res)
}

func (s *RedisStore) News(ctx context.Context, sessionID string) (*model.NewsResult, error) {
	var res model.NewsResult
	ok, err := s.load(ctx, sessionID, "news", &res)
	if !ok || err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *RedisStore) SaveUploads(ctx context.Context, sessionID string, res *model.UploadResult) error {
	return s.save(ctx, sessionID, "uploads", res)
}

func (s *RedisStore) Uploads(ctx context.Context, sessionID string) (*model.UploadResult, error) {
	var res model.UploadResult
	ok, err := s.load(ctx, sessionID, "uploads", &res)
	if !ok || err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *RedisStore) SaveOfficial(ctx context.Context, sessionID string, res *model.OfficialResult) error {
	return s.save(ctx, sessionID, "official", res)
}

func (s *RedisStore) Official(ctx context.Context, sessionID string) (*model.OfficialResult, error) {
	var res model.OfficialResult
	ok, err := s.load(ctx, sessionID, "official", &res)
	if !ok || err != nil {
		return nil, err
	}
	return &res, nil
}
