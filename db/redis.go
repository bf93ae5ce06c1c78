package db

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis opens the session-cache client from REDIS_URL. Without redis
// the API falls back to its in-memory session store.
func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	return Redis.Ping(context.Background()).Err()
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}
