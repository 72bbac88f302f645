package export_repository

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

// ExportStore stages generated export files in Redis under a TTL, base64
// encoded, so downloads survive across requests without touching disk.
type ExportStore struct {
	Client *redis.Client
}

func NewExportStore(redisURL string) *ExportStore {
	return &ExportStore{
		Client: helpers.RedisHelper(redisURL),
	}
}

func NewExportStoreWithClient(client *redis.Client) *ExportStore {
	return &ExportStore{
		Client: client,
	}
}

func exportKey(key string) string {
	return "export:" + key
}

func (s *ExportStore) Save(key string, data []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encoded := base64.StdEncoding.EncodeToString(data)
	if err := s.Client.Set(ctx, exportKey(key), encoded, ttl).Err(); err != nil {
		return fmt.Errorf("error saving export %s to Redis: %w", key, err)
	}

	return nil
}

func (s *ExportStore) Find(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	encoded, err := s.Client.Get(ctx, exportKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching export %s from Redis: %w", key, err)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("error decoding export %s: %w", key, err)
	}

	return data, nil
}
