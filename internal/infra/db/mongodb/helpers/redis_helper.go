package helpers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClients     = make(map[string]*redis.Client)
	redisClientMutex sync.Mutex
)

var RedisTimeout = 10 * time.Second

// RedisHelper returns a shared client per connection URL. Export payloads
// are the only Redis workload, so the pool stays modest.
func RedisHelper(connectionUrl string) *redis.Client {
	redisClientMutex.Lock()
	if client, exists := redisClients[connectionUrl]; exists {
		redisClientMutex.Unlock()
		return client
	}
	redisClientMutex.Unlock()

	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		log.Fatalf("invalid REDIS_URL, expected redis://[:password@]host:port[/db]: %v", err)
		return nil
	}

	opt.PoolSize = 50
	opt.MinIdleConns = 5
	opt.ConnMaxIdleTime = 200 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatal(translateRedisError(err))
		return nil
	}

	redisClientMutex.Lock()
	redisClients[connectionUrl] = client
	redisClientMutex.Unlock()

	log.Printf("Connected to Redis: %s", opt.Addr)

	return client
}

func translateRedisError(err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "NOAUTH") || strings.Contains(msg, "WRONGPASS") || strings.Contains(msg, "invalid password"):
		return fmt.Errorf("Redis rejected the credentials; check the password in REDIS_URL: %w", err)
	case strings.Contains(msg, "no such host") || strings.Contains(msg, "lookup"):
		return fmt.Errorf("could not resolve the Redis host; check the address in REDIS_URL: %w", err)
	default:
		return fmt.Errorf("could not reach Redis; check that the server is running and accessible: %w", err)
	}
}

func DisconnectRedis() {
	redisClientMutex.Lock()
	defer redisClientMutex.Unlock()

	for url, client := range redisClients {
		if err := client.Close(); err != nil {
			log.Printf("Error disconnecting from Redis %s: %v", url, err)
		}
	}

	redisClients = make(map[string]*redis.Client)
}
