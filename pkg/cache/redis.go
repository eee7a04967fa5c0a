package cache

import (
	"context"
	"time"

	"kinopark/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to Redis for seat-map caching. The client may be
// nil if the server is unreachable; callers must degrade to uncached reads.
func NewRedisClient(config utils.RedisConfig, log *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unavailable, seat-map caching disabled",
			zap.String("addr", config.Addr),
			zap.Error(err))
		client.Close()
		return nil
	}

	log.Info("Redis connected", zap.String("addr", config.Addr))
	return client
}
