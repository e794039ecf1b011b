package storage

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nejkit/telegram-bot-keyboard/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewKeyboardStorage picks Redis when an address is configured and the
// in-process cache otherwise. Keyboards read back are bound to bot.
func NewKeyboardStorage(ctx context.Context, cfg config.StorageConfig, bot *tgbotapi.BotAPI) (KeyboardStorage, error) {
	if cfg.UseRedis() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}

		logrus.WithField("address", cfg.RedisAddress).Info("using redis keyboard storage")

		return NewRedisKeyboardStorage(cfg.BotInstancePrefix, client, bot), nil
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.CacheNumCounters,
		MaxCost:     cfg.CacheMaxCost,
		BufferItems: 64,
	})

	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}

	logrus.Info("using in-memory keyboard storage")

	return NewInMemoryKeyboardStorage(cache, bot), nil
}
