package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nejkit/telegram-bot-keyboard/domain"
	"github.com/nejkit/telegram-bot-keyboard/types"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisKeyboardStorage stores keyboards as Bot API JSON with the api kwargs
// of every record merged back in, so fields unknown to this version survive
// a save and load. Loaded records are bound to bot.
type RedisKeyboardStorage struct {
	botInstancePrefix string
	client            *redis.Client
	bot               *tgbotapi.BotAPI
}

func NewRedisKeyboardStorage(
	botInstancePrefix string,
	client *redis.Client,
	bot *tgbotapi.BotAPI,
) *RedisKeyboardStorage {
	return &RedisKeyboardStorage{botInstancePrefix: botInstancePrefix, client: client, bot: bot}
}

func (s *RedisKeyboardStorage) getActiveKeyboardKey(chatID int64) string {
	return fmt.Sprintf("%s:chat:active-keyboard:%d", s.botInstancePrefix, chatID)
}

func (s *RedisKeyboardStorage) getKeyboardsKey(chatID int64, messageID int) string {
	return fmt.Sprintf("%s:chat:keyboard:%d:%d", s.botInstancePrefix, chatID, messageID)
}

func (s *RedisKeyboardStorage) set(ctx context.Context, key string, rawData []byte) error {
	start := time.Now()

	err := s.client.Set(ctx, key, rawData, 0).Err()
	redisSetDur.UpdateDuration(start)

	if err != nil {
		redisSetErr.Inc()
		logrus.WithError(err).WithField("key", key).Error("failed to save keyboard")
		return err
	}

	redisSetOK.Inc()

	return nil
}

func (s *RedisKeyboardStorage) get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()

	rawData, err := s.client.Get(ctx, key).Bytes()
	redisGetDur.UpdateDuration(start)

	if errors.Is(err, redis.Nil) {
		redisGetMiss.Inc()
		return nil, domain.ErrorKeyboardNotFound
	}

	if err != nil {
		redisGetErr.Inc()
		return nil, err
	}

	return rawData, nil
}

func (s *RedisKeyboardStorage) decoded(err error) {
	if err != nil {
		redisGetErr.Inc()
		return
	}

	redisGetOK.Inc()
}

func (s *RedisKeyboardStorage) del(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		redisDelErr.Inc()
		return err
	}

	redisDelOK.Inc()

	return nil
}

func (s *RedisKeyboardStorage) SaveActiveKeyboard(ctx context.Context, chatID int64, keyboard *types.ReplyKeyboardMarkup) error {
	rawData, err := encodeKeyboard(keyboard)

	if err != nil {
		return fmt.Errorf("encode keyboard: %w", err)
	}

	return s.set(ctx, s.getActiveKeyboardKey(chatID), rawData)
}

func (s *RedisKeyboardStorage) GetActiveKeyboard(ctx context.Context, chatID int64) (*types.ReplyKeyboardMarkup, error) {
	rawData, err := s.get(ctx, s.getActiveKeyboardKey(chatID))

	if err != nil {
		return nil, err
	}

	keyboard, err := decodeKeyboard(rawData, s.bot)
	s.decoded(err)

	return keyboard, err
}

func (s *RedisKeyboardStorage) DeleteActiveKeyboard(ctx context.Context, chatID int64) error {
	return s.del(ctx, s.getActiveKeyboardKey(chatID))
}

func (s *RedisKeyboardStorage) SaveKeyboardInfo(ctx context.Context, chatID int64, messageID int, keyboard *KeyboardInfo) error {
	rawData, err := encodeKeyboardInfo(keyboard)

	if err != nil {
		return fmt.Errorf("encode keyboard pages: %w", err)
	}

	return s.set(ctx, s.getKeyboardsKey(chatID, messageID), rawData)
}

func (s *RedisKeyboardStorage) GetKeyboardInfo(ctx context.Context, chatID int64, messageID int) (*KeyboardInfo, error) {
	rawData, err := s.get(ctx, s.getKeyboardsKey(chatID, messageID))

	if err != nil {
		return nil, err
	}

	info, err := decodeKeyboardInfo(rawData, s.bot)
	s.decoded(err)

	return info, err
}

func (s *RedisKeyboardStorage) DeleteKeyboardInfo(ctx context.Context, chatID int64, messageID int) error {
	return s.del(ctx, s.getKeyboardsKey(chatID, messageID))
}
