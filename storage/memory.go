package storage

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nejkit/telegram-bot-keyboard/domain"
	"github.com/nejkit/telegram-bot-keyboard/types"
)

// InMemoryKeyboardStorage keeps keyboards in a ristretto cache in the same
// encoding as RedisKeyboardStorage, so both backends hand back equal
// records bound to bot.
type InMemoryKeyboardStorage struct {
	client *ristretto.Cache
	bot    *tgbotapi.BotAPI
}

func NewInMemoryKeyboardStorage(client *ristretto.Cache, bot *tgbotapi.BotAPI) *InMemoryKeyboardStorage {
	return &InMemoryKeyboardStorage{client: client, bot: bot}
}

func (i *InMemoryKeyboardStorage) getActiveKeyboardKey(chatID int64) string {
	return fmt.Sprintf("chat:active-keyboard:%d", chatID)
}

func (i *InMemoryKeyboardStorage) getKeyboardsKey(chatID int64, messageID int) string {
	return fmt.Sprintf("chat:keyboard:%d:%d", chatID, messageID)
}

func (i *InMemoryKeyboardStorage) set(key string, rawData []byte) error {
	if ok := i.client.Set(key, rawData, 1); !ok {
		memorySetErr.Inc()
		return domain.ErrorFailedSaveToCache
	}

	// make the value visible to the next Get
	i.client.Wait()

	return nil
}

func (i *InMemoryKeyboardStorage) get(key string) ([]byte, error) {
	data, ok := i.client.Get(key)

	if !ok {
		memoryGetMiss.Inc()
		return nil, domain.ErrorKeyboardNotFound
	}

	return data.([]byte), nil
}

func (i *InMemoryKeyboardStorage) SaveActiveKeyboard(_ context.Context, chatID int64, keyboard *types.ReplyKeyboardMarkup) error {
	rawData, err := encodeKeyboard(keyboard)

	if err != nil {
		return fmt.Errorf("encode keyboard: %w", err)
	}

	return i.set(i.getActiveKeyboardKey(chatID), rawData)
}

func (i *InMemoryKeyboardStorage) GetActiveKeyboard(_ context.Context, chatID int64) (*types.ReplyKeyboardMarkup, error) {
	rawData, err := i.get(i.getActiveKeyboardKey(chatID))

	if err != nil {
		return nil, err
	}

	return decodeKeyboard(rawData, i.bot)
}

func (i *InMemoryKeyboardStorage) DeleteActiveKeyboard(_ context.Context, chatID int64) error {
	i.client.Del(i.getActiveKeyboardKey(chatID))
	return nil
}

func (i *InMemoryKeyboardStorage) SaveKeyboardInfo(_ context.Context, chatID int64, messageID int, keyboard *KeyboardInfo) error {
	rawData, err := encodeKeyboardInfo(keyboard)

	if err != nil {
		return fmt.Errorf("encode keyboard pages: %w", err)
	}

	return i.set(i.getKeyboardsKey(chatID, messageID), rawData)
}

func (i *InMemoryKeyboardStorage) GetKeyboardInfo(_ context.Context, chatID int64, messageID int) (*KeyboardInfo, error) {
	rawData, err := i.get(i.getKeyboardsKey(chatID, messageID))

	if err != nil {
		return nil, err
	}

	return decodeKeyboardInfo(rawData, i.bot)
}

func (i *InMemoryKeyboardStorage) DeleteKeyboardInfo(_ context.Context, chatID int64, messageID int) error {
	i.client.Del(i.getKeyboardsKey(chatID, messageID))
	return nil
}
