package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dgraph-io/ristretto"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nejkit/telegram-bot-keyboard/config"
	"github.com/nejkit/telegram-bot-keyboard/domain"
	"github.com/nejkit/telegram-bot-keyboard/types"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBot = &tgbotapi.BotAPI{Token: "123:test"}

func setupRedisStorage(t *testing.T) (*RedisKeyboardStorage, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() { _ = client.Close() })

	return NewRedisKeyboardStorage("test-bot", client, testBot), mr
}

func setupMemoryStorage(t *testing.T) *InMemoryKeyboardStorage {
	t.Helper()

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1000,
		MaxCost:     100,
		BufferItems: 64,
	})
	require.NoError(t, err)

	t.Cleanup(cache.Close)

	return NewInMemoryKeyboardStorage(cache, testBot)
}

func storages(t *testing.T) map[string]KeyboardStorage {
	redisStorage, _ := setupRedisStorage(t)

	return map[string]KeyboardStorage{
		"redis":  redisStorage,
		"memory": setupMemoryStorage(t),
	}
}

func testMarkup(labels ...string) *types.ReplyKeyboardMarkup {
	buttons := make([]*types.KeyboardButton, 0, len(labels))

	for _, label := range labels {
		buttons = append(buttons, types.NewKeyboardButton(label))
	}

	return types.NewReplyKeyboardMarkupFromColumn(buttons, types.WithResizeKeyboard(true))
}

func TestActiveKeyboard(t *testing.T) {
	for name, storage := range storages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			markup := types.NewReplyKeyboardMarkupFromButtons([]*types.KeyboardButton{
				types.NewKeyboardButton("contact", types.WithRequestContact(true)),
				types.NewKeyboardButton("chat", types.WithRequestChat(types.NewKeyboardButtonRequestChat(1, true))),
			})

			_, err := storage.GetActiveKeyboard(ctx, 10)
			assert.ErrorIs(t, err, domain.ErrorKeyboardNotFound)

			require.NoError(t, storage.SaveActiveKeyboard(ctx, 10, markup))

			found, err := storage.GetActiveKeyboard(ctx, 10)
			require.NoError(t, err)
			assert.True(t, markup.Equal(found))

			require.NoError(t, storage.DeleteActiveKeyboard(ctx, 10))

			_, err = storage.GetActiveKeyboard(ctx, 10)
			assert.ErrorIs(t, err, domain.ErrorKeyboardNotFound)
		})
	}
}

func TestKeyboardInfo(t *testing.T) {
	for name, storage := range storages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			info := &KeyboardInfo{
				Keyboards: []*types.ReplyKeyboardMarkup{
					testMarkup("one", "two"),
					testMarkup("three"),
				},
			}

			require.NoError(t, storage.SaveKeyboardInfo(ctx, 10, 5, info))

			found, err := storage.GetKeyboardInfo(ctx, 10, 5)
			require.NoError(t, err)
			require.Len(t, found.Keyboards, 2)
			assert.Equal(t, 0, found.CurrentPosition)
			assert.True(t, info.Keyboards[1].Equal(found.Keyboards[1]))

			_, err = found.Next()
			require.NoError(t, err)
			require.NoError(t, storage.SaveKeyboardInfo(ctx, 10, 5, found))

			found, err = storage.GetKeyboardInfo(ctx, 10, 5)
			require.NoError(t, err)
			assert.Equal(t, 1, found.CurrentPosition)
			assert.Equal(t, 0, info.CurrentPosition)

			_, err = storage.GetKeyboardInfo(ctx, 10, 6)
			assert.ErrorIs(t, err, domain.ErrorKeyboardNotFound)

			require.NoError(t, storage.DeleteKeyboardInfo(ctx, 10, 5))

			_, err = storage.GetKeyboardInfo(ctx, 10, 5)
			assert.ErrorIs(t, err, domain.ErrorKeyboardNotFound)
		})
	}
}

func TestRedisKeepsUnknownFields(t *testing.T) {
	storage, mr := setupRedisStorage(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(
		"test-bot:chat:active-keyboard:7",
		`{"keyboard":[[{"text":"pay","style":"success"}]],"is_persistent":true}`,
	))

	markup, err := storage.GetActiveKeyboard(ctx, 7)
	require.NoError(t, err)

	button, ok := markup.FindButton("pay")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"style": "success"}, button.APIKwargs())
	assert.Equal(t, types.Some(true), markup.IsPersistent())
}

func TestStorageKeepsAPIKwargs(t *testing.T) {
	for name, storage := range storages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			markup, err := types.ReplyKeyboardMarkupFromJSON([]byte(`{
				"keyboard": [[
					{"text": "pay", "style": "success"},
					{"text": "chat", "request_chat": {
						"request_id": 4,
						"chat_is_channel": false,
						"request_scope": "groups",
						"bot_administrator_rights": {
							"is_anonymous": false, "can_manage_chat": true, "can_delete_messages": false,
							"can_manage_video_chats": false, "can_restrict_members": false,
							"can_promote_members": false, "can_change_info": false, "can_invite_users": true,
							"can_post_stories": false, "can_edit_stories": false, "can_delete_stories": false,
							"can_manage_direct_messages": true
						}
					}},
					{"text": "poll", "request_poll": {"type": "quiz", "allow_anonymous": false}}
				]],
				"keyboard_theme": "dark"
			}`), nil)
			require.NoError(t, err)

			require.NoError(t, storage.SaveActiveKeyboard(ctx, 8, markup))

			found, err := storage.GetActiveKeyboard(ctx, 8)
			require.NoError(t, err)
			assert.True(t, markup.Equal(found))
			assert.Equal(t, map[string]any{"keyboard_theme": "dark"}, found.APIKwargs())

			pay, ok := found.FindButton("pay")
			require.True(t, ok)
			assert.Equal(t, map[string]any{"style": "success"}, pay.APIKwargs())

			chat, ok := found.FindButton("chat")
			require.True(t, ok)
			assert.Equal(t, map[string]any{"request_scope": "groups"}, chat.RequestChat().APIKwargs())
			assert.Equal(t, map[string]any{"can_manage_direct_messages": true}, chat.RequestChat().BotAdministratorRights().APIKwargs())

			poll, ok := found.FindButton("poll")
			require.True(t, ok)
			assert.Equal(t, map[string]any{"allow_anonymous": false}, poll.RequestPoll().APIKwargs())
			assert.Equal(t, map[string]any{}, poll.APIKwargs())

			built := types.NewReplyKeyboardMarkupFromButtons([]*types.KeyboardButton{
				types.NewKeyboardButton("built", types.WithButtonAPIKwargs(map[string]any{"style": "danger", "text": "ignored"})),
			})
			require.NoError(t, storage.SaveKeyboardInfo(ctx, 8, 1, &KeyboardInfo{Keyboards: []*types.ReplyKeyboardMarkup{built}}))

			info, err := storage.GetKeyboardInfo(ctx, 8, 1)
			require.NoError(t, err)
			require.Len(t, info.Keyboards, 1)

			button, ok := info.Keyboards[0].FindButton("built")
			require.True(t, ok)
			assert.Equal(t, map[string]any{"style": "danger"}, button.APIKwargs())
		})
	}
}

func TestStorageBindsLoadedKeyboardsToBot(t *testing.T) {
	for name, storage := range storages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			markup := types.NewReplyKeyboardMarkupFromButtons([]*types.KeyboardButton{
				types.NewKeyboardButton("users", types.WithRequestUsers(types.NewKeyboardButtonRequestUsers(2))),
			})
			require.Nil(t, markup.Bot())

			require.NoError(t, storage.SaveActiveKeyboard(ctx, 9, markup))

			found, err := storage.GetActiveKeyboard(ctx, 9)
			require.NoError(t, err)
			assert.Same(t, testBot, found.Bot())

			button, ok := found.FindButton("users")
			require.True(t, ok)
			assert.Same(t, testBot, button.Bot())
			assert.Same(t, testBot, button.RequestUsers().Bot())

			require.NoError(t, storage.SaveKeyboardInfo(ctx, 9, 2, &KeyboardInfo{Keyboards: []*types.ReplyKeyboardMarkup{markup}}))

			info, err := storage.GetKeyboardInfo(ctx, 9, 2)
			require.NoError(t, err)
			assert.Same(t, testBot, info.Keyboards[0].Bot())
		})
	}
}

func TestRedisKeyLayout(t *testing.T) {
	storage, mr := setupRedisStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.SaveActiveKeyboard(ctx, 3, testMarkup("one")))
	require.NoError(t, storage.SaveKeyboardInfo(ctx, 3, 4, &KeyboardInfo{Keyboards: []*types.ReplyKeyboardMarkup{testMarkup("one")}}))

	assert.True(t, mr.Exists("test-bot:chat:active-keyboard:3"))
	assert.True(t, mr.Exists("test-bot:chat:keyboard:3:4"))
}

func TestRedisCorruptedPayload(t *testing.T) {
	storage, mr := setupRedisStorage(t)

	require.NoError(t, mr.Set("test-bot:chat:active-keyboard:1", `{"keyboard":"oops"}`))

	_, err := storage.GetActiveKeyboard(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrorInvalidFieldType)
}

func TestRedisUnavailable(t *testing.T) {
	storage, mr := setupRedisStorage(t)
	mr.Close()

	err := storage.SaveActiveKeyboard(context.Background(), 1, testMarkup("one"))
	assert.Error(t, err)

	_, err = storage.GetActiveKeyboard(context.Background(), 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrorKeyboardNotFound)
}

func TestNewKeyboardStorage(t *testing.T) {
	ctx := context.Background()

	memory, err := NewKeyboardStorage(ctx, config.StorageConfig{CacheNumCounters: 100, CacheMaxCost: 10}, nil)
	require.NoError(t, err)
	assert.IsType(t, &InMemoryKeyboardStorage{}, memory)

	mr := miniredis.RunT(t)

	redisStorage, err := NewKeyboardStorage(ctx, config.StorageConfig{RedisAddress: mr.Addr(), BotInstancePrefix: "bot"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &RedisKeyboardStorage{}, redisStorage)
}
