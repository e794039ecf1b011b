package storage

import (
	"context"

	"github.com/nejkit/telegram-bot-keyboard/types"
)

// KeyboardStorage keeps the reply keyboard currently shown in a chat and
// the pages of paged keyboards attached to a message.
type KeyboardStorage interface {
	SaveActiveKeyboard(ctx context.Context, chatID int64, keyboard *types.ReplyKeyboardMarkup) error
	GetActiveKeyboard(ctx context.Context, chatID int64) (*types.ReplyKeyboardMarkup, error)
	DeleteActiveKeyboard(ctx context.Context, chatID int64) error
	SaveKeyboardInfo(ctx context.Context, chatID int64, messageID int, keyboard *KeyboardInfo) error
	GetKeyboardInfo(ctx context.Context, chatID int64, messageID int) (*KeyboardInfo, error)
	DeleteKeyboardInfo(ctx context.Context, chatID int64, messageID int) error
}
