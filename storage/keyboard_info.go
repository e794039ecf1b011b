package storage

import (
	"github.com/nejkit/telegram-bot-keyboard/domain"
	"github.com/nejkit/telegram-bot-keyboard/types"
)

type KeyboardInfo struct {
	Keyboards       []*types.ReplyKeyboardMarkup `json:"keyboards"`
	CurrentPosition int                          `json:"current_position"`
}

func (k *KeyboardInfo) Current() (*types.ReplyKeyboardMarkup, error) {
	if len(k.Keyboards) == 0 {
		return nil, domain.ErrorKeyboardInfoIsEmpty
	}

	if k.CurrentPosition < 0 || k.CurrentPosition >= len(k.Keyboards) {
		return nil, domain.ErrorKeyboardPageOutOfRange
	}

	return k.Keyboards[k.CurrentPosition], nil
}

// Next moves to the following page. The position is left untouched when
// there is no such page.
func (k *KeyboardInfo) Next() (*types.ReplyKeyboardMarkup, error) {
	return k.move(1)
}

func (k *KeyboardInfo) Previous() (*types.ReplyKeyboardMarkup, error) {
	return k.move(-1)
}

func (k *KeyboardInfo) move(delta int) (*types.ReplyKeyboardMarkup, error) {
	position := k.CurrentPosition + delta

	if position < 0 || position >= len(k.Keyboards) {
		return nil, domain.ErrorKeyboardPageOutOfRange
	}

	k.CurrentPosition = position

	return k.Keyboards[position], nil
}
