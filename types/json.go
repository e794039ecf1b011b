package types

import (
	"bytes"
	"encoding/json"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func marshalObject(o Object) ([]byte, error) {
	return json.Marshal(o.ToDict())
}

// decodeDict keeps numbers as json.Number so that integer fields and
// unknown values are not squeezed through float64.
func decodeDict(data []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var dict map[string]any

	if err := decoder.Decode(&dict); err != nil {
		return nil, err
	}

	return dict, nil
}

// KeyboardButtonFromJSON decodes a raw Bot API button for bot.
func KeyboardButtonFromJSON(data []byte, bot *tgbotapi.BotAPI) (*KeyboardButton, error) {
	dict, err := decodeDict(data)

	if err != nil {
		return nil, err
	}

	return KeyboardButtonFromDict(dict, bot)
}

// ReplyKeyboardMarkupFromJSON decodes a raw Bot API reply keyboard for bot.
func ReplyKeyboardMarkupFromJSON(data []byte, bot *tgbotapi.BotAPI) (*ReplyKeyboardMarkup, error) {
	dict, err := decodeDict(data)

	if err != nil {
		return nil, err
	}

	return ReplyKeyboardMarkupFromDict(dict, bot)
}
