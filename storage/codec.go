package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nejkit/telegram-bot-keyboard/types"
)

var nullPayload = []byte("null")

// storedKeyboardInfo is KeyboardInfo as it is kept in a backend.
type storedKeyboardInfo struct {
	Keyboards       []json.RawMessage `json:"keyboards"`
	CurrentPosition int               `json:"current_position"`
}

// objectDict is ToDict with the record's api kwargs put back, so fields
// unknown to this version come back on load. Known keys always win.
func objectDict(o types.Object) map[string]any {
	dict := o.ToDict()

	for key, value := range o.APIKwargs() {
		if _, known := dict[key]; !known {
			dict[key] = value
		}
	}

	return dict
}

func requestChatDict(chat *types.KeyboardButtonRequestChat) map[string]any {
	dict := objectDict(chat)

	if rights := chat.UserAdministratorRights(); rights != nil {
		dict["user_administrator_rights"] = objectDict(rights)
	}

	if rights := chat.BotAdministratorRights(); rights != nil {
		dict["bot_administrator_rights"] = objectDict(rights)
	}

	return dict
}

func buttonDict(button *types.KeyboardButton) map[string]any {
	dict := objectDict(button)

	if poll := button.RequestPoll(); poll != nil {
		dict["request_poll"] = objectDict(poll)
	}

	if webApp := button.WebApp(); webApp != nil {
		dict["web_app"] = objectDict(webApp)
	}

	if chat := button.RequestChat(); chat != nil {
		dict["request_chat"] = requestChatDict(chat)
	}

	if users := button.RequestUsers(); users != nil {
		dict["request_users"] = objectDict(users)
	}

	return dict
}

func keyboardDict(keyboard *types.ReplyKeyboardMarkup) map[string]any {
	dict := objectDict(keyboard)
	rows := make([]any, 0, len(keyboard.Keyboard()))

	for _, row := range keyboard.Keyboard() {
		buttons := make([]any, 0, len(row))

		for _, button := range row {
			buttons = append(buttons, buttonDict(button))
		}

		rows = append(rows, buttons)
	}

	dict["keyboard"] = rows

	return dict
}

func encodeKeyboard(keyboard *types.ReplyKeyboardMarkup) ([]byte, error) {
	if keyboard == nil {
		return nullPayload, nil
	}

	return json.Marshal(keyboardDict(keyboard))
}

func decodeKeyboard(data []byte, bot *tgbotapi.BotAPI) (*types.ReplyKeyboardMarkup, error) {
	if bytes.Equal(bytes.TrimSpace(data), nullPayload) {
		return nil, nil
	}

	keyboard, err := types.ReplyKeyboardMarkupFromJSON(data, bot)

	if err != nil {
		return nil, fmt.Errorf("decode keyboard: %w", err)
	}

	return keyboard, nil
}

func encodeKeyboardInfo(info *KeyboardInfo) ([]byte, error) {
	stored := storedKeyboardInfo{
		Keyboards:       make([]json.RawMessage, 0, len(info.Keyboards)),
		CurrentPosition: info.CurrentPosition,
	}

	for _, keyboard := range info.Keyboards {
		data, err := encodeKeyboard(keyboard)

		if err != nil {
			return nil, err
		}

		stored.Keyboards = append(stored.Keyboards, data)
	}

	return json.Marshal(stored)
}

func decodeKeyboardInfo(data []byte, bot *tgbotapi.BotAPI) (*KeyboardInfo, error) {
	var stored storedKeyboardInfo

	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode keyboard pages: %w", err)
	}

	info := &KeyboardInfo{
		Keyboards:       make([]*types.ReplyKeyboardMarkup, 0, len(stored.Keyboards)),
		CurrentPosition: stored.CurrentPosition,
	}

	for _, raw := range stored.Keyboards {
		keyboard, err := decodeKeyboard(raw, bot)

		if err != nil {
			return nil, err
		}

		info.Keyboards = append(info.Keyboards, keyboard)
	}

	return info, nil
}
