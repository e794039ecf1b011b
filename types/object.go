package types

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Kind string

const (
	KindKeyboardButton             Kind = "KeyboardButton"
	KindKeyboardButtonPollType     Kind = "KeyboardButtonPollType"
	KindKeyboardButtonRequestChat  Kind = "KeyboardButtonRequestChat"
	KindKeyboardButtonRequestUsers Kind = "KeyboardButtonRequestUsers"
	KindWebAppInfo                 Kind = "WebAppInfo"
	KindChatAdministratorRights    Kind = "ChatAdministratorRights"
	KindInlineKeyboardButton       Kind = "InlineKeyboardButton"
	KindReplyKeyboardMarkup        Kind = "ReplyKeyboardMarkup"
)

// Object is implemented by every Bot API record in this package. Records
// are immutable: there are no setters, and every getter that exposes a map
// or a slice returns a copy.
type Object interface {
	Kind() Kind
	ToDict() map[string]any
	APIKwargs() map[string]any
	Equal(other Object) bool
	Hash() uint64
}

// descriptor is a nested record stored by pointer, nil meaning unset.
type descriptor interface {
	comparable
	Object
}

type base struct {
	apiKwargs map[string]any
	bot       *tgbotapi.BotAPI
}

func newBase(apiKwargs map[string]any, bot *tgbotapi.BotAPI) base {
	return base{
		apiKwargs: copyKwargs(apiKwargs),
		bot:       bot,
	}
}

// APIKwargs returns the fields received from the Bot API that this
// version of the record does not know about.
func (b base) APIKwargs() map[string]any {
	return copyKwargs(b.apiKwargs)
}

// Bot returns the bot the record was decoded for, nil for records built
// locally.
func (b base) Bot() *tgbotapi.BotAPI {
	return b.bot
}

func copyKwargs(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))

	for key, value := range src {
		dst[key] = value
	}

	return dst
}

func objectsEqual[T descriptor](a, b T) bool {
	var zero T

	if a == zero || b == zero {
		return a == b
	}

	return a.Equal(b)
}

func sameKind(self Object, other Object) bool {
	return other != nil && other.Kind() == self.Kind()
}
