package types

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// InlineKeyboardButton is a button attached to a message rather than to
// the input field. Exactly one of the optional fields is expected by the
// Bot API.
type InlineKeyboardButton struct {
	base
	text                         string
	url                          Optional[string]
	callbackData                 Optional[string]
	webApp                       *WebAppInfo
	switchInlineQuery            Optional[string]
	switchInlineQueryCurrentChat Optional[string]
	pay                          Optional[bool]
}

type InlineKeyboardButtonOption func(b *InlineKeyboardButton)

func WithURL(url string) InlineKeyboardButtonOption {
	return func(b *InlineKeyboardButton) {
		b.url = Some(url)
	}
}

func WithCallbackData(data string) InlineKeyboardButtonOption {
	return func(b *InlineKeyboardButton) {
		b.callbackData = Some(data)
	}
}

func WithInlineWebApp(webApp *WebAppInfo) InlineKeyboardButtonOption {
	return func(b *InlineKeyboardButton) {
		b.webApp = webApp
	}
}

func WithSwitchInlineQuery(query string) InlineKeyboardButtonOption {
	return func(b *InlineKeyboardButton) {
		b.switchInlineQuery = Some(query)
	}
}

func WithSwitchInlineQueryCurrentChat(query string) InlineKeyboardButtonOption {
	return func(b *InlineKeyboardButton) {
		b.switchInlineQueryCurrentChat = Some(query)
	}
}

func WithPay(value bool) InlineKeyboardButtonOption {
	return func(b *InlineKeyboardButton) {
		b.pay = Some(value)
	}
}

func NewInlineKeyboardButton(text string, opts ...InlineKeyboardButtonOption) *InlineKeyboardButton {
	b := &InlineKeyboardButton{
		base: newBase(nil, nil),
		text: text,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

func InlineKeyboardButtonFromDict(data map[string]any, bot *tgbotapi.BotAPI) (*InlineKeyboardButton, error) {
	r := newDictReader(data, bot)

	b := &InlineKeyboardButton{
		text:                         r.readString("text").ValueOr(""),
		url:                          r.readString("url"),
		callbackData:                 r.readString("callback_data"),
		webApp:                       readObject(r, "web_app", WebAppInfoFromDict),
		switchInlineQuery:            r.readString("switch_inline_query"),
		switchInlineQueryCurrentChat: r.readString("switch_inline_query_current_chat"),
		pay:                          r.readBool("pay"),
	}

	if r.err != nil {
		return nil, r.err
	}

	b.base = newBase(r.apiKwargs(), bot)

	return b, nil
}

func (b *InlineKeyboardButton) Text() string {
	return b.text
}

func (b *InlineKeyboardButton) URL() Optional[string] {
	return b.url
}

func (b *InlineKeyboardButton) CallbackData() Optional[string] {
	return b.callbackData
}

func (b *InlineKeyboardButton) WebApp() *WebAppInfo {
	return b.webApp
}

func (b *InlineKeyboardButton) SwitchInlineQuery() Optional[string] {
	return b.switchInlineQuery
}

func (b *InlineKeyboardButton) SwitchInlineQueryCurrentChat() Optional[string] {
	return b.switchInlineQueryCurrentChat
}

func (b *InlineKeyboardButton) Pay() Optional[bool] {
	return b.pay
}

func (b *InlineKeyboardButton) Kind() Kind {
	return KindInlineKeyboardButton
}

func (b *InlineKeyboardButton) ToDict() map[string]any {
	dict := map[string]any{
		"text": b.text,
	}

	putOptional(dict, "url", b.url)
	putOptional(dict, "callback_data", b.callbackData)
	putObject(dict, "web_app", b.webApp)
	putOptional(dict, "switch_inline_query", b.switchInlineQuery)
	putOptional(dict, "switch_inline_query_current_chat", b.switchInlineQueryCurrentChat)
	putOptional(dict, "pay", b.pay)

	return dict
}

func (b *InlineKeyboardButton) Equal(other Object) bool {
	if !sameKind(b, other) {
		return false
	}

	o, ok := other.(*InlineKeyboardButton)

	return ok && o != nil &&
		b.text == o.text &&
		b.url == o.url &&
		b.callbackData == o.callbackData &&
		objectsEqual(b.webApp, o.webApp) &&
		b.switchInlineQuery == o.switchInlineQuery &&
		b.switchInlineQueryCurrentChat == o.switchInlineQueryCurrentChat &&
		b.pay == o.pay
}

func (b *InlineKeyboardButton) Hash() uint64 {
	h := newHasher(b.Kind())
	h.writeString(b.text)
	h.writeOptionalString(b.url)
	h.writeOptionalString(b.callbackData)
	hashObject(h, b.webApp)
	h.writeOptionalString(b.switchInlineQuery)
	h.writeOptionalString(b.switchInlineQueryCurrentChat)
	h.writeOptionalBool(b.pay)

	return h.sum()
}

func (b *InlineKeyboardButton) MarshalJSON() ([]byte, error) {
	return marshalObject(b)
}

func (b *InlineKeyboardButton) UnmarshalJSON(data []byte) error {
	dict, err := decodeDict(data)

	if err != nil {
		return err
	}

	parsed, err := InlineKeyboardButtonFromDict(dict, nil)

	if err != nil {
		return err
	}

	*b = *parsed

	return nil
}
