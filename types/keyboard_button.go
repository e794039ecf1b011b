package types

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// KeyboardButton is one button of a reply keyboard. Only text is required;
// the optional request fields are mutually exclusive on the Bot API side,
// which is not checked here.
type KeyboardButton struct {
	base
	text            string
	requestLocation Optional[bool]
	requestContact  Optional[bool]
	requestPoll     *KeyboardButtonPollType
	webApp          *WebAppInfo
	requestChat     *KeyboardButtonRequestChat
	requestUsers    *KeyboardButtonRequestUsers
}

type KeyboardButtonOption func(b *KeyboardButton)

func WithRequestLocation(value bool) KeyboardButtonOption {
	return func(b *KeyboardButton) {
		b.requestLocation = Some(value)
	}
}

func WithRequestContact(value bool) KeyboardButtonOption {
	return func(b *KeyboardButton) {
		b.requestContact = Some(value)
	}
}

func WithRequestPoll(pollType *KeyboardButtonPollType) KeyboardButtonOption {
	return func(b *KeyboardButton) {
		b.requestPoll = pollType
	}
}

func WithWebApp(webApp *WebAppInfo) KeyboardButtonOption {
	return func(b *KeyboardButton) {
		b.webApp = webApp
	}
}

func WithRequestChat(requestChat *KeyboardButtonRequestChat) KeyboardButtonOption {
	return func(b *KeyboardButton) {
		b.requestChat = requestChat
	}
}

func WithRequestUsers(requestUsers *KeyboardButtonRequestUsers) KeyboardButtonOption {
	return func(b *KeyboardButton) {
		b.requestUsers = requestUsers
	}
}

func WithButtonAPIKwargs(apiKwargs map[string]any) KeyboardButtonOption {
	return func(b *KeyboardButton) {
		b.apiKwargs = copyKwargs(apiKwargs)
	}
}

func NewKeyboardButton(text string, opts ...KeyboardButtonOption) *KeyboardButton {
	b := &KeyboardButton{
		base: newBase(nil, nil),
		text: text,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// KeyboardButtonFromDict builds a button from a decoded Bot API payload.
// Keys this version does not know about end up in APIKwargs unchanged.
// A nil payload gives a button with every field unset.
func KeyboardButtonFromDict(data map[string]any, bot *tgbotapi.BotAPI) (*KeyboardButton, error) {
	r := newDictReader(data, bot)

	b := &KeyboardButton{
		text:            r.readString("text").ValueOr(""),
		requestLocation: r.readBool("request_location"),
		requestContact:  r.readBool("request_contact"),
		requestPoll:     readObject(r, "request_poll", KeyboardButtonPollTypeFromDict),
		webApp:          readObject(r, "web_app", WebAppInfoFromDict),
		requestChat:     readObject(r, "request_chat", KeyboardButtonRequestChatFromDict),
		requestUsers:    readObject(r, "request_users", KeyboardButtonRequestUsersFromDict),
	}

	if r.err != nil {
		return nil, r.err
	}

	b.base = newBase(r.apiKwargs(), bot)

	return b, nil
}

func (b *KeyboardButton) Text() string {
	return b.text
}

func (b *KeyboardButton) RequestLocation() Optional[bool] {
	return b.requestLocation
}

func (b *KeyboardButton) RequestContact() Optional[bool] {
	return b.requestContact
}

func (b *KeyboardButton) RequestPoll() *KeyboardButtonPollType {
	return b.requestPoll
}

func (b *KeyboardButton) WebApp() *WebAppInfo {
	return b.webApp
}

func (b *KeyboardButton) RequestChat() *KeyboardButtonRequestChat {
	return b.requestChat
}

func (b *KeyboardButton) RequestUsers() *KeyboardButtonRequestUsers {
	return b.requestUsers
}

func (b *KeyboardButton) Kind() Kind {
	return KindKeyboardButton
}

func (b *KeyboardButton) ToDict() map[string]any {
	dict := map[string]any{
		"text": b.text,
	}

	putOptional(dict, "request_location", b.requestLocation)
	putOptional(dict, "request_contact", b.requestContact)
	putObject(dict, "request_poll", b.requestPoll)
	putObject(dict, "web_app", b.webApp)
	putObject(dict, "request_chat", b.requestChat)
	putObject(dict, "request_users", b.requestUsers)

	return dict
}

// Equal compares the record kind first and then text and the six request
// fields. APIKwargs and the bot reference are not part of the identity.
func (b *KeyboardButton) Equal(other Object) bool {
	if !sameKind(b, other) {
		return false
	}

	o, ok := other.(*KeyboardButton)

	return ok && o != nil &&
		b.text == o.text &&
		b.requestLocation == o.requestLocation &&
		b.requestContact == o.requestContact &&
		objectsEqual(b.requestPoll, o.requestPoll) &&
		objectsEqual(b.webApp, o.webApp) &&
		objectsEqual(b.requestChat, o.requestChat) &&
		objectsEqual(b.requestUsers, o.requestUsers)
}

func (b *KeyboardButton) Hash() uint64 {
	h := newHasher(b.Kind())
	h.writeString(b.text)
	h.writeOptionalBool(b.requestLocation)
	h.writeOptionalBool(b.requestContact)
	hashObject(h, b.requestPoll)
	hashObject(h, b.webApp)
	hashObject(h, b.requestChat)
	hashObject(h, b.requestUsers)

	return h.sum()
}

func (b *KeyboardButton) MarshalJSON() ([]byte, error) {
	return marshalObject(b)
}

func (b *KeyboardButton) UnmarshalJSON(data []byte) error {
	dict, err := decodeDict(data)

	if err != nil {
		return err
	}

	parsed, err := KeyboardButtonFromDict(dict, nil)

	if err != nil {
		return err
	}

	*b = *parsed

	return nil
}
