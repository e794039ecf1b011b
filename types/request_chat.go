package types

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// KeyboardButtonRequestChat defines which chats a user may pick when the
// button is pressed. The chosen chat is reported back in a chat_shared
// service message carrying the same request id.
type KeyboardButtonRequestChat struct {
	base
	requestID     int64
	chatIsChannel bool

	chatIsForum             Optional[bool]
	chatHasUsername         Optional[bool]
	chatIsCreated           Optional[bool]
	userAdministratorRights *ChatAdministratorRights
	botAdministratorRights  *ChatAdministratorRights
	botIsMember             Optional[bool]
	requestTitle            Optional[bool]
	requestUsername         Optional[bool]
	requestPhoto            Optional[bool]
}

type RequestChatOption func(r *KeyboardButtonRequestChat)

func WithChatIsForum(value bool) RequestChatOption {
	return func(r *KeyboardButtonRequestChat) {
		r.chatIsForum = Some(value)
	}
}

func WithChatHasUsername(value bool) RequestChatOption {
	return func(r *KeyboardButtonRequestChat) {
		r.chatHasUsername = Some(value)
	}
}

func WithChatIsCreated(value bool) RequestChatOption {
	return func(r *KeyboardButtonRequestChat) {
		r.chatIsCreated = Some(value)
	}
}

func WithUserAdministratorRights(rights *ChatAdministratorRights) RequestChatOption {
	return func(r *KeyboardButtonRequestChat) {
		r.userAdministratorRights = rights
	}
}

func WithBotAdministratorRights(rights *ChatAdministratorRights) RequestChatOption {
	return func(r *KeyboardButtonRequestChat) {
		r.botAdministratorRights = rights
	}
}

func WithBotIsMember(value bool) RequestChatOption {
	return func(r *KeyboardButtonRequestChat) {
		r.botIsMember = Some(value)
	}
}

func WithChatRequestTitle(value bool) RequestChatOption {
	return func(r *KeyboardButtonRequestChat) {
		r.requestTitle = Some(value)
	}
}

func WithChatRequestUsername(value bool) RequestChatOption {
	return func(r *KeyboardButtonRequestChat) {
		r.requestUsername = Some(value)
	}
}

func WithChatRequestPhoto(value bool) RequestChatOption {
	return func(r *KeyboardButtonRequestChat) {
		r.requestPhoto = Some(value)
	}
}

func NewKeyboardButtonRequestChat(requestID int64, chatIsChannel bool, opts ...RequestChatOption) *KeyboardButtonRequestChat {
	r := &KeyboardButtonRequestChat{
		base:          newBase(nil, nil),
		requestID:     requestID,
		chatIsChannel: chatIsChannel,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func KeyboardButtonRequestChatFromDict(data map[string]any, bot *tgbotapi.BotAPI) (*KeyboardButtonRequestChat, error) {
	r := newDictReader(data, bot)

	chat := &KeyboardButtonRequestChat{
		requestID:               r.readInt("request_id").ValueOr(0),
		chatIsChannel:           r.readBool("chat_is_channel").ValueOr(false),
		chatIsForum:             r.readBool("chat_is_forum"),
		chatHasUsername:         r.readBool("chat_has_username"),
		chatIsCreated:           r.readBool("chat_is_created"),
		userAdministratorRights: readObject(r, "user_administrator_rights", ChatAdministratorRightsFromDict),
		botAdministratorRights:  readObject(r, "bot_administrator_rights", ChatAdministratorRightsFromDict),
		botIsMember:             r.readBool("bot_is_member"),
		requestTitle:            r.readBool("request_title"),
		requestUsername:         r.readBool("request_username"),
		requestPhoto:            r.readBool("request_photo"),
	}

	if r.err != nil {
		return nil, r.err
	}

	chat.base = newBase(r.apiKwargs(), bot)

	return chat, nil
}

func (r *KeyboardButtonRequestChat) RequestID() int64 {
	return r.requestID
}

func (r *KeyboardButtonRequestChat) ChatIsChannel() bool {
	return r.chatIsChannel
}

func (r *KeyboardButtonRequestChat) ChatIsForum() Optional[bool] {
	return r.chatIsForum
}

func (r *KeyboardButtonRequestChat) ChatHasUsername() Optional[bool] {
	return r.chatHasUsername
}

func (r *KeyboardButtonRequestChat) ChatIsCreated() Optional[bool] {
	return r.chatIsCreated
}

func (r *KeyboardButtonRequestChat) UserAdministratorRights() *ChatAdministratorRights {
	return r.userAdministratorRights
}

func (r *KeyboardButtonRequestChat) BotAdministratorRights() *ChatAdministratorRights {
	return r.botAdministratorRights
}

func (r *KeyboardButtonRequestChat) BotIsMember() Optional[bool] {
	return r.botIsMember
}

func (r *KeyboardButtonRequestChat) RequestTitle() Optional[bool] {
	return r.requestTitle
}

func (r *KeyboardButtonRequestChat) RequestUsername() Optional[bool] {
	return r.requestUsername
}

func (r *KeyboardButtonRequestChat) RequestPhoto() Optional[bool] {
	return r.requestPhoto
}

func (r *KeyboardButtonRequestChat) Kind() Kind {
	return KindKeyboardButtonRequestChat
}

func (r *KeyboardButtonRequestChat) ToDict() map[string]any {
	dict := map[string]any{
		"request_id":      r.requestID,
		"chat_is_channel": r.chatIsChannel,
	}

	putOptional(dict, "chat_is_forum", r.chatIsForum)
	putOptional(dict, "chat_has_username", r.chatHasUsername)
	putOptional(dict, "chat_is_created", r.chatIsCreated)
	putObject(dict, "user_administrator_rights", r.userAdministratorRights)
	putObject(dict, "bot_administrator_rights", r.botAdministratorRights)
	putOptional(dict, "bot_is_member", r.botIsMember)
	putOptional(dict, "request_title", r.requestTitle)
	putOptional(dict, "request_username", r.requestUsername)
	putOptional(dict, "request_photo", r.requestPhoto)

	return dict
}

func (r *KeyboardButtonRequestChat) Equal(other Object) bool {
	if !sameKind(r, other) {
		return false
	}

	o, ok := other.(*KeyboardButtonRequestChat)

	return ok && o != nil &&
		r.requestID == o.requestID &&
		r.chatIsChannel == o.chatIsChannel &&
		r.chatIsForum == o.chatIsForum &&
		r.chatHasUsername == o.chatHasUsername &&
		r.chatIsCreated == o.chatIsCreated &&
		objectsEqual(r.userAdministratorRights, o.userAdministratorRights) &&
		objectsEqual(r.botAdministratorRights, o.botAdministratorRights) &&
		r.botIsMember == o.botIsMember &&
		r.requestTitle == o.requestTitle &&
		r.requestUsername == o.requestUsername &&
		r.requestPhoto == o.requestPhoto
}

func (r *KeyboardButtonRequestChat) Hash() uint64 {
	h := newHasher(r.Kind())
	h.writeUint64(uint64(r.requestID))
	h.writeBool(r.chatIsChannel)
	h.writeOptionalBool(r.chatIsForum)
	h.writeOptionalBool(r.chatHasUsername)
	h.writeOptionalBool(r.chatIsCreated)
	hashObject(h, r.userAdministratorRights)
	hashObject(h, r.botAdministratorRights)
	h.writeOptionalBool(r.botIsMember)
	h.writeOptionalBool(r.requestTitle)
	h.writeOptionalBool(r.requestUsername)
	h.writeOptionalBool(r.requestPhoto)

	return h.sum()
}

func (r *KeyboardButtonRequestChat) MarshalJSON() ([]byte, error) {
	return marshalObject(r)
}

func (r *KeyboardButtonRequestChat) UnmarshalJSON(data []byte) error {
	dict, err := decodeDict(data)

	if err != nil {
		return err
	}

	parsed, err := KeyboardButtonRequestChatFromDict(dict, nil)

	if err != nil {
		return err
	}

	*r = *parsed

	return nil
}
