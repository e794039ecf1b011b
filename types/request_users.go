package types

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// KeyboardButtonRequestUsers defines which users may be picked when the
// button is pressed. The chosen users are reported back in a users_shared
// service message carrying the same request id.
type KeyboardButtonRequestUsers struct {
	base
	requestID int64

	userIsBot       Optional[bool]
	userIsPremium   Optional[bool]
	maxQuantity     Optional[int64]
	requestName     Optional[bool]
	requestUsername Optional[bool]
	requestPhoto    Optional[bool]
}

type RequestUsersOption func(r *KeyboardButtonRequestUsers)

func WithUserIsBot(value bool) RequestUsersOption {
	return func(r *KeyboardButtonRequestUsers) {
		r.userIsBot = Some(value)
	}
}

func WithUserIsPremium(value bool) RequestUsersOption {
	return func(r *KeyboardButtonRequestUsers) {
		r.userIsPremium = Some(value)
	}
}

// WithMaxQuantity sets how many users may be picked, 1-10 on the Bot API
// side.
func WithMaxQuantity(value int64) RequestUsersOption {
	return func(r *KeyboardButtonRequestUsers) {
		r.maxQuantity = Some(value)
	}
}

func WithUsersRequestName(value bool) RequestUsersOption {
	return func(r *KeyboardButtonRequestUsers) {
		r.requestName = Some(value)
	}
}

func WithUsersRequestUsername(value bool) RequestUsersOption {
	return func(r *KeyboardButtonRequestUsers) {
		r.requestUsername = Some(value)
	}
}

func WithUsersRequestPhoto(value bool) RequestUsersOption {
	return func(r *KeyboardButtonRequestUsers) {
		r.requestPhoto = Some(value)
	}
}

func NewKeyboardButtonRequestUsers(requestID int64, opts ...RequestUsersOption) *KeyboardButtonRequestUsers {
	r := &KeyboardButtonRequestUsers{
		base:      newBase(nil, nil),
		requestID: requestID,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func KeyboardButtonRequestUsersFromDict(data map[string]any, bot *tgbotapi.BotAPI) (*KeyboardButtonRequestUsers, error) {
	r := newDictReader(data, bot)

	users := &KeyboardButtonRequestUsers{
		requestID:       r.readInt("request_id").ValueOr(0),
		userIsBot:       r.readBool("user_is_bot"),
		userIsPremium:   r.readBool("user_is_premium"),
		maxQuantity:     r.readInt("max_quantity"),
		requestName:     r.readBool("request_name"),
		requestUsername: r.readBool("request_username"),
		requestPhoto:    r.readBool("request_photo"),
	}

	if r.err != nil {
		return nil, r.err
	}

	users.base = newBase(r.apiKwargs(), bot)

	return users, nil
}

func (r *KeyboardButtonRequestUsers) RequestID() int64 {
	return r.requestID
}

func (r *KeyboardButtonRequestUsers) UserIsBot() Optional[bool] {
	return r.userIsBot
}

func (r *KeyboardButtonRequestUsers) UserIsPremium() Optional[bool] {
	return r.userIsPremium
}

func (r *KeyboardButtonRequestUsers) MaxQuantity() Optional[int64] {
	return r.maxQuantity
}

func (r *KeyboardButtonRequestUsers) RequestName() Optional[bool] {
	return r.requestName
}

func (r *KeyboardButtonRequestUsers) RequestUsername() Optional[bool] {
	return r.requestUsername
}

func (r *KeyboardButtonRequestUsers) RequestPhoto() Optional[bool] {
	return r.requestPhoto
}

func (r *KeyboardButtonRequestUsers) Kind() Kind {
	return KindKeyboardButtonRequestUsers
}

func (r *KeyboardButtonRequestUsers) ToDict() map[string]any {
	dict := map[string]any{
		"request_id": r.requestID,
	}

	putOptional(dict, "user_is_bot", r.userIsBot)
	putOptional(dict, "user_is_premium", r.userIsPremium)
	putOptional(dict, "max_quantity", r.maxQuantity)
	putOptional(dict, "request_name", r.requestName)
	putOptional(dict, "request_username", r.requestUsername)
	putOptional(dict, "request_photo", r.requestPhoto)

	return dict
}

func (r *KeyboardButtonRequestUsers) Equal(other Object) bool {
	if !sameKind(r, other) {
		return false
	}

	o, ok := other.(*KeyboardButtonRequestUsers)

	return ok && o != nil &&
		r.requestID == o.requestID &&
		r.userIsBot == o.userIsBot &&
		r.userIsPremium == o.userIsPremium &&
		r.maxQuantity == o.maxQuantity &&
		r.requestName == o.requestName &&
		r.requestUsername == o.requestUsername &&
		r.requestPhoto == o.requestPhoto
}

func (r *KeyboardButtonRequestUsers) Hash() uint64 {
	h := newHasher(r.Kind())
	h.writeUint64(uint64(r.requestID))
	h.writeOptionalBool(r.userIsBot)
	h.writeOptionalBool(r.userIsPremium)
	h.writeOptionalInt(r.maxQuantity)
	h.writeOptionalBool(r.requestName)
	h.writeOptionalBool(r.requestUsername)
	h.writeOptionalBool(r.requestPhoto)

	return h.sum()
}

func (r *KeyboardButtonRequestUsers) MarshalJSON() ([]byte, error) {
	return marshalObject(r)
}

func (r *KeyboardButtonRequestUsers) UnmarshalJSON(data []byte) error {
	dict, err := decodeDict(data)

	if err != nil {
		return err
	}

	parsed, err := KeyboardButtonRequestUsersFromDict(dict, nil)

	if err != nil {
		return err
	}

	*r = *parsed

	return nil
}
