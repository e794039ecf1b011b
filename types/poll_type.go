package types

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type PollType string

const (
	PollTypeQuiz    PollType = "quiz"
	PollTypeRegular PollType = "regular"
)

// KeyboardButtonPollType restricts which kind of poll a request_poll button
// lets the user create. An unset type allows any poll.
type KeyboardButtonPollType struct {
	base
	pollType Optional[PollType]
}

func NewKeyboardButtonPollType(pollType PollType) *KeyboardButtonPollType {
	return &KeyboardButtonPollType{
		base:     newBase(nil, nil),
		pollType: Some(pollType),
	}
}

func NewAnyKeyboardButtonPollType() *KeyboardButtonPollType {
	return &KeyboardButtonPollType{base: newBase(nil, nil)}
}

func KeyboardButtonPollTypeFromDict(data map[string]any, bot *tgbotapi.BotAPI) (*KeyboardButtonPollType, error) {
	r := newDictReader(data, bot)

	p := &KeyboardButtonPollType{}

	if pollType, ok := r.readString("type").Get(); ok {
		p.pollType = Some(PollType(pollType))
	}

	if r.err != nil {
		return nil, r.err
	}

	p.base = newBase(r.apiKwargs(), bot)

	return p, nil
}

func (p *KeyboardButtonPollType) Type() Optional[PollType] {
	return p.pollType
}

func (p *KeyboardButtonPollType) Kind() Kind {
	return KindKeyboardButtonPollType
}

func (p *KeyboardButtonPollType) ToDict() map[string]any {
	dict := make(map[string]any, 1)

	if pollType, ok := p.pollType.Get(); ok {
		dict["type"] = string(pollType)
	}

	return dict
}

func (p *KeyboardButtonPollType) Equal(other Object) bool {
	if !sameKind(p, other) {
		return false
	}

	o, ok := other.(*KeyboardButtonPollType)

	return ok && o != nil && p.pollType == o.pollType
}

func (p *KeyboardButtonPollType) Hash() uint64 {
	h := newHasher(p.Kind())

	pollType, ok := p.pollType.Get()
	h.writeOptionalString(Optional[string]{value: string(pollType), set: ok})

	return h.sum()
}

func (p *KeyboardButtonPollType) MarshalJSON() ([]byte, error) {
	return marshalObject(p)
}

func (p *KeyboardButtonPollType) UnmarshalJSON(data []byte) error {
	dict, err := decodeDict(data)

	if err != nil {
		return err
	}

	parsed, err := KeyboardButtonPollTypeFromDict(dict, nil)

	if err != nil {
		return err
	}

	*p = *parsed

	return nil
}
