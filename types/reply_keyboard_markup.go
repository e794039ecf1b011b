package types

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nejkit/telegram-bot-keyboard/domain"
)

// ReplyKeyboardMarkup is a custom keyboard shown instead of the regular
// input keyboard. Rows are copied on the way in and on the way out.
type ReplyKeyboardMarkup struct {
	base
	keyboard              [][]*KeyboardButton
	resizeKeyboard        Optional[bool]
	oneTimeKeyboard       Optional[bool]
	selective             Optional[bool]
	inputFieldPlaceholder Optional[string]
	isPersistent          Optional[bool]
}

type ReplyKeyboardMarkupOption func(m *ReplyKeyboardMarkup)

func WithResizeKeyboard(value bool) ReplyKeyboardMarkupOption {
	return func(m *ReplyKeyboardMarkup) {
		m.resizeKeyboard = Some(value)
	}
}

func WithOneTimeKeyboard(value bool) ReplyKeyboardMarkupOption {
	return func(m *ReplyKeyboardMarkup) {
		m.oneTimeKeyboard = Some(value)
	}
}

func WithSelective(value bool) ReplyKeyboardMarkupOption {
	return func(m *ReplyKeyboardMarkup) {
		m.selective = Some(value)
	}
}

// WithInputFieldPlaceholder sets the hint shown in the empty input field,
// 1-64 characters on the Bot API side.
func WithInputFieldPlaceholder(value string) ReplyKeyboardMarkupOption {
	return func(m *ReplyKeyboardMarkup) {
		m.inputFieldPlaceholder = Some(value)
	}
}

func WithIsPersistent(value bool) ReplyKeyboardMarkupOption {
	return func(m *ReplyKeyboardMarkup) {
		m.isPersistent = Some(value)
	}
}

func NewReplyKeyboardMarkup(rows [][]*KeyboardButton, opts ...ReplyKeyboardMarkupOption) *ReplyKeyboardMarkup {
	m := &ReplyKeyboardMarkup{
		base:     newBase(nil, nil),
		keyboard: copyRows(rows),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewReplyKeyboardMarkupFromButtons puts all buttons into a single row.
func NewReplyKeyboardMarkupFromButtons(buttons []*KeyboardButton, opts ...ReplyKeyboardMarkupOption) *ReplyKeyboardMarkup {
	return NewReplyKeyboardMarkup([][]*KeyboardButton{buttons}, opts...)
}

// NewReplyKeyboardMarkupFromColumn puts every button into its own row.
func NewReplyKeyboardMarkupFromColumn(buttons []*KeyboardButton, opts ...ReplyKeyboardMarkupOption) *ReplyKeyboardMarkup {
	rows := make([][]*KeyboardButton, 0, len(buttons))

	for _, button := range buttons {
		rows = append(rows, []*KeyboardButton{button})
	}

	return NewReplyKeyboardMarkup(rows, opts...)
}

func ReplyKeyboardMarkupFromDict(data map[string]any, bot *tgbotapi.BotAPI) (*ReplyKeyboardMarkup, error) {
	r := newDictReader(data, bot)

	m := &ReplyKeyboardMarkup{
		resizeKeyboard:        r.readBool("resize_keyboard"),
		oneTimeKeyboard:       r.readBool("one_time_keyboard"),
		selective:             r.readBool("selective"),
		inputFieldPlaceholder: r.readString("input_field_placeholder"),
		isPersistent:          r.readBool("is_persistent"),
	}

	rawRows, _ := r.readList("keyboard")

	if r.err != nil {
		return nil, r.err
	}

	keyboard, err := keyboardFromList(rawRows, bot)

	if err != nil {
		return nil, err
	}

	m.keyboard = keyboard
	m.base = newBase(r.apiKwargs(), bot)

	return m, nil
}

func keyboardFromList(rawRows []any, bot *tgbotapi.BotAPI) ([][]*KeyboardButton, error) {
	keyboard := make([][]*KeyboardButton, 0, len(rawRows))

	for rowIdx, rawRow := range rawRows {
		buttons, ok := rawRow.([]any)

		if !ok {
			return nil, fmt.Errorf("%w: keyboard row %d must be array, got %T", domain.ErrorInvalidFieldType, rowIdx, rawRow)
		}

		row := make([]*KeyboardButton, 0, len(buttons))

		for buttonIdx, rawButton := range buttons {
			var (
				button *KeyboardButton
				err    error
			)

			switch value := rawButton.(type) {
			case map[string]any:
				button, err = KeyboardButtonFromDict(value, bot)
			case string:
				// the Bot API accepts a bare string as a text-only button
				button = NewKeyboardButton(value)
			default:
				err = fmt.Errorf("%w: keyboard button %d:%d must be object, got %T", domain.ErrorInvalidFieldType, rowIdx, buttonIdx, rawButton)
			}

			if err != nil {
				return nil, err
			}

			row = append(row, button)
		}

		keyboard = append(keyboard, row)
	}

	return keyboard, nil
}

func copyRows(rows [][]*KeyboardButton) [][]*KeyboardButton {
	copied := make([][]*KeyboardButton, len(rows))

	for idx, row := range rows {
		copied[idx] = append([]*KeyboardButton(nil), row...)
	}

	return copied
}

func (m *ReplyKeyboardMarkup) Keyboard() [][]*KeyboardButton {
	return copyRows(m.keyboard)
}

func (m *ReplyKeyboardMarkup) ButtonsCount() int {
	count := 0

	for _, row := range m.keyboard {
		count += len(row)
	}

	return count
}

// FindButton returns the first button whose label is text. Reply keyboard
// presses arrive as plain messages, so the label is the only link back.
func (m *ReplyKeyboardMarkup) FindButton(text string) (*KeyboardButton, bool) {
	for _, row := range m.keyboard {
		for _, button := range row {
			if button.Text() == text {
				return button, true
			}
		}
	}

	return nil, false
}

func (m *ReplyKeyboardMarkup) ResizeKeyboard() Optional[bool] {
	return m.resizeKeyboard
}

func (m *ReplyKeyboardMarkup) OneTimeKeyboard() Optional[bool] {
	return m.oneTimeKeyboard
}

func (m *ReplyKeyboardMarkup) Selective() Optional[bool] {
	return m.selective
}

func (m *ReplyKeyboardMarkup) InputFieldPlaceholder() Optional[string] {
	return m.inputFieldPlaceholder
}

func (m *ReplyKeyboardMarkup) IsPersistent() Optional[bool] {
	return m.isPersistent
}

func (m *ReplyKeyboardMarkup) Kind() Kind {
	return KindReplyKeyboardMarkup
}

func (m *ReplyKeyboardMarkup) ToDict() map[string]any {
	rows := make([]any, 0, len(m.keyboard))

	for _, row := range m.keyboard {
		buttons := make([]any, 0, len(row))

		for _, button := range row {
			buttons = append(buttons, button.ToDict())
		}

		rows = append(rows, buttons)
	}

	dict := map[string]any{
		"keyboard": rows,
	}

	putOptional(dict, "resize_keyboard", m.resizeKeyboard)
	putOptional(dict, "one_time_keyboard", m.oneTimeKeyboard)
	putOptional(dict, "selective", m.selective)
	putOptional(dict, "input_field_placeholder", m.inputFieldPlaceholder)
	putOptional(dict, "is_persistent", m.isPersistent)

	return dict
}

// Equal compares keyboards button by button; display flags are not part of
// the identity.
func (m *ReplyKeyboardMarkup) Equal(other Object) bool {
	if !sameKind(m, other) {
		return false
	}

	o, ok := other.(*ReplyKeyboardMarkup)

	if !ok || o == nil || len(m.keyboard) != len(o.keyboard) {
		return false
	}

	for rowIdx, row := range m.keyboard {
		if len(row) != len(o.keyboard[rowIdx]) {
			return false
		}

		for buttonIdx, button := range row {
			if !objectsEqual(button, o.keyboard[rowIdx][buttonIdx]) {
				return false
			}
		}
	}

	return true
}

func (m *ReplyKeyboardMarkup) Hash() uint64 {
	h := newHasher(m.Kind())
	h.writeUint64(uint64(len(m.keyboard)))

	for _, row := range m.keyboard {
		h.writeUint64(uint64(len(row)))

		for _, button := range row {
			hashObject(h, button)
		}
	}

	return h.sum()
}

func (m *ReplyKeyboardMarkup) MarshalJSON() ([]byte, error) {
	return marshalObject(m)
}

func (m *ReplyKeyboardMarkup) UnmarshalJSON(data []byte) error {
	dict, err := decodeDict(data)

	if err != nil {
		return err
	}

	parsed, err := ReplyKeyboardMarkupFromDict(dict, nil)

	if err != nil {
		return err
	}

	*m = *parsed

	return nil
}
