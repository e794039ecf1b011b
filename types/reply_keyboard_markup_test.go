package types

import (
	"encoding/json"
	"testing"

	"github.com/nejkit/telegram-bot-keyboard/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyKeyboardMarkupToDict(t *testing.T) {
	markup := NewReplyKeyboardMarkup(
		[][]*KeyboardButton{
			{NewKeyboardButton("one"), NewKeyboardButton("two", WithRequestContact(true))},
			{NewKeyboardButton("three")},
		},
		WithResizeKeyboard(true),
		WithInputFieldPlaceholder("pick one"),
	)

	assert.Equal(t, map[string]any{
		"keyboard": []any{
			[]any{
				map[string]any{"text": "one"},
				map[string]any{"text": "two", "request_contact": true},
			},
			[]any{
				map[string]any{"text": "three"},
			},
		},
		"resize_keyboard":         true,
		"input_field_placeholder": "pick one",
	}, markup.ToDict())

	assert.Equal(t, 3, markup.ButtonsCount())
}

func TestReplyKeyboardMarkupRowsAreCopied(t *testing.T) {
	rows := [][]*KeyboardButton{{NewKeyboardButton("one")}}
	markup := NewReplyKeyboardMarkup(rows)

	rows[0][0] = NewKeyboardButton("changed")
	markup.Keyboard()[0][0] = NewKeyboardButton("changed")

	assert.Equal(t, "one", markup.Keyboard()[0][0].Text())
}

func TestReplyKeyboardMarkupFromDict(t *testing.T) {
	var markup ReplyKeyboardMarkup

	require.NoError(t, json.Unmarshal([]byte(`{
		"keyboard": [
			[{"text": "one", "request_location": true}, "two"],
			[{"text": "three", "request_user": {"request_id": 2}}]
		],
		"one_time_keyboard": true,
		"is_persistent": false,
		"remove_keyboard": false
	}`), &markup))

	keyboard := markup.Keyboard()
	require.Len(t, keyboard, 2)
	require.Len(t, keyboard[0], 2)

	assert.Equal(t, Some(true), keyboard[0][0].RequestLocation())
	assert.Equal(t, "two", keyboard[0][1].Text())
	assert.Equal(t, map[string]any{"request_user": map[string]any{"request_id": json.Number("2")}}, keyboard[1][0].APIKwargs())
	assert.Equal(t, Some(true), markup.OneTimeKeyboard())
	assert.Equal(t, Some(false), markup.IsPersistent())
	assert.False(t, markup.ResizeKeyboard().IsSet())
	assert.Equal(t, map[string]any{"remove_keyboard": false}, markup.APIKwargs())

	button, ok := markup.FindButton("three")
	require.True(t, ok)
	assert.True(t, button.Equal(NewKeyboardButton("three")))

	_, ok = markup.FindButton("four")
	assert.False(t, ok)
}

func TestReplyKeyboardMarkupFromDictInvalidRow(t *testing.T) {
	_, err := ReplyKeyboardMarkupFromDict(map[string]any{"keyboard": []any{"one"}}, nil)
	assert.ErrorIs(t, err, domain.ErrorInvalidFieldType)

	_, err = ReplyKeyboardMarkupFromDict(map[string]any{"keyboard": []any{[]any{1}}}, nil)
	assert.ErrorIs(t, err, domain.ErrorInvalidFieldType)
}

func TestReplyKeyboardMarkupEquality(t *testing.T) {
	a := NewReplyKeyboardMarkupFromButtons([]*KeyboardButton{NewKeyboardButton("one"), NewKeyboardButton("two")})
	b := NewReplyKeyboardMarkupFromButtons([]*KeyboardButton{NewKeyboardButton("one"), NewKeyboardButton("two")}, WithResizeKeyboard(true))
	c := NewReplyKeyboardMarkupFromColumn([]*KeyboardButton{NewKeyboardButton("one"), NewKeyboardButton("two")})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())

	assert.False(t, a.Equal(NewKeyboardButton("one")))
}

func TestReplyKeyboardMarkupRoundTrip(t *testing.T) {
	markup := NewReplyKeyboardMarkupFromColumn(
		[]*KeyboardButton{newTestKeyboardButton(), NewKeyboardButton("plain")},
		WithOneTimeKeyboard(true),
		WithSelective(true),
	)

	raw, err := json.Marshal(markup)
	require.NoError(t, err)

	var restored ReplyKeyboardMarkup
	require.NoError(t, json.Unmarshal(raw, &restored))

	assert.True(t, markup.Equal(&restored))
	assert.Equal(t, markup.ToDict(), restored.ToDict())
}
