package storage

import (
	"testing"

	"github.com/nejkit/telegram-bot-keyboard/domain"
	"github.com/nejkit/telegram-bot-keyboard/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyboardInfoNavigation(t *testing.T) {
	first := testMarkup("one")
	second := testMarkup("two")
	info := &KeyboardInfo{Keyboards: []*types.ReplyKeyboardMarkup{first, second}}

	current, err := info.Current()
	require.NoError(t, err)
	assert.Same(t, first, current)

	_, err = info.Previous()
	assert.ErrorIs(t, err, domain.ErrorKeyboardPageOutOfRange)
	assert.Equal(t, 0, info.CurrentPosition)

	next, err := info.Next()
	require.NoError(t, err)
	assert.Same(t, second, next)

	_, err = info.Next()
	assert.ErrorIs(t, err, domain.ErrorKeyboardPageOutOfRange)
	assert.Equal(t, 1, info.CurrentPosition)

	previous, err := info.Previous()
	require.NoError(t, err)
	assert.Same(t, first, previous)
}

func TestKeyboardInfoEmpty(t *testing.T) {
	_, err := (&KeyboardInfo{}).Current()
	assert.ErrorIs(t, err, domain.ErrorKeyboardInfoIsEmpty)

	_, err = (&KeyboardInfo{Keyboards: []*types.ReplyKeyboardMarkup{testMarkup("one")}, CurrentPosition: 3}).Current()
	assert.ErrorIs(t, err, domain.ErrorKeyboardPageOutOfRange)
}
