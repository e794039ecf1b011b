package utils

import (
	"strings"
	"testing"

	"github.com/nejkit/telegram-bot-keyboard/locale"
	"github.com/nejkit/telegram-bot-keyboard/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowTexts(markup *types.ReplyKeyboardMarkup) [][]string {
	var texts [][]string

	for _, row := range markup.Keyboard() {
		var rowText []string

		for _, button := range row {
			rowText = append(rowText, button.Text())
		}

		texts = append(texts, rowText)
	}

	return texts
}

func TestBuildReplyKeyboard(t *testing.T) {
	markup := BuildReplyKeyboard([]string{"a", "b", "c", "d", "e"}, 2, types.WithResizeKeyboard(true))
	require.NotNil(t, markup)

	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, rowTexts(markup))
	assert.Equal(t, types.Some(true), markup.ResizeKeyboard())

	column := BuildReplyKeyboard([]string{"a", "b"}, 0)
	assert.Equal(t, [][]string{{"a"}, {"b"}}, rowTexts(column))

	assert.Nil(t, BuildReplyKeyboard(nil, 2))
}

func TestBuildPagedReplyKeyboard(t *testing.T) {
	info := BuildPagedReplyKeyboard([]string{"a", "b", "c", "d", "e"}, 2, 2)
	require.NotNil(t, info)
	require.Len(t, info.Keyboards, 3)

	assert.Equal(t, [][]string{{"a", "b"}, {NextPageButtonText}}, rowTexts(info.Keyboards[0]))
	assert.Equal(t, [][]string{{"c", "d"}, {PreviousPageButtonText, NextPageButtonText}}, rowTexts(info.Keyboards[1]))
	assert.Equal(t, [][]string{{"e"}, {PreviousPageButtonText}}, rowTexts(info.Keyboards[2]))

	single := BuildPagedReplyKeyboard([]string{"a"}, 3, 1)
	require.Len(t, single.Keyboards, 1)
	assert.Equal(t, [][]string{{"a"}}, rowTexts(single.Keyboards[0]))

	assert.Nil(t, BuildPagedReplyKeyboard([]string{"a"}, 0, 1))
	assert.Nil(t, BuildPagedReplyKeyboard(nil, 3, 1))
}

func TestBuildLocalizedReplyKeyboard(t *testing.T) {
	provider, err := locale.NewLocalizationProviderFromReader(strings.NewReader(`{
		"defaultCulture": "en",
		"localizedContent": {"menu.help": {"en": "Help", "ru": "Помощь"}}
	}`))
	require.NoError(t, err)

	markup := BuildLocalizedReplyKeyboard(provider, "ru", []string{"menu.help", "menu.other"}, 2)

	assert.Equal(t, [][]string{{"Помощь", "menu.other"}}, rowTexts(markup))
}

func TestGetPageDirection(t *testing.T) {
	assert.Equal(t, PagePrevious, GetPageDirection(PreviousPageButtonText))
	assert.Equal(t, PageNext, GetPageDirection(NextPageButtonText))
	assert.Equal(t, PageNone, GetPageDirection("a"))
}

func TestRequestButtons(t *testing.T) {
	assert.Equal(t, map[string]any{"text": "c", "request_contact": true}, ContactButton("c").ToDict())
	assert.Equal(t, map[string]any{"text": "l", "request_location": true}, LocationButton("l").ToDict())
	assert.Equal(t, map[string]any{"text": "p", "request_poll": map[string]any{"type": "quiz"}}, PollButton("p", types.PollTypeQuiz).ToDict())
	assert.Equal(t, map[string]any{"text": "w", "web_app": map[string]any{"url": "https://example.com"}}, WebAppButton("w", "https://example.com").ToDict())

	chat := RequestChatButton("g", 1, false, types.WithChatIsForum(true))
	assert.True(t, chat.RequestChat().Equal(types.NewKeyboardButtonRequestChat(1, false, types.WithChatIsForum(true))))

	users := RequestUsersButton("u", 2, types.WithMaxQuantity(2))
	assert.True(t, users.RequestUsers().Equal(types.NewKeyboardButtonRequestUsers(2, types.WithMaxQuantity(2))))
}
