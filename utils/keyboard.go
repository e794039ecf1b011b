package utils

import (
	"github.com/nejkit/telegram-bot-keyboard/locale"
	"github.com/nejkit/telegram-bot-keyboard/storage"
	"github.com/nejkit/telegram-bot-keyboard/types"
	"github.com/sirupsen/logrus"
)

var (
	PreviousPageButtonText = "Назад"
	NextPageButtonText     = "Вперед"
)

type PageDirection int

const (
	PageNone     PageDirection = 0
	PagePrevious PageDirection = -1
	PageNext     PageDirection = 1
)

// BuildReplyKeyboard lays labels out row by row, columns buttons per row.
// A non-positive columns value puts every label into its own row.
func BuildReplyKeyboard(
	labels []string,
	columns int,
	opts ...types.ReplyKeyboardMarkupOption,
) *types.ReplyKeyboardMarkup {
	if len(labels) == 0 {
		logrus.Debug("empty data for build reply keyboard")
		return nil
	}

	return types.NewReplyKeyboardMarkup(buildRows(labels, columns), opts...)
}

func BuildLocalizedReplyKeyboard(
	provider *locale.LocalizationProvider,
	culture string,
	keys []string,
	columns int,
	opts ...types.ReplyKeyboardMarkupOption,
) *types.ReplyKeyboardMarkup {
	labels := make([]string, 0, len(keys))

	for _, key := range keys {
		labels = append(labels, provider.GetWithCulture(culture, key))
	}

	return BuildReplyKeyboard(labels, columns, opts...)
}

// BuildPagedReplyKeyboard splits labels into pages of pageSize buttons.
// Every page but the first gets a previous button and every page but the
// last a next button, in a trailing row.
func BuildPagedReplyKeyboard(
	labels []string,
	pageSize int,
	columns int,
	opts ...types.ReplyKeyboardMarkupOption,
) *storage.KeyboardInfo {
	if len(labels) == 0 || pageSize <= 0 {
		logrus.WithField("pageSize", pageSize).Debug("empty data for build paged reply keyboard")
		return nil
	}

	pagesAmount := (len(labels) + pageSize - 1) / pageSize

	keyboards := make([]*types.ReplyKeyboardMarkup, 0, pagesAmount)

	for pageNumber := 0; pageNumber < pagesAmount; pageNumber++ {
		start := pageNumber * pageSize
		end := min(start+pageSize, len(labels))

		rows := buildRows(labels[start:end], columns)

		navigation := make([]*types.KeyboardButton, 0, 2)

		if pageNumber != 0 {
			navigation = append(navigation, types.NewKeyboardButton(PreviousPageButtonText))
		}

		if pageNumber != pagesAmount-1 {
			navigation = append(navigation, types.NewKeyboardButton(NextPageButtonText))
		}

		if len(navigation) > 0 {
			rows = append(rows, navigation)
		}

		keyboards = append(keyboards, types.NewReplyKeyboardMarkup(rows, opts...))
	}

	return &storage.KeyboardInfo{Keyboards: keyboards}
}

// GetPageDirection maps the text of an incoming message to a paging step.
// Reply keyboard presses arrive as ordinary messages with the label as
// text.
func GetPageDirection(text string) PageDirection {
	switch text {
	case PreviousPageButtonText:
		return PagePrevious
	case NextPageButtonText:
		return PageNext
	}

	return PageNone
}

func buildRows(labels []string, columns int) [][]*types.KeyboardButton {
	if columns <= 0 {
		columns = 1
	}

	rows := make([][]*types.KeyboardButton, 0, (len(labels)+columns-1)/columns)

	for labelIdx, label := range labels {
		if labelIdx%columns == 0 {
			rows = append(rows, make([]*types.KeyboardButton, 0, columns))
		}

		rows[len(rows)-1] = append(rows[len(rows)-1], types.NewKeyboardButton(label))
	}

	return rows
}

func ContactButton(text string) *types.KeyboardButton {
	return types.NewKeyboardButton(text, types.WithRequestContact(true))
}

func LocationButton(text string) *types.KeyboardButton {
	return types.NewKeyboardButton(text, types.WithRequestLocation(true))
}

func PollButton(text string, pollType types.PollType) *types.KeyboardButton {
	return types.NewKeyboardButton(text, types.WithRequestPoll(types.NewKeyboardButtonPollType(pollType)))
}

func WebAppButton(text, url string) *types.KeyboardButton {
	return types.NewKeyboardButton(text, types.WithWebApp(types.NewWebAppInfo(url)))
}

func RequestChatButton(text string, requestID int64, chatIsChannel bool, opts ...types.RequestChatOption) *types.KeyboardButton {
	return types.NewKeyboardButton(text, types.WithRequestChat(types.NewKeyboardButtonRequestChat(requestID, chatIsChannel, opts...)))
}

func RequestUsersButton(text string, requestID int64, opts ...types.RequestUsersOption) *types.KeyboardButton {
	return types.NewKeyboardButton(text, types.WithRequestUsers(types.NewKeyboardButtonRequestUsers(requestID, opts...)))
}
