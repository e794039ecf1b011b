package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nejkit/telegram-bot-keyboard/config"
	"github.com/nejkit/telegram-bot-keyboard/domain"
	"github.com/nejkit/telegram-bot-keyboard/limiter"
	"github.com/nejkit/telegram-bot-keyboard/storage"
	"github.com/nejkit/telegram-bot-keyboard/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type TelegramClient struct {
	api       *tgbotapi.BotAPI
	keyboards storage.KeyboardStorage

	chatLimiter   *limiter.ChatLimiter
	globalLimiter *rate.Limiter
}

type MessageOptions func(msgCfg *tgbotapi.MessageConfig)

func WithReplyKeyboard(keyboard *types.ReplyKeyboardMarkup) MessageOptions {
	return func(msgCfg *tgbotapi.MessageConfig) {
		msgCfg.ReplyMarkup = keyboard
	}
}

func WithRemoveReplyKeyboard(selective bool) MessageOptions {
	return func(msgCfg *tgbotapi.MessageConfig) {
		msgCfg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(selective)
	}
}

func WithParseMode(parseMode string) MessageOptions {
	return func(msgCfg *tgbotapi.MessageConfig) {
		msgCfg.ParseMode = parseMode
	}
}

func WithReplyToMessage(messageID int) MessageOptions {
	return func(msgCfg *tgbotapi.MessageConfig) {
		msgCfg.ReplyToMessageID = messageID
	}
}

// NewBotAPI authorizes against the Bot API through a RetryTransport. The
// returned bot is shared by the client and the keyboard storage.
func NewBotAPI(cfg *config.TelegramConfig) (*tgbotapi.BotAPI, error) {
	httpClient := &http.Client{
		Transport: &RetryTransport{
			Base:    http.DefaultTransport,
			Retries: cfg.RequestRetries,
			Wait:    time.Duration(cfg.RetryWaitMs) * time.Millisecond,
		},
	}

	botApi, err := tgbotapi.NewBotAPIWithClient(cfg.Token, cfg.APIEndpoint, httpClient)

	if err != nil {
		return nil, err
	}

	botApi.Debug = cfg.Debug

	logrus.WithField("bot", botApi.Self.UserName).Info("telegram client authorized")

	return botApi, nil
}

func NewTelegramClient(cfg *config.TelegramConfig, botApi *tgbotapi.BotAPI, keyboards storage.KeyboardStorage) *TelegramClient {
	chatRate := rate.Limit(cfg.MessagePerSecond)

	if cfg.MessagePerSecond < 0 {
		chatRate = -1
	}

	return &TelegramClient{
		api:           botApi,
		keyboards:     keyboards,
		globalLimiter: newGlobalLimiter(cfg.GlobalRateLimit),
		chatLimiter:   limiter.NewChatLimiter(chatRate, 1),
	}
}

// newGlobalLimiter treats a non-positive limit as no limit.
func newGlobalLimiter(perSecond int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}

	return rate.NewLimiter(rate.Limit(perSecond), perSecond)
}

func (t *TelegramClient) API() *tgbotapi.BotAPI {
	return t.api
}

func (t *TelegramClient) RunChatRatesCleanup(ctx context.Context) {
	go t.chatLimiter.Run(ctx)
}

func (t *TelegramClient) wait(ctx context.Context, chatID int64) error {
	if err := t.globalLimiter.Wait(ctx); err != nil {
		return err
	}

	return t.chatLimiter.Wait(ctx, chatID)
}

// SendMessage sends a text message. A reply keyboard passed with
// WithReplyKeyboard becomes the chat's active keyboard; WithRemoveReplyKeyboard
// forgets it.
func (t *TelegramClient) SendMessage(ctx context.Context, recipientChatID int64, messageText string, options ...MessageOptions) (int, error) {
	cfg := tgbotapi.NewMessage(recipientChatID, messageText)

	for _, opt := range options {
		opt(&cfg)
	}

	if err := t.wait(ctx, recipientChatID); err != nil {
		return 0, err
	}

	response, err := t.api.Send(cfg)

	if err != nil {
		return 0, err
	}

	log := logrus.WithFields(logrus.Fields{
		"chatID":    recipientChatID,
		"messageID": response.MessageID,
	})

	switch markup := cfg.ReplyMarkup.(type) {
	case *types.ReplyKeyboardMarkup:
		if err := t.keyboards.SaveActiveKeyboard(ctx, recipientChatID, markup); err != nil {
			log.WithError(err).Error("failed to save active keyboard")
		}

	case tgbotapi.ReplyKeyboardRemove:
		if err := t.keyboards.DeleteActiveKeyboard(ctx, recipientChatID); err != nil {
			log.WithError(err).Error("failed to delete active keyboard")
		}
	}

	return response.MessageID, nil
}

func (t *TelegramClient) DeleteMessage(ctx context.Context, recipientChatID int64, messageID int) error {
	cfg := tgbotapi.NewDeleteMessage(recipientChatID, messageID)

	if err := t.wait(ctx, recipientChatID); err != nil {
		return err
	}

	_, err := t.api.Request(cfg)

	return err
}

// SendPagedKeyboard sends the current page of info and remembers the pages
// under the id of the sent message.
func (t *TelegramClient) SendPagedKeyboard(ctx context.Context, recipientChatID int64, messageText string, info *storage.KeyboardInfo, options ...MessageOptions) (int, error) {
	page, err := info.Current()

	if err != nil {
		return 0, err
	}

	messageID, err := t.SendMessage(ctx, recipientChatID, messageText, append(options, WithReplyKeyboard(page))...)

	if err != nil {
		return 0, err
	}

	if err = t.keyboards.SaveKeyboardInfo(ctx, recipientChatID, messageID, info); err != nil {
		return 0, err
	}

	return messageID, nil
}

// TurnKeyboardPage moves the paged keyboard sent with messageID by step
// pages. Reply keyboards cannot be edited in place, so the new page goes
// out with a fresh message and the pages move to its id.
func (t *TelegramClient) TurnKeyboardPage(ctx context.Context, recipientChatID int64, messageID int, step int, messageText string) (int, error) {
	info, err := t.keyboards.GetKeyboardInfo(ctx, recipientChatID, messageID)

	if err != nil {
		return 0, err
	}

	switch {
	case step > 0:
		_, err = info.Next()
	case step < 0:
		_, err = info.Previous()
	}

	if err != nil {
		return 0, err
	}

	newMessageID, err := t.SendPagedKeyboard(ctx, recipientChatID, messageText, info)

	if err != nil {
		return 0, err
	}

	if err = t.keyboards.DeleteKeyboardInfo(ctx, recipientChatID, messageID); err != nil {
		logrus.WithError(err).WithField("messageID", messageID).Error("failed to delete previous keyboard pages")
	}

	return newMessageID, nil
}

// ResolvePressedButton finds the button of the chat's active keyboard that
// produced an incoming message with the given text.
func (t *TelegramClient) ResolvePressedButton(ctx context.Context, chatID int64, text string) (*types.KeyboardButton, bool, error) {
	keyboard, err := t.keyboards.GetActiveKeyboard(ctx, chatID)

	if errors.Is(err, domain.ErrorKeyboardNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	button, ok := keyboard.FindButton(text)

	return button, ok, nil
}

// DecodeReplyKeyboard decodes a reply keyboard received from the Bot API,
// binding it and its buttons to this client's bot.
func (t *TelegramClient) DecodeReplyKeyboard(raw []byte) (*types.ReplyKeyboardMarkup, error) {
	return types.ReplyKeyboardMarkupFromJSON(raw, t.api)
}
