// Package telegram feeds Telegram long-poll updates into a bot.Dispatcher.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/alexanderramin/healthbot/internal/bot"
)

// API is the subset of tgbotapi.BotAPI used by the transport.
type API interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Handler answers one chat message.
type Handler interface {
	Handle(ctx context.Context, msg bot.Message) bot.Reply
}

// Bot polls updates and replies through the Bot API.
type Bot struct {
	api     API
	handler Handler
	workers int
	logger  *slog.Logger
}

// NewAPI authenticates against the Bot API with token.
func NewAPI(token string, debug bool) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}
	api.Debug = debug
	return api, nil
}

// New creates a Bot. Updates are spread over workers goroutines by user id,
// so one user's messages are handled strictly in order.
func New(api API, handler Handler, workers int, logger *slog.Logger) *Bot {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{api: api, handler: handler, workers: workers, logger: logger}
}

// MenuKeyboard builds the static reply keyboard.
func MenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(bot.MenuRows()))
	for _, labels := range bot.MenuRows() {
		row := make([]tgbotapi.KeyboardButton, 0, len(labels))
		for _, l := range labels {
			row = append(row, tgbotapi.NewKeyboardButton(l))
		}
		rows = append(rows, row)
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

// Run polls until ctx is cancelled, then drains in-flight updates.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	shards := make([]chan tgbotapi.Update, b.workers)
	var wg sync.WaitGroup
	for i := range shards {
		shards[i] = make(chan tgbotapi.Update, 16)
		wg.Add(1)
		go func(in <-chan tgbotapi.Update) {
			defer wg.Done()
			for upd := range in {
				b.process(ctx, upd)
			}
		}(shards[i])
	}

	b.logger.Info("telegram polling started", "workers", b.workers)
	defer func() {
		for _, s := range shards {
			close(s)
		}
		wg.Wait()
		b.logger.Info("telegram polling stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			if upd.Message == nil || upd.Message.From == nil {
				continue
			}
			shards[shardOf(upd.Message.From.ID, b.workers)] <- upd
		}
	}
}

func shardOf(userID int64, n int) int {
	s := userID % int64(n)
	if s < 0 {
		s = -s
	}
	return int(s)
}

func (b *Bot) process(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg.Text == "" {
		return
	}

	reply := b.handler.Handle(ctx, bot.Message{UserID: msg.From.ID, Text: msg.Text})
	if reply.Text == "" {
		return
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply.Text)
	if reply.ShowMenu {
		out.ReplyMarkup = MenuKeyboard()
	}
	if _, err := b.api.Send(out); err != nil {
		b.logger.Error("sending reply failed", "user_id", msg.From.ID, "chat_id", msg.Chat.ID, "error", err)
	}
}
