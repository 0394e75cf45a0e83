package bot

//go:generate mockgen -source=bot.go -destination=mocks/mock_dashboard.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/config"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/service/dashboard"
	"gopkg.in/telebot.v4"
)

// Dashboard — команды дашборда, доступные из Telegram.
type Dashboard interface {
	View() dashboard.View
	LoadMarkets(ctx context.Context, forceRefresh bool) error
	Refresh(ctx context.Context) error
	ChangeCurrency(ctx context.Context, code string) error
	Search(ctx context.Context, term string) error
	OpenChart(ctx context.Context, id string, days int) error
	ToggleIndicator(name domain.Indicator, enabled bool) error
}

// Bot — Telegram-интерфейс дашборда для одного чата
type Bot struct {
	bot    *telebot.Bot
	cmd    *commands
	chatID int64
	logger *slog.Logger
}

// New создаёт бота; обслуживается только чат cfg.ChatID
func New(cfg config.TelegramConfig, svc Dashboard, timeout time.Duration, logger *slog.Logger) (*Bot, error) {
	if cfg.ChatID == 0 {
		return nil, errors.New("telegram chat id is not set")
	}
	pollTimeout := cfg.LongPollTimeout
	if pollTimeout <= 0 {
		pollTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: pollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:    b,
		cmd:    newCommands(svc, timeout, logger),
		chatID: cfg.ChatID,
		logger: logger,
	}

	b.Use(bot.onlyOwnChat)

	// маршруты команд
	b.Handle("/start", bot.handle(bot.cmd.help))
	b.Handle("/markets", bot.handle(bot.cmd.markets))
	b.Handle("/refresh", bot.handle(bot.cmd.refresh))
	b.Handle("/currency", bot.handle(bot.cmd.currency))
	b.Handle("/search", bot.handle(bot.cmd.search))
	b.Handle("/chart", bot.handle(bot.cmd.chart))
	b.Handle("/ma", bot.handle(bot.cmd.toggle(domain.IndicatorMovingAverage)))
	b.Handle("/bb", bot.handle(bot.cmd.toggle(domain.IndicatorBollingerBands)))
	return bot, nil
}

// onlyOwnChat — сообщения из чужих чатов молча игнорируются
func (b *Bot) onlyOwnChat(next telebot.HandlerFunc) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		chat := c.Chat()
		if chat == nil || chat.ID != b.chatID {
			if chat != nil {
				b.logger.Warn("bot: message from foreign chat ignored", slog.Int64("chat_id", chat.ID))
			}
			return nil
		}
		return next(c)
	}
}

func (b *Bot) handle(fn func(args []string) string) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		b.logger.Debug("bot: command received",
			slog.Int64("chat_id", c.Chat().ID),
			slog.String("text", c.Text()),
		)
		if err := c.Send(fn(c.Args())); err != nil {
			b.logger.Error("bot: send failed", slog.String("error", err.Error()))
			return err
		}
		return nil
	}
}

// Start запускает long polling; останавливается вместе с контекстом
func (b *Bot) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		b.bot.Stop()
	}()
	b.bot.Start()
}
