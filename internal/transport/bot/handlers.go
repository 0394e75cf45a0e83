package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/pkg/botfmt"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/ports/errcode"
)

var ErrInvalidSwitch = errors.New("expected on or off")

const helpText = "Привет! Доступные команды:\n" +
	"/markets - топ монет в текущей валюте\n" +
	"/refresh - обновить котировки\n" +
	"/currency {код} - сменить валюту (brl, usd, eur...)\n" +
	"/search {запрос} - поиск монеты\n" +
	"/chart {id} [дни] - график монеты (1, 7, 30, 90, 365)\n" +
	"/ma on|off - скользящая средняя\n" +
	"/bb on|off - полосы Боллинджера"

// commands — тексты ответов на команды. Отделены от telebot, чтобы их можно
// было проверять без сети.
type commands struct {
	svc     Dashboard
	timeout time.Duration
	logger  *slog.Logger
}

func newCommands(svc Dashboard, timeout time.Duration, logger *slog.Logger) *commands {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &commands{svc: svc, timeout: timeout, logger: logger}
}

func (c *commands) help([]string) string {
	return helpText
}

// markets — текущий листинг; свежий кэш используется
func (c *commands) markets([]string) string {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if err := c.svc.LoadMarkets(ctx, false); err != nil {
		return c.failure("markets", err)
	}
	return c.listing()
}

func (c *commands) refresh([]string) string {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if err := c.svc.Refresh(ctx); err != nil {
		return c.failure("refresh", err)
	}
	return c.listing()
}

func (c *commands) currency(args []string) string {
	if len(args) != 1 {
		return "Укажи валюту: /currency usd"
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if err := c.svc.ChangeCurrency(ctx, args[0]); err != nil {
		return c.failure("currency", err)
	}
	return c.listing()
}

func (c *commands) search(args []string) string {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if err := c.svc.Search(ctx, strings.Join(args, " ")); err != nil {
		return c.failure("search", err)
	}
	v := c.svc.View()
	if v.NoResults {
		return translateBotError(errcode.NoMatches)
	}
	return botfmt.FormatCoinList(v.Coins, v.Selection.Currency)
}

func (c *commands) chart(args []string) string {
	if len(args) < 1 || len(args) > 2 {
		return "Укажи монету: /chart bitcoin 30"
	}
	days := 0
	if len(args) == 2 {
		d, err := strconv.Atoi(args[1])
		if err != nil || d <= 0 {
			return translateBotError(errcode.InvalidTimeframe)
		}
		days = d
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if err := c.svc.OpenChart(ctx, strings.ToLower(args[0]), days); err != nil {
		return c.failure("chart", err)
	}
	return c.chartSummary()
}

func (c *commands) toggle(name domain.Indicator) func([]string) string {
	return func(args []string) string {
		if len(args) != 1 {
			return fmt.Sprintf("Укажи on или off: /%s on", name)
		}
		enabled, err := parseSwitch(args[0])
		if err != nil {
			return fmt.Sprintf("Укажи on или off: /%s on", name)
		}
		if err := c.svc.ToggleIndicator(name, enabled); err != nil {
			return c.failure("toggle", err)
		}
		if c.svc.View().Chart == nil {
			state := "выключен"
			if enabled {
				state = "включён"
			}
			return fmt.Sprintf("Индикатор %s %s. Открой график: /chart {id}", name, state)
		}
		return c.chartSummary()
	}
}

func (c *commands) listing() string {
	v := c.svc.View()
	if len(v.Coins) == 0 {
		return translateBotError(errcode.EmptyResult)
	}
	return botfmt.FormatCoinList(v.Coins, v.Selection.Currency)
}

func (c *commands) chartSummary() string {
	v := c.svc.View()
	if v.Chart == nil {
		return translateBotError(errcode.NoActiveCoin)
	}
	ch := v.Chart
	return botfmt.FormatChart(ch.Coin, ch.Currency, ch.TimeframeDays, ch.Series, ch.Overlays)
}

func (c *commands) failure(op string, err error) string {
	code := errcode.FromError(err)
	if code == errcode.Internal {
		c.logger.Error("bot: command failed", slog.String("op", op), slog.String("error", err.Error()))
	}
	return translateBotError(code)
}

// parseSwitch — on/off и синонимы
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "1", "true", "вкл":
		return true, nil
	case "off", "0", "false", "выкл":
		return false, nil
	default:
		return false, ErrInvalidSwitch
	}
}
