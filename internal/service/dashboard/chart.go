package dashboard

import (
	"context"
	"log/slog"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/indicator"
)

// SelectCoin - открыть график монеты в текущей валюте и окне.
func (c *Controller) SelectCoin(ctx context.Context, coin domain.CoinSnapshot) error {
	c.mu.Lock()
	c.state.selection.ActiveCoin = &coin
	c.mu.Unlock()

	c.logger.Info("coin selected", slog.String("coin", coin.ID))
	return c.loadChart(ctx)
}

// SelectCoinByID - то же, но монета ищется среди показанных карточек и листинга.
func (c *Controller) SelectCoinByID(ctx context.Context, id string) error {
	c.mu.Lock()
	coin, ok := c.findCoin(id)
	c.mu.Unlock()
	if !ok {
		return domain.ErrCoinNotFound
	}
	return c.SelectCoin(ctx, coin)
}

// OpenChart - выбрать монету по id и сразу задать окно графика одной загрузкой.
// days <= 0 оставляет текущее окно.
func (c *Controller) OpenChart(ctx context.Context, id string, days int) error {
	c.mu.Lock()
	coin, ok := c.findCoin(id)
	if !ok {
		c.mu.Unlock()
		return domain.ErrCoinNotFound
	}
	c.state.selection.ActiveCoin = &coin
	if days > 0 {
		c.state.selection.TimeframeDays = days
	}
	c.mu.Unlock()

	c.logger.Info("coin selected", slog.String("coin", coin.ID), slog.Int("days", days))
	return c.loadChart(ctx)
}

func (c *Controller) findCoin(id string) (domain.CoinSnapshot, bool) {
	for _, coins := range [][]domain.CoinSnapshot{c.state.presented, c.state.listing} {
		for _, coin := range coins {
			if coin.ID == id {
				return coin, true
			}
		}
	}
	return domain.CoinSnapshot{}, false
}

// ChangeTimeframe - новое окно графика в днях. Открытый график перезагружается.
func (c *Controller) ChangeTimeframe(ctx context.Context, days int) error {
	if days <= 0 {
		return domain.ErrInvalidTimeframe
	}

	c.mu.Lock()
	c.state.selection.TimeframeDays = days
	chartOpen := c.state.selection.ActiveCoin != nil
	c.mu.Unlock()

	if !chartOpen {
		return nil
	}
	return c.loadChart(ctx)
}

// ToggleIndicator - включить/выключить оверлей. Слои пересчитываются из уже
// загруженного ряда, сеть не используется.
func (c *Controller) ToggleIndicator(name domain.Indicator, enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	toggles, err := c.state.toggles.Set(name, enabled)
	if err != nil {
		return err
	}
	c.state.toggles = toggles

	chart, ok := c.loadedChart()
	if !ok {
		return nil
	}
	c.state.overlays = indicator.Overlays(domain.Prices(c.state.series), toggles, c.params)
	c.chart.ReplaceOverlays(chart.Coin.ID, c.state.overlays)
	return nil
}

// CloseChart - закрыть график. Ответ, который ещё в пути, будет отброшен.
func (c *Controller) CloseChart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.state.slots[SlotChart]
	st.generation++
	st.status = StatusIdle
	st.failure = nil

	c.state.selection.ActiveCoin = nil
	c.state.series = nil
	c.state.seriesCoin = domain.CoinSnapshot{}
	c.state.seriesKey = chartKey{}
	c.state.overlays = nil
	c.chart.CloseChart()
}

// loadChart - загрузить ряд для активной монеты. При ошибке уже нарисованный
// ряд остаётся на месте.
func (c *Controller) loadChart(ctx context.Context) error {
	c.mu.Lock()
	coin := c.state.selection.ActiveCoin
	if coin == nil {
		c.mu.Unlock()
		return domain.ErrNoActiveCoin
	}
	target := *coin
	key := chartKey{
		coinID:   coin.ID,
		currency: c.state.selection.Currency,
		days:     c.state.selection.TimeframeDays,
	}
	gen := c.begin(SlotChart)
	c.mu.Unlock()

	series, err := c.fetcher.FetchPriceSeries(ctx, key.coinID, key.currency, key.days)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(SlotChart, gen) {
		c.logger.Debug("chart superseded, response dropped", slog.String("coin", key.coinID))
		return nil
	}
	if err != nil {
		c.fail(SlotChart, err)
		return err
	}

	c.state.series = series
	c.state.seriesCoin = target
	c.state.seriesKey = key
	c.state.overlays = indicator.Overlays(domain.Prices(series), c.state.toggles, c.params)
	st := c.state.slots[SlotChart]
	st.status = StatusReady
	st.failure = nil

	chart, _ := c.loadedChart()
	c.logger.Info("chart loaded",
		slog.String("coin", key.coinID),
		slog.String("currency", key.currency),
		slog.Int("days", key.days),
		slog.Int("points", len(series)),
	)
	c.chart.DrawChart(chart)
	return nil
}

// loadedChart - нарисованный сейчас график, если ряд загружен. Монета графика
// может отличаться от активной, пока её ряд не пришёл. Вызывается под c.mu.
func (c *Controller) loadedChart() (Chart, bool) {
	if c.state.series == nil {
		return Chart{}, false
	}
	return Chart{
		Coin:          c.state.seriesCoin,
		Currency:      c.state.seriesKey.currency,
		TimeframeDays: c.state.seriesKey.days,
		Series:        append([]domain.PricePoint(nil), c.state.series...),
		Overlays:      append([]indicator.Overlay(nil), c.state.overlays...),
	}, true
}
