package dashboard

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

import (
	"context"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/indicator"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/ports/errcode"
)

// Fetcher - источник рыночных данных (CoinGecko).
type Fetcher interface {
	ListMarkets(ctx context.Context, currency string, count int) ([]domain.CoinSnapshot, error)
	SearchCoins(ctx context.Context, term, currency string) ([]domain.CoinSnapshot, error)
	FetchPriceSeries(ctx context.Context, coinID, currency string, days int) ([]domain.PricePoint, error)
}

// Failure - классифицированная ошибка слота для показа пользователю.
type Failure struct {
	Code    errcode.Code `json:"code"`
	Message string       `json:"message"`
}

// Renderer - отображение карточек. Вызывается под блокировкой контроллера,
// поэтому реализация не должна обращаться к контроллеру обратно.
type Renderer interface {
	RenderLoading(slot Slot)
	RenderCards(currency string, coins []domain.CoinSnapshot)
	RenderNoResults(term string)
	RenderError(slot Slot, f Failure)
	RenderLastUpdated(at time.Time)
}

// Chart - ценовой ряд активной монеты с оверлеями.
type Chart struct {
	Coin          domain.CoinSnapshot `json:"coin"`
	Currency      string              `json:"currency"`
	TimeframeDays int                 `json:"timeframe_days"`
	Series        []domain.PricePoint `json:"series"`
	Overlays      []indicator.Overlay `json:"overlays"`
}

// ChartEngine - отрисовка графика. Те же ограничения, что у Renderer.
type ChartEngine interface {
	DrawChart(chart Chart)
	// ReplaceOverlays - заменить только производные слои; ценовой ряд остаётся.
	ReplaceOverlays(coinID string, overlays []indicator.Overlay)
	// ShowChartError - ошибка внутри открытого графика, сам график не закрывается.
	ShowChartError(coinID string, f Failure)
	CloseChart()
}
