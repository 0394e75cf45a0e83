package dashboard_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/cache"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/indicator"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/ports/errcode"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/service/dashboard"
	dashmocks "github.com/NastyaGoryachaya/crypto-viewer/internal/service/dashboard/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	fetcher  *dashmocks.MockFetcher
	renderer *dashmocks.MockRenderer
	chart    *dashmocks.MockChartEngine
	store    *cache.MemoryStore
	clock    *fixedClock
	ctrl     *dashboard.Controller
}

// newFixture - контроллер на моках; вызовы отрисовки разрешены в любом количестве,
// если тест не задаёт своих ожиданий до них.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	mc := gomock.NewController(t)

	f := &fixture{
		fetcher:  dashmocks.NewMockFetcher(mc),
		renderer: dashmocks.NewMockRenderer(mc),
		chart:    dashmocks.NewMockChartEngine(mc),
		store:    cache.NewMemoryStore(slog.Default()),
		clock:    &fixedClock{t: testNow},
	}
	f.ctrl = dashboard.NewController(f.fetcher, f.store, f.renderer, f.chart, dashboard.Options{
		Currency:   "brl",
		Currencies: []string{"brl", "usd", "eur"},
		Count:      18,
		TTL:        12 * time.Second,
		Params:     indicator.Params{MAPeriod: 2, BBPeriod: 2, BBMultiplier: 2},
		Clock:      f.clock,
	}, slog.Default())
	return f
}

func (f *fixture) allowRenders() {
	f.renderer.EXPECT().RenderLoading(gomock.Any()).AnyTimes()
	f.renderer.EXPECT().RenderCards(gomock.Any(), gomock.Any()).AnyTimes()
	f.renderer.EXPECT().RenderLastUpdated(gomock.Any()).AnyTimes()
}

var listing = []domain.CoinSnapshot{
	{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: 350000},
	{ID: "ethereum", Name: "Ethereum", Symbol: "eth", CurrentPrice: 14000},
	{ID: "tether", Name: "Tether", Symbol: "usdt", CurrentPrice: 5.4},
}

func series(prices ...float64) []domain.PricePoint {
	out := make([]domain.PricePoint, len(prices))
	for i, p := range prices {
		out[i] = domain.PricePoint{TimestampMs: int64(i) * 1000, Price: p}
	}
	return out
}

// LoadMarkets: свежий слот кэша - в сеть не ходим
func TestLoadMarkets_FreshCacheSkipsNetwork(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()

	require.NoError(t, f.store.Put(ctx, "brl", listing, testNow.Add(-5*time.Second)))
	f.fetcher.EXPECT().ListMarkets(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, f.ctrl.LoadMarkets(ctx, false))

	v := f.ctrl.View()
	assert.Equal(t, listing, v.Coins)
	require.NotNil(t, v.LastUpdated)
	assert.Equal(t, testNow.Add(-5*time.Second).UnixMilli(), v.LastUpdated.UnixMilli())
	assert.Equal(t, dashboard.StatusReady, v.Slots[dashboard.SlotListing].Status)
}

// LoadMarkets: протухший кэш - сеть и запись в кэш
func TestLoadMarkets_StaleCacheFetchesAndWritesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()

	require.NoError(t, f.store.Put(ctx, "brl", listing[:1], testNow.Add(-12*time.Second)))
	f.fetcher.EXPECT().ListMarkets(gomock.Any(), "brl", 18).Return(listing, nil).Times(1)

	require.NoError(t, f.ctrl.LoadMarkets(ctx, false))

	entry, ok, err := f.store.Get(ctx, "brl")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testNow.UnixMilli(), entry.FetchedAtMs)
	assert.Len(t, entry.Snapshots, 3)
	assert.Len(t, f.ctrl.View().Coins, 3)
}

// Refresh: кэш всегда обходится
func TestRefresh_BypassesFreshCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()

	require.NoError(t, f.store.Put(ctx, "brl", listing[:1], testNow))
	f.fetcher.EXPECT().ListMarkets(gomock.Any(), "brl", 18).Return(listing, nil).Times(1)

	require.NoError(t, f.ctrl.Refresh(ctx))
	assert.Len(t, f.ctrl.View().Coins, 3)
}

// ChangeCurrency: новая валюта грузится из сети даже при свежем кэше
func TestChangeCurrency_BypassesCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()

	require.NoError(t, f.store.Put(ctx, "usd", listing[:1], testNow))
	f.fetcher.EXPECT().ListMarkets(gomock.Any(), "usd", 18).Return(listing, nil).Times(1)

	require.NoError(t, f.ctrl.ChangeCurrency(ctx, " USD "))

	v := f.ctrl.View()
	assert.Equal(t, "usd", v.Selection.Currency)
	assert.Len(t, v.Coins, 3)
}

func TestChangeCurrency_Unsupported(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	err := f.ctrl.ChangeCurrency(context.Background(), "xyz")
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
	assert.Equal(t, "brl", f.ctrl.View().Selection.Currency)
}

// ChangeCurrency: открытый график перезагружается в новой валюте
func TestChangeCurrency_ReloadsOpenChart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()
	f.chart.EXPECT().DrawChart(gomock.Any()).Times(2)

	f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "bitcoin", "brl", 7).Return(series(1, 2, 3), nil)
	require.NoError(t, f.ctrl.SelectCoin(ctx, listing[0]))

	f.fetcher.EXPECT().ListMarkets(gomock.Any(), "eur", 18).Return(listing, nil)
	f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "bitcoin", "eur", 7).Return(series(4, 5, 6), nil)
	require.NoError(t, f.ctrl.ChangeCurrency(ctx, "eur"))

	v := f.ctrl.View()
	require.NotNil(t, v.Chart)
	assert.Equal(t, "eur", v.Chart.Currency)
	assert.Equal(t, 4.0, v.Chart.Series[0].Price)
}

// LoadMarkets: ошибка источника видна пользователю, список не трогаем
func TestLoadMarkets_ErrorSurfaced(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()

	f.fetcher.EXPECT().ListMarkets(gomock.Any(), "brl", 18).Return(listing, nil)
	require.NoError(t, f.ctrl.Refresh(ctx))

	f.fetcher.EXPECT().ListMarkets(gomock.Any(), "brl", 18).Return(nil, domain.ErrRateLimited)
	f.renderer.EXPECT().
		RenderError(dashboard.SlotListing, gomock.AssignableToTypeOf(dashboard.Failure{})).
		DoAndReturn(func(_ dashboard.Slot, fl dashboard.Failure) {
			assert.Equal(t, errcode.RateLimited, fl.Code)
			assert.NotEmpty(t, fl.Message)
		}).
		Times(1)

	err := f.ctrl.Refresh(ctx)
	assert.ErrorIs(t, err, domain.ErrRateLimited)

	v := f.ctrl.View()
	assert.Len(t, v.Coins, 3)
	sv := v.Slots[dashboard.SlotListing]
	assert.Equal(t, dashboard.StatusError, sv.Status)
	require.NotNil(t, sv.Failure)
	assert.Equal(t, errcode.RateLimited, sv.Failure.Code)
}

// Retry(listing): повтор всегда в обход кэша
func TestRetry_Listing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()
	f.renderer.EXPECT().RenderError(gomock.Any(), gomock.Any()).Times(1)

	gomock.InOrder(
		f.fetcher.EXPECT().ListMarkets(gomock.Any(), "brl", 18).Return(nil, domain.ErrNetwork),
		f.fetcher.EXPECT().ListMarkets(gomock.Any(), "brl", 18).Return(listing, nil),
	)

	require.Error(t, f.ctrl.LoadMarkets(ctx, false))
	require.NoError(t, f.ctrl.Retry(ctx, dashboard.SlotListing))

	v := f.ctrl.View()
	assert.Equal(t, dashboard.StatusReady, v.Slots[dashboard.SlotListing].Status)
	assert.Len(t, v.Coins, 3)
}

// Search(""): полный последний листинг
func TestSearch_EmptyTermShowsListing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()

	f.fetcher.EXPECT().ListMarkets(gomock.Any(), "brl", 18).Return(listing, nil)
	f.fetcher.EXPECT().SearchCoins(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	require.NoError(t, f.ctrl.Refresh(ctx))

	require.NoError(t, f.ctrl.Search(ctx, "bit"))
	assert.Len(t, f.ctrl.View().Coins, 1)

	require.NoError(t, f.ctrl.Search(ctx, "   "))
	assert.Equal(t, listing, f.ctrl.View().Coins)
}

// Search: совпадение по символу в листинге - без запроса к API
func TestSearch_LocalMatchNoFetch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()

	f.fetcher.EXPECT().ListMarkets(gomock.Any(), "brl", 18).Return(listing, nil)
	f.fetcher.EXPECT().SearchCoins(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	require.NoError(t, f.ctrl.Refresh(ctx))

	require.NoError(t, f.ctrl.Search(ctx, "USDT"))

	v := f.ctrl.View()
	require.Len(t, v.Coins, 1)
	assert.Equal(t, "tether", v.Coins[0].ID)
	assert.Equal(t, "USDT", v.SearchTerm)
}

// Search: нет локальных совпадений - поиск через API
func TestSearch_RemoteFallback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()

	found := []domain.CoinSnapshot{{ID: "solana", Name: "Solana", Symbol: "sol"}}
	f.fetcher.EXPECT().ListMarkets(gomock.Any(), "brl", 18).Return(listing, nil)
	f.fetcher.EXPECT().SearchCoins(gomock.Any(), "sol", "brl").Return(found, nil).Times(1)
	require.NoError(t, f.ctrl.Refresh(ctx))

	require.NoError(t, f.ctrl.Search(ctx, "sol"))
	assert.Equal(t, found, f.ctrl.View().Coins)
}

// Search: API ничего не нашёл - состояние "нет результатов", не ошибка
func TestSearch_NoResults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()

	f.fetcher.EXPECT().SearchCoins(gomock.Any(), "zzz", "brl").Return([]domain.CoinSnapshot{}, nil)
	f.renderer.EXPECT().RenderNoResults("zzz").Times(1)

	require.NoError(t, f.ctrl.Search(ctx, "zzz"))

	v := f.ctrl.View()
	assert.True(t, v.NoResults)
	assert.Empty(t, v.Coins)
	assert.Equal(t, dashboard.StatusReady, v.Slots[dashboard.SlotSearch].Status)
}

// Retry(search): повторяется последний запрос
func TestRetry_SearchRepeatsLastTerm(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()
	f.renderer.EXPECT().RenderError(dashboard.SlotSearch, gomock.Any()).Times(1)

	found := []domain.CoinSnapshot{{ID: "solana", Symbol: "sol"}}
	gomock.InOrder(
		f.fetcher.EXPECT().SearchCoins(gomock.Any(), "sol", "brl").Return(nil, domain.ErrUpstream),
		f.fetcher.EXPECT().SearchCoins(gomock.Any(), "sol", "brl").Return(found, nil),
	)

	assert.ErrorIs(t, f.ctrl.Search(ctx, "sol"), domain.ErrUpstream)
	require.NoError(t, f.ctrl.Retry(ctx, dashboard.SlotSearch))
	assert.Equal(t, found, f.ctrl.View().Coins)
}

// SelectCoin: ответ для A, пришедший после выбора B, отбрасывается
func TestSelectCoin_SupersededResponseDropped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()

	started := make(chan struct{})
	release := make(chan struct{})

	f.fetcher.EXPECT().
		FetchPriceSeries(gomock.Any(), "bitcoin", "brl", 7).
		DoAndReturn(func(context.Context, string, string, int) ([]domain.PricePoint, error) {
			close(started)
			<-release
			return series(1, 1, 1), nil
		})
	f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "ethereum", "brl", 7).Return(series(2, 3, 4), nil)

	f.chart.EXPECT().
		DrawChart(gomock.AssignableToTypeOf(dashboard.Chart{})).
		DoAndReturn(func(c dashboard.Chart) {
			assert.Equal(t, "ethereum", c.Coin.ID)
		}).
		Times(1)

	done := make(chan error, 1)
	go func() { done <- f.ctrl.SelectCoin(ctx, listing[0]) }()
	<-started

	require.NoError(t, f.ctrl.SelectCoin(ctx, listing[1]))
	close(release)
	require.NoError(t, <-done)

	v := f.ctrl.View()
	require.NotNil(t, v.Chart)
	assert.Equal(t, "ethereum", v.Chart.Coin.ID)
	assert.Equal(t, 2.0, v.Chart.Series[0].Price)
}

// CloseChart: поздний ответ после закрытия не рисуется
func TestCloseChart_LateResponseDropped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()

	started := make(chan struct{})
	release := make(chan struct{})
	f.fetcher.EXPECT().
		FetchPriceSeries(gomock.Any(), "bitcoin", "brl", 7).
		DoAndReturn(func(context.Context, string, string, int) ([]domain.PricePoint, error) {
			close(started)
			<-release
			return series(1, 2), nil
		})
	f.chart.EXPECT().CloseChart().Times(1)
	f.chart.EXPECT().DrawChart(gomock.Any()).Times(0)

	done := make(chan error, 1)
	go func() { done <- f.ctrl.SelectCoin(ctx, listing[0]) }()
	<-started
	f.ctrl.CloseChart()
	close(release)
	require.NoError(t, <-done)

	v := f.ctrl.View()
	assert.Nil(t, v.Chart)
	assert.Nil(t, v.Selection.ActiveCoin)
	assert.Equal(t, dashboard.StatusIdle, v.Slots[dashboard.SlotChart].Status)
}

// ToggleIndicator: слои пересчитываются из загруженного ряда без сети
func TestToggleIndicator_NoNetwork(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()
	f.chart.EXPECT().DrawChart(gomock.Any()).Times(1)

	f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "bitcoin", "brl", 7).Return(series(1, 2, 3, 4), nil).Times(1)
	require.NoError(t, f.ctrl.SelectCoin(ctx, listing[0]))

	var got [][]indicator.Overlay
	f.chart.EXPECT().
		ReplaceOverlays("bitcoin", gomock.Any()).
		DoAndReturn(func(_ string, o []indicator.Overlay) { got = append(got, o) }).
		Times(3)

	require.NoError(t, f.ctrl.ToggleIndicator(domain.IndicatorMovingAverage, true))
	require.NoError(t, f.ctrl.ToggleIndicator(domain.IndicatorBollingerBands, true))
	require.NoError(t, f.ctrl.ToggleIndicator(domain.IndicatorMovingAverage, false))

	require.Len(t, got, 3)
	require.Len(t, got[0], 1)
	assert.Equal(t, "MA (2)", got[0][0].Label)
	assert.False(t, got[0][0].Data[0].Valid)
	assert.InDelta(t, 1.5, got[0][0].Data[1].Float, 1e-9)
	assert.Len(t, got[1], 3)
	require.Len(t, got[2], 2)
	assert.Equal(t, indicator.RoleBandUpper, got[2][0].Role)

	v := f.ctrl.View()
	require.NotNil(t, v.Chart)
	assert.Len(t, v.Chart.Series, 4)
	assert.False(t, v.Toggles.MovingAverage)
	assert.True(t, v.Toggles.BollingerBands)
}

// ToggleIndicator без графика только запоминает флаг
func TestToggleIndicator_NoChart(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.chart.EXPECT().ReplaceOverlays(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, f.ctrl.ToggleIndicator(domain.IndicatorMovingAverage, true))
	assert.True(t, f.ctrl.View().Toggles.MovingAverage)

	assert.ErrorIs(t, f.ctrl.ToggleIndicator("rsi", true), domain.ErrUnknownIndicator)
}

// Ошибка графика показывается внутри графика, загруженный ряд остаётся
func TestChartError_KeepsSeries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()
	f.chart.EXPECT().DrawChart(gomock.Any()).Times(1)

	gomock.InOrder(
		f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "bitcoin", "brl", 7).Return(series(1, 2, 3), nil),
		f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "bitcoin", "brl", 30).Return(nil, domain.ErrUpstream),
	)
	f.chart.EXPECT().
		ShowChartError("bitcoin", gomock.AssignableToTypeOf(dashboard.Failure{})).
		DoAndReturn(func(_ string, fl dashboard.Failure) {
			assert.Equal(t, errcode.Upstream, fl.Code)
		}).
		Times(1)

	require.NoError(t, f.ctrl.SelectCoin(ctx, listing[0]))
	assert.ErrorIs(t, f.ctrl.ChangeTimeframe(ctx, 30), domain.ErrUpstream)

	v := f.ctrl.View()
	require.NotNil(t, v.Chart)
	assert.Len(t, v.Chart.Series, 3)
	assert.Equal(t, 7, v.Chart.TimeframeDays)
	assert.Equal(t, 30, v.Selection.TimeframeDays)
	assert.Equal(t, dashboard.StatusError, v.Slots[dashboard.SlotChart].Status)
}

// Retry(chart): повтор для активной монеты
func TestRetry_Chart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()
	f.chart.EXPECT().ShowChartError(gomock.Any(), gomock.Any()).Times(1)
	f.chart.EXPECT().DrawChart(gomock.Any()).Times(1)

	gomock.InOrder(
		f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "ethereum", "brl", 7).Return(nil, domain.ErrNetwork),
		f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "ethereum", "brl", 7).Return(series(5, 6), nil),
	)

	assert.ErrorIs(t, f.ctrl.SelectCoin(ctx, listing[1]), domain.ErrNetwork)
	require.NoError(t, f.ctrl.Retry(ctx, dashboard.SlotChart))
	assert.Equal(t, dashboard.StatusReady, f.ctrl.View().Slots[dashboard.SlotChart].Status)
}

func TestChartOps_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)

	assert.ErrorIs(t, f.ctrl.ChangeTimeframe(ctx, 0), domain.ErrInvalidTimeframe)
	assert.ErrorIs(t, f.ctrl.Retry(ctx, dashboard.SlotChart), domain.ErrNoActiveCoin)
	assert.ErrorIs(t, f.ctrl.SelectCoinByID(ctx, "missing"), domain.ErrCoinNotFound)

	// без графика смена окна только запоминается
	require.NoError(t, f.ctrl.ChangeTimeframe(ctx, 90))
	assert.Equal(t, 90, f.ctrl.View().Selection.TimeframeDays)
}

func TestSelectCoinByID_FromListing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()
	f.chart.EXPECT().DrawChart(gomock.Any()).Times(1)

	f.fetcher.EXPECT().ListMarkets(gomock.Any(), "brl", 18).Return(listing, nil)
	f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "tether", "brl", 7).Return(series(5.4), nil)

	require.NoError(t, f.ctrl.Refresh(ctx))
	require.NoError(t, f.ctrl.SelectCoinByID(ctx, "tether"))
	assert.Equal(t, "tether", f.ctrl.View().Selection.ActiveCoin.ID)
}

func TestVisibility(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	assert.True(t, f.ctrl.Visible())
	f.ctrl.SetVisible(false)
	assert.False(t, f.ctrl.Visible())
	assert.False(t, f.ctrl.View().Visible)
}

// OpenChart: монета и окно задаются одной загрузкой
func TestOpenChart_SingleLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()
	f.chart.EXPECT().DrawChart(gomock.Any()).Times(1)

	f.fetcher.EXPECT().ListMarkets(gomock.Any(), "brl", 18).Return(listing, nil)
	f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "ethereum", "brl", 30).Return(series(1, 2), nil).Times(1)

	require.NoError(t, f.ctrl.Refresh(ctx))
	require.NoError(t, f.ctrl.OpenChart(ctx, "ethereum", 30))

	v := f.ctrl.View()
	require.NotNil(t, v.Chart)
	assert.Equal(t, 30, v.Chart.TimeframeDays)
	assert.ErrorIs(t, f.ctrl.OpenChart(ctx, "missing", 0), domain.ErrCoinNotFound)
}

// Выбор B не загрузился: на экране остаётся график A, и переключатели
// обновляют именно его
func TestToggleIndicator_AfterFailedSelectUpdatesDrawnChart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t)
	f.allowRenders()
	f.chart.EXPECT().DrawChart(gomock.Any()).Times(1)
	f.chart.EXPECT().ShowChartError("ethereum", gomock.Any()).Times(1)

	gomock.InOrder(
		f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "bitcoin", "brl", 7).Return(series(1, 2, 3), nil),
		f.fetcher.EXPECT().FetchPriceSeries(gomock.Any(), "ethereum", "brl", 7).Return(nil, domain.ErrRateLimited),
	)
	require.NoError(t, f.ctrl.SelectCoin(ctx, listing[0]))
	assert.ErrorIs(t, f.ctrl.SelectCoin(ctx, listing[1]), domain.ErrRateLimited)

	f.chart.EXPECT().
		ReplaceOverlays("bitcoin", gomock.Any()).
		DoAndReturn(func(_ string, o []indicator.Overlay) {
			require.Len(t, o, 1)
			assert.Equal(t, indicator.RoleMovingAverage, o[0].Role)
		}).
		Times(1)
	require.NoError(t, f.ctrl.ToggleIndicator(domain.IndicatorMovingAverage, true))

	v := f.ctrl.View()
	assert.Equal(t, "ethereum", v.Selection.ActiveCoin.ID)
	require.NotNil(t, v.Chart)
	assert.Equal(t, "bitcoin", v.Chart.Coin.ID)
	assert.Len(t, v.Chart.Overlays, 1)
}
