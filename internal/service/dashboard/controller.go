package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/cache"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/indicator"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/ports/errcode"
)

// Options - начальное состояние и политика дашборда.
type Options struct {
	Currency      string
	Currencies    []string
	Count         int
	TimeframeDays int
	TTL           time.Duration
	Params        indicator.Params
	Clock         Clock
}

func (o *Options) withDefaults() {
	if o.Currency == "" {
		o.Currency = "brl"
	}
	if o.Count <= 0 {
		o.Count = 18
	}
	if o.TimeframeDays <= 0 {
		o.TimeframeDays = domain.DefaultTimeframeDays
	}
	if o.TTL <= 0 {
		o.TTL = cache.DefaultTTL
	}
	if o.Params == (indicator.Params{}) {
		o.Params = indicator.DefaultParams()
	}
	if o.Clock == nil {
		o.Clock = NewRealClock()
	}
}

// Controller - владелец состояния дашборда: выбор пользователя, флаги индикаторов,
// решения "кэш или сеть" и применение ответов по поколениям слотов.
//
// Блокировка не удерживается во время запросов к Fetcher; состояние меняется
// только в момент применения ответа.
type Controller struct {
	mu    sync.Mutex
	state appState

	fetcher  Fetcher
	cache    cache.Store
	renderer Renderer
	chart    ChartEngine

	clock      Clock
	ttl        time.Duration
	count      int
	currencies map[string]struct{}
	params     indicator.Params
	logger     *slog.Logger
}

// NewController - конструктор контроллера дашборда.
func NewController(fetcher Fetcher, store cache.Store, renderer Renderer, chart ChartEngine, opts Options, logger *slog.Logger) *Controller {
	opts.withDefaults()

	currency := domain.NormalizeCurrency(opts.Currency)
	supported := make(map[string]struct{}, len(opts.Currencies)+1)
	for _, code := range opts.Currencies {
		supported[domain.NormalizeCurrency(code)] = struct{}{}
	}
	supported[currency] = struct{}{}

	return &Controller{
		state:      newAppState(currency, opts.TimeframeDays),
		fetcher:    fetcher,
		cache:      store,
		renderer:   renderer,
		chart:      chart,
		clock:      opts.Clock,
		ttl:        opts.TTL,
		count:      opts.Count,
		currencies: supported,
		params:     opts.Params,
		logger:     logger,
	}
}

// LoadMarkets - листинг для текущей валюты. Без forceRefresh свежий слот кэша
// применяется сразу, без сети.
func (c *Controller) LoadMarkets(ctx context.Context, forceRefresh bool) error {
	c.mu.Lock()
	currency := c.state.selection.Currency
	gen := c.begin(SlotListing)
	c.mu.Unlock()

	if !forceRefresh {
		entry, ok, err := c.cache.Get(ctx, currency)
		if err != nil {
			c.logger.Warn("cache get failed, falling back to network", slog.String("currency", currency), slog.String("err", err.Error()))
		}
		if err == nil && ok && cache.IsFresh(entry, c.clock.Now(), c.ttl) {
			c.mu.Lock()
			defer c.mu.Unlock()
			if !c.current(SlotListing, gen) {
				c.logger.Debug("listing superseded, cached result dropped", slog.String("currency", currency))
				return nil
			}
			c.logger.Debug("listing served from cache", slog.String("currency", currency), slog.Int("count", len(entry.Snapshots)))
			c.applyListing(entry.Snapshots, entry.FetchedAt())
			return nil
		}
	}

	coins, err := c.fetcher.ListMarkets(ctx, currency, c.count)
	fetchedAt := c.clock.Now()
	if err == nil {
		// Слот кэша привязан к валюте запроса, поэтому пишем и вытесненный ответ:
		// данные для этой валюты корректны.
		if perr := c.cache.Put(ctx, currency, coins, fetchedAt); perr != nil {
			c.logger.Warn("cache put failed", slog.String("currency", currency), slog.String("err", perr.Error()))
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(SlotListing, gen) {
		c.logger.Debug("listing superseded, response dropped", slog.String("currency", currency))
		return nil
	}
	if err != nil {
		c.fail(SlotListing, err)
		return err
	}
	c.logger.Info("listing loaded", slog.String("currency", currency), slog.Int("count", len(coins)))
	c.applyListing(coins, fetchedAt)
	return nil
}

// Refresh - ручное обновление: всегда в обход кэша.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.LoadMarkets(ctx, true)
}

// ChangeCurrency - смена валюты котировки. Кэш всегда обходится; открытый график
// перезагружается в новой валюте.
func (c *Controller) ChangeCurrency(ctx context.Context, code string) error {
	currency := domain.NormalizeCurrency(code)
	if _, ok := c.currencies[currency]; !ok {
		return domain.ErrUnsupportedCurrency
	}

	c.mu.Lock()
	c.state.selection.Currency = currency
	chartOpen := c.state.selection.ActiveCoin != nil
	c.mu.Unlock()

	c.logger.Info("currency changed", slog.String("currency", currency))

	err := c.LoadMarkets(ctx, true)
	if chartOpen {
		err = errors.Join(err, c.loadChart(ctx))
	}
	return err
}

// Search - пустой запрос показывает последний листинг; иначе сначала локальный
// фильтр по имени/символу, и только если он пуст - поиск через API.
func (c *Controller) Search(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	needle := strings.ToLower(term)

	c.mu.Lock()
	c.state.lastSearch = term

	if term == "" {
		c.begin(SlotSearch)
		c.present(SlotSearch, c.state.listing)
		c.mu.Unlock()
		return nil
	}

	var local []domain.CoinSnapshot
	for _, coin := range c.state.listing {
		if coin.Matches(needle) {
			local = append(local, coin)
		}
	}
	if len(local) > 0 {
		c.begin(SlotSearch)
		c.present(SlotSearch, local)
		c.mu.Unlock()
		c.logger.Debug("search served locally", slog.String("term", term), slog.Int("count", len(local)))
		return nil
	}

	currency := c.state.selection.Currency
	gen := c.begin(SlotSearch)
	c.mu.Unlock()

	coins, err := c.fetcher.SearchCoins(ctx, term, currency)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(SlotSearch, gen) {
		c.logger.Debug("search superseded, response dropped", slog.String("term", term))
		return nil
	}
	if err != nil {
		c.fail(SlotSearch, err)
		return err
	}
	if len(coins) == 0 {
		c.state.presented = nil
		c.state.noResults = true
		c.state.slots[SlotSearch].status = StatusReady
		c.state.slots[SlotSearch].failure = nil
		c.renderer.RenderNoResults(term)
		return nil
	}
	c.present(SlotSearch, coins)
	return nil
}

// Retry - повторить последний запрос слота с forceRefresh.
func (c *Controller) Retry(ctx context.Context, slot Slot) error {
	switch slot {
	case SlotSearch:
		c.mu.Lock()
		term := c.state.lastSearch
		c.mu.Unlock()
		return c.Search(ctx, term)
	case SlotChart:
		return c.loadChart(ctx)
	default:
		return c.LoadMarkets(ctx, true)
	}
}

// SetVisible - дашборд на переднем плане или нет.
func (c *Controller) SetVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.visible = visible
}

// Visible - нужно ли автообновление.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.visible
}

// View - копия текущего состояния.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Selection:  c.state.selection,
		Toggles:    c.state.toggles,
		Coins:      append([]domain.CoinSnapshot(nil), c.state.presented...),
		NoResults:  c.state.noResults,
		SearchTerm: c.state.lastSearch,
		Visible:    c.state.visible,
		Slots:      make(map[Slot]SlotView, len(c.state.slots)),
	}
	if coin := c.state.selection.ActiveCoin; coin != nil {
		cp := *coin
		v.Selection.ActiveCoin = &cp
	}
	if !c.state.lastUpdated.IsZero() {
		at := c.state.lastUpdated
		v.LastUpdated = &at
	}
	if chart, ok := c.loadedChart(); ok {
		v.Chart = &chart
	}
	for slot, st := range c.state.slots {
		sv := SlotView{Status: st.status}
		if st.failure != nil {
			f := *st.failure
			sv.Failure = &f
		}
		v.Slots[slot] = sv
	}
	return v
}

// begin - новый запрос в слот: поколение+1, статус Loading.
// Вызывается под c.mu.
func (c *Controller) begin(slot Slot) uint64 {
	st := c.state.slots[slot]
	st.generation++
	st.status = StatusLoading
	st.failure = nil
	c.renderer.RenderLoading(slot)
	return st.generation
}

// current - ответ с поколением gen ещё актуален. Вызывается под c.mu.
func (c *Controller) current(slot Slot, gen uint64) bool {
	return c.state.slots[slot].generation == gen
}

// fail - слот в Error с сообщением для пользователя. Вызывается под c.mu.
func (c *Controller) fail(slot Slot, err error) {
	code := errcode.FromError(err)
	f := Failure{Code: code, Message: errcode.Message(code)}
	st := c.state.slots[slot]
	st.status = StatusError
	st.failure = &f

	c.logger.Error("dashboard request failed",
		slog.String("slot", string(slot)),
		slog.String("code", string(code)),
		slog.String("err", err.Error()),
	)

	if slot == SlotChart {
		coinID := ""
		if coin := c.state.selection.ActiveCoin; coin != nil {
			coinID = coin.ID
		}
		c.chart.ShowChartError(coinID, f)
		return
	}
	c.renderer.RenderError(slot, f)
}

// applyListing - новый полный листинг в состояние и на экран. Вызывается под c.mu.
func (c *Controller) applyListing(coins []domain.CoinSnapshot, at time.Time) {
	c.state.listing = coins
	c.state.lastUpdated = at
	c.present(SlotListing, coins)
	c.renderer.RenderLastUpdated(at)
}

// present - показать карточки и перевести слот в Ready. Вызывается под c.mu.
func (c *Controller) present(slot Slot, coins []domain.CoinSnapshot) {
	c.state.presented = coins
	c.state.noResults = false
	st := c.state.slots[slot]
	st.status = StatusReady
	st.failure = nil
	c.renderer.RenderCards(c.state.selection.Currency, coins)
}
