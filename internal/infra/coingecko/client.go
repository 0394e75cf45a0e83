package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/config"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
)

const defaultSearchLimit = 20

// Client - клиент CoinGecko API v3. Повторов не делает: это решение вызывающего.
type Client struct {
	cfg        config.CoinGeckoConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// marketDTO - элемент ответа /coins/markets. null в числовых полях даёт 0.
type marketDTO struct {
	ID                                string  `json:"id"`
	Symbol                            string  `json:"symbol"`
	Name                              string  `json:"name"`
	Image                             string  `json:"image"`
	MarketCapRank                     int     `json:"market_cap_rank"`
	CurrentPrice                      float64 `json:"current_price"`
	MarketCap                         float64 `json:"market_cap"`
	TotalVolume                       float64 `json:"total_volume"`
	High24h                           float64 `json:"high_24h"`
	Low24h                            float64 `json:"low_24h"`
	PriceChangePercentage24h          float64 `json:"price_change_percentage_24h"`
	PriceChangePercentage7dInCurrency float64 `json:"price_change_percentage_7d_in_currency"`
}

type searchDTO struct {
	Coins []struct {
		ID string `json:"id"`
	} `json:"coins"`
}

// marketChartDTO - ряд цен [timestamp_ms, price].
type marketChartDTO struct {
	Prices [][2]float64 `json:"prices"`
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg config.CoinGeckoConfig, logger *slog.Logger) *Client {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaultSearchLimit
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// ListMarkets - топ count монет по капитализации в валюте currency.
// Пустой ответ - ErrEmptyResult.
func (c *Client) ListMarkets(ctx context.Context, currency string, count int) ([]domain.CoinSnapshot, error) {
	const op = "list markets"
	q := url.Values{}
	q.Set("vs_currency", domain.NormalizeCurrency(currency))
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(count))
	q.Set("page", "1")
	q.Set("sparkline", "false")
	q.Set("price_change_percentage", "24h,7d")

	var data []marketDTO
	if err := c.get(ctx, op, []string{"coins", "markets"}, q, &data); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, &APIError{Op: op, Kind: domain.ErrEmptyResult}
	}
	return toSnapshots(data), nil
}

// SearchCoins - ищет монеты по тексту и догружает их снимки.
// Ноль совпадений - пустой срез без ошибки.
func (c *Client) SearchCoins(ctx context.Context, term, currency string) ([]domain.CoinSnapshot, error) {
	const op = "search"
	q := url.Values{}
	q.Set("query", strings.TrimSpace(term))

	var found searchDTO
	if err := c.get(ctx, op, []string{"search"}, q, &found); err != nil {
		return nil, err
	}
	if len(found.Coins) == 0 {
		return []domain.CoinSnapshot{}, nil
	}

	ids := make([]string, 0, min(len(found.Coins), c.cfg.SearchLimit))
	for _, coin := range found.Coins {
		if len(ids) == c.cfg.SearchLimit {
			break
		}
		ids = append(ids, coin.ID)
	}

	mq := url.Values{}
	mq.Set("vs_currency", domain.NormalizeCurrency(currency))
	mq.Set("ids", strings.Join(ids, ","))
	mq.Set("order", "market_cap_desc")
	mq.Set("sparkline", "false")
	mq.Set("price_change_percentage", "24h,7d")

	var data []marketDTO
	if err := c.get(ctx, "search details", []string{"coins", "markets"}, mq, &data); err != nil {
		return nil, err
	}
	return toSnapshots(data), nil
}

// FetchPriceSeries - ценовой ряд монеты за days дней, по возрастанию времени.
// Из ответа market_chart берутся только цены.
func (c *Client) FetchPriceSeries(ctx context.Context, coinID, currency string, days int) ([]domain.PricePoint, error) {
	q := url.Values{}
	q.Set("vs_currency", domain.NormalizeCurrency(currency))
	q.Set("days", strconv.Itoa(days))

	var data marketChartDTO
	if err := c.get(ctx, "market chart", []string{"coins", coinID, "market_chart"}, q, &data); err != nil {
		return nil, err
	}

	prices := make([]domain.PricePoint, 0, len(data.Prices))
	for _, p := range data.Prices {
		prices = append(prices, domain.PricePoint{TimestampMs: int64(p[0]), Price: p[1]})
	}
	sort.SliceStable(prices, func(i, j int) bool {
		return prices[i].TimestampMs < prices[j].TimestampMs
	})
	return prices, nil
}

// get - GET base/path?query с разбором JSON в out и классификацией отказов.
func (c *Client) get(ctx context.Context, op string, path []string, query url.Values, out any) error {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath(path...)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = "crypto-viewer/1.0"
	}
	req.Header.Set("User-Agent", ua)
	if c.cfg.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.cfg.APIKey)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("coingecko: request failed", slog.String("op", op), slog.String("err", err.Error()))
		return &APIError{Op: op, Kind: domain.ErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("coingecko: response",
		slog.String("op", op),
		slog.String("path", u.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(op, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Op: op, Kind: domain.ErrUpstream, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

func toSnapshots(data []marketDTO) []domain.CoinSnapshot {
	out := make([]domain.CoinSnapshot, 0, len(data))
	for _, d := range data {
		out = append(out, domain.CoinSnapshot{
			ID:                       d.ID,
			Name:                     d.Name,
			Symbol:                   d.Symbol,
			Image:                    d.Image,
			MarketCapRank:            d.MarketCapRank,
			CurrentPrice:             d.CurrentPrice,
			MarketCap:                d.MarketCap,
			TotalVolume:              d.TotalVolume,
			High24h:                  d.High24h,
			Low24h:                   d.Low24h,
			PriceChangePercentage24h: d.PriceChangePercentage24h,
			PriceChangePercentage7d:  d.PriceChangePercentage7dInCurrency,
		})
	}
	return out
}
