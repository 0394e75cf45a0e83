package domain

import (
	"strings"
	"time"
)

// CoinSnapshot - снимок рыночных метрик одной монеты в одной валюте котировки.
// После получения не изменяется: новый запрос даёт новый набор снимков.
type CoinSnapshot struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Symbol                   string  `json:"symbol"`
	Image                    string  `json:"image"`
	MarketCapRank            int     `json:"market_cap_rank"`
	CurrentPrice             float64 `json:"current_price"`
	MarketCap                float64 `json:"market_cap"`
	TotalVolume              float64 `json:"total_volume"`
	High24h                  float64 `json:"high_24h"`
	Low24h                   float64 `json:"low_24h"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	PriceChangePercentage7d  float64 `json:"price_change_percentage_7d_in_currency"`
}

// Matches - регистронезависимое вхождение term в имя или символ монеты.
// term ожидается уже в нижнем регистре.
func (c CoinSnapshot) Matches(term string) bool {
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Symbol), term)
}

// CachedSnapshotSet - слот кэша для одной валюты.
type CachedSnapshotSet struct {
	Currency    string         `json:"currency"`
	FetchedAtMs int64          `json:"fetched_at_ms"`
	Snapshots   []CoinSnapshot `json:"snapshots"`
}

// FetchedAt - время получения набора.
func (s CachedSnapshotSet) FetchedAt() time.Time {
	return time.UnixMilli(s.FetchedAtMs).UTC()
}

// PricePoint - точка ценового ряда (timestamp в мс, цена).
type PricePoint struct {
	TimestampMs int64   `json:"t"`
	Price       float64 `json:"p"`
}

// Prices - только значения цен, в порядке возрастания времени.
func Prices(points []PricePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Price
	}
	return out
}
