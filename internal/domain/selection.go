package domain

import "strings"

// Indicator - имя оверлея на графике.
type Indicator string

const (
	IndicatorMovingAverage  Indicator = "ma"
	IndicatorBollingerBands Indicator = "bb"
)

// ParseIndicator - разбирает имя индикатора ("ma", "bb" и длинные синонимы).
func ParseIndicator(s string) (Indicator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ma", "moving_average", "movingaverage":
		return IndicatorMovingAverage, nil
	case "bb", "bollinger", "bollinger_bands", "bollingerbands":
		return IndicatorBollingerBands, nil
	default:
		return "", ErrUnknownIndicator
	}
}

// IndicatorToggleSet - включённые оверлеи.
type IndicatorToggleSet struct {
	MovingAverage  bool `json:"moving_average"`
	BollingerBands bool `json:"bollinger_bands"`
}

// Set - возвращает копию набора с изменённым флагом.
func (t IndicatorToggleSet) Set(name Indicator, enabled bool) (IndicatorToggleSet, error) {
	switch name {
	case IndicatorMovingAverage:
		t.MovingAverage = enabled
	case IndicatorBollingerBands:
		t.BollingerBands = enabled
	default:
		return t, ErrUnknownIndicator
	}
	return t, nil
}

// AppSelection - что сейчас выбрано пользователем.
// Валюта и активная монета - независимые оси.
type AppSelection struct {
	Currency      string        `json:"currency"`
	ActiveCoin    *CoinSnapshot `json:"active_coin,omitempty"`
	TimeframeDays int           `json:"timeframe_days"`
}

const DefaultTimeframeDays = 7

// NormalizeCurrency - код валюты в нижнем регистре без пробелов.
func NormalizeCurrency(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
