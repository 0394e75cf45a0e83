package domain

import "errors"

var (
	// Классы отказов источника данных
	ErrRateLimited = errors.New("upstream rate limit exceeded")
	ErrUpstream    = errors.New("upstream error")
	ErrEmptyResult = errors.New("upstream returned no data")
	ErrNetwork     = errors.New("network error")

	// ErrNoMatches - поиск ничего не нашёл. Это состояние, а не ошибка запроса.
	ErrNoMatches = errors.New("no matches")

	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrNoActiveCoin        = errors.New("no active coin")
	ErrUnknownIndicator    = errors.New("unknown indicator")
	ErrCoinNotFound        = errors.New("coin not found")
	ErrInvalidTimeframe    = errors.New("invalid timeframe")
)
