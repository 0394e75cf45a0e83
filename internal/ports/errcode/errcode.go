package errcode

import (
	"errors"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
)

type Code string

const (
	RateLimited Code = "RATE_LIMITED"
	Upstream    Code = "UPSTREAM_ERROR"
	EmptyResult Code = "EMPTY_RESULT"
	Network     Code = "NETWORK_ERROR"
	NoMatches   Code = "NO_MATCHES"

	UnsupportedCurrency Code = "UNSUPPORTED_CURRENCY"
	UnknownIndicator    Code = "UNKNOWN_INDICATOR"
	InvalidTimeframe    Code = "INVALID_TIMEFRAME"
	NoActiveCoin        Code = "NO_ACTIVE_COIN"
	NotFoundCoin        Code = "NOT_FOUND_COIN"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)

// FromError - код по классу ошибки. Порядок важен: 429 проверяется раньше общего upstream.
func FromError(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrRateLimited):
		return RateLimited
	case errors.Is(err, domain.ErrEmptyResult):
		return EmptyResult
	case errors.Is(err, domain.ErrNetwork):
		return Network
	case errors.Is(err, domain.ErrUpstream):
		return Upstream
	case errors.Is(err, domain.ErrNoMatches):
		return NoMatches
	case errors.Is(err, domain.ErrUnsupportedCurrency):
		return UnsupportedCurrency
	case errors.Is(err, domain.ErrUnknownIndicator):
		return UnknownIndicator
	case errors.Is(err, domain.ErrInvalidTimeframe):
		return InvalidTimeframe
	case errors.Is(err, domain.ErrNoActiveCoin):
		return NoActiveCoin
	case errors.Is(err, domain.ErrCoinNotFound):
		return NotFoundCoin
	default:
		return Internal
	}
}

// Message - текст для пользователя.
func Message(code Code) string {
	switch code {
	case RateLimited:
		return "Request limit reached. Please wait a few minutes and try again."
	case Upstream:
		return "The market data service returned an error. Please try again."
	case EmptyResult:
		return "No cryptocurrency data was returned by the market data service."
	case Network:
		return "Could not reach the market data service. Check your connection and try again."
	case NoMatches:
		return "No cryptocurrency found for this search."
	case UnsupportedCurrency:
		return "This currency is not supported."
	case UnknownIndicator:
		return "Unknown indicator."
	case InvalidTimeframe:
		return "Invalid chart timeframe."
	case NoActiveCoin:
		return "Select a coin first."
	case NotFoundCoin:
		return "Coin not found."
	case BadRequest:
		return "Bad request."
	default:
		return "Internal error, please try again later."
	}
}
