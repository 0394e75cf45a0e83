package coingecko

import (
	"fmt"
	"net/http"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
)

// APIError - классифицированный отказ запроса к CoinGecko.
// Kind - один из domain.ErrRateLimited, ErrUpstream, ErrEmptyResult, ErrNetwork.
type APIError struct {
	Op         string
	StatusCode int
	Kind       error
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("coingecko %s: %v (%d %s)", e.Op, e.Kind, e.StatusCode, http.StatusText(e.StatusCode))
	case e.Err != nil:
		return fmt.Sprintf("coingecko %s: %v: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("coingecko %s: %v", e.Op, e.Kind)
	}
}

// Unwrap - errors.Is видит и класс отказа, и исходную ошибку транспорта.
func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// classifyStatus - 429 отделяется от прочих не-2xx.
func classifyStatus(op string, code int) error {
	if code == http.StatusTooManyRequests {
		return &APIError{Op: op, StatusCode: code, Kind: domain.ErrRateLimited}
	}
	return &APIError{Op: op, StatusCode: code, Kind: domain.ErrUpstream}
}
