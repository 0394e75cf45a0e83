package httptransport

import (
	"net/http"
	"strings"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/ports/errcode"
)

// HTTPStatus - статус ответа по коду ошибки.
func HTTPStatus(code errcode.Code) int {
	switch code {
	case errcode.RateLimited:
		return http.StatusTooManyRequests
	case errcode.Upstream, errcode.EmptyResult:
		return http.StatusBadGateway
	case errcode.Network:
		return http.StatusGatewayTimeout
	case errcode.UnsupportedCurrency, errcode.UnknownIndicator, errcode.InvalidTimeframe, errcode.BadRequest:
		return http.StatusBadRequest
	case errcode.NoActiveCoin:
		return http.StatusConflict
	case errcode.NotFoundCoin, errcode.NoMatches:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorBody - тело ответа с ошибкой.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func makeErrorBody(code errcode.Code) ErrorBody {
	return ErrorBody{
		Error:   strings.ToLower(string(code)),
		Message: errcode.Message(code),
	}
}
