package bot

import "github.com/NastyaGoryachaya/crypto-viewer/internal/ports/errcode"

func translateBotError(code errcode.Code) string {
	switch code {
	case errcode.RateLimited:
		return "Лимит запросов исчерпан. Подожди пару минут и попробуй снова"
	case errcode.Upstream:
		return "Сервис котировок вернул ошибку, попробуй позже"
	case errcode.EmptyResult:
		return "Сервис котировок не вернул данных"
	case errcode.Network:
		return "Нет связи с сервисом котировок"
	case errcode.NoMatches:
		return "Ничего не найдено"
	case errcode.UnsupportedCurrency:
		return "Валюта не поддерживается"
	case errcode.InvalidTimeframe:
		return "Некорректный период графика"
	case errcode.NoActiveCoin:
		return "Сначала выбери монету: /chart {id}"
	case errcode.NotFoundCoin:
		return "Монета не найдена. Сначала /markets или /search"
	case errcode.UnknownIndicator:
		return "Неизвестный индикатор"
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}
