package botfmt

import (
	"fmt"
	"strings"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/indicator"
	"github.com/shopspring/decimal"
)

// FormatCoinLine — короткая строка карточки для списков /markets и /search
func FormatCoinLine(c domain.CoinSnapshot, currency string) string {
	return fmt.Sprintf("%s (%s) | %s %s | 24ч: %s",
		c.Name,
		strings.ToUpper(c.Symbol),
		HumanPrice(c.CurrentPrice),
		strings.ToUpper(currency),
		HumanPercent(c.PriceChangePercentage24h),
	)
}

// FormatCoinList — список карточек, по строке на монету
func FormatCoinList(coins []domain.CoinSnapshot, currency string) string {
	var bld strings.Builder
	for i, c := range coins {
		if i > 0 {
			bld.WriteByte('\n')
		}
		bld.WriteString(FormatCoinLine(c, currency))
	}
	return bld.String()
}

// FormatChart — сводка графика: последняя цена, диапазон за окно и последние
// значения включённых индикаторов
func FormatChart(coin domain.CoinSnapshot, currency string, days int, series []domain.PricePoint, overlays []indicator.Overlay) string {
	cur := strings.ToUpper(currency)
	if len(series) == 0 {
		return fmt.Sprintf("[%s] нет данных за %d дн.", strings.ToUpper(coin.Symbol), days)
	}

	lo, hi := series[0].Price, series[0].Price
	for _, p := range series {
		lo = min(lo, p.Price)
		hi = max(hi, p.Price)
	}
	last := series[len(series)-1].Price

	var bld strings.Builder
	fmt.Fprintf(&bld, "[%s] %s, %d дн.\n", strings.ToUpper(coin.Symbol), coin.Name, days)
	fmt.Fprintf(&bld, "Текущая цена: %s %s\n", HumanPrice(last), cur)
	fmt.Fprintf(&bld, "Минимум: %s %s\n", HumanPrice(lo), cur)
	fmt.Fprintf(&bld, "Максимум: %s %s", HumanPrice(hi), cur)
	for _, o := range overlays {
		fmt.Fprintf(&bld, "\n%s: %s", o.Label, lastValue(o.Data))
	}
	return bld.String()
}

func lastValue(data []indicator.Value) string {
	if len(data) == 0 || !data[len(data)-1].Valid {
		return "—"
	}
	return HumanPrice(data[len(data)-1].Float)
}

// HumanPrice — цена с двумя знаками, а для цен меньше 1 — с шестью.
func HumanPrice(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.Abs().LessThan(decimal.NewFromInt(1)) && !d.IsZero() {
		return d.StringFixed(6)
	}
	return d.StringFixed(2)
}

// HumanPercent — процент со знаком и двумя знаками после запятой.
func HumanPercent(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsPositive() {
		return "+" + d.StringFixed(2) + "%"
	}
	return d.StringFixed(2) + "%"
}
