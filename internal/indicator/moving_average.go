package indicator

// MovingAverage - простая скользящая средняя с окном period.
// Длина результата равна длине series; первые period-1 значений отсутствуют.
func MovingAverage(series []float64, period int) []Value {
	out := make([]Value, len(series))
	if period <= 0 || len(series) < period {
		return out
	}
	for i := period - 1; i < len(series); i++ {
		out[i] = Some(mean(series[i-period+1 : i+1]))
	}
	return out
}

// mean - среднее окна. Считаем заново на каждой точке, без скользящей суммы:
// на длинных рядах она накапливает ошибку округления.
func mean(window []float64) float64 {
	var sum float64
	for _, v := range window {
		sum += v
	}
	return sum / float64(len(window))
}
