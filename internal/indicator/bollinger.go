package indicator

import "math"

// Bands - полосы Боллинджера. Middle совпадает со скользящей средней.
type Bands struct {
	Middle []Value `json:"middle"`
	Upper  []Value `json:"upper"`
	Lower  []Value `json:"lower"`
}

// BollingerBands - средняя ± multiplier стандартных отклонений в том же окне.
// Отклонение популяционное: сумма квадратов делится на period.
func BollingerBands(series []float64, period int, multiplier float64) Bands {
	middle := MovingAverage(series, period)
	b := Bands{
		Middle: middle,
		Upper:  make([]Value, len(series)),
		Lower:  make([]Value, len(series)),
	}
	for i, m := range middle {
		if !m.Valid {
			continue
		}
		sd := stdDev(series[i-period+1:i+1], m.Float)
		b.Upper[i] = Some(m.Float + multiplier*sd)
		b.Lower[i] = Some(m.Float - multiplier*sd)
	}
	return b
}

func stdDev(window []float64, mean float64) float64 {
	var sq float64
	for _, v := range window {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(window)))
}
