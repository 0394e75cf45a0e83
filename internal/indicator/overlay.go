package indicator

import (
	"fmt"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
)

// Params - параметры индикаторов графика.
type Params struct {
	MAPeriod     int
	BBPeriod     int
	BBMultiplier float64
}

// DefaultParams - MA(20), BB(21, 2).
func DefaultParams() Params {
	return Params{MAPeriod: 20, BBPeriod: 21, BBMultiplier: 2}
}

// Role - как оверлей рисуется на графике.
type Role string

const (
	RoleMovingAverage Role = "moving_average"
	RoleBandUpper     Role = "band_upper"
	RoleBandLower     Role = "band_lower"
)

// Overlay - производный ряд поверх ценового. Ценовой ряд он никогда не заменяет.
type Overlay struct {
	Label string  `json:"label"`
	Role  Role    `json:"role"`
	Data  []Value `json:"data"`
}

// Overlays - набор слоёв для включённых индикаторов, в порядке MA, BB upper, BB lower.
func Overlays(prices []float64, toggles domain.IndicatorToggleSet, p Params) []Overlay {
	var out []Overlay
	if toggles.MovingAverage {
		out = append(out, Overlay{
			Label: fmt.Sprintf("MA (%d)", p.MAPeriod),
			Role:  RoleMovingAverage,
			Data:  MovingAverage(prices, p.MAPeriod),
		})
	}
	if toggles.BollingerBands {
		bb := BollingerBands(prices, p.BBPeriod, p.BBMultiplier)
		out = append(out,
			Overlay{Label: "BB Upper", Role: RoleBandUpper, Data: bb.Upper},
			Overlay{Label: "BB Lower", Role: RoleBandLower, Data: bb.Lower},
		)
	}
	return out
}
