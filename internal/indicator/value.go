// Package indicator - технические индикаторы над ценовым рядом.
// Чистые функции без состояния и ввода-вывода; округление - забота отображения.
package indicator

import "strconv"

// Value - значение индикатора в точке ряда. Valid=false означает, что окно
// ещё не заполнено; в JSON такое значение пишется как null.
type Value struct {
	Float float64
	Valid bool
}

// Some - определённое значение.
func Some(v float64) Value { return Value{Float: v, Valid: true} }

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v.Float, 'g', -1, 64)), nil
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Value{}
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*v = Some(f)
	return nil
}
