package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para centavos (meio para cima)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Floor(f*100+0.5) / 100
}

// ToCents converte um valor monetário em centavos inteiros
func ToCents(f float64) int64 {
	return int64(math.Floor(f*100 + 0.5))
}

// FromCents converte centavos inteiros em valor monetário
func FromCents(c int64) float64 {
	return float64(c) / 100
}
