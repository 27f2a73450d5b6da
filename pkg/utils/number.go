package utils

import "math"

// RoundWithTwoDecimalPlace arredonda valores monetários para exibição
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ToPercent converte uma fração (0.055) em percentual (5.5)
func ToPercent(rate float64) float64 {
	return RoundWithTwoDecimalPlace(rate * 100)
}
