package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CentsToUnits converte centavos para a unidade monetária usada por APIs que trabalham com decimais
func CentsToUnits(cents int64) float64 {
	return float64(cents) / 100
}

// UnitsToCents converte valores decimais da plataforma para centavos
func UnitsToCents(units float64) int64 {
	return int64(math.Round(units * 100))
}

// MicrosToCents converte valores em micros (1/1.000.000) para centavos
func MicrosToCents(micros int64) int64 {
	return int64(math.Round(float64(micros) / 10000))
}

func CentsToMicros(cents int64) int64 {
	return cents * 10000
}
