package utils

import "math"

// RoundHalfUp1 rounds a non-negative value to one decimal place with
// half-up semantics: 0.05 becomes 0.1, 2.333 becomes 2.3.
func RoundHalfUp1(value float64) float64 {
	return math.Floor(value*10+0.5) / 10
}
