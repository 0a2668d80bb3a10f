// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает x отрезком [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Progress — доля пути от start к end, обрезанная до [0, 1].
// Работает и когда end < start.
func Progress(value, start, end float64) float64 {
	if start == end {
		return 1
	}
	return Clamp((value-start)/(end-start), 0, 1)
}
