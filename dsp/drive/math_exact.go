//go:build !fastmath

package drive

import "math"

func mathTanh(x float64) float64 {
	return math.Tanh(x)
}

func mathExp(x float64) float64 {
	return math.Exp(x)
}
