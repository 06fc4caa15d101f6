//go:build fastmath

package drive

import (
	"github.com/meko-christian/algo-approx"
)

// tanhLimit keeps the exponential inside its accurate range; tanh is
// already 1 to double precision well before it.
const tanhLimit = 20.0

// mathTanh computes tanh via the fast exponential: (e^2x - 1) / (e^2x + 1).
func mathTanh(x float64) float64 {
	if x > tanhLimit {
		return 1
	}
	if x < -tanhLimit {
		return -1
	}
	e := approx.FastExp(2 * x)
	return (e - 1) / (e + 1)
}

// mathExp computes e^x using fast approximation.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
