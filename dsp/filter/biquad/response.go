package biquad

import (
	"math"
	"math/cmplx"
)

// MagnitudeDB returns the section's gain in dB at freqHz.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	z := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate) // z^-1 on the unit circle
	num := complex(c.B0, 0) + z*(complex(c.B1, 0)+z*complex(c.B2, 0))
	den := 1 + z*(complex(c.A1, 0)+z*complex(c.A2, 0))
	return 20 * math.Log10(cmplx.Abs(num)/cmplx.Abs(den))
}
