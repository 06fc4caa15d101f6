package biquad

import "github.com/cwbudde/algo-bass/dsp/core"

// Coefficients of one second-order section with a0 normalized to 1:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Section runs Coefficients in transposed direct form II. Its output and
// both registers stay within ±core.StateLimit.
type Section struct {
	Coefficients

	z1, z2 float64
}

// Process filters one sample.
func (s *Section) Process(x float64) float64 {
	y := core.ClampState(s.B0*x + s.z1)
	s.z1 = core.ClampState(s.B1*x - s.A1*y + s.z2)
	s.z2 = core.ClampState(s.B2*x - s.A2*y)
	return y
}

// State returns the two delay registers.
func (s *Section) State() (z1, z2 float64) { return s.z1, s.z2 }

// Reset zeroes the registers.
func (s *Section) Reset() { s.z1, s.z2 = 0, 0 }
