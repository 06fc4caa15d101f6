package core

import "math"

// StateLimit bounds every recursive accumulator in the signal path
// (filter integrators, biquad delay state, delay and reverb buffers).
const StateLimit = 10.0

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampState limits x to [-StateLimit, StateLimit]. NaN collapses to zero so a
// single bad sample cannot poison a feedback path forever.
func ClampState(x float64) float64 {
	if x != x {
		return 0
	}

	return Clamp(x, -StateLimit, StateLimit)
}

// FlushDenormals returns 0 for |x| < 1e-30. Feedback paths apply it to
// stored samples so decaying tails reach exact silence.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// NoteToFrequency converts a (fractional) MIDI note number to Hz, A4 = 440 Hz.
func NoteToFrequency(note float64) float64 {
	return 440 * math.Exp2((note-69)/12)
}

// CentsToRatio converts a pitch offset in cents to a frequency ratio.
func CentsToRatio(cents float64) float64 {
	return math.Exp2(cents / 1200)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
