package osc

import "math"

// Waveform selects the oscillator shape.
type Waveform int

const (
	Sine Waveform = iota
	Saw
	Square
	Triangle
)

// String returns the waveform's display name.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Sample evaluates waveform w at phase in [0, 1). Out-of-range selectors
// fall back to the triangle.
func Sample(phase float64, w Waveform) float64 {
	switch w {
	case Sine:
		return math.Sin(2 * math.Pi * phase)
	case Saw:
		return 2*phase - 1
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	default:
		return 4*math.Abs(phase-math.Floor(phase+0.5)) - 1
	}
}

// wrap keeps a phase accumulator inside [0, 1).
func wrap(phase float64) float64 {
	if phase >= 1 {
		phase -= math.Floor(phase)
	}
	return phase
}
