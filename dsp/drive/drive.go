// Package drive implements the stateless waveshaping stage placed between
// the oscillators and the voice filter.
package drive

import "github.com/cwbudde/algo-bass/dsp/core"

// Mode selects the saturation curve.
type Mode int

const (
	Soft Mode = iota
	Hard
	Tube
	Fuzz
)

// BypassThreshold is the amount below which Apply returns its input
// unchanged.
const BypassThreshold = 0.001

// String returns the mode's display name.
func (m Mode) String() string {
	switch m {
	case Soft:
		return "soft"
	case Hard:
		return "hard"
	case Tube:
		return "tube"
	case Fuzz:
		return "fuzz"
	default:
		return "unknown"
	}
}

// Gain returns the pre-shaper gain for a drive amount in [0, 1].
func Gain(amount float64) float64 {
	return 1 + amount*10
}

// Apply saturates x with the given amount and mode. Amounts below
// BypassThreshold return x bit-exact. Unknown modes use the fuzz curve.
func Apply(x, amount float64, mode Mode) float64 {
	if amount < BypassThreshold {
		return x
	}

	d := x * Gain(amount)
	switch mode {
	case Soft:
		return mathTanh(d)
	case Hard:
		return core.Clamp(d, -1, 1)
	case Tube:
		if d > 0 {
			return 1 - mathExp(-d)
		}
		return -1 + mathExp(d)
	default:
		c := core.Clamp(d, -1, 1)
		a := 1 - abs(c)
		shaped := 1 - a*a*a
		if c < 0 {
			return -shaped
		}
		return shaped
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
