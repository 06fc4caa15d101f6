// Package svf implements the per-voice state-variable filter: a two
// integrator topology with simultaneous low-pass, band-pass and high-pass
// taps, optionally cascaded into a second identical stage for a 24 dB slope.
//
// Every integrator is held within ±core.StateLimit before and after each
// update so fast cutoff and resonance automation cannot run the state away.
package svf

import (
	"math"

	"github.com/cwbudde/algo-bass/dsp/core"
)

const (
	// MinCutoff and MaxCutoff bound the modulated cutoff in Hz.
	MinCutoff = 20.0
	MaxCutoff = 20000.0

	// maxResonance keeps the damping term away from self-oscillation.
	maxResonance = 0.98

	// nyquistGuard caps the cutoff relative to the sample rate so the
	// prewarped coefficient stays positive at low sample rates.
	nyquistGuard = 0.49
)

// Tap selects which filter output a stage returns.
type Tap int

const (
	Lowpass Tap = iota
	Highpass
	Bandpass
)

// String returns the tap's display name.
func (t Tap) String() string {
	switch t {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	default:
		return "unknown"
	}
}

// Coefficients are the per-sample filter coefficients.
type Coefficients struct {
	G float64 // prewarped frequency, at most 1
	K float64 // damping, 2 - 2*resonance
}

// Design computes coefficients for cutoff (Hz) and resonance in [0, 1).
func Design(cutoff, resonance, sampleRate float64) Coefficients {
	hi := MaxCutoff
	if lim := nyquistGuard * sampleRate; lim < hi {
		hi = lim
	}
	cutoff = core.Clamp(cutoff, MinCutoff, hi)
	resonance = core.Clamp(resonance, 0, maxResonance)

	g := math.Tan(math.Pi * cutoff / sampleRate)
	if g > 1 {
		g = 1
	}
	return Coefficients{G: g, K: 2 - 2*resonance}
}

// Stage is one 12 dB state-variable section.
type Stage struct {
	lp, bp float64
}

// Process filters x and returns the low-pass, high-pass and band-pass taps.
func (s *Stage) Process(x float64, c Coefficients) (lp, hp, bp float64) {
	s.lp = core.ClampState(s.lp)
	s.bp = core.ClampState(s.bp)

	g, k := c.G, c.K
	hp = (x - s.lp - k*s.bp) / (1 + k*g + g*g)
	bp = g*hp + s.bp
	lp = g*bp + s.lp

	s.bp = core.ClampState(bp + g*hp)
	s.lp = core.ClampState(lp + g*bp)
	return lp, hp, bp
}

// State returns the low-pass and band-pass integrators.
func (s *Stage) State() (lp, bp float64) { return s.lp, s.bp }

// Reset clears both integrators.
func (s *Stage) Reset() {
	s.lp, s.bp = 0, 0
}

// Filter is a voice filter: one stage for 12 dB, two in series for 24 dB.
type Filter struct {
	stages [2]Stage
}

// Process runs x through the first stage and, when cascade is set, feeds the
// selected tap through the second stage. The result is clamped to the state
// limit.
func (f *Filter) Process(x float64, c Coefficients, tap Tap, cascade bool) float64 {
	out := pick(tap)(f.stages[0].Process(x, c))
	if cascade {
		out = pick(tap)(f.stages[1].Process(out, c))
	}
	return core.ClampState(out)
}

// Stage returns a copy of stage i (0 or 1).
func (f *Filter) Stage(i int) Stage { return f.stages[i] }

// Reset clears both stages.
func (f *Filter) Reset() {
	f.stages[0].Reset()
	f.stages[1].Reset()
}

func pick(tap Tap) func(lp, hp, bp float64) float64 {
	switch tap {
	case Highpass:
		return highpassTap
	case Bandpass:
		return bandpassTap
	default:
		return lowpassTap
	}
}

func lowpassTap(lp, _, _ float64) float64  { return lp }
func highpassTap(_, hp, _ float64) float64 { return hp }
func bandpassTap(_, _, bp float64) float64 { return bp }
