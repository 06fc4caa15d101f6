// Package lfo implements the synth's single free-running low-frequency
// oscillator and the router that maps its output onto one modulation target.
package lfo

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bass/dsp/osc"
)

// Target selects what the LFO modulates.
type Target int

const (
	Pitch Target = iota
	Filter
	Amplitude
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case Pitch:
		return "pitch"
	case Filter:
		return "filter"
	case Amplitude:
		return "amplitude"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

const (
	// pitchRange is the pitch modulation span in octaves at full depth.
	pitchRange = 0.5
	// CutoffRange is the cutoff offset in Hz at full depth.
	CutoffRange = 2000.0
	ampRange    = 0.5
)

// LFO is a phase accumulator in [0, 1) that reuses the oscillator waveforms.
type LFO struct {
	phase float64
}

// Next returns the waveform at the current phase and then advances the phase
// by rate/sampleRate.
func (l *LFO) Next(rate, sampleRate float64, w osc.Waveform) float64 {
	v := osc.Sample(l.phase, w)
	l.phase += rate / sampleRate
	if l.phase >= 1 {
		l.phase -= math.Floor(l.phase)
	}
	return v
}

// Phase returns the current phase.
func (l *LFO) Phase() float64 { return l.phase }

// Reset rewinds the phase to 0.
func (l *LFO) Reset() { l.phase = 0 }

// Modulation holds the per-sample modulation values for all targets. Targets
// not selected carry their neutral value.
type Modulation struct {
	PitchRatio   float64 // frequency multiplier
	CutoffOffset float64 // Hz added to the filter cutoff
	AmpGain      float64 // output multiplier
}

// Neutral is the modulation applied when the LFO is routed elsewhere.
var Neutral = Modulation{PitchRatio: 1, AmpGain: 1}

// Route maps an LFO sample in [-1, 1] scaled by depth onto target.
func Route(value, depth float64, target Target) Modulation {
	m := Neutral
	switch target {
	case Pitch:
		m.PitchRatio = math.Exp2(value * depth * pitchRange)
	case Filter:
		m.CutoffOffset = value * depth * CutoffRange
	case Amplitude:
		m.AmpGain = 1 - depth*ampRange*(1-value)
	}
	return m
}
