package effects

import (
	"fmt"

	"github.com/cwbudde/algo-bass/dsp/core"
	"github.com/cwbudde/algo-bass/dsp/filter/biquad"
	"github.com/cwbudde/algo-bass/dsp/filter/design"
)

const (
	// LowShelfFrequency is the shelf corner in Hz.
	LowShelfFrequency = 100.0
	// LowShelfMaxGainDB is the shelf gain at full boost.
	LowShelfMaxGainDB = 12.0
)

// LowShelf is a stereo low-shelf boost. Both channels share coefficients and
// keep separate clamped state.
type LowShelf struct {
	sampleRate float64
	boost      float64
	left       biquad.Section
	right      biquad.Section
}

// NewLowShelf creates a bypassed low shelf.
func NewLowShelf(sampleRate float64) (*LowShelf, error) {
	if !validSampleRate(sampleRate) {
		return nil, fmt.Errorf("low shelf sample rate must be > 0 and finite: %f", sampleRate)
	}
	return &LowShelf{sampleRate: sampleRate}, nil
}

// SetSampleRate updates the sample rate, redesigns the coefficients and
// clears state.
func (s *LowShelf) SetSampleRate(sampleRate float64) error {
	if !validSampleRate(sampleRate) {
		return fmt.Errorf("low shelf sample rate must be > 0 and finite: %f", sampleRate)
	}
	s.sampleRate = sampleRate
	s.design()
	s.Reset()
	return nil
}

// SetBoost sets the boost amount in [0, 1], mapping to 0..12 dB at 100 Hz.
// Coefficients are only redesigned when the amount changes. Zero bypasses
// the shelf.
func (s *LowShelf) SetBoost(boost float64) {
	boost = core.Clamp(boost, 0, 1)
	if boost == s.boost {
		return
	}
	s.boost = boost
	s.design()
}

// Boost returns the boost amount.
func (s *LowShelf) Boost() float64 { return s.boost }

// Coefficients returns the current shelf coefficients.
func (s *LowShelf) Coefficients() biquad.Coefficients { return s.left.Coefficients }

// ResponseDB returns the shelf's gain in dB at freqHz; 0 when bypassed.
func (s *LowShelf) ResponseDB(freqHz float64) float64 {
	if s.boost <= 0 {
		return 0
	}
	return s.left.MagnitudeDB(freqHz, s.sampleRate)
}

func (s *LowShelf) design() {
	if s.boost <= 0 {
		return
	}
	c := design.LowShelf(LowShelfFrequency, s.boost*LowShelfMaxGainDB, design.ShelfQ, s.sampleRate)
	s.left.Coefficients = c
	s.right.Coefficients = c
}

// ProcessStereo filters one stereo frame.
func (s *LowShelf) ProcessStereo(left, right float64) (float64, float64) {
	if s.boost <= 0 {
		return left, right
	}
	return s.left.Process(left), s.right.Process(right)
}

// Reset clears both channels' state.
func (s *LowShelf) Reset() {
	s.left.Reset()
	s.right.Reset()
}
