package effects

import (
	"fmt"

	"github.com/cwbudde/algo-bass/dsp/core"
)

const (
	reverbNumCombs     = 4
	reverbNumAllpasses = 2

	reverbDamp            = 0.3
	reverbAllpassFeedback = 0.5
	reverbBaseFeedback    = 0.7
	reverbSizeFeedback    = 0.28

	defaultReverbSize = 0.5
)

var (
	reverbCombSeconds    = [reverbNumCombs]float64{0.0297, 0.0371, 0.0411, 0.0437}
	reverbAllpassSeconds = [reverbNumAllpasses]float64{0.005, 0.0017}
)

// Reverb is a small Schroeder-style reverb: four damped feedback combs in
// parallel followed by two allpasses in series. Every buffer write and
// intermediate output is held within ±core.StateLimit.
type Reverb struct {
	sampleRate float64
	size       float64
	mix        float64

	combs   [reverbNumCombs]reverbComb
	allpass [reverbNumAllpasses]reverbAllpass
}

type reverbComb struct {
	filterStore float64
	buffer      []float64
	index       int
}

func (c *reverbComb) process(input, feedback float64) float64 {
	delayed := core.ClampState(c.buffer[c.index])
	c.filterStore = core.FlushDenormals(core.ClampState(delayed*(1-reverbDamp) + c.filterStore*reverbDamp))
	c.buffer[c.index] = core.FlushDenormals(core.ClampState(input + c.filterStore*feedback))
	c.index++
	if c.index >= len(c.buffer) {
		c.index = 0
	}
	return delayed
}

func (c *reverbComb) reset() {
	core.Zero(c.buffer)
	c.index = 0
	c.filterStore = 0
}

type reverbAllpass struct {
	buffer []float64
	index  int
}

func (a *reverbAllpass) process(input float64) float64 {
	delayed := core.ClampState(a.buffer[a.index])
	output := input + delayed*reverbAllpassFeedback
	a.buffer[a.index] = core.ClampState(input - delayed*reverbAllpassFeedback)
	a.index++
	if a.index >= len(a.buffer) {
		a.index = 0
	}
	return output
}

func (a *reverbAllpass) reset() {
	core.Zero(a.buffer)
	a.index = 0
}

// NewReverb constructs a reverb whose buffer lengths are derived from
// sampleRate. The mix starts at zero.
func NewReverb(sampleRate float64) (*Reverb, error) {
	r := &Reverb{size: defaultReverbSize}
	if err := r.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return r, nil
}

// SetSampleRate reallocates all buffers for sampleRate. State is cleared.
func (r *Reverb) SetSampleRate(sampleRate float64) error {
	if !validSampleRate(sampleRate) {
		return fmt.Errorf("reverb sample rate must be > 0 and finite: %f", sampleRate)
	}
	r.sampleRate = sampleRate
	for i := range r.combs {
		r.combs[i] = reverbComb{buffer: make([]float64, bufferLength(reverbCombSeconds[i], sampleRate))}
	}
	for i := range r.allpass {
		r.allpass[i] = reverbAllpass{buffer: make([]float64, bufferLength(reverbAllpassSeconds[i], sampleRate))}
	}
	return nil
}

func bufferLength(seconds, sampleRate float64) int {
	n := int(seconds * sampleRate)
	if n < 1 {
		return 1
	}
	return n
}

// SetSize sets the room size, clamped to [0, 1]. Comb feedback is
// 0.7 + 0.28*size.
func (r *Reverb) SetSize(size float64) {
	r.size = core.Clamp(size, 0, 1)
}

// SetMix sets the wet amount, clamped to [0, 1]. At zero the reverb is
// bypassed and its state is left untouched.
func (r *Reverb) SetMix(mix float64) {
	r.mix = core.Clamp(mix, 0, 1)
}

// Size returns the room size.
func (r *Reverb) Size() float64 { return r.size }

// Mix returns the wet amount.
func (r *Reverb) Mix() float64 { return r.mix }

// Reset clears all delay and filter state.
func (r *Reverb) Reset() {
	for i := range r.combs {
		r.combs[i].reset()
	}
	for i := range r.allpass {
		r.allpass[i].reset()
	}
}

// ProcessSample returns the wet reverb signal for one input sample.
func (r *Reverb) ProcessSample(input float64) float64 {
	x := core.ClampState(input)
	feedback := reverbBaseFeedback + r.size*reverbSizeFeedback

	var acc float64
	for i := range r.combs {
		acc += r.combs[i].process(x, feedback)
	}
	acc *= 1.0 / reverbNumCombs
	for i := range r.allpass {
		acc = r.allpass[i].process(acc)
	}
	return core.ClampState(acc)
}

// ProcessStereo feeds the mean of both channels into the reverb and blends
// the wet signal into each channel.
func (r *Reverb) ProcessStereo(left, right float64) (float64, float64) {
	if r.mix <= 0 {
		return left, right
	}
	wet := r.ProcessSample((left+right)*0.5) * r.mix
	dry := 1 - r.mix
	return left*dry + wet, right*dry + wet
}
