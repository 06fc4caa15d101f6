package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bass/dsp/core"
)

// MaxDelaySamples is the fixed capacity of the delay ring.
const MaxDelaySamples = 96000

const (
	defaultDelayTimeSeconds = 0.3
	defaultDelayFeedback    = 0.4
	maxDelayFeedback        = 0.95
)

// Delay is a feedback delay with a fixed-capacity ring. The left input feeds
// the line and the delayed signal is added to both channels.
type Delay struct {
	sampleRate   float64
	delaySeconds float64
	feedback     float64
	mix          float64

	delaySamples int
	buffer       []float64
	write        int
}

// NewDelay creates a delay with practical defaults and zero mix.
func NewDelay(sampleRate float64) (*Delay, error) {
	if !validSampleRate(sampleRate) {
		return nil, fmt.Errorf("delay sample rate must be > 0 and finite: %f", sampleRate)
	}
	d := &Delay{
		sampleRate: sampleRate,
		feedback:   defaultDelayFeedback,
		buffer:     make([]float64, MaxDelaySamples),
	}
	d.SetTime(defaultDelayTimeSeconds)
	return d, nil
}

// SetSampleRate updates the sample rate and clears the line.
func (d *Delay) SetSampleRate(sampleRate float64) error {
	if !validSampleRate(sampleRate) {
		return fmt.Errorf("delay sample rate must be > 0 and finite: %f", sampleRate)
	}
	d.sampleRate = sampleRate
	d.SetTime(d.delaySeconds)
	d.Reset()
	return nil
}

// SetTime sets the delay time in seconds. The resulting length is truncated
// to whole samples and held within [1, MaxDelaySamples-1].
func (d *Delay) SetTime(seconds float64) {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	d.delaySeconds = seconds
	n := seconds * d.sampleRate
	switch {
	case n >= MaxDelaySamples-1:
		d.delaySamples = MaxDelaySamples - 1
	case n < 1:
		d.delaySamples = 1
	default:
		d.delaySamples = int(n)
	}
}

// SetFeedback sets the feedback amount, clamped to [0, 0.95].
func (d *Delay) SetFeedback(feedback float64) {
	d.feedback = core.Clamp(feedback, 0, maxDelayFeedback)
}

// SetMix sets the wet amount, clamped to [0, 1]. At zero the delay is
// bypassed and its line is left untouched.
func (d *Delay) SetMix(mix float64) {
	d.mix = core.Clamp(mix, 0, 1)
}

// Reset clears the line and rewinds the write cursor.
func (d *Delay) Reset() {
	core.Zero(d.buffer)
	d.write = 0
}

// ProcessStereo processes one stereo frame.
func (d *Delay) ProcessStereo(left, right float64) (float64, float64) {
	if d.mix <= 0 {
		return left, right
	}

	read := d.write - d.delaySamples
	if read < 0 {
		read += len(d.buffer)
	}
	delayed := d.buffer[read]

	d.buffer[d.write] = core.FlushDenormals(core.ClampState(left + delayed*d.feedback))
	d.write++
	if d.write >= len(d.buffer) {
		d.write = 0
	}

	wet := delayed * d.mix
	return left + wet, right + wet
}

// SampleRate returns sample rate in Hz.
func (d *Delay) SampleRate() float64 { return d.sampleRate }

// Time returns the requested delay time in seconds.
func (d *Delay) Time() float64 { return d.delaySeconds }

// DelaySamples returns the effective delay length in samples.
func (d *Delay) DelaySamples() int { return d.delaySamples }

// Feedback returns the feedback amount.
func (d *Delay) Feedback() float64 { return d.feedback }

// Mix returns the wet amount.
func (d *Delay) Mix() float64 { return d.mix }

func validSampleRate(sampleRate float64) bool {
	return sampleRate > 0 && !math.IsNaN(sampleRate) && !math.IsInf(sampleRate, 0)
}
