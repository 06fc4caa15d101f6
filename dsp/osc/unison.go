package osc

import "github.com/cwbudde/algo-bass/dsp/core"

const (
	// MaxUnison is the number of phase slots per bank.
	MaxUnison = 8

	// osc2PhaseOffset is the fixed phase lead of oscillator 2 over oscillator 1.
	osc2PhaseOffset = 0.3
)

// DetuneOffset returns the cents offset of unison slot i out of count,
// spread evenly over [-spread, +spread]. A single slot sits at 0.
func DetuneOffset(i, count int, spread float64) float64 {
	if count <= 1 {
		return 0
	}
	return (float64(i)/float64(count-1) - 0.5) * 2 * spread
}

// UnisonConfig is the per-block oscillator setup shared by every voice.
// Ratios are precomputed so the per-sample path only multiplies.
type UnisonConfig struct {
	Wave1, Wave2 Waveform
	Count        int
	Ratios       [MaxUnison]float64
}

// Configure fills the config for count slots (clamped to [1, MaxUnison]),
// oscillator 1 detune and unison spread, both in cents.
//
// Oscillator 2 follows oscillator 1's slot phases at a fixed offset, so it
// has no detune of its own.
func (c *UnisonConfig) Configure(wave1, wave2 Waveform, count int, detune, spread float64) {
	if count < 1 {
		count = 1
	}
	if count > MaxUnison {
		count = MaxUnison
	}
	c.Wave1 = wave1
	c.Wave2 = wave2
	c.Count = count
	for i := 0; i < MaxUnison; i++ {
		if i < count {
			c.Ratios[i] = core.CentsToRatio(detune + DetuneOffset(i, count, spread))
		} else {
			c.Ratios[i] = 1
		}
	}
}

// Bank holds one voice's unison and sub-oscillator phases.
type Bank struct {
	phases [MaxUnison]float64
	sub    float64
}

// Reset zeroes every phase.
func (b *Bank) Reset() {
	*b = Bank{}
}

// Phase returns the phase of unison slot i.
func (b *Bank) Phase(i int) float64 { return b.phases[i] }

// SubPhase returns the sub-oscillator phase.
func (b *Bank) SubPhase() float64 { return b.sub }

// Next advances the bank by one sample at base frequency freq (already
// pitch-modulated) and returns the averaged oscillator 1 and 2 outputs and
// the sub sine one octave down.
func (b *Bank) Next(cfg *UnisonConfig, freq, invSampleRate float64) (osc1, osc2, sub float64) {
	step := freq * invSampleRate
	for i := 0; i < cfg.Count; i++ {
		b.phases[i] = wrap(b.phases[i] + step*cfg.Ratios[i])
		osc1 += Sample(b.phases[i], cfg.Wave1)
		osc2 += Sample(wrap(b.phases[i]+osc2PhaseOffset), cfg.Wave2)
	}
	n := float64(cfg.Count)
	osc1 /= n
	osc2 /= n

	b.sub = wrap(b.sub + 0.5*step)
	sub = Sample(b.sub, Sine)
	return osc1, osc2, sub
}
