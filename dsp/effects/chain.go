package effects

import "github.com/cwbudde/algo-bass/dsp/core"

// ChainSettings are the block-rate controls of the output chain. Values are
// clamped by the individual stages.
type ChainSettings struct {
	LowBoost      float64 // 0..1, 0..12 dB at 100 Hz
	DelayTime     float64 // seconds
	DelayFeedback float64
	DelayMix      float64
	ReverbSize    float64
	ReverbMix     float64
	Gain          float64 // master gain before the output clip
}

// Chain is the fixed output chain: low shelf, delay, reverb, DC blocker,
// master gain and a hard clip to [-1, 1].
type Chain struct {
	shelf  *LowShelf
	delay  *Delay
	reverb *Reverb
	dcL    DCBlocker
	dcR    DCBlocker
	gain   float64
}

// NewChain allocates all stages for sampleRate.
func NewChain(sampleRate float64) (*Chain, error) {
	shelf, err := NewLowShelf(sampleRate)
	if err != nil {
		return nil, err
	}
	delay, err := NewDelay(sampleRate)
	if err != nil {
		return nil, err
	}
	reverb, err := NewReverb(sampleRate)
	if err != nil {
		return nil, err
	}
	return &Chain{shelf: shelf, delay: delay, reverb: reverb, gain: 1}, nil
}

// SetSampleRate reallocates sample-rate dependent buffers and clears all
// state.
func (c *Chain) SetSampleRate(sampleRate float64) error {
	if err := c.shelf.SetSampleRate(sampleRate); err != nil {
		return err
	}
	if err := c.delay.SetSampleRate(sampleRate); err != nil {
		return err
	}
	if err := c.reverb.SetSampleRate(sampleRate); err != nil {
		return err
	}
	c.dcL.Reset()
	c.dcR.Reset()
	return nil
}

// Configure applies block-rate settings.
func (c *Chain) Configure(s ChainSettings) {
	c.shelf.SetBoost(s.LowBoost)
	c.delay.SetTime(s.DelayTime)
	c.delay.SetFeedback(s.DelayFeedback)
	c.delay.SetMix(s.DelayMix)
	c.reverb.SetSize(s.ReverbSize)
	c.reverb.SetMix(s.ReverbMix)
	c.gain = s.Gain
}

// Process runs one mono sample through the chain and returns the stereo
// output frame, each channel within [-1, 1].
func (c *Chain) Process(x float64) (float64, float64) {
	l, r := c.shelf.ProcessStereo(x, x)
	l, r = c.delay.ProcessStereo(l, r)
	l, r = c.reverb.ProcessStereo(l, r)
	l = c.dcL.ProcessSample(l)
	r = c.dcR.ProcessSample(r)
	return core.Clamp(l*c.gain, -1, 1), core.Clamp(r*c.gain, -1, 1)
}

// Reset clears all state without reallocating.
func (c *Chain) Reset() {
	c.shelf.Reset()
	c.delay.Reset()
	c.reverb.Reset()
	c.dcL.Reset()
	c.dcR.Reset()
}

// LowShelf returns the chain's shelf stage.
func (c *Chain) LowShelf() *LowShelf { return c.shelf }

// Delay returns the chain's delay stage.
func (c *Chain) Delay() *Delay { return c.delay }

// Reverb returns the chain's reverb stage.
func (c *Chain) Reverb() *Reverb { return c.reverb }
