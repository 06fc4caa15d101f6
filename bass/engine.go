package bass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bass/dsp/core"
	"github.com/cwbudde/algo-bass/dsp/drive"
	"github.com/cwbudde/algo-bass/dsp/effects"
	"github.com/cwbudde/algo-bass/dsp/envelope"
	"github.com/cwbudde/algo-bass/dsp/filter/svf"
	"github.com/cwbudde/algo-bass/dsp/lfo"
	"github.com/cwbudde/algo-bass/dsp/osc"
)

// spreadCents is the unison spread in cents at spread parameter 1.
const spreadCents = 50.0

// Engine is the polyphonic bass synthesizer. It is not safe for concurrent
// use; hosts call Process from a single audio goroutine.
type Engine struct {
	sampleRate float64
	blockSize  int

	pool  Pool
	arp   Arpeggiator
	arpOn bool
	rng   XorShift32
	lfo   lfo.LFO
	fx    *effects.Chain

	// clamped copy of the block's parameter snapshot
	params Params

	// per-block state derived from the parameter snapshot
	voice    voiceSettings
	lfoRate  float64
	lfoDepth float64
	lfoWave  osc.Waveform
	lfoDest  lfo.Target
	arpMode  ArpMode
	arpOct   int
	interval float64

	scratchL []float64
	scratchR []float64
}

// New returns an engine configured by opts. Defaults are 44.1 kHz, blocks
// of 1024 frames for ProcessInterleaved and core.DefaultSeed.
func New(opts ...core.ProcessorOption) (*Engine, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	e := &Engine{
		blockSize: cfg.BlockSize,
		rng:       NewXorShift32(cfg.Seed),
	}
	if err := e.Initialize(cfg.SampleRate); err != nil {
		return nil, err
	}
	return e, nil
}

// Initialize prepares the engine for sampleRate: the effect buffers are
// reallocated and all state is cleared.
func (e *Engine) Initialize(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("bass engine sample rate must be > 0 and finite: %f", sampleRate)
	}
	if e.fx == nil {
		fx, err := effects.NewChain(sampleRate)
		if err != nil {
			return fmt.Errorf("bass engine: %w", err)
		}
		e.fx = fx
	} else if err := e.fx.SetSampleRate(sampleRate); err != nil {
		return fmt.Errorf("bass engine: %w", err)
	}
	e.sampleRate = sampleRate
	if cap(e.scratchL) < e.blockSize {
		e.scratchL = make([]float64, e.blockSize)
		e.scratchR = make([]float64, e.blockSize)
	}
	e.Reset()
	return nil
}

// Reset silences all voices and clears the LFO, glide memory, arpeggiator
// and every effect buffer. Nothing is reallocated.
func (e *Engine) Reset() {
	e.pool.Reset()
	e.arp.Reset()
	e.arpOn = false
	e.lfo.Reset()
	e.fx.Reset()
}

// SampleRate returns the current sample rate.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// ActiveVoices returns the number of sounding voices.
func (e *Engine) ActiveVoices() int { return e.pool.ActiveCount() }

// VoiceState returns a view of voice slot i in [0, MaxVoices).
func (e *Engine) VoiceState(i int) VoiceState { return e.pool.Voice(i) }

// Arpeggiator returns the engine's held-note stack for inspection.
func (e *Engine) Arpeggiator() *Arpeggiator { return &e.arp }

// Process applies events, then renders min(len(left), len(right)) frames
// using the parameter snapshot p. Output samples are within [-1, 1].
func (e *Engine) Process(left, right []float64, events []Event, tr Transport, p Params) {
	e.beginBlock(events, tr, p)

	n := min(len(left), len(right))
	s := &e.voice
	for i := range n {
		if e.arpOn {
			e.arp.Tick(s.dt, e.interval, e.arpMode, e.arpOct, &e.rng, &e.pool)
		}

		mod := lfo.Route(e.lfo.Next(e.lfoRate, e.sampleRate, e.lfoWave), e.lfoDepth, e.lfoDest)
		left[i], right[i] = e.fx.Process(e.pool.render(s, mod))
	}
}

// ProcessInterleaved renders len(dst)/2 stereo frames into dst as
// interleaved float32, in chunks of the configured block size. Events apply
// before the first frame.
func (e *Engine) ProcessInterleaved(dst []float32, events []Event, tr Transport, p Params) {
	frames := len(dst) / 2
	for off := 0; off < frames; off += e.blockSize {
		n := min(e.blockSize, frames-off)
		l, r := e.scratchL[:n], e.scratchR[:n]
		e.Process(l, r, events, tr, p)
		events = nil
		core.Interleave(dst[2*off:], l, r)
	}
}

func (e *Engine) beginBlock(events []Event, tr Transport, snapshot Params) {
	e.params = snapshot
	e.params.clamp()
	p := &e.params

	arpOn := p.ArpOn
	if e.arpOn && !arpOn {
		e.arp.Stop(&e.pool)
	}
	e.arpOn = arpOn

	for _, ev := range events {
		e.dispatch(ev)
	}

	s := &e.voice
	s.sampleRate = e.sampleRate
	s.dt = 1 / e.sampleRate
	s.unison.Configure(osc.Waveform(p.Osc1Wave), osc.Waveform(p.Osc2Wave), p.Unison,
		p.Osc1Detune, p.UnisonSpread*spreadCents)
	s.osc2Mix = p.Osc2Mix
	s.subVolume = p.SubVolume
	s.envelope = envelope.Settings{
		Attack:  p.Attack,
		Decay:   p.Decay,
		Sustain: p.Sustain,
		Release: p.Release,
	}
	s.cutoff = p.Cutoff
	s.resonance = p.Resonance
	s.filterEnv = p.FilterEnv
	s.tap = svf.Tap(p.FilterType)
	s.cascade = p.FilterSlope == 1
	s.drive = p.Drive
	s.driveMode = drive.Mode(p.DriveType)
	s.glideStep = 0
	if p.Portamento > minPortamento {
		s.glideStep = 1 / (p.Portamento * e.sampleRate)
	}

	e.lfoRate = p.LFORate
	e.lfoDepth = p.LFODepth
	e.lfoWave = osc.Waveform(p.LFOWave)
	e.lfoDest = lfo.Target(p.LFOTarget)

	e.arpMode = ArpMode(p.ArpMode)
	e.arpOct = p.ArpOctaves + 1
	e.interval = ArpInterval(p.ArpRate, tr.BPM())

	e.fx.Configure(effects.ChainSettings{
		LowBoost:      p.LowBoost,
		DelayTime:     p.DelayTime,
		DelayFeedback: p.DelayFeedback,
		DelayMix:      p.DelayMix,
		ReverbSize:    p.ReverbSize,
		ReverbMix:     p.ReverbMix,
		Gain:          p.MasterGain,
	})
}

func (e *Engine) dispatch(ev Event) {
	if ev.Note > MaxNote {
		return
	}
	switch ev.Kind {
	case NoteOn:
		vel := core.Clamp(ev.Velocity, 0, 1)
		if math.IsNaN(vel) {
			vel = 0
		}
		if e.arpOn {
			e.arp.Add(ev.Note, vel, &e.pool)
		} else {
			e.pool.NoteOn(ev.Note, vel)
		}
	case NoteOff:
		if e.arpOn {
			e.arp.Remove(ev.Note, &e.pool)
		} else {
			e.pool.NoteOff(ev.Note)
		}
	}
}
