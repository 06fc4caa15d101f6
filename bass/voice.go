package bass

import (
	"github.com/cwbudde/algo-bass/dsp/core"
	"github.com/cwbudde/algo-bass/dsp/drive"
	"github.com/cwbudde/algo-bass/dsp/envelope"
	"github.com/cwbudde/algo-bass/dsp/filter/svf"
	"github.com/cwbudde/algo-bass/dsp/lfo"
	"github.com/cwbudde/algo-bass/dsp/osc"
)

const (
	// Transpose is applied to every incoming note.
	Transpose = -12

	// EnvCutoffRange is the cutoff offset in Hz for a full envelope at
	// filter envelope amount 1.
	EnvCutoffRange = 5000.0

	// glideSnap is the distance in semitones below which portamento lands on
	// the target.
	glideSnap = 0.01

	// minPortamento is the glide time in seconds below which pitch jumps.
	minPortamento = 0.001
)

// voiceSettings is the per-block configuration shared by all voices.
type voiceSettings struct {
	sampleRate float64
	dt         float64

	unison    osc.UnisonConfig
	osc2Mix   float64
	subVolume float64

	envelope envelope.Settings

	cutoff    float64
	resonance float64
	filterEnv float64
	tap       svf.Tap
	cascade   bool

	drive     float64
	driveMode drive.Mode

	// glideStep is the portamento rate in semitones per sample; zero jumps.
	glideStep float64
}

// Voice is one note's synthesis state: unison and sub phases, amplitude
// envelope, two filter stages and the glide pitch.
type Voice struct {
	active   bool
	note     uint8
	velocity float64

	osc    osc.Bank
	env    envelope.ADSR
	filter svf.Filter

	target  float64
	current float64
}

// VoiceState is a read-only view of a voice.
type VoiceState struct {
	Active      bool
	Note        uint8
	Velocity    float64
	Stage       envelope.Stage
	Envelope    float64
	Pitch       float64 // current glide pitch in semitones
	TargetPitch float64
}

func (v *Voice) state() VoiceState {
	return VoiceState{
		Active:      v.active,
		Note:        v.note,
		Velocity:    v.velocity,
		Stage:       v.env.Stage(),
		Envelope:    v.env.Value(),
		Pitch:       v.current,
		TargetPitch: v.target,
	}
}

// start reinitializes the voice for note, gliding from pitch from.
func (v *Voice) start(note uint8, velocity, from float64) {
	*v = Voice{
		active:   true,
		note:     note,
		velocity: velocity,
		target:   float64(note) + Transpose,
		current:  from,
	}
	v.env.TriggerFrom(0)
}

func (v *Voice) release() {
	v.env.Release()
}

func (v *Voice) glide(step float64) {
	if step <= 0 {
		v.current = v.target
		return
	}
	diff := v.target - v.current
	switch {
	case diff > glideSnap:
		v.current += min(step, diff)
	case diff < -glideSnap:
		v.current -= min(step, -diff)
	default:
		v.current = v.target
	}
}

// render advances the voice one sample and returns its contribution. A voice
// whose release completes is deactivated and contributes nothing.
func (v *Voice) render(s *voiceSettings, mod lfo.Modulation) float64 {
	v.glide(s.glideStep)

	env := v.env.Next(s.envelope, s.dt)
	if !v.env.Active() {
		v.active = false
		return 0
	}

	freq := core.NoteToFrequency(v.current) * mod.PitchRatio
	o1, o2, sub := v.osc.Next(&s.unison, freq, s.dt)
	x := o1*(1-s.osc2Mix) + o2*s.osc2Mix + sub*s.subVolume
	x = drive.Apply(x, s.drive, s.driveMode)

	cutoff := s.cutoff + env*s.filterEnv*EnvCutoffRange + mod.CutoffOffset
	c := svf.Design(cutoff, s.resonance, s.sampleRate)
	y := v.filter.Process(x, c, s.tap, s.cascade)

	return y * env * v.velocity * mod.AmpGain
}
