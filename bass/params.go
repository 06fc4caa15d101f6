package bass

import (
	"math"

	"github.com/cwbudde/algo-bass/dsp/core"
)

// Params is the engine's parameter snapshot. The engine reads it once per
// block and clamps every field to its declared range before use.
type Params struct {
	Osc1Wave     int     `json:"osc1_waveform"`
	Osc1Detune   float64 `json:"osc1_detune"`
	Osc2Wave     int     `json:"osc2_waveform"`
	Osc2Detune   float64 `json:"osc2_detune"`
	Osc2Mix      float64 `json:"osc2_mix"`
	SubVolume    float64 `json:"sub_volume"`
	Unison       int     `json:"unison_voices"`
	UnisonSpread float64 `json:"unison_spread"`

	Cutoff      float64 `json:"filter_cutoff"`
	Resonance   float64 `json:"filter_resonance"`
	FilterEnv   float64 `json:"filter_env_amount"`
	FilterType  int     `json:"filter_type"`
	FilterSlope int     `json:"filter_slope"`

	Drive     float64 `json:"drive"`
	DriveType int     `json:"drive_type"`
	LowBoost  float64 `json:"low_boost"`

	Attack  float64 `json:"amp_attack"`
	Decay   float64 `json:"amp_decay"`
	Sustain float64 `json:"amp_sustain"`
	Release float64 `json:"amp_release"`

	LFORate   float64 `json:"lfo_rate"`
	LFODepth  float64 `json:"lfo_depth"`
	LFOWave   int     `json:"lfo_waveform"`
	LFOTarget int     `json:"lfo_target"`

	Portamento float64 `json:"portamento"`

	ArpOn      bool `json:"arp_on"`
	ArpMode    int  `json:"arp_mode"`
	ArpRate    int  `json:"arp_rate"`
	ArpOctaves int  `json:"arp_octaves"`

	DelayMix      float64 `json:"delay_mix"`
	DelayTime     float64 `json:"delay_time"`
	DelayFeedback float64 `json:"delay_feedback"`
	ReverbMix     float64 `json:"reverb_mix"`
	ReverbSize    float64 `json:"reverb_size"`

	MasterGain float64 `json:"master_gain"`
}

// Scale is the mapping between a parameter's value and its normalized
// [0, 1] position.
type Scale int

const (
	ScaleLinear Scale = iota
	// ScaleLog maps ln(v/min)/ln(max/min). Min must be positive.
	ScaleLog
	// ScaleSqrt maps sqrt(v/max). Min must be zero.
	ScaleSqrt
)

// ParamSpec describes one parameter: identifier, display label, range,
// default, and how it is stored in Params.
type ParamSpec struct {
	ID      string
	Label   string
	Min     float64
	Max     float64
	Default float64
	Integer bool
	Scale   Scale

	get func(*Params) float64
	set func(*Params, float64)
}

// Clamp rounds integer parameters and clamps v to [Min, Max]. NaN maps to
// the default.
func (s ParamSpec) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.Default
	}
	if s.Integer {
		v = math.Round(v)
	}
	return core.Clamp(v, s.Min, s.Max)
}

// Get reads the parameter from p.
func (s ParamSpec) Get(p *Params) float64 { return s.get(p) }

// Set writes the clamped value into p and returns it.
func (s ParamSpec) Set(p *Params, v float64) float64 {
	v = s.Clamp(v)
	s.set(p, v)
	return v
}

func floatParam(id, label string, lo, hi, def float64, scale Scale, field func(*Params) *float64) ParamSpec {
	return ParamSpec{
		ID: id, Label: label, Min: lo, Max: hi, Default: def, Scale: scale,
		get: func(p *Params) float64 { return *field(p) },
		set: func(p *Params, v float64) { *field(p) = v },
	}
}

func intParam(id, label string, lo, hi, def int, field func(*Params) *int) ParamSpec {
	return ParamSpec{
		ID: id, Label: label, Min: float64(lo), Max: float64(hi), Default: float64(def), Integer: true,
		get: func(p *Params) float64 { return float64(*field(p)) },
		set: func(p *Params, v float64) { *field(p) = int(v) },
	}
}

func boolParam(id, label string, def bool, field func(*Params) *bool) ParamSpec {
	d := 0.0
	if def {
		d = 1
	}
	return ParamSpec{
		ID: id, Label: label, Min: 0, Max: 1, Default: d, Integer: true,
		get: func(p *Params) float64 {
			if *field(p) {
				return 1
			}
			return 0
		},
		set: func(p *Params, v float64) { *field(p) = v >= 0.5 },
	}
}

var paramSpecs = []ParamSpec{
	intParam("osc1_waveform", "Wave1", 0, 3, 1, func(p *Params) *int { return &p.Osc1Wave }),
	floatParam("osc1_detune", "Det1", -100, 100, 0, ScaleLinear, func(p *Params) *float64 { return &p.Osc1Detune }),
	intParam("osc2_waveform", "Wave2", 0, 3, 1, func(p *Params) *int { return &p.Osc2Wave }),
	floatParam("osc2_detune", "Det2", -100, 100, 7, ScaleLinear, func(p *Params) *float64 { return &p.Osc2Detune }),
	floatParam("osc2_mix", "Mix", 0, 1, 0.5, ScaleLinear, func(p *Params) *float64 { return &p.Osc2Mix }),
	floatParam("sub_volume", "SubVol", 0, 1, 0.5, ScaleLinear, func(p *Params) *float64 { return &p.SubVolume }),
	intParam("unison_voices", "Unison", 1, 8, 4, func(p *Params) *int { return &p.Unison }),
	floatParam("unison_spread", "Spread", 0, 1, 0.25, ScaleLinear, func(p *Params) *float64 { return &p.UnisonSpread }),

	floatParam("filter_cutoff", "Cutoff", 20, 20000, 600, ScaleLog, func(p *Params) *float64 { return &p.Cutoff }),
	floatParam("filter_resonance", "Reso", 0, 0.99, 0.4, ScaleLinear, func(p *Params) *float64 { return &p.Resonance }),
	floatParam("filter_env_amount", "FltEnv", -1, 1, 0.07, ScaleLinear, func(p *Params) *float64 { return &p.FilterEnv }),
	intParam("filter_type", "Type", 0, 2, 0, func(p *Params) *int { return &p.FilterType }),
	intParam("filter_slope", "Slope", 0, 1, 1, func(p *Params) *int { return &p.FilterSlope }),

	floatParam("drive", "Drive", 0, 1, 0.1, ScaleLinear, func(p *Params) *float64 { return &p.Drive }),
	intParam("drive_type", "DriveType", 0, 3, 2, func(p *Params) *int { return &p.DriveType }),
	floatParam("low_boost", "LowBoost", 0, 1, 0.5, ScaleLinear, func(p *Params) *float64 { return &p.LowBoost }),

	floatParam("amp_attack", "Atk", 0.001, 5, 0.005, ScaleLog, func(p *Params) *float64 { return &p.Attack }),
	floatParam("amp_decay", "Dec", 0.001, 5, 0.15, ScaleLog, func(p *Params) *float64 { return &p.Decay }),
	floatParam("amp_sustain", "Sus", 0, 1, 0.7, ScaleLinear, func(p *Params) *float64 { return &p.Sustain }),
	floatParam("amp_release", "Rel", 0.001, 10, 0.15, ScaleLog, func(p *Params) *float64 { return &p.Release }),

	floatParam("lfo_rate", "Rate", 0.01, 50, 2, ScaleLog, func(p *Params) *float64 { return &p.LFORate }),
	floatParam("lfo_depth", "Depth", 0, 1, 0, ScaleLinear, func(p *Params) *float64 { return &p.LFODepth }),
	intParam("lfo_waveform", "LfoWv", 0, 3, 0, func(p *Params) *int { return &p.LFOWave }),
	intParam("lfo_target", "Target", 0, 2, 1, func(p *Params) *int { return &p.LFOTarget }),

	floatParam("portamento", "Porta", 0, 1, 0.007, ScaleSqrt, func(p *Params) *float64 { return &p.Portamento }),

	boolParam("arp_on", "ArpOn", false, func(p *Params) *bool { return &p.ArpOn }),
	intParam("arp_mode", "ArpMode", 0, 3, 0, func(p *Params) *int { return &p.ArpMode }),
	intParam("arp_rate", "ArpRate", 0, 3, 1, func(p *Params) *int { return &p.ArpRate }),
	intParam("arp_octaves", "ArpOct", 0, 3, 0, func(p *Params) *int { return &p.ArpOctaves }),

	floatParam("delay_mix", "DlyMix", 0, 1, 0, ScaleLinear, func(p *Params) *float64 { return &p.DelayMix }),
	floatParam("delay_time", "DlyTime", 0.05, 1, 0.3, ScaleLinear, func(p *Params) *float64 { return &p.DelayTime }),
	floatParam("delay_feedback", "DlyFB", 0, 0.95, 0.4, ScaleLinear, func(p *Params) *float64 { return &p.DelayFeedback }),
	floatParam("reverb_mix", "RevMix", 0, 1, 0, ScaleLinear, func(p *Params) *float64 { return &p.ReverbMix }),
	floatParam("reverb_size", "RevSize", 0.1, 0.99, 0.5, ScaleLinear, func(p *Params) *float64 { return &p.ReverbSize }),

	floatParam("master_gain", "Vol", 0, 1, 0.6, ScaleLinear, func(p *Params) *float64 { return &p.MasterGain }),
}

// ParamSpecs returns the descriptors of every parameter in display order.
// The returned slice is shared and must not be modified.
func ParamSpecs() []ParamSpec { return paramSpecs }

// DefaultParams returns the init patch.
func DefaultParams() Params {
	var p Params
	for _, s := range paramSpecs {
		s.set(&p, s.Default)
	}
	return p
}

// Clamped returns p with every field clamped to its declared range and
// integer fields rounded.
func (p Params) Clamped() Params {
	p.clamp()
	return p
}

// clamp clamps p in place. p must not point at a stack value on the audio
// path: the accessors take it through an indirect call, which makes it
// escape.
func (p *Params) clamp() {
	for _, s := range paramSpecs {
		s.set(p, s.Clamp(s.get(p)))
	}
}
