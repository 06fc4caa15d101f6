package preset

import "github.com/cwbudde/algo-bass/bass"

// factorySounds are the built-in patches after Init. Fields not listed here
// (arpeggiator, master gain) take the init patch values.
var factorySounds = []Preset{
	{Name: "Deep Sub", Category: Sub, Params: bass.Params{
		Osc1Wave: 0, Osc1Detune: 0, Osc2Wave: 0, Osc2Detune: 0, Osc2Mix: 0, SubVolume: 1, Unison: 1, UnisonSpread: 0,
		Cutoff: 150, Resonance: 0.2, FilterEnv: 0.025, FilterType: 0, FilterSlope: 1, Drive: 0.1, DriveType: 2, LowBoost: 0.8,
		Attack: 0.005, Decay: 0.1, Sustain: 0.9, Release: 0.2, Portamento: 0.005,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0, ReverbSize: 0.3,
	}},
	{Name: "808 Sub", Category: Sub, Params: bass.Params{
		Osc1Wave: 0, Osc1Detune: 0, Osc2Wave: 0, Osc2Detune: 0, Osc2Mix: 0, SubVolume: 0.8, Unison: 1, UnisonSpread: 0,
		Cutoff: 200, Resonance: 0.3, FilterEnv: 0.025, FilterType: 0, FilterSlope: 1, Drive: 0.05, DriveType: 2, LowBoost: 0.9,
		Attack: 0.001, Decay: 0.8, Sustain: 0, Release: 0.5, Portamento: 0.0052,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0, ReverbSize: 0.3,
	}},
	{Name: "Sine Sub", Category: Sub, Params: bass.Params{
		Osc1Wave: 0, Osc1Detune: 0, Osc2Wave: 0, Osc2Detune: 0, Osc2Mix: 0, SubVolume: 0.9, Unison: 1, UnisonSpread: 0,
		Cutoff: 120, Resonance: 0.1, FilterEnv: 0, FilterType: 0, FilterSlope: 1, Drive: 0.1, DriveType: 0, LowBoost: 1,
		Attack: 0.01, Decay: 0.1, Sustain: 1, Release: 0.2, Portamento: 0.005,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0, ReverbSize: 0.3,
	}},
	{Name: "Dark Sub", Category: Sub, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: 0, Osc2Wave: 0, Osc2Detune: 0, Osc2Mix: 0.2, SubVolume: 0.85, Unison: 1, UnisonSpread: 0,
		Cutoff: 180, Resonance: 0.4, FilterEnv: 0.025, FilterType: 0, FilterSlope: 1, Drive: 0.15, DriveType: 2, LowBoost: 0.7,
		Attack: 0.005, Decay: 0.2, Sustain: 0.8, Release: 0.25, Portamento: 0.007,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0, ReverbSize: 0.3,
	}},
	{Name: "Rumble Sub", Category: Sub, Params: bass.Params{
		Osc1Wave: 0, Osc1Detune: 0, Osc2Wave: 1, Osc2Detune: -5, Osc2Mix: 0.15, SubVolume: 0.9, Unison: 2, UnisonSpread: 0.1,
		Cutoff: 160, Resonance: 0.35, FilterEnv: 0.03, FilterType: 0, FilterSlope: 1, Drive: 0.1, DriveType: 2, LowBoost: 0.85,
		Attack: 0.01, Decay: 0.15, Sustain: 0.85, Release: 0.3, Portamento: 0.005,
		LFORate: 0.3, LFODepth: 0.1, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0, ReverbSize: 0.3,
	}},
	{Name: "Fat Saw", Category: Fat, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: -5, Osc2Wave: 1, Osc2Detune: 5, Osc2Mix: 0.5, SubVolume: 0.6, Unison: 6, UnisonSpread: 0.3,
		Cutoff: 500, Resonance: 0.5, FilterEnv: 0.025, FilterType: 0, FilterSlope: 1, Drive: 0.15, DriveType: 2, LowBoost: 0.6,
		Attack: 0.005, Decay: 0.2, Sustain: 0.7, Release: 0.15, Portamento: 0.007,
		LFORate: 0.5, LFODepth: 0.05, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0, ReverbSize: 0.3,
	}},
	{Name: "Massive", Category: Fat, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: -10, Osc2Wave: 2, Osc2Detune: 10, Osc2Mix: 0.6, SubVolume: 0.7, Unison: 8, UnisonSpread: 0.4,
		Cutoff: 600, Resonance: 0.45, FilterEnv: 0.08, FilterType: 0, FilterSlope: 1, Drive: 0.05, DriveType: 1, LowBoost: 0.7,
		Attack: 0.01, Decay: 0.15, Sustain: 0.75, Release: 0.2, Portamento: 0.005,
		LFORate: 0.3, LFODepth: 0.08, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.05, DelayTime: 0.25, DelayFeedback: 0.3, ReverbMix: 0.05, ReverbSize: 0.4,
	}},
	{Name: "Wall of Bass", Category: Fat, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: -15, Osc2Wave: 1, Osc2Detune: 15, Osc2Mix: 0.5, SubVolume: 0.5, Unison: 8, UnisonSpread: 0.5,
		Cutoff: 800, Resonance: 0.4, FilterEnv: 0.07, FilterType: 0, FilterSlope: 1, Drive: 0.18, DriveType: 2, LowBoost: 0.5,
		Attack: 0.02, Decay: 0.2, Sustain: 0.8, Release: 0.25, Portamento: 0.0052,
		LFORate: 0.2, LFODepth: 0.1, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.1, DelayTime: 0.3, DelayFeedback: 0.35, ReverbMix: 0.1, ReverbSize: 0.5,
	}},
	{Name: "Thick Square", Category: Fat, Params: bass.Params{
		Osc1Wave: 2, Osc1Detune: -7, Osc2Wave: 2, Osc2Detune: 7, Osc2Mix: 0.5, SubVolume: 0.55, Unison: 5, UnisonSpread: 0.25,
		Cutoff: 450, Resonance: 0.55, FilterEnv: 0.0252, FilterType: 0, FilterSlope: 1, Drive: 0.12, DriveType: 2, LowBoost: 0.55,
		Attack: 0.005, Decay: 0.18, Sustain: 0.65, Release: 0.15, Portamento: 0.007,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0, ReverbSize: 0.3,
	}},
	{Name: "Reese Monster", Category: Fat, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: -20, Osc2Wave: 1, Osc2Detune: 20, Osc2Mix: 0.5, SubVolume: 0.4, Unison: 4, UnisonSpread: 0.35,
		Cutoff: 700, Resonance: 0.35, FilterEnv: 0.07, FilterType: 0, FilterSlope: 1, Drive: 0.1, DriveType: 2, LowBoost: 0.45,
		Attack: 0.01, Decay: 0.2, Sustain: 0.75, Release: 0.2, Portamento: 0,
		LFORate: 0.15, LFODepth: 0.15, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0.05, ReverbSize: 0.4,
	}},
	{Name: "Phat Mono", Category: Fat, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: 0, Osc2Wave: 2, Osc2Detune: 0, Osc2Mix: 0.4, SubVolume: 0.65, Unison: 4, UnisonSpread: 0.2,
		Cutoff: 550, Resonance: 0.5, FilterEnv: 0.0252, FilterType: 0, FilterSlope: 1, Drive: 0.15, DriveType: 2, LowBoost: 0.6,
		Attack: 0.005, Decay: 0.15, Sustain: 0.6, Release: 0.12, Portamento: 0.005,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0, ReverbSize: 0.3,
	}},
	{Name: "303 Acid", Category: Acid, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: 0, Osc2Wave: 2, Osc2Detune: 0, Osc2Mix: 0.3, SubVolume: 0.3, Unison: 1, UnisonSpread: 0,
		Cutoff: 400, Resonance: 0.85, FilterEnv: 0.025, FilterType: 0, FilterSlope: 1, Drive: 0.05, DriveType: 3, LowBoost: 0.4,
		Attack: 0.001, Decay: 0.15, Sustain: 0, Release: 0.1, Portamento: 0.005,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.15, DelayTime: 0.2, DelayFeedback: 0.4, ReverbMix: 0.05, ReverbSize: 0.3,
	}},
	{Name: "Squelch", Category: Acid, Params: bass.Params{
		Osc1Wave: 2, Osc1Detune: 0, Osc2Wave: 1, Osc2Detune: 0, Osc2Mix: 0.2, SubVolume: 0.35, Unison: 1, UnisonSpread: 0,
		Cutoff: 350, Resonance: 0.9, FilterEnv: 0.0252, FilterType: 0, FilterSlope: 1, Drive: 0.05, DriveType: 3, LowBoost: 0.35,
		Attack: 0.001, Decay: 0.12, Sustain: 0, Release: 0.08, Portamento: 0.007,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.1, DelayTime: 0.18, DelayFeedback: 0.35, ReverbMix: 0, ReverbSize: 0.3,
	}},
	{Name: "Resonant Acid", Category: Acid, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: 0, Osc2Wave: 1, Osc2Detune: 5, Osc2Mix: 0.25, SubVolume: 0.4, Unison: 2, UnisonSpread: 0.1,
		Cutoff: 450, Resonance: 0.92, FilterEnv: 0.0258, FilterType: 0, FilterSlope: 1, Drive: 0.05, DriveType: 3, LowBoost: 0.45,
		Attack: 0.001, Decay: 0.18, Sustain: 0.1, Release: 0.12, Portamento: 0.0052,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.2, DelayTime: 0.22, DelayFeedback: 0.45, ReverbMix: 0.08, ReverbSize: 0.35,
	}},
	{Name: "Dirty Acid", Category: Acid, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: 0, Osc2Wave: 2, Osc2Detune: 0, Osc2Mix: 0.4, SubVolume: 0.3, Unison: 1, UnisonSpread: 0,
		Cutoff: 380, Resonance: 0.88, FilterEnv: 0.0252, FilterType: 0, FilterSlope: 1, Drive: 0.05, DriveType: 1, LowBoost: 0.4,
		Attack: 0.001, Decay: 0.14, Sustain: 0, Release: 0.1, Portamento: 0.008,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.12, DelayTime: 0.2, DelayFeedback: 0.38, ReverbMix: 0.03, ReverbSize: 0.3,
	}},
	{Name: "Acid Stab", Category: Acid, Params: bass.Params{
		Osc1Wave: 2, Osc1Detune: 0, Osc2Wave: 2, Osc2Detune: 7, Osc2Mix: 0.35, SubVolume: 0.25, Unison: 2, UnisonSpread: 0.15,
		Cutoff: 500, Resonance: 0.8, FilterEnv: 0.0257, FilterType: 0, FilterSlope: 1, Drive: 0.05, DriveType: 3, LowBoost: 0.35,
		Attack: 0.001, Decay: 0.1, Sustain: 0, Release: 0.08, Portamento: 0,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.18, DelayTime: 0.15, DelayFeedback: 0.5, ReverbMix: 0.1, ReverbSize: 0.4,
	}},
	{Name: "Dubstep Wobble", Category: Wobble, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: 0, Osc2Wave: 1, Osc2Detune: -7, Osc2Mix: 0.5, SubVolume: 0.5, Unison: 4, UnisonSpread: 0.2,
		Cutoff: 800, Resonance: 0.7, FilterEnv: 0, FilterType: 0, FilterSlope: 1, Drive: 0.15, DriveType: 2, LowBoost: 0.5,
		Attack: 0.01, Decay: 0.1, Sustain: 0.8, Release: 0.15, Portamento: 0,
		LFORate: 4, LFODepth: 0.8, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0.1, ReverbSize: 0.4,
	}},
	{Name: "Slow Wobble", Category: Wobble, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: -5, Osc2Wave: 2, Osc2Detune: 5, Osc2Mix: 0.45, SubVolume: 0.55, Unison: 3, UnisonSpread: 0.25,
		Cutoff: 700, Resonance: 0.65, FilterEnv: 0.025, FilterType: 0, FilterSlope: 1, Drive: 0.12, DriveType: 2, LowBoost: 0.55,
		Attack: 0.02, Decay: 0.15, Sustain: 0.75, Release: 0.2, Portamento: 0,
		LFORate: 1.5, LFODepth: 0.75, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.05, DelayTime: 0.35, DelayFeedback: 0.35, ReverbMix: 0.15, ReverbSize: 0.5,
	}},
	{Name: "Fast Wobble", Category: Wobble, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: 0, Osc2Wave: 1, Osc2Detune: 0, Osc2Mix: 0.4, SubVolume: 0.45, Unison: 4, UnisonSpread: 0.15,
		Cutoff: 900, Resonance: 0.75, FilterEnv: 0, FilterType: 0, FilterSlope: 1, Drive: 0.18, DriveType: 2, LowBoost: 0.45,
		Attack: 0.005, Decay: 0.1, Sustain: 0.85, Release: 0.12, Portamento: 0,
		LFORate: 12, LFODepth: 0.7, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0.08, ReverbSize: 0.35,
	}},
	{Name: "Square Wobble", Category: Wobble, Params: bass.Params{
		Osc1Wave: 2, Osc1Detune: 0, Osc2Wave: 1, Osc2Detune: 5, Osc2Mix: 0.5, SubVolume: 0.5, Unison: 3, UnisonSpread: 0.2,
		Cutoff: 750, Resonance: 0.68, FilterEnv: 0.025, FilterType: 0, FilterSlope: 1, Drive: 0.15, DriveType: 2, LowBoost: 0.5,
		Attack: 0.01, Decay: 0.12, Sustain: 0.8, Release: 0.15, Portamento: 0,
		LFORate: 6, LFODepth: 0.85, LFOWave: 2, LFOTarget: 1,
		DelayMix: 0.05, DelayTime: 0.28, DelayFeedback: 0.32, ReverbMix: 0.1, ReverbSize: 0.4,
	}},
	{Name: "Morphing Wobble", Category: Wobble, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: -10, Osc2Wave: 2, Osc2Detune: 10, Osc2Mix: 0.5, SubVolume: 0.4, Unison: 5, UnisonSpread: 0.3,
		Cutoff: 850, Resonance: 0.72, FilterEnv: 0.03, FilterType: 0, FilterSlope: 1, Drive: 0.16, DriveType: 2, LowBoost: 0.48,
		Attack: 0.015, Decay: 0.12, Sustain: 0.78, Release: 0.18, Portamento: 0,
		LFORate: 3, LFODepth: 0.82, LFOWave: 3, LFOTarget: 1,
		DelayMix: 0.08, DelayTime: 0.32, DelayFeedback: 0.38, ReverbMix: 0.12, ReverbSize: 0.45,
	}},
	{Name: "Growl", Category: Growl, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: -15, Osc2Wave: 2, Osc2Detune: 15, Osc2Mix: 0.6, SubVolume: 0.35, Unison: 6, UnisonSpread: 0.4,
		Cutoff: 700, Resonance: 0.75, FilterEnv: 0, FilterType: 0, FilterSlope: 1, Drive: 0.155, DriveType: 1, LowBoost: 0.4,
		Attack: 0.01, Decay: 0.1, Sustain: 0.8, Release: 0.15, Portamento: 0,
		LFORate: 8, LFODepth: 0.6, LFOWave: 2, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0.05, ReverbSize: 0.35,
	}},
	{Name: "Aggressive", Category: Growl, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: -20, Osc2Wave: 1, Osc2Detune: 20, Osc2Mix: 0.55, SubVolume: 0.3, Unison: 7, UnisonSpread: 0.45,
		Cutoff: 800, Resonance: 0.8, FilterEnv: 0.025, FilterType: 0, FilterSlope: 1, Drive: 0.1, DriveType: 1, LowBoost: 0.35,
		Attack: 0.005, Decay: 0.08, Sustain: 0.85, Release: 0.12, Portamento: 0,
		LFORate: 10, LFODepth: 0.65, LFOWave: 2, LFOTarget: 1,
		DelayMix: 0, DelayTime: 0.3, DelayFeedback: 0.3, ReverbMix: 0.03, ReverbSize: 0.3,
	}},
	{Name: "Screamer", Category: Growl, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: -25, Osc2Wave: 2, Osc2Detune: 25, Osc2Mix: 0.65, SubVolume: 0.25, Unison: 8, UnisonSpread: 0.5,
		Cutoff: 1000, Resonance: 0.85, FilterEnv: 0.025, FilterType: 0, FilterSlope: 1, Drive: 0.12, DriveType: 3, LowBoost: 0.3,
		Attack: 0.003, Decay: 0.1, Sustain: 0.9, Release: 0.1, Portamento: 0,
		LFORate: 12, LFODepth: 0.7, LFOWave: 1, LFOTarget: 1,
		DelayMix: 0.05, DelayTime: 0.2, DelayFeedback: 0.35, ReverbMix: 0.05, ReverbSize: 0.35,
	}},
	{Name: "Metallic", Category: Growl, Params: bass.Params{
		Osc1Wave: 2, Osc1Detune: -30, Osc2Wave: 2, Osc2Detune: 30, Osc2Mix: 0.5, SubVolume: 0.2, Unison: 6, UnisonSpread: 0.35,
		Cutoff: 1200, Resonance: 0.7, FilterEnv: 0.03, FilterType: 0, FilterSlope: 1, Drive: 0.158, DriveType: 1, LowBoost: 0.25,
		Attack: 0.001, Decay: 0.15, Sustain: 0.7, Release: 0.15, Portamento: 0,
		LFORate: 15, LFODepth: 0.5, LFOWave: 2, LFOTarget: 1,
		DelayMix: 0.1, DelayTime: 0.15, DelayFeedback: 0.4, ReverbMix: 0.08, ReverbSize: 0.4,
	}},
	{Name: "Chaos", Category: Growl, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: -35, Osc2Wave: 2, Osc2Detune: 35, Osc2Mix: 0.6, SubVolume: 0.2, Unison: 8, UnisonSpread: 0.5,
		Cutoff: 900, Resonance: 0.82, FilterEnv: 0.07, FilterType: 0, FilterSlope: 1, Drive: 0.12, DriveType: 3, LowBoost: 0.25,
		Attack: 0.002, Decay: 0.12, Sustain: 0.88, Release: 0.1, Portamento: 0,
		LFORate: 8, LFODepth: 0.9, LFOWave: 1, LFOTarget: 1,
		DelayMix: 0.08, DelayTime: 0.18, DelayFeedback: 0.45, ReverbMix: 0.1, ReverbSize: 0.45,
	}},
	{Name: "Clean Finger", Category: Clean, Params: bass.Params{
		Osc1Wave: 0, Osc1Detune: 0, Osc2Wave: 3, Osc2Detune: 0, Osc2Mix: 0.3, SubVolume: 0.4, Unison: 1, UnisonSpread: 0,
		Cutoff: 1500, Resonance: 0.2, FilterEnv: 0.025, FilterType: 0, FilterSlope: 0, Drive: 0, DriveType: 0, LowBoost: 0.3,
		Attack: 0.005, Decay: 0.3, Sustain: 0.5, Release: 0.3, Portamento: 0,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.1, DelayTime: 0.35, DelayFeedback: 0.3, ReverbMix: 0.15, ReverbSize: 0.5,
	}},
	{Name: "Soft Synth", Category: Clean, Params: bass.Params{
		Osc1Wave: 0, Osc1Detune: 0, Osc2Wave: 0, Osc2Detune: 5, Osc2Mix: 0.4, SubVolume: 0.5, Unison: 2, UnisonSpread: 0.1,
		Cutoff: 1200, Resonance: 0.25, FilterEnv: 0.03, FilterType: 0, FilterSlope: 0, Drive: 0.05, DriveType: 0, LowBoost: 0.4,
		Attack: 0.02, Decay: 0.2, Sustain: 0.6, Release: 0.35, Portamento: 0.005,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.12, DelayTime: 0.4, DelayFeedback: 0.35, ReverbMix: 0.2, ReverbSize: 0.55,
	}},
	{Name: "Mellow", Category: Clean, Params: bass.Params{
		Osc1Wave: 3, Osc1Detune: 0, Osc2Wave: 0, Osc2Detune: 0, Osc2Mix: 0.35, SubVolume: 0.45, Unison: 1, UnisonSpread: 0,
		Cutoff: 800, Resonance: 0.15, FilterEnv: 0.025, FilterType: 0, FilterSlope: 0, Drive: 0, DriveType: 0, LowBoost: 0.35,
		Attack: 0.03, Decay: 0.25, Sustain: 0.55, Release: 0.4, Portamento: 0.007,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.08, DelayTime: 0.38, DelayFeedback: 0.28, ReverbMix: 0.25, ReverbSize: 0.6,
	}},
	{Name: "Warm DI", Category: Clean, Params: bass.Params{
		Osc1Wave: 1, Osc1Detune: 0, Osc2Wave: 0, Osc2Detune: 0, Osc2Mix: 0.2, SubVolume: 0.55, Unison: 1, UnisonSpread: 0,
		Cutoff: 1000, Resonance: 0.2, FilterEnv: 0.07, FilterType: 0, FilterSlope: 0, Drive: 0.1, DriveType: 2, LowBoost: 0.5,
		Attack: 0.01, Decay: 0.2, Sustain: 0.65, Release: 0.25, Portamento: 0,
		LFORate: 0, LFODepth: 0, LFOWave: 0, LFOTarget: 1,
		DelayMix: 0.05, DelayTime: 0.3, DelayFeedback: 0.25, ReverbMix: 0.1, ReverbSize: 0.45,
	}},
}

// Factory returns the built-in presets, Init first.
func Factory() []Preset {
	base := bass.DefaultParams()
	presets := make([]Preset, 0, len(factorySounds)+1)
	presets = append(presets, Preset{Name: "Init", Category: Init, Params: base})
	for _, p := range factorySounds {
		p.Params.ArpOn = base.ArpOn
		p.Params.ArpMode = base.ArpMode
		p.Params.ArpRate = base.ArpRate
		p.Params.ArpOctaves = base.ArpOctaves
		p.Params.MasterGain = base.MasterGain
		p.Params = p.Params.Clamped()
		presets = append(presets, p)
	}
	return presets
}
