// Package bass implements a real-time polyphonic bass synthesizer.
//
// An Engine owns sixteen voices, each made of a unison oscillator bank with
// a sub oscillator, a drive stage, a two-stage state-variable filter and a
// linear ADSR amplitude envelope. A single LFO modulates pitch, cutoff or
// amplitude, an optional arpeggiator replaces direct note handling, and the
// mono voice sum runs through a fixed stereo effect chain.
//
// The engine is driven one block at a time:
//
//	e, _ := bass.New(core.WithSampleRate(48000))
//	e.Process(left, right, events, bass.Transport{Tempo: 128}, params)
//
// Process never allocates and never fails; out-of-range parameters are
// clamped and runaway filter or effect state is held within ±10.
package bass
