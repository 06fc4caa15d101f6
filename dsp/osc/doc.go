// Package osc provides the naive (non band-limited) oscillator waveforms and
// the unison phase bank used by the bass voices.
//
// Waveforms are pure functions of a normalized phase in [0, 1). The same
// mapping drives the audio oscillators and the modulation LFO.
package osc
