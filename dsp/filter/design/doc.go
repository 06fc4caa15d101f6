// Package design provides the RBJ-style biquad coefficient designers used by
// the synth's tone stage.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing. Invalid frequencies or sample
// rates yield zero coefficients rather than an error so callers on the audio
// path never branch on failure.
package design
