// Package envelope provides the linear ADSR generator used by each synth
// voice.
//
// The generator is advanced by elapsed time rather than by a precomputed
// per-sample coefficient, so stage durations can change between blocks
// without recomputing state. Attack and release segments start from a saved
// level, which keeps retriggers and early releases free of steps.
package envelope
