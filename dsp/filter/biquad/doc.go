// Package biquad is the second-order IIR section behind the output tone
// stage. Registers are clamped on every sample so coefficient jumps under
// automation stay bounded; coefficient design lives in dsp/filter/design.
package biquad
