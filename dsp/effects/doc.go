// Package effects provides the synth's fixed output effects.
//
// Effects in this package:
//   - LowShelf: stereo 100 Hz low-shelf boost built on dsp/filter/biquad.
//   - Delay: feedback delay on a fixed 96000-sample ring.
//   - Reverb: four damped combs into two allpasses.
//   - DCBlocker: one-pole DC removal.
//   - Chain: the above in series, followed by gain and a hard output clip.
//
// Every kernel holds its recursive state within ±core.StateLimit. Processing
// methods never allocate; buffers are sized at construction or on a sample
// rate change.
package effects
