// Package analysis measures rendered audio: windowed power spectra, peak
// frequency estimation, harmonic distortion and signal levels.
//
// It backs the offline renderer's report and the engine's spectral tests.
// Nothing here is meant for the audio goroutine; every call allocates.
package analysis
