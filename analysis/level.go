package analysis

import "math"

// RMS returns the root-mean-square level of samples.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range samples {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// Peak returns the largest absolute sample value.
func Peak(samples []float64) float64 {
	p := 0.0
	for _, v := range samples {
		p = max(p, math.Abs(v))
	}
	return p
}

// DBFS converts a linear level to decibels relative to full scale. Silence
// maps to -Inf.
func DBFS(level float64) float64 {
	if level <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(level)
}

// Level summarizes one channel of a rendering.
type Level struct {
	Peak float64
	RMS  float64
}

// Measure returns the peak and RMS of samples.
func Measure(samples []float64) Level {
	return Level{Peak: Peak(samples), RMS: RMS(samples)}
}
