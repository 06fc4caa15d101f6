package analysis

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var errEmptySignal = errors.New("analysis: empty signal")

// Result is a one-sided power spectrum of a Hann-windowed signal.
type Result struct {
	SampleRate float64
	FFTSize    int
	// Power holds |X[k]|^2 for bins 0..FFTSize/2.
	Power []float64
}

// Spectrum windows samples with a Hann window, zero-pads to the next power
// of two and returns the one-sided power spectrum.
func Spectrum(samples []float64, sampleRate float64) (*Result, error) {
	if len(samples) == 0 {
		return nil, errEmptySignal
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("analysis sample rate must be > 0 and finite: %f", sampleRate)
	}

	size := nextPowerOf2(max(len(samples), 2))

	windowed := make([]float64, len(samples))
	copy(windowed, samples)
	vecmath.MulBlockInPlace(windowed, hann(len(samples)))

	in := make([]complex128, size)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("analysis: fft plan: %w", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("analysis: fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return &Result{SampleRate: sampleRate, FFTSize: size, Power: power}, nil
}

// BinWidth returns the spacing between bins in Hz.
func (r *Result) BinWidth() float64 {
	return r.SampleRate / float64(r.FFTSize)
}

// Bin returns the bin nearest to freq, clamped to the spectrum.
func (r *Result) Bin(freq float64) int {
	k := int(math.Round(freq / r.BinWidth()))
	return max(0, min(k, len(r.Power)-1))
}

// PeakBin returns the strongest bin in [lo, hi] Hz, skipping DC.
func (r *Result) PeakBin(lo, hi float64) int {
	first := max(r.Bin(lo), 1)
	last := r.Bin(hi)
	best := first
	for k := first; k <= last; k++ {
		if r.Power[k] > r.Power[best] {
			best = k
		}
	}
	return best
}

// PeakFrequency estimates the frequency of the strongest component in
// [lo, hi] Hz by parabolic interpolation of the log power around the peak
// bin.
func (r *Result) PeakFrequency(lo, hi float64) float64 {
	k := r.PeakBin(lo, hi)
	if k <= 0 || k >= len(r.Power)-1 {
		return float64(k) * r.BinWidth()
	}
	a := logPower(r.Power[k-1])
	b := logPower(r.Power[k])
	c := logPower(r.Power[k+1])
	delta := 0.0
	if den := a - 2*b + c; den != 0 {
		delta = 0.5 * (a - c) / den
	}
	return (float64(k) + delta) * r.BinWidth()
}

// BandPower sums the power of bins within ±width bins of freq.
func (r *Result) BandPower(freq float64, width int) float64 {
	k := r.Bin(freq)
	sum := 0.0
	for i := max(k-width, 0); i <= min(k+width, len(r.Power)-1); i++ {
		sum += r.Power[i]
	}
	return sum
}

// HarmonicDistortion returns the ratio of the summed power of harmonics 2
// through n of fundamental to the power of the fundamental itself. Harmonics
// above Nyquist are ignored.
func (r *Result) HarmonicDistortion(fundamental float64, n int) float64 {
	const captureBins = 3
	base := r.BandPower(fundamental, captureBins)
	if base == 0 {
		return 0
	}
	nyquist := r.SampleRate / 2
	sum := 0.0
	for h := 2; h <= n; h++ {
		f := fundamental * float64(h)
		if f >= nyquist {
			break
		}
		sum += r.BandPower(f, captureBins)
	}
	return sum / base
}

func logPower(p float64) float64 {
	const floor = 1e-300
	return math.Log(max(p, floor))
}

// hann returns symmetric Hann coefficients.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
