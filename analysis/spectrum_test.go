package analysis

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-bass/internal/testutil"
)

func TestSpectrumRejectsBadInput(t *testing.T) {
	if _, err := Spectrum(nil, 48000); err == nil {
		t.Fatal("expected error for empty signal")
	}
	for _, sr := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Spectrum([]float64{1}, sr); err == nil {
			t.Fatalf("expected error for sample rate %v", sr)
		}
	}
}

func TestSpectrumSize(t *testing.T) {
	r, err := Spectrum(make([]float64, 1000), 8000)
	if err != nil {
		t.Fatal(err)
	}
	if r.FFTSize != 1024 || len(r.Power) != 513 {
		t.Fatalf("size %d with %d bins", r.FFTSize, len(r.Power))
	}
	if got := r.BinWidth(); got != 8000.0/1024 {
		t.Fatalf("BinWidth = %g", got)
	}
}

func TestPeakFrequency(t *testing.T) {
	const sr = 44100.0
	for _, freq := range []float64{55, 110, 440, 1234.5} {
		r, err := Spectrum(testutil.DeterministicSine(freq, sr, 0.5, 16384), sr)
		if err != nil {
			t.Fatal(err)
		}
		got := r.PeakFrequency(20, 5000)
		if math.Abs(got-freq) > 0.5 {
			t.Errorf("PeakFrequency = %.3f, want %.1f", got, freq)
		}
	}
}

func TestHarmonicDistortion(t *testing.T) {
	const (
		sr = 48000.0
		n  = 8192
		f0 = 375.0
	)
	pure := testutil.DeterministicSine(f0, sr, 1, n)
	rich := make([]float64, n)
	for i := range rich {
		x := 2 * math.Pi * f0 * float64(i) / sr
		rich[i] = math.Sin(x) + 0.5*math.Sin(3*x)
	}

	rp, err := Spectrum(pure, sr)
	if err != nil {
		t.Fatal(err)
	}
	rr, err := Spectrum(rich, sr)
	if err != nil {
		t.Fatal(err)
	}

	if d := rp.HarmonicDistortion(f0, 5); d > 1e-6 {
		t.Fatalf("pure sine distortion = %g", d)
	}
	if d := rr.HarmonicDistortion(f0, 5); math.Abs(d-0.25) > 0.01 {
		t.Fatalf("third harmonic at -6 dB gave ratio %g, want 0.25", d)
	}
}

func TestLevels(t *testing.T) {
	sine := testutil.DeterministicSine(100, 8000, 1, 8000)
	if got := RMS(sine); math.Abs(got-math.Sqrt2/2) > 1e-3 {
		t.Fatalf("RMS = %g", got)
	}
	if got := Peak([]float64{0.1, -0.8, 0.5}); got != 0.8 {
		t.Fatalf("Peak = %g", got)
	}
	if got := DBFS(0.5); math.Abs(got+6.0206) > 1e-3 {
		t.Fatalf("DBFS(0.5) = %g", got)
	}
	if !math.IsInf(DBFS(0), -1) {
		t.Fatal("DBFS(0) is not -Inf")
	}
	if l := Measure(nil); l != (Level{}) {
		t.Fatalf("Measure(nil) = %+v", l)
	}
}
