package analysis_test

import (
	"fmt"

	"github.com/cwbudde/algo-bass/analysis"
	"github.com/cwbudde/algo-bass/internal/testutil"
)

func ExampleResult_PeakFrequency() {
	samples := testutil.DeterministicSine(440, 48000, 0.8, 16384)
	r, err := analysis.Spectrum(samples, 48000)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.0f Hz\n", r.PeakFrequency(20, 2000))
	// Output: 440 Hz
}
