package lfo

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-bass/dsp/osc"
)

func TestNextSamplesBeforeAdvancing(t *testing.T) {
	var l LFO
	if got := l.Next(1, 4, osc.Saw); got != -1 {
		t.Fatalf("first sample = %v, want -1 at phase 0", got)
	}
	if l.Phase() != 0.25 {
		t.Fatalf("phase = %v, want 0.25", l.Phase())
	}
	want := []float64{-0.5, 0, 0.5, -1}
	for i, w := range want {
		if got := l.Next(1, 4, osc.Saw); math.Abs(got-w) > 1e-12 {
			t.Fatalf("sample %d = %v, want %v", i+1, got, w)
		}
	}
}

func TestPhaseStaysInUnitInterval(t *testing.T) {
	var l LFO
	for i := 0; i < 10000; i++ {
		l.Next(50, 1000, osc.Triangle)
		if p := l.Phase(); p < 0 || p >= 1 {
			t.Fatalf("phase %v escaped [0, 1)", p)
		}
	}
	l.Reset()
	if l.Phase() != 0 {
		t.Fatal("reset did not rewind the phase")
	}
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		depth  float64
		target Target
		want   Modulation
	}{
		{name: "pitch up half octave", value: 1, depth: 1, target: Pitch, want: Modulation{PitchRatio: math.Sqrt2, AmpGain: 1}},
		{name: "pitch no depth", value: 1, depth: 0, target: Pitch, want: Neutral},
		{name: "filter", value: -0.5, depth: 0.5, target: Filter, want: Modulation{PitchRatio: 1, CutoffOffset: -500, AmpGain: 1}},
		{name: "amp trough", value: -1, depth: 1, target: Amplitude, want: Modulation{PitchRatio: 1, AmpGain: 0}},
		{name: "amp peak", value: 1, depth: 1, target: Amplitude, want: Neutral},
		{name: "unknown target", value: 1, depth: 1, target: Target(7), want: Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Route(tt.value, tt.depth, tt.target)
			if math.Abs(got.PitchRatio-tt.want.PitchRatio) > 1e-12 ||
				math.Abs(got.CutoffOffset-tt.want.CutoffOffset) > 1e-12 ||
				math.Abs(got.AmpGain-tt.want.AmpGain) > 1e-12 {
				t.Fatalf("Route = %+v, want %+v", got, tt.want)
			}
		})
	}
}
