package effects

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-bass/dsp/core"
	"github.com/cwbudde/algo-bass/internal/testutil"
)

func TestReverbBufferLengths(t *testing.T) {
	r, err := NewReverb(44100)
	if err != nil {
		t.Fatalf("NewReverb: %v", err)
	}
	wantCombs := []int{1309, 1636, 1812, 1927}
	for i, w := range wantCombs {
		if got := len(r.combs[i].buffer); got != w {
			t.Errorf("comb %d length = %d, want %d", i, got, w)
		}
	}
	wantAllpass := []int{220, 74}
	for i, w := range wantAllpass {
		if got := len(r.allpass[i].buffer); got != w {
			t.Errorf("allpass %d length = %d, want %d", i, got, w)
		}
	}

	tiny, err := NewReverb(100)
	if err != nil {
		t.Fatalf("NewReverb: %v", err)
	}
	if len(tiny.allpass[1].buffer) != 1 {
		t.Fatalf("short buffers must hold at least one sample")
	}
}

func TestReverbImpulseTailIsFiniteAndDecays(t *testing.T) {
	r, err := NewReverb(44100)
	if err != nil {
		t.Fatalf("NewReverb: %v", err)
	}
	r.SetSize(0.5)

	out := make([]float64, 44100*4)
	for i := range out {
		var x float64
		if i == 0 {
			x = 1
		}
		out[i] = r.ProcessSample(x)
	}
	testutil.RequireFinite(t, out)

	early, late := peakAbs(out[:44100]), peakAbs(out[3*44100:])
	if early == 0 {
		t.Fatal("reverb produced no tail")
	}
	if late >= early/10 {
		t.Fatalf("tail did not decay: early peak %v, late peak %v", early, late)
	}
}

func TestReverbStateBoundedUnderOverload(t *testing.T) {
	r, err := NewReverb(48000)
	if err != nil {
		t.Fatalf("NewReverb: %v", err)
	}
	r.SetSize(1)
	r.SetMix(1)
	for i := 0; i < 48000; i++ {
		x := 1e6
		if i%2 == 1 {
			x = -1e6
		}
		l, _ := r.ProcessStereo(x, x)
		if math.IsNaN(l) {
			t.Fatalf("NaN at %d", i)
		}
	}
	for i := range r.combs {
		for _, v := range r.combs[i].buffer {
			if math.Abs(v) > core.StateLimit {
				t.Fatalf("comb %d holds %v", i, v)
			}
		}
		if math.Abs(r.combs[i].filterStore) > core.StateLimit {
			t.Fatalf("comb %d filter state %v", i, r.combs[i].filterStore)
		}
	}
	for i := range r.allpass {
		for _, v := range r.allpass[i].buffer {
			if math.Abs(v) > core.StateLimit {
				t.Fatalf("allpass %d holds %v", i, v)
			}
		}
	}
}

func TestReverbBypassAndMix(t *testing.T) {
	r, err := NewReverb(44100)
	if err != nil {
		t.Fatalf("NewReverb: %v", err)
	}
	if l, rr := r.ProcessStereo(0.5, -0.5); l != 0.5 || rr != -0.5 {
		t.Fatalf("bypassed reverb changed the frame: %v %v", l, rr)
	}

	// The first samples of a fresh reverb are silent, so the output is the
	// scaled dry signal.
	r.SetMix(0.25)
	l, rr := r.ProcessStereo(0.8, 0.4)
	if math.Abs(l-0.6) > 1e-12 || math.Abs(rr-0.3) > 1e-12 {
		t.Fatalf("mixed frame = %v %v, want 0.6 0.3", l, rr)
	}
}

func TestReverbResetRestoresState(t *testing.T) {
	r, err := NewReverb(44100)
	if err != nil {
		t.Fatalf("NewReverb: %v", err)
	}

	in := testutil.Impulse(4096, 0)
	out1 := make([]float64, len(in))
	for i, x := range in {
		out1[i] = r.ProcessSample(x)
	}
	r.Reset()
	out2 := make([]float64, len(in))
	for i, x := range in {
		out2[i] = r.ProcessSample(x)
	}
	testutil.RequireSliceNearlyEqual(t, out2, out1, 0)
}

func peakAbs(buf []float64) float64 {
	var p float64
	for _, v := range buf {
		p = math.Max(p, math.Abs(v))
	}
	return p
}

func TestReverbCombTailsReachExactSilence(t *testing.T) {
	r, err := NewReverb(1000)
	if err != nil {
		t.Fatalf("NewReverb: %v", err)
	}
	r.SetSize(0)
	r.ProcessSample(1)
	for range 20000 {
		r.ProcessSample(0)
	}
	for i := range r.combs {
		c := &r.combs[i]
		if c.filterStore != 0 {
			t.Fatalf("comb %d filter store = %g, want 0", i, c.filterStore)
		}
		for j, v := range c.buffer {
			if v != 0 {
				t.Fatalf("comb %d buffer[%d] = %g, want 0", i, j, v)
			}
		}
	}
}
