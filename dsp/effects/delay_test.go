package effects

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-bass/dsp/core"
	"github.com/cwbudde/algo-bass/internal/testutil"
)

func TestNewDelayRejectsInvalidSampleRate(t *testing.T) {
	for _, sr := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewDelay(sr); err == nil {
			t.Fatalf("NewDelay(%v) succeeded", sr)
		}
	}
}

func TestDelayEchoesLeftIntoBothChannels(t *testing.T) {
	d, err := NewDelay(1000)
	if err != nil {
		t.Fatalf("NewDelay: %v", err)
	}
	d.SetTime(0.25)
	d.SetFeedback(0.5)
	d.SetMix(0.5)

	in := testutil.Impulse(600, 0)
	for i, x := range in {
		l, r := d.ProcessStereo(x, 0)
		var want float64
		switch i {
		case 0:
			want = 1
		case 250:
			want = 0.5
		case 500:
			want = 0.25
		}
		if math.Abs(l-want) > 1e-12 {
			t.Fatalf("left[%d] = %v, want %v", i, l, want)
		}
		if i > 0 && math.Abs(r-want) > 1e-12 {
			t.Fatalf("right[%d] = %v, want %v", i, r, want)
		}
	}
}

func TestDelayLengthLimits(t *testing.T) {
	tests := []struct {
		seconds float64
		sr      float64
		want    int
	}{
		{seconds: 0.3, sr: 44100, want: 13230},
		{seconds: 1, sr: 48000, want: 48000},
		{seconds: 1, sr: 192000, want: MaxDelaySamples - 1},
		{seconds: 0, sr: 44100, want: 1},
		{seconds: math.NaN(), sr: 44100, want: 1},
	}
	for _, tt := range tests {
		d, err := NewDelay(tt.sr)
		if err != nil {
			t.Fatalf("NewDelay: %v", err)
		}
		d.SetTime(tt.seconds)
		if got := d.DelaySamples(); got != tt.want {
			t.Errorf("%v s @ %v Hz: %d samples, want %d", tt.seconds, tt.sr, got, tt.want)
		}
	}
}

func TestDelayBypassLeavesLineUntouched(t *testing.T) {
	d, err := NewDelay(48000)
	if err != nil {
		t.Fatalf("NewDelay: %v", err)
	}
	for i := 0; i < 100; i++ {
		l, r := d.ProcessStereo(0.7, -0.3)
		if l != 0.7 || r != -0.3 {
			t.Fatalf("bypassed delay changed the frame: %v %v", l, r)
		}
	}
	if d.write != 0 {
		t.Fatalf("bypassed delay advanced the cursor to %d", d.write)
	}
}

func TestDelayStateBounded(t *testing.T) {
	d, err := NewDelay(1000)
	if err != nil {
		t.Fatalf("NewDelay: %v", err)
	}
	d.SetTime(0.05)
	d.SetFeedback(5) // clamped to 0.95
	d.SetMix(1)
	if d.Feedback() != maxDelayFeedback {
		t.Fatalf("feedback = %v, want %v", d.Feedback(), maxDelayFeedback)
	}
	for i := 0; i < 20000; i++ {
		d.ProcessStereo(10, 10)
	}
	for i, v := range d.buffer {
		if math.Abs(v) > core.StateLimit {
			t.Fatalf("buffer[%d] = %v exceeds the rail", i, v)
		}
	}
}

func TestDelayResetAndSampleRate(t *testing.T) {
	d, err := NewDelay(1000)
	if err != nil {
		t.Fatalf("NewDelay: %v", err)
	}
	d.SetTime(0.1)
	d.SetMix(1)
	d.ProcessStereo(1, 1)
	d.Reset()
	for i := 0; i < 300; i++ {
		if l, _ := d.ProcessStereo(0, 0); l != 0 {
			t.Fatalf("reset delay produced %v at %d", l, i)
		}
	}

	if err := d.SetSampleRate(2000); err != nil {
		t.Fatalf("SetSampleRate: %v", err)
	}
	if d.DelaySamples() != 200 {
		t.Fatalf("delay samples after rate change = %d, want 200", d.DelaySamples())
	}
	if err := d.SetSampleRate(0); err == nil {
		t.Fatal("SetSampleRate(0) succeeded")
	}
}

func TestDelayTailReachesExactSilence(t *testing.T) {
	d, err := NewDelay(1000)
	if err != nil {
		t.Fatalf("NewDelay: %v", err)
	}
	d.SetTime(0.05)
	d.SetFeedback(0.5)
	d.SetMix(1)

	d.ProcessStereo(1, 0)
	// 0.5^100 < 1e-30: the hundredth echo is stored as zero.
	var l, r float64
	for range 6000 {
		l, r = d.ProcessStereo(0, 0)
	}
	if l != 0 || r != 0 {
		t.Fatalf("tail output = %g, %g; want exact zero", l, r)
	}
	for i, v := range d.buffer {
		if v != 0 {
			t.Fatalf("line[%d] = %g, want 0", i, v)
		}
	}
}
