package bass

import (
	"math"
	"testing"
)

func TestParamSpecsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range ParamSpecs() {
		if seen[s.ID] {
			t.Fatalf("duplicate id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Min >= s.Max {
			t.Errorf("%s: empty range [%g, %g]", s.ID, s.Min, s.Max)
		}
		if s.Default < s.Min || s.Default > s.Max {
			t.Errorf("%s: default %g outside range", s.ID, s.Default)
		}
		if s.Scale == ScaleLog && s.Min <= 0 {
			t.Errorf("%s: log scale with min %g", s.ID, s.Min)
		}
	}
	if len(seen) != 35 {
		t.Fatalf("%d parameters, want 35", len(seen))
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	checks := []struct {
		name      string
		got, want float64
	}{
		{"osc1 wave", float64(p.Osc1Wave), 1},
		{"osc2 detune", p.Osc2Detune, 7},
		{"unison", float64(p.Unison), 4},
		{"cutoff", p.Cutoff, 600},
		{"slope", float64(p.FilterSlope), 1},
		{"drive type", float64(p.DriveType), 2},
		{"attack", p.Attack, 0.005},
		{"sustain", p.Sustain, 0.7},
		{"lfo target", float64(p.LFOTarget), 1},
		{"arp rate", float64(p.ArpRate), 1},
		{"delay time", p.DelayTime, 0.3},
		{"gain", p.MasterGain, 0.6},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %g, want %g", c.name, c.got, c.want)
		}
	}
	if p.ArpOn {
		t.Error("arpeggiator on by default")
	}
	if p.Clamped() != p {
		t.Error("defaults are not a fixed point of Clamped")
	}
}

func TestParamsClamped(t *testing.T) {
	p := DefaultParams()
	p.Cutoff = 5
	p.Resonance = math.NaN()
	p.Unison = 0
	p.FilterType = 7
	p.Release = math.Inf(1)
	p.FilterEnv = -3

	c := p.Clamped()
	if c.Cutoff != 20 || c.Resonance != 0.4 || c.Unison != 1 || c.FilterType != 2 ||
		c.Release != 10 || c.FilterEnv != -1 {
		t.Fatalf("Clamped = %+v", c)
	}
}

func TestParamSpecSet(t *testing.T) {
	var p Params
	for _, s := range ParamSpecs() {
		switch s.ID {
		case "unison_voices":
			if got := s.Set(&p, 3.6); got != 4 || p.Unison != 4 {
				t.Fatalf("Set(3.6) = %g, field %d", got, p.Unison)
			}
		case "arp_on":
			s.Set(&p, 1)
			if !p.ArpOn || s.Get(&p) != 1 {
				t.Fatal("arp_on not set")
			}
		case "portamento":
			if got := s.Set(&p, 2); got != 1 || p.Portamento != 1 {
				t.Fatalf("Set(2) = %g", got)
			}
		}
	}
}
