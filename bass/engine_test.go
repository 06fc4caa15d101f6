package bass_test

import (
	"math"
	"slices"
	"testing"

	"github.com/cwbudde/algo-bass/analysis"
	"github.com/cwbudde/algo-bass/bass"
	"github.com/cwbudde/algo-bass/dsp/core"
	"github.com/cwbudde/algo-bass/dsp/envelope"
	"github.com/cwbudde/algo-bass/internal/testutil"
)

func newEngine(t testing.TB, sampleRate float64) *bass.Engine {
	t.Helper()
	e, err := bass.New(core.WithSampleRate(sampleRate))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// render processes n frames in one block and returns both channels.
func render(e *bass.Engine, n int, events []bass.Event, p bass.Params) ([]float64, []float64) {
	l := make([]float64, n)
	r := make([]float64, n)
	e.Process(l, r, events, bass.Transport{}, p)
	return l, r
}

func TestNewRejectsInvalidSampleRate(t *testing.T) {
	e := newEngine(t, 48000)
	for _, sr := range []float64{0, -44100, math.NaN(), math.Inf(1)} {
		if err := e.Initialize(sr); err == nil {
			t.Fatalf("Initialize(%v) accepted", sr)
		}
	}
	if e.SampleRate() != 48000 {
		t.Fatalf("failed Initialize changed the sample rate to %g", e.SampleRate())
	}
}

func TestSilentWithoutNotes(t *testing.T) {
	e := newEngine(t, 44100)
	l, r := render(e, 4096, nil, bass.DefaultParams())
	testutil.RequireSilent(t, l, 0)
	testutil.RequireSilent(t, r, 0)
}

func TestEnvelopeScenario(t *testing.T) {
	const sr = 44100.0
	e := newEngine(t, sr)
	p := bass.DefaultParams()
	l := make([]float64, 1)
	r := make([]float64, 1)

	step := func(events ...bass.Event) bass.VoiceState {
		e.Process(l, r, events, bass.Transport{}, p)
		return e.VoiceState(0)
	}

	v := step(bass.NoteOnEvent(60, 1))
	prev := v.Envelope
	frames := 1

	// Attack: strictly rising until the decay segment begins.
	attackFrames := int(p.Attack * sr)
	for ; frames < attackFrames; frames++ {
		v = step()
		if v.Stage != envelope.Attack {
			t.Fatalf("frame %d: stage %v during attack", frames, v.Stage)
		}
		if v.Envelope <= prev {
			t.Fatalf("frame %d: envelope %g not above %g", frames, v.Envelope, prev)
		}
		prev = v.Envelope
	}

	// Within 1e-3 of sustain by attack+decay.
	sustainBy := int(math.Ceil((p.Attack + p.Decay) * sr))
	for ; frames < sustainBy; frames++ {
		v = step()
	}
	if math.Abs(v.Envelope-p.Sustain) > 1e-3 {
		t.Fatalf("envelope %g at attack+decay, want %g", v.Envelope, p.Sustain)
	}

	for range 2000 {
		v = step()
		if v.Stage != envelope.Sustain || v.Envelope != p.Sustain {
			t.Fatalf("sustain not held: %+v", v)
		}
	}

	v = step(bass.NoteOffEvent(60))
	prev = v.Envelope
	releaseFrames := int(math.Ceil(p.Release*sr)) + 1
	for range releaseFrames {
		v = step()
		if v.Envelope > prev {
			t.Fatalf("release rose from %g to %g", prev, v.Envelope)
		}
		prev = v.Envelope
	}
	if v.Active || e.ActiveVoices() != 0 || v.Envelope != 0 {
		t.Fatalf("voice still active after release: %+v", v)
	}
	for range 100 {
		if step().Active {
			t.Fatal("voice reactivated")
		}
	}
}

func TestSeventeenthNoteStealsSlotZero(t *testing.T) {
	e := newEngine(t, 44100)
	events := make([]bass.Event, 0, bass.MaxVoices+1)
	for i := range bass.MaxVoices + 1 {
		events = append(events, bass.NoteOnEvent(uint8(36+i), 1))
	}
	render(e, 64, events, bass.DefaultParams())

	if n := e.ActiveVoices(); n != bass.MaxVoices {
		t.Fatalf("ActiveVoices = %d", n)
	}
	if v := e.VoiceState(0); v.Note != 36+bass.MaxVoices {
		t.Fatalf("slot 0 plays %d, want %d", v.Note, 36+bass.MaxVoices)
	}
	if v := e.VoiceState(1); v.Note != 37 {
		t.Fatalf("slot 1 plays %d, want 37", v.Note)
	}
}

func TestInvalidEventsIgnored(t *testing.T) {
	e := newEngine(t, 44100)
	render(e, 16, []bass.Event{
		bass.NoteOnEvent(200, 1),
		{Kind: 0, Note: 60},
		bass.NoteOffEvent(61),
	}, bass.DefaultParams())
	if e.ActiveVoices() != 0 {
		t.Fatalf("ActiveVoices = %d", e.ActiveVoices())
	}
}

func TestResetIdempotent(t *testing.T) {
	p := bass.DefaultParams()
	p.DelayMix = 0.5
	p.ReverbMix = 0.4
	p.LFODepth = 0.5
	events := []bass.Event{bass.NoteOnEvent(40, 0.9), bass.NoteOnEvent(47, 0.7)}

	fresh := newEngine(t, 44100)
	wantL, wantR := render(fresh, 8192, events, p)

	used := newEngine(t, 44100)
	render(used, 20000, []bass.Event{bass.NoteOnEvent(33, 1), bass.NoteOnEvent(64, 1)}, p)
	used.Reset()
	used.Reset()

	gotL, gotR := render(used, 8192, events, p)
	testutil.RequireSliceNearlyEqual(t, gotL, wantL, 0)
	testutil.RequireSliceNearlyEqual(t, gotR, wantR, 0)
}

func TestOutputClampedUnderExtremes(t *testing.T) {
	p := bass.DefaultParams()
	p.Drive = 1
	p.DriveType = 3
	p.Resonance = 0.99
	p.Unison = 8
	p.UnisonSpread = 1
	p.SubVolume = 1
	p.FilterEnv = 1
	p.LowBoost = 1
	p.DelayMix = 1
	p.DelayFeedback = 0.95
	p.ReverbMix = 1
	p.ReverbSize = 0.99
	p.MasterGain = 1
	p.LFODepth = 1
	p.LFORate = 50

	for _, slope := range []int{0, 1} {
		for _, typ := range []int{0, 1, 2} {
			p.FilterSlope = slope
			p.FilterType = typ
			e := newEngine(t, 44100)
			events := make([]bass.Event, 0, bass.MaxVoices)
			for i := range bass.MaxVoices {
				events = append(events, bass.NoteOnEvent(uint8(24+5*i), 1))
			}
			l, r := render(e, 44100, events, p)
			testutil.RequireFinite(t, l)
			testutil.RequireWithin(t, l, -1, 1)
			testutil.RequireWithin(t, r, -1, 1)
		}
	}
}

func TestParameterGarbageIsClamped(t *testing.T) {
	p := bass.Params{
		Osc1Wave:   -4,
		Unison:     99,
		Cutoff:     math.Inf(1),
		Resonance:  math.NaN(),
		Attack:     -1,
		Release:    0,
		LFORate:    1e9,
		DelayTime:  42,
		MasterGain: 10,
		ArpRate:    12,
		ArpOctaves: -3,
	}
	e := newEngine(t, 44100)
	l, r := render(e, 4096, []bass.Event{bass.NoteOnEvent(45, 1)}, p)
	testutil.RequireFinite(t, l)
	testutil.RequireWithin(t, l, -1, 1)
	testutil.RequireWithin(t, r, -1, 1)
}

func TestSinePatchPitch(t *testing.T) {
	const sr = 44100.0
	p := bass.DefaultParams()
	p.Osc1Wave = 0
	p.Osc2Mix = 0
	p.SubVolume = 0
	p.Unison = 1
	p.Portamento = 0
	p.Drive = 0
	p.LowBoost = 0
	p.Cutoff = 20000
	p.Resonance = 0
	p.FilterEnv = 0
	p.FilterSlope = 0

	e := newEngine(t, sr)
	render(e, 8192, []bass.Event{bass.NoteOnEvent(81, 1)}, p)
	l, _ := render(e, 16384, nil, p)

	spec, err := analysis.Spectrum(l, sr)
	if err != nil {
		t.Fatal(err)
	}
	if got := spec.PeakFrequency(20, 5000); math.Abs(got-440) > 1 {
		t.Fatalf("peak at %.2f Hz, want 440", got)
	}
	if d := spec.HarmonicDistortion(440, 8); d > 1e-4 {
		t.Fatalf("clean sine patch distortion = %g", d)
	}
}

func TestDriveAddsHarmonics(t *testing.T) {
	const sr = 44100.0
	p := bass.DefaultParams()
	p.Osc1Wave = 0
	p.Osc2Mix = 0
	p.SubVolume = 0
	p.Unison = 1
	p.Portamento = 0
	p.LowBoost = 0
	p.Cutoff = 20000
	p.FilterEnv = 0
	p.FilterSlope = 0
	p.Resonance = 0

	distortion := func(amount float64) float64 {
		p.Drive = amount
		e := newEngine(t, sr)
		render(e, 8192, []bass.Event{bass.NoteOnEvent(69, 1)}, p)
		l, _ := render(e, 16384, nil, p)
		spec, err := analysis.Spectrum(l, sr)
		if err != nil {
			t.Fatal(err)
		}
		return spec.HarmonicDistortion(220, 8)
	}

	clean, driven := distortion(0), distortion(0.8)
	if driven < 100*clean || driven < 1e-3 {
		t.Fatalf("drive 0.8 distortion %g vs clean %g", driven, clean)
	}
}

func TestArpeggiatorDrivesVoices(t *testing.T) {
	const sr = 48000.0
	p := bass.DefaultParams()
	p.ArpOn = true
	p.ArpRate = 2 // 1/16 at 120 BPM: 0.125 s
	e := newEngine(t, sr)

	// Steps land near frames 6000 and 12000; the blocks end between them.
	half := make([]float64, 3000)
	e.Process(half, make([]float64, 3000), []bass.Event{bass.NoteOnEvent(60, 1), bass.NoteOnEvent(64, 1)}, bass.Transport{Tempo: 120}, p)

	if got := e.Arpeggiator().Notes(nil); !slices.Equal(got, []uint8{60, 64}) {
		t.Fatalf("held notes = %v", got)
	}
	if n, ok := e.Arpeggiator().Playing(); !ok || n != 60 {
		t.Fatalf("playing %d %v, want 60", n, ok)
	}

	// The first step replays the lowest note, the second moves up.
	l := make([]float64, 6000)
	r := make([]float64, 6000)
	e.Process(l, r, nil, bass.Transport{Tempo: 120}, p)
	if n, _ := e.Arpeggiator().Playing(); n != 60 {
		t.Fatalf("playing %d after one step, want 60", n)
	}
	e.Process(l, r, nil, bass.Transport{Tempo: 120}, p)
	if n, _ := e.Arpeggiator().Playing(); n != 64 {
		t.Fatalf("playing %d after two steps, want 64", n)
	}

	p.ArpOn = false
	e.Process(l, r, nil, bass.Transport{Tempo: 120}, p)
	if e.Arpeggiator().Len() != 0 {
		t.Fatal("turning the arpeggiator off kept held notes")
	}
	for i := range bass.MaxVoices {
		if v := e.VoiceState(i); v.Active && v.Stage != envelope.Release {
			t.Fatalf("voice %d still held after arp off: %+v", i, v)
		}
	}
}

func TestProcessInterleaved(t *testing.T) {
	p := bass.DefaultParams()
	events := []bass.Event{bass.NoteOnEvent(43, 1)}

	a, err := bass.New(core.WithSampleRate(48000), core.WithBlockSize(100))
	if err != nil {
		t.Fatal(err)
	}
	b := newEngine(t, 48000)

	dst := make([]float32, 2*1000)
	a.ProcessInterleaved(dst, events, bass.Transport{}, p)
	wantL, wantR := render(b, 1000, events, p)

	gotL, gotR := testutil.Deinterleave(dst)
	for i := range wantL {
		if gotL[i] != float64(float32(wantL[i])) || gotR[i] != float64(float32(wantR[i])) {
			t.Fatalf("frame %d: got (%g, %g), want (%g, %g)", i, gotL[i], gotR[i], wantL[i], wantR[i])
		}
	}
}

func TestProcessDoesNotAllocate(t *testing.T) {
	e := newEngine(t, 48000)
	p := bass.DefaultParams()
	p.ArpOn = true
	p.ArpRate = 3
	p.LFODepth = 0.8
	p.LFOTarget = 1
	p.DelayMix = 0.4
	p.ReverbMix = 0.4
	p.Unison = 8
	tr := bass.Transport{Tempo: 140}

	l := make([]float64, 1024)
	r := make([]float64, 1024)
	e.Process(l, r, []bass.Event{bass.NoteOnEvent(40, 1), bass.NoteOnEvent(47, 0.8)}, tr, p)

	if n := testing.AllocsPerRun(50, func() { e.Process(l, r, nil, tr, p) }); n != 0 {
		t.Fatalf("Process allocates %v times per call", n)
	}

	dst := make([]float32, 2*2048)
	if n := testing.AllocsPerRun(50, func() { e.ProcessInterleaved(dst, nil, tr, p) }); n != 0 {
		t.Fatalf("ProcessInterleaved allocates %v times per call", n)
	}
	if e.Arpeggiator().Len() != 2 {
		t.Fatalf("arpeggiator holds %d notes, want 2", e.Arpeggiator().Len())
	}
}

func TestFirstNoteGlidesFromA4(t *testing.T) {
	e := newEngine(t, 44100)
	p := bass.DefaultParams()
	l := make([]float64, 1)
	r := make([]float64, 1)

	check := func(when string) {
		t.Helper()
		e.Process(l, r, []bass.Event{bass.NoteOnEvent(60, 1)}, bass.Transport{}, p)
		v := e.VoiceState(0)
		step := 1 / (p.Portamento * 44100)
		if v.TargetPitch != 48 || math.Abs(v.Pitch-(69-step)) > 1e-9 {
			t.Fatalf("%s: pitch %g -> %g, want %g -> 48", when, v.Pitch, v.TargetPitch, 69-step)
		}
	}
	check("new engine")
	e.Reset()
	check("after Reset")
}

func TestInitializeChangesSampleRateInPlace(t *testing.T) {
	p := bass.DefaultParams()
	p.DelayMix = 0.5
	p.ReverbMix = 0.5
	events := []bass.Event{bass.NoteOnEvent(36, 1)}

	e := newEngine(t, 44100)
	render(e, 3000, events, p)
	if err := e.Initialize(48000); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if e.SampleRate() != 48000 || e.ActiveVoices() != 0 {
		t.Fatalf("after Initialize: rate %g, %d voices", e.SampleRate(), e.ActiveVoices())
	}

	gotL, gotR := render(e, 6000, events, p)
	wantL, wantR := render(newEngine(t, 48000), 6000, events, p)
	testutil.RequireSliceNearlyEqual(t, gotL, wantL, 0)
	testutil.RequireSliceNearlyEqual(t, gotR, wantR, 0)
}

func BenchmarkEngineProcess(b *testing.B) {
	e := newEngine(b, 48000)
	p := bass.DefaultParams()
	p.Unison = 8
	p.DelayMix = 0.3
	p.ReverbMix = 0.3
	l := make([]float64, 512)
	r := make([]float64, 512)
	events := []bass.Event{
		bass.NoteOnEvent(36, 1), bass.NoteOnEvent(43, 1),
		bass.NoteOnEvent(48, 1), bass.NoteOnEvent(55, 1),
	}
	e.Process(l, r, events, bass.Transport{}, p)

	b.ReportAllocs()
	b.SetBytes(int64(len(l)) * 16)
	for b.Loop() {
		e.Process(l, r, nil, bass.Transport{}, p)
	}
}
