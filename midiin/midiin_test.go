package midiin

import (
	"testing"

	"github.com/cwbudde/algo-bass/bass"
	"gitlab.com/gomidi/midi/v2"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		msg  midi.Message
		want bass.Event
		ok   bool
	}{
		{"note on", midi.NoteOn(0, 60, 127), bass.NoteOnEvent(60, 1), true},
		{"note on half", midi.NoteOn(3, 36, 0x40), bass.NoteOnEvent(36, 64.0/127), true},
		{"zero velocity", midi.NoteOn(0, 48, 0), bass.NoteOffEvent(48), true},
		{"note off", midi.NoteOff(9, 72), bass.NoteOffEvent(72), true},
		{"control change", midi.ControlChange(0, 74, 10), bass.Event{}, false},
		{"pitch bend", midi.Pitchbend(0, 100), bass.Event{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Decode(tc.msg)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Decode = %+v, %v; want %+v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestQueueDrain(t *testing.T) {
	q := NewQueue(8)
	q.PushMessage(midi.NoteOn(0, 40, 100))
	q.PushMessage(midi.ControlChange(0, 1, 1))
	q.Push(bass.NoteOffEvent(40))

	buf := make([]bass.Event, 0, 8)
	got := q.Drain(buf)
	if len(got) != 2 || got[0].Kind != bass.NoteOn || got[1].Kind != bass.NoteOff {
		t.Fatalf("Drain = %+v", got)
	}
	if &got[:1][0] != &buf[:1][0] {
		t.Fatal("Drain did not reuse the destination buffer")
	}
	if q.Len() != 0 || len(q.Drain(got)) != 0 {
		t.Fatal("queue not empty after Drain")
	}
}

func TestQueueDropsNewestWhenFull(t *testing.T) {
	q := NewQueue(2)
	for i := range 5 {
		q.Push(bass.NoteOnEvent(uint8(30+i), 1))
	}
	if q.Dropped() != 3 {
		t.Fatalf("Dropped = %d", q.Dropped())
	}
	got := q.Drain(nil)
	if len(got) != 2 || got[0].Note != 30 || got[1].Note != 31 {
		t.Fatalf("kept %+v", got)
	}
	if !q.Push(bass.NoteOnEvent(50, 1)) {
		t.Fatal("push after drain rejected")
	}
}

func TestQueueChannelFilter(t *testing.T) {
	q := NewQueue(0)
	q.SetChannel(2)
	if q.PushMessage(midi.NoteOn(0, 60, 90)) {
		t.Fatal("accepted a message on channel 0")
	}
	if !q.PushMessage(midi.NoteOn(2, 60, 90)) {
		t.Fatal("rejected a message on channel 2")
	}
	q.SetChannel(Omni)
	if !q.PushMessage(midi.NoteOff(15, 60)) {
		t.Fatal("omni rejected channel 15")
	}
}

func TestQueueFeedsEngine(t *testing.T) {
	q := NewQueue(16)
	q.PushMessage(midi.NoteOn(0, 45, 127))
	q.PushMessage(midi.NoteOn(0, 52, 64))

	e, err := bass.New()
	if err != nil {
		t.Fatal(err)
	}
	l := make([]float64, 64)
	r := make([]float64, 64)
	events := q.Drain(make([]bass.Event, 0, 16))
	e.Process(l, r, events, bass.Transport{}, bass.DefaultParams())
	if e.ActiveVoices() != 2 {
		t.Fatalf("ActiveVoices = %d", e.ActiveVoices())
	}
}
