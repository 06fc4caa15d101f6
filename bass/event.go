package bass

import "math"

// EventKind distinguishes note events.
type EventKind uint8

const (
	NoteOn EventKind = iota + 1
	NoteOff
)

// String returns the kind name.
func (k EventKind) String() string {
	switch k {
	case NoteOn:
		return "note-on"
	case NoteOff:
		return "note-off"
	default:
		return "unknown"
	}
}

// MaxNote is the highest valid MIDI note number.
const MaxNote = 127

// Event is a note event delivered to the engine before a block renders.
// Velocity is ignored for NoteOff.
type Event struct {
	Kind     EventKind
	Note     uint8
	Velocity float64
}

// NoteOnEvent returns a note-on event.
func NoteOnEvent(note uint8, velocity float64) Event {
	return Event{Kind: NoteOn, Note: note, Velocity: velocity}
}

// NoteOffEvent returns a note-off event.
func NoteOffEvent(note uint8) Event {
	return Event{Kind: NoteOff, Note: note}
}

// DefaultTempo is used when the host reports no usable tempo.
const DefaultTempo = 120.0

// Transport is the host's per-block timing information.
type Transport struct {
	Tempo float64 // beats per minute; <= 0 selects DefaultTempo
}

// BPM returns the effective tempo.
func (t Transport) BPM() float64 {
	if t.Tempo <= 0 || math.IsNaN(t.Tempo) || math.IsInf(t.Tempo, 0) {
		return DefaultTempo
	}
	return t.Tempo
}
