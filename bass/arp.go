package bass

import (
	"fmt"
	"slices"
)

// MaxArpNotes is the capacity of the held-note stack.
const MaxArpNotes = 16

// ArpMode is the order in which held notes are played.
type ArpMode int

const (
	ArpUp ArpMode = iota
	ArpDown
	ArpUpDown
	ArpRandom
)

// String returns the mode name.
func (m ArpMode) String() string {
	switch m {
	case ArpUp:
		return "up"
	case ArpDown:
		return "down"
	case ArpUpDown:
		return "updown"
	case ArpRandom:
		return "random"
	default:
		return fmt.Sprintf("ArpMode(%d)", int(m))
	}
}

// arpBeats is the note length in beats for each rate index: 1/4, 1/8, 1/16
// and 1/32 notes.
var arpBeats = [...]float64{1, 0.5, 0.25, 0.125}

// ArpInterval returns the step length in seconds for rate index rate at
// bpm. Out-of-range rates are clamped.
func ArpInterval(rate int, bpm float64) float64 {
	rate = max(0, min(rate, len(arpBeats)-1))
	return arpBeats[rate] * 60 / bpm
}

// NoteSink receives the notes played by an Arpeggiator. *Pool satisfies it.
type NoteSink interface {
	NoteOn(note uint8, velocity float64) int
	NoteOff(note uint8) int
}

type arpNote struct {
	note     uint8
	velocity float64
}

// Arpeggiator steps through the held notes in ascending order, across up to
// four octaves, at a tempo-synced rate.
type Arpeggiator struct {
	notes   [MaxArpNotes]arpNote
	count   int
	cursor  int
	timer   float64
	playing uint8
	sound   bool
}

// Add inserts note into the stack. When the stack was empty the note plays
// immediately and the step timer restarts. Duplicates and overflow are
// ignored; Add reports whether the note was inserted.
func (a *Arpeggiator) Add(note uint8, velocity float64, sink NoteSink) bool {
	if a.count >= MaxArpNotes {
		return false
	}
	held := a.notes[:a.count]
	i, found := slices.BinarySearchFunc(held, note, func(n arpNote, t uint8) int {
		return int(n.note) - int(t)
	})
	if found {
		return false
	}
	copy(a.notes[i+1:a.count+1], a.notes[i:a.count])
	a.notes[i] = arpNote{note: note, velocity: velocity}
	a.count++

	if a.count == 1 {
		a.cursor = 0
		a.timer = 0
		sink.NoteOn(note, velocity)
		a.playing = note
		a.sound = true
	}
	return true
}

// Remove deletes note from the stack. When the stack empties, the playing
// note is released.
func (a *Arpeggiator) Remove(note uint8, sink NoteSink) bool {
	idx := -1
	for i := range a.count {
		if a.notes[i].note == note {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	copy(a.notes[idx:a.count-1], a.notes[idx+1:a.count])
	a.count--
	a.notes[a.count] = arpNote{}

	if a.count > 0 && a.cursor >= a.count {
		a.cursor = 0
	}
	if a.count == 0 {
		a.release(sink)
	}
	return true
}

// Next returns the next note and its velocity and advances the cursor.
// octaves is the number of octaves covered, at least 1. ok is false when
// the stack is empty.
func (a *Arpeggiator) Next(mode ArpMode, octaves int, rng *XorShift32) (note uint8, velocity float64, ok bool) {
	if a.count == 0 {
		return 0, 0, false
	}
	octaves = max(octaves, 1)
	total := a.count * octaves

	var step int
	switch mode {
	case ArpDown:
		step = total - 1 - a.cursor%total
		a.cursor = (a.cursor + 1) % total
	case ArpUpDown:
		cycle := 1
		if total > 1 {
			cycle = 2*total - 2
		}
		pos := a.cursor % cycle
		step = pos
		if pos >= total {
			step = 2*total - 2 - pos
		}
		a.cursor = (a.cursor + 1) % cycle
	case ArpRandom:
		step = int(rng.Next() % uint32(total))
	default:
		step = a.cursor % total
		a.cursor = (a.cursor + 1) % total
	}

	n := a.notes[step%a.count]
	return transpose(n.note, 12*(step/a.count)), n.velocity, true
}

// Tick advances the step timer by dt seconds. Each time it passes interval
// the playing note is released and the next one starts on sink.
func (a *Arpeggiator) Tick(dt, interval float64, mode ArpMode, octaves int, rng *XorShift32, sink NoteSink) {
	if a.count == 0 {
		return
	}
	a.timer += dt
	if a.timer < interval {
		return
	}
	a.timer -= interval
	a.release(sink)
	if note, vel, ok := a.Next(mode, octaves, rng); ok {
		sink.NoteOn(note, vel)
		a.playing = note
		a.sound = true
	}
}

// Stop releases the playing note and clears the stack.
func (a *Arpeggiator) Stop(sink NoteSink) {
	a.release(sink)
	a.Reset()
}

// Reset clears the stack without touching any voice.
func (a *Arpeggiator) Reset() {
	*a = Arpeggiator{}
}

// Len returns the number of held notes.
func (a *Arpeggiator) Len() int { return a.count }

// Notes appends the held notes in ascending order to dst.
func (a *Arpeggiator) Notes(dst []uint8) []uint8 {
	for i := range a.count {
		dst = append(dst, a.notes[i].note)
	}
	return dst
}

// Playing returns the note currently sounding, if any.
func (a *Arpeggiator) Playing() (uint8, bool) { return a.playing, a.sound }

func (a *Arpeggiator) release(sink NoteSink) {
	if a.sound {
		sink.NoteOff(a.playing)
		a.sound = false
	}
}

func transpose(note uint8, semitones int) uint8 {
	return uint8(min(int(note)+semitones, MaxNote))
}
