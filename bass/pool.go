package bass

import (
	"github.com/cwbudde/algo-bass/dsp/envelope"
	"github.com/cwbudde/algo-bass/dsp/lfo"
)

// MaxVoices is the polyphony of a Pool.
const MaxVoices = 16

// initialPitch seeds the glide memory with A4, untransposed.
const initialPitch = 69

// Pool is a fixed set of voices. Allocation takes the first inactive slot
// and otherwise steals slot 0.
//
// Every new voice glides from the previous note's target pitch, so
// portamento spans the whole pool.
type Pool struct {
	voices     [MaxVoices]Voice
	lastTarget float64
}

// NewPool returns an idle pool.
func NewPool() *Pool {
	p := &Pool{}
	p.Reset()
	return p
}

// NoteOn starts note on a free voice, or on slot 0 when none is free, and
// returns the slot used.
func (p *Pool) NoteOn(note uint8, velocity float64) int {
	slot := 0
	for i := range p.voices {
		if !p.voices[i].active {
			slot = i
			break
		}
	}
	v := &p.voices[slot]
	v.start(note, velocity, p.lastTarget)
	p.lastTarget = v.target
	return slot
}

// NoteOff releases every active voice playing note and returns how many
// were released.
func (p *Pool) NoteOff(note uint8) int {
	n := 0
	for i := range p.voices {
		v := &p.voices[i]
		if v.active && v.note == note && v.env.Stage() != envelope.Release {
			v.release()
			n++
		}
	}
	return n
}

// ActiveCount returns the number of sounding voices.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.voices {
		if p.voices[i].active {
			n++
		}
	}
	return n
}

// Voice returns a view of slot i.
func (p *Pool) Voice(i int) VoiceState {
	return p.voices[i].state()
}

// Reset silences every voice and restores the glide memory.
func (p *Pool) Reset() {
	p.voices = [MaxVoices]Voice{}
	p.lastTarget = initialPitch
}

func (p *Pool) render(s *voiceSettings, mod lfo.Modulation) float64 {
	var sum float64
	for i := range p.voices {
		if p.voices[i].active {
			sum += p.voices[i].render(s, mod)
		}
	}
	return sum
}
