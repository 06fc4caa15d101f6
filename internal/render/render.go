// Package render drives an engine offline from a simple note score and
// writes the result as a WAV file.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-bass/bass"
	"github.com/cwbudde/algo-bass/dsp/core"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Score is a chord held for Gate seconds inside a rendering Length seconds
// long.
type Score struct {
	Notes    []uint8
	Velocity float64
	Gate     float64
	Length   float64
	Tempo    float64
}

// Validate reports the first invalid field.
func (s Score) Validate() error {
	switch {
	case len(s.Notes) == 0:
		return errors.New("render: score has no notes")
	case s.Length <= 0 || math.IsNaN(s.Length):
		return fmt.Errorf("render: length must be > 0: %f", s.Length)
	case s.Gate < 0 || s.Gate > s.Length:
		return fmt.Errorf("render: gate must be within [0, length]: %f", s.Gate)
	case s.Velocity <= 0 || s.Velocity > 1:
		return fmt.Errorf("render: velocity must be in (0, 1]: %f", s.Velocity)
	}
	return nil
}

// Render plays s on e with parameters p in blocks of block frames and
// returns both channels. Note-ons land on the first frame and note-offs on
// the first block boundary at or after the gate time.
func Render(e *bass.Engine, p bass.Params, s Score, block int) ([]float64, []float64, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	if block <= 0 {
		block = core.DefaultProcessorConfig().BlockSize
	}
	sr := e.SampleRate()
	total := int(math.Ceil(s.Length * sr))
	gate := int(math.Round(s.Gate * sr))
	tr := bass.Transport{Tempo: s.Tempo}

	left := make([]float64, total)
	right := make([]float64, total)
	events := make([]bass.Event, 0, len(s.Notes))
	for _, n := range s.Notes {
		events = append(events, bass.NoteOnEvent(n, s.Velocity))
	}

	released := false
	for off := 0; off < total; off += block {
		if !released && off >= gate && off > 0 {
			for _, n := range s.Notes {
				events = append(events, bass.NoteOffEvent(n))
			}
			released = true
		}
		end := min(off+block, total)
		e.Process(left[off:end], right[off:end], events, tr, p)
		events = events[:0]
	}
	return left, right, nil
}

// ParseNotes reads a comma-separated list of MIDI note numbers.
func ParseNotes(list string) ([]uint8, error) {
	var notes []uint8
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("render: note %q: %w", f, err)
		}
		if n < 0 || n > bass.MaxNote {
			return nil, fmt.Errorf("render: note %d out of range [0, %d]", n, bass.MaxNote)
		}
		notes = append(notes, uint8(n))
	}
	if len(notes) == 0 {
		return nil, errors.New("render: empty note list")
	}
	return notes, nil
}

// WriteWAV encodes a stereo 16-bit PCM WAV file.
func WriteWAV(w io.WriteSeeker, sampleRate int, left, right []float64) error {
	if len(left) != len(right) {
		return fmt.Errorf("render: channel length mismatch: %d vs %d", len(left), len(right))
	}
	const (
		bitDepth = 16
		channels = 2
		pcm      = 1
		fullTS   = 32767
	)
	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, pcm)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, 2*len(left)),
		SourceBitDepth: bitDepth,
	}
	for i := range left {
		buf.Data[2*i] = int(core.Clamp(left[i], -1, 1) * fullTS)
		buf.Data[2*i+1] = int(core.Clamp(right[i], -1, 1) * fullTS)
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("render: wav write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render: wav close: %w", err)
	}
	return nil
}
