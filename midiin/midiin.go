// Package midiin turns incoming MIDI messages into engine note events and
// hands them from the MIDI listener goroutine to the audio goroutine.
package midiin

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cwbudde/algo-bass/bass"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Omni accepts messages on every channel.
const Omni = -1

// Decode converts a note message into an event. Note-on with velocity 0 is
// a note-off. Velocity is scaled to [0, 1]. Other messages report false.
func Decode(msg midi.Message) (bass.Event, bool) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		return bass.NoteOnEvent(key, float64(vel)/127), true
	case msg.GetNoteEnd(&ch, &key):
		return bass.NoteOffEvent(key), true
	default:
		return bass.Event{}, false
	}
}

// DefaultCapacity is the queue size used by NewQueue for capacity <= 0.
const DefaultCapacity = 256

// Queue buffers events between a MIDI listener and the audio goroutine.
// Pushes beyond capacity are dropped and counted.
type Queue struct {
	mu      sync.Mutex
	events  []bass.Event
	channel int
	dropped uint64
}

// NewQueue returns an omni queue holding up to capacity events.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{events: make([]bass.Event, 0, capacity), channel: Omni}
}

// SetChannel restricts PushMessage to one MIDI channel in [0, 15], or Omni.
func (q *Queue) SetChannel(ch int) {
	q.mu.Lock()
	q.channel = ch
	q.mu.Unlock()
}

// Push appends ev, or drops it when the queue is full.
func (q *Queue) Push(ev bass.Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == cap(q.events) {
		q.dropped++
		return false
	}
	q.events = append(q.events, ev)
	return true
}

// PushMessage decodes msg and pushes the resulting event. Messages that are
// not notes, or are on another channel, are ignored.
func (q *Queue) PushMessage(msg midi.Message) bool {
	var ch uint8
	if !msg.GetChannel(&ch) {
		return false
	}
	q.mu.Lock()
	want := q.channel
	q.mu.Unlock()
	if want != Omni && int(ch) != want {
		return false
	}
	ev, ok := Decode(msg)
	if !ok {
		return false
	}
	return q.Push(ev)
}

// Drain moves all queued events into dst[:0] and returns it. It does not
// allocate when dst has enough capacity.
func (q *Queue) Drain(dst []bass.Event) []bass.Event {
	q.mu.Lock()
	dst = append(dst[:0], q.events...)
	q.events = q.events[:0]
	q.mu.Unlock()
	return dst
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Dropped returns how many events were discarded because the queue was full.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// FindInPort returns the first input port whose name contains fragment,
// ignoring case. A driver must be registered by the caller.
func FindInPort(fragment string) (drivers.In, error) {
	ins := midi.GetInPorts()
	if len(ins) == 0 {
		return nil, fmt.Errorf("midiin: no MIDI inputs available")
	}
	lower := strings.ToLower(fragment)
	for _, in := range ins {
		if strings.Contains(strings.ToLower(in.String()), lower) {
			return in, nil
		}
	}
	return nil, fmt.Errorf("midiin: no MIDI input contains %q", fragment)
}

// Listen feeds every message from in into q until stop is called. Listener
// errors go to onError, which may be nil.
func Listen(in drivers.In, q *Queue, onError func(error)) (stop func(), err error) {
	opts := []midi.Option{}
	if onError != nil {
		opts = append(opts, midi.HandleError(onError))
	}
	stop, err = midi.ListenTo(in, func(msg midi.Message, _ int32) {
		q.PushMessage(msg)
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("midiin: listen on %s: %w", in, err)
	}
	return stop, nil
}
