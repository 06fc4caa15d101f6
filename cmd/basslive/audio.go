package main

import (
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-bass/bass"
	"github.com/cwbudde/algo-bass/midiin"
	"github.com/cwbudde/algo-bass/params"
)

const bytesPerFrame = 2 * 4 // stereo float32

// synth renders the engine on demand for the audio device. Read runs on
// the device goroutine and is the only caller of the engine.
type synth struct {
	engine *bass.Engine
	reg    *params.Registry
	queue  *midiin.Queue
	tempo  atomic.Uint64 // math.Float64bits of the BPM

	events []bass.Event
	buf    []float32
}

func newSynth(e *bass.Engine, reg *params.Registry, q *midiin.Queue, bpm float64) *synth {
	s := &synth{
		engine: e,
		reg:    reg,
		queue:  q,
		events: make([]bass.Event, 0, midiin.DefaultCapacity),
	}
	s.setTempo(bpm)
	return s
}

func (s *synth) setTempo(bpm float64) { s.tempo.Store(math.Float64bits(bpm)) }

func (s *synth) transport() bass.Transport {
	return bass.Transport{Tempo: math.Float64frombits(s.tempo.Load())}
}

// Read implements io.Reader for oto.Player.
func (s *synth) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(s.buf) < 2*frames {
		s.buf = make([]float32, 2*frames)
	}
	buf := s.buf[:2*frames]

	s.events = s.queue.Drain(s.events[:0])
	s.engine.ProcessInterleaved(buf, s.events, s.transport(), s.reg.Snapshot())

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(v))
	}
	return frames * bytesPerFrame, nil
}

// output owns the oto context and the single player streaming the synth.
type output struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	started bool
}

func newOutput(sampleRate, bufferFrames int) (*output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   frameDuration(bufferFrames, sampleRate),
	})
	if err != nil {
		return nil, err
	}
	<-ready
	return &output{ctx: ctx}, nil
}

func (o *output) Start(s *synth) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.started {
		return
	}
	o.player = o.ctx.NewPlayer(s)
	o.player.Play()
	o.started = true
}

func (o *output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player == nil {
		return nil
	}
	err := o.player.Close()
	o.player = nil
	o.started = false
	return err
}
