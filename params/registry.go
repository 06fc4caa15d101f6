// Package params is the synchronized parameter store shared by a host's
// control surfaces and its audio goroutine.
//
// Writers (UI, MIDI CC mapping, preset loads, remote tools) go through Set or
// Apply; the audio goroutine reads a value snapshot once per block.
package params

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/cwbudde/algo-bass/bass"
	"github.com/cwbudde/algo-bass/dsp/core"
)

// ErrUnknownParam is returned for identifiers not in bass.ParamSpecs.
var ErrUnknownParam = errors.New("params: unknown parameter")

// Registry holds the current parameter values.
type Registry struct {
	mu     sync.RWMutex
	values bass.Params
	specs  map[string]bass.ParamSpec
}

// NewRegistry returns a registry holding the default patch.
func NewRegistry() *Registry {
	specs := make(map[string]bass.ParamSpec, len(bass.ParamSpecs()))
	for _, s := range bass.ParamSpecs() {
		specs[s.ID] = s
	}
	return &Registry{values: bass.DefaultParams(), specs: specs}
}

// Spec returns the descriptor for id.
func (r *Registry) Spec(id string) (bass.ParamSpec, error) {
	s, ok := r.specs[id]
	if !ok {
		return bass.ParamSpec{}, fmt.Errorf("%w: %q", ErrUnknownParam, id)
	}
	return s, nil
}

// Names returns all parameter identifiers in display order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for _, s := range bass.ParamSpecs() {
		names = append(names, s.ID)
	}
	return names
}

// Get returns the current value of id.
func (r *Registry) Get(id string) (float64, error) {
	s, err := r.Spec(id)
	if err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return s.Get(&r.values), nil
}

// Set clamps v into id's range, stores it and returns the stored value.
func (r *Registry) Set(id string, v float64) (float64, error) {
	s, err := r.Spec(id)
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return s.Set(&r.values, v), nil
}

// Normalized returns id's value mapped to [0, 1] by its scale.
func (r *Registry) Normalized(id string) (float64, error) {
	s, err := r.Spec(id)
	if err != nil {
		return 0, err
	}
	r.mu.RLock()
	v := s.Get(&r.values)
	r.mu.RUnlock()
	return Normalize(s, v), nil
}

// SetNormalized sets id from a [0, 1] position and returns the stored
// value.
func (r *Registry) SetNormalized(id string, n float64) (float64, error) {
	s, err := r.Spec(id)
	if err != nil {
		return 0, err
	}
	return r.Set(id, Denormalize(s, n))
}

// Snapshot returns a copy of the current values.
func (r *Registry) Snapshot() bass.Params {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values
}

// Apply replaces every value with p, clamped.
func (r *Registry) Apply(p bass.Params) {
	p = p.Clamped()
	r.mu.Lock()
	r.values = p
	r.mu.Unlock()
}

// Normalize maps v into [0, 1] using s's scale.
func Normalize(s bass.ParamSpec, v float64) float64 {
	v = s.Clamp(v)
	var n float64
	switch s.Scale {
	case bass.ScaleLog:
		n = math.Log(v/s.Min) / math.Log(s.Max/s.Min)
	case bass.ScaleSqrt:
		n = math.Sqrt(v / s.Max)
	default:
		n = (v - s.Min) / (s.Max - s.Min)
	}
	return core.Clamp(n, 0, 1)
}

// Denormalize is the inverse of Normalize. The result is clamped and, for
// integer parameters, rounded.
func Denormalize(s bass.ParamSpec, n float64) float64 {
	if math.IsNaN(n) {
		return s.Default
	}
	n = core.Clamp(n, 0, 1)
	var v float64
	switch s.Scale {
	case bass.ScaleLog:
		v = s.Min * math.Pow(s.Max/s.Min, n)
	case bass.ScaleSqrt:
		v = n * n * s.Max
	default:
		v = s.Min + n*(s.Max-s.Min)
	}
	return s.Clamp(v)
}

// Changed returns the identifiers whose values differ between a and b.
func Changed(a, b bass.Params) []string {
	var ids []string
	for _, s := range bass.ParamSpecs() {
		if s.Get(&a) != s.Get(&b) {
			ids = append(ids, s.ID)
		}
	}
	return slices.Clip(ids)
}
