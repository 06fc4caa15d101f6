package preset

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrNotFound is returned when no preset matches a name or index.
var ErrNotFound = errors.New("preset: not found")

// Bank is an ordered preset collection with a current selection. It is safe
// for concurrent use: the selection is an atomic index and the collection is
// guarded by a read-write lock.
type Bank struct {
	mu      sync.RWMutex
	presets []Preset
	current atomic.Int64
}

// NewBank returns a bank holding the factory presets with Init selected.
func NewBank() *Bank {
	return &Bank{presets: Factory()}
}

// Len returns the number of presets.
func (b *Bank) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.presets)
}

// List returns a copy of all presets in order.
func (b *Bank) List() []Preset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.presets)
}

// Get returns preset i.
func (b *Bank) Get(i int) (Preset, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.presets) {
		return Preset{}, fmt.Errorf("%w: index %d", ErrNotFound, i)
	}
	return b.presets[i], nil
}

// Index returns the current selection.
func (b *Bank) Index() int { return int(b.current.Load()) }

// Current returns the selected preset, falling back to Init when the
// selection is stale.
func (b *Bank) Current() Preset {
	p, err := b.Get(b.Index())
	if err != nil {
		return Preset{Name: "Init", Category: Init, Params: Factory()[0].Params}
	}
	return p
}

// Select makes preset i current and returns it.
func (b *Bank) Select(i int) (Preset, error) {
	p, err := b.Get(i)
	if err != nil {
		return Preset{}, err
	}
	b.current.Store(int64(i))
	return p, nil
}

// Find returns the index of the first preset called name, ignoring case.
func (b *Bank) Find(name string) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i, p := range b.presets {
		if strings.EqualFold(p.Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// SelectName selects the preset called name.
func (b *Bank) SelectName(name string) (Preset, error) {
	i, err := b.Find(name)
	if err != nil {
		return Preset{}, err
	}
	return b.Select(i)
}

// ByCategory returns the indices of presets in category c.
func (b *Bank) ByCategory(c Category) []int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var idx []int
	for i, p := range b.presets {
		if p.Category == c {
			idx = append(idx, i)
		}
	}
	return idx
}

// Add stores p as a user preset, replacing a user preset with the same name,
// selects it and returns its index.
func (b *Bank) Add(p Preset) (int, error) {
	if strings.TrimSpace(p.Name) == "" {
		return -1, errors.New("preset: empty name")
	}
	p.Category = User
	p.Params = p.Params.Clamped()

	b.mu.Lock()
	i := b.userIndex(p.Name)
	if i >= 0 {
		b.presets[i] = p
	} else {
		i = len(b.presets)
		b.presets = append(b.presets, p)
	}
	b.mu.Unlock()

	b.current.Store(int64(i))
	return i, nil
}

// Remove deletes the user preset called name. Factory presets cannot be
// removed. The selection moves back to Init when it pointed at or past the
// removed preset.
func (b *Bank) Remove(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.userIndex(name)
	if i < 0 {
		return fmt.Errorf("%w: user preset %q", ErrNotFound, name)
	}
	b.presets = slices.Delete(b.presets, i, i+1)
	if int(b.current.Load()) >= i {
		b.current.Store(0)
	}
	return nil
}

// ReplaceUser swaps every user preset for users, keeping factory presets.
// The selection resets to Init if it pointed at a user preset.
func (b *Bank) ReplaceUser(users []Preset) {
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := slices.DeleteFunc(b.presets, func(p Preset) bool { return p.Category == User })
	if int(b.current.Load()) >= len(kept) {
		b.current.Store(0)
	}
	for _, u := range users {
		u.Category = User
		kept = append(kept, u)
	}
	b.presets = kept
}

// User returns the user presets.
func (b *Bank) User() []Preset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []Preset
	for _, p := range b.presets {
		if p.Category == User {
			out = append(out, p)
		}
	}
	return out
}

func (b *Bank) userIndex(name string) int {
	for i, p := range b.presets {
		if p.Category == User && strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}
