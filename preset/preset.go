// Package preset holds named parameter patches: the factory set, user
// additions, a JSON file format and a directory watcher that reloads user
// presets when files change.
package preset

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-bass/bass"
)

// Category groups presets by character.
type Category int

const (
	Init Category = iota
	Sub
	Fat
	Acid
	Wobble
	Growl
	Clean
	User
)

var categoryNames = [...]string{"Init", "Sub", "Fat", "Acid", "Wobble", "Growl", "Clean", "User"}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Init, Sub, Fat, Acid, Wobble, Growl, Clean, User}
}

// String returns the category's display name.
func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory looks up a category by display name, ignoring case.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("preset: unknown category %q", name)
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("preset: invalid category %d", int(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText decodes a category name.
func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Preset is a named patch.
type Preset struct {
	Name     string      `json:"name"`
	Category Category    `json:"category"`
	Params   bass.Params `json:"params"`
}

// ApplyTo returns cur with the preset's sound loaded. The arpeggiator
// settings and master gain of cur are kept.
func (p Preset) ApplyTo(cur bass.Params) bass.Params {
	out := p.Params
	out.ArpOn = cur.ArpOn
	out.ArpMode = cur.ArpMode
	out.ArpRate = cur.ArpRate
	out.ArpOctaves = cur.ArpOctaves
	out.MasterGain = cur.MasterGain
	return out.Clamped()
}

// UnmarshalJSON fills fields missing from the document with the init patch
// before clamping, so older files load with sensible values.
func (p *Preset) UnmarshalJSON(b []byte) error {
	type raw Preset
	r := raw{Params: bass.DefaultParams()}
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("preset: missing name")
	}
	r.Params = r.Params.Clamped()
	*p = Preset(r)
	return nil
}
