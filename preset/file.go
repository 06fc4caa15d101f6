package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	// FormatName identifies preset documents.
	FormatName = "algo-bass-presets"
	// FormatVersion is written into every saved document.
	FormatVersion = "1.0.0"
	// Ext is the preset file extension.
	Ext = ".json"
)

// supportedVersions is the range of document versions Decode accepts.
const supportedVersions = "^1"

// ErrIncompatibleVersion is returned for documents outside the supported
// version range.
var ErrIncompatibleVersion = errors.New("preset: incompatible document version")

type document struct {
	Format  string   `json:"format"`
	Version string   `json:"version"`
	Presets []Preset `json:"presets"`
}

// Encode writes presets as an indented JSON document.
func Encode(w io.Writer, presets []Preset) error {
	doc := document{Format: FormatName, Version: FormatVersion, Presets: presets}
	if doc.Presets == nil {
		doc.Presets = []Preset{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("preset: encode: %w", err)
	}
	return nil
}

// Decode reads a preset document and checks its format and version.
func Decode(r io.Reader) ([]Preset, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("preset: decode: %w", err)
	}
	if doc.Format != FormatName {
		return nil, fmt.Errorf("preset: unexpected format %q", doc.Format)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	return doc.Presets, nil
}

func checkVersion(v string) error {
	c, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("preset: constraint: %w", err)
	}
	sv, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrIncompatibleVersion, v, err)
	}
	if !c.Check(sv) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrIncompatibleVersion, sv, supportedVersions)
	}
	return nil
}

// Save writes the bank's user presets to w.
func (b *Bank) Save(w io.Writer) error {
	return Encode(w, b.User())
}

// Load decodes a document from r and adds every preset in it as a user
// preset. It returns the number of presets added.
func (b *Bank) Load(r io.Reader) (int, error) {
	presets, err := Decode(r)
	if err != nil {
		return 0, err
	}
	for _, p := range presets {
		if _, err := b.Add(p); err != nil {
			return 0, err
		}
	}
	return len(presets), nil
}

// SaveFile writes the user presets to path, replacing it atomically.
func (b *Bank) SaveFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".presets-*")
	if err != nil {
		return fmt.Errorf("preset: save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := b.Save(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("preset: save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("preset: save: %w", err)
	}
	return nil
}

// LoadDir reads every *.json document in dir, in name order, and replaces
// the bank's user presets with their contents. Later files win on name
// clashes. Unreadable files are skipped and reported together in the
// returned error; the presets that did load are still applied.
func (b *Bank) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("preset: load dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), Ext) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var (
		users []Preset
		errs  []error
		index = map[string]int{}
	)
	for _, name := range names {
		presets, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, p := range presets {
			key := strings.ToLower(p.Name)
			if i, ok := index[key]; ok {
				users[i] = p
				continue
			}
			index[key] = len(users)
			users = append(users, p)
		}
	}
	b.ReplaceUser(users)
	return len(users), errors.Join(errs...)
}

func decodeFile(path string) ([]Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	presets, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return presets, nil
}
