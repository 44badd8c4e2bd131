// Package keysheet reads daily key lists in YAML.
//
//	days:
//	  - day: 1
//	    reflector: B
//	    rotors: [I, II, III]
//	    rings: [1, 1, 1]
//	    positions: [A, D, U]
//	    plugboard: "AB CD EF"
//
// Ring and position settings are given the way operators wrote them:
// either a letter or a number from 1 to 26.
package keysheet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"enigma/internal/machine"
)

// Sheet is a parsed key list.
type Sheet struct {
	Days []Entry `yaml:"days"`
}

// Entry is the machine setting for one day.
type Entry struct {
	Day       int       `yaml:"day"`
	Reflector string    `yaml:"reflector"`
	Rotors    []string  `yaml:"rotors"`
	Rings     []Setting `yaml:"rings"`
	Positions []Setting `yaml:"positions"`
	Plugboard string    `yaml:"plugboard"`
}

// Setting is a 0-based ring or position value.
type Setting int

func (s *Setting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: setting must be a letter or a number", node.Line)
	}
	v, err := ParseSetting(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*s = v
	return nil
}

// MarshalYAML writes the setting as its letter.
func (s Setting) MarshalYAML() (interface{}, error) {
	if s < 0 || s > 25 {
		return nil, fmt.Errorf("setting %d out of range 0-25", int(s))
	}
	return string(rune('A' + int(s))), nil
}

// ParseSetting accepts "A".."Z" (any case) or "1".."26".
func ParseSetting(v string) (Setting, error) {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		if n < 1 || n > 26 {
			return 0, fmt.Errorf("setting %d out of range 1-26", n)
		}
		return Setting(n - 1), nil
	}
	if len(v) == 1 {
		c := v[0] &^ 0x20
		if c >= 'A' && c <= 'Z' {
			return Setting(c - 'A'), nil
		}
	}
	return 0, fmt.Errorf("invalid setting %q", v)
}

func Load(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Parse(r io.Reader) (*Sheet, error) {
	var s Sheet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty key sheet")
		}
		return nil, fmt.Errorf("decode key sheet: %w", err)
	}
	if len(s.Days) == 0 {
		return nil, errors.New("key sheet has no days")
	}
	seen := make(map[int]bool, len(s.Days))
	for _, e := range s.Days {
		if seen[e.Day] {
			return nil, fmt.Errorf("day %d listed twice", e.Day)
		}
		seen[e.Day] = true
	}
	return &s, nil
}

// Entry picks the setting for day. Day 0 selects the only entry of a
// single-day sheet.
func (s *Sheet) Entry(day int) (Entry, error) {
	if day == 0 {
		if len(s.Days) != 1 {
			return Entry{}, fmt.Errorf("key sheet has %d days, pick one", len(s.Days))
		}
		return s.Days[0], nil
	}
	for _, e := range s.Days {
		if e.Day == day {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("day %d not in key sheet", day)
}

// Config turns the entry into a machine configuration.
func (e Entry) Config() (machine.Config, error) {
	ids, err := machine.RotorIndexes(e.Rotors)
	if err != nil {
		return machine.Config{}, fmt.Errorf("day %d: %w", e.Day, err)
	}
	pairs, err := machine.ParsePairs(e.Plugboard)
	if err != nil {
		return machine.Config{}, fmt.Errorf("day %d: %w", e.Day, err)
	}
	return machine.Config{
		Rotors:       ids,
		Positions:    ints(e.Positions),
		RingSettings: ints(e.Rings),
		Reflector:    e.Reflector,
		Plugboard:    pairs,
	}, nil
}

func ints(s []Setting) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = int(v)
	}
	return out
}
