// Package machine emulates a three-rotor Enigma: rotor stepping with the
// double-step anomaly, a fixed reflector and a plugboard.
//
// A Machine is owned by one caller. Identically configured machines are
// each other's inverse, so the same settings encrypt and decrypt.
package machine

import (
	"fmt"
	"strings"
)

// Config selects rotors from the catalog and sets them up.
// Rotors, Positions and RingSettings are ordered left (slowest) to right
// (fastest). Positions and RingSettings are 0-based and reduced modulo 26;
// nil means all zero.
type Config struct {
	Rotors       []int
	Positions    []int
	RingSettings []int
	Reflector    string
	Plugboard    []Pair
}

type Machine struct {
	rotors    [3]*Rotor
	reflector reflector
	plugboard Plugboard
	start     [3]int
}

func New(cfg Config) (*Machine, error) {
	if len(cfg.Rotors) != 3 {
		return nil, fmt.Errorf("%w, got %d", ErrRotorCount, len(cfg.Rotors))
	}
	positions, err := triple("rotor positions", cfg.Positions)
	if err != nil {
		return nil, err
	}
	rings, err := triple("ring settings", cfg.RingSettings)
	if err != nil {
		return nil, err
	}

	refl, err := newReflector(cfg.Reflector)
	if err != nil {
		return nil, err
	}
	pb, err := NewPlugboard(cfg.Plugboard)
	if err != nil {
		return nil, err
	}

	m := &Machine{reflector: refl, plugboard: pb}
	for i, id := range cfg.Rotors {
		r, err := newCatalogRotor(id, positions[i], rings[i])
		if err != nil {
			return nil, err
		}
		m.rotors[i] = r
		m.start[i] = r.position
	}
	return m, nil
}

func triple(what string, v []int) ([3]int, error) {
	var out [3]int
	switch len(v) {
	case 0:
	case 3:
		copy(out[:], v)
	default:
		return out, fmt.Errorf("%s: want 3 values, got %d", what, len(v))
	}
	return out, nil
}

// Rotor returns rotor i, 0 being the leftmost.
func (m *Machine) Rotor(i int) *Rotor { return m.rotors[i] }

func (m *Machine) Plugboard() Plugboard { return m.plugboard }

// Positions reports the current 0-based rotor positions, left to right.
func (m *Machine) Positions() []int {
	return []int{m.rotors[0].position, m.rotors[1].position, m.rotors[2].position}
}

// Window shows the letters visible in the rotor windows, e.g. "ADU".
func (m *Machine) Window() string {
	return string([]byte{m.rotors[0].Window(), m.rotors[1].Window(), m.rotors[2].Window()})
}

// Reset puts the rotors back to their configured starting positions.
func (m *Machine) Reset() {
	for i, r := range m.rotors {
		r.position = m.start[i]
	}
}

func (m *Machine) rotateRotors() {
	left, middle, right := m.rotors[0], m.rotors[1], m.rotors[2]
	if middle.AtNotch() {
		middle.Step()
		left.Step()
	} else if right.AtNotch() {
		middle.Step()
	}
	right.Step()
}

// encode runs one letter index through the wiring without stepping.
func (m *Machine) encode(i byte) byte {
	c := m.plugboard.Swap(i+'A') - 'A'
	for j := 2; j >= 0; j-- {
		c = m.rotors[j].forward(c)
	}
	c = m.reflector[c]
	for j := 0; j < 3; j++ {
		c = m.rotors[j].backward(c)
	}
	return m.plugboard.Swap(c+'A')
}

// encryptByte steps and enciphers an ASCII letter. Any other byte is
// returned as is and leaves the rotors alone.
func (m *Machine) encryptByte(c byte) byte {
	if !isLetter(c) {
		return c
	}
	m.rotateRotors()
	return m.encode(toUpper(c) - 'A')
}

// EncryptChar enciphers one character. Letters are upper-cased first;
// anything outside A-Z passes through without stepping the rotors.
func (m *Machine) EncryptChar(c rune) rune {
	if c < 0 || c > 'z' {
		return c
	}
	return rune(m.encryptByte(byte(c)))
}

// Process enciphers s. The output has the same length as s and the rotors
// stay where the last letter left them, so calls can be chained.
func (m *Machine) Process(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b.WriteByte(m.encryptByte(s[i]))
	}
	return b.String()
}
