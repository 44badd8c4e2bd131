package machine

import (
	"fmt"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultReflector is used when a Config leaves Reflector empty.
const DefaultReflector = "B"

// RotorSpec is a catalog entry: a wiring and its turnover notch.
type RotorSpec struct {
	Name   string
	Wiring string
	Notch  byte
}

// Rotors is the rotor catalog, indexed by the ids a Config refers to.
var Rotors = [...]RotorSpec{
	{Name: "I", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notch: 'Q'},
	{Name: "II", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notch: 'E'},
	{Name: "III", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notch: 'V'},
	{Name: "IV", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notch: 'J'},
	{Name: "V", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Notch: 'Z'},
}

// Reflectors maps reflector names to their wiring.
var Reflectors = map[string]string{
	"A": "EJMZALYXVBWFCRQUONTSPIKHGD",
	"B": "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	"C": "FVPJIAOYEDRZXWGCTKUQSBNMHL",
}

// RotorByID returns the catalog entry for id.
func RotorByID(id int) (RotorSpec, error) {
	if id < 0 || id >= len(Rotors) {
		return RotorSpec{}, fmt.Errorf("%w: id %d (want 0-%d)", ErrUnknownRotor, id, len(Rotors)-1)
	}
	return Rotors[id], nil
}

// RotorIndex resolves a rotor name such as "III" to its catalog id.
func RotorIndex(name string) (int, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, r := range Rotors {
		if r.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRotor, name)
}

// RotorIndexes resolves a list of rotor names.
func RotorIndexes(names []string) ([]int, error) {
	ids := make([]int, 0, len(names))
	for _, n := range names {
		id, err := RotorIndex(n)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type reflector [26]byte

func newReflector(name string) (reflector, error) {
	if name == "" {
		name = DefaultReflector
	}
	wiring, ok := Reflectors[strings.ToUpper(name)]
	if !ok {
		return reflector{}, fmt.Errorf("%w: %s", ErrUnknownReflector, name)
	}
	var r reflector
	for i := 0; i < 26; i++ {
		r[i] = wiring[i] - 'A'
	}
	return r, nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func mod26(n int) int {
	n %= 26
	if n < 0 {
		n += 26
	}
	return n
}
