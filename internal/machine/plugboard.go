package machine

import (
	"fmt"
	"strings"
)

// Pair is one plugboard cable connecting two letters.
type Pair [2]byte

func (p Pair) String() string { return string(p[:]) }

// Plugboard is an involutive letter substitution. The zero value has no
// cables plugged in.
type Plugboard struct {
	partner [26]byte // 0 when unplugged
}

// NewPlugboard connects the given pairs. Each letter may be used once.
func NewPlugboard(pairs []Pair) (Plugboard, error) {
	var pb Plugboard
	var used [26]bool
	for _, p := range pairs {
		a, b := toUpper(p[0]), toUpper(p[1])
		if a < 'A' || a > 'Z' || b < 'A' || b > 'Z' {
			return Plugboard{}, fmt.Errorf("%w: connections must be between A and Z, got %q", ErrPlugboard, p.String())
		}
		if a == b {
			return Plugboard{}, fmt.Errorf("%w: letter %c connected to itself", ErrPlugboard, a)
		}
		for _, c := range [2]byte{a, b} {
			if used[c-'A'] {
				return Plugboard{}, fmt.Errorf("%w: letter %c is already connected", ErrPlugboard, c)
			}
			used[c-'A'] = true
		}
		pb.partner[a-'A'] = b
		pb.partner[b-'A'] = a
	}
	return pb, nil
}

// ParsePairs reads the operator notation "AB CD EF".
func ParsePairs(s string) ([]Pair, error) {
	fields := strings.Fields(s)
	pairs := make([]Pair, 0, len(fields))
	for _, f := range fields {
		if len(f) != 2 {
			return nil, fmt.Errorf("%w: invalid plugboard pair: %s", ErrPlugboard, f)
		}
		pairs = append(pairs, Pair{toUpper(f[0]), toUpper(f[1])})
	}
	return pairs, nil
}

// Swap returns the partner of an upper-case letter, or the letter itself
// when it is not plugged.
func (pb Plugboard) Swap(c byte) byte {
	if c < 'A' || c > 'Z' {
		return c
	}
	if p := pb.partner[c-'A']; p != 0 {
		return p
	}
	return c
}

// Pairs lists the connections, each as (lower, higher), sorted.
func (pb Plugboard) Pairs() []Pair {
	var out []Pair
	for i, p := range pb.partner {
		if c := byte(i) + 'A'; p > c {
			out = append(out, Pair{c, p})
		}
	}
	return out
}

func (pb Plugboard) String() string {
	pairs := pb.Pairs()
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
