package machine

import "fmt"

// Rotor is a single stepping substitution wheel.
type Rotor struct {
	name        string
	wiring      [26]byte
	inverse     [26]byte
	notch       byte
	position    int
	ringSetting int
}

// NewRotor builds a rotor from a 26-letter wiring and a notch letter.
// Position and ring setting are taken modulo 26.
func NewRotor(wiring string, notch byte, position, ringSetting int) (*Rotor, error) {
	if len(wiring) != 26 {
		return nil, fmt.Errorf("%w: length %d", ErrWiring, len(wiring))
	}
	notch = toUpper(notch)
	if notch < 'A' || notch > 'Z' {
		return nil, fmt.Errorf("%w: notch %q", ErrWiring, notch)
	}

	r := &Rotor{
		notch:       notch,
		position:    mod26(position),
		ringSetting: mod26(ringSetting),
	}
	var seen [26]bool
	for i := 0; i < 26; i++ {
		c := toUpper(wiring[i])
		if c < 'A' || c > 'Z' {
			return nil, fmt.Errorf("%w: %q is not a letter", ErrWiring, wiring[i])
		}
		out := c - 'A'
		if seen[out] {
			return nil, fmt.Errorf("%w: letter %c used twice", ErrWiring, c)
		}
		seen[out] = true
		r.wiring[i] = out
		r.inverse[out] = byte(i)
	}
	return r, nil
}

func newCatalogRotor(id, position, ringSetting int) (*Rotor, error) {
	spec, err := RotorByID(id)
	if err != nil {
		return nil, err
	}
	r, err := NewRotor(spec.Wiring, spec.Notch, position, ringSetting)
	if err != nil {
		return nil, err
	}
	r.name = spec.Name
	return r, nil
}

// Name is the catalog name, empty for custom wirings.
func (r *Rotor) Name() string     { return r.name }
func (r *Rotor) Position() int    { return r.position }
func (r *Rotor) RingSetting() int { return r.ringSetting }
func (r *Rotor) Notch() byte      { return r.notch }

// Window is the letter showing in the rotor window.
func (r *Rotor) Window() byte { return alphabet[r.position] }

func (r *Rotor) Step() {
	r.position = (r.position + 1) % 26
}

// AtNotch reports whether the next step of this rotor carries into its
// left neighbour.
func (r *Rotor) AtNotch() bool {
	return alphabet[r.position] == r.notch
}

// Forward maps a letter on the entry side to the reflector side. Letters
// of either case give an upper-case result; other bytes come back as is.
func (r *Rotor) Forward(c byte) byte {
	if !isLetter(c) {
		return c
	}
	return r.forward(toUpper(c)-'A') + 'A'
}

// Backward is the inverse of Forward for the same rotor state.
func (r *Rotor) Backward(c byte) byte {
	if !isLetter(c) {
		return c
	}
	return r.backward(toUpper(c)-'A') + 'A'
}

func (r *Rotor) offset() int {
	return (r.position - r.ringSetting + 26) % 26
}

func (r *Rotor) forward(i byte) byte {
	off := r.offset()
	out := int(r.wiring[(int(i)+off)%26])
	return byte((out - off + 26) % 26)
}

func (r *Rotor) backward(i byte) byte {
	off := r.offset()
	out := int(r.inverse[(int(i)+off)%26])
	return byte((out - off + 26) % 26)
}
