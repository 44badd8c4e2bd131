package machine

import (
	"errors"
	"testing"
)

func newMachine(t *testing.T, cfg Config) *Machine {
	t.Helper()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v): %v", cfg, err)
	}
	return m
}

func stdConfig(positions ...int) Config {
	return Config{Rotors: []int{0, 1, 2}, Positions: positions}
}

func TestProcessKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		in   string
		want string
	}{
		{"ground setting", stdConfig(), "AAAAA", "BDZGO"},
		{"rings BBB", Config{Rotors: []int{0, 1, 2}, RingSettings: []int{1, 1, 1}}, "AAAAA", "EWTYX"},
		{"hello world", stdConfig(0, 0, 0), "HELLOWORLD", "ILBDAAMTAZ"},
		{"lower case and punctuation", stdConfig(), "hello, World", "ILBDA, AMTAZ"},
		{"mixed", stdConfig(), "A1B2C", "B1J2E"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine(t, tt.cfg)
			if got := m.Process(tt.in); got != tt.want {
				t.Fatalf("Process(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		in   string
	}{
		{"hello world", stdConfig(0, 0, 0), "HELLOWORLD"},
		{"plugboard", Config{
			Rotors:       []int{0, 1, 2},
			Positions:    []int{5, 10, 15},
			RingSettings: []int{1, 2, 3},
			Plugboard:    []Pair{{'A', 'B'}, {'C', 'D'}, {'E', 'F'}},
		}, "TESTMESSAGE"},
		{"complex plugboard", Config{
			Rotors:    []int{0, 1, 2},
			Plugboard: []Pair{{'A', 'Z'}, {'B', 'Y'}, {'C', 'X'}, {'D', 'W'}, {'E', 'V'}},
		}, "ABCDE"},
		{"other rotors and reflector", Config{
			Rotors:       []int{4, 3, 1},
			Positions:    []int{25, 4, 9},
			RingSettings: []int{7, 0, 19},
			Reflector:    "C",
		}, "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"},
		{"long message", stdConfig(0, 3, 20), longText()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := newMachine(t, tt.cfg).Process(tt.in)
			if len(enc) != len(tt.in) {
				t.Fatalf("length changed: %d -> %d", len(tt.in), len(enc))
			}
			if dec := newMachine(t, tt.cfg).Process(enc); dec != tt.in {
				t.Fatalf("decrypt(encrypt(%q)) = %q", tt.in, dec)
			}
		})
	}
}

func longText() string {
	b := make([]byte, 0, 2000)
	for i := 0; i < 2000; i++ {
		b = append(b, alphabet[(i*7)%26])
	}
	return string(b)
}

func TestProcessConvertsToUpperCase(t *testing.T) {
	lower := newMachine(t, stdConfig()).Process("hello")
	upper := newMachine(t, stdConfig()).Process("HELLO")
	if lower != upper {
		t.Fatalf("hello -> %q, HELLO -> %q", lower, upper)
	}
}

func TestNonLettersPassThrough(t *testing.T) {
	m := newMachine(t, Config{Rotors: []int{0, 1, 2}, Positions: []int{3, 7, 11}})
	for _, in := range []string{"", "123 456", "-- ...\n", "Grüße"} {
		before := m.Window()
		got := m.Process(in)
		if in == "Grüße" {
			if len(got) != len(in) || got[2:4] != "ü" || got[4:6] != "ß" {
				t.Fatalf("Process(%q) = %q", in, got)
			}
			continue
		}
		if got != in {
			t.Fatalf("Process(%q) = %q", in, got)
		}
		if m.Window() != before {
			t.Fatalf("rotors moved on %q: %s -> %s", in, before, m.Window())
		}
	}
	if r := m.EncryptChar('7'); r != '7' {
		t.Fatalf("EncryptChar('7') = %q", r)
	}
	if r := m.EncryptChar('é'); r != 'é' {
		t.Fatalf("EncryptChar('é') = %q", r)
	}
}

func TestLetterNeverEncryptsToItself(t *testing.T) {
	m := newMachine(t, stdConfig())
	for i := 0; i < 26; i++ {
		c := alphabet[i]
		if got := m.encode(byte(i)); got == c {
			t.Fatalf("%c encoded to itself at rest", c)
		}
	}
	for i := 0; i < 26*26; i++ {
		c := rune(alphabet[i%26])
		if got := m.EncryptChar(c); got == c {
			t.Fatalf("%c encrypted to itself at window %s", c, m.Window())
		}
	}
}

func TestSameLetterChangesWithStepping(t *testing.T) {
	m := newMachine(t, stdConfig())
	if a, b := m.EncryptChar('A'), m.EncryptChar('A'); a == b {
		t.Fatalf("consecutive A both encrypted to %c", a)
	}
}

func TestRightRotorAlwaysSteps(t *testing.T) {
	for _, start := range [][]int{{0, 0, 0}, {0, 0, 21}, {0, 4, 0}, {0, 4, 21}, {25, 25, 25}} {
		m := newMachine(t, stdConfig(start...))
		m.EncryptChar('A')
		if got, want := m.Positions()[2], (start[2]+1)%26; got != want {
			t.Errorf("start %v: right rotor at %d, want %d", start, got, want)
		}
	}
}

func TestMiddleStepsWhenRightAtNotch(t *testing.T) {
	m := newMachine(t, stdConfig(0, 0, 21)) // III at V
	m.EncryptChar('A')
	if got := m.Positions(); got[0] != 0 || got[1] != 1 || got[2] != 22 {
		t.Fatalf("positions = %v, want [0 1 22]", got)
	}
}

func TestDoubleStep(t *testing.T) {
	m := newMachine(t, stdConfig(0, 4, 0)) // II at E
	m.EncryptChar('A')
	if got := m.Positions(); got[0] != 1 || got[1] != 5 || got[2] != 1 {
		t.Fatalf("positions = %v, want [1 5 1]", got)
	}
}

func TestDoubleStepSequence(t *testing.T) {
	m := newMachine(t, stdConfig(0, 3, 20)) // ADU
	for _, want := range []string{"ADV", "AEW", "BFX", "BFY"} {
		m.EncryptChar('A')
		if got := m.Window(); got != want {
			t.Fatalf("window = %s, want %s", got, want)
		}
	}
}

func TestSettingsChangeCiphertext(t *testing.T) {
	base := newMachine(t, stdConfig(0, 0, 0)).Process("HELLO")
	pos := newMachine(t, stdConfig(1, 0, 0)).Process("HELLO")
	ring := newMachine(t, Config{Rotors: []int{0, 1, 2}, RingSettings: []int{1, 2, 3}}).Process("HELLO")
	if base == pos {
		t.Errorf("changing the left position did not change the ciphertext %q", base)
	}
	if base == ring {
		t.Errorf("changing ring settings did not change the ciphertext %q", base)
	}
}

func TestProcessStreamsAcrossCalls(t *testing.T) {
	whole := newMachine(t, stdConfig()).Process("HELLOWORLD")
	m := newMachine(t, stdConfig())
	if parts := m.Process("HELLO") + m.Process("WORLD"); parts != whole {
		t.Fatalf("chunked = %q, whole = %q", parts, whole)
	}
}

func TestResetRestoresStart(t *testing.T) {
	m := newMachine(t, Config{Rotors: []int{0, 1, 2}, Positions: []int{26, 3, -6}})
	if m.Window() != "ADU" {
		t.Fatalf("window = %s, want ADU", m.Window())
	}
	first := m.Process("ABCDEFG")
	m.Reset()
	if m.Window() != "ADU" {
		t.Fatalf("window after reset = %s", m.Window())
	}
	if again := m.Process("ABCDEFG"); again != first {
		t.Fatalf("after reset got %q, want %q", again, first)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"two rotors", Config{Rotors: []int{0, 1}}, ErrRotorCount},
		{"four rotors", Config{Rotors: []int{0, 1, 2, 3}}, ErrRotorCount},
		{"rotor out of range", Config{Rotors: []int{0, 1, 5}}, ErrUnknownRotor},
		{"negative rotor", Config{Rotors: []int{-1, 1, 2}}, ErrUnknownRotor},
		{"reflector", Config{Rotors: []int{0, 1, 2}, Reflector: "D"}, ErrUnknownReflector},
		{"plugboard", Config{Rotors: []int{0, 1, 2}, Plugboard: []Pair{{'A', 'B'}, {'A', 'C'}}}, ErrPlugboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := New(Config{Rotors: []int{0, 1, 2}, Positions: []int{1, 2}}); err == nil {
		t.Fatalf("expected error for two positions")
	}
}
