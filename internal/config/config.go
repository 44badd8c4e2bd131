// Package config gathers the enigma command settings from the environment
// and the command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"enigma/internal/keysheet"
	"enigma/internal/machine"
)

// Config holds the enigma command configuration. Rotor positions and ring
// settings use the operator range 1-26.
type Config struct {
	Rotors    string `env:"ENIGMA_ROTORS"    envDefault:"I,II,III"`
	Reflector string `env:"ENIGMA_REFLECTOR" envDefault:"B"`
	Pos1      int    `env:"ENIGMA_R1"        envDefault:"1"`
	Pos2      int    `env:"ENIGMA_R2"        envDefault:"1"`
	Pos3      int    `env:"ENIGMA_R3"        envDefault:"1"`
	Ring1     int    `env:"ENIGMA_RING1"     envDefault:"1"`
	Ring2     int    `env:"ENIGMA_RING2"     envDefault:"1"`
	Ring3     int    `env:"ENIGMA_RING3"     envDefault:"1"`
	Plugboard string `env:"ENIGMA_PLUGBOARD"`
	KeySheet  string `env:"ENIGMA_KEYSHEET"`
	Day       int    `env:"ENIGMA_DAY"`
	Verbose   bool   `env:"ENIGMA_VERBOSE"`
}

// NewFlagSet returns a FlagSet with the enigma usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `%s: three-rotor Enigma, reads stdin and writes stdout

Every flag can also be set through the ENIGMA_* environment variable of the
same name; flags win.

Usage of %s:
`, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Rotors, "rotors", cfg.Rotors, "Rotor selection (e.g., I,II,III)")
	fs.StringVar(&cfg.Reflector, "reflector", cfg.Reflector, "Reflector type (A, B, or C)")
	fs.IntVar(&cfg.Pos1, "r1", cfg.Pos1, "Position of first rotor (1-26)")
	fs.IntVar(&cfg.Pos2, "r2", cfg.Pos2, "Position of second rotor (1-26)")
	fs.IntVar(&cfg.Pos3, "r3", cfg.Pos3, "Position of third rotor (1-26)")
	fs.IntVar(&cfg.Ring1, "ring1", cfg.Ring1, "Ring setting of first rotor (1-26)")
	fs.IntVar(&cfg.Ring2, "ring2", cfg.Ring2, "Ring setting of second rotor (1-26)")
	fs.IntVar(&cfg.Ring3, "ring3", cfg.Ring3, "Ring setting of third rotor (1-26)")
	fs.StringVar(&cfg.Plugboard, "p", cfg.Plugboard, "Plugboard connections (e.g., AB CD EF)")
	fs.StringVar(&cfg.KeySheet, "keysheet", cfg.KeySheet, "YAML key sheet; replaces the rotor, ring and plugboard flags")
	fs.IntVar(&cfg.Day, "day", cfg.Day, "Key sheet day (0 = the only day in the sheet)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Log settings and final rotor positions to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}

// MachineConfig resolves the settings into a machine configuration,
// loading the key sheet when one is set.
func (c Config) MachineConfig() (machine.Config, error) {
	if c.KeySheet != "" {
		sheet, err := keysheet.Load(c.KeySheet)
		if err != nil {
			return machine.Config{}, err
		}
		entry, err := sheet.Entry(c.Day)
		if err != nil {
			return machine.Config{}, err
		}
		return entry.Config()
	}

	for _, v := range []int{c.Pos1, c.Pos2, c.Pos3} {
		if v < 1 || v > 26 {
			return machine.Config{}, errors.New("rotor positions must be between 1 and 26")
		}
	}
	for _, v := range []int{c.Ring1, c.Ring2, c.Ring3} {
		if v < 1 || v > 26 {
			return machine.Config{}, errors.New("ring settings must be between 1 and 26")
		}
	}

	ids, err := machine.RotorIndexes(strings.Split(c.Rotors, ","))
	if err != nil {
		return machine.Config{}, err
	}
	pairs, err := machine.ParsePairs(c.Plugboard)
	if err != nil {
		return machine.Config{}, err
	}
	return machine.Config{
		Rotors:       ids,
		Positions:    []int{c.Pos1 - 1, c.Pos2 - 1, c.Pos3 - 1},
		RingSettings: []int{c.Ring1 - 1, c.Ring2 - 1, c.Ring3 - 1},
		Reflector:    c.Reflector,
		Plugboard:    pairs,
	}, nil
}
