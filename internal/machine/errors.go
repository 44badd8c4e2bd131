package machine

import "errors"

var (
	ErrRotorCount       = errors.New("exactly three rotors must be specified")
	ErrUnknownRotor     = errors.New("invalid rotor type")
	ErrUnknownReflector = errors.New("invalid reflector type")
	ErrWiring           = errors.New("invalid rotor wiring")
	ErrPlugboard        = errors.New("invalid plugboard")
)
