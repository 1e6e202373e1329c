package machine

import "errors"

var (
	// ErrValidation wraps every malformed-configuration error: unknown rotor
	// or reflector names, bad plugboard specs, wrong-length offsets or rings.
	// It is only ever returned at construction/reconfiguration time, never
	// mid-encryption.
	ErrValidation = errors.New("invalid machine configuration")

	// ErrInvalidState is returned by Decrypt when the live offsets have
	// drifted from the starting snapshot. Reset must be called first,
	// otherwise the self-inverse circuit would silently produce garbage.
	ErrInvalidState = errors.New("offsets differ from starting offsets")
)
