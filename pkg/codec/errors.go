package codec

import (
	"errors"
	"fmt"

	"github.com/fengb3/Hachi64/pkg/alphabet"
)

var (
	ErrInvalidAlphabetLength = alphabet.ErrInvalidAlphabetLength
	ErrInvalidAlphabetChars  = alphabet.ErrInvalidAlphabetChars

	ErrInvalidInput = errors.New("invalid input")
)

// InputError describes why a string could not be decoded. It always
// matches ErrInvalidInput with errors.Is.
type InputError struct {
	// Offset is the position, in symbols, where decoding failed.
	Offset int

	// Symbol is the offending symbol, if any.
	Symbol string

	Reason string
}

func (e *InputError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("%v: %s at symbol %d (%q)", ErrInvalidInput, e.Reason, e.Offset, e.Symbol)
	}
	return fmt.Sprintf("%v: %s at symbol %d", ErrInvalidInput, e.Reason, e.Offset)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
