package base64

import (
	"fmt"
	"strings"

	"github.com/fengb3/Hachi64/pkg/alphabet"
	"github.com/fengb3/Hachi64/pkg/codec"
)

// RFC 4648 codecs.
var (
	// StdEncoding is the standard base64 encoding, as defined in
	// RFC 4648 Section 4.
	StdEncoding = codec.MustNew(alphabet.Standard, true)

	// RawStdEncoding is StdEncoding without padding.
	RawStdEncoding = codec.MustNew(alphabet.Standard, false)

	// URLEncoding is the alternate base64 encoding defined in RFC 4648
	// Section 5, used in URLs and file names.
	URLEncoding = codec.MustNew(alphabet.URLSafe, true)

	// RawURLEncoding is URLEncoding without padding.
	RawURLEncoding = codec.MustNew(alphabet.URLSafe, false)
)

// Decode returns the bytes of a base64url string, padded or not.
// Missing padding is restored before decoding with URLEncoding.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("base64: input cannot be empty")
	}

	if padLen := len(input) % 4; padLen > 0 {
		var b strings.Builder
		b.Grow(len(input) + (4 - padLen))
		b.WriteString(input)
		for i := padLen; i < 4; i++ {
			b.WriteString(codec.PadSymbol)
		}
		input = b.String()
	}

	result, err := URLEncoding.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("base64: invalid base64url input: %w", err)
	}
	return result, nil
}

// Encode returns the unpadded base64url encoding of input.
//
// Unlike the codecs, Encode and Decode treat empty input as an error.
func Encode(input []byte) (string, error) {
	if len(input) == 0 {
		return "", fmt.Errorf("base64: input cannot be empty")
	}

	return RawURLEncoding.Encode(input), nil
}
