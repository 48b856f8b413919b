package hachi64

import (
	"sync"

	"github.com/fengb3/Hachi64/pkg/alphabet"
	"github.com/fengb3/Hachi64/pkg/codec"
)

// Alphabet is the Hachi64 character set.
const Alphabet = alphabet.Hachi

var defaultCodec = sync.OnceValue(func() *codec.Codec {
	return codec.MustNew(Alphabet, true)
})

// Default returns the padded Hachi64 codec shared by Encode and Decode.
// It is built on first use and can be passed around like any other
// *codec.Codec.
func Default() *codec.Codec {
	return defaultCodec()
}

// Encode returns the padded Hachi64 encoding of data.
func Encode(data []byte) string {
	return Default().Encode(data)
}

// Decode returns the bytes represented by the padded Hachi64 string s.
// Errors wrap codec.ErrInvalidInput.
func Decode(s string) ([]byte, error) {
	return Default().Decode(s)
}
