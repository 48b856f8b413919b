package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fengb3/Hachi64/pkg/alphabet"
	"github.com/fengb3/Hachi64/pkg/observability"
	"go.uber.org/zap"
)

// PadSymbol marks the unused trailing positions of the last group in
// padded output. It is the same for every alphabet.
const PadSymbol = "="

// Codec encodes bytes to symbols of an alphabet and back, three bytes to
// four symbols at a time.
//
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	alphabet *alphabet.Alphabet
	padding  bool
	logger   *zap.Logger
	observer observability.CodecObserver
}

// New returns a codec for the 64 symbols of the given alphabet string.
//
// It returns an error wrapping ErrInvalidAlphabetLength if the string
// does not hold exactly 64 symbols, or ErrInvalidAlphabetChars if a
// symbol is repeated. With padding enabled no symbol may contain
// PadSymbol.
func New(symbols string, usePadding bool, opts ...Option) (*Codec, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	a, err := alphabet.New(symbols, cfg.AlphabetOptions...)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	return newCodec(a, usePadding, cfg)
}

// NewFromAlphabet returns a codec for an already validated alphabet.
func NewFromAlphabet(a *alphabet.Alphabet, usePadding bool, opts ...Option) (*Codec, error) {
	if a == nil {
		return nil, errors.New("codec: nil alphabet")
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return newCodec(a, usePadding, cfg)
}

// MustNew is like New but panics on error.
func MustNew(symbols string, usePadding bool, opts ...Option) *Codec {
	c, err := New(symbols, usePadding, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func newCodec(a *alphabet.Alphabet, usePadding bool, cfg *Config) (*Codec, error) {
	if usePadding {
		// Decode strips trailing pad bytes before segmenting, so no
		// symbol may contain one.
		for i, sym := range a.Symbols() {
			if strings.Contains(sym, PadSymbol) {
				return nil, fmt.Errorf("codec: %w: symbol %d (%q) contains pad symbol %q", ErrInvalidAlphabetChars, i, sym, PadSymbol)
			}
		}
	}

	return &Codec{
		alphabet: a,
		padding:  usePadding,
		logger:   cfg.Logger,
		observer: cfg.Observer,
	}, nil
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() *alphabet.Alphabet {
	return c.alphabet
}

// Padding reports whether the codec writes and expects PadSymbol.
func (c *Codec) Padding() bool {
	return c.padding
}

// EncodedLen returns the number of symbols, padding included, that
// encoding n bytes produces.
func (c *Codec) EncodedLen(n int) int {
	if c.padding {
		return (n + 2) / 3 * 4
	}
	return n/3*4 + (n%3*8+5)/6
}

// DecodedLen returns the maximum number of bytes that n symbols,
// padding included, decode to.
func (c *Codec) DecodedLen(n int) int {
	if c.padding {
		return n / 4 * 3
	}
	return n * 6 / 8
}

// Encode returns the encoding of data. An empty input encodes to the
// empty string.
func (c *Codec) Encode(data []byte) string {
	size := c.EncodedLen(len(data))
	defer c.observer.Encode(len(data), size)

	if len(data) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(size * c.alphabet.MaxSymbolLen())

	for i := 0; i < len(data); i += 3 {
		n := min(len(data)-i, 3)

		b1 := data[i]
		var b2, b3 byte
		if n > 1 {
			b2 = data[i+1]
		}
		if n > 2 {
			b3 = data[i+2]
		}

		b.WriteString(c.alphabet.Symbol(int(b1 >> 2)))
		b.WriteString(c.alphabet.Symbol(int((b1&0x03)<<4 | b2>>4)))

		switch {
		case n > 1:
			b.WriteString(c.alphabet.Symbol(int((b2&0x0F)<<2 | b3>>6)))
		case c.padding:
			b.WriteString(PadSymbol)
		}

		switch {
		case n > 2:
			b.WriteString(c.alphabet.Symbol(int(b3 & 0x3F)))
		case c.padding:
			b.WriteString(PadSymbol)
		}
	}

	return b.String()
}

// Decode returns the bytes represented by text.
//
// A padded codec only accepts input whose length, padding included, is
// a multiple of four symbols. The returned error wraps ErrInvalidInput
// and is an *InputError.
func (c *Codec) Decode(text string) ([]byte, error) {
	if text == "" {
		c.observer.Decode(observability.DecodeResultOK, 0)
		return []byte{}, nil
	}

	text = c.alphabet.Normalize(text)

	data, pads := text, 0
	if c.padding {
		data = strings.TrimRight(text, PadSymbol)
		pads = len(text) - len(data)
	}

	out := make([]byte, 0, len(data)*3/4+3)

	var (
		group [4]byte
		n     int
		count int
	)
	for offset, sym := range c.alphabet.Segment(data) {
		idx, ok := c.alphabet.Index(sym)
		if !ok {
			reason := "symbol not in alphabet"
			if c.padding && sym == PadSymbol {
				reason = "pad symbol before end of input"
			}
			return nil, c.reject(&InputError{Offset: offset, Symbol: sym, Reason: reason})
		}

		group[n] = byte(idx)
		n++
		count++
		if n == 4 {
			out = appendGroup(out, group, 4)
			n = 0
		}
	}

	if err := c.checkTail(count, n, pads); err != nil {
		return nil, c.reject(err)
	}

	if n > 0 {
		clear(group[n:])
		if c.padding {
			// Pad positions count as zero bits; the bytes they produce
			// are truncated below.
			out = appendGroup(out, group, 4)
		} else {
			out = appendGroup(out, group, n)
		}
	}
	out = out[:len(out)-pads]

	c.observer.Decode(observability.DecodeResultOK, len(out))
	return out, nil
}

func (c *Codec) checkTail(count, n, pads int) *InputError {
	switch {
	case pads > 2:
		return &InputError{Offset: count, Symbol: PadSymbol, Reason: "too many pad symbols"}
	case c.padding && (count+pads)%4 != 0:
		return &InputError{Offset: count + pads, Reason: "padded input is not a multiple of 4 symbols"}
	case n == 1:
		return &InputError{Offset: count - 1, Reason: "final group has a single symbol"}
	}
	return nil
}

func (c *Codec) reject(err *InputError) error {
	c.logger.Debug("decode rejected",
		zap.Int("offset", err.Offset),
		zap.String("symbol", err.Symbol),
		zap.String("reason", err.Reason),
	)
	c.observer.Decode(observability.DecodeResultInvalidInput, 0)
	return err
}

// appendGroup reassembles the first n symbols of g into n-1 bytes.
func appendGroup(dst []byte, g [4]byte, n int) []byte {
	dst = append(dst, g[0]<<2|g[1]>>4)
	if n > 2 {
		dst = append(dst, (g[1]&0x0F)<<4|g[2]>>2)
	}
	if n > 3 {
		dst = append(dst, (g[2]&0x03)<<6|g[3])
	}
	return dst
}
