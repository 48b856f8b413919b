package alphabet

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Size is the number of symbols in every alphabet.
const Size = 64

// Well-known alphabets.
const (
	// Standard is the RFC 4648 Section 4 base64 alphabet.
	Standard = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// URLSafe is the RFC 4648 Section 5 "base64url" alphabet.
	URLSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	// Hachi is the Hachi64 alphabet: 64 Chinese characters, grouped by
	// similar pronunciation.
	Hachi = "哈蛤呵吉急集米咪迷南男难北背杯绿律虑豆斗抖啊阿额西希息嘎咖伽花华哗压鸭呀库酷苦奶乃耐龙隆拢曼慢漫波播玻叮丁订咚东冬囊路陆多都弥济"
)

var (
	// ErrInvalidAlphabetLength is returned when an alphabet does not
	// contain exactly Size symbols.
	ErrInvalidAlphabetLength = errors.New("invalid alphabet length")

	// ErrInvalidAlphabetChars is returned when an alphabet contains a
	// repeated, empty, or otherwise unusable symbol.
	ErrInvalidAlphabetChars = errors.New("invalid alphabet characters")
)

// Alphabet is an immutable, validated set of 64 symbols together with
// the reverse lookup used for decoding. Symbol i encodes the 6-bit value i.
//
// The zero value is not usable, use New or FromSymbols.
type Alphabet struct {
	symbols  [Size]string
	reverse  map[string]byte
	maxLen   int
	segments Segmentation
	form     norm.Form
	normal   bool
}

// New splits s into symbols according to the configured segmentation
// (runes by default) and returns the resulting alphabet.
func New(s string, opts ...Option) (*Alphabet, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	var symbols []string
	for _, sym := range segment(s, cfg.Segmentation) {
		symbols = append(symbols, sym)
	}

	return build(symbols, cfg)
}

// FromSymbols returns an alphabet made of the given symbols, in order.
// Every symbol must be a single unit under the configured segmentation.
func FromSymbols(symbols []string, opts ...Option) (*Alphabet, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return build(symbols, cfg)
}

// MustNew is like New but panics if the alphabet is invalid.
// It is intended for package level variables.
func MustNew(s string, opts ...Option) *Alphabet {
	a, err := New(s, opts...)
	if err != nil {
		panic(fmt.Sprintf("alphabet: %v", err))
	}
	return a
}

func build(symbols []string, cfg *Config) (*Alphabet, error) {
	if len(symbols) != Size {
		return nil, fmt.Errorf("%w: got %d symbols, want %d", ErrInvalidAlphabetLength, len(symbols), Size)
	}

	a := &Alphabet{
		reverse:  make(map[string]byte, Size),
		segments: cfg.Segmentation,
		form:     cfg.Form,
		normal:   cfg.Normalize,
	}

	for i, sym := range symbols {
		if a.normal {
			sym = a.form.String(sym)
		}

		switch {
		case sym == "":
			return nil, fmt.Errorf("%w: symbol %d is empty", ErrInvalidAlphabetChars, i)
		case !utf8.ValidString(sym):
			return nil, fmt.Errorf("%w: symbol %d is not valid UTF-8", ErrInvalidAlphabetChars, i)
		case !a.atomic(sym):
			return nil, fmt.Errorf("%w: symbol %d (%q) is not a single %s", ErrInvalidAlphabetChars, i, sym, a.segments)
		}

		if j, ok := a.reverse[sym]; ok {
			return nil, fmt.Errorf("%w: symbol %q repeated at positions %d and %d", ErrInvalidAlphabetChars, sym, j, i)
		}

		a.symbols[i] = sym
		a.reverse[sym] = byte(i)
		a.maxLen = max(a.maxLen, len(sym))
	}

	if err := a.checkAdjacent(); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Alphabet) atomic(sym string) bool {
	if a.segments == GraphemeClusters {
		return uniseg.GraphemeClusterCount(sym) == 1
	}
	return utf8.RuneCountInString(sym) == 1
}

// checkAdjacent makes sure that any two symbols written next to each other
// are read back as the same two symbols. Runes cannot merge, grapheme
// clusters and normalized forms can.
func (a *Alphabet) checkAdjacent() error {
	if a.segments == Runes && !a.normal {
		return nil
	}

	for i, x := range a.symbols {
		for j, y := range a.symbols {
			pair := x + y
			if a.normal && !a.form.IsNormalString(pair) {
				return fmt.Errorf("%w: symbols %d and %d change under normalization when adjacent", ErrInvalidAlphabetChars, i, j)
			}
			if a.segments == GraphemeClusters && uniseg.GraphemeClusterCount(pair) != 2 {
				return fmt.Errorf("%w: symbols %d and %d join into one grapheme cluster", ErrInvalidAlphabetChars, i, j)
			}
		}
	}
	return nil
}

// Symbol returns the symbol for the 6-bit value i. It panics if i is
// outside [0, 64).
func (a *Alphabet) Symbol(i int) string {
	return a.symbols[i]
}

// Index returns the 6-bit value of sym, after bringing it to the
// alphabet's normalization form.
func (a *Alphabet) Index(sym string) (int, bool) {
	i, ok := a.reverse[a.Normalize(sym)]
	return int(i), ok
}

// Contains reports whether sym is one of the alphabet's symbols.
func (a *Alphabet) Contains(sym string) bool {
	_, ok := a.Index(sym)
	return ok
}

// Symbols returns a copy of the symbols in index order.
func (a *Alphabet) Symbols() []string {
	return append([]string(nil), a.symbols[:]...)
}

// MaxSymbolLen returns the length in bytes of the longest symbol.
func (a *Alphabet) MaxSymbolLen() int {
	return a.maxLen
}

// Segmentation returns how text is split into symbols.
func (a *Alphabet) Segmentation() Segmentation {
	return a.segments
}

// Normalize returns s in the alphabet's normalization form, or s
// unchanged when the alphabet is not normalized.
func (a *Alphabet) Normalize(s string) string {
	if !a.normal {
		return s
	}
	return a.form.String(s)
}

// String returns the symbols concatenated in index order.
func (a *Alphabet) String() string {
	return strings.Join(a.symbols[:], "")
}
