package alphabet

import (
	"iter"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Segmentation is the unit of text that makes up one symbol.
type Segmentation int

const (
	// Runes makes every Unicode code point one symbol.
	Runes Segmentation = iota

	// GraphemeClusters makes every extended grapheme cluster
	// (Unicode Standard Annex #29) one symbol.
	GraphemeClusters
)

func (s Segmentation) String() string {
	switch s {
	case Runes:
		return "rune"
	case GraphemeClusters:
		return "grapheme cluster"
	default:
		return "unknown segmentation"
	}
}

// Segment splits s into candidate symbols using the alphabet's
// segmentation, yielding each with its symbol offset. It does not
// normalize s and does not check membership, see Normalize and Index.
//
// Invalid UTF-8 is yielded one byte at a time, so it never matches a
// symbol.
func (a *Alphabet) Segment(s string) iter.Seq2[int, string] {
	return segment(s, a.segments)
}

func segment(s string, seg Segmentation) iter.Seq2[int, string] {
	if seg == GraphemeClusters {
		return func(yield func(int, string) bool) {
			var (
				cluster string
				state   = -1
			)
			for n := 0; s != ""; n++ {
				cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
				if !yield(n, cluster) {
					return
				}
			}
		}
	}

	return func(yield func(int, string) bool) {
		for n, i := 0, 0; i < len(s); n++ {
			_, size := utf8.DecodeRuneInString(s[i:])
			if !yield(n, s[i:i+size]) {
				return
			}
			i += size
		}
	}
}
