// Package codec implements base64-style encoding over any alphabet of
// 64 symbols.
//
// Three input bytes are split into four 6-bit values, and each value is
// written as the alphabet symbol at that index. A final group of one or
// two bytes produces two or three symbols, followed by one or two
// PadSymbol when padding is enabled:
//
//	3 bytes -> 4 symbols
//	2 bytes -> 3 symbols + "="
//	1 byte  -> 2 symbols + "=="
//
// With the RFC 4648 alphabet the output is identical to standard base64.
// Symbols may be any single rune (or grapheme cluster, see
// alphabet.WithGraphemeClusters), so the same algorithm also produces
// text such as Hachi64's Chinese characters.
package codec
