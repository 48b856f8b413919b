// Package alphabet provides validated 64-symbol alphabets for
// base64-style encodings.
//
// A symbol is an opaque unit of text: a single rune by default, or an
// extended grapheme cluster when WithGraphemeClusters is used. Symbols
// are compared as strings, never as bytes, so multi-byte alphabets such
// as Hachi work the same way as the RFC 4648 ones.
//
// Every Alphabet carries its reverse lookup, built together with it by
// New or FromSymbols. Both are immutable and safe for concurrent use.
package alphabet
