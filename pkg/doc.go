// Package hachi64 implements Hachi64, a base64-style encoding that writes
// every 6-bit value as one of 64 Chinese characters grouped by
// pronunciation, on top of a codec that accepts any 64-symbol alphabet.
//
// 哈基米64 编解码器
//
// Encode and Decode always use "=" padding. For other padding or
// alphabet choices, build a codec.Codec directly.
//
// Related packages:
//   - alphabet: validated 64-symbol alphabets and their reverse lookup
//   - codec: the encoder/decoder for any alphabet
//   - base64: RFC 4648 encodings built on codec
//   - observability: metric events emitted by codecs
//
// Related Information:
//   - https://datatracker.ietf.org/doc/html/rfc4648
package hachi64
