// Package base64 provides the RFC 4648 base64 encodings as codec.Codec
// values, plus Encode and Decode helpers for unpadded base64url text:
//   - URL-safe characters (- and _ instead of + and /)
//   - no padding characters (=) in the encoded output
//   - padding is optional when decoding
//
// http://www.rfc-editor.org/rfc/rfc4648#section-5
package base64
