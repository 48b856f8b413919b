// Package observability defines the metric events emitted by codecs.
package observability

// DecodeResult is the outcome of a decode, used as a metric label.
type DecodeResult string

const (
	// DecodeResultOK is a successful decode.
	DecodeResultOK DecodeResult = "ok"
	// DecodeResultInvalidInput is a decode rejected with an input error.
	DecodeResultInvalidInput DecodeResult = "invalid_input"
)

// CodecObserver receives codec-level metric events.
type CodecObserver interface {
	// Encode is called once per encode with the number of input bytes
	// and of output symbols, padding included.
	Encode(inBytes, outSymbols int)

	// Decode is called once per decode with its result and the number
	// of output bytes.
	Decode(result DecodeResult, outBytes int)
}

type noopCodecObserver struct{}

func (noopCodecObserver) Encode(int, int)          {}
func (noopCodecObserver) Decode(DecodeResult, int) {}

// NoopCodecObserver is a zero-cost observer used when metrics are disabled.
var NoopCodecObserver CodecObserver = noopCodecObserver{}
