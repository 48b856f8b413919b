package prom

import (
	"net/http"

	"github.com/fengb3/Hachi64/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry returns a fresh Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// Handler returns a Prometheus HTTP handler bound to the registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// CodecObserver exports codec metrics to Prometheus.
//
// Every metric carries a constant "codec" label, so several codecs can
// share one registry as long as their names differ.
type CodecObserver struct {
	encodeTotal   prometheus.Counter
	encodeBytes   prometheus.Counter
	encodeSymbols prometheus.Counter
	decodeTotal   *prometheus.CounterVec
	decodeBytes   prometheus.Counter
}

var _ observability.CodecObserver = (*CodecObserver)(nil)

// NewCodecObserver registers codec metrics on the registry.
func NewCodecObserver(reg prometheus.Registerer, name string) *CodecObserver {
	labels := prometheus.Labels{"codec": name}
	o := &CodecObserver{
		encodeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "hachi64_encode_total",
			Help:        "Encode calls.",
			ConstLabels: labels,
		}),
		encodeBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "hachi64_encode_input_bytes_total",
			Help:        "Bytes passed to encode.",
			ConstLabels: labels,
		}),
		encodeSymbols: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "hachi64_encode_output_symbols_total",
			Help:        "Symbols produced by encode, padding included.",
			ConstLabels: labels,
		}),
		decodeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "hachi64_decode_total",
			Help:        "Decode calls by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		decodeBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "hachi64_decode_output_bytes_total",
			Help:        "Bytes produced by successful decodes.",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(
		o.encodeTotal,
		o.encodeBytes,
		o.encodeSymbols,
		o.decodeTotal,
		o.decodeBytes,
	)
	return o
}

// Encode counts one encode call with its input and output sizes.
func (o *CodecObserver) Encode(inBytes, outSymbols int) {
	o.encodeTotal.Inc()
	o.encodeBytes.Add(float64(inBytes))
	o.encodeSymbols.Add(float64(outSymbols))
}

// Decode counts one decode call by result, and the bytes it produced.
func (o *CodecObserver) Decode(result observability.DecodeResult, outBytes int) {
	o.decodeTotal.WithLabelValues(string(result)).Inc()
	o.decodeBytes.Add(float64(outBytes))
}
