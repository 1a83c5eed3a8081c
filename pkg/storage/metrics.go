package storage

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records backend calls. A nil *Metrics records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Subsystem: "storage",
			Name:      "requests_total",
			Help:      "Requests sent to the storage backend by resource and status code.",
		}, []string{"resource", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dashboard",
			Subsystem: "storage",
			Name:      "request_duration_seconds",
			Help:      "Latency of storage backend requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe records one call; code 0 means the request never got an answer.
func (m *Metrics) observe(resource string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(resource, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(resource).Observe(elapsed.Seconds())
}

// resourceLabel drops identifiers from a resource path so that
// "address/1Ab.../tags" becomes "address/tags".
func resourceLabel(path string) string {
	if path == "" {
		return "statistics"
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) <= 2 {
		return segments[0]
	}
	return segments[0] + "/" + strings.Join(segments[2:], "/")
}
