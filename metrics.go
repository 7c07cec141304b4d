package vector

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Process-wide collectors. They are updated whether or not they have been
// registered; Register exposes them.
var (
	allocationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vector",
		Name:      "raw_allocations_total",
		Help:      "Number of raw buffers allocated.",
	})
	allocatedBytesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vector",
		Name:      "raw_allocated_bytes_total",
		Help:      "Bytes requested by raw buffer allocations.",
	})
	inuseBytes = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "vector",
		Name:      "raw_inuse_bytes",
		Help:      "Bytes held by raw buffers not yet deallocated. Vectors dropped without Destroy stay counted.",
	})
	reallocationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vector",
		Name:      "reallocations_total",
		Help:      "Number of times a vector moved its elements into a larger buffer.",
	})
	transferredTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vector",
		Name:      "transferred_elements_total",
		Help:      "Elements carried into a new buffer, by strategy.",
	}, []string{"strategy"})
)

// Register registers the package collectors with reg. Collectors that are
// already registered are skipped.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		allocationsTotal,
		allocatedBytesTotal,
		inuseBytes,
		reallocationsTotal,
		transferredTotal,
	} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return errors.Wrap(err, "vector: register collector")
		}
	}
	return nil
}

func recordAllocation(bytes uint64) {
	allocationsTotal.Inc()
	allocatedBytesTotal.Add(float64(bytes))
	inuseBytes.Add(float64(bytes))
}

func recordDeallocation(bytes uint64) {
	inuseBytes.Sub(float64(bytes))
}

// stats are the per-vector counters behind Metrics.
type stats struct {
	reallocations uint64
	relocated     uint64
	duplicated    uint64
}

func (s *stats) recordTransfer(strategy string, n int) {
	if n == 0 {
		return
	}
	if strategy == strategyRelocate {
		s.relocated += uint64(n)
	} else {
		s.duplicated += uint64(n)
	}
	transferredTotal.WithLabelValues(strategy).Add(float64(n))
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Len           int     // Live elements
	Cap           int     // Reserved slots
	ElemSize      int     // Bytes per slot
	Bytes         int     // Cap * ElemSize
	Utilization   float64 // Len / Cap (0.0-1.0)
	Reallocations uint64  // Buffers replaced by a larger one
	Relocated     uint64  // Elements moved into a new buffer
	Duplicated    uint64  // Elements copied into a new buffer
}

// String renders the snapshot on one line.
func (m Metrics) String() string {
	return fmt.Sprintf("len=%d cap=%d size=%s utilization=%.2f%% reallocations=%d relocated=%d duplicated=%d",
		m.Len, m.Cap, humanize.IBytes(uint64(m.Bytes)), m.Utilization*100,
		m.Reallocations, m.Relocated, m.Duplicated)
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.Cap() == 0 {
		return 0
	}
	return float64(v.size) / float64(v.Cap())
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	size := int(elemSize[T]())
	return Metrics{
		Len:           v.size,
		Cap:           v.Cap(),
		ElemSize:      size,
		Bytes:         v.Cap() * size,
		Utilization:   v.Utilization(),
		Reallocations: v.stats.reallocations,
		Relocated:     v.stats.relocated,
		Duplicated:    v.stats.duplicated,
	}
}
