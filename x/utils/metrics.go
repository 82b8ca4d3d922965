package utils

import (
	"strconv"
	"time"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a decorator that counts processed transactions and measures
// their duration. Every observation is labeled with the phase (check or
// deliver), the message path and the ABCI code of the result.
type Metrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ adminnft.Decorator = (*Metrics)(nil)

// NewMetrics creates a Metrics decorator and registers its collectors with
// given registerer. It panics if the collectors were already registered.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tx_total",
			Help:      "Total number of processed transactions.",
		}, []string{"phase", "path", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tx_duration_seconds",
			Help:      "Transaction processing duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"phase", "path"}),
	}
	reg.MustRegister(m.total, m.duration)
	return m
}

// Check observes the result of the wrapped checker.
func (m *Metrics) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx, next adminnft.Checker) (*adminnft.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	m.observe("check", adminnft.GetPath(tx), start, err)
	return res, err
}

// Deliver observes the result of the wrapped deliverer.
func (m *Metrics) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx, next adminnft.Deliverer) (*adminnft.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	m.observe("deliver", adminnft.GetPath(tx), start, err)
	return res, err
}

func (m *Metrics) observe(phase, path string, start time.Time, err error) {
	code, _ := errors.ABCIInfo(err, false)
	m.total.WithLabelValues(phase, path, strconv.FormatUint(uint64(code), 10)).Inc()
	m.duration.WithLabelValues(phase, path).Observe(time.Since(start).Seconds())
}
