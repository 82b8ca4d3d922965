package utils

import (
	"context"
	"testing"

	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/store"
	"github.com/iov-one/adminnft/weavetest"
	"github.com/iov-one/adminnft/weavetest/assert"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("cannot write counter: %s", err)
	}
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T is not a metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("cannot write histogram: %s", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("nftd", reg)

	ctx := context.Background()
	db := store.MemStore()
	tx := &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "nft/mint"}}

	ok := &weavetest.Handler{}
	_, err := m.Check(ctx, db, tx, ok)
	assert.Nil(t, err)
	_, err = m.Deliver(ctx, db, tx, ok)
	assert.Nil(t, err)
	_, err = m.Deliver(ctx, db, tx, ok)
	assert.Nil(t, err)

	failing := &weavetest.Handler{DeliverErr: errors.ErrUnauthorized}
	_, err = m.Deliver(ctx, db, tx, failing)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	assert.Equal(t, 1.0, counterValue(t, m.total.WithLabelValues("check", "nft/mint", "0")))
	assert.Equal(t, 2.0, counterValue(t, m.total.WithLabelValues("deliver", "nft/mint", "0")))
	assert.Equal(t, 1.0, counterValue(t, m.total.WithLabelValues("deliver", "nft/mint", "2")))
	assert.Equal(t, uint64(3), histogramCount(t, m.duration.WithLabelValues("deliver", "nft/mint")))

	// Collectors cannot be registered twice with the same registry.
	assert.Panics(t, func() { NewMetrics("nftd", reg) })
}
