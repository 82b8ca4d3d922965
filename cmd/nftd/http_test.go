package main

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

type staticInfo int64

func (h staticInfo) Info(abci.RequestInfo) abci.ResponseInfo {
	return abci.ResponseInfo{LastBlockHeight: int64(h)}
}

func TestHTTPHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "nftd_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	srv := httptest.NewServer(newHTTPHandler(reg, staticInfo(42), log.NewNopLogger()))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	var health healthStatus
	require.NoError(t, json.NewDecoder(res.Body).Decode(&health))
	assert.Equal(t, healthStatus{Status: "ok", Version: adminnft.Version(), Height: 42}, health)

	res, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	body, err := ioutil.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "nftd_test_total 1")

	res, err = http.Post(srv.URL+"/health", "application/json", nil)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	header http.Header
	status int
}

func (w *brokenWriter) Header() http.Header { return w.header }

func (w *brokenWriter) WriteHeader(status int) { w.status = status }

func (w *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.Wrap(errors.ErrHuman, "connection reset")
}

func TestHealthWriteErrorIsLogged(t *testing.T) {
	var out strings.Builder
	logger, err := newLogger(&out, "error")
	require.NoError(t, err)

	h := newHTTPHandler(prometheus.NewRegistry(), staticInfo(1), logger)
	w := &brokenWriter{header: make(http.Header)}
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Contains(t, out.String(), "Cannot write health status")
	assert.Contains(t, out.String(), "connection reset")
}

func TestNewLogger(t *testing.T) {
	var out strings.Builder
	logger, err := newLogger(&out, "error")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Error("shown")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")

	_, err = newLogger(&out, "loud")
	assert.Error(t, err)
}
