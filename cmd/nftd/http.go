package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iov-one/adminnft"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// healthStatus is the body returned by the health endpoint.
type healthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Height  int64  `json:"height"`
}

// infoer is the part of the ABCI application reporting its state.
type infoer interface {
	Info(abci.RequestInfo) abci.ResponseInfo
}

// newHTTPHandler returns the router of the operational HTTP server. It
// exposes the metrics gathered by reg and the health of the application.
func newHTTPHandler(reg prometheus.Gatherer, info infoer, logger log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		res := info.Info(abci.RequestInfo{})
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(healthStatus{
			Status:  "ok",
			Version: adminnft.Version(),
			Height:  res.LastBlockHeight,
		})
		if err != nil {
			logger.Error("Cannot write health status", "err", err)
		}
	})
	return r
}
