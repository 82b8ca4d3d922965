package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	nftd "github.com/iov-one/adminnft/cmd/nftd/app"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/abci/server"
	"github.com/tendermint/tendermint/libs/log"
)

type startFlags struct {
	bind    string
	metrics string
	debug   bool
}

func startCmd(flags *globalFlags) *cobra.Command {
	var sf startFlags

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the ABCI server",
		Long: `Run the ABCI server. The state is kept in <home>/nftd.db.

Unless disabled with an empty --metrics value, an HTTP server exposes
/metrics for prometheus and /health.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.OutOrStdout(), flags.logLevel)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runStart(ctx, logger, flags.home, sf)
		},
	}

	cmd.Flags().StringVar(&sf.bind, "bind", "tcp://localhost:26658", "address the ABCI server listens on")
	cmd.Flags().StringVar(&sf.metrics, "metrics", ":9090", "address of the metrics and health HTTP server, empty to disable")
	cmd.Flags().BoolVar(&sf.debug, "debug", false, "return the call stack of failed transactions")
	return cmd
}

// runStart serves the application until ctx is cancelled.
func runStart(ctx context.Context, logger log.Logger, home string, sf startFlags) error {
	reg := prometheus.NewRegistry()
	metrics := utils.NewMetrics("nftd", reg)

	application, err := nftd.GenerateApp(home, logger, metrics, sf.debug)
	if err != nil {
		return errors.Wrap(err, "create application")
	}

	logger.Info("Starting ABCI app", "bind", sf.bind)
	svr, err := server.NewServer(sf.bind, "socket", application)
	if err != nil {
		return errors.Wrap(err, "create abci server")
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrap(err, "start abci server")
	}
	defer svr.Stop()

	errCh := make(chan error, 1)
	var httpServer *http.Server
	if sf.metrics != "" {
		httpServer = &http.Server{
			Addr:              sf.metrics,
			Handler:           newHTTPHandler(reg, application, logger.With("module", "http")),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Info("Starting metrics server", "bind", sf.metrics)
		go func() {
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-errCh:
		logger.Error("Metrics server failed", "err", err)
	}

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if serr := httpServer.Shutdown(shutdownCtx); serr != nil {
			logger.Error("Cannot stop metrics server", "err", serr)
		}
	}
	return err
}
