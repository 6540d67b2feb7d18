package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/leo2lion/distribution-law/internal/config"
	"github.com/leo2lion/distribution-law/internal/logging"
	"github.com/leo2lion/distribution-law/internal/service"
	"github.com/leo2lion/distribution-law/internal/web"
	"github.com/leo2lion/distribution-law/pkg/histplotter"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		addr   string
		smooth bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive form, histogram, CSV export and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Bind(a.v, cmd.Flags()); err != nil {
				return err
			}
			defaults, err := config.Load(a.v)
			if err != nil {
				return err
			}

			var svc service.Service
			svc = service.New()
			svc = service.LoggingMiddleware(logging.GetLogger("service"))(svc)
			svc = service.NewPrometheusMiddleware()(svc)

			opts := histplotter.DefaultOptions()
			opts.Smooth = smooth

			r := mux.NewRouter()
			r.PathPrefix("/api/").Handler(service.MakeHTTPHandler(svc, logging.GetLogger("api")))
			r.Handle("/metrics", promhttp.Handler())
			web.Register(r, svc, *defaults, opts, logging.GetLogger("web"))

			return serve(cmd.Context(), &http.Server{
				Addr:              addr,
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			})
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&smooth, "smooth", false, "overlay smoothed bin counts on the histogram")
	return cmd
}

// serve runs srv until it fails or the process is interrupted.
func serve(ctx context.Context, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	level.Info(logger).Log("msg", "listening", "addr", srv.Addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	level.Info(logger).Log("msg", "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
