package main

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newMux serves the allocator metrics and the runtime profiles.
func newMux(reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

// exporter runs the debug HTTP listener for the duration of a run.
type exporter struct {
	server *http.Server
}

func newExporter(addr string, reg *prometheus.Registry) *exporter {
	return &exporter{server: &http.Server{
		Addr:              addr,
		Handler:           newMux(reg),
		ReadHeaderTimeout: 10 * time.Second,
	}}
}

// start listens in the background. Listener errors other than a clean
// shutdown are sent on the returned channel.
func (e *exporter) start() <-chan error {
	errc := make(chan error, 1)
	go func() {
		if err := e.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()
	return errc
}

func (e *exporter) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.server.Shutdown(ctx)
}
