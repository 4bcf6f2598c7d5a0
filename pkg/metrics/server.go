package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/health"
)

// StartServer serves handler on /metrics and, when checker is non-nil, the
// /healthz and /readyz probes. The returned function stops the server.
func StartServer(port int, handler http.Handler, checker *health.Checker) (shutdown func(context.Context) error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	if checker != nil {
		mux.Handle("/healthz", checker.LiveHandler())
		mux.Handle("/readyz", checker.ReadyHandler())
		slog.Info("health probes registered", "checks", checker.Names())
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("metrics server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server error", "error", err)
		}
	}()

	return server.Shutdown
}
