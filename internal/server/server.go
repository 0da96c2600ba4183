// Package server implements tocd's HTTP API: token-authenticated
// uploads, public wordpass-identified downloads, and the background
// sweep that deletes expired blobs.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/postalsys/toc/internal/config"
	"github.com/postalsys/toc/internal/logging"
	"github.com/postalsys/toc/internal/meta"
	"github.com/postalsys/toc/internal/metrics"
	"github.com/postalsys/toc/internal/server/assets"
	"github.com/postalsys/toc/internal/tarhash"
)

// Server is tocd's HTTP listener and request router.
type Server struct {
	cfg     *config.ServerConfig
	store   *meta.Store
	metrics *metrics.Metrics
	log     *slog.Logger

	httpServer *http.Server
	listener   net.Listener

	stopGC chan struct{}
}

// New builds a Server from cfg. It does not start listening; call
// Start for that.
func New(cfg *config.ServerConfig, store *meta.Store, m *metrics.Metrics, log *slog.Logger) *Server {
	if log == nil {
		log = logging.NopLogger()
	}
	s := &Server{
		cfg:     cfg,
		store:   store,
		metrics: m,
		log:     log,
		stopGC:  make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/upload", s.handleUpload)
	mux.HandleFunc("/ws/upload", s.handleUploadWS)
	mux.HandleFunc("/d/", s.handleDownload)
	mux.Handle("GET /static/", http.FileServerFS(assets.Static))
	mux.HandleFunc("/{id}/", s.handleUploadPage)

	h2s := &http2.Server{}
	var handler http.Handler = mux
	if !cfg.TLS.Enabled() {
		// Without TLS there's no ALPN negotiation, so cleartext
		// HTTP/2 (h2c) needs an explicit upgrade handler.
		handler = h2c.NewHandler(mux, h2s)
	}

	s.httpServer = &http.Server{
		Addr:         cfg.General.Listen,
		Handler:      handler,
		ReadTimeout:  0, // uploads can be long-lived streams
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}
	if cfg.TLS.Enabled() {
		_ = http2.ConfigureServer(s.httpServer, h2s)
	}
	return s
}

// Start begins listening and starts the background GC sweep. It
// returns once the listener is bound; serving happens in the
// background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.httpServer.Addr, err)
	}
	s.listener = ln

	gcInterval := time.Duration(s.cfg.General.GCIntervalSeconds) * time.Second
	go s.store.RunGC(s.stopGC, gcInterval, s.onExpired, s.onSweep)

	go func() {
		var err error
		if s.cfg.TLS.Enabled() {
			err = s.httpServer.ServeTLS(ln, s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			err = s.httpServer.Serve(ln)
		}
		if err != nil && err != http.ErrServerClosed {
			s.log.Error("server stopped", logging.KeyError, err)
		}
	}()

	s.log.Info("tocd listening", logging.KeyAddress, ln.Addr().String())
	return nil
}

// Stop gracefully shuts down the HTTP server and GC sweep.
func (s *Server) Stop(ctx context.Context) error {
	close(s.stopGC)
	return s.httpServer.Shutdown(ctx)
}

// Address returns the bound listener address, or nil before Start.
func (s *Server) Address() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Handler exposes the root http.Handler, mainly so tests can drive it
// with httptest without a real listener.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) onExpired(id tarhash.Hash, _ *meta.Entry) {
	s.log.Info("upload expired", logging.KeyUploadID, id.String())
}

// onSweep records one completed GC pass: RecordGCSweep always fires,
// so GCRuns reflects that a sweep happened even when nothing expired,
// and the storage gauges are refreshed on the same cadence rather
// than needing their own timer.
func (s *Server) onSweep(stats meta.SweepStats) {
	s.metrics.RecordGCSweep(stats.Deleted)
	s.metrics.SetStorageStats(stats.StoredEntries, stats.StoredBytes)
}
