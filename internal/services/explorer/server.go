// Package explorer hosts the CO2 explorer dashboard over HTTP.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/co2explorer/internal/platform/indicators"
	"github.com/louisbranch/co2explorer/internal/platform/timeouts"
	"github.com/louisbranch/co2explorer/internal/services/explorer/app"
	"github.com/louisbranch/co2explorer/internal/services/explorer/dataset"
	module "github.com/louisbranch/co2explorer/internal/services/explorer/module"
	"github.com/louisbranch/co2explorer/internal/services/explorer/modules/assets"
	"github.com/louisbranch/co2explorer/internal/services/explorer/modules/dashboard"
	"github.com/louisbranch/co2explorer/internal/services/explorer/modules/figures"
	"github.com/louisbranch/co2explorer/internal/services/explorer/modules/health"
	"github.com/louisbranch/co2explorer/internal/services/explorer/platform/httpx"
	"github.com/louisbranch/co2explorer/internal/services/explorer/view"
)

// Config defines the explorer server configuration.
type Config struct {
	HTTPAddr     string
	Debug        bool
	SnapshotYear int
	Store        *dataset.Store
	Catalog      *indicators.Catalog
}

// Server hosts the explorer dashboard.
type Server struct {
	httpAddr   string
	listener   net.Listener
	httpServer *http.Server
}

// NewHandler builds the root handler for a loaded Data Store.
func NewHandler(config Config) (http.Handler, error) {
	if config.Store == nil {
		return nil, errors.New("data store is required")
	}
	catalog := config.Catalog
	if catalog == nil {
		catalog = indicators.Default()
	}
	updaters, err := view.NewUpdaters(config.Store, catalog)
	if err != nil {
		return nil, fmt.Errorf("build view updaters: %w", err)
	}

	middleware := []httpx.Middleware{httpx.RecoverPanic(), httpx.RequestID()}
	if config.Debug {
		middleware = append(middleware, httpx.AccessLog())
	}
	return app.Compose(app.ComposeInput{
		Modules: []module.Module{
			dashboard.New(updaters, config.SnapshotYear, config.Debug),
			figures.New(updaters, config.Debug),
			assets.New(nil),
			health.New(nil),
		},
		Middleware: middleware,
	})
}

// NewServer builds the handler and binds the listen address.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", httpAddr, err)
	}
	return &Server{
		httpAddr: listener.Addr().String(),
		listener: listener,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the bound listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("explorer server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("explorer listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		<-serveErr
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the listener when the server never started serving.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
	if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("close listener: %v", err)
	}
}
