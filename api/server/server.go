// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path"
	"sync"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ava-labs/windowsampler/utils/logging"
)

const (
	baseURL               = "/ext"
	serverShutdownTimeout = 10 * time.Second
)

var errAlreadyReserved = errors.New("route is either already aliased or already maps to a handle")

// Server maintains the HTTP router
type Server struct {
	// log this server writes to
	log logging.Logger
	// Maps endpoints to handlers
	router *mux.Router
	// Endpoints that are already in use
	reserved map[string]struct{}
	// points the the router handlers
	handler http.Handler
	// Listens for HTTP traffic on this address
	listenHost string
	listenPort uint16

	lock sync.Mutex
	// http server, set once dispatched
	srv *http.Server
	// closed is set by Shutdown. A later Dispatch returns immediately.
	closed bool
}

// New creates the API server at the provided host and port
func New(
	log logging.Logger,
	host string,
	port uint16,
	allowedOrigins []string,
) *Server {
	router := mux.NewRouter()
	log.Info("API created",
		zap.Strings("allowedOrigins", allowedOrigins),
	)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
	}).Handler(router)

	return &Server{
		log:        log,
		router:     router,
		reserved:   make(map[string]struct{}),
		handler:    gziphandler.GzipHandler(corsHandler),
		listenHost: host,
		listenPort: port,
	}
}

// AddRoute serves [handler] at /ext/[base][endpoint].
func (s *Server) AddRoute(handler http.Handler, base, endpoint string) error {
	url := path.Join(baseURL, base) + endpoint

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, exists := s.reserved[url]; exists {
		return fmt.Errorf("%w: %s", errAlreadyReserved, url)
	}
	s.reserved[url] = struct{}{}

	s.log.Info("adding route",
		zap.String("url", url),
	)
	s.router.Handle(url, handler)
	return nil
}

// Handler returns the handler serving every added route.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Dispatch starts the API server. It blocks until the server is shut down.
func (s *Server) Dispatch() error {
	listenAddress := net.JoinHostPort(s.listenHost, fmt.Sprintf("%d", s.listenPort))
	listener, err := net.Listen("tcp", listenAddress)
	if err != nil {
		return err
	}

	s.log.Info("HTTP API server listening",
		zap.Stringer("address", listener.Addr()),
	)

	s.lock.Lock()
	if s.closed {
		s.lock.Unlock()
		return listener.Close()
	}
	s.srv = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.srv
	s.lock.Unlock()

	err = srv.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown this server
func (s *Server) Shutdown() error {
	s.lock.Lock()
	s.closed = true
	srv := s.srv
	s.lock.Unlock()

	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
