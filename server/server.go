package server

import (
	"crypto/tls"
	"sync"

	liberr "github.com/nabbar/netkit/errors"
	"github.com/nabbar/netkit/executor"
	"github.com/nabbar/netkit/logger"
	"github.com/nabbar/netkit/router"
	"github.com/nabbar/netkit/transport"
)

// Server wires a Settings and a Router into one listening HTTP/1.1
// endpoint, grounded on nabbar-golib/httpserver.Server's
// ListenAndServe/Shutdown lifecycle over a validated config, and on
// original_source/netkit/http/server.h's BasicServer<T>.
type Server struct {
	settings Settings
	router   *router.Router
	log      logger.Logger

	mu       sync.Mutex
	listener *transport.Listener
	running  bool
}

// New builds a Server for settings, serving r. log defaults to a no-op
// logger when nil.
func New(settings Settings, r *router.Router, log logger.Logger) *Server {
	if log == nil {
		log = logger.Noop()
	}
	return &Server{settings: settings, router: r, log: log}
}

// Name returns this server's configured name, used by Pool to key it.
func (s *Server) Name() string { return s.settings.Name }

// Run validates Settings, builds the transport Listener for the
// configured Mode, and starts accepting connections dispatched through
// pool. It returns once the listener is bound; the accept loop then runs
// on its own goroutine independently of this call.
func (s *Server) Run(pool executor.Pool) liberr.Error {
	if err := s.settings.Validate(); err != nil {
		return err
	}

	var tlsCfg *tls.Config
	if s.settings.TLS != nil {
		cfg, terr := s.settings.TLS.TLSConfig()
		if terr != nil {
			return terr
		}
		tlsCfg = cfg
	}

	pipe := s.settings.pipeline(s.router, s.log)

	listener := transport.NewListener(pool, pipe, s.settings.Mode, tlsCfg, s.log)
	if err := listener.ListenAndAccept(s.settings.Address, s.settings.Port, s.settings.ReuseAddress); err != nil {
		return liberr.New(err)
	}

	s.mu.Lock()
	s.listener = listener
	s.running = true
	s.mu.Unlock()

	s.log.Info("server listening",
		logger.F("name", s.settings.Name),
		logger.F("address", s.settings.Address),
		logger.F("port", s.settings.Port),
	)
	return nil
}

// Shutdown closes the listener, refusing further accepts. In-flight
// connections finish their current request/response and close naturally
// at their next non-keep-alive response or read error.
func (s *Server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.listener == nil {
		return
	}
	if err := s.listener.Close(); err != nil {
		s.log.Warn("listener close failed", logger.F("name", s.settings.Name), logger.F("error", err.Error()))
	}
	s.running = false
}

// IsRunning reports whether Run has succeeded and Shutdown has not yet
// been called.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
