package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"sync"
	"syscall"

	"github.com/nabbar/netkit/executor"
	"github.com/nabbar/netkit/logger"
)

// Mode selects which connection variant a Listener hands each accepted
// socket to.
type Mode int

const (
	ModePlain Mode = iota
	ModeTLS
	ModeDetect
)

// Listener implements listen_and_accept: bind, accept loop, per-accept
// handoff, graceful close. Grounded on original_source's
// netkit/tcp/listener.h (referenced from http/server.h's ListenAndServe).
type Listener struct {
	pool   executor.Pool
	pipe   *Pipeline
	mode   Mode
	tlsCfg *tls.Config
	log    logger.Logger

	mu     sync.Mutex
	ln     net.Listener
	closed bool
}

// NewListener builds a Listener that will hand accepted sockets to mode's
// connection variant, dispatching each one's work through pool.
func NewListener(pool executor.Pool, pipe *Pipeline, mode Mode, tlsCfg *tls.Config, log logger.Logger) *Listener {
	return &Listener{pool: pool, pipe: pipe, mode: mode, tlsCfg: tlsCfg, log: log}
}

// ListenAndAccept binds address:port, honoring reuseAddress
// (SO_REUSEADDR), then starts the accept loop on its own goroutine and
// returns once bound.
func (l *Listener) ListenAndAccept(address string, port uint16, reuseAddress bool) error {
	lc := net.ListenConfig{}
	if reuseAddress {
		lc.Control = setReuseAddr
	}

	ln, err := lc.Listen(context.Background(), "tcp", fmt.Sprintf("%s:%d", address, port))
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.ln = ln
	l.mu.Unlock()

	go l.acceptLoop()
	return nil
}

// Close posts a cancellation by closing the acceptor; the pending Accept
// fails and acceptLoop exits.
func (l *Listener) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.ln == nil {
		return nil
	}
	return l.ln.Close()
}

func (l *Listener) isClosed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closed
}

func (l *Listener) acceptLoop() {
	for {
		conn, err := l.ln.Accept()
		if err != nil {
			if l.isClosed() {
				return
			}
			l.log.Warn("accept failed", logger.F("error", err.Error()))
			continue
		}

		ex := l.pool.Next()
		l.dispatch(conn, ex)
	}
}

// dispatch hands conn to the connection variant this Listener serves, on
// its own goroutine (see connection.go's doc comment for why the blocking
// read/write loop does not itself run as a posted executor task).
func (l *Listener) dispatch(conn net.Conn, ex executor.Executor) {
	switch l.mode {
	case ModeTLS:
		go NewSslConnection(conn, l.tlsCfg, l.pipe, ex)
	case ModeDetect:
		go NewDetectConnection(conn, l.tlsCfg, l.pipe, ex)
	default:
		go NewPlainConnection(conn, l.pipe, ex)
	}
}

// setReuseAddr sets SO_REUSEADDR on the listening socket before bind.
// Unix-specific, like the reference implementation's
// boost::asio::socket_base::reuse_address.
func setReuseAddr(_, _ string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
