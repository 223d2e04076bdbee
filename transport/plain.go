package transport

import (
	"bufio"
	"net"

	"github.com/nabbar/netkit/executor"
)

// NewPlainConnection wraps a plain TCP (or otherwise already-established,
// non-TLS) net.Conn and begins serving it directly — there is no
// handshake step.
func NewPlainConnection(conn net.Conn, pipe *Pipeline, ex executor.Executor) {
	beginServing(conn, bufio.NewReader(conn), pipe, ex, shutdownPlain)
}

func beginServing(conn net.Conn, br *bufio.Reader, pipe *Pipeline, ex executor.Executor, shutdown func(net.Conn)) {
	c := newConnectionState(conn, br, pipe, ex, shutdown)
	c.serve()
}

// shutdownPlain performs a TCP half-close, swallowing any error.
func shutdownPlain(conn net.Conn) {
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
	}
	_ = conn.Close()
}
