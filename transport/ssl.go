package transport

import (
	"bufio"
	"crypto/tls"
	"net"

	"github.com/nabbar/netkit/executor"
)

// NewSslConnection performs a server-side TLS handshake over conn and, on
// success, begins serving it exactly like a plain connection but over the
// encrypted stream. On handshake failure it drops the connection
// silently.
func NewSslConnection(conn net.Conn, tlsCfg *tls.Config, pipe *Pipeline, ex executor.Executor) {
	tlsConn := tls.Server(conn, tlsCfg)
	if err := tlsConn.Handshake(); err != nil {
		_ = tlsConn.Close()
		return
	}
	beginServing(tlsConn, bufio.NewReader(tlsConn), pipe, ex, shutdownTLS)
}

// shutdownTLS performs an async-equivalent TLS close_notify shutdown,
// swallowing errors.
func shutdownTLS(conn net.Conn) {
	if tc, ok := conn.(*tls.Conn); ok {
		_ = tc.CloseWrite()
	}
	_ = conn.Close()
}
