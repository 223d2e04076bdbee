package transport

import (
	"bufio"
	"crypto/tls"
	"net"

	"github.com/nabbar/netkit/executor"
)

// tlsHandshakeByte is the first byte of a TLS record carrying a
// ClientHello (ContentType Handshake).
const tlsHandshakeByte = 0x16

// bufConn adapts a net.Conn plus a bufio.Reader that has already peeked
// (and possibly buffered) bytes from it back into something that still
// satisfies net.Conn: reads are served from the bufio.Reader first so no
// peeked byte is lost when handing a pre-read socket to a fresh
// SslConnection.
type bufConn struct {
	net.Conn
	br *bufio.Reader
}

func (b *bufConn) Read(p []byte) (int, error) { return b.br.Read(p) }

// NewDetectConnection peeks the first byte of conn to decide whether it
// is a TLS ClientHello or a plaintext request, then hands off to
// SslConnection or PlainConnection accordingly. On a peek error it drops
// the connection silently.
func NewDetectConnection(conn net.Conn, tlsCfg *tls.Config, pipe *Pipeline, ex executor.Executor) {
	br := bufio.NewReader(conn)

	b, err := br.Peek(1)
	if err != nil {
		_ = conn.Close()
		return
	}

	if b[0] == tlsHandshakeByte {
		NewSslConnection(&bufConn{Conn: conn, br: br}, tlsCfg, pipe, ex)
		return
	}

	beginServing(conn, br, pipe, ex, shutdownPlain)
}
