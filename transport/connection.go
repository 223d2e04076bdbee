package transport

import (
	"bufio"
	"fmt"
	"net"

	liberr "github.com/nabbar/netkit/errors"
	"github.com/nabbar/netkit/executor"
	"github.com/nabbar/netkit/filter"
	"github.com/nabbar/netkit/httpmsg"
	"github.com/nabbar/netkit/logger"
	"github.com/nabbar/netkit/reqctx"
	"github.com/nabbar/netkit/router"
	"github.com/nabbar/netkit/timeout"
)

// connection is the shared per-connection state machine, parameterized
// over the raw net.Conn handed to it by PlainConnection, SslConnection,
// or DetectConnection after their variant-specific begin step
// (handshake, detection) has produced one. It implements
// reqctx.ResponseWriter so a *reqctx.Context can write back to it without
// reqctx importing transport (see reqctx.ResponseWriter's doc comment).
//
// Each accepted socket is pinned to one Go goroutine for its entire
// lifetime; the executor.Pool contract instead backs this connection's
// timeout.Monitor, since Go's runtime already schedules a blocking-read
// goroutine the way the reference implementation's single-threaded
// io_context worker schedules asynchronous continuations — channeling
// the blocking read itself through the bounded worker-task queue would
// starve other connections assigned to the same worker.
type connection struct {
	conn net.Conn
	br   *bufio.Reader
	pipe *Pipeline
	mon  *timeout.Monitor

	lastKeepAlive bool
	shutdown      func(net.Conn)
}

func newConnectionState(conn net.Conn, br *bufio.Reader, pipe *Pipeline, ex executor.Executor, shutdown func(net.Conn)) *connection {
	return &connection{
		conn:     conn,
		br:       br,
		pipe:     pipe,
		mon:      timeout.New(ex),
		shutdown: shutdown,
	}
}

// WriteResponse implements reqctx.ResponseWriter.
func (c *connection) WriteResponse(resp httpmsg.Response) error {
	c.lastKeepAlive = resp.KeepAlive
	return httpmsg.WriteResponse(c.conn, resp)
}

// serve runs the read-header -> filter -> route -> write loop until the
// connection closes or a non-keep-alive response is written.
func (c *connection) serve() {
	defer c.shutdown(c.conn)

	for {
		c.mon.ExpiresAfter(c.pipe.Limits.ReadTimeout, func() { c.conn.Close() })
		req, rerr := httpmsg.ReadRequest(c.br, c.pipe.Limits.HeaderBytes, c.pipe.Limits.BodyBytes)
		c.mon.ExpiresNever()

		if rerr != nil {
			c.handleReadError(rerr)
			return
		}

		if !c.runOnce(req) {
			return
		}
	}
}

// handleReadError disposes of a failed header/body read: body-limit-
// exceeded gets a 413 before closing; everything else (header limit,
// malformed request line, EOF) closes without a response.
func (c *connection) handleReadError(rerr liberr.Error) {
	switch {
	case rerr.IsCode(liberr.ErrBodyTooLarge):
		_ = httpmsg.WriteResponse(c.conn, httpmsg.TextError("HTTP/1.1", 413, "request body too large", false))
	case rerr.IsCode(liberr.ErrConnClosed):
		// client went away; nothing to respond to
	default:
		c.pipe.Log.Warn("request parse failed", logger.F("error", rerr.Error()))
	}
}

// runOnce drives one request through the filter chain and router, and
// reports whether the connection should loop back to READ_HEADER.
func (c *connection) runOnce(req httpmsg.Request) bool {
	ctx := reqctx.New(c, req)
	c.pipe.Filters.Attach(ctx)

	if c.pipe.Filters.RunIncoming(ctx) == filter.Passed {
		c.dispatch(ctx, req)
	}

	if !ctx.Responded() {
		// A filter or handler never wrote a response: there is nothing
		// correct to loop back to, so the connection is torn down rather
		// than leaking the Context indefinitely.
		return false
	}

	return c.lastKeepAlive
}

// dispatch runs the router and recovers a panicking handler into a 400
// with the panic value as its plain-text body.
func (c *connection) dispatch(ctx *reqctx.Context, req httpmsg.Request) {
	defer func() {
		if r := recover(); r != nil && !ctx.Responded() {
			ctx.BadRequest(fmt.Sprintf("%v", r))
		}
	}()

	result := c.pipe.Router.Dispatch(ctx, req.Method, req.Target)
	switch result.Outcome {
	case router.Dispatched:
	case router.NotFound:
		ctx.NotFound("no route matches path")
	case router.MethodNotAllowed:
		ctx.MethodNotAllowed(result.AllowHeader)
	case router.BadRequest:
		ctx.BadRequest("argument coercion failed")
	}
}
