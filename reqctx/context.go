// Package reqctx implements the per-request façade handlers and filters
// operate on: a Context owning a non-owning reference back to its
// connection, the parsed Request, a typed user-data slot, and the
// CORS-scoped origin annotation. Grounded on original_source's
// netkit/http/context.h plus
// github.com/nabbar/golib/atomic's typed-value-slot idiom (atomic/value.go)
// for the user-data attachment.
package reqctx

import (
	"strconv"
	"sync"

	"github.com/nabbar/netkit/httpmsg"
)

// ResponseWriter is the narrow capability a Context needs from its owning
// connection: write exactly one response. Defined here (rather than
// importing transport directly) so transport can depend on reqctx without
// a import cycle; transport's unexported connection type satisfies this
// interface.
type ResponseWriter interface {
	WriteResponse(resp httpmsg.Response) error
}

// Context is created after header parse and lives until the response
// write completes or a filter short-circuits the pipeline. At most one
// response may be written per Context.
type Context struct {
	mu         sync.Mutex
	conn       ResponseWriter
	req        httpmsg.Request
	responded  bool
	origin     string
	userData   interface{}
	onResponse func(*httpmsg.Response) // set by the pipeline to let the filter chain annotate outbound responses
}

// New creates a Context for req, bound to conn for its single response.
func New(conn ResponseWriter, req httpmsg.Request) *Context {
	return &Context{conn: conn, req: req}
}

// Request returns the immutable request view.
func (c *Context) Request() httpmsg.Request {
	return c.req
}

// SetOutboundHook installs the callback the pipeline uses to run the
// filter chain's outbound hooks before the response is actually written.
// Internal wiring detail, not part of the public handler-facing surface.
func (c *Context) SetOutboundHook(fn func(*httpmsg.Response)) {
	c.onResponse = fn
}

// Responded reports whether this Context has already produced a response.
func (c *Context) Responded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.responded
}

// ResponseOption customizes a Context.Response call.
type ResponseOption func(*httpmsg.Response)

// WithBody sets the body and Content-Type together, the common case for
// a one-shot "respond with this status and this body" call.
func WithBody(body []byte, contentType string) ResponseOption {
	return func(r *httpmsg.Response) {
		r.Body = body
		if contentType != "" {
			r.Header.Set("Content-Type", contentType)
		}
	}
}

// WithKeepAlive overrides the default (request-derived) keep-alive flag.
func WithKeepAlive(keepAlive bool) ResponseOption {
	return func(r *httpmsg.Response) { r.KeepAlive = keepAlive }
}

// WithHeader adds one extra response header.
func WithHeader(key, value string) ResponseOption {
	return func(r *httpmsg.Response) { r.Header.Add(key, value) }
}

// Response emits the single response this Context is allowed to produce.
// A second call is a logic error and panics: callers should not treat
// double-response as a recoverable path.
func (c *Context) Response(status int, opts ...ResponseOption) error {
	c.mu.Lock()
	if c.responded {
		c.mu.Unlock()
		panic("reqctx: Context.Response called twice")
	}
	c.responded = true
	c.mu.Unlock()

	resp := httpmsg.NewResponse(c.req.Version, status, nil, c.req.KeepAlive())
	for _, opt := range opts {
		opt(&resp)
	}
	if !resp.Chunked {
		resp.Header.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	}

	if c.onResponse != nil {
		c.onResponse(&resp)
	}

	return c.conn.WriteResponse(resp)
}

// Origin returns the CORS-scoped origin annotation (empty if unset).
func (c *Context) Origin() string { return c.origin }

// SetOrigin sets the CORS-scoped origin annotation. Called by filter.CORS.
func (c *Context) SetOrigin(origin string) { c.origin = origin }

// SetUserData attaches v as this Context's user-data payload, replacing
// any previous value. The payload is opaque to the core.
func (c *Context) SetUserData(v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userData = v
}

// TryGetUserData attempts to retrieve the Context's user-data payload as
// type T, reporting ok=false if no payload was set or it was set with a
// different concrete type. Exposed as a generic free function, since Go
// methods cannot carry their own type parameters, standing in for the
// original's "try_get_user_data<T>" member template.
func TryGetUserData[T any](c *Context) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if c.userData == nil {
		return zero, false
	}
	v, ok := c.userData.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
