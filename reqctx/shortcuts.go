package reqctx

// Status-named shortcuts for the 1xx, 2xx, 4xx and 5xx status codes,
// mirroring original_source's netkit/http/context.h
// GENERATE_HTTP_RESPONSE_FUNC macro. The 3xx redirection codes have no
// shortcut. Informational and success codes take only ResponseOptions,
// leaving the body to the caller; client- and server-error codes take a
// required message that becomes the plain-text body, matching the
// macro's error-path callers which always pass a diagnostic string. The
// exception is MethodNotAllowed, which takes the Allow header value and
// uses a fixed body. Handlers are free to call Response directly for any
// status without a named shortcut.

func (c *Context) Continue(opts ...ResponseOption) error {
	return c.Response(100, opts...)
}

func (c *Context) SwitchingProtocols(opts ...ResponseOption) error {
	return c.Response(101, opts...)
}

func (c *Context) Processing(opts ...ResponseOption) error {
	return c.Response(102, opts...)
}

func (c *Context) OK(opts ...ResponseOption) error {
	return c.Response(200, opts...)
}

func (c *Context) Created(opts ...ResponseOption) error {
	return c.Response(201, opts...)
}

func (c *Context) Accepted(opts ...ResponseOption) error {
	return c.Response(202, opts...)
}

func (c *Context) NonAuthoritativeInformation(opts ...ResponseOption) error {
	return c.Response(203, opts...)
}

func (c *Context) NoContent(opts ...ResponseOption) error {
	return c.Response(204, opts...)
}

func (c *Context) ResetContent(opts ...ResponseOption) error {
	return c.Response(205, opts...)
}

func (c *Context) PartialContent(opts ...ResponseOption) error {
	return c.Response(206, opts...)
}

func (c *Context) MultiStatus(opts ...ResponseOption) error {
	return c.Response(207, opts...)
}

func (c *Context) AlreadyReported(opts ...ResponseOption) error {
	return c.Response(208, opts...)
}

func (c *Context) ImUsed(opts ...ResponseOption) error {
	return c.Response(226, opts...)
}

func (c *Context) BadRequest(msg string, opts ...ResponseOption) error {
	return c.Response(400, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) Unauthorized(msg string, opts ...ResponseOption) error {
	return c.Response(401, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) PaymentRequired(msg string, opts ...ResponseOption) error {
	return c.Response(402, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) Forbidden(msg string, opts ...ResponseOption) error {
	return c.Response(403, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) NotFound(msg string, opts ...ResponseOption) error {
	return c.Response(404, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) MethodNotAllowed(allow string, opts ...ResponseOption) error {
	all := append([]ResponseOption{
		WithBody([]byte("method not allowed"), "text/plain"),
		WithHeader("Allow", allow),
	}, opts...)
	return c.Response(405, all...)
}

func (c *Context) NotAcceptable(msg string, opts ...ResponseOption) error {
	return c.Response(406, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) ProxyAuthenticationRequired(msg string, opts ...ResponseOption) error {
	return c.Response(407, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) RequestTimeout(msg string, opts ...ResponseOption) error {
	return c.Response(408, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) Conflict(msg string, opts ...ResponseOption) error {
	return c.Response(409, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) Gone(msg string, opts ...ResponseOption) error {
	return c.Response(410, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) LengthRequired(msg string, opts ...ResponseOption) error {
	return c.Response(411, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) PreconditionFailed(msg string, opts ...ResponseOption) error {
	return c.Response(412, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) PayloadTooLarge(msg string, opts ...ResponseOption) error {
	return c.Response(413, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) URITooLong(msg string, opts ...ResponseOption) error {
	return c.Response(414, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) UnsupportedMediaType(msg string, opts ...ResponseOption) error {
	return c.Response(415, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) RangeNotSatisfiable(msg string, opts ...ResponseOption) error {
	return c.Response(416, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) ExpectationFailed(msg string, opts ...ResponseOption) error {
	return c.Response(417, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) MisdirectedRequest(msg string, opts ...ResponseOption) error {
	return c.Response(421, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) UnprocessableEntity(msg string, opts ...ResponseOption) error {
	return c.Response(422, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) Locked(msg string, opts ...ResponseOption) error {
	return c.Response(423, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) FailedDependency(msg string, opts ...ResponseOption) error {
	return c.Response(424, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) UpgradeRequired(msg string, opts ...ResponseOption) error {
	return c.Response(426, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) PreconditionRequired(msg string, opts ...ResponseOption) error {
	return c.Response(428, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) TooManyRequests(msg string, opts ...ResponseOption) error {
	return c.Response(429, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) RequestHeaderFieldsTooLarge(msg string, opts ...ResponseOption) error {
	return c.Response(431, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) ConnectionClosedWithoutResponse(msg string, opts ...ResponseOption) error {
	return c.Response(444, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) UnavailableForLegalReasons(msg string, opts ...ResponseOption) error {
	return c.Response(451, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) ClientClosedRequest(msg string, opts ...ResponseOption) error {
	return c.Response(499, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) InternalServerError(msg string, opts ...ResponseOption) error {
	return c.Response(500, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) NotImplemented(msg string, opts ...ResponseOption) error {
	return c.Response(501, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) BadGateway(msg string, opts ...ResponseOption) error {
	return c.Response(502, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) ServiceUnavailable(msg string, opts ...ResponseOption) error {
	return c.Response(503, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) GatewayTimeout(msg string, opts ...ResponseOption) error {
	return c.Response(504, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) HTTPVersionNotSupported(msg string, opts ...ResponseOption) error {
	return c.Response(505, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) VariantAlsoNegotiates(msg string, opts ...ResponseOption) error {
	return c.Response(506, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) InsufficientStorage(msg string, opts ...ResponseOption) error {
	return c.Response(507, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) LoopDetected(msg string, opts ...ResponseOption) error {
	return c.Response(508, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) NotExtended(msg string, opts ...ResponseOption) error {
	return c.Response(510, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) NetworkAuthenticationRequired(msg string, opts ...ResponseOption) error {
	return c.Response(511, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}

func (c *Context) NetworkConnectTimeoutError(msg string, opts ...ResponseOption) error {
	return c.Response(599, append([]ResponseOption{WithBody([]byte(msg), "text/plain")}, opts...)...)
}
