package httpmsg

import (
	"fmt"
	"strconv"
)

// Response is an outbound HTTP/1.x message: status, version, header
// multimap, body, and a derived keep-alive flag. Invariant: every
// non-chunked response carries a Content-Length equal to len(Body);
// keep-alive defaults to the originating request's flag unless the caller
// overrides it.
type Response struct {
	Status    int
	Version   string
	Header    Header
	Body      []byte
	Chunked   bool
	KeepAlive bool
}

// NewResponse builds a Response with Content-Length populated from body
// (0 if empty), defaulting KeepAlive from the request unless overridden
// later by the caller.
func NewResponse(version string, status int, body []byte, keepAlive bool) Response {
	h := NewHeader()
	if body == nil {
		body = []byte{}
	}
	h.Set("Content-Length", strconv.Itoa(len(body)))

	return Response{
		Status:    status,
		Version:   version,
		Header:    h,
		Body:      body,
		KeepAlive: keepAlive,
	}
}

// TextError builds a 4xx/5xx plain-text error response: Content-Type
// text/plain, Content-Length always populated.
func TextError(version string, status int, msg string, keepAlive bool) Response {
	r := NewResponse(version, status, []byte(msg), keepAlive)
	r.Header.Set("Content-Type", "text/plain")
	return r
}

// StatusLine renders "HTTP/1.1 404 Not Found" style status lines.
func (r Response) StatusLine() string {
	return fmt.Sprintf("%s %d %s", r.Version, r.Status, StatusText(r.Status))
}

// statusText holds net/http.StatusText's reason phrases (without 103, 418
// and 425), extended with the handful of widely deployed but unregistered
// codes (444, 499, 599) that original_source's netkit/http/context.h also
// binds a shortcut to.
var statusText = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	102: "Processing",

	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	207: "Multi-Status",
	208: "Already Reported",
	226: "IM Used",

	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",

	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	421: "Misdirected Request",
	422: "Unprocessable Entity",
	423: "Locked",
	424: "Failed Dependency",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",
	444: "Connection Closed Without Response",
	451: "Unavailable For Legal Reasons",
	499: "Client Closed Request",

	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	510: "Not Extended",
	511: "Network Authentication Required",
	599: "Network Connect Timeout Error",
}

// StatusText returns the standard reason phrase for code, or "Unknown"
// for unregistered codes.
func StatusText(code int) string {
	if t, ok := statusText[code]; ok {
		return t
	}
	return "Unknown"
}
