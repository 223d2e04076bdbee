package httpmsg

import "strings"

// Request is an immutable view of a parsed HTTP/1.1 request: method, raw
// target, version, header multimap, and a buffered body.
// Content-Length/chunked framing is already resolved by the time a
// Request exists.
type Request struct {
	Method  string
	Target  string // raw request-URI, unsplit
	Version string // e.g. "HTTP/1.1"
	Header  Header
	Body    []byte
}

// KeepAlive derives the connection persistence flag from the request's
// version and Connection header, per HTTP/1.1 defaults: keep-alive unless
// version is HTTP/1.0 (absent an explicit "keep-alive" token) or an
// explicit "close" token is present.
func (r Request) KeepAlive() bool {
	conn := strings.ToLower(r.Header.Get("Connection"))
	tokens := splitCommaList(conn)

	for _, t := range tokens {
		if t == "close" {
			return false
		}
	}

	if r.Version == "HTTP/1.0" {
		for _, t := range tokens {
			if t == "keep-alive" {
				return true
			}
		}
		return false
	}

	return true
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Path returns the Target's path component (before the first '?').
func (r Request) Path() string {
	if i := strings.IndexByte(r.Target, '?'); i >= 0 {
		return r.Target[:i]
	}
	return r.Target
}

// RawQuery returns the Target's query component (after the first '?'),
// or "" if there is none.
func (r Request) RawQuery() string {
	if i := strings.IndexByte(r.Target, '?'); i >= 0 {
		return r.Target[i+1:]
	}
	return ""
}
