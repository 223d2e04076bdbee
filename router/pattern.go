// Package router implements a path/query compiler and typed argument
// binder: patterns of the form "/seg1/{placeholder}/seg2?q1&q2", compiled
// once at registration time and matched in insertion order against
// inbound (method, raw target) pairs.
package router

import (
	"strings"

	liberr "github.com/nabbar/netkit/errors"
)

// segment is one compiled path component: either a literal to compare
// case-sensitively, or a named placeholder bound positionally.
type segment struct {
	literal     string
	placeholder bool
	name        string
}

// queryParam is one compiled query-parameter declaration. Optionality is
// not encoded in the pattern string; it is derived from the bound handler
// parameter's type (a pointer type is optional), matching the positional
// binding original_source's router test demonstrates.
type queryParam struct {
	name     string
	optional bool
}

func splitPattern(pattern string) (path string, query string) {
	if i := strings.IndexByte(pattern, '?'); i >= 0 {
		return pattern[:i], pattern[i+1:]
	}
	return pattern, ""
}

// compileSegments splits a path pattern into literal/placeholder
// segments, collapsing empty leading/trailing segments the way repeated
// or surrounding slashes normalize in a URL path.
func compileSegments(path string) []segment {
	parts := strings.Split(path, "/")
	out := make([]segment, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if len(p) >= 2 && strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			out = append(out, segment{placeholder: true, name: p[1 : len(p)-1]})
		} else {
			out = append(out, segment{literal: p})
		}
	}
	return out
}

// compileQueryNames parses the "?name&name2" portion into declared names
// in pattern order, rejecting duplicates.
func compileQueryNames(query string) ([]string, liberr.Error) {
	if query == "" {
		return nil, nil
	}
	raw := strings.Split(query, "&")
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, liberr.ErrDuplicateQueryArg.Errorf("duplicate query parameter %q", name)
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}

func splitPathSegments(path string) []string {
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseQuery decodes "application/x-www-form-urlencoded" query strings
// (percent-decoding, '+' -> space). Duplicate keys keep only the first
// occurrence's value, which is all positional binding ever observes.
func parseQuery(raw string) map[string]string {
	out := make(map[string]string)
	if raw == "" {
		return out
	}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		var k, v string
		if i := strings.IndexByte(pair, '='); i >= 0 {
			k, v = pair[:i], pair[i+1:]
		} else {
			k = pair
		}
		k = formDecode(k)
		if _, exists := out[k]; exists {
			continue
		}
		out[k] = formDecode(v)
	}
	return out
}

func formDecode(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	out, err := percentDecode(s)
	if err != nil {
		return s
	}
	return out
}
