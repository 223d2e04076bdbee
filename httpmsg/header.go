// Package httpmsg holds the immutable Request/Response data model and a
// minimal buffered, length-prefixed HTTP/1.x wire codec (no chunked
// request bodies, no HTTP/2). Grounded on badu-http's net/http-derived
// types_header.go/types_request.go/types_response.go.
package httpmsg

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Header is a case-insensitive, order-preserving multimap of header
// fields: field names compare case-insensitively, and each field's value
// order is preserved.
type Header struct {
	keys   []string          // lowercased insertion order of distinct keys
	values map[string][]string
}

// NewHeader returns an empty Header.
func NewHeader() Header {
	return Header{values: make(map[string][]string)}
}

func canonKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Add appends value under key, preserving any existing values for that key.
// It is a no-op if key or value fail RFC 7230 token/field-value validation.
func (h *Header) Add(key, value string) {
	if !httpguts.ValidHeaderFieldName(key) || !httpguts.ValidHeaderFieldValue(value) {
		return
	}
	if h.values == nil {
		h.values = make(map[string][]string)
	}
	k := canonKey(key)
	if _, ok := h.values[k]; !ok {
		h.keys = append(h.keys, k)
	}
	h.values[k] = append(h.values[k], value)
}

// Set replaces any existing values for key with a single value.
func (h *Header) Set(key, value string) {
	h.Del(key)
	h.Add(key, value)
}

// Del removes all values for key.
func (h *Header) Del(key string) {
	k := canonKey(key)
	if _, ok := h.values[k]; !ok {
		return
	}
	delete(h.values, k)
	for i, existing := range h.keys {
		if existing == k {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
}

// Get returns the first value for key, or "" if absent.
func (h Header) Get(key string) string {
	vs := h.values[canonKey(key)]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Values returns every value recorded for key, in insertion order.
func (h Header) Values(key string) []string {
	return h.values[canonKey(key)]
}

// Has reports whether key has at least one value.
func (h Header) Has(key string) bool {
	return len(h.values[canonKey(key)]) > 0
}

// Keys returns the distinct header names in first-insertion order.
func (h Header) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Clone returns a deep copy.
func (h Header) Clone() Header {
	out := NewHeader()
	for _, k := range h.keys {
		vs := h.values[k]
		cp := make([]string, len(vs))
		copy(cp, vs)
		out.keys = append(out.keys, k)
		out.values[k] = cp
	}
	return out
}
