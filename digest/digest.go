// Package digest implements the RFC 2617 HTTP Digest authentication
// codec: parsing and serializing WWW-Authenticate/Authorization Digest
// headers and computing MD5 responses under the none/auth/auth-int qop
// modes. Grounded on original_source's netkit/http/digest_auth.h/.cpp.
package digest

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// WwwAuthenticateDigest models a server-issued WWW-Authenticate: Digest
// challenge.
type WwwAuthenticateDigest struct {
	Stale     bool
	Realm     string
	Nonce     string
	Algorithm string // defaults to "MD5" on parse
	Domains   []string
	Opaque    string // empty means absent
	QopSet    map[string]bool
}

// AuthorizationDigest models a client-sent Authorization: Digest response.
type AuthorizationDigest struct {
	Username  string
	Realm     string
	Nonce     string
	URI       string
	Response  string
	Algorithm string // defaults to "MD5" on parse
	NC        uint32
	Cnonce    string // empty means absent
	Opaque    string // empty means absent
	Qop       string // empty means absent
}

func md5hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// MakeResponse computes the Digest response value for qop=none (no qop
// token at all): MD5(MD5(user:realm:pass):nonce:MD5(method:uri)).
func (w WwwAuthenticateDigest) MakeResponse(username, password, method, uri string) string {
	ha1 := md5hex(fmt.Sprintf("%s:%s:%s", username, w.Realm, password))
	ha2 := md5hex(fmt.Sprintf("%s:%s", method, uri))
	return md5hex(fmt.Sprintf("%s:%s:%s", ha1, w.Nonce, ha2))
}

// MakeResponseAuth computes the Digest response value for qop=auth:
// MD5(H(A1):nonce:NC:cnonce:"auth":MD5(method:uri)), with NC rendered as
// 8-digit lowercase hex.
func (w WwwAuthenticateDigest) MakeResponseAuth(username, password, method, uri string, nc uint32, cnonce string) string {
	ha1 := md5hex(fmt.Sprintf("%s:%s:%s", username, w.Realm, password))
	ha2 := md5hex(fmt.Sprintf("%s:%s", method, uri))
	return md5hex(fmt.Sprintf("%s:%s:%08x:%s:auth:%s", ha1, w.Nonce, nc, cnonce, ha2))
}

// MakeResponseAuthInt computes the Digest response value for qop=auth-int:
// the second half becomes MD5(method:uri:MD5(body)) and the protection
// tag is "auth-int" (the RFC-correct tag; one variant in original_source
// uses "auth" by mistake for this mode).
func (w WwwAuthenticateDigest) MakeResponseAuthInt(username, password, method, uri, body string, nc uint32, cnonce string) string {
	ha1 := md5hex(fmt.Sprintf("%s:%s:%s", username, w.Realm, password))
	ha2 := md5hex(fmt.Sprintf("%s:%s:%s", method, uri, md5hex(body)))
	return md5hex(fmt.Sprintf("%s:%s:%08x:%s:auth-int:%s", ha1, w.Nonce, nc, cnonce, ha2))
}

func joinQop(qop map[string]bool) []string {
	out := make([]string, 0, len(qop))
	for q := range qop {
		out = append(out, q)
	}
	return out
}

// String serializes the challenge in RFC 2617 token order: realm, nonce,
// algorithm?, domain?, opaque?, qop?, stale? (stale only when true).
func (w WwwAuthenticateDigest) String() string {
	var b strings.Builder
	b.WriteString("Digest ")
	b.WriteString(fmt.Sprintf(`realm=%q, nonce=%q`, w.Realm, w.Nonce))

	if w.Algorithm != "" {
		b.WriteString(fmt.Sprintf(", algorithm=%s", w.Algorithm))
	}
	if len(w.Domains) > 0 {
		b.WriteString(fmt.Sprintf(", domain=%q", strings.Join(w.Domains, " ")))
	}
	if w.Opaque != "" {
		b.WriteString(fmt.Sprintf(", opaque=%q", w.Opaque))
	}
	if len(w.QopSet) > 0 {
		qops := joinQop(w.QopSet)
		b.WriteString(fmt.Sprintf(", qop=%q", strings.Join(qops, ",")))
	}
	if w.Stale {
		b.WriteString(", stale=true")
	}

	return b.String()
}

// String serializes the response in RFC 2617 token order: username,
// realm, nonce, uri, response, algorithm?, cnonce?, opaque?, qop?, nc?.
func (a AuthorizationDigest) String() string {
	var b strings.Builder
	b.WriteString("Digest ")
	b.WriteString(fmt.Sprintf(`username=%q, realm=%q, nonce=%q, uri=%q, response=%q`,
		a.Username, a.Realm, a.Nonce, a.URI, a.Response))

	if a.Algorithm != "" {
		b.WriteString(fmt.Sprintf(", algorithm=%s", a.Algorithm))
	}
	if a.Cnonce != "" {
		b.WriteString(fmt.Sprintf(", cnonce=%q", a.Cnonce))
	}
	if a.Opaque != "" {
		b.WriteString(fmt.Sprintf(", opaque=%q", a.Opaque))
	}
	if a.Qop != "" {
		b.WriteString(fmt.Sprintf(", qop=%s", a.Qop))
	}
	if a.NC > 0 {
		b.WriteString(fmt.Sprintf(", nc=%08x", a.NC))
	}

	return b.String()
}
