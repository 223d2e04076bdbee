package digest

import (
	"strconv"
	"strings"

	liberr "github.com/nabbar/netkit/errors"
)

// tokenize splits the portion of a Digest header after the "Digest "
// scheme prefix into name=value pairs, honoring double-quoted values that
// may themselves contain commas (e.g. domain="a b", qop="auth,auth-int").
func tokenize(s string) map[string]string {
	out := make(map[string]string)
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "Digest"))

	i := 0
	for i < len(s) {
		for i < len(s) && (s[i] == ' ' || s[i] == ',') {
			i++
		}
		if i >= len(s) {
			break
		}

		eq := strings.IndexByte(s[i:], '=')
		if eq < 0 {
			break
		}
		key := strings.TrimSpace(s[i : i+eq])
		i += eq + 1

		if i < len(s) && s[i] == '"' {
			end := strings.IndexByte(s[i+1:], '"')
			if end < 0 {
				out[strings.ToLower(key)] = s[i+1:]
				break
			}
			out[strings.ToLower(key)] = s[i+1 : i+1+end]
			i = i + 1 + end + 1
		} else {
			end := strings.IndexByte(s[i:], ',')
			if end < 0 {
				out[strings.ToLower(key)] = strings.TrimSpace(s[i:])
				i = len(s)
			} else {
				out[strings.ToLower(key)] = strings.TrimSpace(s[i : i+end])
				i += end
			}
		}
	}

	return out
}

// ParseWwwAuthenticate parses a WWW-Authenticate: Digest header value.
// Succeeds iff realm and nonce are present; missing algorithm defaults to
// "MD5". Domain values are split on spaces and trimmed — original_source's
// equivalent routine fails to trim, which this implementation corrects.
func ParseWwwAuthenticate(header string) (WwwAuthenticateDigest, liberr.Error) {
	tok := tokenize(header)

	realm, ok := tok["realm"]
	if !ok {
		return WwwAuthenticateDigest{}, liberr.ErrDigestParse.Errorf("missing realm")
	}
	nonce, ok := tok["nonce"]
	if !ok {
		return WwwAuthenticateDigest{}, liberr.ErrDigestParse.Errorf("missing nonce")
	}

	w := WwwAuthenticateDigest{
		Realm:     realm,
		Nonce:     nonce,
		Algorithm: "MD5",
	}

	if alg, ok := tok["algorithm"]; ok && alg != "" {
		w.Algorithm = alg
	}
	if opaque, ok := tok["opaque"]; ok {
		w.Opaque = opaque
	}
	if stale, ok := tok["stale"]; ok {
		w.Stale = strings.EqualFold(stale, "true")
	}
	if domain, ok := tok["domain"]; ok {
		for _, d := range strings.Fields(domain) {
			d = strings.TrimSpace(d)
			if d != "" {
				w.Domains = append(w.Domains, d)
			}
		}
	}
	if qop, ok := tok["qop"]; ok {
		w.QopSet = make(map[string]bool)
		for _, q := range strings.Split(qop, ",") {
			q = strings.TrimSpace(q)
			if q != "" {
				w.QopSet[q] = true
			}
		}
	}

	return w, nil
}

// ParseAuthorization parses an Authorization: Digest header value.
// Succeeds iff username, realm, nonce, uri, response are present; if
// qop is auth or auth-int, cnonce and nc must also be present.
func ParseAuthorization(header string) (AuthorizationDigest, liberr.Error) {
	tok := tokenize(header)

	required := []string{"username", "realm", "nonce", "uri", "response"}
	for _, k := range required {
		if _, ok := tok[k]; !ok {
			return AuthorizationDigest{}, liberr.ErrDigestParse.Errorf("missing %s", k)
		}
	}

	a := AuthorizationDigest{
		Username:  tok["username"],
		Realm:     tok["realm"],
		Nonce:     tok["nonce"],
		URI:       tok["uri"],
		Response:  tok["response"],
		Algorithm: "MD5",
	}

	if alg, ok := tok["algorithm"]; ok && alg != "" {
		a.Algorithm = alg
	}
	if opaque, ok := tok["opaque"]; ok {
		a.Opaque = opaque
	}
	if qop, ok := tok["qop"]; ok {
		a.Qop = qop
	}
	if cnonce, ok := tok["cnonce"]; ok {
		a.Cnonce = cnonce
	}
	if ncHex, ok := tok["nc"]; ok {
		n, err := strconv.ParseUint(ncHex, 16, 32)
		if err != nil {
			return AuthorizationDigest{}, liberr.ErrDigestParse.Errorf("invalid nc %q", ncHex)
		}
		a.NC = uint32(n)
	}

	if a.Qop == "auth" || a.Qop == "auth-int" {
		if a.Cnonce == "" {
			return AuthorizationDigest{}, liberr.ErrDigestParse.Errorf("qop=%s requires cnonce", a.Qop)
		}
		if _, ok := tok["nc"]; !ok {
			return AuthorizationDigest{}, liberr.ErrDigestParse.Errorf("qop=%s requires nc", a.Qop)
		}
	}

	return a, nil
}
