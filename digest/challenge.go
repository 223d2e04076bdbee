package digest

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// NewChallenge builds a fresh WwwAuthenticateDigest for realm, offering the
// given qop values (e.g. "auth", "auth-int"); pass none to build a
// qop-less challenge. Nonce is 16 random bytes hex-encoded; Opaque is a
// random UUID. Grounded on original_source's netkit/http/auth.cpp
// DigestAuth::Challenge, which builds a nonce from a random value and
// process/time entropy.
func NewChallenge(realm string, qop ...string) WwwAuthenticateDigest {
	w := WwwAuthenticateDigest{
		Realm:     realm,
		Nonce:     randomHex(16),
		Algorithm: "MD5",
		Opaque:    uuid.New().String(),
	}

	if len(qop) > 0 {
		w.QopSet = make(map[string]bool, len(qop))
		for _, q := range qop {
			w.QopSet[q] = true
		}
	}

	return w
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is
		// unavailable, which is unrecoverable for a security primitive.
		panic("digest: failed to read random nonce: " + err.Error())
	}
	return hex.EncodeToString(b)
}
