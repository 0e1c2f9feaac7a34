package token

import (
	"crypto/rand"
	"encoding/base64"
)

// tokenBytes gives 192 bits of entropy, comfortably above the 128-bit floor
// the download tokens need. 24 bytes encode to exactly 32 URL-safe chars.
const tokenBytes = 24

// New returns an opaque URL-safe capability token. Uniqueness is not enforced
// anywhere downstream, so the generator must make collisions negligible.
func New() string {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process has no usable entropy
		// source; nothing sensible can be served.
		panic("token: crypto/rand unavailable: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
