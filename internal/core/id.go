package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// stableIDLen is the hex-encoded identifier length. 16 hex characters keep
// 64 bits of digest, which keeps collision probability negligible at
// tens-of-thousands-of-records scale.
const stableIDLen = 16

// StableID computes a deterministic identifier from a record's identity
// fields. The fields are pipe-joined and hashed with SHA-256, so the output
// is fixed-width and platform-independent, and re-deriving a record from
// identical source bytes reproduces the same ID.
func StableID(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])[:stableIDLen]
}
