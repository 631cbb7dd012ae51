package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Handle derives the opaque owner handle for a principal. The same
// provider and principal always give the same handle, in any letter case.
func Handle(provider, principal string) string {
	sum := sha256.Sum256([]byte(NormalizeHandle(provider + ":" + principal)))
	return hex.EncodeToString(sum[:])
}

// NormalizeHandle is the canonical form handles are compared in.
func NormalizeHandle(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
