// Package id generates opaque event identifiers.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// New returns a 32-character lowercase hex string from 16 random bytes.
// Used as the unique event_id of audit entries.
func New() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
