package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// PhoneToKey derives the opaque identity key for a phone number. The same
// normalized number always maps to the same key, so lookups never need the
// raw number once an account exists.
func PhoneToKey(phone string) string {
	sum := sha256.Sum256([]byte(Normalize(phone)))
	return hex.EncodeToString(sum[:])
}

// Normalize strips spaces, dashes and parentheses and keeps a single leading plus.
func Normalize(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
