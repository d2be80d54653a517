// Package daily picks the same root word for everyone on a given UTC day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/robalobadob/wordscramble/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Index returns HMAC-SHA256(salt, DateKey(t)) mod n, or 0 when n <= 0.
func Index(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes are plenty for the modulus
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// Root returns the day's root word from roots.
func Root(t time.Time, salt string, roots []string) (string, error) {
	if len(roots) == 0 {
		return "", fmt.Errorf("daily root for %s: %w", DateKey(t), words.ErrDataUnavailable)
	}
	return roots[Index(t, salt, len(roots))], nil
}
