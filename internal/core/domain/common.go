package domain

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Timestamps are truncated to microseconds so values survive a round trip through
// a timestamptz column unchanged.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Now returns the current time with the precision the store keeps.
func Now() time.Time {
	return now()
}

// newID returns a random UUID used for wallets, transfers, events, keys and users.
func newID() string {
	return uuid.NewString()
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// newEntryID returns a ULID so ledger entry ids sort by creation time.
// The monotonic reader is not safe for concurrent use.
func newEntryID(t time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
