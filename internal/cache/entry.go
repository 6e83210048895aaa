package cache

import (
	"time"
)

// Entry describes a cache file as seen on disk.
// No metadata is persisted; every field is derived from the file itself.
type Entry struct {
	// Key is the cache key (the file name).
	Key string

	// Path is the absolute location of the cache file.
	Path string

	// ModifiedAt is the file's modification time, the only freshness signal.
	ModifiedAt time.Time

	// Size is the payload length in bytes.
	Size int64
}

// Age returns how long ago the entry was written, relative to now.
// The second return value is false when the modification time lies in the
// future and no meaningful age exists.
func (e *Entry) Age(now time.Time) (time.Duration, bool) {
	age := now.Sub(e.ModifiedAt)
	if age < 0 {
		return 0, false
	}
	return age, true
}

// IsExpired reports whether the entry is older than ttl at time now.
// An entry whose age cannot be determined is treated as expired.
func (e *Entry) IsExpired(ttl time.Duration, now time.Time) bool {
	age, ok := e.Age(now)
	if !ok {
		return true
	}
	return age > ttl
}
