package usecase

import "time"

const (
	// DefaultListLimit is applied when a caller omits a page size.
	DefaultListLimit = 20
	// MaxListLimit caps a caller-supplied page size.
	MaxListLimit = 100

	// summaryCacheKey is the Redis key for the cached balance summary.
	summaryCacheKey = "report:summary"
	// summaryCacheTTL bounds how stale a cached summary may be.
	summaryCacheTTL = 30 * time.Second
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}

	if limit > MaxListLimit {
		return MaxListLimit
	}

	return limit
}
