// Package cache provides a small file-backed cache for expensive per-logo
// computations.
//
// Dominant-color extraction walks every pixel of every logo; for a league
// whose logos rarely change between runs that work is wasted. Results are
// cached keyed by the logo's content hash, so renaming or re-numbering files
// never serves stale colors - only actual pixel changes invalidate an entry.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The second result is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-zero ttl expires the entry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ColorKey builds the cache key for a logo's dominant color from the logo
// file's raw bytes.
func ColorKey(logoData []byte) string {
	return fmt.Sprintf("color:%s", Hash(logoData))
}
