// Package determinism provides primitives for reproducible output:
// content hashes over ordered tables, exact percentages and sorted map iteration.
package determinism

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"slices"

	"github.com/shopspring/decimal"
)

// ContentHash is a SHA-256 hash for content integrity
type ContentHash [32]byte

// ComputeHash computes a content hash from bytes
func ComputeHash(data []byte) ContentHash {
	return sha256.Sum256(data)
}

// Hex returns the hash as a hex string
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String implements Stringer
func (h ContentHash) String() string {
	return h.Hex()[:16] + "..."
}

// ContentHasher hashes a sequence of records. Every part is followed by a
// NUL separator and every record by a record separator, so ("ab","c") and
// ("a","bc") hash differently.
type ContentHasher struct {
	h hash.Hash
}

// NewContentHasher creates an empty hasher
func NewContentHasher() *ContentHasher {
	return &ContentHasher{h: sha256.New()}
}

// Add appends one record
func (c *ContentHasher) Add(parts ...string) {
	for _, part := range parts {
		c.h.Write([]byte(part))
		c.h.Write([]byte{0})
	}
	c.h.Write([]byte{0x1e})
}

// Sum returns the hash of all records added so far
func (c *ContentHasher) Sum() ContentHash {
	var out ContentHash
	copy(out[:], c.h.Sum(nil))
	return out
}

var hundred = decimal.NewFromInt(100)

// Percent returns part/total as a percentage rounded to two places.
// A zero total yields zero.
func Percent(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		DivRound(decimal.NewFromInt(int64(total)), 2)
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
