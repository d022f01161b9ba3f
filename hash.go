package simdstring

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Hash returns the 64-bit xxHash of the content. Strings with equal content
// hash equally whatever their mode.
func (s *String) Hash() uint64 {
	return xxhash.Sum64(s.bytes())
}

// Hash32 returns the 32-bit murmur3 hash of the content.
func (s *String) Hash32() uint32 {
	return murmur3.Sum32(s.bytes())
}
