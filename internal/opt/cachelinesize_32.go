//go:build structpad_cachelinesize_32

package opt

// CacheLineSize_ is forced to 32 bytes via the structpad_cachelinesize_32 build tag.
// Use: go build -tags=structpad_cachelinesize_32
const CacheLineSize_ uintptr = 32
