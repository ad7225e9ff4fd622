//go:build structpad_cachelinesize_256

package opt

// CacheLineSize_ is forced to 256 bytes via the structpad_cachelinesize_256 build tag.
// Use: go build -tags=structpad_cachelinesize_256
const CacheLineSize_ uintptr = 256
