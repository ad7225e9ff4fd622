package structpad

import "github.com/ryanavella/struct-pad/internal/opt"

// CacheLineSize is the cache line size of the target in bytes.
//
// Padding to a cache line is done by composition, for example
//
//	_ [structpad.CacheLineSize / 8]structpad.PadU64
//
// The value comes from golang.org/x/sys/cpu and can be forced with one of the
// build tags structpad_cachelinesize_32, _64, _128 or _256.
const CacheLineSize = opt.CacheLineSize_
