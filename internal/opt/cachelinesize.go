//go:build !structpad_cachelinesize_32 && !structpad_cachelinesize_64 && !structpad_cachelinesize_128 && !structpad_cachelinesize_256

package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize_ is the cache line size used to size padding arrays.
// It's automatically calculated using the `golang.org/x/sys` package.
// golang.org/x/sys/cpu reports 0 on wasm, hence the lower bound.
const CacheLineSize_ = max(unsafe.Sizeof(cpu.CacheLinePad{}), 32)
