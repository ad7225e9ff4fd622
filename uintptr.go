package structpad

import "unsafe"

// PtrSize is the size of a pointer in bytes, as an untyped constant.
const PtrSize = 4 << (^uintptr(0) >> 63)

// The build fails here if PadUintptr was selected for the wrong GOARCH.
var (
	_ [unsafe.Sizeof(PadUintptr{}) - unsafe.Sizeof(uintptr(0))]struct{}
	_ [unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(PadUintptr{})]struct{}
	_ [unsafe.Alignof(PadUintptr{}) - unsafe.Alignof(uintptr(0))]struct{}
	_ [unsafe.Alignof(uintptr(0)) - unsafe.Alignof(PadUintptr{})]struct{}
)
