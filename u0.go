package structpad

import "hash"

// PadU0 is a padding type with the layout of struct{}.
//
// It occupies no memory. As with any zero-size type, the compiler pads a
// PadU0 that is the last field of a struct so that a pointer to it cannot
// point past the allocation; place it before the final field.
//
// Size: 0 bytes.
type PadU0 struct{}

//go:nosplit
func (PadU0) Size() uintptr { return 0 }

//go:nosplit
func (PadU0) Align() uintptr { return 1 }

// Equal reports true: all PadU0 values are the same value.
//
//go:nosplit
func (PadU0) Equal(PadU0) bool { return true }

// Compare returns 0.
//
//go:nosplit
func (PadU0) Compare(PadU0) int { return 0 }

func (PadU0) Hash(hash.Hash) {}

func (PadU0) String() string { return "PadU0" }

// AppendBinary returns b unchanged.
func (PadU0) AppendBinary(b []byte) ([]byte, error) { return b, nil }

// MarshalBinary returns an empty, non-nil slice.
func (PadU0) MarshalBinary() ([]byte, error) { return []byte{}, nil }

func (PadU0) sealed() {}
