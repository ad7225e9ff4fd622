package structpad

import "hash"

// Pad is the closed set of padding types, for use as a type constraint.
//
// A Pad has a single valid value, which is its zero value. The union lists
// the exact types with no ~ terms, so a struct that embeds a padding type
// has the same methods but is not a Pad.
type Pad interface {
	PadU0 | PadU8 | PadU16 | PadU32 | PadU64

	// Size reports the number of bytes the padding occupies.
	Size() uintptr
	// Align reports the alignment of the padding in bytes.
	Align() uintptr
	// Hash writes nothing; the single value contributes no bytes.
	Hash(h hash.Hash)
	// AppendBinary appends Size() zero bytes and never fails.
	AppendBinary(b []byte) ([]byte, error)
	MarshalBinary() ([]byte, error)
	String() string

	sealed()
}

// Sized is the subset of [Pad] that occupies memory.
type Sized interface {
	PadU8 | PadU16 | PadU32 | PadU64
	Pad

	// niche returns the bit pattern an Option uses to mark presence.
	// It is never a valid P.
	niche() any
	occupied() bool
}

// Value returns the only valid value of P.
//
//go:nosplit
func Value[P Pad]() P {
	var p P
	return p
}

// Instantiation fails to compile if a padding type drops out of the set.
var (
	_ = Value[PadU0]
	_ = Value[PadU8]
	_ = Value[PadU16]
	_ = Value[PadU32]
	_ = Value[PadU64]
	_ = Some[PadU8]
	_ = Some[PadU16]
	_ = Some[PadU32]
	_ = Some[PadU64]
)
