package structpad

import (
	"hash"
	"unsafe"
)

// PadU8 is a padding type with the layout of uint8.
//
// PadU8 wraps u8Repr, whose only valid value is u8Zero, so every PadU8 is
// a single zero byte.
//
// Size: 1 byte.
type PadU8 struct {
	v u8Repr
}

// u8Repr is the in-memory representation of PadU8.
type u8Repr uint8

const (
	u8Zero  u8Repr = 0
	u8Niche u8Repr = 1 // presence marker inside Option[PadU8]
)

//go:nosplit
func (PadU8) Size() uintptr { return unsafe.Sizeof(PadU8{}) }

//go:nosplit
func (PadU8) Align() uintptr { return unsafe.Alignof(PadU8{}) }

// Equal reports true: there is only one PadU8.
//
//go:nosplit
func (PadU8) Equal(PadU8) bool { return true }

// Compare returns 0.
//
//go:nosplit
func (PadU8) Compare(PadU8) int { return 0 }

func (PadU8) Hash(hash.Hash) {}

func (PadU8) String() string { return "PadU8" }

// AppendBinary implements [encoding.BinaryAppender]. It appends one zero
// byte and never fails.
func (PadU8) AppendBinary(b []byte) ([]byte, error) {
	return append(b, byte(u8Zero)), nil
}

func (p PadU8) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(make([]byte, 0, 1))
}

func (PadU8) niche() any { return PadU8{v: u8Niche} }

func (p PadU8) occupied() bool { return p.v != u8Zero }

func (PadU8) sealed() {}
