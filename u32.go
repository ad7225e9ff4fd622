package structpad

import (
	"encoding/binary"
	"hash"
	"unsafe"
)

// PadU32 is a padding type with the layout of uint32.
//
// Like the other sized padding types it wraps a representation type with a
// single valid value, u32Zero, so zeroed memory always holds a valid PadU32.
//
// Size: 4 bytes.
type PadU32 struct {
	v u32Repr
}

// u32Repr is the in-memory representation of PadU32.
type u32Repr uint32

const (
	u32Zero  u32Repr = 0
	u32Niche u32Repr = 1 // presence marker inside Option[PadU32]
)

//go:nosplit
func (PadU32) Size() uintptr { return unsafe.Sizeof(PadU32{}) }

//go:nosplit
func (PadU32) Align() uintptr { return unsafe.Alignof(PadU32{}) }

// Equal reports true.
//
//go:nosplit
func (PadU32) Equal(PadU32) bool { return true }

// Compare returns 0; PadU32 values are totally ordered and all equal.
//
//go:nosplit
func (PadU32) Compare(PadU32) int { return 0 }

func (PadU32) Hash(hash.Hash) {}

func (PadU32) String() string { return "PadU32" }

// AppendBinary appends four zero bytes. The error is always nil.
func (PadU32) AppendBinary(b []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint32(b, uint32(u32Zero)), nil
}

func (p PadU32) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(make([]byte, 0, 4))
}

func (PadU32) niche() any { return PadU32{v: u32Niche} }

func (p PadU32) occupied() bool { return p.v != u32Zero }

func (PadU32) sealed() {}
