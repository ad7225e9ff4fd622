package structpad

import (
	"encoding/binary"
	"hash"
	"unsafe"
)

// PadU64 is a padding type with the layout of uint64.
//
// Its alignment follows uint64 on the target, which is 4 rather than 8 on
// some 32-bit architectures such as 386.
//
// Size: 8 bytes.
type PadU64 struct {
	v u64Repr
}

// u64Repr is the in-memory representation of PadU64.
type u64Repr uint64

const (
	u64Zero  u64Repr = 0
	u64Niche u64Repr = 1 // presence marker inside Option[PadU64]
)

//go:nosplit
func (PadU64) Size() uintptr { return unsafe.Sizeof(PadU64{}) }

//go:nosplit
func (PadU64) Align() uintptr { return unsafe.Alignof(PadU64{}) }

// Equal reports true.
//
//go:nosplit
func (PadU64) Equal(PadU64) bool { return true }

// Compare returns 0.
//
//go:nosplit
func (PadU64) Compare(PadU64) int { return 0 }

func (PadU64) Hash(hash.Hash) {}

func (PadU64) String() string { return "PadU64" }

// AppendBinary appends eight zero bytes. The error is always nil.
func (PadU64) AppendBinary(b []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint64(b, uint64(u64Zero)), nil
}

func (p PadU64) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(make([]byte, 0, 8))
}

func (PadU64) niche() any { return PadU64{v: u64Niche} }

func (p PadU64) occupied() bool { return p.v != u64Zero }

func (PadU64) sealed() {}
