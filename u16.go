package structpad

import (
	"encoding/binary"
	"hash"
	"unsafe"
)

// PadU16 is a padding type with the layout of uint16.
//
// Size: 2 bytes.
type PadU16 struct {
	v u16Repr
}

type u16Repr uint16

const (
	u16Zero  u16Repr = 0
	u16Niche u16Repr = 1 // presence marker inside Option[PadU16]
)

//go:nosplit
func (PadU16) Size() uintptr { return unsafe.Sizeof(PadU16{}) }

//go:nosplit
func (PadU16) Align() uintptr { return unsafe.Alignof(PadU16{}) }

//go:nosplit
func (PadU16) Equal(PadU16) bool { return true }

//go:nosplit
func (PadU16) Compare(PadU16) int { return 0 }

func (PadU16) Hash(hash.Hash) {}

func (PadU16) String() string { return "PadU16" }

// AppendBinary appends two zero bytes.
func (PadU16) AppendBinary(b []byte) ([]byte, error) {
	return binary.LittleEndian.AppendUint16(b, uint16(u16Zero)), nil
}

func (p PadU16) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(make([]byte, 0, 2))
}

func (PadU16) niche() any { return PadU16{v: u16Niche} }

func (p PadU16) occupied() bool { return p.v != u16Zero }

func (PadU16) sealed() {}
