package structpad

import (
	"fmt"
	"unsafe"
)

// Layout describes the memory layout of one padding type on the current
// target, next to the unsigned integer it mirrors.
type Layout struct {
	Name        string
	Size        uintptr
	Align       uintptr
	OptionSize  uintptr
	OptionAlign uintptr
	ZeroBits    bool

	// Layout of the reference type: uintN, or struct{} for PadU0.
	WantSize        uintptr
	WantAlign       uintptr
	WantOptionAlign uintptr
}

// LayoutError reports a padding type whose layout does not match its
// reference type.
type LayoutError struct {
	Name  string
	Field string
	Got   uintptr
	Want  uintptr
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("structpad: %s %s=%d want=%d", e.Name, e.Field, e.Got, e.Want)
}

// Check verifies that l matches its reference type. A non-nil error is a
// *LayoutError. The option fields are only checked for sized padding.
func (l Layout) Check() error {
	switch {
	case l.Size != l.WantSize:
		return &LayoutError{Name: l.Name, Field: "size", Got: l.Size, Want: l.WantSize}
	case l.Align != l.WantAlign:
		return &LayoutError{Name: l.Name, Field: "align", Got: l.Align, Want: l.WantAlign}
	case l.Size != 0 && l.OptionSize != l.Size:
		return &LayoutError{Name: l.Name, Field: "option_size", Got: l.OptionSize, Want: l.Size}
	case l.Size != 0 && l.OptionAlign != l.WantOptionAlign:
		return &LayoutError{Name: l.Name, Field: "option_align", Got: l.OptionAlign, Want: l.WantOptionAlign}
	case !l.ZeroBits:
		return &LayoutError{Name: l.Name, Field: "nonzero_bytes", Got: l.Size, Want: 0}
	}
	return nil
}

// Describe measures P on the current target.
func Describe[P Pad]() Layout {
	var p P
	switch v := any(p).(type) {
	case PadU0:
		var o OptionU0
		return Layout{
			Name:        v.String(),
			Size:        unsafe.Sizeof(v),
			Align:       unsafe.Alignof(v),
			OptionSize:  unsafe.Sizeof(o),
			OptionAlign: unsafe.Alignof(o),
			ZeroBits:    true,
			WantSize:    unsafe.Sizeof(struct{}{}),
			WantAlign:   unsafe.Alignof(struct{}{}),
			// OptionU0 needs its own flag byte; its layout is reported
			// but not checked.
		}
	case PadU8:
		return describeSized(v, Some(v), uint8(0))
	case PadU16:
		return describeSized(v, Some(v), uint16(0))
	case PadU32:
		return describeSized(v, Some(v), uint32(0))
	case PadU64:
		return describeSized(v, Some(v), uint64(0))
	}
	panic("unreachable")
}

func describeSized[P Sized, U uint8 | uint16 | uint32 | uint64](p P, o Option[P], u U) Layout {
	return Layout{
		Name:            p.String(),
		Size:            unsafe.Sizeof(p),
		Align:           unsafe.Alignof(p),
		OptionSize:      unsafe.Sizeof(o),
		OptionAlign:     unsafe.Alignof(o),
		ZeroBits:        isZero(unsafe.Pointer(&p), unsafe.Sizeof(p)),
		WantSize:        unsafe.Sizeof(u),
		WantAlign:       unsafe.Alignof(u),
		WantOptionAlign: unsafe.Alignof(u),
	}
}

// Layouts describes every padding type, smallest first, followed by
// PadUintptr under its own name.
func Layouts() []Layout {
	ptr := Describe[PadUintptr]()
	ptr.Name = "PadUintptr"
	ptr.WantSize = unsafe.Sizeof(uintptr(0))
	ptr.WantAlign = unsafe.Alignof(uintptr(0))
	ptr.WantOptionAlign = unsafe.Alignof(uintptr(0))
	return []Layout{
		Describe[PadU0](),
		Describe[PadU8](),
		Describe[PadU16](),
		Describe[PadU32](),
		Describe[PadU64](),
		ptr,
	}
}

// Bytes returns the in-memory bytes of p.
func Bytes[P Pad](p P) []byte {
	return append([]byte(nil), unsafe.Slice((*byte)(unsafe.Pointer(&p)), unsafe.Sizeof(p))...)
}

func isZero(ptr unsafe.Pointer, n uintptr) bool {
	for _, b := range unsafe.Slice((*byte)(ptr), n) {
		if b != 0 {
			return false
		}
	}
	return true
}
