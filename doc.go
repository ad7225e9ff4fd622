// Package structpad provides padding types for laying out structs by hand.
//
// Every padding type has exactly one valid value, its zero value, and the
// same size and alignment as the unsigned integer of the same width. A
// padding field therefore documents intent, keeps zero-initialized memory
// valid, and never changes the result of == on the enclosing struct.
//
// Example:
//
//	type Example struct {
//		Field1 uint64
//		Field2 uint8
//		_      structpad.PadU8
//		_      structpad.PadU16
//		_      structpad.PadU32 // 64-bit targets only
//	}
//
// Named padding fields take the zero value, or [Value] in generic code:
//
//	type Record struct {
//		Field1 uint32
//		Pad    structpad.PadU32
//		Field2 uint64
//	}
//
//	func NewRecord(f1 uint32, f2 uint64) Record {
//		return Record{Field1: f1, Pad: structpad.PadU32{}, Field2: f2}
//	}
//
// The set of padding types is closed: [Pad] is a union of exactly the five
// types of this package, so generic code written against it never sees a
// padding type defined elsewhere.
package structpad
