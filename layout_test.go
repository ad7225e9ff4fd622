package structpad

import (
	"errors"
	"testing"
	"unsafe"
)

type record struct {
	field1 uint64
	field2 uint8
	pad1   PadU8
	pad2   PadU16
}

type record64 struct {
	field1 uint64
	field2 uint8
	pad1   PadU8
	pad2   PadU16
	pad3   PadU32
}

func TestRecordHasNoHiddenPadding(t *testing.T) {
	var r record
	natural := unsafe.Sizeof(r.field1) + unsafe.Sizeof(r.field2)
	padding := unsafe.Sizeof(r.pad1) + unsafe.Sizeof(r.pad2)
	want := natural + padding
	if PtrSize == 8 {
		var r64 record64
		want += unsafe.Sizeof(r64.pad3)
		if size := unsafe.Sizeof(r64); size != want {
			t.Fatalf("record64 size=%d want=%d", size, want)
		}
		if off := unsafe.Offsetof(r64.pad3); off != 12 {
			t.Fatalf("record64.pad3 offset=%d want=12", off)
		}
		return
	}
	if size := unsafe.Sizeof(r); size != want {
		t.Fatalf("record size=%d want=%d", size, want)
	}
	if off := unsafe.Offsetof(r.pad2); off != 10 {
		t.Fatalf("record.pad2 offset=%d want=10", off)
	}
}

func TestRecordZeroValueComparable(t *testing.T) {
	a := record64{field1: 1, field2: 2}
	b := record64{field1: 1, field2: 2, pad1: PadU8{}, pad3: Value[PadU32]()}
	if a != b {
		t.Fatal("padding affected struct equality")
	}
}

func TestCacheLineComposition(t *testing.T) {
	type stripe struct {
		c uint64
		_ [CacheLineSize/8 - 1]PadU64
	}
	if size := unsafe.Sizeof(stripe{}); size != CacheLineSize {
		t.Fatalf("stripe size=%d want=%d", size, CacheLineSize)
	}
}

func TestLayouts(t *testing.T) {
	ls := Layouts()
	names := []string{"PadU0", "PadU8", "PadU16", "PadU32", "PadU64", "PadUintptr"}
	if len(ls) != len(names) {
		t.Fatalf("len(Layouts())=%d want=%d", len(ls), len(names))
	}
	for i, l := range ls {
		if l.Name != names[i] {
			t.Fatalf("Layouts()[%d].Name=%q want=%q", i, l.Name, names[i])
		}
		if err := l.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if ls[5].Size != PtrSize {
		t.Fatalf("PadUintptr size=%d want=%d", ls[5].Size, PtrSize)
	}
	if ls[0].OptionSize != 1 {
		t.Fatalf("OptionU0 size=%d want=1", ls[0].OptionSize)
	}
}

func TestLayoutCheckError(t *testing.T) {
	l := Describe[PadU32]()
	l.OptionSize = 8
	err := l.Check()
	var le *LayoutError
	if !errors.As(err, &le) {
		t.Fatalf("Check()=%v, want *LayoutError", err)
	}
	if le.Field != "option_size" || le.Got != 8 || le.Want != 4 {
		t.Fatalf("unexpected error %+v", le)
	}
	if got, want := err.Error(), "structpad: PadU32 option_size=8 want=4"; got != want {
		t.Fatalf("Error()=%q want=%q", got, want)
	}

	l = Describe[PadU0]()
	l.OptionSize, l.OptionAlign = 16, 16
	if err := l.Check(); err != nil {
		t.Fatalf("PadU0 option layout should not be checked: %v", err)
	}
	l.Size = 1
	if err := l.Check(); err == nil {
		t.Fatal("Check accepted a non-empty PadU0")
	}

	l = Describe[PadU16]()
	l.ZeroBits = false
	if err := l.Check(); err == nil {
		t.Fatal("Check accepted non-zero bits")
	}
}
