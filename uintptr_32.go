//go:build 386 || arm || armbe || mips || mipsle || ppc || riscv || s390 || sparc || amd64p32 || mips64p32 || mips64p32le

package structpad

// PadUintptr is a padding type with the layout of uintptr.
//
// On 32-bit targets it is PadU32.
type PadUintptr = PadU32
