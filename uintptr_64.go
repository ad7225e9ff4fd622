//go:build amd64 || arm64 || arm64be || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || sparc64 || wasm

package structpad

// PadUintptr is a padding type with the layout of uintptr.
//
// On 64-bit targets it is PadU64.
type PadUintptr = PadU64
