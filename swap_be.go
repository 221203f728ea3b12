//go:build !amd64 && !386 && !arm64 && !arm && !riscv64 && !mips64le && !mipsle && !ppc64le && !wasm

package accessor

import "encoding/binary"

// On big-endian or strict-alignment architectures, fall back to the
// portable, alignment-safe binary.NativeEndian rather than an unsafe
// pointer cast. Still correctness-first, still avoids the generic
// per-byte fold.

func hostGetUint16(b []byte) uint16 { return binary.NativeEndian.Uint16(b) }
func hostGetUint32(b []byte) uint32 { return binary.NativeEndian.Uint32(b) }
func hostGetUint64(b []byte) uint64 { return binary.NativeEndian.Uint64(b) }

func hostPutUint16(b []byte, v uint16) { binary.NativeEndian.PutUint16(b, v) }
func hostPutUint32(b []byte, v uint32) { binary.NativeEndian.PutUint32(b, v) }
func hostPutUint64(b []byte, v uint64) { binary.NativeEndian.PutUint64(b, v) }
