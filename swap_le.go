//go:build amd64 || 386 || arm64 || arm || riscv64 || mips64le || mipsle || ppc64le || wasm

package accessor

import "unsafe"

// On these architectures the host is little-endian and tolerates
// unaligned loads/stores, so a direct pointer cast is a correct,
// zero-overhead way to read or write a value in host-native order.
// hostGetUintN/hostPutUintN are the fast path width-specialised
// helpers behind ReadEndianUint16/32/64 and the probe in endian.go;
// they must agree with the generic fold in swap.go (see swap_test.go).

//go:nosplit
func hostGetUint16(b []byte) uint16 {
	return *(*uint16)(unsafe.Pointer(&b[0]))
}

//go:nosplit
func hostGetUint32(b []byte) uint32 {
	return *(*uint32)(unsafe.Pointer(&b[0]))
}

//go:nosplit
func hostGetUint64(b []byte) uint64 {
	return *(*uint64)(unsafe.Pointer(&b[0]))
}

//go:nosplit
func hostPutUint16(b []byte, v uint16) {
	*(*uint16)(unsafe.Pointer(&b[0])) = v
}

//go:nosplit
func hostPutUint32(b []byte, v uint32) {
	*(*uint32)(unsafe.Pointer(&b[0])) = v
}

//go:nosplit
func hostPutUint64(b []byte, v uint64) {
	*(*uint64)(unsafe.Pointer(&b[0])) = v
}
