package accessor

import "math/bits"

// swapBytesInPlace reverses buf in place.
func swapBytesInPlace(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// swapUint reverses the low n bytes of x, for n in [0, MaxUintWidth].
// This is the generic, definitely-correct primitive; width-specialised
// callers must agree with it (see swap_test.go).
func swapUint(x uint64, n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return x & 0xff
	case n == 2:
		return uint64(bits.ReverseBytes16(uint16(x)))
	case n == 4:
		return uint64(bits.ReverseBytes32(uint32(x)))
	case n >= 8:
		return bits.ReverseBytes64(x)
	default:
		// n == 3, 5, 6, 7: encode little-endian into a scratch buffer,
		// then read the same width back big-endian.
		var scratch [MaxUintWidth]byte
		writeUintAt(scratch[:n], n, false, x)
		return readUintAt(scratch[:n], n, true)
	}
}

// swapInt reverses the low n bytes of x as swapUint does, then
// sign-extends from bit n*8-1 of the result.
func swapInt(x uint64, n int) uint64 {
	r := swapUint(x, n)
	if n <= 0 || n >= MaxUintWidth {
		return r
	}
	signBit := uint64(1) << uint(n*8-1)
	if r&signBit != 0 {
		r |= ^uint64(0) << uint(n*8)
	}
	return r
}

// readUintAt decodes the first n bytes of p as an unsigned integer,
// big-endian if bigLike, little-endian otherwise. n must be in
// [0, MaxUintWidth] and len(p) >= n.
func readUintAt(p []byte, n int, bigLike bool) uint64 {
	var result uint64
	if bigLike {
		for i := 0; i < n; i++ {
			result = (result << 8) | uint64(p[i])
		}
	} else {
		for i := 0; i < n; i++ {
			result |= uint64(p[i]) << uint(i*8)
		}
	}
	return result
}

// readIntAt decodes the first n bytes of p as a signed integer,
// sign-extended from bit n*8-1.
func readIntAt(p []byte, n int, bigLike bool) int64 {
	result := readUintAt(p, n, bigLike)
	if n <= 0 {
		return 0
	}
	if n >= MaxUintWidth {
		return int64(result)
	}
	signBit := uint64(0x80) << uint((n-1)*8)
	if result&signBit != 0 {
		signExtension := ^uint64(0) &^ (uint64(1)<<uint(n*8) - 1)
		result |= signExtension
	}
	return int64(result)
}

// writeUintAt encodes the low n bytes of x into p, big-endian if
// bigLike, little-endian otherwise. n must be in [0, MaxUintWidth] and
// len(p) >= n.
func writeUintAt(p []byte, n int, bigLike bool, x uint64) {
	if bigLike {
		for i := n; i >= 1; i-- {
			p[i-1] = byte(x)
			x >>= 8
		}
	} else {
		for i := 0; i < n; i++ {
			p[i] = byte(x)
			x >>= 8
		}
	}
}
