package accessor

import "testing"

// Scenario 1 from spec.md §8: write unsigned values of widths
// 1/2/3/4/8 bytes, plus one 7-byte write, then read back the signed
// interpretation of each and check the expected two's-complement
// values.
func TestSignedRoundTripScenario(t *testing.T) {
	a, err := OpenWritingMemory(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	a.SetEndianness(Big)

	if err := a.WriteEndianUint8(0x87, Big); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteEndianUint16(0x8765, Big); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteEndianUint24(0x876543, Big); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteEndianUint32(0x87654321, Big); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteEndianUint64(0x876543210fedcba9, Big); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteUint(0x876543210fedcb, 7); err != nil {
		t.Fatal(err)
	}

	if _, err := a.Seek(0, SeekSet); err != nil {
		t.Fatal(err)
	}

	var i8 int8
	var i16 int16
	var i24 int32
	var i32 int32
	var i64 int64
	if err := a.ReadEndianInt8(&i8, Big); err != nil {
		t.Fatal(err)
	}
	if int64(i8) != -0x79 {
		t.Errorf("int8 = %#x, want -0x79", i8)
	}
	if err := a.ReadEndianInt16(&i16, Big); err != nil {
		t.Fatal(err)
	}
	if int64(i16) != -0x789b {
		t.Errorf("int16 = %#x, want -0x789b", i16)
	}
	if err := a.ReadEndianInt24(&i24, Big); err != nil {
		t.Fatal(err)
	}
	if int64(i24) != -0x789abd {
		t.Errorf("int24 = %#x, want -0x789abd", i24)
	}
	if err := a.ReadEndianInt32(&i32, Big); err != nil {
		t.Fatal(err)
	}
	if int64(i32) != -0x789abcdf {
		t.Errorf("int32 = %#x, want -0x789abcdf", i32)
	}
	if err := a.ReadEndianInt64(&i64, Big); err != nil {
		t.Fatal(err)
	}
	if i64 != -0x789abcdef0123457 {
		t.Errorf("int64 = %#x, want -0x789abcdef0123457", i64)
	}
	var i56 int64
	if err := a.ReadInt(&i56, 7); err != nil {
		t.Fatal(err)
	}
	if i56 != -0x789abcdef01235 {
		t.Errorf("int56 = %#x, want -0x789abcdef01235", i56)
	}

	if a.AvailableBytes() != 0 {
		t.Errorf("availableBytes = %d, want 0", a.AvailableBytes())
	}
}

func TestSwapRoundTripAcrossEndiannesses(t *testing.T) {
	for _, e := range []Endianness{Big, Little, Native, Reverse} {
		a, err := OpenWritingMemory(0, 0)
		if err != nil {
			t.Fatal(err)
		}
		if err := a.WriteEndianUint32(0x12345678, e); err != nil {
			t.Fatal(err)
		}
		if _, err := a.Seek(0, SeekSet); err != nil {
			t.Fatal(err)
		}
		var got uint32
		if err := a.ReadEndianUint32(&got, e); err != nil {
			t.Fatal(err)
		}
		if got != 0x12345678 {
			t.Errorf("endianness %v: round trip = %#x, want 0x12345678", e, got)
		}

		if _, err := a.Seek(0, SeekSet); err != nil {
			t.Fatal(err)
		}
		var reversed uint32
		if err := a.ReadEndianUint32(&reversed, Opposite(BigOrLittle(e))); err != nil {
			t.Fatal(err)
		}
		want := uint32(swapUint(0x12345678, 4))
		if reversed != want {
			t.Errorf("endianness %v opposite read = %#x, want %#x", e, reversed, want)
		}
		a.Close()
	}
}

func TestReadBeyondEndLeavesCursorUnchanged(t *testing.T) {
	a, err := OpenReadingMemory([]byte{1, 2, 3}, DontFreeOnClose, 0, UntilEnd)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	var v uint32
	if err := a.ReadEndianUint32(&v, Big); !IsBeyondEnd(err) {
		t.Fatalf("expected BeyondEnd, got %v", err)
	}
	if a.Cursor() != 0 {
		t.Errorf("cursor moved on failed read: %d", a.Cursor())
	}
}

func TestIntAndUintArrayRoundTrips(t *testing.T) {
	a, err := OpenWritingMemory(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	u16 := []uint16{0, 1, 0x8000, 0xffff}
	u32 := []uint32{0, 1, 0x80000000, 0xffffffff}
	u64 := []uint64{0, 1, 0x8000000000000000, 0xffffffffffffffff}
	i16 := []int16{0, -1, 32767, -32768}
	i32 := []int32{0, -1, 2147483647, -2147483648}
	i64 := []int64{0, -1, 9223372036854775807, -9223372036854775808}

	if err := a.WriteEndianUint16Array(u16, Little); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteEndianUint32Array(u32, Little); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteEndianUint64Array(u64, Little); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteEndianInt16Array(i16, Little); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteEndianInt32Array(i32, Little); err != nil {
		t.Fatal(err)
	}
	if err := a.WriteEndianInt64Array(i64, Little); err != nil {
		t.Fatal(err)
	}

	if _, err := a.Seek(0, SeekSet); err != nil {
		t.Fatal(err)
	}

	gotU16 := make([]uint16, len(u16))
	gotU32 := make([]uint32, len(u32))
	gotU64 := make([]uint64, len(u64))
	gotI16 := make([]int16, len(i16))
	gotI32 := make([]int32, len(i32))
	gotI64 := make([]int64, len(i64))

	if err := a.ReadEndianUint16Array(gotU16, Little); err != nil {
		t.Fatal(err)
	}
	if err := a.ReadEndianUint32Array(gotU32, Little); err != nil {
		t.Fatal(err)
	}
	if err := a.ReadEndianUint64Array(gotU64, Little); err != nil {
		t.Fatal(err)
	}
	if err := a.ReadEndianInt16Array(gotI16, Little); err != nil {
		t.Fatal(err)
	}
	if err := a.ReadEndianInt32Array(gotI32, Little); err != nil {
		t.Fatal(err)
	}
	if err := a.ReadEndianInt64Array(gotI64, Little); err != nil {
		t.Fatal(err)
	}

	for i := range u16 {
		if gotU16[i] != u16[i] {
			t.Errorf("u16[%d] = %#x, want %#x", i, gotU16[i], u16[i])
		}
	}
	for i := range u32 {
		if gotU32[i] != u32[i] {
			t.Errorf("u32[%d] = %#x, want %#x", i, gotU32[i], u32[i])
		}
	}
	for i := range u64 {
		if gotU64[i] != u64[i] {
			t.Errorf("u64[%d] = %#x, want %#x", i, gotU64[i], u64[i])
		}
	}
	for i := range i16 {
		if gotI16[i] != i16[i] {
			t.Errorf("i16[%d] = %d, want %d", i, gotI16[i], i16[i])
		}
	}
	for i := range i32 {
		if gotI32[i] != i32[i] {
			t.Errorf("i32[%d] = %d, want %d", i, gotI32[i], i32[i])
		}
	}
	for i := range i64 {
		if gotI64[i] != i64[i] {
			t.Errorf("i64[%d] = %d, want %d", i, gotI64[i], i64[i])
		}
	}
}

func TestInt24ArrayRoundTrip(t *testing.T) {
	a, err := OpenWritingMemory(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	values := []int32{0, -1, 8388607, -8388608}
	if err := a.WriteEndianInt24Array(values, Big); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Seek(0, SeekSet); err != nil {
		t.Fatal(err)
	}

	out := make([]int32, len(values))
	if err := a.ReadEndianInt24Array(out, Big); err != nil {
		t.Fatal(err)
	}
	for i, v := range values {
		if out[i] != v {
			t.Errorf("element %d = %d, want %d", i, out[i], v)
		}
	}
}

func TestUint24ArrayRoundTrip(t *testing.T) {
	a, err := OpenWritingMemory(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	values := []uint32{0x010203, 0x0, 0xffffff, 0x7f7f7f}
	for _, v := range values {
		if err := a.WriteEndianUint24(v, Little); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := a.Seek(0, SeekSet); err != nil {
		t.Fatal(err)
	}

	out := make([]uint32, len(values))
	if err := a.ReadEndianUint24Array(out, Little); err != nil {
		t.Fatal(err)
	}
	for i, v := range values {
		if out[i] != v {
			t.Errorf("element %d = %#x, want %#x", i, out[i], v)
		}
	}
}
