package accessor

// signExtend sign-extends the low width*8 bits of v, for width in
// [1, MaxUintWidth-1]; wider values are returned unchanged.
func signExtend(v uint64, width int) int64 {
	if width <= 0 || width >= MaxUintWidth {
		return int64(v)
	}
	signBit := uint64(1) << uint(width*8-1)
	if v&signBit != 0 {
		v |= ^uint64(0) << uint(width*8)
	}
	return int64(v)
}

// readEndianUint is the ground-truth scalar decoder every exported
// ReadEndianUintN delegates to. Widths 2, 4 and 8 take a host-native
// load plus a conditional swap; every other width folds byte-by-byte.
// Both paths are required to agree (see swap_test.go).
func (a *Accessor) readEndianUint(width int, e Endianness) (uint64, error) {
	if width < 1 || width > MaxUintWidth {
		return 0, newError(InvalidParameter)
	}
	if uint64(width) > a.AvailableBytes() {
		return 0, newError(BeyondEnd)
	}

	startOffset := a.cursor
	start := a.baseWindowOffset + a.cursor
	p := a.storage.data[start : start+uint64(width)]

	var v uint64
	switch width {
	case 2:
		v = uint64(hostGetUint16(p))
		if isByteReverseOfHost(e) {
			v = swapUint(v, 2)
		}
	case 4:
		v = uint64(hostGetUint32(p))
		if isByteReverseOfHost(e) {
			v = swapUint(v, 4)
		}
	case 8:
		v = hostGetUint64(p)
		if isByteReverseOfHost(e) {
			v = swapUint(v, 8)
		}
	default:
		v = readUintAt(p, width, isBigLike(e))
	}

	a.cursor += uint64(width)
	a.recordCoverage(startOffset, uint64(width))
	return v, nil
}

func (a *Accessor) readEndianInt(width int, e Endianness) (int64, error) {
	v, err := a.readEndianUint(width, e)
	if err != nil {
		return 0, err
	}
	return signExtend(v, width), nil
}

// writeEndianUint is the ground-truth scalar encoder every exported
// WriteEndianUintN delegates to.
func (a *Accessor) writeEndianUint(width int, e Endianness, v uint64) error {
	if width < 1 || width > MaxUintWidth {
		return newError(InvalidParameter)
	}
	if err := a.checkWriteEnabled(); err != nil {
		return err
	}
	if err := a.grow(a.cursor + uint64(width)); err != nil {
		return err
	}

	start := a.baseWindowOffset + a.cursor
	p := a.storage.data[start : start+uint64(width)]

	switch width {
	case 2:
		vv := uint16(v)
		if isByteReverseOfHost(e) {
			vv = uint16(swapUint(uint64(vv), 2))
		}
		hostPutUint16(p, vv)
	case 4:
		vv := uint32(v)
		if isByteReverseOfHost(e) {
			vv = uint32(swapUint(uint64(vv), 4))
		}
		hostPutUint32(p, vv)
	case 8:
		vv := v
		if isByteReverseOfHost(e) {
			vv = swapUint(vv, 8)
		}
		hostPutUint64(p, vv)
	default:
		writeUintAt(p, width, isBigLike(e), v)
	}

	a.cursor += uint64(width)
	return nil
}

func (a *Accessor) writeEndianInt(width int, e Endianness, v int64) error {
	return a.writeEndianUint(width, e, uint64(v))
}

// ReadEndianUint reads an arbitrary width in [1, MaxUintWidth] bytes
// into *out using endianness e. width > MaxUintWidth is
// InvalidParameter.
func (a *Accessor) ReadEndianUint(out *uint64, e Endianness, width int) error {
	v, err := a.readEndianUint(width, e)
	if err != nil {
		return err
	}
	*out = v
	return nil
}

// WriteEndianUint writes the low width bytes of v using endianness e.
func (a *Accessor) WriteEndianUint(v uint64, e Endianness, width int) error {
	return a.writeEndianUint(width, e, v)
}

// ReadEndianInt is ReadEndianUint's signed counterpart: the low width
// bytes are sign-extended from bit width*8-1 into the returned int64.
func (a *Accessor) ReadEndianInt(out *int64, e Endianness, width int) error {
	v, err := a.readEndianInt(width, e)
	if err != nil {
		return err
	}
	*out = v
	return nil
}

// WriteEndianInt writes the low width bytes of v using endianness e.
func (a *Accessor) WriteEndianInt(v int64, e Endianness, width int) error {
	return a.writeEndianInt(width, e, v)
}

// ReadUint/WriteUint/ReadInt/WriteInt are the arbitrary-width codecs
// using the accessor's current endianness.

func (a *Accessor) ReadUint(out *uint64, width int) error {
	return a.ReadEndianUint(out, a.endianness, width)
}

func (a *Accessor) WriteUint(v uint64, width int) error {
	return a.WriteEndianUint(v, a.endianness, width)
}

func (a *Accessor) ReadInt(out *int64, width int) error {
	return a.ReadEndianInt(out, a.endianness, width)
}

func (a *Accessor) WriteInt(v int64, width int) error {
	return a.WriteEndianInt(v, a.endianness, width)
}

// ReadEndianUint8 reads one byte into *out. e is accepted for symmetry
// with the wider variants but has no effect on a single byte.
func (a *Accessor) ReadEndianUint8(out *uint8, e Endianness) error {
	v, err := a.readEndianUint(1, e)
	if err != nil {
		return err
	}
	*out = uint8(v)
	return nil
}

func (a *Accessor) ReadEndianUint16(out *uint16, e Endianness) error {
	v, err := a.readEndianUint(2, e)
	if err != nil {
		return err
	}
	*out = uint16(v)
	return nil
}

func (a *Accessor) ReadEndianUint24(out *uint32, e Endianness) error {
	v, err := a.readEndianUint(3, e)
	if err != nil {
		return err
	}
	*out = uint32(v)
	return nil
}

func (a *Accessor) ReadEndianUint32(out *uint32, e Endianness) error {
	v, err := a.readEndianUint(4, e)
	if err != nil {
		return err
	}
	*out = uint32(v)
	return nil
}

func (a *Accessor) ReadEndianUint64(out *uint64, e Endianness) error {
	v, err := a.readEndianUint(8, e)
	if err != nil {
		return err
	}
	*out = v
	return nil
}

func (a *Accessor) ReadEndianInt8(out *int8, e Endianness) error {
	v, err := a.readEndianInt(1, e)
	if err != nil {
		return err
	}
	*out = int8(v)
	return nil
}

func (a *Accessor) ReadEndianInt16(out *int16, e Endianness) error {
	v, err := a.readEndianInt(2, e)
	if err != nil {
		return err
	}
	*out = int16(v)
	return nil
}

func (a *Accessor) ReadEndianInt24(out *int32, e Endianness) error {
	v, err := a.readEndianInt(3, e)
	if err != nil {
		return err
	}
	*out = int32(v)
	return nil
}

func (a *Accessor) ReadEndianInt32(out *int32, e Endianness) error {
	v, err := a.readEndianInt(4, e)
	if err != nil {
		return err
	}
	*out = int32(v)
	return nil
}

func (a *Accessor) ReadEndianInt64(out *int64, e Endianness) error {
	v, err := a.readEndianInt(8, e)
	if err != nil {
		return err
	}
	*out = v
	return nil
}

func (a *Accessor) WriteEndianUint8(v uint8, e Endianness) error  { return a.writeEndianUint(1, e, uint64(v)) }
func (a *Accessor) WriteEndianUint16(v uint16, e Endianness) error { return a.writeEndianUint(2, e, uint64(v)) }
func (a *Accessor) WriteEndianUint24(v uint32, e Endianness) error { return a.writeEndianUint(3, e, uint64(v)) }
func (a *Accessor) WriteEndianUint32(v uint32, e Endianness) error { return a.writeEndianUint(4, e, uint64(v)) }
func (a *Accessor) WriteEndianUint64(v uint64, e Endianness) error { return a.writeEndianUint(8, e, v) }

func (a *Accessor) WriteEndianInt8(v int8, e Endianness) error   { return a.writeEndianInt(1, e, int64(v)) }
func (a *Accessor) WriteEndianInt16(v int16, e Endianness) error { return a.writeEndianInt(2, e, int64(v)) }
func (a *Accessor) WriteEndianInt24(v int32, e Endianness) error { return a.writeEndianInt(3, e, int64(v)) }
func (a *Accessor) WriteEndianInt32(v int32, e Endianness) error { return a.writeEndianInt(4, e, int64(v)) }
func (a *Accessor) WriteEndianInt64(v int64, e Endianness) error { return a.writeEndianInt(8, e, v) }

// The unqualified Uint8/Uint16/... family reads or writes using the
// accessor's current endianness (see SetEndianness), for callers that
// don't mix endiannesses within one accessor.

func (a *Accessor) ReadUint8(out *uint8) error   { return a.ReadEndianUint8(out, a.endianness) }
func (a *Accessor) ReadUint16(out *uint16) error { return a.ReadEndianUint16(out, a.endianness) }
func (a *Accessor) ReadUint24(out *uint32) error { return a.ReadEndianUint24(out, a.endianness) }
func (a *Accessor) ReadUint32(out *uint32) error { return a.ReadEndianUint32(out, a.endianness) }
func (a *Accessor) ReadUint64(out *uint64) error { return a.ReadEndianUint64(out, a.endianness) }

func (a *Accessor) ReadInt8(out *int8) error   { return a.ReadEndianInt8(out, a.endianness) }
func (a *Accessor) ReadInt16(out *int16) error { return a.ReadEndianInt16(out, a.endianness) }
func (a *Accessor) ReadInt24(out *int32) error { return a.ReadEndianInt24(out, a.endianness) }
func (a *Accessor) ReadInt32(out *int32) error { return a.ReadEndianInt32(out, a.endianness) }
func (a *Accessor) ReadInt64(out *int64) error { return a.ReadEndianInt64(out, a.endianness) }

func (a *Accessor) WriteUint8(v uint8) error   { return a.WriteEndianUint8(v, a.endianness) }
func (a *Accessor) WriteUint16(v uint16) error { return a.WriteEndianUint16(v, a.endianness) }
func (a *Accessor) WriteUint24(v uint32) error { return a.WriteEndianUint24(v, a.endianness) }
func (a *Accessor) WriteUint32(v uint32) error { return a.WriteEndianUint32(v, a.endianness) }
func (a *Accessor) WriteUint64(v uint64) error { return a.WriteEndianUint64(v, a.endianness) }

func (a *Accessor) WriteInt8(v int8) error   { return a.WriteEndianInt8(v, a.endianness) }
func (a *Accessor) WriteInt16(v int16) error { return a.WriteEndianInt16(v, a.endianness) }
func (a *Accessor) WriteInt24(v int32) error { return a.WriteEndianInt24(v, a.endianness) }
func (a *Accessor) WriteInt32(v int32) error { return a.WriteEndianInt32(v, a.endianness) }
func (a *Accessor) WriteInt64(v int64) error { return a.WriteEndianInt64(v, a.endianness) }

// ReadEndianUint16Array fills out with len(out) consecutive uint16
// values, recording a single coverage entry for the whole array
// rather than one per element.
func (a *Accessor) ReadEndianUint16Array(out []uint16, e Endianness) error {
	n := uint64(len(out))
	total := n * 2
	if total > a.AvailableBytes() {
		return newError(BeyondEnd)
	}
	startOffset := a.cursor
	start := a.baseWindowOffset + a.cursor
	reverse := isByteReverseOfHost(e)
	for i := range out {
		p := a.storage.data[start+uint64(i)*2 : start+uint64(i)*2+2]
		v := hostGetUint16(p)
		if reverse {
			v = uint16(swapUint(uint64(v), 2))
		}
		out[i] = v
	}
	a.cursor += total
	a.recordCoverage(startOffset, total)
	return nil
}

// ReadEndianUint32Array is the 32-bit analogue of ReadEndianUint16Array.
func (a *Accessor) ReadEndianUint32Array(out []uint32, e Endianness) error {
	n := uint64(len(out))
	total := n * 4
	if total > a.AvailableBytes() {
		return newError(BeyondEnd)
	}
	startOffset := a.cursor
	start := a.baseWindowOffset + a.cursor
	reverse := isByteReverseOfHost(e)
	for i := range out {
		p := a.storage.data[start+uint64(i)*4 : start+uint64(i)*4+4]
		v := hostGetUint32(p)
		if reverse {
			v = uint32(swapUint(uint64(v), 4))
		}
		out[i] = v
	}
	a.cursor += total
	a.recordCoverage(startOffset, total)
	return nil
}

// ReadEndianUint64Array is the 64-bit analogue of ReadEndianUint16Array.
func (a *Accessor) ReadEndianUint64Array(out []uint64, e Endianness) error {
	n := uint64(len(out))
	total := n * 8
	if total > a.AvailableBytes() {
		return newError(BeyondEnd)
	}
	startOffset := a.cursor
	start := a.baseWindowOffset + a.cursor
	reverse := isByteReverseOfHost(e)
	for i := range out {
		p := a.storage.data[start+uint64(i)*8 : start+uint64(i)*8+8]
		v := hostGetUint64(p)
		if reverse {
			v = swapUint(v, 8)
		}
		out[i] = v
	}
	a.cursor += total
	a.recordCoverage(startOffset, total)
	return nil
}

// ReadEndianUint24Array has no native 3-byte type to memory-cast, so
// it decodes element by element through the generic fold instead of a
// host-load-plus-swap fast path.
func (a *Accessor) ReadEndianUint24Array(out []uint32, e Endianness) error {
	n := uint64(len(out))
	total := n * 3
	if total > a.AvailableBytes() {
		return newError(BeyondEnd)
	}
	startOffset := a.cursor
	start := a.baseWindowOffset + a.cursor
	bigLike := isBigLike(e)
	for i := range out {
		p := a.storage.data[start+uint64(i)*3 : start+uint64(i)*3+3]
		out[i] = uint32(readUintAt(p, 3, bigLike))
	}
	a.cursor += total
	a.recordCoverage(startOffset, total)
	return nil
}

// WriteEndianUint16Array is the write-side mirror of
// ReadEndianUint16Array: it host-stores each element and conditionally
// swaps first, rather than swapping after a memcpy.
func (a *Accessor) WriteEndianUint16Array(in []uint16, e Endianness) error {
	if err := a.checkWriteEnabled(); err != nil {
		return err
	}
	total := uint64(len(in)) * 2
	if err := a.grow(a.cursor + total); err != nil {
		return err
	}
	start := a.baseWindowOffset + a.cursor
	reverse := isByteReverseOfHost(e)
	for i, v := range in {
		if reverse {
			v = uint16(swapUint(uint64(v), 2))
		}
		hostPutUint16(a.storage.data[start+uint64(i)*2:start+uint64(i)*2+2], v)
	}
	a.cursor += total
	return nil
}

// WriteEndianUint32Array is the 32-bit analogue of WriteEndianUint16Array.
func (a *Accessor) WriteEndianUint32Array(in []uint32, e Endianness) error {
	if err := a.checkWriteEnabled(); err != nil {
		return err
	}
	total := uint64(len(in)) * 4
	if err := a.grow(a.cursor + total); err != nil {
		return err
	}
	start := a.baseWindowOffset + a.cursor
	reverse := isByteReverseOfHost(e)
	for i, v := range in {
		if reverse {
			v = uint32(swapUint(uint64(v), 4))
		}
		hostPutUint32(a.storage.data[start+uint64(i)*4:start+uint64(i)*4+4], v)
	}
	a.cursor += total
	return nil
}

// WriteEndianUint64Array is the 64-bit analogue of WriteEndianUint16Array.
func (a *Accessor) WriteEndianUint64Array(in []uint64, e Endianness) error {
	if err := a.checkWriteEnabled(); err != nil {
		return err
	}
	total := uint64(len(in)) * 8
	if err := a.grow(a.cursor + total); err != nil {
		return err
	}
	start := a.baseWindowOffset + a.cursor
	reverse := isByteReverseOfHost(e)
	for i, v := range in {
		if reverse {
			v = swapUint(v, 8)
		}
		hostPutUint64(a.storage.data[start+uint64(i)*8:start+uint64(i)*8+8], v)
	}
	a.cursor += total
	return nil
}

// WriteEndianUint24Array writes each element through the generic
// width-3 encoder, mirroring ReadEndianUint24Array's element-by-element
// decode.
func (a *Accessor) WriteEndianUint24Array(in []uint32, e Endianness) error {
	if err := a.checkWriteEnabled(); err != nil {
		return err
	}
	total := uint64(len(in)) * 3
	if err := a.grow(a.cursor + total); err != nil {
		return err
	}
	start := a.baseWindowOffset + a.cursor
	bigLike := isBigLike(e)
	for i, v := range in {
		writeUintAt(a.storage.data[start+uint64(i)*3:start+uint64(i)*3+3], 3, bigLike, uint64(v))
	}
	a.cursor += total
	return nil
}

// ReadEndianInt16Array/24/32/64Array decode through the corresponding
// unsigned array codec and reinterpret each element as signed, the
// same relationship the scalar Int/Uint pairs have.
func (a *Accessor) ReadEndianInt16Array(out []int16, e Endianness) error {
	tmp := make([]uint16, len(out))
	if err := a.ReadEndianUint16Array(tmp, e); err != nil {
		return err
	}
	for i, v := range tmp {
		out[i] = int16(v)
	}
	return nil
}

func (a *Accessor) ReadEndianInt24Array(out []int32, e Endianness) error {
	tmp := make([]uint32, len(out))
	if err := a.ReadEndianUint24Array(tmp, e); err != nil {
		return err
	}
	for i, v := range tmp {
		out[i] = int32(signExtend(uint64(v), 3))
	}
	return nil
}

func (a *Accessor) ReadEndianInt32Array(out []int32, e Endianness) error {
	tmp := make([]uint32, len(out))
	if err := a.ReadEndianUint32Array(tmp, e); err != nil {
		return err
	}
	for i, v := range tmp {
		out[i] = int32(v)
	}
	return nil
}

func (a *Accessor) ReadEndianInt64Array(out []int64, e Endianness) error {
	tmp := make([]uint64, len(out))
	if err := a.ReadEndianUint64Array(tmp, e); err != nil {
		return err
	}
	for i, v := range tmp {
		out[i] = int64(v)
	}
	return nil
}

// WriteEndianInt16Array/24/32/64Array reinterpret each element as
// unsigned and delegate to the corresponding unsigned array codec.
func (a *Accessor) WriteEndianInt16Array(in []int16, e Endianness) error {
	tmp := make([]uint16, len(in))
	for i, v := range in {
		tmp[i] = uint16(v)
	}
	return a.WriteEndianUint16Array(tmp, e)
}

func (a *Accessor) WriteEndianInt24Array(in []int32, e Endianness) error {
	tmp := make([]uint32, len(in))
	for i, v := range in {
		tmp[i] = uint32(v) & 0xFFFFFF
	}
	return a.WriteEndianUint24Array(tmp, e)
}

func (a *Accessor) WriteEndianInt32Array(in []int32, e Endianness) error {
	tmp := make([]uint32, len(in))
	for i, v := range in {
		tmp[i] = uint32(v)
	}
	return a.WriteEndianUint32Array(tmp, e)
}

func (a *Accessor) WriteEndianInt64Array(in []int64, e Endianness) error {
	tmp := make([]uint64, len(in))
	for i, v := range in {
		tmp[i] = uint64(v)
	}
	return a.WriteEndianUint64Array(tmp, e)
}

// The unqualified array family reads or writes using the accessor's
// current endianness, matching the scalar ReadUint8/WriteUint8 family.

func (a *Accessor) ReadUint16Array(out []uint16) error { return a.ReadEndianUint16Array(out, a.endianness) }
func (a *Accessor) ReadUint24Array(out []uint32) error { return a.ReadEndianUint24Array(out, a.endianness) }
func (a *Accessor) ReadUint32Array(out []uint32) error { return a.ReadEndianUint32Array(out, a.endianness) }
func (a *Accessor) ReadUint64Array(out []uint64) error { return a.ReadEndianUint64Array(out, a.endianness) }

func (a *Accessor) WriteUint16Array(in []uint16) error { return a.WriteEndianUint16Array(in, a.endianness) }
func (a *Accessor) WriteUint24Array(in []uint32) error { return a.WriteEndianUint24Array(in, a.endianness) }
func (a *Accessor) WriteUint32Array(in []uint32) error { return a.WriteEndianUint32Array(in, a.endianness) }
func (a *Accessor) WriteUint64Array(in []uint64) error { return a.WriteEndianUint64Array(in, a.endianness) }

func (a *Accessor) ReadInt16Array(out []int16) error { return a.ReadEndianInt16Array(out, a.endianness) }
func (a *Accessor) ReadInt24Array(out []int32) error { return a.ReadEndianInt24Array(out, a.endianness) }
func (a *Accessor) ReadInt32Array(out []int32) error { return a.ReadEndianInt32Array(out, a.endianness) }
func (a *Accessor) ReadInt64Array(out []int64) error { return a.ReadEndianInt64Array(out, a.endianness) }

func (a *Accessor) WriteInt16Array(in []int16) error { return a.WriteEndianInt16Array(in, a.endianness) }
func (a *Accessor) WriteInt24Array(in []int32) error { return a.WriteEndianInt24Array(in, a.endianness) }
func (a *Accessor) WriteInt32Array(in []int32) error { return a.WriteEndianInt32Array(in, a.endianness) }
func (a *Accessor) WriteInt64Array(in []int64) error { return a.WriteEndianInt64Array(in, a.endianness) }
