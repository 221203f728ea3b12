package accessor

import "unicode/utf16"

// ReadCString scans from the cursor for a NUL terminator, sets *out
// to the bytes before it, and advances the cursor past the
// terminator. A missing terminator before the end of the window is
// BeyondEnd and leaves the cursor unmoved.
func (a *Accessor) ReadCString(out *string) error {
	startOffset := a.cursor
	start := a.baseWindowOffset + a.cursor
	window := a.storage.data[start : start+a.AvailableBytes()]

	nul := -1
	for i, b := range window {
		if b == 0 {
			nul = i
			break
		}
	}
	if nul < 0 {
		return newError(BeyondEnd)
	}

	*out = string(window[:nul])
	a.cursor += uint64(nul) + 1
	a.recordCoverage(startOffset, uint64(nul)+1)
	return nil
}

// WriteCString writes s followed by a single NUL byte. s must not
// itself contain a NUL byte.
func (a *Accessor) WriteCString(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return newError(InvalidParameter)
		}
	}
	if err := a.WriteBytes([]byte(s)); err != nil {
		return err
	}
	return a.WriteEndianUint8(0, a.endianness)
}

// ReadPString reads a Pascal-style string: a one-byte length prefix
// followed by that many bytes.
func (a *Accessor) ReadPString(out *string) error {
	var lenBuf [1]byte
	if a.LookAheadBytes(lenBuf[:]) < 1 {
		return newError(BeyondEnd)
	}
	n := uint64(lenBuf[0])

	startOffset := a.cursor
	if 1+n > a.AvailableBytes() {
		return newError(BeyondEnd)
	}
	start := a.baseWindowOffset + startOffset + 1
	*out = string(a.storage.data[start : start+n])
	a.cursor += 1 + n
	a.recordCoverage(startOffset, 1+n)
	return nil
}

// WritePString writes s as a Pascal-style string. len(s) must not
// exceed 255.
func (a *Accessor) WritePString(s string) error {
	if len(s) > 255 {
		return newError(InvalidParameter)
	}
	if err := a.WriteEndianUint8(uint8(len(s)), a.endianness); err != nil {
		return err
	}
	return a.WriteBytes([]byte(s))
}

// ReadFixedLengthString reads exactly n bytes into *out verbatim, no
// terminator or padding assumed.
func (a *Accessor) ReadFixedLengthString(out *string, n uint64) error {
	buf := make([]byte, n)
	if err := a.ReadBytes(buf); err != nil {
		return err
	}
	*out = string(buf)
	return nil
}

// WriteFixedLengthString writes s into exactly n bytes, zero-padding
// on the right if s is shorter. len(s) > n is InvalidParameter.
func (a *Accessor) WriteFixedLengthString(s string, n uint64) error {
	if uint64(len(s)) > n {
		return newError(InvalidParameter)
	}
	buf := make([]byte, n)
	copy(buf, s)
	return a.WriteBytes(buf)
}

// ReadPaddedString reads n bytes and trims any trailing NUL padding
// from *out.
func (a *Accessor) ReadPaddedString(out *string, n uint64) error {
	buf := make([]byte, n)
	if err := a.ReadBytes(buf); err != nil {
		return err
	}
	end := len(buf)
	for end > 0 && buf[end-1] == 0 {
		end--
	}
	*out = string(buf[:end])
	return nil
}

// ReadEndianString16 scans NUL-terminated UTF-16 code units (NUL
// meaning the code unit 0x0000) starting at the cursor, decodes them
// with e's byte order, and advances the cursor past the terminator.
func (a *Accessor) ReadEndianString16(out *string, e Endianness) error {
	var units []uint16
	for {
		var u uint16
		if err := a.ReadEndianUint16(&u, e); err != nil {
			return err
		}
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	*out = string(utf16.Decode(units))
	return nil
}

// WriteEndianString16 writes s as UTF-16 code units with e's byte
// order, followed by a NUL code unit.
func (a *Accessor) WriteEndianString16(s string, e Endianness) error {
	for _, u := range utf16.Encode([]rune(s)) {
		if err := a.WriteEndianUint16(u, e); err != nil {
			return err
		}
	}
	return a.WriteEndianUint16(0, e)
}

// ReadEndianString32 scans NUL-terminated UTF-32 code units starting
// at the cursor, decoding them with e's byte order.
func (a *Accessor) ReadEndianString32(out *string, e Endianness) error {
	var runes []rune
	for {
		var u uint32
		if err := a.ReadEndianUint32(&u, e); err != nil {
			return err
		}
		if u == 0 {
			break
		}
		runes = append(runes, rune(u))
	}
	*out = string(runes)
	return nil
}

// WriteEndianString32 writes s as UTF-32 code units with e's byte
// order, followed by a NUL code unit.
func (a *Accessor) WriteEndianString32(s string, e Endianness) error {
	for _, r := range s {
		if err := a.WriteEndianUint32(uint32(r), e); err != nil {
			return err
		}
	}
	return a.WriteEndianUint32(0, e)
}
