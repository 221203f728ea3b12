package accessor

// ReadBytes copies len(out) bytes at the cursor into out.
func (a *Accessor) ReadBytes(out []byte) error {
	n := uint64(len(out))
	if n > a.AvailableBytes() {
		return newError(BeyondEnd)
	}
	startOffset := a.cursor
	start := a.baseWindowOffset + a.cursor
	copy(out, a.storage.data[start:start+n])
	a.cursor += n
	a.recordCoverage(startOffset, n)
	return nil
}

// ReadEndianBytes copies len(out) bytes at the cursor into out,
// reversing them when e resolves to the opposite of the host's
// native byte order. It exists for blocks that are themselves a
// single multi-byte quantity wider than MaxUintWidth (e.g. a 128-bit
// integer or GUID) where only whole-block reversal, not per-field
// decoding, makes sense.
func (a *Accessor) ReadEndianBytes(out []byte, e Endianness) error {
	if err := a.ReadBytes(out); err != nil {
		return err
	}
	if isByteReverseOfHost(e) {
		swapBytesInPlace(out)
	}
	return nil
}

// ReadAllocatedBytes reads n bytes at the cursor into a freshly
// allocated slice the caller owns.
func (a *Accessor) ReadAllocatedBytes(n uint64) ([]byte, error) {
	out := make([]byte, n)
	if err := a.ReadBytes(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadAllocatedEndianBytes is the allocating form of ReadEndianBytes.
func (a *Accessor) ReadAllocatedEndianBytes(n uint64, e Endianness) ([]byte, error) {
	out := make([]byte, n)
	if err := a.ReadEndianBytes(out, e); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteBytes writes v verbatim at the cursor, growing the window if
// needed.
func (a *Accessor) WriteBytes(v []byte) error {
	if err := a.checkWriteEnabled(); err != nil {
		return err
	}
	n := uint64(len(v))
	if err := a.grow(a.cursor + n); err != nil {
		return err
	}
	start := a.baseWindowOffset + a.cursor
	copy(a.storage.data[start:start+n], v)
	a.cursor += n
	return nil
}

// WriteEndianBytes writes v at the cursor, reversed if e resolves to
// the opposite of the host's native byte order. v is never mutated.
func (a *Accessor) WriteEndianBytes(v []byte, e Endianness) error {
	if !isByteReverseOfHost(e) {
		return a.WriteBytes(v)
	}
	reversed := make([]byte, len(v))
	copy(reversed, v)
	swapBytesInPlace(reversed)
	return a.WriteBytes(reversed)
}
