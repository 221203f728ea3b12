package accessor

// grow ensures the accessor's window extends at least to newSize,
// reallocating the shared storage if the physical capacity is
// exhausted. Only a write-enabled base accessor may grow; sub-views
// never reach this path since they are always read-only.
func (a *Accessor) grow(newSize uint64) error {
	if newSize <= a.windowSize {
		return nil
	}
	if err := a.checkWriteEnabled(); err != nil {
		return err
	}

	physicalNeed := a.baseWindowOffset + newSize
	if physicalNeed > a.storage.dataMaxSize {
		if !a.storage.mayBeReallocated {
			return newError(InvalidParameter)
		}
		allocSize := roundUpToGranularity(physicalNeed, a.storage.granularity)
		grown := make([]byte, allocSize)
		copy(grown, a.storage.data)
		a.storage.data = grown
		a.storage.dataMaxSize = allocSize
	}

	a.windowSize = newSize
	return nil
}

// PointerForBytesToWrite grows the window as needed and returns a
// slice of exactly n bytes at the cursor, advancing the cursor past
// it. It is the escape hatch original_source/accessor.h calls
// PointerForBytesToWrite: callers that need to build a codec this
// package doesn't provide write directly into the returned slice.
// The slice aliases the accessor's storage and is only valid until the
// next call that moves the cursor or grows the window.
func (a *Accessor) PointerForBytesToWrite(n uint64) ([]byte, error) {
	if err := a.checkWriteEnabled(); err != nil {
		return nil, err
	}
	if err := a.grow(a.cursor + n); err != nil {
		return nil, err
	}
	start := a.baseWindowOffset + a.cursor
	a.cursor += n
	return a.storage.data[start : start+n], nil
}

// PointerForBytesToRead returns a slice of exactly n bytes at the
// cursor without copying, advancing the cursor past it and recording
// coverage as any other read would. It is the read-side counterpart
// of PointerForBytesToWrite (PointerForBytesToRead in
// original_source/accessor.h).
func (a *Accessor) PointerForBytesToRead(n uint64) ([]byte, error) {
	if n > a.AvailableBytes() {
		return nil, newError(BeyondEnd)
	}
	start := a.baseWindowOffset + a.cursor
	startOffset := a.cursor
	a.cursor += n
	a.recordCoverage(startOffset, n)
	return a.storage.data[start : start+n], nil
}
