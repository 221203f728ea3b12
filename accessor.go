package accessor

// CoverageRecord describes a byte range an accessor has consumed and
// why. Offset is relative to the accessor's own window.
type CoverageRecord struct {
	Offset uint64
	Size   uint64
	Usage1 int64
	Usage2 any
}

// Accessor is a cursor + window + endianness over a byte storage. A
// base accessor (created by one of the Open* functions) owns a
// *base; a sub-view shares its ultimate ancestor's *base and keeps it
// alive via a strong reference to its immediate super.
type Accessor struct {
	storage *base // shared storage; never nil on a live accessor
	super   *Accessor

	refCount    int // number of currently open direct sub-views of this accessor
	pendingClose bool
	closed      bool

	windowOffset     uint64 // offset inside the super's window (0 for a base, unless mmap page-skew)
	baseWindowOffset uint64 // cumulative offset into storage.data — the only field used at read/write time
	windowSize       uint64
	cursor           uint64

	endianness  Endianness
	cursorStack []uint64

	coverageEnabled bool
	coverageSuspend int
	coverageUsage1  int64
	coverageUsage2  any
	coverageRecords []CoverageRecord
}

// AvailableBytes returns windowSize - cursor.
func (a *Accessor) AvailableBytes() uint64 {
	return a.windowSize - a.cursor
}

// WindowSize returns the size of the accessor's window.
func (a *Accessor) WindowSize() uint64 {
	return a.windowSize
}

// Cursor returns the current cursor position within the window.
func (a *Accessor) Cursor() uint64 {
	return a.cursor
}

// Endianness returns the accessor's current endianness.
func (a *Accessor) Endianness() Endianness {
	return a.endianness
}

// SetEndianness changes the accessor's endianness for subsequent
// operations.
func (a *Accessor) SetEndianness(e Endianness) {
	a.endianness = e
}

// IsWriteEnabled reports whether write operations are accepted: the
// accessor's base must be write-enabled, and the accessor itself must
// not be a sub-view (sub-views are always read-only, even over a
// write-enabled base).
func (a *Accessor) IsWriteEnabled() bool {
	return a.super == nil && a.storage.writeEnabled
}

// RootWindowOffset returns the logical byte position of this
// accessor's window start in the original file or memory region.
func (a *Accessor) RootWindowOffset() uint64 {
	return a.baseWindowOffset + a.storage.dataFileOffset
}

// basePointer returns the slice of storage.data starting at the
// accessor's current cursor.
func (a *Accessor) basePointer() []byte {
	start := a.baseWindowOffset + a.cursor
	return a.storage.data[start:]
}

// checkWriteEnabled returns ReadOnlyError unless the accessor is a
// write-enabled base accessor.
func (a *Accessor) checkWriteEnabled() error {
	if !a.IsWriteEnabled() {
		return newError(ReadOnlyError)
	}
	return nil
}

// Close releases the accessor. If it still has open sub-views, the
// teardown is deferred until the last of them is closed. Closing an
// already-closed accessor is a no-op.
func (a *Accessor) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	if a.refCount > 0 {
		a.pendingClose = true
		return nil
	}
	return a.teardown()
}

// teardown actually releases resources once no live sub-view remains.
func (a *Accessor) teardown() error {
	a.cursorStack = nil
	a.coverageRecords = nil

	if a.super != nil {
		a.super.refCount--
		if a.super.refCount == 0 && a.super.pendingClose {
			return a.super.teardown()
		}
		return nil
	}
	return a.storage.close(a.windowSize)
}

// Swap exchanges the state of two accessors. If either was not
// write-enabled before the swap, both become not-write-enabled after
// it — the mechanism by which a write-to-file-on-close accessor is
// turned into a read-only view of what it built (spec.md §4.2).
func Swap(a, b *Accessor) {
	*a, *b = *b, *a
	if !a.storage.writeEnabled || !b.storage.writeEnabled {
		a.storage.writeEnabled = false
		b.storage.writeEnabled = false
	}
}
