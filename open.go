package accessor

import (
	"io"
	"math/bits"
	"os"

	"github.com/binview/accessor/mmap"
)

func newAccessor(b *base, windowOffset, windowSize uint64) *Accessor {
	return &Accessor{
		storage:          b,
		baseWindowOffset: windowOffset,
		windowSize:       windowSize,
		endianness:       DefaultEndianness(),
	}
}

// OpenReadingMemory wraps an existing byte slice for reading. free
// controls whether Close clears the reference to data; the caller
// always keeps ownership of the backing array itself.
func OpenReadingMemory(data []byte, free FreeOnClose, offset, size uint64) (*Accessor, error) {
	if offset > uint64(len(data)) {
		return nil, newError(BeyondEnd)
	}
	if size == UntilEnd {
		size = uint64(len(data)) - offset
	}
	if offset+size > uint64(len(data)) {
		return nil, newError(BeyondEnd)
	}
	b := &base{
		kind:        storageBorrowed,
		data:        data,
		dataMaxSize: uint64(len(data)),
		freeOnClose: bool(free),
	}
	return newAccessor(b, offset, size), nil
}

// OpenReadingFile opens path (resolved against basePath per opts) and
// returns a read-only accessor over [offset, offset+size). Windows of
// at least mmapMinFileSize bytes are memory-mapped; smaller windows
// are read into a heap buffer.
func OpenReadingFile(basePath, path string, opts PathOptions, offset, size uint64) (*Accessor, error) {
	resolved, err := buildPath(basePath, path, opts)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, wrapError(OpenError, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, wrapError(OpenError, err)
	}
	fileSize := uint64(fi.Size())

	if offset > fileSize {
		f.Close()
		return nil, newError(BeyondEnd)
	}
	if size == UntilEnd {
		size = fileSize - offset
	}
	if offset+size > fileSize {
		f.Close()
		return nil, newError(BeyondEnd)
	}

	if size >= mmapMinFileSize {
		if b, windowOffset, ok := tryMapFile(f, offset, size); ok {
			f.Close()
			a := newAccessor(b, windowOffset, size)
			a.windowOffset = windowOffset
			return a, nil
		}
	}

	data := make([]byte, size)
	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		f.Close()
		return nil, wrapError(HostError, err)
	}
	if err := readFull(f, data); err != nil {
		f.Close()
		return nil, err
	}
	f.Close()

	b := &base{
		kind:           storageOwned,
		data:           data,
		dataMaxSize:    size,
		dataFileOffset: offset,
		freeOnClose:    true,
	}
	return newAccessor(b, 0, size), nil
}

// tryMapFile memory-maps the page-aligned range covering
// [offset, offset+size) of f. It returns ok == false if the mapping
// could not be established, in which case the caller falls back to a
// buffered read.
func tryMapFile(f *os.File, offset, size uint64) (b *base, windowOffset uint64, ok bool) {
	pageSize := uint64(os.Getpagesize())
	skew := offset % pageSize
	mapOffset := offset - skew
	mapSize := size + skew

	m, err := mmap.New(int(f.Fd()), int64(mapOffset), int(mapSize))
	if err != nil {
		return nil, 0, false
	}

	b = &base{
		kind:           storageMapped,
		data:           m.Data(),
		dataMaxSize:    uint64(len(m.Data())),
		dataFileOffset: mapOffset,
		freeOnClose:    true,
		mapped:         m,
	}
	return b, skew, true
}

// readFull reads exactly len(buf) bytes from f, in chunks no larger
// than maxReadChunk, returning BeyondEnd on a short file.
func readFull(f *os.File, buf []byte) error {
	for len(buf) > 0 {
		chunk := buf
		if uint64(len(chunk)) > maxReadChunk {
			chunk = chunk[:maxReadChunk]
		}
		n, err := f.Read(chunk)
		if n > 0 {
			buf = buf[n:]
		}
		if err != nil {
			if err == io.EOF {
				return newError(BeyondEnd)
			}
			return wrapError(HostError, err)
		}
	}
	return nil
}

// writeGranularity returns the default grow-chunk size for the host's
// native integer width, matching the 32-bit/64-bit split of the
// original implementation.
func writeGranularity() uint64 {
	if bits.UintSize == 32 {
		return defaultGranularity32
	}
	return defaultGranularity64
}

func roundUpToGranularity(n, granularity uint64) uint64 {
	if granularity == 0 {
		return n
	}
	if n == 0 {
		return granularity
	}
	return (n + granularity - 1) / granularity * granularity
}

// OpenWritingMemory creates a growable, write-enabled accessor backed
// by a heap buffer. initialAlloc is clamped to maxInitialAllocation;
// granularity of 0 selects writeGranularity().
func OpenWritingMemory(initialAlloc, granularity uint64) (*Accessor, error) {
	if granularity == 0 {
		granularity = writeGranularity()
	}
	if initialAlloc > maxInitialAllocation {
		initialAlloc = maxInitialAllocation
	}
	allocSize := roundUpToGranularity(initialAlloc, granularity)

	b := &base{
		kind:             storageGrowable,
		data:             make([]byte, allocSize),
		dataMaxSize:      allocSize,
		granularity:      granularity,
		mayBeReallocated: true,
		freeOnClose:      true,
		writeEnabled:     true,
	}
	return newAccessor(b, 0, 0), nil
}

// OpenWritingFile creates a growable, write-enabled accessor whose
// contents are flushed to path (created with mode, resolved against
// basePath per opts) when the accessor is closed.
func OpenWritingFile(basePath, path string, opts PathOptions, mode os.FileMode, initialAlloc, granularity uint64) (*Accessor, error) {
	resolved, err := buildPath(basePath, path, opts)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(resolved, os.O_RDWR|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return nil, wrapError(OpenError, err)
	}

	a, err := OpenWritingMemory(initialAlloc, granularity)
	if err != nil {
		f.Close()
		return nil, err
	}
	a.storage.outputFile = f
	a.storage.outputPath = resolved
	a.storage.writeOnClose = true
	return a, nil
}

// WriteToFile snapshots [offset, offset+size) of a's window to a new
// file at path (resolved against basePath per opts, created with
// mode). It does not modify a or consume its cursor.
func WriteToFile(a *Accessor, basePath, path string, opts PathOptions, mode os.FileMode, offset, size uint64) error {
	if offset > a.windowSize {
		return newError(BeyondEnd)
	}
	if size == UntilEnd {
		size = a.windowSize - offset
	}
	if offset+size > a.windowSize {
		return newError(BeyondEnd)
	}

	resolved, err := buildPath(basePath, path, opts)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(resolved, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return wrapError(OpenError, err)
	}
	defer f.Close()

	start := a.baseWindowOffset + offset
	if _, err := f.Write(a.storage.data[start : start+size]); err != nil {
		return wrapError(WriteError, err)
	}
	return nil
}

// OpenReadingAccessorBytes creates a read-only sub-view over the next
// count bytes of super, advancing super's cursor and recording
// coverage against super for the consumed range.
func (super *Accessor) OpenReadingAccessorBytes(count uint64) (*Accessor, error) {
	if super.IsWriteEnabled() {
		return nil, newError(InvalidParameter)
	}
	if count == UntilEnd {
		count = super.AvailableBytes()
	}
	if count > super.AvailableBytes() {
		return nil, newError(BeyondEnd)
	}

	start := super.cursor
	sub := &Accessor{
		storage:          super.storage,
		super:            super,
		windowOffset:     start,
		baseWindowOffset: super.baseWindowOffset + start,
		windowSize:       count,
		endianness:       super.endianness,
	}
	super.refCount++
	super.recordCoverage(start, count)
	super.cursor += count
	return sub, nil
}

// OpenReadingAccessorWindow creates a read-only sub-view over the
// explicit range [offset, offset+size) of super's window. It does not
// move super's cursor or add coverage.
func (super *Accessor) OpenReadingAccessorWindow(offset, size uint64) (*Accessor, error) {
	if super.IsWriteEnabled() {
		return nil, newError(InvalidParameter)
	}
	if size == UntilEnd {
		size = super.windowSize - offset
	}
	if offset > super.windowSize || offset+size > super.windowSize {
		return nil, newError(BeyondEnd)
	}

	sub := &Accessor{
		storage:          super.storage,
		super:            super,
		windowOffset:     offset,
		baseWindowOffset: super.baseWindowOffset + offset,
		windowSize:       size,
		endianness:       super.endianness,
	}
	super.refCount++
	return sub, nil
}
