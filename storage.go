package accessor

import (
	"os"

	"github.com/binview/accessor/mmap"
)

// storageKind identifies which of the four base storage flavours
// spec.md §3 describes backs a base accessor.
type storageKind int

const (
	storageBorrowed storageKind = iota
	storageOwned
	storageMapped
	storageGrowable
)

// base is the storage a root accessor owns and any of its sub-views
// (transitively) share. Only baseWindowOffset-relative reads and
// writes ever touch base.data directly; sub-views never hold a
// back-pointer into it beyond the shared *base pointer itself, per
// the "avoid back-pointers from base to views" design note.
type base struct {
	kind storageKind

	data           []byte // backing storage; len(data) == dataMaxSize
	dataMaxSize    uint64
	dataFileOffset uint64 // logical file offset of data[0], for RootWindowOffset
	granularity    uint64 // grow-chunk size for storageGrowable

	mayBeReallocated bool
	freeOnClose      bool
	writeOnClose     bool
	writeEnabled     bool

	inputFile  *os.File
	outputFile *os.File
	outputPath string

	mapped *mmap.Map // non-nil only for storageMapped
}

// close releases the storage's resources. windowSize is the owning
// base accessor's window size: only [0, windowSize) of a growable
// buffer holds accumulated data, so a writeOnClose flush must slice to
// it rather than writing out the full, granularity-rounded capacity.
func (b *base) close(windowSize uint64) error {
	var flushErr error
	if b.writeOnClose && b.outputFile != nil {
		if _, err := b.outputFile.Write(b.data[:windowSize]); err != nil {
			flushErr = wrapError(WriteError, err)
		}
	}
	if b.outputFile != nil {
		b.outputFile.Close()
		b.outputFile = nil
	}
	if b.inputFile != nil {
		b.inputFile.Close()
		b.inputFile = nil
	}
	if b.mapped != nil {
		b.mapped.Close()
		b.mapped = nil
	}
	if b.freeOnClose {
		b.data = nil
		b.dataMaxSize = 0
	}
	return flushErr
}
