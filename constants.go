package accessor

import "math"

// UntilEnd, passed as a size or count, means "up to the end of the
// available data".
const UntilEnd = math.MaxUint64

// MaxUintWidth is the widest integer, in bytes, the scalar codecs
// support.
const MaxUintWidth = 8

// MaxVarintBytes is the maximum number of bytes a LEB128 varint can
// occupy for a MaxUintWidth*8-bit accumulator: ceil(64/7) = 10.
const MaxVarintBytes = (MaxUintWidth*8 + 6) / 7

// defaultGranularity32/64 are the default grow-chunk sizes for a
// writing-memory accessor, matching the 32-bit/64-bit split the
// original implementation used.
const (
	defaultGranularity32 = 4 * 1024
	defaultGranularity64 = 64 * 1024
)

// maxInitialAllocation caps the initial allocation OpenWritingMemory
// honours from its caller; see Open Questions in DESIGN.md.
const maxInitialAllocation = 1 << 20 / 16 // 1/16 MiB

// mmapMinFileSize is the smallest window size, in bytes, for which
// OpenReadingFile prefers mmap over a buffered read.
const mmapMinFileSize = 16 * 1024

// maxReadChunk bounds a single streaming read from a file descriptor.
const maxReadChunk = 1 << 30 // 1 GiB

// FreeOnClose controls whether Close frees a Borrowed/Owned memory
// base's backing array.
type FreeOnClose bool

const (
	DontFreeOnClose FreeOnClose = false
	DoFreeOnClose   FreeOnClose = true
)

// Whence selects the origin for Seek, matching io.Seeker's constants
// under accessor-specific names so the package has no implicit
// dependency on "io" semantics for growth-on-seek past end-of-window.
type Whence int

const (
	SeekSet Whence = iota
	SeekCur
	SeekEnd
)

// ForceRecord controls whether AddCoverageRecord bypasses the
// enabled flag (it never bypasses suspension).
type ForceRecord bool

const (
	OnlyIfEnabled  ForceRecord = false
	EvenIfDisabled ForceRecord = true
)

// PathOptions are ORed together and passed to the file-opening
// routines; they configure the (out of scope, stdlib-backed) path
// builder described in spec.md §6.
type PathOptions uint32

const (
	PathOptionNone PathOptions = 0

	// PathOptionCreateDirectory creates the immediate parent directory
	// of path if it does not exist.
	PathOptionCreateDirectory PathOptions = 0x01

	// PathOptionCreatePath creates the parent directory and any
	// missing intermediate directories. Implies PathOptionCreateDirectory.
	PathOptionCreatePath PathOptions = 0x02

	// PathOptionConvertBackslash converts '\' to '/' in path before
	// resolution.
	PathOptionConvertBackslash PathOptions = 0x04

	// PathOptionPathIsRelative strips a leading '/' or '\' from path,
	// forcing it to be resolved relative to basePath even if it looks
	// absolute.
	PathOptionPathIsRelative PathOptions = 0x08
)
