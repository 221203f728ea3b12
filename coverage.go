package accessor

import (
	"fmt"
	"sort"
)

// AllowCoverage enables or disables implicit coverage recording on
// successful reads. New accessors (including sub-views) start with it
// disabled.
func (a *Accessor) AllowCoverage(enabled bool) {
	a.coverageEnabled = enabled
}

// SuspendCoverage increments the suspend counter; while it is above
// zero, no coverage is recorded even if enabled. Calls nest.
func (a *Accessor) SuspendCoverage() {
	a.coverageSuspend++
}

// ResumeCoverage decrements the suspend counter, saturating at zero.
func (a *Accessor) ResumeCoverage() {
	if a.coverageSuspend > 0 {
		a.coverageSuspend--
	}
}

// SetCoverageUsage sets the (usage1, usage2) tags attached to
// subsequently recorded coverage.
func (a *Accessor) SetCoverageUsage(usage1 int64, usage2 any) {
	a.coverageUsage1 = usage1
	a.coverageUsage2 = usage2
}

// recordCoverage is called by every successful read (and by
// OpenReadingAccessorBytes, against the super) with the range just
// consumed. It is a no-op unless coverage is enabled and not
// suspended.
func (a *Accessor) recordCoverage(startOffset, size uint64) {
	if !a.coverageEnabled || a.coverageSuspend != 0 || size == 0 {
		return
	}
	a.coverageRecords = append(a.coverageRecords, CoverageRecord{
		Offset: startOffset,
		Size:   size,
		Usage1: a.coverageUsage1,
		Usage2: a.coverageUsage2,
	})
}

// AddCoverageRecord explicitly records [offset, offset+size) with the
// given usage tags, independent of the accessor's ambient usage set
// by SetCoverageUsage. If size == UntilEnd it extends to the end of
// the window. Ranges outside the window are silently dropped rather
// than erroring, since callers use this to annotate bytes they've
// already consumed via some other means. force controls whether the
// enabled flag is bypassed; suspension is never bypassed.
func (a *Accessor) AddCoverageRecord(offset, size uint64, usage1 int64, usage2 any, force ForceRecord) {
	if !bool(force) && !a.coverageEnabled {
		return
	}
	if a.coverageSuspend != 0 {
		return
	}
	if size == UntilEnd {
		if offset > a.windowSize {
			return
		}
		size = a.windowSize - offset
	}
	if offset+size > a.windowSize || size == 0 {
		return
	}
	a.coverageRecords = append(a.coverageRecords, CoverageRecord{
		Offset: offset,
		Size:   size,
		Usage1: usage1,
		Usage2: usage2,
	})
}

// CoverageRecords returns the accessor's recorded coverage, in
// recording order.
func (a *Accessor) CoverageRecords() []CoverageRecord {
	return a.coverageRecords
}

// CoverageCompareFunc orders two coverage records for
// SummarizeCoverage's sort pass.
type CoverageCompareFunc func(a, b CoverageRecord) bool

// CoverageMergeFunc reports whether b can be folded into a (b
// immediately follows or overlaps a, in the ordering CompareFunc
// established).
type CoverageMergeFunc func(a, b CoverageRecord) bool

// defaultCoverageCompare orders by offset ascending, then size
// descending, then usage1 ascending, then a stable string comparison
// of usage2 (nil sorts first).
func defaultCoverageCompare(a, b CoverageRecord) bool {
	if a.Offset != b.Offset {
		return a.Offset < b.Offset
	}
	if a.Size != b.Size {
		return a.Size > b.Size
	}
	if a.Usage1 != b.Usage1 {
		return a.Usage1 < b.Usage1
	}
	return usage2Key(a.Usage2) < usage2Key(b.Usage2)
}

func usage2Key(u any) string {
	if u == nil {
		return ""
	}
	return fmt.Sprintf("%v", u)
}

// defaultCoverageMerge folds b into a when their usage tags match and
// their ranges overlap or touch.
func defaultCoverageMerge(a, b CoverageRecord) bool {
	if a.Usage1 != b.Usage1 || a.Usage2 != b.Usage2 {
		return false
	}
	return b.Offset <= a.Offset+a.Size
}

// SummarizeCoverage sorts the accessor's coverage records with
// compare (nil selects the default offset/size/usage ordering) and
// merges adjacent records for which merge (nil selects the default
// overlap-or-touch-with-matching-usage rule) returns true, replacing
// the accessor's records with the summarized set and also returning
// it. Merging scans back to front to minimise the number of elements
// shifted.
func (a *Accessor) SummarizeCoverage(compare CoverageCompareFunc, merge CoverageMergeFunc) []CoverageRecord {
	if compare == nil {
		compare = defaultCoverageCompare
	}
	if merge == nil {
		merge = defaultCoverageMerge
	}

	records := append([]CoverageRecord(nil), a.coverageRecords...)
	sort.SliceStable(records, func(i, j int) bool {
		return compare(records[i], records[j])
	})

	for i := len(records) - 1; i > 0; i-- {
		prev, cur := records[i-1], records[i]
		if merge(prev, cur) {
			end := cur.Offset + cur.Size
			if prevEnd := prev.Offset + prev.Size; end > prevEnd {
				prev.Size = end - prev.Offset
			}
			records[i-1] = prev
			records = append(records[:i], records[i+1:]...)
		}
	}

	a.coverageRecords = records
	return records
}
