package accessor

// LookAheadBytes copies up to len(out) bytes starting at the cursor
// into out without moving the cursor or recording coverage, and
// returns how many bytes were actually available. Unlike ReadBytes it
// never fails: a short window just yields a short copy.
func (a *Accessor) LookAheadBytes(out []byte) uint64 {
	avail := a.AvailableBytes()
	n := uint64(len(out))
	if n > avail {
		n = avail
	}
	start := a.baseWindowOffset + a.cursor
	copy(out[:n], a.storage.data[start:start+n])
	return n
}

// LookAheadEndianBytes is LookAheadBytes with the copied bytes
// reversed in place if e resolves to the opposite of the host's
// native byte order.
func (a *Accessor) LookAheadEndianBytes(out []byte, e Endianness) uint64 {
	n := a.LookAheadBytes(out)
	if isByteReverseOfHost(e) {
		swapBytesInPlace(out[:n])
	}
	return n
}

// LookAheadAvailableBytes returns a slice onto the accessor's
// remaining unread bytes, without copying. The slice is valid only
// until the cursor next moves or the window is grown.
func (a *Accessor) LookAheadAvailableBytes() []byte {
	start := a.baseWindowOffset + a.cursor
	return a.storage.data[start : start+a.AvailableBytes()]
}

// LookAheadCountBytesBeforeDelimiter scans forward from the cursor,
// without moving it, for the first occurrence of delim starting at
// most limit bytes after the cursor (the search covers
// limit+len(delim) bytes; limit == UntilEnd means the rest of the
// window) and returns the number of bytes preceding it. It returns BeyondEnd
// if delim does not occur in range. len(delim) == 0 is
// InvalidParameter.
func (a *Accessor) LookAheadCountBytesBeforeDelimiter(delim []byte, limit uint64) (uint64, error) {
	if len(delim) == 0 {
		return 0, newError(InvalidParameter)
	}
	avail := a.AvailableBytes()
	if avail < uint64(len(delim)) {
		return 0, newError(BeyondEnd)
	}

	// "not found before limit+dlen bytes" (spec.md §4.5): the searched
	// span must cover limit+len(delim) bytes, not just limit, so a
	// delimiter starting within the last len(delim)-1 bytes of limit is
	// still found.
	searchSpan := avail
	if limit != UntilEnd {
		searchSpan = limit + uint64(len(delim))
		if searchSpan > avail {
			searchSpan = avail
		}
	}
	start := a.baseWindowOffset + a.cursor
	window := a.storage.data[start : start+searchSpan]

	switch len(delim) {
	case 1:
		d := delim[0]
		for i, b := range window {
			if b == d {
				return uint64(i), nil
			}
		}
	case 2:
		d0, d1 := delim[0], delim[1]
		for i := 0; i+1 < len(window); i++ {
			if window[i] == d0 && window[i+1] == d1 {
				return uint64(i), nil
			}
		}
	default:
		for i := 0; i+len(delim) <= len(window); i++ {
			if matchesAt(window, i, delim) {
				return uint64(i), nil
			}
		}
	}
	return 0, newError(BeyondEnd)
}

func matchesAt(window []byte, at int, delim []byte) bool {
	for j, d := range delim {
		if window[at+j] != d {
			return false
		}
	}
	return true
}
