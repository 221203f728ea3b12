package accessor

// Seek repositions the cursor according to whence. A write-enabled
// accessor may seek past the current window end, growing it (and
// zero-filling the gap) on demand; a read-only accessor rejects any
// target beyond the window with BeyondEnd.
//
// A negative offset is added with uint64 wraparound rather than
// rejected outright: base+offset that would go below zero wraps to a
// very large cursor value, which then fails the ordinary
// past-window-end handling below (BeyondEnd for read-only, an
// oversized grow attempt for write-enabled). This mirrors the
// original implementation's signed-to-unsigned cast and is preserved
// deliberately (see DESIGN.md).
func (a *Accessor) Seek(offset int64, whence Whence) (uint64, error) {
	var base uint64
	switch whence {
	case SeekSet:
		base = 0
	case SeekCur:
		base = a.cursor
	case SeekEnd:
		base = a.windowSize
	default:
		return a.cursor, newError(InvalidParameter)
	}

	newCursor := base + uint64(offset)

	if newCursor > a.windowSize {
		if a.IsWriteEnabled() {
			oldSize := a.windowSize
			if err := a.grow(newCursor); err != nil {
				return a.cursor, err
			}
			start := a.baseWindowOffset + oldSize
			end := a.baseWindowOffset + newCursor
			clear(a.storage.data[start:end])
		} else {
			return a.cursor, newError(BeyondEnd)
		}
	}

	a.cursor = newCursor
	return a.cursor, nil
}

// Truncate sets the window size to the current cursor position,
// discarding any bytes beyond it. Truncate never extends the window,
// since the cursor never exceeds it; growing the window is Seek's job.
func (a *Accessor) Truncate() error {
	if err := a.checkWriteEnabled(); err != nil {
		return err
	}
	a.windowSize = a.cursor
	return nil
}

// PushCursor saves the current cursor position onto the accessor's
// cursor stack, for later restoration with PopCursor.
func (a *Accessor) PushCursor() {
	a.cursorStack = append(a.cursorStack, a.cursor)
}

// PopCursor restores the most recently pushed cursor position via
// Seek(SeekSet), removing it from the stack — so a write-enabled
// accessor may grow if the saved position now lies past the window.
// It returns InvalidParameter if the stack is empty.
func (a *Accessor) PopCursor() error {
	if len(a.cursorStack) == 0 {
		return newError(InvalidParameter)
	}
	last := len(a.cursorStack) - 1
	saved := a.cursorStack[last]
	if _, err := a.Seek(int64(saved), SeekSet); err != nil {
		return err
	}
	a.cursorStack = a.cursorStack[:last]
	return nil
}

// DropCursor discards the most recently pushed cursor position
// without restoring it. It returns InvalidParameter if the stack is
// empty.
func (a *Accessor) DropCursor() error {
	if len(a.cursorStack) == 0 {
		return newError(InvalidParameter)
	}
	a.cursorStack = a.cursorStack[:len(a.cursorStack)-1]
	return nil
}

// PopCursors restores the nth most recently pushed cursor position
// (n == 1 behaves like PopCursor), discarding any pushes made after
// it. It returns InvalidParameter if fewer than n are on the stack.
func (a *Accessor) PopCursors(n int) error {
	if n < 1 || len(a.cursorStack) < n {
		return newError(InvalidParameter)
	}
	target := len(a.cursorStack) - n
	saved := a.cursorStack[target]
	if _, err := a.Seek(int64(saved), SeekSet); err != nil {
		return err
	}
	a.cursorStack = a.cursorStack[:target]
	return nil
}

// DropCursors discards the n most recently pushed cursor positions
// without restoring any of them. It returns InvalidParameter if fewer
// than n are on the stack.
func (a *Accessor) DropCursors(n int) error {
	if n < 1 || len(a.cursorStack) < n {
		return newError(InvalidParameter)
	}
	a.cursorStack = a.cursorStack[:len(a.cursorStack)-n]
	return nil
}
