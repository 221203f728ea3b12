package accessor

import "testing"

// Scenario 5 from spec.md §8: nested sub-views compose their root
// window offsets additively.
func TestNestedSubViewRootWindowOffsets(t *testing.T) {
	data := make([]byte, 65536)
	base, err := OpenReadingMemory(data, DontFreeOnClose, 0, UntilEnd)
	if err != nil {
		t.Fatal(err)
	}
	defer base.Close()

	if _, err := base.Seek(1, SeekSet); err != nil {
		t.Fatal(err)
	}
	b, err := base.OpenReadingAccessorBytes(UntilEnd)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if _, err := b.Seek(1, SeekSet); err != nil {
		t.Fatal(err)
	}
	c, err := b.OpenReadingAccessorBytes(UntilEnd)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if got := base.RootWindowOffset(); got != 0 {
		t.Errorf("rootWindowOffset(base) = %d, want 0", got)
	}
	if got := b.RootWindowOffset(); got != 1 {
		t.Errorf("rootWindowOffset(b) = %d, want 1", got)
	}
	if got := c.RootWindowOffset(); got != 2 {
		t.Errorf("rootWindowOffset(c) = %d, want 2", got)
	}
}

// Scenario 6 from spec.md §8: swapping a read-only accessor with a
// write-enabled one forces both to read-only.
func TestSwapPropagatesReadOnly(t *testing.T) {
	ro, err := OpenReadingMemory(make([]byte, 256), DontFreeOnClose, 0, UntilEnd)
	if err != nil {
		t.Fatal(err)
	}
	defer ro.Close()

	rw, err := OpenWritingMemory(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer rw.Close()

	if !rw.IsWriteEnabled() {
		t.Fatal("rw accessor should start write-enabled")
	}

	Swap(ro, rw)

	if ro.IsWriteEnabled() || rw.IsWriteEnabled() {
		t.Fatal("both accessors should be read-only after swap")
	}
	if err := ro.WriteUint8(1); !IsReadOnlyError(err) {
		t.Errorf("expected ReadOnlyError, got %v", err)
	}
	if err := rw.WriteUint8(1); !IsReadOnlyError(err) {
		t.Errorf("expected ReadOnlyError, got %v", err)
	}
}

func TestOpenReadingAccessorRejectsWriteEnabledSuper(t *testing.T) {
	a, err := OpenWritingMemory(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	if err := a.WriteBytes([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Seek(0, SeekSet); err != nil {
		t.Fatal(err)
	}

	if _, err := a.OpenReadingAccessorBytes(5); !IsInvalidParameter(err) {
		t.Errorf("OpenReadingAccessorBytes over a write-enabled super: expected InvalidParameter, got %v", err)
	}
	if _, err := a.OpenReadingAccessorWindow(0, 5); !IsInvalidParameter(err) {
		t.Errorf("OpenReadingAccessorWindow over a write-enabled super: expected InvalidParameter, got %v", err)
	}
}

func TestCloseDefersUntilSubViewsClosed(t *testing.T) {
	a, err := OpenReadingMemory(make([]byte, 16), DontFreeOnClose, 0, UntilEnd)
	if err != nil {
		t.Fatal(err)
	}

	sub, err := a.OpenReadingAccessorWindow(0, 8)
	if err != nil {
		t.Fatal(err)
	}

	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	// a.storage must still be usable through sub until sub closes too.
	var b byte
	if err := sub.ReadUint8(&b); err != nil {
		t.Fatalf("sub-view unusable after deferred base close: %v", err)
	}

	if err := sub.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOpenReadingAccessorWindowDoesNotMoveSuperCursor(t *testing.T) {
	a, err := OpenReadingMemory(make([]byte, 16), DontFreeOnClose, 0, UntilEnd)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	before := a.Cursor()
	sub, err := a.OpenReadingAccessorWindow(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Close()

	if a.Cursor() != before {
		t.Errorf("super cursor moved from %d to %d", before, a.Cursor())
	}
}
