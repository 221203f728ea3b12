package accessor

import (
	"bytes"
	"testing"
)

func TestBytesRoundTrip(t *testing.T) {
	a, err := OpenWritingMemory(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	payload := []byte{0xde, 0xad, 0xbe, 0xef, 0x01}
	if err := a.WriteBytes(payload); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Seek(0, SeekSet); err != nil {
		t.Fatal(err)
	}

	out := make([]byte, len(payload))
	if err := a.ReadBytes(out); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, payload) {
		t.Errorf("ReadBytes = %x, want %x", out, payload)
	}
}

func TestEndianBytesReversal(t *testing.T) {
	a, err := OpenWritingMemory(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	payload := []byte{0x01, 0x02, 0x03, 0x04}
	if err := a.WriteBytes(payload); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Seek(0, SeekSet); err != nil {
		t.Fatal(err)
	}

	out := make([]byte, len(payload))
	if err := a.ReadEndianBytes(out, Opposite(BigOrLittle(Native))); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(out, want) {
		t.Errorf("ReadEndianBytes reversed = %x, want %x", out, want)
	}
}

func TestReadAllocatedBytes(t *testing.T) {
	a, err := OpenReadingMemory([]byte("hello world"), DontFreeOnClose, 0, UntilEnd)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	out, err := a.ReadAllocatedBytes(5)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "hello" {
		t.Errorf("ReadAllocatedBytes = %q, want %q", out, "hello")
	}
	if a.Cursor() != 5 {
		t.Errorf("cursor = %d, want 5", a.Cursor())
	}
}
