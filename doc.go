// Package accessor provides a cursor-based reader/writer for typed
// binary data, over either an in-memory buffer or a file.
//
// An Accessor wraps a byte storage (a heap buffer, a borrowed slice, a
// memory-mapped file, or a write-growable buffer) with a cursor, a
// window (the sub-range of the storage the accessor is allowed to
// see), an endianness, and an optional coverage log recording which
// byte ranges have been read and why. Read-only sub-views can be
// opened over part of another accessor's window without copying the
// underlying data; they share the same base storage and keep it alive
// for as long as they exist.
//
// accessor is not safe for concurrent use by multiple goroutines: a
// single Accessor (and any base it shares with sub-views) must be
// driven by one goroutine at a time. Two accessors that do not share a
// base may be used concurrently.
//
// Basic usage:
//
//	a, err := accessor.OpenReadingFile("", "/path/to/file", 0, 0, accessor.UntilEnd)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Close()
//
//	var magic uint32
//	if err := a.ReadEndianUint32(&magic, accessor.Big); err != nil {
//	    log.Fatal(err)
//	}
//
//	sub, err := a.OpenReadingAccessorBytes(16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sub.Close()
package accessor
