// Package parcel implements a flat, versionless, fixed-order binary record
// format for moving small value objects between processes.
//
// Layout primitives (big-endian):
//
//	int32  : 4 bytes
//	string : int32 byte length followed by UTF-8 bytes, length -1 = null string
//
// Field order is defined entirely by the caller; the format carries no tags.
package parcel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// nullLength marks a null string on the wire. Decoded as "".
const nullLength int32 = -1

var (
	// ErrShortBuffer is returned when the buffer ends before a value is complete.
	ErrShortBuffer = errors.New("parcel: short buffer")
	// ErrInvalidLength is returned for a negative (non-null) string length.
	ErrInvalidLength = errors.New("parcel: invalid string length")
	// ErrStringTooLong is returned when a string does not fit an int32 length.
	ErrStringTooLong = errors.New("parcel: string too long")
)

// Writer appends primitives to an in-memory record.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with room for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// WriteInt32 appends a big-endian int32.
func (w *Writer) WriteInt32(v int32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v))
}

// WriteString appends a length-prefixed string.
func (w *Writer) WriteString(s string) error {
	if len(s) > math.MaxInt32 {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	w.WriteInt32(int32(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// WriteNullString appends the null-string marker.
func (w *Writer) WriteNullString() {
	w.WriteInt32(nullLength)
}

// Bytes returns the encoded record. The slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Reader consumes primitives from a record in the order they were written.
type Reader struct {
	buf []byte
	off int
}

// NewReader creates a Reader over buf. buf is not copied.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadInt32 consumes a big-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	if r.Remaining() < 4 {
		return 0, fmt.Errorf("%w: int32 at offset %d", ErrShortBuffer, r.off)
	}
	v := int32(binary.BigEndian.Uint32(r.buf[r.off:]))
	r.off += 4
	return v, nil
}

// ReadString consumes a length-prefixed string. A null string reads as "".
func (r *Reader) ReadString() (string, error) {
	start := r.off
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n == nullLength {
		return "", nil
	}
	if n < 0 {
		return "", fmt.Errorf("%w: %d at offset %d", ErrInvalidLength, n, start)
	}
	if r.Remaining() < int(n) {
		r.off = start
		return "", fmt.Errorf("%w: string of %d bytes at offset %d", ErrShortBuffer, n, start)
	}
	s := string(r.buf[r.off : r.off+int(n)])
	r.off += int(n)
	return s, nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Done reports whether the whole buffer has been consumed.
func (r *Reader) Done() bool {
	return r.Remaining() == 0
}
