package gox

import (
	"bytes"
	"encoding/binary"
	"golang.org/x/exp/constraints"
	"unsafe"
)

// Reader is an offset-tracking cursor over an in-memory byte buffer. All
// integer reads are little-endian. A failed read leaves the offset where it
// was.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Len returns the number of bytes remaining.
func (r *Reader) Len() int {
	return len(r.buf) - r.off
}

// Rest returns the remaining bytes without consuming them.
func (r *Reader) Rest() []byte {
	return r.buf[r.off:]
}

// seek moves the cursor back to a previously saved offset.
func (r *Reader) seek(off int) {
	r.off = off
}

// Bytes consumes and returns the next n bytes. The returned slice aliases
// the underlying buffer; callers that keep it must copy.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || n > r.Len() {
		return nil, TruncatedError{Offset: r.off, Need: n, Have: r.Len()}
	}

	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Literal consumes the given literal if the input continues with it.
// It reports false and consumes nothing otherwise.
func (r *Reader) Literal(s string) bool {
	if !bytes.HasPrefix(r.buf[r.off:], []byte(s)) {
		return false
	}

	r.off += len(s)
	return true
}

// Uint32 consumes a little-endian uint32.
func (r *Reader) Uint32() (uint32, error) {
	return readInt[uint32](r)
}

// Int32 consumes a little-endian int32.
func (r *Reader) Int32() (int32, error) {
	return readInt[int32](r)
}

// readInt consumes one little-endian integer of T's width.
func readInt[T constraints.Integer](r *Reader) (T, error) {
	var value T

	b, err := r.Bytes(int(unsafe.Sizeof(value)))
	if err != nil {
		return 0, err
	}

	switch len(b) {
	case 1:
		return T(b[0]), nil
	case 2:
		return T(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return T(binary.LittleEndian.Uint32(b)), nil
	default:
		return T(binary.LittleEndian.Uint64(b)), nil
	}
}
