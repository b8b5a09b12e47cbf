package gox

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestReaderInts(t *testing.T) {
	r := NewReader([]byte{0x78, 0x56, 0x34, 0x12, 0xff, 0xff, 0xff, 0xff})

	u, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, u, uint32(0x12345678))

	i, err := r.Int32()
	require.NoError(t, err)
	require.Equal(t, i, int32(-1))

	require.Equal(t, r.Offset(), 8)
	require.Equal(t, r.Len(), 0)
}

func TestReaderIntTruncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03})

	_, err := r.Uint32()
	require.ErrorIs(t, err, ErrTruncated)

	var truncated TruncatedError
	require.ErrorAs(t, err, &truncated)
	require.Equal(t, truncated, TruncatedError{Offset: 0, Need: 4, Have: 3})

	// a failed read must not consume anything
	require.Equal(t, r.Offset(), 0)
}

func TestReaderBytes(t *testing.T) {
	r := NewReader([]byte("abcdef"))

	b, err := r.Bytes(3)
	require.NoError(t, err)
	require.Equal(t, b, []byte("abc"))

	_, err = r.Bytes(4)
	require.ErrorIs(t, err, ErrTruncated)
	require.Equal(t, r.Offset(), 3)

	_, err = r.Bytes(-1)
	require.ErrorIs(t, err, ErrTruncated)

	b, err = r.Bytes(0)
	require.NoError(t, err)
	require.Equal(t, b, []byte{})
}

func TestReaderLiteral(t *testing.T) {
	r := NewReader([]byte("GOX 1234"))

	require.Equal(t, r.Literal("PREV"), false)
	require.Equal(t, r.Offset(), 0)

	require.Equal(t, r.Literal("GOX "), true)
	require.Equal(t, r.Offset(), 4)
	require.Equal(t, r.Rest(), []byte("1234"))
}

func TestReaderSeek(t *testing.T) {
	r := NewReader([]byte("abcdef"))

	_, err := r.Bytes(4)
	require.NoError(t, err)

	r.seek(1)
	require.Equal(t, r.Rest(), []byte("bcdef"))
}
