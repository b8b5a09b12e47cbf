package gox

import (
	"errors"
	"fmt"
)

var ErrBadMagic = errors.New(`missing "GOX " magic`)
var ErrTruncated = errors.New("truncated input")
var ErrEmptyDict = errors.New("empty dictionary")
var ErrSizeMismatch = errors.New("declared chunk size mismatch")
var ErrChecksum = errors.New("chunk checksum mismatch")

// TruncatedError reports a read past the end of the input buffer. It wraps
// [ErrTruncated].
type TruncatedError struct {
	Offset int
	Need   int
	Have   int
}

func (t TruncatedError) Error() string {
	return fmt.Sprintf("need %d bytes at offset %d, %d remain", t.Need, t.Offset, t.Have)
}

func (t TruncatedError) Unwrap() error {
	return ErrTruncated
}
