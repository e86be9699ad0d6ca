package io

import "errors"

var errNegativeCount = errors.New("copy count can't be negative")

// Copy copies data from src to dst. If dst is not big enough, return a
// BufferTooSmallError.
func Copy(dst, src []byte) (n int, err error) {
	if len(dst) < len(src) {
		return 0, &BufferTooSmallError{RequiredSize: len(src), ActualSize: len(dst)}
	}

	return copy(dst, src), nil
}

// CopyN copies exactly the first n bytes of src to the start of dst. Either side
// holding fewer than n bytes is reported as a BufferTooSmallError.
func CopyN(dst, src []byte, n int) (int, error) {
	if n < 0 {
		return 0, errNegativeCount
	}

	if len(src) < n {
		return 0, &BufferTooSmallError{RequiredSize: n, ActualSize: len(src)}
	}

	return Copy(dst, src[:n])
}
