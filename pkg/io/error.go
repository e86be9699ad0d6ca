package io

import "fmt"

// BufferTooSmallError tells the caller that a buffer holds fewer bytes than it
// was declared to hold.
type BufferTooSmallError struct {
	RequiredSize int
	ActualSize   int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("buffer of length %d doesn't meet the size requirement of length %d", e.ActualSize, e.RequiredSize)
}
