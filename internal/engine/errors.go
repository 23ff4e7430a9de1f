package engine

import "errors"

// ErrLengthOverflow is returned when the cumulative stream length would
// wrap the 64-bit byte counter.
var ErrLengthOverflow = errors.New("cksum: length overflow")

// ErrInvalidArgument is returned for programmer errors: a nil byte source.
var ErrInvalidArgument = errors.New("cksum: invalid argument")
